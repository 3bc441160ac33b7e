package models

// ConversionRecord is one stored conversion. The JSON field names are the
// persisted history format.
type ConversionRecord struct {
	ID          int64   `json:"id"`
	InputValue  float64 `json:"input"`
	SourceScale Scale   `json:"fromUnit"`
	TargetScale Scale   `json:"toUnit"`
	ResultValue float64 `json:"result"`
	RecordedAt  string  `json:"timestamp"` // display string, may carry an "updated" suffix
}
