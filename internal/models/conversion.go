package models

// Color is a CSS hex color used for temperature banding.
type Color string

// Conversion is the presentation view of a single conversion.
type Conversion struct {
	Record            ConversionRecord `json:"record"`
	InputDisplay      string           `json:"input_display"`
	ResultDisplay     string           `json:"result_display"`
	SourceSymbol      string           `json:"source_symbol"`
	TargetSymbol      string           `json:"target_symbol"`
	InputColor        Color            `json:"input_color"`
	ResultColor       Color            `json:"result_color"`
	IndicatorPosition float64          `json:"indicator_position"` // percent, 0..100
}

// HistoryRow is one rendered history entry. Editing marks the row that must
// be shown as an edit form.
type HistoryRow struct {
	Record        ConversionRecord `json:"record"`
	Editing       bool             `json:"editing"`
	InputDisplay  string           `json:"input_display"`
	ResultDisplay string           `json:"result_display"`
	SourceSymbol  string           `json:"source_symbol"`
	TargetSymbol  string           `json:"target_symbol"`
	InputColor    Color            `json:"input_color"`
	ResultColor   Color            `json:"result_color"`
}

// HistoryView is the full history listing, newest first.
type HistoryView struct {
	Rows      []HistoryRow `json:"rows"`
	Count     int          `json:"count"`
	EditingID *int64       `json:"editing_id,omitempty"`
}
