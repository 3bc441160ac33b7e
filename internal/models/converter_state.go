package models

import "time"

// ConverterState is the persisted converter selection and its last result.
type ConverterState struct {
	ID          int       `json:"id"`
	SourceScale Scale     `json:"from"`
	TargetScale Scale     `json:"to"`
	LastInput   float64   `json:"last_input,omitempty"`
	LastResult  float64   `json:"last_result,omitempty"`
	HasResult   bool      `json:"has_result"`
	UpdatedAt   time.Time `json:"updated_at"`
}
