package service

import (
	"time"

	"tempconv/internal/models"
)

// ConvertParams is a conversion request: Value on From, expressed on To.
type ConvertParams struct {
	Value float64
	From  models.Scale
	To    models.Scale
}

// SwapResult is the converter state after swapping scales and, when a
// previous result existed, the conversion of that result.
type SwapResult struct {
	State      models.ConverterState `json:"state"`
	Conversion *models.Conversion    `json:"conversion,omitempty"`
}

// LogFilter selects audit events by time range and type.
type LogFilter struct {
	From  time.Time // inclusive; zero means no lower bound
	To    time.Time // inclusive; zero means no upper bound
	Type  string    // "", "ADD", "UPDATE", "DELETE", "CLEAR"
	Limit int       // keep only the newest Limit events; 0 keeps all
}
