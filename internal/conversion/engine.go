// Package conversion converts temperatures between scales and derives the
// display helpers (symbols, color bands, scale indicator) used by the views.
package conversion

import (
	"math"

	"tempconv/internal/models"
)

// Color bands, coldest first.
const (
	ColorFrigid   models.Color = "#3b82f6" // below -20 °C
	ColorFreezing models.Color = "#06b6d4" // below 0 °C
	ColorCold     models.Color = "#22d3ee" // below 10 °C
	ColorMild     models.Color = "#4ecdc4" // below 25 °C
	ColorWarm     models.Color = "#f59e0b" // below 35 °C
	ColorHot      models.Color = "#f97316" // below 50 °C
	ColorScorch   models.Color = "#ef4444"
)

// Indicator bar range in °C.
const (
	indicatorMinC  = -50.0
	indicatorSpanC = 150.0
)

var symbols = map[models.Scale]string{
	models.Celsius:    "°C",
	models.Fahrenheit: "°F",
	models.Kelvin:     "K",
	models.Rankine:    "°R",
}

// Convert maps value from one scale to another through Celsius.
// Unknown scales are treated as Celsius.
func Convert(value float64, from, to models.Scale) float64 {
	return fromCelsius(toCelsius(value, from), to)
}

// ToCelsius normalizes value on scale s to Celsius.
func ToCelsius(value float64, s models.Scale) float64 {
	return toCelsius(value, s)
}

func toCelsius(v float64, from models.Scale) float64 {
	switch from {
	case models.Fahrenheit:
		return (v - 32) * 5 / 9
	case models.Kelvin:
		return v - 273.15
	case models.Rankine:
		return (v - 491.67) * 5 / 9
	default:
		return v
	}
}

func fromCelsius(c float64, to models.Scale) float64 {
	switch to {
	case models.Fahrenheit:
		return c*9/5 + 32
	case models.Kelvin:
		return c + 273.15
	case models.Rankine:
		return c*9/5 + 491.67
	default:
		return c
	}
}

// SymbolOf returns the display symbol of s, or "" for unknown scales.
func SymbolOf(s models.Scale) string {
	return symbols[s]
}

// ColorBand maps a Celsius temperature to one of seven fixed colors.
func ColorBand(celsius float64) models.Color {
	switch {
	case celsius < -20:
		return ColorFrigid
	case celsius < 0:
		return ColorFreezing
	case celsius < 10:
		return ColorCold
	case celsius < 25:
		return ColorMild
	case celsius < 35:
		return ColorWarm
	case celsius < 50:
		return ColorHot
	default:
		return ColorScorch
	}
}

// ColorOf bands a value expressed on scale s.
func ColorOf(value float64, s models.Scale) models.Color {
	return ColorBand(toCelsius(value, s))
}

// IndicatorPosition places value (on scale s) on the -50..100 °C bar as a
// percentage clamped to [0, 100].
func IndicatorPosition(value float64, s models.Scale) float64 {
	pos := (toCelsius(value, s) - indicatorMinC) / indicatorSpanC * 100
	return math.Max(0, math.Min(100, pos))
}
