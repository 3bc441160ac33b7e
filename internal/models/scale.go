package models

import (
	"errors"
	"fmt"
	"strings"
)

// Scale is a temperature scale identifier, stored lowercase ("celsius", ...).
type Scale string

const (
	Celsius    Scale = "celsius"
	Fahrenheit Scale = "fahrenheit"
	Kelvin     Scale = "kelvin"
	Rankine    Scale = "rankine"
)

// Scales lists every supported scale in display order.
var Scales = []Scale{Celsius, Fahrenheit, Kelvin, Rankine}

var ErrUnknownScale = errors.New("unknown temperature scale")

// Valid reports whether s is one of the supported scales.
func (s Scale) Valid() bool {
	switch s {
	case Celsius, Fahrenheit, Kelvin, Rankine:
		return true
	}
	return false
}

// ParseScale accepts full names and single-letter abbreviations, case-insensitive.
func ParseScale(s string) (Scale, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "celsius", "c":
		return Celsius, nil
	case "fahrenheit", "f":
		return Fahrenheit, nil
	case "kelvin", "k":
		return Kelvin, nil
	case "rankine", "r":
		return Rankine, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownScale, s)
}
