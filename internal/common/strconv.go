package common

import (
	"math"
	"strconv"
)

// AtoiDefault converts the provided string to an integer falling back to the default when parsing fails.
func AtoiDefault(value string, def int) int {
	if value == "" {
		return def
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return def
	}
	return parsed
}

// ParseFloatDefault converts the provided string to a float64 falling back to the default when parsing fails.
func ParseFloatDefault(value string, def float64) float64 {
	if value == "" {
		return def
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return def
	}
	return parsed
}

// Round2 rounds a monetary amount to two decimal places, halves away from zero.
func Round2(value float64) float64 {
	return math.Round(value*100) / 100
}
