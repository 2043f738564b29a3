package utils

import (
	"math"
	"strconv"
)

// IsIntegerValue checks if a string represents a base 10 integer that fits in 64 bits.
//
// Examples:
//   - "123" -> true
//   - "-42" -> true
//   - "1.0" -> false
//   - "1e3" -> false
//   - "" -> false
func IsIntegerValue(value string) bool {
	if value == "" {
		return false
	}

	_, err := strconv.ParseInt(value, 10, 64)
	return err == nil
}

// IsNumericValue checks if a string represents a valid numeric value.
// This uses strconv.ParseFloat to properly validate numeric formats,
// including integers, floats, and scientific notation.
//
// Examples:
//   - "123" -> true
//   - "123.45" -> true
//   - "-123.45" -> true
//   - "1.23e-4" -> true (scientific notation)
//   - "abc" -> false
//   - "1.2.3" -> false (multiple decimal points)
//   - "" -> false
//   - "NaN" -> false
func IsNumericValue(value string) bool {
	if value == "" {
		return false
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return false
	}

	// ParseFloat accepts "NaN" and "Inf", which no database column type round-trips.
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
