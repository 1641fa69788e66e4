package rules

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

var ErrNotInteger = errors.New("Must be an integer")

// Integer fails unless the value is a whole number or a string holding one.
// Unlike the other rules it has no empty bypass: nil and "" fail.
func Integer(val any, _ Record) error {
	if isWholeNumber(val) {
		return nil
	}
	return ErrNotInteger
}

func isWholeNumber(val any) bool {
	switch v := val.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return true
	case float32:
		return isWholeFloat(float64(v))
	case float64:
		return isWholeFloat(v)
	case string:
		return isWholeString(v)
	default:
		return false
	}
}

func isWholeFloat(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f) && f == math.Trunc(f)
}

func isWholeString(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" || strings.Contains(s, "_") {
		return false
	}

	if _, err := strconv.ParseInt(s, 0, 64); err == nil {
		return true
	}

	// Hex floats such as 0x1p4 are not numbers to a form.
	if strings.ContainsAny(s, "pP") {
		return false
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return false
	}
	return isWholeFloat(f)
}
