package rules

import (
	"fmt"
	"reflect"
	"unicode/utf8"
)

// MinLength fails when a non-empty value is shorter than min.
func MinLength(min int) Rule {
	invalid := fmt.Errorf("Must be at least %d characters", min)

	return func(val any, _ Record) error {
		if isEmpty(val) {
			return nil
		}
		if n, ok := lengthOf(val); ok && n < min {
			return invalid
		}
		return nil
	}
}

// MaxLength fails when a non-empty value is longer than max.
func MaxLength(max int) Rule {
	invalid := fmt.Errorf("Must be no more than %d characters", max)

	return func(val any, _ Record) error {
		if isEmpty(val) {
			return nil
		}
		if n, ok := lengthOf(val); ok && n > max {
			return invalid
		}
		return nil
	}
}

// lengthOf counts runes for strings and elements for slices and arrays.
// Anything else has no length.
func lengthOf(val any) (int, bool) {
	if s, ok := val.(string); ok {
		return utf8.RuneCountInString(s), true
	}

	v := reflect.ValueOf(val)
	switch v.Kind() {
	case reflect.String:
		return utf8.RuneCountInString(v.String()), true
	case reflect.Slice, reflect.Array:
		return v.Len(), true
	default:
		return 0, false
	}
}
