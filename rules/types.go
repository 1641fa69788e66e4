package rules

import (
	"reflect"
)

// Record is the set of field values a form submits, keyed by field name.
type Record = map[string]any

// Rule checks a single value. record is the whole submission the value came from and may
// be nil when a rule is called on its own. A nil error means the value passed.
type Rule = func(val any, record Record) error

// isEmpty reports whether a value counts as not provided: nil or the empty string.
// Zero numbers and false are values, not absences.
func isEmpty(val any) bool {
	if val == nil {
		return true
	}
	if v, ok := val.(string); ok {
		return v == ""
	}
	return false
}

// isEqual is == on dynamic values that never panics. Incomparable values (slices, maps,
// funcs, or arrays and structs holding them behind an interface) are never equal to
// anything.
func isEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	if !reflect.ValueOf(a).Comparable() || !reflect.ValueOf(b).Comparable() {
		return false
	}
	return a == b
}
