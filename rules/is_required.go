package rules

import "errors"

var ErrRequired = errors.New("Required")

// Required fails when the value is nil or an empty string.
func Required(val any, _ Record) error {
	if isEmpty(val) {
		return ErrRequired
	}
	return nil
}
