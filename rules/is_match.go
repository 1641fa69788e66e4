package rules

import "errors"

var ErrMismatch = errors.New("Do not match")

// Match fails when the value differs from record[field]. Without a record there is
// nothing to compare against and the rule passes.
func Match(field string) Rule {
	return func(val any, record Record) error {
		if record == nil {
			return nil
		}
		if !isEqual(val, record[field]) {
			return ErrMismatch
		}
		return nil
	}
}
