package rules

import (
	"fmt"
	"strings"
)

// OneOf fails unless the value equals one of options.
// There is no empty bypass: nil or "" only pass when they are listed.
func OneOf(options ...any) Rule {
	names := make([]string, len(options))
	for i, opt := range options {
		names[i] = fmt.Sprint(opt)
	}
	invalid := fmt.Errorf("Must be one of: %s", strings.Join(names, ", "))

	return func(val any, _ Record) error {
		for _, opt := range options {
			if isEqual(val, opt) {
				return nil
			}
		}
		return invalid
	}
}
