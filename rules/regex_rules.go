package rules

import (
	"errors"
	"fmt"
	"regexp"
)

var (
	// EmailRegex is the permissive pattern behind the Email rule.
	EmailRegex = regexp.MustCompile(`(?i)^[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,4}$`)

	// StrictEmailRegex backs IsValidEmail. It accepts quoted local parts and IPv4 domain
	// literals, and any TLD of two letters or more.
	StrictEmailRegex = regexp.MustCompile(`^(([^<>()\[\]\\.,;:\s@"]+(\.[^<>()\[\]\\.,;:\s@"]+)*)|(".+"))@(([0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3})|(([a-zA-Z\-0-9]+\.)+[a-zA-Z]{2,}))$`)
)

var ErrInvalidEmail = errors.New("Invalid email address")

// Email fails when a non-empty value does not look like local@domain.tld.
// Empty values pass; pair it with Required to enforce presence.
func Email(val any, _ Record) error {
	if isEmpty(val) {
		return nil
	}

	s, ok := val.(string)
	if !ok {
		s = fmt.Sprint(val)
	}
	if !EmailRegex.MatchString(s) {
		return ErrInvalidEmail
	}
	return nil
}

// IsValidEmail is a standalone check with a stricter pattern than Email. The two
// disagree on some inputs (e.g. long TLDs, quoted local parts) and are kept separate.
func IsValidEmail(s string) bool {
	return StrictEmailRegex.MatchString(s)
}
