// Package forms holds the forms the demo server validates.
package forms

import (
	"errors"

	"github.com/michaelolof/formrules"
	"github.com/michaelolof/formrules/rules"
)

var Plans = []any{"free", "pro", "team"}

var Topics = []any{"sales", "support", "billing"}

var errStrictEmail = errors.New("Invalid email address")

// strictEmail applies rules.IsValidEmail to non-empty strings.
func strictEmail(val any, _ rules.Record) error {
	s, _ := val.(string)
	if s == "" {
		return nil
	}
	if !rules.IsValidEmail(s) {
		return errStrictEmail
	}
	return nil
}

// Signup is the account registration form.
func Signup() formrules.RuleSet {
	return formrules.RuleSet{
		formrules.Field("email", rules.Required, rules.Email),
		formrules.Field("password", rules.Required, rules.MinLength(8), rules.MaxLength(64)),
		formrules.Field("confirmPassword", rules.Required, rules.Match("password")),
		formrules.Field("age", rules.Integer),
		formrules.Field("plan", rules.OneOf(Plans...)),
	}
}

// Contact is the contact-us form. It uses the stricter email check because replies go
// out to whatever address is entered.
func Contact() formrules.RuleSet {
	return formrules.RuleSet{
		formrules.Field("name", rules.Required, rules.MaxLength(100)),
		formrules.Field("email", rules.Required, strictEmail),
		formrules.Field("topic", rules.OneOf(Topics...)),
		formrules.Field("message", rules.Required, rules.MinLength(10), rules.MaxLength(2000)),
	}
}
