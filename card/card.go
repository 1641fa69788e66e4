// Package card validates the three fields of a credit-card payment form.
//
// Each validator takes a Field and returns a copy with Error set or cleared; the
// Field passed in is never modified. An empty Value is treated as "not filled in yet"
// and is not reported as an error by the field validators. ValidateForm is the gate
// that refuses to submit while anything is empty or in error.
package card

import (
	"regexp"
)

const (
	MsgInvalidNumber = "Enter a valid credit card number"
	MsgInvalidCVV    = "Please enter a valid CVV"
	MsgInvalidExp    = "Please enter a valid expiration date (MM/YYYY)"
)

var (
	// CVVRegex accepts exactly three or four digits.
	CVVRegex = regexp.MustCompile(`^([0-9]{3,4})$`)

	// ExpRegex accepts MM/YYYY with a month of 01-12. The year alternation lists 2017
	// on its own, which the 2010-2049 branch already covers.
	ExpRegex = regexp.MustCompile(`^((0[1-9])|(1[0-2]))/((2017)|(20[1-4][0-9]))$`)
)

// Field is one input of the card form as the user typed it, with the message to show
// beside it.
type Field struct {
	Value string `json:"value"`
	Error string `json:"error"`
}

// Valid reports whether the field has a value and no error.
func (f Field) Valid() bool {
	return f.Value != "" && f.Error == ""
}

// Form groups the card form fields.
type Form struct {
	Number Field `json:"ccNumber"`
	CVV    Field `json:"cvv"`
	Exp    Field `json:"ccExp"`
}

// ValidateNumber checks the card number against the known issuer patterns.
func ValidateNumber(f Field) Field {
	f.Error = ""
	if f.Value == "" {
		return f
	}

	if _, ok := DetectIssuer(f.Value); !ok {
		f.Error = MsgInvalidNumber
	}
	return f
}

// ValidateCVV checks the card security code.
func ValidateCVV(f Field) Field {
	f.Error = ""
	if f.Value == "" {
		return f
	}

	if !CVVRegex.MatchString(f.Value) {
		f.Error = MsgInvalidCVV
	}
	return f
}

// ValidateExp checks the expiration date. Only the format and year window are
// checked; an expired date in the window still passes.
func ValidateExp(f Field) Field {
	f.Error = ""
	if f.Value == "" {
		return f
	}

	if !ExpRegex.MatchString(f.Value) {
		f.Error = MsgInvalidExp
	}
	return f
}

// ValidateForm reports whether the form may be submitted: every field filled in and
// none carrying an error. It does not run the field validators itself; see Check.
func ValidateForm(form Form) bool {
	return form.Number.Valid() && form.CVV.Valid() && form.Exp.Valid()
}

// Check runs every field validator and returns the updated form.
func Check(form Form) Form {
	return Form{
		Number: ValidateNumber(form.Number),
		CVV:    ValidateCVV(form.CVV),
		Exp:    ValidateExp(form.Exp),
	}
}
