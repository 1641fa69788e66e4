package card

import "regexp"

type Issuer int

const (
	Visa Issuer = iota + 1
	Mastercard
	Amex
	Discover
	JCB
	DinersClub
)

var issuerNames = map[Issuer]string{
	Visa:       "visa",
	Mastercard: "mastercard",
	Amex:       "amex",
	Discover:   "discover",
	JCB:        "jcb",
	DinersClub: "dinersclub",
}

func (i Issuer) String() string {
	if name, ok := issuerNames[i]; ok {
		return name
	}
	return "unknown"
}

type issuerPattern struct {
	issuer Issuer
	re     *regexp.Regexp
}

// Patterns only look at prefix and length; there is no checksum.
var issuerPatterns = []issuerPattern{
	{Visa, regexp.MustCompile(`^4[0-9]{12}(?:[0-9]{3})?$`)},
	{Mastercard, regexp.MustCompile(`^(?:5[1-5][0-9]{2}|222[1-9]|22[3-9][0-9]|2[3-6][0-9]{2}|27[01][0-9]|2720)[0-9]{12}$`)},
	{Amex, regexp.MustCompile(`^3[47][0-9]{13}$`)},
	{Discover, regexp.MustCompile(`^6(?:011|5[0-9]{2})[0-9]{12}$`)},
	{JCB, regexp.MustCompile(`^(?:2131|1800|35\d{3})\d{11}$`)},
	{DinersClub, regexp.MustCompile(`^3(?:0[0-5]|[68][0-9])[0-9]{11}$`)},
}

// DetectIssuer returns the first issuer whose pattern matches number.
func DetectIssuer(number string) (Issuer, bool) {
	for _, p := range issuerPatterns {
		if p.re.MatchString(number) {
			return p.issuer, true
		}
	}
	return 0, false
}
