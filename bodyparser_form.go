package formrules

import (
	"net/url"

	"github.com/michaelolof/formrules/cont"
)

// FormBodyParser decodes application/x-www-form-urlencoded bodies.
type FormBodyParser struct{}

func (f *FormBodyParser) Match(contentType string) bool {
	return cont.MediaType(contentType) == cont.FormUrlEncoded
}

func (f *FormBodyParser) DecodeRecord(body []byte) (Record, error) {
	values, err := url.ParseQuery(string(body))
	if err != nil {
		return nil, err
	}
	return cont.FormRecord(values), nil
}
