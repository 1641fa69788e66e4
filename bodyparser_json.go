package formrules

import (
	"github.com/michaelolof/formrules/cont"
)

// JSONBodyParser decodes application/json bodies. The top level value must be an object.
type JSONBodyParser struct{}

func (j *JSONBodyParser) Match(contentType string) bool {
	return cont.MediaType(contentType) == cont.ApplicationJson
}

func (j *JSONBodyParser) DecodeRecord(body []byte) (Record, error) {
	return cont.DecodeRecord(body)
}
