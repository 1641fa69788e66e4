package formrules

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedContentType = errors.New("unsupported content type")
	ErrInvalidBody            = errors.New("invalid request body")
	ErrBodyTooLarge           = errors.New("request body too large")
)

// BodyParser decodes a request body into a Record.
type BodyParser interface {
	Match(contentType string) bool
	DecodeRecord(body []byte) (Record, error)
}

// decodeBody picks a parser for contentType and decodes body with it.
func (o *handlerOptions) decodeBody(contentType string, body []byte) (Record, error) {
	if int64(len(body)) > o.maxRequestSize {
		return nil, ErrBodyTooLarge
	}

	parser := o.parserFor(contentType)
	if parser == nil {
		return nil, fmt.Errorf("%w '%s'", ErrUnsupportedContentType, contentType)
	}

	rec, err := parser.DecodeRecord(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBody, err)
	}
	return rec, nil
}
