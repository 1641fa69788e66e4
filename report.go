package formrules

import (
	"fmt"
	"strings"

	"github.com/michaelolof/formrules/cont"
)

// ErrorMap holds one message per failing field, in the order the fields were checked.
// The zero value is an empty map.
type ErrorMap struct {
	fields   []string
	messages map[string]string
}

func (m *ErrorMap) set(field, message string) {
	if m.messages == nil {
		m.messages = make(map[string]string)
	}
	if _, ok := m.messages[field]; !ok {
		m.fields = append(m.fields, field)
	}
	m.messages[field] = message
}

// Get returns the message for field and whether the field failed.
func (m ErrorMap) Get(field string) (string, bool) {
	msg, ok := m.messages[field]
	return msg, ok
}

func (m ErrorMap) Has(field string) bool {
	_, ok := m.messages[field]
	return ok
}

// Fields returns the failing fields in order.
func (m ErrorMap) Fields() []string {
	return append([]string(nil), m.fields...)
}

func (m ErrorMap) Len() int {
	return len(m.fields)
}

func (m ErrorMap) IsEmpty() bool {
	return len(m.fields) == 0
}

// ToMap copies the messages into a plain map. Field order is lost.
func (m ErrorMap) ToMap() map[string]string {
	out := make(map[string]string, len(m.messages))
	for k, v := range m.messages {
		out[k] = v
	}
	return out
}

// MarshalJSON writes the messages as an object keyed in field order.
func (m ErrorMap) MarshalJSON() ([]byte, error) {
	return cont.MarshalErrors(nil, m.fields, m.messages), nil
}

// Err returns nil when no field failed and a *ValidationError otherwise.
func (m ErrorMap) Err() error {
	if m.IsEmpty() {
		return nil
	}
	return &ValidationError{Errors: m}
}

func (m ErrorMap) resultJSON() []byte {
	return cont.MarshalResult(nil, m.fields, m.messages)
}

// ValidationError carries an ErrorMap through an error return.
type ValidationError struct {
	Errors ErrorMap
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, e.Errors.Len())
	for _, f := range e.Errors.fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, e.Errors.messages[f]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
