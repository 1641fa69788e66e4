package cont

import "github.com/michaelolof/formrules/rules"

// FormRecord turns decoded form values into a Record. A key sent once maps to its
// string, a key sent more than once maps to all of its values as []string.
func FormRecord(values map[string][]string) rules.Record {
	rec := make(rules.Record, len(values))
	for key, vals := range values {
		switch len(vals) {
		case 0:
			rec[key] = ""
		case 1:
			rec[key] = vals[0]
		default:
			rec[key] = append([]string(nil), vals...)
		}
	}
	return rec
}
