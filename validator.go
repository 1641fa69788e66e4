package formrules

import (
	"github.com/michaelolof/formrules/rules"
)

type Record = rules.Record
type Rule = rules.Rule

// FieldRules are the rules for one field, run in order.
type FieldRules struct {
	Name  string
	Rules []Rule
}

// Field pairs a field name with its rules. Every rule must be non-nil.
func Field(name string, rs ...Rule) FieldRules {
	return FieldRules{Name: name, Rules: rs}
}

// RuleSet is the ordered list of fields a Validator checks.
type RuleSet []FieldRules

// Validator runs a RuleSet against records. It holds no mutable state and is safe for
// concurrent use.
type Validator struct {
	fields []FieldRules
}

// New compiles a RuleSet. A field listed twice keeps its first position and takes the
// rules of its last entry.
func New(set RuleSet) *Validator {
	index := make(map[string]int, len(set))
	fields := make([]FieldRules, 0, len(set))

	for _, f := range set {
		rs := append([]Rule(nil), f.Rules...)
		if i, ok := index[f.Name]; ok {
			fields[i].Rules = rs
			continue
		}
		index[f.Name] = len(fields)
		fields = append(fields, FieldRules{Name: f.Name, Rules: rs})
	}

	return &Validator{fields: fields}
}

// CreateValidator returns the validate function of New(set).
func CreateValidator(set RuleSet) func(rec Record) ErrorMap {
	return New(set).Validate
}

// Validate checks every field of the RuleSet against rec and returns the first failure of
// each field. A nil rec is treated as an empty record.
func (v *Validator) Validate(rec Record) ErrorMap {
	if rec == nil {
		rec = Record{}
	}

	var errs ErrorMap
	for _, f := range v.fields {
		if err := runRules(f.Rules, rec[f.Name], rec); err != nil {
			errs.set(f.Name, err.Error())
		}
	}
	return errs
}

// Fields lists the validated field names in order.
func (v *Validator) Fields() []string {
	names := make([]string, len(v.fields))
	for i, f := range v.fields {
		names[i] = f.Name
	}
	return names
}

func runRules(rs []Rule, val any, rec Record) error {
	for _, rule := range rs {
		if err := rule(val, rec); err != nil {
			return err
		}
	}
	return nil
}
