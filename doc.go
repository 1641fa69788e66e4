// Package formrules validates form submissions field by field.
//
// A RuleSet lists the fields of a form in order, each with the rules it must pass:
//
//	validate := formrules.CreateValidator(formrules.RuleSet{
//		formrules.Field("email", rules.Required, rules.Email),
//		formrules.Field("password", rules.Required, rules.MinLength(8)),
//		formrules.Field("confirm", rules.Match("password")),
//		formrules.Field("age", rules.Required, rules.Integer),
//	})
//	errs := validate(formrules.Record{"email": "", "age": "x"})
//	errs.Get("email") // "Required", true
//
// Every field is checked on every call. Within a field the first failing rule wins and
// later rules are not run. Fields that pass are absent from the ErrorMap, which keeps the
// RuleSet's field order.
//
// Handler, FastHandler and LiveHandler expose a Validator over net/http, fasthttp and a
// fasthttp websocket, decoding JSON or urlencoded form bodies into a Record.
package formrules
