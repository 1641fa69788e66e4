package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateNumber(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr string
	}{
		{name: "visa 16", value: "4111111111111111"},
		{name: "visa 13", value: "4222222222222"},
		{name: "mastercard 5 series", value: "5555555555554444"},
		{name: "mastercard 2 series", value: "2221000000000009"},
		{name: "amex", value: "378282246310005"},
		{name: "discover", value: "6011111111111117"},
		{name: "jcb", value: "3530111333300000"},
		{name: "diners club", value: "30569309025904"},
		{name: "empty is not yet submitted", value: ""},
		{name: "too short", value: "1234", wantErr: MsgInvalidNumber},
		{name: "visa wrong length", value: "411111111111111", wantErr: MsgInvalidNumber},
		{name: "spaces are not stripped", value: "4111 1111 1111 1111", wantErr: MsgInvalidNumber},
		{name: "letters", value: "abcd", wantErr: MsgInvalidNumber},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateNumber(Field{Value: tt.value, Error: "stale"})
			assert.Equal(t, tt.value, got.Value)
			assert.Equal(t, tt.wantErr, got.Error)
		})
	}
}

func TestValidateNumberDoesNotModifyInput(t *testing.T) {
	in := Field{Value: "1234", Error: ""}
	out := ValidateNumber(in)

	assert.Equal(t, "", in.Error)
	assert.Equal(t, MsgInvalidNumber, out.Error)
}

func TestValidateCVV(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr string
	}{
		{name: "three digits", value: "123"},
		{name: "four digits", value: "1234"},
		{name: "empty", value: ""},
		{name: "two digits", value: "12", wantErr: MsgInvalidCVV},
		{name: "five digits", value: "12345", wantErr: MsgInvalidCVV},
		{name: "letters", value: "12a", wantErr: MsgInvalidCVV},
		{name: "padded", value: " 123", wantErr: MsgInvalidCVV},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateCVV(Field{Value: tt.value, Error: "stale"})
			assert.Equal(t, tt.wantErr, got.Error)
		})
	}
}

func TestValidateExp(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr string
	}{
		{name: "valid", value: "01/2020"},
		{name: "december", value: "12/2049"},
		{name: "lower bound year", value: "06/2010"},
		{name: "2017", value: "06/2017"},
		{name: "empty", value: ""},
		{name: "month 13", value: "13/2020", wantErr: MsgInvalidExp},
		{name: "month 00", value: "00/2020", wantErr: MsgInvalidExp},
		{name: "year below window", value: "01/2009", wantErr: MsgInvalidExp},
		{name: "year above window", value: "01/2050", wantErr: MsgInvalidExp},
		{name: "short year", value: "01/20", wantErr: MsgInvalidExp},
		{name: "single digit month", value: "1/2020", wantErr: MsgInvalidExp},
		{name: "dash separator", value: "01-2020", wantErr: MsgInvalidExp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateExp(Field{Value: tt.value, Error: "stale"})
			assert.Equal(t, tt.wantErr, got.Error)
		})
	}
}

func TestValidateForm(t *testing.T) {
	valid := Form{
		Number: Field{Value: "4111111111111111"},
		CVV:    Field{Value: "123"},
		Exp:    Field{Value: "01/2020"},
	}
	assert.True(t, ValidateForm(valid))

	tests := []struct {
		name   string
		mutate func(f *Form)
	}{
		{name: "empty number", mutate: func(f *Form) { f.Number.Value = "" }},
		{name: "empty cvv", mutate: func(f *Form) { f.CVV.Value = "" }},
		{name: "empty exp", mutate: func(f *Form) { f.Exp.Value = "" }},
		{name: "number error", mutate: func(f *Form) { f.Number.Error = MsgInvalidNumber }},
		{name: "cvv error", mutate: func(f *Form) { f.CVV.Error = MsgInvalidCVV }},
		{name: "exp error", mutate: func(f *Form) { f.Exp.Error = MsgInvalidExp }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := valid
			tt.mutate(&form)
			assert.False(t, ValidateForm(form))
		})
	}
}

func TestCheck(t *testing.T) {
	form := Check(Form{
		Number: Field{Value: "1234"},
		CVV:    Field{Value: "123"},
		Exp:    Field{Value: "13/2020"},
	})

	assert.Equal(t, MsgInvalidNumber, form.Number.Error)
	assert.Equal(t, "", form.CVV.Error)
	assert.Equal(t, MsgInvalidExp, form.Exp.Error)
	assert.False(t, ValidateForm(form))

	form = Check(Form{
		Number: Field{Value: "378282246310005"},
		CVV:    Field{Value: "1234"},
		Exp:    Field{Value: "11/2030"},
	})
	assert.True(t, ValidateForm(form))
}

func TestDetectIssuer(t *testing.T) {
	tests := []struct {
		number string
		want   Issuer
	}{
		{"4111111111111111", Visa},
		{"5105105105105100", Mastercard},
		{"371449635398431", Amex},
		{"6500000000000002", Discover},
		{"213100000000000", JCB},
		{"180000000000000", JCB},
		{"36227206271667", DinersClub},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			got, ok := DetectIssuer(tt.number)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	_, ok := DetectIssuer("0000")
	assert.False(t, ok)
	assert.Equal(t, "unknown", Issuer(0).String())
}
