package forms

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/michaelolof/formrules/card"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func postCard(t *testing.T, contentType, body string) (*httptest.ResponseRecorder, cardResponse) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/validate/card", strings.NewReader(body))
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	CardHandler(1024, discardLogger()).ServeHTTP(rec, req)

	var resp cardResponse
	if rec.Code == http.StatusOK || rec.Code == http.StatusUnprocessableEntity {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	}
	return rec, resp
}

func TestCardHandlerSubmittable(t *testing.T) {
	rec, resp := postCard(t, "application/json",
		`{"ccNumber":"4111111111111111","cvv":"123","ccExp":"01/2020"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Submittable)
	assert.Equal(t, card.Field{Value: "4111111111111111"}, resp.Fields.Number)
}

func TestCardHandlerNumericJSON(t *testing.T) {
	rec, resp := postCard(t, "application/json",
		`{"ccNumber":4111111111111111,"cvv":123,"ccExp":"12/2030"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Submittable)
}

func TestCardHandlerInvalid(t *testing.T) {
	rec, resp := postCard(t, "application/x-www-form-urlencoded",
		"ccNumber=1234&cvv=12&ccExp=13%2F2020")

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.False(t, resp.Submittable)
	assert.Equal(t, card.MsgInvalidNumber, resp.Fields.Number.Error)
	assert.Equal(t, card.MsgInvalidCVV, resp.Fields.CVV.Error)
	assert.Equal(t, card.MsgInvalidExp, resp.Fields.Exp.Error)
}

func TestCardHandlerIncomplete(t *testing.T) {
	rec, resp := postCard(t, "application/json", `{"ccNumber":"4111111111111111"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.False(t, resp.Submittable)
	assert.Equal(t, "", resp.Fields.CVV.Error, "empty fields are not flagged")
}

func TestCardHandlerFloatNumber(t *testing.T) {
	rec, resp := postCard(t, "application/json",
		`{"ccNumber":4111111111111111e0,"cvv":"123","ccExp":"01/2020"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Submittable)
	assert.Equal(t, "4111111111111111", resp.Fields.Number.Value)

	rec, resp = postCard(t, "application/json",
		`{"ccNumber":1e20,"cvv":"123","ccExp":"01/2020"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "100000000000000000000", resp.Fields.Number.Value)
	assert.Equal(t, card.MsgInvalidNumber, resp.Fields.Number.Error)
}

func TestCardHandlerDecodeErrors(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "unsupported content type",
			contentType: "text/plain",
			body:        "4111",
			wantStatus:  http.StatusUnsupportedMediaType,
			wantMessage: "unsupported content type",
		},
		{
			name:        "malformed json",
			contentType: "application/json",
			body:        `{`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "invalid request body",
		},
		{
			name:        "too large",
			contentType: "application/json",
			body:        `{"ccNumber":"` + strings.Repeat("4", 2048) + `"}`,
			wantStatus:  http.StatusRequestEntityTooLarge,
			wantMessage: "request body too large",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, _ := postCard(t, tt.contentType, tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body struct {
				Status     string `json:"status"`
				StatusCode int    `json:"statusCode"`
				Message    string `json:"message"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "error", body.Status)
			assert.Equal(t, tt.wantStatus, body.StatusCode)
			assert.Contains(t, body.Message, tt.wantMessage)
		})
	}
}
