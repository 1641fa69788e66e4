package forms

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/michaelolof/formrules"
	"github.com/michaelolof/formrules/card"
)

type cardResponse struct {
	Submittable bool      `json:"submittable"`
	Fields      card.Form `json:"fields"`
}

// CardHandler checks a payment form posted as JSON or urlencoded with the fields
// ccNumber, cvv and ccExp. It answers 200 when the form may be submitted and 422
// otherwise, echoing every field with its error. Undecodable bodies get the same
// statuses and error body as formrules.Handler.
func CardHandler(maxRequestSize int64, logger *slog.Logger) http.Handler {
	opts := []formrules.Option{
		formrules.WithMaxRequestSize(maxRequestSize),
		formrules.WithLogger(formrules.NewSlogLogger(logger)),
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec, err := formrules.DecodeRequest(w, r, opts...)
		if err != nil {
			logger.Warn("card form decode failed", "error", err)
			formrules.WriteError(w, err, opts...)
			return
		}

		form := card.Check(card.Form{
			Number: card.Field{Value: stringField(rec, "ccNumber")},
			CVV:    card.Field{Value: stringField(rec, "cvv")},
			Exp:    card.Field{Value: stringField(rec, "ccExp")},
		})
		resp := cardResponse{Submittable: card.ValidateForm(form), Fields: form}

		status := http.StatusOK
		if !resp.Submittable {
			status = http.StatusUnprocessableEntity
		}
		respondJSON(w, status, resp)
	})
}

// stringField reads a field as typed text. Numbers sent by JSON clients are formatted
// back to their digits; anything else counts as empty.
func stringField(rec formrules.Record, key string) string {
	switch v := rec[key].(type) {
	case string:
		return v
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
