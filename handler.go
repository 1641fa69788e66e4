package formrules

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrorHandler maps a transport error to the status code and body sent back.
type ErrorHandler = func(err error) (status int, body []byte)

type defaultErrResp struct {
	Status     string `json:"status"`
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

// DefaultErrorHandler is the ErrorHandler used unless WithErrorHandler replaces it. It
// picks the status from the transport error and writes
// {"status":"error","statusCode":N,"message":"..."}.
func DefaultErrorHandler(err error) (int, []byte) {
	status := statusFor(err)
	bs, merr := json.Marshal(defaultErrResp{
		Status:     "error",
		StatusCode: status,
		Message:    err.Error(),
	})
	if merr != nil {
		return http.StatusInternalServerError, nil
	}
	return status, bs
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrUnsupportedContentType):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, ErrBodyTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, ErrInvalidBody):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// resultStatus is 200 for a clean record and 422 when any field failed.
func resultStatus(errs ErrorMap) int {
	if errs.IsEmpty() {
		return http.StatusOK
	}
	return http.StatusUnprocessableEntity
}

// Handler serves v over net/http. The request body is decoded by the configured body
// parsers and the response is {"valid":bool,"errors":{...}}.
func Handler(v *Validator, opts ...Option) http.Handler {
	o := newHandlerOptions(opts)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec, err := o.decodeRequest(w, r)
		if err != nil {
			o.logger.Warn("form decode failed", "path", r.URL.Path, "error", err)
			status, body := o.errHandler(err)
			writeJSON(w, status, body)
			return
		}

		errs := v.Validate(rec)
		writeJSON(w, resultStatus(errs), errs.resultJSON())
	})
}

func (o *handlerOptions) decodeRequest(w http.ResponseWriter, r *http.Request) (Record, error) {
	r.Body = http.MaxBytesReader(w, r.Body, o.maxRequestSize)

	bs, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, ErrBodyTooLarge
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidBody, err)
	}

	return o.decodeBody(r.Header.Get("Content-Type"), bs)
}

// DecodeRequest reads r's body into a Record with the parsers and size cap set by opts,
// the same way Handler does. Errors wrap ErrUnsupportedContentType, ErrBodyTooLarge or
// ErrInvalidBody.
func DecodeRequest(w http.ResponseWriter, r *http.Request, opts ...Option) (Record, error) {
	return newHandlerOptions(opts).decodeRequest(w, r)
}

// WriteError answers with the body and status the error handler in opts picks for err.
func WriteError(w http.ResponseWriter, err error, opts ...Option) {
	status, body := newHandlerOptions(opts).errHandler(err)
	writeJSON(w, status, body)
}

func writeJSON(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	w.Write(body)
}
