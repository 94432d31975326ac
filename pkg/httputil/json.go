package httputil

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"

	"github.com/matzehuels/figwind/pkg/errors"
)

// MaxBodyBytes bounds request bodies read by DecodeJSON.
const MaxBodyBytes = 1 << 20

// ErrorBody is the JSON shape of an error response.
type ErrorBody struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries the code and message of an error response.
type ErrorDetail struct {
	Code      errors.Code `json:"code"`
	Message   string      `json:"message"`
	RequestID string      `json:"request_id,omitempty"`
}

// DecodeJSON decodes the request body into v. Unknown fields, trailing
// data and bodies over MaxBodyBytes are rejected as invalid input.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case stderrors.As(err, &tooLarge):
			return errors.New(errors.ErrCodeInvalidInput, "request body too large (max %d bytes)", MaxBodyBytes)
		case stderrors.Is(err, io.EOF):
			return errors.New(errors.ErrCodeInvalidInput, "request body is empty")
		default:
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request")
		}
	}
	if dec.More() {
		return errors.New(errors.ErrCodeInvalidInput, "unexpected data after JSON body")
	}
	return nil
}

// WriteJSON writes v with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}

// WriteError writes err as an ErrorBody with the status of its code.
func WriteError(w http.ResponseWriter, requestID string, err error) {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	msg := errors.UserMessage(err)
	if code == errors.ErrCodeInternal {
		msg = "internal error"
	}
	WriteJSON(w, StatusFor(err), ErrorBody{Error: ErrorDetail{
		Code:      code,
		Message:   msg,
		RequestID: requestID,
	}})
}

// StatusFor maps an error to an HTTP status code.
func StatusFor(err error) int {
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidPath:
		return http.StatusBadRequest
	case errors.ErrCodePluginNotFound, errors.ErrCodeFileNotFound:
		return http.StatusNotFound
	case errors.ErrCodeInvalidConfig, errors.ErrCodeInvalidOverride:
		return http.StatusUnprocessableEntity
	case errors.ErrCodeUnsupported:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

// MethodNotAllowed is a handler for routes hit with the wrong method.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusMethodNotAllowed, ErrorBody{Error: ErrorDetail{
		Code:    errors.ErrCodeUnsupported,
		Message: fmt.Sprintf("method %s not allowed", r.Method),
	}})
}

// NotFound is a handler for unknown routes.
func NotFound(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusNotFound, ErrorBody{Error: ErrorDetail{
		Code:    errors.ErrCodeFileNotFound,
		Message: fmt.Sprintf("no route for %s", r.URL.Path),
	}})
}
