// Package httpx provides HTTP handlers and utilities for the job board API.
package httpx

import (
	"bytes"
	"encoding/json"
	"net/http"

	apperrors "github.com/humanlystaffing/jobboard-api/internal/errors"
)

// DecodeJSON decodes JSON from the request body into the destination and handles errors.
// Returns true if successful, false if there was an error (error response already written).
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_json", Err: err})
		return false
	}

	return true
}

// WriteJSON writes a JSON response with the given status code and data.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := buf.WriteTo(w); err != nil {
		// Response writer errors (e.g., client disconnect) can't be recovered from here.
		return
	}
}

// ErrorParams groups parameters for WriteError to adhere to the ≤3 params guideline.
type ErrorParams struct {
	Code    int
	ErrCode string
	Err     error
}

// WriteError writes a JSON error response using ErrorParams.
func WriteError(w http.ResponseWriter, p ErrorParams) {
	WriteJSON(w, p.Code, map[string]any{
		"success": false,
		"error":   p.ErrCode,
		"message": p.Err.Error(),
	})
}

// WriteAppError maps an application error onto the HTTP surface. Unrecognized
// errors render as 500 with a generic message so internals never leak.
func WriteAppError(w http.ResponseWriter, err error) {
	code := apperrors.GetCode(err)

	body := map[string]any{
		"success": false,
		"error":   string(code),
		"message": err.Error(),
	}
	if field := apperrors.GetField(err); field != "" {
		body["field"] = field
	}

	status, known := statusForCode(code)
	if !known {
		body["error"] = string(apperrors.ErrCodeInternal)
		body["message"] = "internal server error"
	}
	WriteJSON(w, status, body)
}

// statusForCode returns the HTTP status for an application error code and
// whether the code is part of the public taxonomy.
func statusForCode(code apperrors.ErrorCode) (int, bool) {
	switch code {
	case apperrors.ErrCodeNotFound:
		return http.StatusNotFound, true
	case apperrors.ErrCodeConflict:
		return http.StatusConflict, true
	case apperrors.ErrCodeValidation, apperrors.ErrCodeForeignKey:
		return http.StatusBadRequest, true
	case apperrors.ErrCodeForbidden:
		return http.StatusForbidden, true
	case apperrors.ErrCodeTimeout:
		return http.StatusGatewayTimeout, true
	case apperrors.ErrCodeCanceled:
		// Client went away; 499 is conventional but non-standard.
		return http.StatusRequestTimeout, true
	default:
		return http.StatusInternalServerError, false
	}
}
