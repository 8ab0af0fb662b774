package httpx

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/humanlystaffing/jobboard-api/internal/errors"
)

func TestWriteAppError_StatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"not found", apperrors.NotFound("missing"), http.StatusNotFound, "not_found"},
		{"conflict", apperrors.Conflict("dup"), http.StatusConflict, "conflict"},
		{"validation", apperrors.ValidationField("title", "too short"), http.StatusBadRequest, "validation"},
		{"forbidden", apperrors.Forbidden("nope"), http.StatusForbidden, "forbidden"},
		{"plain error hides internals", assert.AnError, http.StatusInternalServerError, "internal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			WriteAppError(rec, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decodeBody(t, rec)
			assert.Equal(t, tt.wantCode, body["error"])
			assert.Equal(t, false, body["success"])
		})
	}
}

func TestWriteAppError_IncludesField(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	WriteAppError(rec, apperrors.ValidationField("email", "A valid email address is required"))

	body := decodeBody(t, rec)
	assert.Equal(t, "email", body["field"])
}

func TestDecodeJSON_RejectsUnknownFields(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"bogus":true}`))
	rec := httptest.NewRecorder()

	var dst struct {
		Title string `json:"title"`
	}
	assert.False(t, DecodeJSON(rec, req, &dst))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_json", decodeBody(t, rec)["error"])
}

func TestDecodeJSON_EmptyBodyIs400(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Body = http.NoBody
	rec := httptest.NewRecorder()

	var dst struct{}
	assert.False(t, DecodeJSON(rec, req, &dst))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
