// AngelaMos | 2026
// response_test.go

package core

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type errorEnvelope struct {
	Success bool `json:"success"`
	Error   struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorEnvelope {
	t.Helper()
	var env errorEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestHandleErrorMapsSentinels(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"invalid input", fmt.Errorf("parse: %w", ErrInvalidInput), http.StatusBadRequest, "BAD_REQUEST"},
		{"not found", fmt.Errorf("get booking: %w", ErrNotFound), http.StatusNotFound, "NOT_FOUND"},
		{"unauthorized", ErrUnauthorized, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"token expired", ErrTokenExpired, http.StatusUnauthorized, "TOKEN_EXPIRED"},
		{"forbidden", ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
		{"duplicate", fmt.Errorf("create: %w", ErrDuplicateKey), http.StatusConflict, "DUPLICATE"},
		{"conflict", ErrConflict, http.StatusConflict, "CONFLICT"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/x", nil)

			HandleError(rec, req, tt.err)

			assert.Equal(t, tt.status, rec.Code)
			env := decodeError(t, rec)
			assert.False(t, env.Success)
			assert.Equal(t, tt.code, env.Error.Code)
		})
	}
}

func TestHandleErrorKeepsAppErrorMessage(t *testing.T) {
	slotTaken := NewAppError(ErrConflict, "Time slot is already booked", http.StatusConflict, "SLOT_TAKEN")
	rec := httptest.NewRecorder()

	HandleError(rec, httptest.NewRequest(http.MethodPost, "/", nil), fmt.Errorf("create booking: %w", slotTaken))

	assert.Equal(t, http.StatusConflict, rec.Code)
	env := decodeError(t, rec)
	assert.Equal(t, "SLOT_TAKEN", env.Error.Code)
	assert.Equal(t, "Time slot is already booked", env.Error.Message)
	assert.True(t, errors.Is(slotTaken, ErrConflict))
}

type sampleRequest struct {
	Email string `json:"email" validate:"required,email"`
	Start string `json:"start_time" validate:"required,hhmm"`
	Phone string `json:"phone" validate:"omitempty,phone"`
}

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		ok      bool
		message string
	}{
		{"valid", `{"email":"a@b.co","start_time":"09:30","phone":"+919876543210"}`, true, ""},
		{"malformed", `{`, false, "invalid request body"},
		{"bad clock", `{"email":"a@b.co","start_time":"9:30"}`, false, "start_time must be a time in HH:MM format"},
		{"bad phone", `{"email":"a@b.co","start_time":"10:00","phone":"12ab"}`, false, "phone must be 10 to 15 digits"},
		{"missing email", `{"start_time":"10:00"}`, false, "email is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))

			var dst sampleRequest
			ok := DecodeJSON(rec, req, &dst)

			assert.Equal(t, tt.ok, ok)
			if !tt.ok {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Contains(t, decodeError(t, rec).Error.Message, tt.message)
			}
		})
	}
}

func TestPaginatedMeta(t *testing.T) {
	rec := httptest.NewRecorder()
	Paginated(rec, []string{"a", "b"}, 2, 2, 5)

	var body struct {
		Success bool     `json:"success"`
		Data    []string `json:"data"`
		Meta    PageMeta `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.True(t, body.Success)
	assert.Equal(t, 3, body.Meta.TotalPages)
	assert.Equal(t, int64(5), body.Meta.Total)
}
