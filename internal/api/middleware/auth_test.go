package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuth(t *testing.T) {
	var gotUserID int64
	var called bool

	handler := Auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		userID, ok := GetUserID(r.Context())
		require.True(t, ok)
		gotUserID = userID
	}))

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantCalled bool
	}{
		{"valid user id", "42", http.StatusOK, true},
		{"missing header", "", http.StatusUnauthorized, false},
		{"not a number", "abc", http.StatusUnauthorized, false},
		{"zero id", "0", http.StatusUnauthorized, false},
		{"negative id", "-5", http.StatusUnauthorized, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called = false
			req := httptest.NewRequest(http.MethodGet, "/api/v1/reservations", nil)
			if tt.header != "" {
				req.Header.Set(UserIDHeader, tt.header)
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCalled, called)
		})
	}

	assert.Equal(t, int64(42), gotUserID)
}

func TestOptionalUserID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/rooms/1/price-quote", nil)

	// Без заголовка - анонимный запрос
	userID, err := OptionalUserID(req)
	require.NoError(t, err)
	assert.Nil(t, userID)

	// С валидным заголовком
	req.Header.Set(UserIDHeader, "42")
	userID, err = OptionalUserID(req)
	require.NoError(t, err)
	require.NotNil(t, userID)
	assert.Equal(t, int64(42), *userID)

	// С мусором в заголовке
	req.Header.Set(UserIDHeader, "abc")
	_, err = OptionalUserID(req)
	assert.Error(t, err)
}

func TestGetUserID_EmptyContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := GetUserID(req.Context())
	assert.False(t, ok)
}
