// Package middleware HTTP middleware: аутентификация, request id, метрики
package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/aitzhn/PS-BookingService/internal/api/handlers"
)

type userIDKey struct{}

// UserIDHeader заголовок с идентификатором пользователя.
// Аутентификацию выполняет внешний шлюз, сервис доверяет заголовку.
const UserIDHeader = "X-User-ID"

// Auth проверяет наличие корректного X-User-ID и кладет его в контекст
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(UserIDHeader)
		if raw == "" {
			handlers.RespondUnauthorized(w, "отсутствует заголовок X-User-ID")
			return
		}

		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, "некорректный заголовок X-User-ID")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey{}, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID возвращает ID пользователя из контекста
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey{}).(int64)
	return userID, ok
}

// OptionalUserID возвращает ID пользователя из заголовка, если он передан.
// Используется публичными ручками, где аутентификация необязательна.
func OptionalUserID(r *http.Request) (*int64, error) {
	raw := r.Header.Get(UserIDHeader)
	if raw == "" {
		return nil, nil
	}

	userID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || userID <= 0 {
		return nil, strconv.ErrSyntax
	}

	return &userID, nil
}
