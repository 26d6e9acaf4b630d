package middleware

import (
	"context"
	"net/http"

	"github.com/chungmangjie200/ZCal-MeetingService/internal/api/handlers"
)

// HeaderUserUID заголовок с UID владельца из сессии AuthService
// Сессии резолвит API gateway; сервис доверяет заголовку
const HeaderUserUID = "X-User-UID"

type contextKey string

const userUIDKey contextKey = "user_uid"

// Auth проверяет наличие X-User-UID и кладет его в контекст запроса
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uid := r.Header.Get(HeaderUserUID)
		if uid == "" {
			handlers.RespondError(w, http.StatusUnauthorized, "missing "+HeaderUserUID+" header")
			return
		}

		ctx := context.WithValue(r.Context(), userUIDKey, uid)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserUID достает UID пользователя из контекста запроса
// Пустая строка означает, что запрос не проходил через Auth
func UserUID(ctx context.Context) string {
	uid, _ := ctx.Value(userUIDKey).(string)
	return uid
}
