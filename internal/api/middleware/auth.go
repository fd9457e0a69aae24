package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/antoniozubakha/salon-booking-service/internal/api/handlers"
)

// AdminTokenHeader заголовок со статическим админским токеном
const AdminTokenHeader = "x-admin-token"

const (
	msgUnauthorized  = "Unauthorized"
	msgNotConfigured = "Админ-панель не настроена"
)

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// AdminAuth проверяет статический админский токен из заголовка
// Незаполненный серверный токен — отдельная ошибка конфигурации (500),
// а не пропуск любых запросов
func AdminAuth(expectedToken string, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if expectedToken == "" {
				logger.Error("AdminAuth: admin token is not configured")
				handlers.RespondError(w, http.StatusInternalServerError, msgNotConfigured)
				return
			}

			token := r.Header.Get(AdminTokenHeader)
			if subtle.ConstantTimeCompare([]byte(token), []byte(expectedToken)) != 1 {
				logger.Warn("AdminAuth: invalid admin token for %s %s", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
