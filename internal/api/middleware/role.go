package middleware

import (
	"context"
	"net/http"

	"github.com/Zero-Index-Tech/ZeroBook/internal/api/handlers"
	"github.com/Zero-Index-Tech/ZeroBook/internal/domain"
)

type contextKey string

// roleContextKey ключ роли в контексте запроса
const roleContextKey contextKey = "role"

// RoleHeader HTTP заголовок с ролью вызывающего
const RoleHeader = "X-User-Role"

const msgInvalidRole = "некорректная роль в заголовке X-User-Role"

// Role извлекает роль вызывающего из заголовка X-User-Role и кладет ее
// в контекст запроса. Отсутствие заголовка трактуется как customer -
// публичные операции доступны без заголовков. Неизвестное значение - 400
func Role(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role := domain.Role(r.Header.Get(RoleHeader))
		if role == "" {
			role = domain.RoleCustomer
		}

		if !role.IsValid() {
			handlers.RespondBadRequest(w, msgInvalidRole)
			return
		}

		ctx := context.WithValue(r.Context(), roleContextKey, role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RoleFromContext возвращает роль из контекста запроса.
// Вне цепочки Role middleware возвращает customer
func RoleFromContext(ctx context.Context) domain.Role {
	if role, ok := ctx.Value(roleContextKey).(domain.Role); ok {
		return role
	}
	return domain.RoleCustomer
}
