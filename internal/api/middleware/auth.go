package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/drilan/barbershop-booking/internal/api/handlers"
)

// Заголовки, проставляемые внешним auth-шлюзом
const (
	HeaderUserID    = "X-User-ID"
	HeaderUserEmail = "X-User-Email"
	HeaderUserRole  = "X-User-Role"
)

// RoleAdmin роль администратора магазина
const RoleAdmin = "admin"

type contextKey string

const identityKey contextKey = "identity"

// Identity идентичность пользователя из auth-заголовков
type Identity struct {
	UserID int64
	Email  string
	Role   string
}

// IsAdmin возвращает true для администратора магазина
func (i *Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// Auth проверяет наличие auth-заголовков и кладет идентичность в контекст
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawID := r.Header.Get(HeaderUserID)
		if rawID == "" {
			handlers.RespondError(w, http.StatusUnauthorized, "требуется аутентификация")
			return
		}

		userID, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondError(w, http.StatusUnauthorized, "некорректный идентификатор пользователя")
			return
		}

		identity := &Identity{
			UserID: userID,
			Email:  r.Header.Get(HeaderUserEmail),
			Role:   r.Header.Get(HeaderUserRole),
		}

		ctx := context.WithValue(r.Context(), identityKey, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin пропускает только пользователей с ролью admin
// Должен стоять после Auth
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := IdentityFrom(r.Context())
		if !ok {
			handlers.RespondError(w, http.StatusUnauthorized, "требуется аутентификация")
			return
		}
		if !identity.IsAdmin() {
			handlers.RespondForbidden(w, "доступ только для администратора")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// IdentityFrom извлекает идентичность пользователя из контекста
func IdentityFrom(ctx context.Context) (*Identity, bool) {
	identity, ok := ctx.Value(identityKey).(*Identity)
	return identity, ok
}
