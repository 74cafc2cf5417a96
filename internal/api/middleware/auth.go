package middleware

import (
	"autosallon/internal/app/service"
	"autosallon/internal/common"
	"autosallon/internal/domain/model"
	"context"
	"net/http"
)

type contextKey string

const UserCtxKey contextKey = "currentUser"

// SessionLoader resolves the session cookie to its user and stores the user
// in the request context. Requests without a valid session pass through
// untouched; RequireAdmin decides whether that matters.
func SessionLoader(authService *service.AuthService, cookieName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(w, r)
				return
			}

			user, err := authService.CurrentUser(r.Context(), cookie.Value)
			if err != nil {
				// Unknown, expired, or stale session: treat as anonymous.
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), UserCtxKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin gates a route on an active session resolving to an
// admin-flagged user: 401 without a session, 403 for non-admins. It has no
// side effects of its own.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFromContext(r.Context())
		if !ok {
			common.RespondWithError(w, http.StatusUnauthorized, "Not authenticated")
			return
		}
		if !user.IsAdmin {
			common.RespondWithError(w, http.StatusForbidden, "Not authorized")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// UserFromContext returns the session user placed by SessionLoader.
func UserFromContext(ctx context.Context) (*model.User, bool) {
	user, ok := ctx.Value(UserCtxKey).(*model.User)
	return user, ok
}
