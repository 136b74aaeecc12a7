package auth

import (
	"context"
	"net/http"
	"strings"

	"socialapp/models"
	"socialapp/repositories"
)

type contextKey string

const principalKey contextKey = "principal"

// Principal returns the authenticated user stored in the request context, or
// nil on unauthenticated requests.
func Principal(ctx context.Context) *models.User {
	user, _ := ctx.Value(principalKey).(*models.User)
	return user
}

// RequireAuth parses the Bearer token, resolves the subject to an account,
// and injects it into the request context. Requests without a valid token for
// an existing account get 401.
func RequireAuth(manager *Manager, users repositories.UserRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				http.Error(w, `{"error": "missing bearer token"}`, http.StatusUnauthorized)
				return
			}

			subject, err := manager.Subject(token)
			if err != nil {
				http.Error(w, `{"error": "invalid token"}`, http.StatusUnauthorized)
				return
			}

			user, err := users.FindByUsername(subject)
			if err != nil {
				http.Error(w, `{"error": "database error"}`, http.StatusInternalServerError)
				return
			}
			if user == nil {
				http.Error(w, `{"error": "unknown account"}`, http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), principalKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
