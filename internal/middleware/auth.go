package middleware

import (
	"net/http"
	"strings"

	"github.com/trackfit/trackfit/internal/ctxkeys"
	"github.com/trackfit/trackfit/internal/handler"
	"github.com/trackfit/trackfit/internal/service"
)

// RequireAuth verifies the bearer token, resolves it to a user and stores
// the user in the request context. Missing or invalid credentials fail the
// request with 401 before the handler runs.
func RequireAuth(authService *service.AuthService) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				handler.RespondError(w, http.StatusUnauthorized, "Not authorized, no token")
				return
			}

			claims, err := authService.VerifyJWT(token)
			if err != nil {
				handler.RespondError(w, http.StatusUnauthorized, "Not authorized, token failed")
				return
			}

			userID, ok := claims["user_id"].(string)
			if !ok {
				handler.RespondError(w, http.StatusUnauthorized, "Not authorized, token failed")
				return
			}

			user, err := authService.Profile(userID)
			if err != nil {
				handler.RespondError(w, http.StatusUnauthorized, "Not authorized, token failed")
				return
			}

			// Never expose the hash downstream
			user.PasswordHash = ""

			ctx := ctxkeys.WithUser(r.Context(), user)
			next.ServeHTTP(w, r.WithContext(ctx))
		}
	}
}

func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return ""
	}
	const prefix = "Bearer "
	if !strings.HasPrefix(auth, prefix) {
		return ""
	}
	return strings.TrimSpace(auth[len(prefix):])
}
