package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/heartmarshall/mydocs-backend/internal/service/auth"
	"github.com/heartmarshall/mydocs-backend/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (auth.Identity, error)
}

// Auth resolves the caller from a bearer access token or the session
// cookie. Requests without credentials pass through anonymously. An
// invalid bearer token is rejected with 401; a stale cookie is ignored so
// the route guard can decide.
func Auth(validator tokenValidator, cookieName string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token := extractBearerToken(r); token != "" {
				id, err := validator.ValidateToken(r.Context(), token)
				if err != nil {
					writeJSONError(w, http.StatusUnauthorized, "Unauthorized")
					return
				}
				next.ServeHTTP(w, r.WithContext(withIdentity(r.Context(), id)))
				return
			}

			if c, err := r.Cookie(cookieName); err == nil && c.Value != "" {
				if id, err := validator.ValidateToken(r.Context(), c.Value); err == nil {
					next.ServeHTTP(w, r.WithContext(withIdentity(r.Context(), id)))
					return
				}
			}

			next.ServeHTTP(w, r) // Anonymous
		})
	}
}

func withIdentity(ctx context.Context, id auth.Identity) context.Context {
	ctx = ctxutil.WithUserID(ctx, id.UserID)
	return ctxutil.WithSessionID(ctx, id.SessionID)
}

func extractBearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
