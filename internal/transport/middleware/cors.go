package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/heartmarshall/mydocs-backend/internal/config"
)

// CORS answers preflight requests and reflects allowed origins. Only origins
// listed by name get Access-Control-Allow-Credentials; a "*" entry never does.
func CORS(cfg config.CORSConfig) Middleware {
	named, wildcard := parseOrigins(cfg.AllowedOrigins)
	maxAge := strconv.Itoa(cfg.MaxAge)
	exposed := RequestIDHeader + ", Retry-After"

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Add("Vary", "Origin")

			origin := r.Header.Get("Origin")
			if origin != "" {
				listed := named[origin]
				if listed || wildcard {
					h.Set("Access-Control-Allow-Origin", origin)
					h.Set("Access-Control-Expose-Headers", exposed)
				}
				if listed && cfg.AllowCredentials {
					h.Set("Access-Control-Allow-Credentials", "true")
				}
			}

			if r.Method == http.MethodOptions {
				h.Set("Access-Control-Allow-Methods", cfg.AllowedMethods)
				h.Set("Access-Control-Allow-Headers", cfg.AllowedHeaders)
				h.Set("Access-Control-Max-Age", maxAge)
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// parseOrigins splits the comma-separated config value into named origins
// and a wildcard flag.
func parseOrigins(list string) (named map[string]bool, wildcard bool) {
	named = make(map[string]bool)
	for _, o := range strings.Split(list, ",") {
		switch o = strings.TrimSpace(o); o {
		case "":
		case "*":
			wildcard = true
		default:
			named[o] = true
		}
	}
	return named, wildcard
}
