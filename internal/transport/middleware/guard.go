package middleware

import (
	"net/http"
	"strings"

	"github.com/heartmarshall/mydocs-backend/pkg/ctxutil"
)

// Route guard destinations.
const (
	LoginPath     = "/login"
	DashboardPath = "/dashboard"
)

var (
	protectedPrefixes = []string{"/dashboard", "/onboarding"}
	guestOnlyPaths    = []string{"/login", "/signup"}
)

// publicAPIPaths are reachable under /api without a session.
var publicAPIPaths = []string{"/api/reimagine"}

// Guard enforces route access. Pages under /dashboard and /onboarding
// redirect anonymous callers to /login; /login and /signup redirect signed
// in users to /dashboard; /api routes answer 401 without an identity.
// Page view tracking under /api/pages/{id}/views stays public.
func Guard() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, signedIn := ctxutil.UserIDFromCtx(r.Context())
			path := r.URL.Path

			switch {
			case !signedIn && hasAnyPrefix(path, protectedPrefixes):
				http.Redirect(w, r, LoginPath, http.StatusFound)
				return
			case signedIn && isAnyPath(path, guestOnlyPaths):
				http.Redirect(w, r, DashboardPath, http.StatusFound)
				return
			case !signedIn && isPrivateAPI(path):
				writeJSONError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func isPrivateAPI(path string) bool {
	if !hasAnyPrefix(path, []string{"/api"}) {
		return false
	}
	if isAnyPath(path, publicAPIPaths) {
		return false
	}
	return !(strings.HasPrefix(path, "/api/pages/") && strings.HasSuffix(path, "/views"))
}

// hasAnyPrefix matches whole path segments: /dashboard matches /dashboard
// and /dashboard/x but not /dashboards.
func hasAnyPrefix(path string, prefixes []string) bool {
	for _, p := range prefixes {
		if path == p || strings.HasPrefix(path, p+"/") {
			return true
		}
	}
	return false
}

func isAnyPath(path string, paths []string) bool {
	path = strings.TrimSuffix(path, "/")
	for _, p := range paths {
		if path == p {
			return true
		}
	}
	return false
}
