// ABOUTME: Middleware attaching the feature flag manager to each request context
// ABOUTME: Lets handlers read flags through featureflags.FromContext

package middleware

import (
	"net/http"

	"telescout-api/pkg/featureflags"
)

// FeatureFlagsMiddleware stores manager in the request context
func FeatureFlagsMiddleware(manager featureflags.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := featureflags.WithManager(r.Context(), manager)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
