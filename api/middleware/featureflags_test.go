package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"telescout-api/pkg/featureflags"
)

func TestFeatureFlagsMiddleware_StoresManager(t *testing.T) {
	manager := featureflags.NewStaticManager(map[featureflags.FeatureFlag]bool{
		featureflags.HTMLFrontend: true,
	})

	var htmlEnabled, directEnabled bool
	handler := FeatureFlagsMiddleware(manager)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		htmlEnabled = featureflags.IsEnabled(r.Context(), featureflags.HTMLFrontend)
		directEnabled = featureflags.IsEnabled(r.Context(), featureflags.DirectSearchAPI)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.True(t, htmlEnabled)
	assert.False(t, directEnabled)
}
