// ABOUTME: Health handler reporting liveness and the active feature flags
// ABOUTME: Used by load balancers and for quick configuration checks

package handlers

import (
	"context"
	"net/http"
	"sort"

	"github.com/danielgtaylor/huma/v2"

	"telescout-api/pkg/featureflags"
)

// HealthHandler handles the health endpoint
type HealthHandler struct {
	locale string
	model  string
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(locale, model string) *HealthHandler {
	return &HealthHandler{locale: locale, model: model}
}

// RegisterRoutes registers health routes
func (h *HealthHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/healthz",
		Summary:     "Health check",
		Tags:        []string{"Health"},
	}, h.Health)
}

// HealthBody is the health payload
type HealthBody struct {
	Status   string   `json:"status" doc:"Always 'ok' when the server is up"`
	Locale   string   `json:"locale" doc:"Active locale"`
	Model    string   `json:"model" doc:"Configured model id"`
	Features []string `json:"features" doc:"Enabled feature flags"`
}

// HealthOutput defines the health response
type HealthOutput struct {
	Body HealthBody
}

// Health handles the GET /healthz endpoint
func (h *HealthHandler) Health(ctx context.Context, input *struct{}) (*HealthOutput, error) {
	out := &HealthOutput{}
	out.Body.Status = "ok"
	out.Body.Locale = h.locale
	out.Body.Model = h.model
	out.Body.Features = []string{}

	for flag, enabled := range featureflags.FromContext(ctx).GetAllFlags() {
		if enabled {
			out.Body.Features = append(out.Body.Features, string(flag))
		}
	}
	sort.Strings(out.Body.Features)

	return out, nil
}
