// ABOUTME: Search handlers exposing the session state and group search over JSON
// ABOUTME: Stateful endpoints go through the session controller; the direct endpoint is stateless

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"telescout-api/api/dto/mappers"
	"telescout-api/api/dto/requests"
	"telescout-api/api/dto/responses"
	"telescout-api/core/domain"
	"telescout-api/core/session"
)

// SearchController is the part of the session controller the handlers use
type SearchController interface {
	Submit(ctx context.Context, keyword string) domain.SearchState
	SubmitAsync(ctx context.Context, keyword string) <-chan domain.SearchState
	Snapshot() domain.SearchState
}

// SearchHandler handles the stateful search endpoints
type SearchHandler struct {
	controller   SearchController
	searchSuffix string
}

// NewSearchHandler creates a new search handler.
// searchSuffix is appended to group names for fallback join searches.
func NewSearchHandler(controller SearchController, searchSuffix string) *SearchHandler {
	return &SearchHandler{
		controller:   controller,
		searchSuffix: searchSuffix,
	}
}

// RegisterRoutes registers search routes
func (h *SearchHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getState",
		Method:      http.MethodGet,
		Path:        "/api/state",
		Summary:     "Get search state",
		Description: "Returns the current search state: last query, loading flag, results, error and citation sources",
		Tags:        []string{"Search"},
	}, h.GetState)

	huma.Register(api, huma.Operation{
		OperationID: "submitSearch",
		Method:      http.MethodPost,
		Path:        "/api/search",
		Summary:     "Search community groups",
		Description: "Runs a grounded search for the keyword and returns the resulting state. Failures are reported in the state's error field.",
		Tags:        []string{"Search"},
	}, h.Submit)
}

// StateOutput defines the output carrying the search state
type StateOutput struct {
	Body *responses.StateResponse
}

// SearchInput defines the input for a search
type SearchInput struct {
	Body requests.SearchRequest
}

// GetState handles the GET /api/state endpoint
func (h *SearchHandler) GetState(ctx context.Context, input *struct{}) (*StateOutput, error) {
	return &StateOutput{Body: mappers.ToStateResponse(h.controller.Snapshot(), h.searchSuffix)}, nil
}

// Submit handles the POST /api/search endpoint.
// The search outlives a disconnected client so the shared state always settles.
func (h *SearchHandler) Submit(ctx context.Context, input *SearchInput) (*StateOutput, error) {
	state := h.controller.Submit(context.WithoutCancel(ctx), input.Body.Keyword)
	return &StateOutput{Body: mappers.ToStateResponse(state, h.searchSuffix)}, nil
}

// FindHandler handles the stateless group search endpoint
type FindHandler struct {
	finder       session.GroupFinder
	searchSuffix string
}

// NewFindHandler creates a new stateless search handler
func NewFindHandler(finder session.GroupFinder, searchSuffix string) *FindHandler {
	return &FindHandler{
		finder:       finder,
		searchSuffix: searchSuffix,
	}
}

// RegisterRoutes registers the stateless search route
func (h *FindHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "findGroups",
		Method:      http.MethodPost,
		Path:        "/api/groups/find",
		Summary:     "Find community groups",
		Description: "Runs a grounded search without touching the shared state and returns groups with citation sources",
		Tags:        []string{"Search"},
	}, h.FindGroups)
}

// FindGroupsOutput defines the output for a stateless search
type FindGroupsOutput struct {
	Body *responses.FindGroupsResponse
}

// FindGroups handles the POST /api/groups/find endpoint
func (h *FindHandler) FindGroups(ctx context.Context, input *SearchInput) (*FindGroupsOutput, error) {
	outcome, err := h.finder.FindGroups(ctx, input.Body.Keyword)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &FindGroupsOutput{Body: mappers.ToFindGroupsResponse(outcome, h.searchSuffix)}, nil
}
