// ABOUTME: Mappers for converting between search domain models and API DTOs
// ABOUTME: Provides clean separation between business logic and API layer

package mappers

import (
	"telescout-api/api/dto/responses"
	"telescout-api/core/domain"
)

// ToGroupResponse converts a domain group to a GroupResponse DTO.
// searchSuffix is appended to the name for the fallback search URL.
func ToGroupResponse(g domain.CommunityGroup, searchSuffix string) responses.GroupResponse {
	tags := g.Tags
	if tags == nil {
		tags = []string{}
	}
	return responses.GroupResponse{
		ID:               g.ID,
		Name:             g.Name,
		Description:      g.Description,
		Link:             g.Link,
		Category:         g.Category,
		EstimatedMembers: g.EstimatedMembers,
		Tags:             append([]string{}, tags...),
		DirectLink:       g.IsDirectLink(),
		JoinURL:          g.JoinURL(searchSuffix),
	}
}

// ToGroupResponses converts multiple domain groups
func ToGroupResponses(groups []domain.CommunityGroup, searchSuffix string) []responses.GroupResponse {
	out := make([]responses.GroupResponse, 0, len(groups))
	for _, g := range groups {
		out = append(out, ToGroupResponse(g, searchSuffix))
	}
	return out
}

// ToSourceResponses converts citation sources
func ToSourceResponses(sources []domain.CitationSource) []responses.SourceResponse {
	out := make([]responses.SourceResponse, 0, len(sources))
	for _, s := range sources {
		out = append(out, responses.SourceResponse{URI: s.URI, Title: s.Title})
	}
	return out
}

// ToStateResponse converts a state snapshot
func ToStateResponse(s domain.SearchState, searchSuffix string) *responses.StateResponse {
	v := s.View()
	resp := &responses.StateResponse{
		Query:   s.Query,
		Loading: s.Loading,
		Results: ToGroupResponses(s.Results, searchSuffix),
		Sources: ToSourceResponses(s.Sources),
		View: responses.ViewResponse{
			ShowError:     v.ShowError,
			ShowResults:   v.ShowResults,
			ShowSources:   v.ShowSources,
			ShowNoResults: v.ShowNoResults,
			ShowIntro:     v.ShowIntro,
			InputDisabled: v.InputDisabled,
		},
	}
	if s.HasError() {
		msg := s.Error
		resp.Error = &msg
	}
	return resp
}

// ToFindGroupsResponse converts a search outcome
func ToFindGroupsResponse(o *domain.SearchOutcome, searchSuffix string) *responses.FindGroupsResponse {
	if o == nil {
		return &responses.FindGroupsResponse{
			Groups:  []responses.GroupResponse{},
			Sources: []responses.SourceResponse{},
		}
	}
	return &responses.FindGroupsResponse{
		Groups:  ToGroupResponses(o.Groups, searchSuffix),
		Sources: ToSourceResponses(o.Sources),
	}
}
