package handlers

import (
	"context"
	"sync"

	"telescout-api/core/domain"
)

// mockController is a mock implementation of the search controller
type mockController struct {
	mu         sync.Mutex
	submitFunc func(ctx context.Context, keyword string) domain.SearchState
	state      domain.SearchState
	submitted  []string
}

func newMockController(state domain.SearchState) *mockController {
	return &mockController{state: state}
}

func (m *mockController) Submit(ctx context.Context, keyword string) domain.SearchState {
	m.mu.Lock()
	m.submitted = append(m.submitted, keyword)
	m.mu.Unlock()

	if m.submitFunc != nil {
		return m.submitFunc(ctx, keyword)
	}
	return m.Snapshot()
}

func (m *mockController) SubmitAsync(ctx context.Context, keyword string) <-chan domain.SearchState {
	done := make(chan domain.SearchState, 1)
	done <- m.Submit(ctx, keyword)
	close(done)
	return done
}

func (m *mockController) Snapshot() domain.SearchState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.Clone()
}

func (m *mockController) keywords() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.submitted...)
}

// mockFinder is a mock implementation of the group finder
type mockFinder struct {
	findGroupsFunc func(ctx context.Context, keyword string) (*domain.SearchOutcome, error)
}

func (m *mockFinder) FindGroups(ctx context.Context, keyword string) (*domain.SearchOutcome, error) {
	if m.findGroupsFunc != nil {
		return m.findGroupsFunc(ctx, keyword)
	}
	return &domain.SearchOutcome{}, nil
}

func sampleGroups() []domain.CommunityGroup {
	return []domain.CommunityGroup{
		{
			ID:               "group-1-0",
			Name:             "Go Türkiye",
			Description:      "Go developers",
			Link:             "https://t.me/golangtr",
			Category:         "Software",
			EstimatedMembers: "5K",
			Tags:             []string{"go", "backend", "tr", "devops"},
		},
		{
			ID:               "group-1-1",
			Name:             "gophers lounge",
			Description:      "Chat",
			Link:             "",
			Category:         "General",
			EstimatedMembers: "Unknown",
			Tags:             []string{},
		},
	}
}

func sampleSources() []domain.CitationSource {
	return []domain.CitationSource{
		{URI: "https://example.com/a", Title: "Example A"},
		{URI: "https://blog.example.org/post", Title: ""},
	}
}
