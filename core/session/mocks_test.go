package session

import (
	"context"

	"github.com/stretchr/testify/mock"

	"telescout-api/core/domain"
)

// mockFinder is a testify mock of GroupFinder
type mockFinder struct {
	mock.Mock
}

func (m *mockFinder) FindGroups(ctx context.Context, keyword string) (*domain.SearchOutcome, error) {
	args := m.Called(ctx, keyword)
	outcome, _ := args.Get(0).(*domain.SearchOutcome)
	return outcome, args.Error(1)
}

// gatedFinder blocks each call until the test releases it
type gatedFinder struct {
	started chan string
	release map[string]chan result
}

type result struct {
	outcome *domain.SearchOutcome
	err     error
}

func newGatedFinder(keywords ...string) *gatedFinder {
	f := &gatedFinder{
		started: make(chan string, len(keywords)),
		release: make(map[string]chan result, len(keywords)),
	}
	for _, k := range keywords {
		f.release[k] = make(chan result, 1)
	}
	return f
}

func (f *gatedFinder) FindGroups(ctx context.Context, keyword string) (*domain.SearchOutcome, error) {
	f.started <- keyword
	r := <-f.release[keyword]
	return r.outcome, r.err
}
