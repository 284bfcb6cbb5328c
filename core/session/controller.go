// ABOUTME: Session controller owning the search state and its single mutation entry point
// ABOUTME: Runs group searches, applies only the latest completion and notifies listeners

package session

import (
	"context"
	"strings"
	"sync"

	"telescout-api/core/domain"
	"telescout-api/core/interfaces"
	"telescout-api/pkg/locale"
)

// GroupFinder finds community groups for a keyword
type GroupFinder interface {
	FindGroups(ctx context.Context, keyword string) (*domain.SearchOutcome, error)
}

// Listener receives a copy of the state after every transition
type Listener func(domain.SearchState)

// Controller is the only writer of the search state.
// Listeners are called in transition order and must not call Submit synchronously.
type Controller struct {
	finder   GroupFinder
	messages locale.Messages
	logger   interfaces.Logger

	mu    sync.Mutex
	seq   uint64
	state domain.SearchState

	notifyMu  sync.Mutex
	listeners []Listener
}

// NewController creates a controller in the initial state
func NewController(finder GroupFinder, messages locale.Messages, logger interfaces.Logger) *Controller {
	if logger == nil {
		logger = interfaces.NopLogger{}
	}
	return &Controller{
		finder:   finder,
		messages: messages,
		logger:   logger,
		state:    domain.NewSearchState(),
	}
}

// Snapshot returns a copy of the current state
func (c *Controller) Snapshot() domain.SearchState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Clone()
}

// OnChange registers fn to be called after each state transition
func (c *Controller) OnChange(fn Listener) {
	if fn == nil {
		return
	}
	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()
	c.listeners = append(c.listeners, fn)
}

// Submit runs a search for keyword and returns the state it left behind.
// A blank keyword changes nothing. When a newer Submit started while this
// one was in flight, this call's outcome is discarded.
func (c *Controller) Submit(ctx context.Context, keyword string) domain.SearchState {
	trimmed := strings.TrimSpace(keyword)
	if trimmed == "" {
		return c.Snapshot()
	}

	seq := c.begin(keyword)
	return c.finish(ctx, seq, trimmed)
}

// SubmitAsync publishes the loading state before returning and completes the
// search in the background. The channel receives the final snapshot.
func (c *Controller) SubmitAsync(ctx context.Context, keyword string) <-chan domain.SearchState {
	done := make(chan domain.SearchState, 1)

	trimmed := strings.TrimSpace(keyword)
	if trimmed == "" {
		done <- c.Snapshot()
		close(done)
		return done
	}

	seq := c.begin(keyword)
	go func() {
		defer close(done)
		done <- c.finish(ctx, seq, trimmed)
	}()
	return done
}

func (c *Controller) begin(keyword string) uint64 {
	return c.update(func(s *domain.SearchState) {
		s.Loading = true
		s.Error = ""
		s.Query = keyword
	})
}

func (c *Controller) finish(ctx context.Context, seq uint64, keyword string) domain.SearchState {
	outcome, err := c.finder.FindGroups(ctx, keyword)

	applied := c.apply(seq, func(s *domain.SearchState) {
		s.Loading = false
		if err != nil {
			s.Error = UserMessage(err, c.messages)
			return
		}
		if outcome == nil {
			outcome = &domain.SearchOutcome{}
		}
		s.Results = cloneGroups(outcome.Groups)
		s.Sources = append(make([]domain.CitationSource, 0, len(outcome.Sources)), outcome.Sources...)
	})

	switch {
	case !applied:
		c.logger.Debug("Discarded stale search result", map[string]interface{}{
			"keyword": keyword,
			"seq":     seq,
		})
	case err != nil:
		c.logger.Warn("Search failed", map[string]interface{}{
			"keyword": keyword,
			"error":   err.Error(),
		})
	default:
		c.logger.Info("Search state updated", map[string]interface{}{
			"keyword": keyword,
			"results": len(outcome.Groups),
			"sources": len(outcome.Sources),
		})
	}

	return c.Snapshot()
}

// update starts a new search generation and returns its sequence number
func (c *Controller) update(mutate func(*domain.SearchState)) uint64 {
	c.mu.Lock()
	c.seq++
	seq := c.seq
	mutate(&c.state)
	snap := c.state.Clone()
	c.notifyMu.Lock()
	c.mu.Unlock()

	c.notifyLocked(snap)
	return seq
}

// apply mutates the state only when seq is still the latest generation
func (c *Controller) apply(seq uint64, mutate func(*domain.SearchState)) bool {
	c.mu.Lock()
	if seq != c.seq {
		c.mu.Unlock()
		return false
	}
	mutate(&c.state)
	snap := c.state.Clone()
	c.notifyMu.Lock()
	c.mu.Unlock()

	c.notifyLocked(snap)
	return true
}

// notifyLocked calls every listener and releases notifyMu
func (c *Controller) notifyLocked(snap domain.SearchState) {
	defer c.notifyMu.Unlock()
	for _, fn := range c.listeners {
		fn(snap.Clone())
	}
}

func cloneGroups(groups []domain.CommunityGroup) []domain.CommunityGroup {
	out := make([]domain.CommunityGroup, 0, len(groups))
	for _, g := range groups {
		out = append(out, g.Clone())
	}
	return out
}
