package tui

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"telescout-api/core/domain"
	"telescout-api/core/session"
	"telescout-api/pkg/locale"
)

// fakeController records submissions and flips to loading on submit
type fakeController struct {
	mu        sync.Mutex
	state     domain.SearchState
	submitted []string
	listeners []session.Listener
}

func newFakeController() *fakeController {
	return &fakeController{state: domain.NewSearchState()}
}

func (f *fakeController) SubmitAsync(ctx context.Context, keyword string) <-chan domain.SearchState {
	f.mu.Lock()
	f.submitted = append(f.submitted, keyword)
	f.state.Query = keyword
	f.state.Loading = true
	f.mu.Unlock()
	return make(chan domain.SearchState)
}

func (f *fakeController) Snapshot() domain.SearchState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state.Clone()
}

func (f *fakeController) OnChange(fn session.Listener) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listeners = append(f.listeners, fn)
}

func (f *fakeController) publish(s domain.SearchState) {
	f.mu.Lock()
	listeners := append([]session.Listener(nil), f.listeners...)
	f.mu.Unlock()
	for _, fn := range listeners {
		fn(s)
	}
}

func newTestModel(t *testing.T, c Controller) Model {
	t.Helper()
	catalog, err := locale.Load("en")
	require.NoError(t, err)
	return NewModel(context.Background(), c, catalog.Page)
}

func typeText(m Model, s string) Model {
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return next.(Model)
}

func pressEnter(m Model) (Model, tea.Cmd) {
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return next.(Model), cmd
}

func TestModel_InitialViewShowsIntro(t *testing.T) {
	m := newTestModel(t, newFakeController())

	out := m.View()

	assert.Contains(t, out, "Find Telegram Groups")
	assert.Contains(t, out, "Fast Search")
	assert.Contains(t, out, "enter: search")
	assert.False(t, m.State().Loading)
}

func TestModel_EnterSubmitsAndShowsLoading(t *testing.T) {
	c := newFakeController()
	m := typeText(newTestModel(t, c), "golang")

	m, cmd := pressEnter(m)

	assert.Equal(t, []string{"golang"}, c.submitted)
	assert.True(t, m.State().Loading)
	assert.NotNil(t, cmd)
	assert.Contains(t, m.View(), "Searching...")
}

func TestModel_BlankInputDoesNotSubmit(t *testing.T) {
	c := newFakeController()
	m := typeText(newTestModel(t, c), "   ")

	m, _ = pressEnter(m)

	assert.Empty(t, c.submitted)
	assert.False(t, m.State().Loading)
}

func TestModel_InputBlockedWhileLoading(t *testing.T) {
	c := newFakeController()
	m := typeText(newTestModel(t, c), "go")
	m, _ = pressEnter(m)

	m = typeText(m, "lang")
	m, _ = pressEnter(m)

	assert.Equal(t, []string{"go"}, c.submitted)
}

func TestModel_StateMsgRendersResults(t *testing.T) {
	m := newTestModel(t, newFakeController())

	next, _ := m.Update(StateMsg{State: domain.SearchState{
		Query: "golang",
		Results: []domain.CommunityGroup{
			{
				Name:             "Go Türkiye",
				Description:      "Go developers",
				Link:             "https://t.me/golangtr",
				Category:         "Software",
				EstimatedMembers: "5K",
				Tags:             []string{"go", "backend", "tr", "devops"},
			},
			{
				Name:             "gophers lounge",
				Description:      "Chat",
				Category:         "General",
				EstimatedMembers: "Unknown",
				Tags:             []string{},
			},
		},
		Sources: []domain.CitationSource{{URI: "https://blog.example.org/post"}},
	}})
	m = next.(Model)
	out := m.View()

	assert.Contains(t, out, `Results: "golang"`)
	assert.Contains(t, out, "2 groups found")
	assert.Contains(t, out, "https://t.me/golangtr")
	assert.Contains(t, out, "#go #backend #tr")
	assert.NotContains(t, out, "#devops")
	assert.Contains(t, out, "https://www.google.com/search?q=")
	assert.Contains(t, out, "blog.example.org")
	assert.NotContains(t, out, "Fast Search")
}

func TestModel_StateMsgShowsErrorAndUnblocksInput(t *testing.T) {
	c := newFakeController()
	m := typeText(newTestModel(t, c), "go")
	m, _ = pressEnter(m)

	next, _ := m.Update(StateMsg{State: domain.SearchState{
		Query:   "go",
		Results: []domain.CommunityGroup{},
		Sources: []domain.CitationSource{},
		Error:   "Network Error",
	}})
	m = next.(Model)

	assert.Contains(t, m.View(), "Network Error")
	assert.NotContains(t, m.View(), "No results")

	c.mu.Lock()
	c.state.Loading = false
	c.mu.Unlock()

	m, _ = pressEnter(m)
	assert.Equal(t, []string{"go", "go"}, c.submitted)
}

func TestModel_NoResults(t *testing.T) {
	m := newTestModel(t, newFakeController())

	next, _ := m.Update(StateMsg{State: domain.SearchState{Query: "obscure"}})

	assert.Contains(t, next.(Model).View(), `No results for "obscure".`)
}

func TestModel_EscQuits(t *testing.T) {
	m := newTestModel(t, newFakeController())

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Equal(t, "", next.(Model).View())
}

func TestForward_DeliversStateMessages(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c := newFakeController()
	received := make(chan tea.Msg, 2)
	Forward(ctx, c, func(msg tea.Msg) { received <- msg })

	c.publish(domain.SearchState{Query: "go", Loading: true})
	c.publish(domain.SearchState{Query: "go"})

	for _, wantLoading := range []bool{true, false} {
		select {
		case msg := <-received:
			state := msg.(StateMsg).State
			assert.Equal(t, "go", state.Query)
			assert.Equal(t, wantLoading, state.Loading)
		case <-time.After(time.Second):
			t.Fatal("state message not delivered")
		}
	}
}

func TestForward_FullQueueDropsOldestWithoutBlocking(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c := newFakeController()
	gate := make(chan struct{})
	total := stateBuffer * 3
	received := make(chan tea.Msg, total)
	Forward(ctx, c, func(msg tea.Msg) {
		<-gate
		received <- msg
	})

	published := make(chan struct{})
	go func() {
		defer close(published)
		for i := 0; i < total; i++ {
			c.publish(domain.SearchState{Query: fmt.Sprintf("q-%d", i)})
		}
	}()

	select {
	case <-published:
	case <-time.After(time.Second):
		t.Fatal("listener blocked on a full queue")
	}

	close(gate)
	want := fmt.Sprintf("q-%d", total-1)
	count := 0
	for {
		select {
		case msg := <-received:
			count++
			if msg.(StateMsg).State.Query == want {
				assert.LessOrEqual(t, count, stateBuffer+1)
				return
			}
		case <-time.After(time.Second):
			t.Fatalf("latest state %q not delivered after %d messages", want, count)
		}
	}
}
