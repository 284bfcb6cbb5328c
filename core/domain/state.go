// ABOUTME: Search state model shared between the state controller and the presentation layers
// ABOUTME: Provides copy semantics and the view decision derived purely from state

package domain

// SearchState is the process-wide UI state for one application session.
// Only the session controller mutates it; everybody else reads snapshots.
type SearchState struct {
	// Query is the last submitted keyword
	Query string

	// Loading is true while a search is in flight
	Loading bool

	// Results are the groups from the last successful search
	Results []CommunityGroup

	// Error is the user-facing message of the last failure, empty when none
	Error string

	// Sources are the citation sources from the last successful search
	Sources []CitationSource
}

// NewSearchState returns the initial state with empty defaults
func NewSearchState() SearchState {
	return SearchState{
		Results: []CommunityGroup{},
		Sources: []CitationSource{},
	}
}

// HasError reports whether an error message is set
func (s SearchState) HasError() bool {
	return s.Error != ""
}

// Clone returns a deep copy so callers can't reach back into controller state
func (s SearchState) Clone() SearchState {
	c := s
	c.Results = make([]CommunityGroup, 0, len(s.Results))
	for _, g := range s.Results {
		c.Results = append(c.Results, g.Clone())
	}
	c.Sources = append(make([]CitationSource, 0, len(s.Sources)), s.Sources...)
	return c
}

// View describes which parts of the page a presentation layer should render
type View struct {
	ShowError     bool
	ShowResults   bool
	ShowSources   bool
	ShowNoResults bool
	ShowIntro     bool
	InputDisabled bool
}

// View derives the presentation decision from state.
// The error banner is listed first; results and the error may coexist.
func (s SearchState) View() View {
	hasResults := len(s.Results) > 0
	return View{
		ShowError:     s.HasError(),
		ShowResults:   hasResults,
		ShowSources:   len(s.Sources) > 0,
		ShowNoResults: !hasResults && !s.Loading && s.Query != "" && !s.HasError(),
		ShowIntro:     s.Query == "" && !s.Loading,
		InputDisabled: s.Loading,
	}
}
