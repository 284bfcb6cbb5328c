// ABOUTME: Response DTOs for group search API endpoints
// ABOUTME: Provides structured responses for groups, citation sources and the search state

package responses

// GroupResponse represents a community group in API responses
type GroupResponse struct {
	ID               string   `json:"id" doc:"Identifier, unique within a result set"`
	Name             string   `json:"name" doc:"Group name"`
	Description      string   `json:"description" doc:"Short description"`
	Link             string   `json:"link" doc:"Join link as reported, may be empty"`
	Category         string   `json:"category" doc:"Category label"`
	EstimatedMembers string   `json:"estimatedMembers" doc:"Free-text membership estimate"`
	Tags             []string `json:"tags" doc:"Short tags"`
	DirectLink       bool     `json:"directLink" doc:"Whether the link looks like a Telegram join link"`
	JoinURL          string   `json:"joinUrl" doc:"Direct link, or a web search for the group"`
}

// SourceResponse represents a citation source in API responses
type SourceResponse struct {
	URI   string `json:"uri" doc:"Source URL"`
	Title string `json:"title" doc:"Source title"`
}

// ViewResponse tells a client which parts of the page to render
type ViewResponse struct {
	ShowError     bool `json:"showError"`
	ShowResults   bool `json:"showResults"`
	ShowSources   bool `json:"showSources"`
	ShowNoResults bool `json:"showNoResults"`
	ShowIntro     bool `json:"showIntro"`
	InputDisabled bool `json:"inputDisabled"`
}

// StateResponse represents the search state
type StateResponse struct {
	Query   string           `json:"query" doc:"Last submitted keyword"`
	Loading bool             `json:"isLoading" doc:"Whether a search is in flight"`
	Results []GroupResponse  `json:"results" doc:"Groups from the last successful search"`
	Error   *string          `json:"error" doc:"User-facing error message, null when none"`
	Sources []SourceResponse `json:"sources" doc:"Citation sources from the last successful search"`
	View    ViewResponse     `json:"view" doc:"Presentation decision derived from the state"`
}

// FindGroupsResponse represents the result of a stateless group search
type FindGroupsResponse struct {
	Groups  []GroupResponse  `json:"groups" doc:"Groups found"`
	Sources []SourceResponse `json:"sources" doc:"Citation sources"`
}
