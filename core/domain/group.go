// ABOUTME: Community group domain models returned by the group search pipeline
// ABOUTME: Defines result records, citation sources and shallow link classification

package domain

import (
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"
)

// directLinkMarkers are the substrings that mark a link as a joinable Telegram link
var directLinkMarkers = []string{"t.me/", "telegram.me/"}

// CommunityGroup represents one community chat group found for a keyword
type CommunityGroup struct {
	// ID is unique within a result set and distinguishable across searches
	ID string

	// Name is the group's display name (never empty)
	Name string

	// Description is a short free-text description (never empty)
	Description string

	// Link is the join link, or empty when no direct link was found
	Link string

	// Category is a category label (never empty)
	Category string

	// EstimatedMembers is a free-text membership estimate
	EstimatedMembers string

	// Tags is an ordered list of short tags (never nil)
	Tags []string
}

// IsDirectLink reports whether the link looks like a Telegram join link.
// This is a string-pattern check only; liveness is never verified.
func (g CommunityGroup) IsDirectLink() bool {
	if g.Link == "" {
		return false
	}
	for _, marker := range directLinkMarkers {
		if strings.Contains(g.Link, marker) {
			return true
		}
	}
	return false
}

// JoinURL returns the direct link when there is one, otherwise a Google
// search URL for the group name followed by searchSuffix.
func (g CommunityGroup) JoinURL(searchSuffix string) string {
	if g.IsDirectLink() {
		return g.Link
	}

	q := strings.TrimSpace(g.Name + " " + searchSuffix)
	return "https://www.google.com/search?q=" + url.QueryEscape(q)
}

// Initial returns the upper-cased first letter of the name
func (g CommunityGroup) Initial() string {
	r, size := utf8.DecodeRuneInString(g.Name)
	if size == 0 || r == utf8.RuneError {
		return ""
	}
	return string(unicode.ToUpper(r))
}

// TopTags returns at most n tags, in order
func (g CommunityGroup) TopTags(n int) []string {
	if n <= 0 || len(g.Tags) == 0 {
		return []string{}
	}
	if len(g.Tags) <= n {
		return g.Tags
	}
	return g.Tags[:n]
}

// Clone returns a deep copy of the group
func (g CommunityGroup) Clone() CommunityGroup {
	c := g
	c.Tags = append(make([]string, 0, len(g.Tags)), g.Tags...)
	return c
}

// CitationSource is a web source consulted by the model while answering
type CitationSource struct {
	// URI is always present
	URI string

	// Title is a human-readable title
	Title string
}

// Label returns the title, or the URI host when the title is empty
func (s CitationSource) Label() string {
	if s.Title != "" {
		return s.Title
	}
	if u, err := url.Parse(s.URI); err == nil && u.Hostname() != "" {
		return u.Hostname()
	}
	return s.URI
}

// SearchOutcome is the result of one successful group search
type SearchOutcome struct {
	Groups  []CommunityGroup
	Sources []CitationSource
}
