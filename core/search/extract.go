// ABOUTME: Candidate extraction strategies for pulling a JSON array out of free text
// ABOUTME: Strategies run in order and the first one that yields a candidate wins

package search

import (
	"regexp"
	"strings"
)

// Strategy locates the JSON candidate in a model answer
type Strategy interface {
	// Name identifies the strategy in logs
	Name() string

	// Candidate returns the candidate text and true when the strategy applies
	Candidate(text string) (string, bool)
}

var fencedJSONPattern = regexp.MustCompile("(?is)```json\\s*(.*?)\\s*```")

// FencedBlock picks the inner text of the first ```json fenced block
type FencedBlock struct{}

func (FencedBlock) Name() string { return "fenced" }

func (FencedBlock) Candidate(text string) (string, bool) {
	m := fencedJSONPattern.FindStringSubmatch(text)
	if m == nil || m[1] == "" {
		return "", false
	}
	return m[1], true
}

// BracketSpan picks the span from the first '[' through the last ']'
type BracketSpan struct{}

func (BracketSpan) Name() string { return "bracket" }

func (BracketSpan) Candidate(text string) (string, bool) {
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start == -1 || end <= start {
		return "", false
	}
	return text[start : end+1], true
}

// RawText uses the whole answer as the candidate
type RawText struct{}

func (RawText) Name() string { return "raw" }

func (RawText) Candidate(text string) (string, bool) {
	return text, true
}

// DefaultStrategies returns the extraction order used when none is configured
func DefaultStrategies() []Strategy {
	return []Strategy{FencedBlock{}, BracketSpan{}, RawText{}}
}

// extractCandidate runs strategies in order and returns the first candidate
// along with the name of the strategy that produced it
func extractCandidate(text string, strategies []Strategy) (string, string) {
	for _, st := range strategies {
		if candidate, ok := st.Candidate(text); ok {
			return candidate, st.Name()
		}
	}
	return text, "none"
}
