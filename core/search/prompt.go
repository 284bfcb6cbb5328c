// ABOUTME: Prompt construction for the grounded group search
// ABOUTME: Renders the locale prompt template with the keyword and result bounds

package search

import (
	"fmt"
)

const (
	// MinRequestedGroups is the lower bound asked of the model
	MinRequestedGroups = 4

	// MaxRequestedGroups is the upper bound asked of the model.
	// Neither bound is enforced on the answer.
	MaxRequestedGroups = 8
)

// BuildPrompt renders the search instruction for keyword
func (s *SearchService) BuildPrompt(keyword string) (string, error) {
	prompt, err := s.catalog.RenderPrompt(s.promptData(keyword))
	if err != nil {
		return "", fmt.Errorf("failed to build prompt: %w", err)
	}
	return prompt, nil
}
