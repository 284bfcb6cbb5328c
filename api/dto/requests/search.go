// ABOUTME: Request DTOs for group search API endpoints
// ABOUTME: Provides validation constraints for incoming keywords

package requests

// SearchRequest represents the request body for a group search
type SearchRequest struct {
	// Keyword is the topic to find community groups for
	Keyword string `json:"keyword" required:"true" minLength:"1" maxLength:"200" doc:"Topic keyword, e.g. 'yazılım'"`
}
