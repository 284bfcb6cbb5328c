// ABOUTME: Generator interface for the remote generative AI capability
// ABOUTME: Defines the grounded request/response contract consumed by the search service

package interfaces

import "context"

// Generator defines the interface for the generative AI capability.
// Implementations must enable web-search grounding for every call.
//
// Example usage:
//
//	resp, err := generator.GenerateGrounded(ctx, prompt)
//	if err != nil {
//		// transport, auth or service failure
//	}
//	fmt.Println(resp.Text)
type Generator interface {
	// GenerateGrounded sends prompt to the model with web-search grounding
	// enabled and returns the free-text answer with its grounding metadata.
	GenerateGrounded(ctx context.Context, prompt string) (*GroundedResponse, error)
}

// GroundedResponse is the model's answer and the citations it was grounded on
type GroundedResponse struct {
	// Text is the free-text response body
	Text string

	// Chunks is the grounding metadata, zero or more citation chunks
	Chunks []GroundingChunk
}

// GroundingChunk is one unit of grounding metadata.
// Web is nil when the chunk does not reference a web source.
type GroundingChunk struct {
	Web *WebReference
}

// WebReference is a web source consulted by the model
type WebReference struct {
	URI   string
	Title string
}
