// ABOUTME: Dependencies container provides dependency injection for core services
// ABOUTME: Defines the contract for dependencies required by the core business logic

package interfaces

import "time"

// Dependencies holds all external dependencies required by the core business logic
type Dependencies struct {
	// Generator provides the grounded generative AI capability
	Generator Generator

	// Logger provides structured logging
	Logger Logger

	// Now returns the current time; defaults to time.Now when nil
	Now func() time.Time
}
