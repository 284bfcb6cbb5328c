// Package core contains the business logic for TeleScout.
// It is framework-agnostic and can be used independently of any web
// framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Pure domain models (CommunityGroup, CitationSource, SearchState)
// - search: Prompt construction, JSON extraction and result normalization
// - session: The state controller that runs searches and publishes state
// - errors: Custom error types for the search pipeline
// - interfaces: Contracts for external dependencies (generator, logger)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
//
// # Usage Example
//
//	import (
//	    "telescout-api/core/interfaces"
//	    "telescout-api/core/search"
//	    "telescout-api/core/session"
//	)
//
//	deps := interfaces.Dependencies{
//	    Generator: myGenerator, // implements interfaces.Generator
//	    Logger:    myLogger,    // implements interfaces.Logger
//	}
//
//	searchService := search.NewSearchService(deps, catalog)
//	controller := session.NewController(searchService, catalog.Messages, myLogger)
//
//	state := controller.Submit(ctx, "yazılım")
//	for _, g := range state.Results {
//	    fmt.Println(g.Name, g.JoinURL(catalog.Page.JoinSearchSuffix))
//	}
//
package core
