// Package api provides the HTTP API layer for TeleScout.
// It uses the Huma framework to provide automatic OpenAPI documentation,
// request/response validation, and a clean handler interface.
//
// # Architecture
//
// The API package is structured as follows:
//
// - server.go: Huma API configuration and setup
// - handlers/: JSON handlers, the health check and the HTML page
// - dto/: Data Transfer Objects for requests and responses
// - middleware/: HTTP middleware for cross-cutting concerns
//
// # Endpoints
//
//   - GET  /api/state         current search state
//   - POST /api/search        run a search through the shared state
//   - POST /api/groups/find   stateless search (direct_search_api flag)
//   - GET  /healthz           liveness and enabled flags
//   - GET  /, POST /          HTML page (html_frontend flag)
//
// The OpenAPI spec is available at /openapi.json and the Swagger UI at /docs.
//
// # Middleware
//
// The API includes middleware for:
// - Request logging with unique request IDs
// - Feature flags in the request context
// - Rate limiting per IP address, backed by memory or Redis
// - CORS handling
//
// # Usage Example
//
//	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
//	    Logger:  logger,
//	    Limiter: limiter,
//	    Flags:   flags,
//	})
//
//	handlers.NewSearchHandler(controller, suffix).RegisterRoutes(humaAPI)
//
//	http.ListenAndServe(":8000", router)
//
// # Error Handling
//
// Errors from the stateless endpoint use the RFC 7807 format:
//
//	{
//	    "status": 503,
//	    "title": "Service Unavailable",
//	    "detail": "AI service error"
//	}
//
// The stateful endpoints always answer 200 and carry the user-facing
// message in the state's error field.
//
package api
