// Package api provides the HTTP API layer for FeedFinder.
// It uses the Huma framework to provide automatic OpenAPI documentation,
// request/response validation, and a clean handler interface.
//
// # Architecture
//
// The API package is structured as follows:
//
// - server.go: Huma API configuration and setup
// - handlers/: HTTP request handlers
// - dto/: Data Transfer Objects for requests and responses
// - middleware/: HTTP middleware for cross-cutting concerns
//
// # Endpoints
//
//	POST /detect    detect feeds in caller-supplied HTML
//	POST /discover  fetch pages server-side and detect feeds (flag gated)
//	GET  /health    liveness and feature flag states
//
// The OpenAPI spec is served at /openapi.json and Swagger UI at /docs.
//
// # Usage Example
//
//	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
//	    Logger:     logger,
//	    RateLimit:  100,
//	    RateWindow: time.Minute,
//	    Flags:      flags,
//	})
//
//	handlers.NewDiscoverHandler(discoveryService, flags).RegisterRoutes(humaAPI)
//
//	http.ListenAndServe(":8000", router)
//
// # Error Handling
//
// Errors use the RFC 7807 shape produced by Huma. Domain errors map to
// 400 (validation), 422 (unresolvable URL), 502 (fetch failure) and 500.
package api
