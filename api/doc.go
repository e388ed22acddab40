// Package api provides the HTTP API layer for the Moodboards application.
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
// # Key Features
//
// 1. Automatic OpenAPI Generation
//
// The API automatically generates OpenAPI 3.0 documentation:
// - JSON spec available at /openapi.json
// - Interactive Swagger UI at /docs
//
// 2. Request/Response Validation
//
// Huma provides automatic validation based on struct tags:
//
//	type GenerateRequest struct {
//	    Mood    string `json:"mood" required:"true" minLength:"2" maxLength:"40"`
//	    Layout  string `json:"layout" required:"true" minLength:"2" maxLength:"40"`
//	    Room    string `json:"room,omitempty" maxLength:"80"`
//	}
//
// 3. Middleware Support
//
// The API includes middleware for:
// - Request logging with unique request IDs
// - Rate limiting per IP address
// - CORS restricted to the single configured embedding origin
//
// # Embed Event Stream
//
// GET /api/embed/events is registered directly on the chi router rather
// than through Huma: it is a server-sent-events stream that relays each
// freshly generated preview image to the embedding parent page.
//
// # Error Handling
//
// The API uses a consistent error format based on RFC 7807:
//
//	{
//	    "status": 400,
//	    "title": "Bad Request",
//	    "detail": "mood must be between 2 and 40 characters",
//	    "instance": "/api/generate"
//	}
//
// Domain errors are automatically mapped to appropriate HTTP status codes.
package api
