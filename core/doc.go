// Package core contains the business logic for the Moodboards API.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Contains pure domain models (MoodboardRequest, Moodboard, Venue, etc.)
// - moodboard: Prompt building and moodboard generation service
// - notify: Image-change notification over an observed preview image
// - history: Generation history service
// - services: Palette extraction and venue lookup services
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (cache, HTTP, logger)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Domain models are free from persistence concerns
//
// # Usage Example
//
//	import (
//	    "moodboard-app-api/core/interfaces"
//	    "moodboard-app-api/core/moodboard"
//	)
//
//	// Create dependencies
//	deps := interfaces.Dependencies{
//	    Cache:      myCache,      // implements interfaces.Cache
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	// Create service
//	service := moodboard.NewService(deps, generator)
//
//	// Generate a board
//	board, err := service.Generate(ctx, domain.MoodboardRequest{
//	    Mood:   "Luxe",
//	    Layout: "Banquet",
//	})
//
// # Error Handling
//
// The core package defines custom error types in the errors sub-package:
// - NotFoundError: Resource not found
// - ValidationError: Invalid input
// - ExternalAPIError: External service failures
//
// These can be checked using errors.IsNotFound(err), errors.IsValidation(err),
// and errors.IsExternalAPI(err).
package core
