// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines contracts for services used throughout the application

package interfaces

import (
	"context"

	"moodboard-app-api/core/domain"
)

// ImageGenerator produces an image for a prompt and returns a URL to it.
// The optional reference image guides generation towards the venue photo.
type ImageGenerator interface {
	Generate(ctx context.Context, prompt string, referenceImageURL string) (string, error)
}

// PaletteService extracts dominant colours from generated images
type PaletteService interface {
	ExtractSwatches(ctx context.Context, imageDataURL string) ([]domain.RGBColor, error)
}

// VenueService resolves venue metadata from a venue's public page
type VenueService interface {
	Lookup(ctx context.Context, pageURL string) (*domain.Venue, error)
}
