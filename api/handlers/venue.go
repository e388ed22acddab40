// ABOUTME: Venue lookup handler for the Huma API
// ABOUTME: Resolves venue metadata from a public venue page URL

package handlers

import (
	"context"
	"net/http"

	"moodboard-app-api/api/dto/mappers"
	"moodboard-app-api/api/dto/requests"
	"moodboard-app-api/api/dto/responses"
	"moodboard-app-api/core/domain"
	"github.com/danielgtaylor/huma/v2"
)

// VenueService interface defines the methods needed from the venue service
type VenueService interface {
	Lookup(ctx context.Context, pageURL string) (*domain.Venue, error)
}

// VenueHandler handles venue lookup HTTP requests
type VenueHandler struct {
	service VenueService
}

// NewVenueHandler creates a new venue handler
func NewVenueHandler(service VenueService) *VenueHandler {
	return &VenueHandler{service: service}
}

// RegisterRoutes registers venue lookup routes
func (h *VenueHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "lookupVenue",
		Method:      http.MethodPost,
		Path:        "/api/venue",
		Summary:     "Look up venue metadata",
		Description: "Scrapes a public venue page for its name, title, description, and primary image",
		Tags:        []string{"Venues"},
	}, h.Lookup)
}

// VenueLookupInput defines the input for the Lookup operation
type VenueLookupInput struct {
	Body requests.VenueLookupRequest `json:"body"`
}

// VenueLookupOutput defines the output for the Lookup operation
type VenueLookupOutput struct {
	Body responses.VenueResponse
}

// Lookup handles the POST /api/venue endpoint
func (h *VenueHandler) Lookup(ctx context.Context, input *VenueLookupInput) (*VenueLookupOutput, error) {
	venue, err := h.service.Lookup(ctx, input.Body.URL)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &VenueLookupOutput{Body: mappers.ToVenueResponse(venue)}, nil
}
