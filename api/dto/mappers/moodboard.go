// ABOUTME: Mappers between domain models and API DTOs
// ABOUTME: Converts moodboard, venue, and history models to response shapes

package mappers

import (
	"moodboard-app-api/api/dto/requests"
	"moodboard-app-api/api/dto/responses"
	"moodboard-app-api/core/domain"
)

// ToDomainRequest converts a generate request DTO to a domain request
func ToDomainRequest(req requests.GenerateRequest) domain.MoodboardRequest {
	return domain.MoodboardRequest{
		Mood:             req.Mood,
		Palette:          req.Palette,
		Layout:           req.Layout,
		Room:             req.Room,
		VenueImageURL:    req.VenueImageURL,
		AVEquipment:      req.AVEquipment,
		UplightingColour: req.UplightingColour,
	}
}

// ToGenerateResponse converts a domain moodboard to a response DTO
func ToGenerateResponse(board *domain.Moodboard) responses.GenerateResponse {
	if board == nil {
		return responses.GenerateResponse{}
	}

	resp := responses.GenerateResponse{
		ImageDataURL: board.ImageDataURL,
		Prompt:       board.Prompt,
		CacheHit:     board.CacheHit,
	}

	for _, c := range board.Swatches {
		resp.Swatches = append(resp.Swatches, responses.SwatchResponse{
			Hex: c.Hex(),
			R:   c.R,
			G:   c.G,
			B:   c.B,
		})
	}

	return resp
}

// ToVenueResponse converts a domain venue to a response DTO
func ToVenueResponse(venue *domain.Venue) responses.VenueResponse {
	if venue == nil {
		return responses.VenueResponse{}
	}

	return responses.VenueResponse{
		URL:         venue.URL,
		Name:        venue.Name,
		Title:       venue.Title,
		ImageURL:    venue.ImageURL,
		Description: venue.Description,
	}
}

// ToHistoryEntryResponse converts a domain history entry to a response DTO
func ToHistoryEntryResponse(entry *domain.HistoryEntry) responses.HistoryEntryResponse {
	if entry == nil {
		return responses.HistoryEntryResponse{}
	}

	return responses.HistoryEntryResponse{
		ID:               entry.ID,
		CreatedAt:        entry.CreatedAt,
		Mood:             entry.Request.Mood,
		Palette:          entry.Request.Palette,
		Layout:           entry.Request.Layout,
		Room:             entry.Request.Room,
		AVEquipment:      entry.Request.AVEquipment,
		UplightingColour: entry.Request.UplightingColour,
		Prompt:           entry.Prompt,
		ImageDataURL:     entry.ImageDataURL,
		CacheHit:         entry.CacheHit,
	}
}

// ToHistoryListResponse converts domain history entries to a list response
func ToHistoryListResponse(entries []*domain.HistoryEntry) responses.HistoryListResponse {
	resp := responses.HistoryListResponse{
		Entries: make([]responses.HistoryEntryResponse, 0, len(entries)),
	}

	for _, e := range entries {
		resp.Entries = append(resp.Entries, ToHistoryEntryResponse(e))
	}
	resp.Count = len(resp.Entries)

	return resp
}
