// ABOUTME: Response DTOs for generation history endpoints
// ABOUTME: Provides structured responses with JSON serialization

package responses

import "time"

// HistoryEntryResponse represents a past generation in API responses
type HistoryEntryResponse struct {
	ID               string    `json:"id" doc:"Unique identifier for the entry"`
	CreatedAt        time.Time `json:"created_at" doc:"When the generation completed"`
	Mood             string    `json:"mood" doc:"Styling mood used"`
	Palette          string    `json:"palette" doc:"Colour palette used"`
	Layout           string    `json:"layout" doc:"Event layout used"`
	Room             string    `json:"room,omitempty" doc:"Venue room, if given"`
	AVEquipment      string    `json:"av_equipment,omitempty" doc:"AV equipment, if given"`
	UplightingColour string    `json:"uplighting_colour,omitempty" doc:"Uplighting colour, if given"`
	Prompt           string    `json:"prompt" doc:"Full prompt that produced the image"`
	ImageDataURL     string    `json:"image_data_url" doc:"Generated image encoded as a data: URL"`
	CacheHit         bool      `json:"cache_hit" doc:"Whether the result was served from cache"`
}

// HistoryListResponse represents a page of history entries
type HistoryListResponse struct {
	Entries []HistoryEntryResponse `json:"entries" doc:"History entries, newest first"`
	Count   int                    `json:"count" doc:"Number of entries returned"`
}
