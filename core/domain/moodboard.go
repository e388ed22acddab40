// ABOUTME: Moodboard domain models for event-styling generation
// ABOUTME: Defines the generation request attributes and the generated result

package domain

import "strings"

// MoodboardRequest holds the event-styling attributes a user picked
type MoodboardRequest struct {
	// Mood is the styling mood (e.g. "Editorial", "Luxe")
	Mood string `json:"mood"`

	// Palette is the colour palette (e.g. "Terracotta", "Champagne")
	Palette string `json:"palette"`

	// Layout is the event layout (e.g. "Cocktail", "Banquet")
	Layout string `json:"layout"`

	// Room is an optional venue room name
	Room string `json:"room,omitempty"`

	// VenueImageURL is an optional reference photo of the venue
	VenueImageURL string `json:"venue_image_url,omitempty"`

	// AVEquipment is an optional AV equipment selection
	AVEquipment string `json:"av_equipment,omitempty"`

	// UplightingColour is an optional uplighting colour selection
	UplightingColour string `json:"uplighting_colour,omitempty"`
}

// CacheTuple returns the lowercased attribute tuple used for cache keying.
// The venue image URL is excluded: it does not change the prompt text and
// reference photos are matched by the upstream model, not by the cache.
func (r *MoodboardRequest) CacheTuple() string {
	parts := []string{
		r.Mood,
		r.Palette,
		r.Layout,
		r.Room,
		r.AVEquipment,
		r.UplightingColour,
	}
	return strings.ToLower(strings.Join(parts, "|"))
}

// Moodboard is a generated moodboard result
type Moodboard struct {
	// ImageDataURL is the generated image encoded as a data: URL
	ImageDataURL string

	// Prompt is the full prompt sent to the image model
	Prompt string

	// CacheHit indicates the result was served from cache
	CacheHit bool

	// Swatches are the dominant colours extracted from the image
	Swatches []RGBColor
}
