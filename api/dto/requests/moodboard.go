// ABOUTME: Request DTOs for moodboard generation endpoints
// ABOUTME: Provides validation bounds and default values for incoming requests

package requests

// GenerateRequest represents the request body for generating a moodboard
type GenerateRequest struct {
	// Mood is the styling mood selection
	Mood string `json:"mood" required:"true" minLength:"2" maxLength:"40" doc:"Styling mood (e.g. Editorial, Luxe)"`

	// Palette is the colour palette selection
	Palette string `json:"palette,omitempty" maxLength:"40" doc:"Colour palette (e.g. Terracotta, Champagne)"`

	// Layout is the event layout selection
	Layout string `json:"layout" required:"true" minLength:"2" maxLength:"40" doc:"Event layout (e.g. Cocktail, Banquet)"`

	// Room is an optional venue room name
	Room string `json:"room,omitempty" maxLength:"80" doc:"Venue room name"`

	// VenueImageURL is an optional reference photo of the venue
	VenueImageURL string `json:"venue_image_url,omitempty" format:"uri" doc:"Reference photo of the venue"`

	// AVEquipment is an optional AV equipment selection
	AVEquipment string `json:"av_equipment,omitempty" maxLength:"40" doc:"AV equipment (e.g. LED Screen, Projection)"`

	// UplightingColour is an optional uplighting colour selection
	UplightingColour string `json:"uplighting_colour,omitempty" maxLength:"40" doc:"Uplighting colour"`
}

// ApplyDefaults sets default values for optional fields
func (r *GenerateRequest) ApplyDefaults() {
	if r.Palette == "" {
		r.Palette = "Champagne"
	}
}
