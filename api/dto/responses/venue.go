// ABOUTME: Response DTOs for venue lookup endpoints
// ABOUTME: Carries metadata scraped from a venue's public page

package responses

// VenueResponse represents resolved venue metadata in API responses
type VenueResponse struct {
	URL         string `json:"url" doc:"Venue page that was scraped"`
	Name        string `json:"name" doc:"Venue or site name"`
	Title       string `json:"title" doc:"Page title"`
	ImageURL    string `json:"image_url,omitempty" doc:"Primary venue image"`
	Description string `json:"description,omitempty" doc:"Page description"`
}
