// ABOUTME: Request DTOs for venue lookup endpoints
// ABOUTME: Carries the venue page URL to resolve metadata for

package requests

// VenueLookupRequest represents the request body for a venue page lookup
type VenueLookupRequest struct {
	// URL is the venue page to scrape for metadata
	URL string `json:"url" required:"true" format:"uri" doc:"Public venue page URL"`
}
