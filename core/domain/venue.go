// ABOUTME: Venue domain model for venue page lookups
// ABOUTME: Holds metadata scraped from a venue's public page

package domain

// Venue represents metadata resolved from a venue's public page
type Venue struct {
	// URL is the venue page that was scraped
	URL string

	// Name is the venue or site name
	Name string

	// Title is the page title
	Title string

	// ImageURL is the primary (Open Graph) image of the venue
	ImageURL string

	// Description is the page description, if present
	Description string
}
