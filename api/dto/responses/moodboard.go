// ABOUTME: Response DTOs for moodboard generation endpoints
// ABOUTME: Provides structured responses with JSON serialization

package responses

// SwatchResponse represents a dominant colour extracted from a moodboard
type SwatchResponse struct {
	Hex string `json:"hex" doc:"Colour as #RRGGBB"`
	R   uint8  `json:"r" doc:"Red channel"`
	G   uint8  `json:"g" doc:"Green channel"`
	B   uint8  `json:"b" doc:"Blue channel"`
}

// GenerateResponse represents a generated moodboard in API responses
type GenerateResponse struct {
	ImageDataURL string           `json:"image_data_url" doc:"Generated image encoded as a data: URL"`
	Prompt       string           `json:"prompt" doc:"Full prompt sent to the image model"`
	CacheHit     bool             `json:"cache_hit" doc:"Whether the result was served from cache"`
	Swatches     []SwatchResponse `json:"swatches,omitempty" doc:"Dominant colours extracted from the image"`
}
