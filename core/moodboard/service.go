// ABOUTME: Moodboard service handles generation requests, caching and encoding
// ABOUTME: Provides business logic for moodboard operations independent of HTTP layer

package moodboard

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"moodboard-app-api/core/domain"
	coreerrors "moodboard-app-api/core/errors"
	"moodboard-app-api/core/interfaces"
)

const (
	// DefaultCacheTTL matches the original deployment's 24h result cache
	DefaultCacheTTL = 24 * time.Hour

	cacheKeyPrefix = "moodboard:"
	fallbackMime   = "image/png"
	maxImageBytes  = 32 << 20
)

// Service handles moodboard generation
type Service struct {
	deps      interfaces.Dependencies
	generator interfaces.ImageGenerator
	palette   interfaces.PaletteService
	cacheTTL  time.Duration
}

// NewService creates a new moodboard service instance
func NewService(deps interfaces.Dependencies, generator interfaces.ImageGenerator) *Service {
	return &Service{
		deps:      deps,
		generator: generator,
		cacheTTL:  DefaultCacheTTL,
	}
}

// SetPaletteService sets the optional palette extraction service
func (s *Service) SetPaletteService(svc interfaces.PaletteService) {
	s.palette = svc
}

// SetCacheTTL overrides the result cache TTL
func (s *Service) SetCacheTTL(ttl time.Duration) {
	if ttl > 0 {
		s.cacheTTL = ttl
	}
}

// cachedResult is the cache representation of a generated moodboard
type cachedResult struct {
	ImageDataURL string            `json:"image_data_url"`
	Prompt       string            `json:"prompt"`
	Swatches     []domain.RGBColor `json:"swatches,omitempty"`
}

// Generate produces a moodboard for the given attributes, serving repeated
// requests for the same attribute tuple from cache.
func (s *Service) Generate(ctx context.Context, req domain.MoodboardRequest) (*domain.Moodboard, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	key := cacheKey(req)

	if s.deps.Cache != nil {
		if data, err := s.deps.Cache.Get(ctx, key); err == nil && data != nil {
			var cached cachedResult
			if err := json.Unmarshal(data, &cached); err == nil && cached.ImageDataURL != "" {
				return &domain.Moodboard{
					ImageDataURL: cached.ImageDataURL,
					Prompt:       cached.Prompt,
					CacheHit:     true,
					Swatches:     cached.Swatches,
				}, nil
			}
		}
	}

	if s.generator == nil {
		return nil, errors.New("image generator not configured")
	}

	prompt := BuildPrompt(req)

	imageURL, err := s.generator.Generate(ctx, prompt, req.VenueImageURL)
	if err != nil {
		return nil, coreerrors.WrapError(err, "image generation failed")
	}

	dataURL, err := s.downloadAsDataURL(ctx, imageURL)
	if err != nil {
		return nil, coreerrors.WrapError(err, "image download failed")
	}

	board := &domain.Moodboard{
		ImageDataURL: dataURL,
		Prompt:       prompt,
	}

	// Swatch extraction is best-effort enrichment; a failure never fails
	// the generation.
	if s.palette != nil {
		if swatches, err := s.palette.ExtractSwatches(ctx, dataURL); err == nil {
			board.Swatches = swatches
		} else if s.deps.Logger != nil {
			s.deps.Logger.Debug("Swatch extraction failed", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	if s.deps.Cache != nil {
		cached := cachedResult{
			ImageDataURL: board.ImageDataURL,
			Prompt:       board.Prompt,
			Swatches:     board.Swatches,
		}
		if data, err := json.Marshal(cached); err == nil {
			_ = s.deps.Cache.Set(ctx, key, data, s.cacheTTL)
		}
	}

	return board, nil
}

// downloadAsDataURL fetches the generated image and re-encodes it inline
func (s *Service) downloadAsDataURL(ctx context.Context, imageURL string) (string, error) {
	if imageURL == "" {
		return "", errors.New("generated image URL is empty")
	}
	if strings.HasPrefix(imageURL, "data:") {
		return imageURL, nil
	}

	if s.deps.HTTPClient == nil {
		return "", errors.New("HTTP client not configured")
	}

	resp, err := s.deps.HTTPClient.Get(ctx, imageURL)
	if err != nil {
		return "", err
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return "", &coreerrors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Message:    "image host returned non-200 status",
			API:        "image-host",
		}
	}

	content, err := io.ReadAll(io.LimitReader(resp.Body(), maxImageBytes))
	if err != nil {
		return "", err
	}

	mime := resp.Header("Content-Type")
	if mime == "" {
		mime = fallbackMime
	}

	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(content), nil
}

// cacheKey derives the cache key from the lowercased attribute tuple
func cacheKey(req domain.MoodboardRequest) string {
	sum := sha256.Sum256([]byte(req.CacheTuple()))
	return cacheKeyPrefix + hex.EncodeToString(sum[:])
}

// validateRequest enforces the accepted attribute bounds
func validateRequest(req domain.MoodboardRequest) error {
	if err := checkRequired("mood", req.Mood); err != nil {
		return err
	}
	if err := checkRequired("palette", req.Palette); err != nil {
		return err
	}
	if err := checkRequired("layout", req.Layout); err != nil {
		return err
	}
	if utf8.RuneCountInString(req.Room) > 80 {
		return &coreerrors.ValidationError{Field: "room", Message: "must be at most 80 characters"}
	}
	return nil
}

// checkRequired bounds count characters, not bytes, so multibyte
// attribute values are measured the way users see them.
func checkRequired(field, value string) error {
	n := utf8.RuneCountInString(value)
	if n < 2 {
		return &coreerrors.ValidationError{Field: field, Message: "must be at least 2 characters"}
	}
	if n > 40 {
		return &coreerrors.ValidationError{Field: field, Message: "must be at most 40 characters"}
	}
	return nil
}
