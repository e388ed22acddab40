// ABOUTME: Palette extraction service for generated moodboard images
// ABOUTME: Uses K-means clustering to find the dominant colours of a board

package services

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"
	"time"

	"moodboard-app-api/core/domain"
	"moodboard-app-api/core/interfaces"
	"github.com/EdlinOrg/prominentcolor"
	_ "golang.org/x/image/webp" // WebP support
)

const (
	swatchCount     = 5
	paletteCacheTTL = 24 * time.Hour
)

// PaletteService extracts the dominant colour swatches of generated images
type PaletteService struct {
	deps interfaces.Dependencies
}

// NewPaletteService creates a new palette service
func NewPaletteService(deps interfaces.Dependencies) *PaletteService {
	return &PaletteService{deps: deps}
}

// ExtractSwatches returns the dominant colours of an inline-encoded image,
// most prominent first. Results are cached by image digest.
func (s *PaletteService) ExtractSwatches(ctx context.Context, imageDataURL string) (swatches []domain.RGBColor, err error) {
	if imageDataURL == "" {
		return nil, errors.New("image data URL cannot be empty")
	}

	cacheKey := paletteCacheKey(imageDataURL)
	if s.deps.Cache != nil {
		if data, cacheErr := s.deps.Cache.Get(ctx, cacheKey); cacheErr == nil && data != nil {
			var cached []domain.RGBColor
			if json.Unmarshal(data, &cached) == nil {
				return cached, nil
			}
		}
	}

	// K-means panics on degenerate inputs; a bad image must not take the
	// generation down with it.
	defer func() {
		if rec := recover(); rec != nil {
			if s.deps.Logger != nil {
				s.deps.Logger.Debug("Recovered from panic in swatch extraction", map[string]interface{}{
					"panic": fmt.Sprintf("%v", rec),
				})
			}
			swatches = nil
			err = fmt.Errorf("panic recovered: %v", rec)
		}
	}()

	img, err := decodeDataURL(imageDataURL)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, errors.New("image has empty bounds")
	}

	imgNRGBA := image.NewNRGBA(bounds)
	draw.Draw(imgNRGBA, bounds, img, bounds.Min, draw.Src)

	colors, err := prominentcolor.KmeansWithAll(
		swatchCount,
		imgNRGBA,
		prominentcolor.ArgumentDefault,
		prominentcolor.DefaultSize,
		prominentcolor.GetDefaultMasks(),
	)
	if err != nil || len(colors) == 0 {
		// Retry without masks before giving up
		colors, err = prominentcolor.KmeansWithAll(
			swatchCount,
			imgNRGBA,
			prominentcolor.ArgumentDefault,
			prominentcolor.DefaultSize,
			nil,
		)
		if err != nil || len(colors) == 0 {
			return nil, errors.New("no colours extracted from image")
		}
	}

	swatches = make([]domain.RGBColor, 0, len(colors))
	for _, c := range colors {
		swatches = append(swatches, domain.RGBColor{
			R: uint8(c.Color.R),
			G: uint8(c.Color.G),
			B: uint8(c.Color.B),
		})
	}

	if s.deps.Cache != nil {
		if data, marshalErr := json.Marshal(swatches); marshalErr == nil {
			_ = s.deps.Cache.Set(ctx, cacheKey, data, paletteCacheTTL)
		}
	}

	return swatches, nil
}

// decodeDataURL decodes a data:<mime>;base64,<payload> image
func decodeDataURL(dataURL string) (image.Image, error) {
	if !strings.HasPrefix(dataURL, "data:image/") {
		return nil, errors.New("not an inline image URL")
	}

	idx := strings.Index(dataURL, ";base64,")
	if idx < 0 {
		return nil, errors.New("inline image is not base64 encoded")
	}

	raw, err := base64.StdEncoding.DecodeString(dataURL[idx+len(";base64,"):])
	if err != nil {
		return nil, fmt.Errorf("failed to decode inline image: %w", err)
	}

	img, _, err := image.Decode(strings.NewReader(string(raw)))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	return img, nil
}

// paletteCacheKey digests the image so the key stays a sane length
func paletteCacheKey(imageDataURL string) string {
	sum := sha256.Sum256([]byte(imageDataURL))
	return "palette:" + hex.EncodeToString(sum[:])
}
