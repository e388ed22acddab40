// ABOUTME: Venue lookup service resolves a venue page into form-ready metadata
// ABOUTME: Scrapes Open Graph tags with colly to find the venue's hero image

package services

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"
	"time"

	"moodboard-app-api/core/domain"
	coreerrors "moodboard-app-api/core/errors"
	"moodboard-app-api/core/interfaces"
	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly"
)

const (
	venueCacheTTL   = 24 * time.Hour
	venueUserAgent  = "facebookexternalhit/1.1 (+http://www.facebook.com/externalhit_uatext.php)"
	venueMaxBody    = 5 * 1024 * 1024
	venueHTTPWindow = 10 * time.Second
)

// VenueService resolves venue metadata from a venue's public page
type VenueService struct {
	deps interfaces.Dependencies
}

// NewVenueService creates a new venue service
func NewVenueService(deps interfaces.Dependencies) *VenueService {
	return &VenueService{deps: deps}
}

// Lookup scrapes the venue page and returns its metadata. Results are
// cached so repeated form interactions don't re-fetch the page.
func (s *VenueService) Lookup(ctx context.Context, pageURL string) (*domain.Venue, error) {
	parsed, err := url.Parse(pageURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, &coreerrors.ValidationError{Field: "url", Message: "must be a valid absolute URL"}
	}

	cacheKey := "venue:" + pageURL
	if s.deps.Cache != nil {
		if data, cacheErr := s.deps.Cache.Get(ctx, cacheKey); cacheErr == nil && data != nil {
			var cached domain.Venue
			if json.Unmarshal(data, &cached) == nil {
				return &cached, nil
			}
		}
	}

	venue, err := s.scrape(pageURL)
	if err != nil {
		return nil, err
	}

	if s.deps.Cache != nil {
		if data, marshalErr := json.Marshal(venue); marshalErr == nil {
			_ = s.deps.Cache.Set(ctx, cacheKey, data, venueCacheTTL)
		}
	}

	return venue, nil
}

// scrape collects Open Graph and fallback metadata from the page
func (s *VenueService) scrape(pageURL string) (*domain.Venue, error) {
	c := colly.NewCollector(
		colly.UserAgent(venueUserAgent),
		colly.MaxBodySize(venueMaxBody),
		colly.Async(false),
		colly.AllowURLRevisit(),
	)
	c.SetRequestTimeout(venueHTTPWindow)

	venue := &domain.Venue{URL: pageURL}

	c.OnHTML("meta", func(e *colly.HTMLElement) {
		content := e.Attr("content")
		if content == "" {
			return
		}

		switch e.Attr("property") {
		case "og:site_name":
			if venue.Name == "" {
				venue.Name = content
			}
		case "og:title":
			if venue.Title == "" {
				venue.Title = content
			}
		case "og:description":
			if venue.Description == "" {
				venue.Description = content
			}
		case "og:image":
			if venue.ImageURL == "" {
				venue.ImageURL = e.Request.AbsoluteURL(content)
			}
		}

		if e.Attr("name") == "twitter:image" && venue.ImageURL == "" {
			venue.ImageURL = e.Request.AbsoluteURL(content)
		}
	})

	// Fallbacks for pages without Open Graph tags
	c.OnHTML("head", func(e *colly.HTMLElement) {
		if venue.Title == "" {
			venue.Title = strings.TrimSpace(e.DOM.Find("title").First().Text())
		}
		if venue.Description == "" {
			e.DOM.Find("meta[name='description']").Each(func(_ int, sel *goquery.Selection) {
				if content, exists := sel.Attr("content"); exists && venue.Description == "" {
					venue.Description = content
				}
			})
		}
	})

	c.OnHTML("body img[src]", func(e *colly.HTMLElement) {
		if venue.ImageURL == "" {
			venue.ImageURL = e.Request.AbsoluteURL(e.Attr("src"))
		}
	})

	if err := c.Visit(pageURL); err != nil {
		return nil, coreerrors.WrapError(err, "venue page fetch failed")
	}
	c.Wait()

	if venue.Name == "" {
		venue.Name = venue.Title
	}

	if venue.ImageURL == "" {
		if s.deps.Logger != nil {
			s.deps.Logger.Debug("Venue page has no usable image", map[string]interface{}{
				"url": pageURL,
			})
		}
	}

	return venue, nil
}
