// ABOUTME: Replicate image-generation client using the model predictions API
// ABOUTME: Creates a prediction and polls it until the output image is ready

package replicate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	coreerrors "moodboard-app-api/core/errors"
	"moodboard-app-api/core/interfaces"
)

const (
	defaultBaseURL = "https://api.replicate.com"
	apiName        = "replicate"

	maxPolls     = 240
	pollInterval = 750 * time.Millisecond
	httpTimeout  = 120 * time.Second

	// referenceStrength steers image-to-image generation from a venue photo
	referenceStrength = 0.8
)

// Client generates images through Replicate's predictions API
type Client struct {
	token   string
	model   string
	baseURL string
	http    *http.Client
	logger  interfaces.Logger

	pollInterval time.Duration
}

// NewClient creates a Replicate client for the given model ("owner/name")
func NewClient(token, model string, logger interfaces.Logger) (*Client, error) {
	if token == "" {
		return nil, errors.New("replicate API token not configured")
	}
	if !strings.Contains(model, "/") {
		return nil, errors.New("replicate model must be 'owner/name'")
	}

	return &Client{
		token:        token,
		model:        model,
		baseURL:      defaultBaseURL,
		http:         &http.Client{Timeout: httpTimeout},
		logger:       logger,
		pollInterval: pollInterval,
	}, nil
}

// prediction is the subset of the predictions API response we consume
type prediction struct {
	Status string `json:"status"`
	Error  string `json:"error"`
	URLs   struct {
		Get string `json:"get"`
	} `json:"urls"`
	Output json.RawMessage `json:"output"`
}

// Generate creates a prediction for the prompt and polls until an output
// image URL is available. A non-empty referenceImageURL switches the model
// into image-to-image mode.
func (c *Client) Generate(ctx context.Context, prompt string, referenceImageURL string) (string, error) {
	input := map[string]interface{}{"prompt": prompt}
	if referenceImageURL != "" {
		input["image"] = referenceImageURL
		input["prompt_strength"] = referenceStrength
	}

	body, err := json.Marshal(map[string]interface{}{"input": input})
	if err != nil {
		return "", err
	}

	createURL := fmt.Sprintf("%s/v1/models/%s/predictions", c.baseURL, c.model)
	pred, err := c.do(ctx, http.MethodPost, createURL, bytes.NewReader(body))
	if err != nil {
		return "", err
	}

	if pred.URLs.Get == "" {
		return "", errors.New("replicate response missing poll URL")
	}

	for i := 0; i < maxPolls; i++ {
		switch pred.Status {
		case "succeeded":
			return outputURL(pred.Output)
		case "failed", "canceled":
			msg := pred.Error
			if msg == "" {
				msg = "replicate prediction " + pred.Status
			}
			return "", &coreerrors.ExternalAPIError{StatusCode: 0, Message: msg, API: apiName}
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(c.pollInterval):
		}

		pred, err = c.do(ctx, http.MethodGet, pred.URLs.Get, nil)
		if err != nil {
			return "", err
		}
	}

	return "", errors.New("replicate prediction timed out")
}

// do performs an authenticated API request and decodes the prediction
func (c *Client) do(ctx context.Context, method, url string, body io.Reader) (*prediction, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Token "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if c.logger != nil {
			c.logger.Debug("Replicate API request failed", map[string]interface{}{
				"url":    url,
				"status": resp.StatusCode,
			})
		}
		return nil, &coreerrors.ExternalAPIError{
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(data)),
			API:        apiName,
		}
	}

	var pred prediction
	if err := json.Unmarshal(data, &pred); err != nil {
		return nil, fmt.Errorf("failed to decode replicate response: %w", err)
	}

	return &pred, nil
}

// outputURL extracts the image URL from a prediction output, which the API
// returns either as a string or as a list of strings
func outputURL(raw json.RawMessage) (string, error) {
	if len(raw) == 0 {
		return "", errors.New("unexpected replicate output")
	}

	var single string
	if err := json.Unmarshal(raw, &single); err == nil && single != "" {
		return single, nil
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err == nil && len(list) > 0 && list[0] != "" {
		return list[0], nil
	}

	return "", errors.New("unexpected replicate output")
}
