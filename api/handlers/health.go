// ABOUTME: Health check handler for the Huma API
// ABOUTME: Provides a liveness endpoint for deployment probes

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// HealthHandler handles health check requests
type HealthHandler struct{}

// NewHealthHandler creates a new health handler
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// RegisterRoutes registers the health check route
func (h *HealthHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "healthCheck",
		Method:      http.MethodGet,
		Path:        "/api/health",
		Summary:     "Health check",
		Description: "Reports whether the service is up",
		Tags:        []string{"Health"},
	}, h.Check)
}

// HealthOutput defines the output for the health check
type HealthOutput struct {
	Body struct {
		OK bool `json:"ok" doc:"True when the service is up"`
	}
}

// Check handles the GET /api/health endpoint
func (h *HealthHandler) Check(ctx context.Context, input *struct{}) (*HealthOutput, error) {
	out := &HealthOutput{}
	out.Body.OK = true
	return out, nil
}
