// ABOUTME: Moodboard generation handler for the Huma API
// ABOUTME: Provides the HTTP endpoint that turns styling attributes into a moodboard

package handlers

import (
	"context"
	"net/http"

	"moodboard-app-api/api/dto/mappers"
	"moodboard-app-api/api/dto/requests"
	"moodboard-app-api/api/dto/responses"
	"moodboard-app-api/core/domain"
	"github.com/danielgtaylor/huma/v2"
)

// MoodboardService interface defines the methods needed from the moodboard service
type MoodboardService interface {
	Generate(ctx context.Context, req domain.MoodboardRequest) (*domain.Moodboard, error)
}

// HistoryRecorder records completed generations
type HistoryRecorder interface {
	Record(ctx context.Context, req domain.MoodboardRequest, board *domain.Moodboard) (*domain.HistoryEntry, error)
}

// ImagePublisher receives the image URL of each completed generation
type ImagePublisher interface {
	Publish(url string)
}

// GenerateHandler handles moodboard generation HTTP requests
type GenerateHandler struct {
	service   MoodboardService
	history   HistoryRecorder
	publisher ImagePublisher
}

// NewGenerateHandler creates a new generation handler. The history recorder
// and publisher are optional.
func NewGenerateHandler(service MoodboardService, history HistoryRecorder, publisher ImagePublisher) *GenerateHandler {
	return &GenerateHandler{
		service:   service,
		history:   history,
		publisher: publisher,
	}
}

// RegisterRoutes registers all generation-related routes
func (h *GenerateHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "generateMoodboard",
		Method:      http.MethodPost,
		Path:        "/api/generate",
		Summary:     "Generate an event-styling moodboard",
		Description: "Builds a styling prompt from the selected attributes, generates a moodboard image, and returns it as a data URL",
		Tags:        []string{"Moodboards"},
	}, h.Generate)
}

// GenerateInput defines the input for the Generate operation
type GenerateInput struct {
	Body requests.GenerateRequest `json:"body"`
}

// GenerateOutput defines the output for the Generate operation
type GenerateOutput struct {
	Body responses.GenerateResponse
}

// Generate handles the POST /api/generate endpoint
func (h *GenerateHandler) Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error) {
	input.Body.ApplyDefaults()

	req := mappers.ToDomainRequest(input.Body)

	board, err := h.service.Generate(ctx, req)
	if err != nil {
		return nil, toHumaError(err)
	}

	// Relay the fresh image to any embedding parent and append history.
	// Both are best-effort: a generation that succeeded is always returned.
	if h.publisher != nil {
		h.publisher.Publish(board.ImageDataURL)
	}
	if h.history != nil {
		h.history.Record(ctx, req, board)
	}

	return &GenerateOutput{Body: mappers.ToGenerateResponse(board)}, nil
}
