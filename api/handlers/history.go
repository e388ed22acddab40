// ABOUTME: Generation history handlers for the Huma API
// ABOUTME: Provides endpoints to list and fetch past moodboard generations

package handlers

import (
	"context"
	"net/http"

	"moodboard-app-api/api/dto/mappers"
	"moodboard-app-api/api/dto/responses"
	"moodboard-app-api/core/domain"
	"github.com/danielgtaylor/huma/v2"
)

// HistoryService interface defines the methods needed from the history service
type HistoryService interface {
	Get(ctx context.Context, id string) (*domain.HistoryEntry, error)
	List(ctx context.Context, limit int) ([]*domain.HistoryEntry, error)
}

// HistoryHandler handles history-related HTTP requests
type HistoryHandler struct {
	service HistoryService
}

// NewHistoryHandler creates a new history handler
func NewHistoryHandler(service HistoryService) *HistoryHandler {
	return &HistoryHandler{service: service}
}

// RegisterRoutes registers all history-related routes
func (h *HistoryHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "listHistory",
		Method:      http.MethodGet,
		Path:        "/api/history",
		Summary:     "List past generations",
		Description: "Returns recent moodboard generations, newest first",
		Tags:        []string{"History"},
	}, h.List)

	huma.Register(api, huma.Operation{
		OperationID: "getHistoryEntry",
		Method:      http.MethodGet,
		Path:        "/api/history/{id}",
		Summary:     "Fetch a past generation",
		Description: "Returns a single moodboard generation by its identifier",
		Tags:        []string{"History"},
	}, h.Get)
}

// HistoryListInput defines the input for the List operation
type HistoryListInput struct {
	Limit int `query:"limit" minimum:"1" maximum:"100" default:"20" doc:"Maximum number of entries to return"`
}

// HistoryListOutput defines the output for the List operation
type HistoryListOutput struct {
	Body responses.HistoryListResponse
}

// List handles the GET /api/history endpoint
func (h *HistoryHandler) List(ctx context.Context, input *HistoryListInput) (*HistoryListOutput, error) {
	entries, err := h.service.List(ctx, input.Limit)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &HistoryListOutput{Body: mappers.ToHistoryListResponse(entries)}, nil
}

// HistoryGetInput defines the input for the Get operation
type HistoryGetInput struct {
	ID string `path:"id" doc:"History entry identifier"`
}

// HistoryGetOutput defines the output for the Get operation
type HistoryGetOutput struct {
	Body responses.HistoryEntryResponse
}

// Get handles the GET /api/history/{id} endpoint
func (h *HistoryHandler) Get(ctx context.Context, input *HistoryGetInput) (*HistoryGetOutput, error) {
	entry, err := h.service.Get(ctx, input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &HistoryGetOutput{Body: mappers.ToHistoryEntryResponse(entry)}, nil
}
