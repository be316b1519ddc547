package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/meridianhr/pathfinder/internal/api"
	"github.com/meridianhr/pathfinder/internal/api/middleware"
	"github.com/meridianhr/pathfinder/internal/domain"
	"github.com/meridianhr/pathfinder/internal/service"
)

type ProgressService interface {
	SuggestionProgressList(ctx context.Context, employeeID string) ([]service.SuggestionStatus, error)
	UpdateSuggestionProgress(ctx context.Context, employeeID string, kind domain.SuggestionKind, title, reason string, status domain.ProgressStatus) (*domain.SuggestionProgress, error)
}

type ProgressHandler struct {
	svc ProgressService
}

func NewProgressHandler(svc ProgressService) *ProgressHandler {
	return &ProgressHandler{svc: svc}
}

type UpdateProgressRequest struct {
	Kind   string `json:"kind"`
	Title  string `json:"title"`
	Reason string `json:"reason"`
	Status string `json:"status"`
}

type ProgressResponse struct {
	Key         string `json:"key"`
	Status      string `json:"status"`
	CompletedAt string `json:"completed_at,omitempty"`
}

// List handles GET /suggestions/progress
func (h *ProgressHandler) List(w http.ResponseWriter, r *http.Request) {
	employeeID := middleware.GetEmployeeID(r.Context())
	if employeeID == "" {
		api.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	suggestions, err := h.svc.SuggestionProgressList(r.Context(), employeeID)
	if err != nil {
		api.HandleError(w, err)
		return
	}

	resp := make([]SuggestionResponse, 0, len(suggestions))
	for _, sug := range suggestions {
		resp = append(resp, SuggestionResponse{
			Key:    sug.Key,
			Kind:   string(sug.Kind),
			Title:  sug.Title,
			Reason: sug.Reason,
			Status: string(sug.Status),
		})
	}
	api.Success(w, http.StatusOK, resp)
}

// Update handles PATCH /suggestions/progress
func (h *ProgressHandler) Update(w http.ResponseWriter, r *http.Request) {
	employeeID := middleware.GetEmployeeID(r.Context())
	if employeeID == "" {
		api.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req UpdateProgressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	progress, err := h.svc.UpdateSuggestionProgress(
		r.Context(),
		employeeID,
		domain.SuggestionKind(req.Kind),
		req.Title,
		req.Reason,
		domain.ProgressStatus(req.Status),
	)
	if err != nil {
		api.HandleError(w, err)
		return
	}

	resp := ProgressResponse{
		Key:    progress.Key,
		Status: string(progress.Status),
	}
	if progress.CompletedAt != nil {
		resp.CompletedAt = progress.CompletedAt.Format("2006-01-02T15:04:05Z")
	}
	api.Success(w, http.StatusOK, resp)
}
