package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/meridianhr/pathfinder/internal/api"
	"github.com/meridianhr/pathfinder/internal/api/middleware"
	"github.com/meridianhr/pathfinder/internal/engine"
)

type ChatService interface {
	AnswerQuery(ctx context.Context, employeeID, query string) (engine.Answer, error)
}

type ChatHandler struct {
	svc ChatService
}

func NewChatHandler(svc ChatService) *ChatHandler {
	return &ChatHandler{svc: svc}
}

type ChatQueryRequest struct {
	Query string `json:"query"`
}

type NavigationResponse struct {
	Category    string `json:"category"`
	Destination string `json:"destination"`
}

type ChatQueryResponse struct {
	Response   string              `json:"response"`
	Category   string              `json:"category,omitempty"`
	Score      float64             `json:"score"`
	Matched    bool                `json:"matched"`
	Navigation *NavigationResponse `json:"navigation,omitempty"`
}

// Query handles POST /chat/query
func (h *ChatHandler) Query(w http.ResponseWriter, r *http.Request) {
	employeeID := middleware.GetEmployeeID(r.Context())
	if employeeID == "" {
		api.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req ChatQueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		api.Error(w, http.StatusBadRequest, "query is required")
		return
	}

	answer, err := h.svc.AnswerQuery(r.Context(), employeeID, req.Query)
	if err != nil {
		api.HandleError(w, err)
		return
	}

	resp := ChatQueryResponse{
		Response: answer.Response,
		Category: string(answer.Category),
		Score:    answer.Score,
		Matched:  answer.Matched,
	}
	if answer.Navigation != nil {
		resp.Navigation = &NavigationResponse{
			Category:    string(answer.Navigation.Category),
			Destination: answer.Navigation.Destination,
		}
	}
	api.Success(w, http.StatusOK, resp)
}
