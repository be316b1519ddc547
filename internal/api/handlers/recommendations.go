package handlers

import (
	"context"
	"net/http"

	"github.com/meridianhr/pathfinder/internal/api"
	"github.com/meridianhr/pathfinder/internal/api/middleware"
	"github.com/meridianhr/pathfinder/internal/domain"
	"github.com/meridianhr/pathfinder/internal/service"
)

type RecommendationService interface {
	Recommendations(ctx context.Context, employeeID string) (*service.RecommendationSet, error)
	LearningPaths(ctx context.Context, employeeID string) ([]domain.LearningPath, error)
}

type RecommendationHandler struct {
	svc RecommendationService
}

func NewRecommendationHandler(svc RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{svc: svc}
}

type ScoredItemResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Tags        []string `json:"tags"`
	Level       string   `json:"level"`
	Description string   `json:"description,omitempty"`
	Score       int      `json:"score"`
}

type PolicyResponse struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Department string `json:"department"`
	DueDate    string `json:"due_date"`
	Category   string `json:"category,omitempty"`
}

type SuggestionResponse struct {
	Key    string `json:"key"`
	Kind   string `json:"kind"`
	Title  string `json:"title"`
	Reason string `json:"reason"`
	Status string `json:"status"`
}

type RecommendationsResponse struct {
	TopLearning      []ScoredItemResponse `json:"top_learning"`
	SkillGaps        []string             `json:"skill_gaps"`
	Certifications   []string             `json:"certifications"`
	Explanations     []string             `json:"explanations"`
	UpcomingPolicies []PolicyResponse     `json:"upcoming_policies"`
	Suggestions      []SuggestionResponse `json:"suggestions"`
}

type PathStepResponse struct {
	Order int                `json:"order"`
	Item  ScoredItemResponse `json:"item"`
}

type LearningPathResponse struct {
	Name  string             `json:"name"`
	Steps []PathStepResponse `json:"steps"`
}

// Get handles GET /recommendations
func (h *RecommendationHandler) Get(w http.ResponseWriter, r *http.Request) {
	employeeID := middleware.GetEmployeeID(r.Context())
	if employeeID == "" {
		api.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	set, err := h.svc.Recommendations(r.Context(), employeeID)
	if err != nil {
		api.HandleError(w, err)
		return
	}

	api.Success(w, http.StatusOK, recommendationsToResponse(set))
}

// GetPaths handles GET /recommendations/paths
func (h *RecommendationHandler) GetPaths(w http.ResponseWriter, r *http.Request) {
	employeeID := middleware.GetEmployeeID(r.Context())
	if employeeID == "" {
		api.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	paths, err := h.svc.LearningPaths(r.Context(), employeeID)
	if err != nil {
		api.HandleError(w, err)
		return
	}

	resp := make([]LearningPathResponse, 0, len(paths))
	for _, p := range paths {
		resp = append(resp, learningPathToResponse(p))
	}
	api.Success(w, http.StatusOK, resp)
}

func recommendationsToResponse(set *service.RecommendationSet) RecommendationsResponse {
	resp := RecommendationsResponse{
		TopLearning:      make([]ScoredItemResponse, 0, len(set.TopLearning)),
		SkillGaps:        emptyIfNil(set.SkillGaps),
		Certifications:   emptyIfNil(set.Certifications),
		Explanations:     emptyIfNil(set.Explanations),
		UpcomingPolicies: make([]PolicyResponse, 0, len(set.UpcomingPolicies)),
		Suggestions:      make([]SuggestionResponse, 0, len(set.Suggestions)),
	}

	for _, item := range set.TopLearning {
		resp.TopLearning = append(resp.TopLearning, scoredItemToResponse(item))
	}
	for _, pol := range set.UpcomingPolicies {
		resp.UpcomingPolicies = append(resp.UpcomingPolicies, PolicyResponse{
			ID:         pol.ID,
			Title:      pol.Title,
			Department: pol.Department,
			DueDate:    pol.DueDate.Format("2006-01-02"),
			Category:   pol.Category,
		})
	}
	for _, sug := range set.Suggestions {
		resp.Suggestions = append(resp.Suggestions, SuggestionResponse{
			Key:    sug.Key,
			Kind:   string(sug.Kind),
			Title:  sug.Title,
			Reason: sug.Reason,
			Status: string(sug.Status),
		})
	}
	return resp
}

func scoredItemToResponse(item domain.ScoredItem) ScoredItemResponse {
	return ScoredItemResponse{
		ID:          item.Item.ID,
		Title:       item.Item.Title,
		Tags:        emptyIfNil(item.Item.Tags),
		Level:       string(item.Item.Level),
		Description: item.Item.Description,
		Score:       item.Score,
	}
}

func learningPathToResponse(p domain.LearningPath) LearningPathResponse {
	resp := LearningPathResponse{
		Name:  p.Name,
		Steps: make([]PathStepResponse, 0, len(p.Steps)),
	}
	for _, step := range p.Steps {
		resp.Steps = append(resp.Steps, PathStepResponse{
			Order: step.Order,
			Item:  scoredItemToResponse(domain.ScoredItem{Item: step.Item}),
		})
	}
	return resp
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
