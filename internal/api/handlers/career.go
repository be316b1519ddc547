package handlers

import (
	"context"
	"net/http"

	"github.com/meridianhr/pathfinder/internal/api"
	"github.com/meridianhr/pathfinder/internal/api/middleware"
	"github.com/meridianhr/pathfinder/internal/domain"
)

type CareerService interface {
	Roadmap(ctx context.Context, employeeID string) (domain.Roadmap, error)
}

type CareerHandler struct {
	svc CareerService
}

func NewCareerHandler(svc CareerService) *CareerHandler {
	return &CareerHandler{svc: svc}
}

type NextRoleResponse struct {
	Title      string `json:"title"`
	Department string `json:"department,omitempty"`
}

type CareerPathResponse struct {
	Category  string             `json:"category"`
	Label     string             `json:"label"`
	NextRoles []NextRoleResponse `json:"next_roles"`
}

type RoadmapResponse struct {
	CurrentRole NextRoleResponse     `json:"current_role"`
	Paths       []CareerPathResponse `json:"paths"`
}

// GetRoadmap handles GET /career/roadmap
func (h *CareerHandler) GetRoadmap(w http.ResponseWriter, r *http.Request) {
	employeeID := middleware.GetEmployeeID(r.Context())
	if employeeID == "" {
		api.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	roadmap, err := h.svc.Roadmap(r.Context(), employeeID)
	if err != nil {
		api.HandleError(w, err)
		return
	}

	api.Success(w, http.StatusOK, roadmapToResponse(roadmap))
}

func roadmapToResponse(roadmap domain.Roadmap) RoadmapResponse {
	resp := RoadmapResponse{
		CurrentRole: NextRoleResponse{
			Title:      roadmap.CurrentRole.Title,
			Department: roadmap.CurrentRole.Department,
		},
		Paths: make([]CareerPathResponse, 0, len(roadmap.Paths)),
	}

	for _, path := range roadmap.Paths {
		pr := CareerPathResponse{
			Category:  string(path.Category),
			Label:     path.Label,
			NextRoles: make([]NextRoleResponse, 0, len(path.NextRoles)),
		}
		for _, role := range path.NextRoles {
			pr.NextRoles = append(pr.NextRoles, NextRoleResponse{
				Title:      role.Title,
				Department: role.Department,
			})
		}
		resp.Paths = append(resp.Paths, pr)
	}
	return resp
}
