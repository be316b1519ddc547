package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/meridianhr/pathfinder/internal/api/handlers"
	"github.com/meridianhr/pathfinder/internal/domain"
	"github.com/meridianhr/pathfinder/internal/engine"
	"github.com/meridianhr/pathfinder/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRecommendationService struct {
	mock.Mock
}

func (m *MockRecommendationService) Recommendations(ctx context.Context, employeeID string) (*service.RecommendationSet, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.RecommendationSet), args.Error(1)
}

func (m *MockRecommendationService) LearningPaths(ctx context.Context, employeeID string) ([]domain.LearningPath, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LearningPath), args.Error(1)
}

type MockChatService struct {
	mock.Mock
}

func (m *MockChatService) AnswerQuery(ctx context.Context, employeeID, query string) (engine.Answer, error) {
	args := m.Called(ctx, employeeID, query)
	return args.Get(0).(engine.Answer), args.Error(1)
}

type MockCareerService struct {
	mock.Mock
}

func (m *MockCareerService) Roadmap(ctx context.Context, employeeID string) (domain.Roadmap, error) {
	args := m.Called(ctx, employeeID)
	return args.Get(0).(domain.Roadmap), args.Error(1)
}

type MockProgressService struct {
	mock.Mock
}

func (m *MockProgressService) SuggestionProgressList(ctx context.Context, employeeID string) ([]service.SuggestionStatus, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.SuggestionStatus), args.Error(1)
}

func (m *MockProgressService) UpdateSuggestionProgress(ctx context.Context, employeeID string, kind domain.SuggestionKind, title, reason string, status domain.ProgressStatus) (*domain.SuggestionProgress, error) {
	args := m.Called(ctx, employeeID, kind, title, reason, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SuggestionProgress), args.Error(1)
}

func setupRouter() (http.Handler, *MockRecommendationService, *MockChatService, *MockCareerService, *MockProgressService) {
	recSvc := new(MockRecommendationService)
	chatSvc := new(MockChatService)
	careerSvc := new(MockCareerService)
	progressSvc := new(MockProgressService)

	cfg := RouterConfig{
		RecommendationHandler: handlers.NewRecommendationHandler(recSvc),
		ChatHandler:           handlers.NewChatHandler(chatSvc),
		CareerHandler:         handlers.NewCareerHandler(careerSvc),
		ProgressHandler:       handlers.NewProgressHandler(progressSvc),
	}

	return NewRouter(cfg), recSvc, chatSvc, careerSvc, progressSvc
}

func TestRouter_HealthEndpoint(t *testing.T) {
	router, _, _, _, _ := setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "ok", data["status"])
}

func TestRouter_AuthenticatedRoutes_RequireIdentity(t *testing.T) {
	router, _, _, _, _ := setupRouter()

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/recommendations"},
		{http.MethodGet, "/recommendations/paths"},
		{http.MethodPost, "/chat/query"},
		{http.MethodGet, "/career/roadmap"},
		{http.MethodGet, "/suggestions/progress"},
		{http.MethodPatch, "/suggestions/progress"},
	}

	for _, route := range routes {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			req := httptest.NewRequest(route.method, route.path, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestRouter_AuthenticatedRoutes_WithIdentityHeader(t *testing.T) {
	router, recSvc, _, _, _ := setupRouter()

	recSvc.On("Recommendations", mock.Anything, "emp-1001").Return(&service.RecommendationSet{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/recommendations", nil)
	req.Header.Set("X-Employee-ID", "emp-1001")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	recSvc.AssertExpectations(t)
}

func TestRouter_ChatQuery_EndToEnd(t *testing.T) {
	router, _, chatSvc, _, _ := setupRouter()

	chatSvc.On("AnswerQuery", mock.Anything, "emp-1001", "wellness programs").Return(engine.Answer{
		Response: "We offer gym membership discounts through the wellness portal.",
		Category: domain.CategoryWellness,
		Matched:  true,
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/chat/query", strings.NewReader(`{"query":"wellness programs"}`))
	req.Header.Set("X-Employee-ID", "emp-1001")
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	chatSvc.AssertExpectations(t)
}

func TestRouter_RejectsOversizedBody(t *testing.T) {
	router, _, chatSvc, _, _ := setupRouter()

	big := strings.Repeat("a", 2*1024*1024)
	req := httptest.NewRequest(http.MethodPost, "/chat/query", strings.NewReader(`{"query":"`+big+`"}`))
	req.Header.Set("X-Employee-ID", "emp-1001")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	chatSvc.AssertNotCalled(t, "AnswerQuery", mock.Anything, mock.Anything, mock.Anything)
}
