//go:build e2e

package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/meridianhr/pathfinder/internal/api/handlers"
	"github.com/meridianhr/pathfinder/internal/domain"
	"github.com/meridianhr/pathfinder/internal/engine"
	"github.com/meridianhr/pathfinder/internal/repository"
	"github.com/meridianhr/pathfinder/internal/server"
	"github.com/meridianhr/pathfinder/internal/service"
	"github.com/meridianhr/pathfinder/internal/testutil"
)

// E2ETestEnv holds all resources needed for end-to-end tests
type E2ETestEnv struct {
	T            *testing.T
	Ctx          context.Context
	PostgresC    *testutil.PostgresContainer
	Pool         *pgxpool.Pool
	ServerURL    string
	ServerCloser func()
	HTTPClient   *http.Client
}

// SetupE2EEnv creates a full test environment with a database container and a
// running portal server
func SetupE2EEnv(t *testing.T) *E2ETestEnv {
	ctx := context.Background()

	pgC := testutil.NewPostgresContainer(ctx, t)
	pool := testutil.NewTestPool(ctx, t, pgC, "../../migrations")

	port, err := getFreePort()
	if err != nil {
		t.Fatalf("failed to get free port: %v", err)
	}

	serverURL, serverCloser := startServer(t, pool, port)

	return &E2ETestEnv{
		T:            t,
		Ctx:          ctx,
		PostgresC:    pgC,
		Pool:         pool,
		ServerURL:    serverURL,
		ServerCloser: serverCloser,
		HTTPClient:   &http.Client{Timeout: 30 * time.Second},
	}
}

// Cleanup releases all resources
func (e *E2ETestEnv) Cleanup() {
	if e.ServerCloser != nil {
		e.ServerCloser()
	}
	if e.Pool != nil {
		e.Pool.Close()
	}
	if e.PostgresC != nil {
		e.PostgresC.Terminate(e.Ctx)
	}
}

// Seed loads a small portal dataset: one engineer with a leave history, a
// learning catalog, and an upcoming compliance policy.
func (e *E2ETestEnv) Seed() {
	profileRepo := repository.NewProfileRepository(e.Pool)
	catalogRepo := repository.NewCatalogRepository(e.Pool)
	policyRepo := repository.NewPolicyRepository(e.Pool)
	rulesRepo := repository.NewRulesRepository(e.Pool)
	leaveRepo := repository.NewLeaveRepository(e.Pool)

	if err := profileRepo.Create(e.Ctx, &domain.Profile{
		ID:         "emp-1001",
		Name:       "John Employee",
		Role:       domain.RoleEmployee,
		Department: "Engineering",
		Skills:     []string{"Python", "Docker"},
		Interests:  []string{"AI", "DevOps"},
		Preferences: &domain.CareerPreferences{
			CurrentRole: "Software Engineer",
			Goals:       []string{"AI"},
		},
		LeaveBalance: 18,
	}); err != nil {
		e.T.Fatalf("failed to seed profile: %v", err)
	}

	catalog := []domain.CatalogItem{
		{ID: "lc-0001", Title: "Docker and Containerization", Tags: []string{"Docker", "DevOps", "Engineering"}, Level: domain.LevelIntermediate},
		{ID: "lc-0002", Title: "Machine Learning Foundations", Tags: []string{"AI", "Python"}, Level: domain.LevelBeginner},
		{ID: "lc-0003", Title: "Advanced Cloud Architecture", Tags: []string{"Cloud", "Engineering"}, Level: domain.LevelAdvanced},
	}
	for i := range catalog {
		if err := catalogRepo.Create(e.Ctx, &catalog[i]); err != nil {
			e.T.Fatalf("failed to seed catalog item %s: %v", catalog[i].ID, err)
		}
	}

	if err := policyRepo.Create(e.Ctx, &domain.Policy{
		ID:          "pol-0001",
		Title:       "Data Privacy Policy",
		Department:  "Engineering",
		DueDate:     time.Now().AddDate(0, 1, 0),
		Description: "All employee data must be encrypted at rest and in transit.",
		Category:    "hr",
		Rules:       []string{"Encrypt personal data at rest.", "Report breaches within 24 hours."},
	}); err != nil {
		e.T.Fatalf("failed to seed policy: %v", err)
	}

	if err := rulesRepo.Create(e.Ctx, &domain.CategoryRule{
		ID:           "rule-0001",
		Category:     "hr",
		Text:         "Treat all personnel records as confidential.",
		DisplayOrder: 1,
	}); err != nil {
		e.T.Fatalf("failed to seed category rule: %v", err)
	}

	if err := leaveRepo.Create(e.Ctx, &domain.LeaveRequest{
		ID:         "lr-0001",
		EmployeeID: "emp-1001",
		Department: "Engineering",
		FromDate:   time.Now().AddDate(0, 0, -10),
		ToDate:     time.Now().AddDate(0, 0, -8),
		Reason:     "Vacation",
		Status:     domain.LeaveStatusApproved,
	}); err != nil {
		e.T.Fatalf("failed to seed leave request: %v", err)
	}
}

// APIResponse represents a standard API response
type APIResponse struct {
	Data  json.RawMessage `json:"data"`
	Error string          `json:"error,omitempty"`
}

// Get performs a GET request
func (e *E2ETestEnv) Get(path, employeeID string) (*APIResponse, error) {
	return e.doRequest(http.MethodGet, path, nil, employeeID)
}

// Post performs a POST request
func (e *E2ETestEnv) Post(path string, body interface{}, employeeID string) (*APIResponse, error) {
	return e.doRequest(http.MethodPost, path, body, employeeID)
}

// Patch performs a PATCH request
func (e *E2ETestEnv) Patch(path string, body interface{}, employeeID string) (*APIResponse, error) {
	return e.doRequest(http.MethodPatch, path, body, employeeID)
}

func (e *E2ETestEnv) doRequest(method, path string, body interface{}, employeeID string) (*APIResponse, error) {
	url := e.ServerURL + path

	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal body: %w", err)
		}
		reqBody = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return nil, err
	}

	if employeeID != "" {
		req.Header.Set("X-Employee-ID", employeeID)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var apiResp APIResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		if resp.StatusCode >= 400 {
			return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(respBody))
		}
		return nil, err
	}

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, apiResp.Error)
	}

	return &apiResp, nil
}

// startServer starts the HTTP server with all handlers wired to real repositories
func startServer(t *testing.T, pool *pgxpool.Pool, port int) (string, func()) {
	profileRepo := repository.NewProfileRepository(pool)
	catalogRepo := repository.NewCatalogRepository(pool)
	policyRepo := repository.NewPolicyRepository(pool)
	rulesRepo := repository.NewRulesRepository(pool)
	leaveRepo := repository.NewLeaveRepository(pool)
	progressRepo := repository.NewProgressRepository(pool)

	eng := engine.New(engine.NewLexicalRetriever(0, 0))
	portalSvc := service.NewPortalService(profileRepo, catalogRepo, policyRepo, rulesRepo, leaveRepo, progressRepo, eng)

	router := server.NewRouter(server.RouterConfig{
		RecommendationHandler: handlers.NewRecommendationHandler(portalSvc),
		ChatHandler:           handlers.NewChatHandler(portalSvc),
		CareerHandler:         handlers.NewCareerHandler(portalSvc),
		ProgressHandler:       handlers.NewProgressHandler(portalSvc),
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			t.Logf("server error: %v", err)
		}
	}()

	serverURL := fmt.Sprintf("http://localhost:%d", port)
	waitForServer(t, serverURL+"/health")

	closer := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(ctx)
	}

	return serverURL, closer
}

func waitForServer(t *testing.T, healthURL string) {
	client := &http.Client{Timeout: time.Second}
	for i := 0; i < 50; i++ {
		resp, err := client.Get(healthURL)
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(100 * time.Millisecond)
	}
	t.Fatal("server did not become ready")
}

func getFreePort() (int, error) {
	l, err := net.Listen("tcp", ":0")
	if err != nil {
		return 0, err
	}
	defer l.Close()
	return l.Addr().(*net.TCPAddr).Port, nil
}
