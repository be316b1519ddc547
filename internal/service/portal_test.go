package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/meridianhr/pathfinder/internal/domain"
	"github.com/meridianhr/pathfinder/internal/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProfileRepository is a mock implementation of ProfileRepositoryInterface
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

// MockCatalogRepository is a mock implementation of CatalogRepositoryInterface
type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) List(ctx context.Context) ([]domain.CatalogItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CatalogItem), args.Error(1)
}

// MockPolicyRepository is a mock implementation of PolicyRepositoryInterface
type MockPolicyRepository struct {
	mock.Mock
}

func (m *MockPolicyRepository) ListByDepartment(ctx context.Context, department string) ([]domain.Policy, error) {
	args := m.Called(ctx, department)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Policy), args.Error(1)
}

func (m *MockPolicyRepository) GetEmbeddings(ctx context.Context, policyIDs []string) (map[string][]float32, error) {
	args := m.Called(ctx, policyIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string][]float32), args.Error(1)
}

// MockRulesRepository is a mock implementation of RulesRepositoryInterface
type MockRulesRepository struct {
	mock.Mock
}

func (m *MockRulesRepository) List(ctx context.Context) ([]domain.CategoryRule, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CategoryRule), args.Error(1)
}

// MockLeaveRepository is a mock implementation of LeaveRepositoryInterface
type MockLeaveRepository struct {
	mock.Mock
}

func (m *MockLeaveRepository) Balance(ctx context.Context, employeeID string) (int, error) {
	args := m.Called(ctx, employeeID)
	return args.Int(0), args.Error(1)
}

func (m *MockLeaveRepository) RecentByEmployee(ctx context.Context, employeeID string, limit int) ([]domain.LeaveRequest, error) {
	args := m.Called(ctx, employeeID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LeaveRequest), args.Error(1)
}

// MockProgressRepository is a mock implementation of ProgressRepositoryInterface
type MockProgressRepository struct {
	mock.Mock
}

func (m *MockProgressRepository) Get(ctx context.Context, employeeID string, keys []string) (map[string]domain.SuggestionProgress, error) {
	args := m.Called(ctx, employeeID, keys)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.SuggestionProgress), args.Error(1)
}

func (m *MockProgressRepository) Upsert(ctx context.Context, progress domain.SuggestionProgress) error {
	args := m.Called(ctx, progress)
	return args.Error(0)
}

type portalMocks struct {
	profile  *MockProfileRepository
	catalog  *MockCatalogRepository
	policy   *MockPolicyRepository
	rules    *MockRulesRepository
	leave    *MockLeaveRepository
	progress *MockProgressRepository
}

func newPortalService() (*PortalService, *portalMocks) {
	m := &portalMocks{
		profile:  new(MockProfileRepository),
		catalog:  new(MockCatalogRepository),
		policy:   new(MockPolicyRepository),
		rules:    new(MockRulesRepository),
		leave:    new(MockLeaveRepository),
		progress: new(MockProgressRepository),
	}
	eng := engine.New(engine.NewLexicalRetriever(0, 0))
	svc := NewPortalService(m.profile, m.catalog, m.policy, m.rules, m.leave, m.progress, eng)
	return svc, m
}

func testProfile() *domain.Profile {
	return &domain.Profile{
		ID:           "emp-1",
		Name:         "John Employee",
		Role:         domain.RoleEmployee,
		Department:   "Engineering",
		Skills:       []string{"Docker"},
		LeaveBalance: 18,
	}
}

func testCatalog() []domain.CatalogItem {
	return []domain.CatalogItem{
		{ID: "c1", Title: "Docker and Containerization", Tags: []string{"Docker", "DevOps"}, Level: domain.LevelIntermediate},
		{ID: "c2", Title: "Watercolor Painting", Tags: []string{"Art"}, Level: domain.LevelBeginner},
	}
}

func TestPortalService_Recommendations(t *testing.T) {
	svc, m := newPortalService()
	ctx := context.Background()

	policies := []domain.Policy{
		{ID: "p1", Title: "Data Privacy Policy", Department: "Engineering", DueDate: time.Now().AddDate(0, 1, 0)},
	}

	m.profile.On("GetByID", ctx, "emp-1").Return(testProfile(), nil)
	m.catalog.On("List", ctx).Return(testCatalog(), nil)
	m.policy.On("ListByDepartment", ctx, "Engineering").Return(policies, nil)
	m.progress.On("Get", ctx, "emp-1", mock.Anything).Return(map[string]domain.SuggestionProgress{}, nil)

	set, err := svc.Recommendations(ctx, "emp-1")

	require.NoError(t, err)
	require.Len(t, set.TopLearning, 1)
	assert.Equal(t, "c1", set.TopLearning[0].Item.ID)
	assert.NotEmpty(t, set.SkillGaps)
	assert.NotEmpty(t, set.Certifications)
	require.Len(t, set.UpcomingPolicies, 1)

	require.NotEmpty(t, set.Suggestions)
	for _, sug := range set.Suggestions {
		assert.Len(t, sug.Key, 64)
		assert.Equal(t, domain.ProgressNotStarted, sug.Status)
	}

	m.profile.AssertExpectations(t)
	m.progress.AssertExpectations(t)
}

func TestPortalService_Recommendations_MergesStoredProgress(t *testing.T) {
	svc, m := newPortalService()
	ctx := context.Background()

	m.profile.On("GetByID", ctx, "emp-1").Return(testProfile(), nil)
	m.catalog.On("List", ctx).Return(testCatalog(), nil)
	m.policy.On("ListByDepartment", ctx, "Engineering").Return([]domain.Policy{}, nil)

	learningKey := engine.SuggestionKey(domain.SuggestionLearning, "Docker and Containerization", reasonLearning)
	stored := map[string]domain.SuggestionProgress{
		learningKey: {Key: learningKey, EmployeeID: "emp-1", Status: domain.ProgressCompleted},
	}
	m.progress.On("Get", ctx, "emp-1", mock.Anything).Return(stored, nil)

	set, err := svc.Recommendations(ctx, "emp-1")

	require.NoError(t, err)
	found := false
	for _, sug := range set.Suggestions {
		if sug.Key == learningKey {
			found = true
			assert.Equal(t, domain.ProgressCompleted, sug.Status)
		} else {
			assert.Equal(t, domain.ProgressNotStarted, sug.Status)
		}
	}
	assert.True(t, found)
}

func TestPortalService_Recommendations_ProgressFailureNotFatal(t *testing.T) {
	svc, m := newPortalService()
	ctx := context.Background()

	m.profile.On("GetByID", ctx, "emp-1").Return(testProfile(), nil)
	m.catalog.On("List", ctx).Return(testCatalog(), nil)
	m.policy.On("ListByDepartment", ctx, "Engineering").Return([]domain.Policy{}, nil)
	m.progress.On("Get", ctx, "emp-1", mock.Anything).Return(nil, errors.New("store down"))

	set, err := svc.Recommendations(ctx, "emp-1")

	require.NoError(t, err)
	for _, sug := range set.Suggestions {
		assert.Equal(t, domain.ProgressNotStarted, sug.Status)
	}
}

func TestPortalService_Recommendations_ProfileNotFound(t *testing.T) {
	svc, m := newPortalService()
	ctx := context.Background()

	m.profile.On("GetByID", ctx, "ghost").Return(nil, domain.ErrProfileNotFound)

	_, err := svc.Recommendations(ctx, "ghost")

	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}

func TestPortalService_LearningPaths(t *testing.T) {
	svc, m := newPortalService()
	ctx := context.Background()

	m.profile.On("GetByID", ctx, "emp-1").Return(testProfile(), nil)
	m.catalog.On("List", ctx).Return(testCatalog(), nil)

	paths, err := svc.LearningPaths(ctx, "emp-1")

	require.NoError(t, err)
	assert.NotEmpty(t, paths)
}

func TestPortalService_AnswerQuery(t *testing.T) {
	svc, m := newPortalService()
	ctx := context.Background()

	m.profile.On("GetByID", ctx, "emp-1").Return(testProfile(), nil)
	m.catalog.On("List", ctx).Return(testCatalog(), nil)
	m.policy.On("ListByDepartment", ctx, "Engineering").Return([]domain.Policy{}, nil)
	m.leave.On("Balance", ctx, "emp-1").Return(7, nil)
	m.leave.On("RecentByEmployee", ctx, "emp-1", recentLeaveLimit).Return([]domain.LeaveRequest{}, nil)
	m.rules.On("List", ctx).Return([]domain.CategoryRule{}, nil)

	answer, err := svc.AnswerQuery(ctx, "emp-1", "what is my leave balance")

	require.NoError(t, err)
	assert.True(t, answer.Matched)
	assert.Equal(t, "You currently have 7 leave days remaining.", answer.Response)
}

func TestPortalService_AnswerQuery_AttachesCachedVectors(t *testing.T) {
	svc, m := newPortalService()
	ctx := context.Background()

	policies := []domain.Policy{
		{ID: "p1", Title: "Data Privacy Policy", Department: "Engineering", DueDate: time.Now().AddDate(0, 1, 0)},
	}

	m.profile.On("GetByID", ctx, "emp-1").Return(testProfile(), nil)
	m.catalog.On("List", ctx).Return(testCatalog(), nil)
	m.policy.On("ListByDepartment", ctx, "Engineering").Return(policies, nil)
	m.leave.On("Balance", ctx, "emp-1").Return(7, nil)
	m.leave.On("RecentByEmployee", ctx, "emp-1", recentLeaveLimit).Return([]domain.LeaveRequest{}, nil)
	m.rules.On("List", ctx).Return([]domain.CategoryRule{}, nil)
	m.policy.On("GetEmbeddings", ctx, []string{"p1"}).Return(map[string][]float32{"p1": {1, 0}}, nil)

	_, err := svc.AnswerQuery(ctx, "emp-1", "what is my leave balance")

	require.NoError(t, err)
	m.policy.AssertCalled(t, "GetEmbeddings", ctx, []string{"p1"})
}

func TestPortalService_Roadmap(t *testing.T) {
	svc, m := newPortalService()
	ctx := context.Background()

	m.profile.On("GetByID", ctx, "emp-1").Return(&domain.Profile{
		ID:          "emp-1",
		Department:  "Engineering",
		Preferences: &domain.CareerPreferences{CurrentRole: "Data Scientist"},
	}, nil)

	roadmap, err := svc.Roadmap(ctx, "emp-1")

	require.NoError(t, err)
	assert.Equal(t, "Data Scientist", roadmap.CurrentRole.Title)
	assert.Len(t, roadmap.Paths, 3)
}

func TestPortalService_UpdateSuggestionProgress(t *testing.T) {
	svc, m := newPortalService()
	ctx := context.Background()

	m.progress.On("Upsert", ctx, mock.MatchedBy(func(p domain.SuggestionProgress) bool {
		return p.EmployeeID == "emp-1" &&
			p.Status == domain.ProgressCompleted &&
			p.CompletedAt != nil &&
			p.Key == engine.SuggestionKey(domain.SuggestionLearning, "Docker", "top learning recommendation")
	})).Return(nil)

	progress, err := svc.UpdateSuggestionProgress(ctx, "emp-1",
		domain.SuggestionLearning, "Docker", "top learning recommendation", domain.ProgressCompleted)

	require.NoError(t, err)
	assert.Equal(t, domain.ProgressCompleted, progress.Status)
	assert.NotNil(t, progress.CompletedAt)
	m.progress.AssertExpectations(t)
}

func TestPortalService_UpdateSuggestionProgress_Validation(t *testing.T) {
	svc, _ := newPortalService()
	ctx := context.Background()

	_, err := svc.UpdateSuggestionProgress(ctx, "emp-1", "bogus", "Docker", "r", domain.ProgressCompleted)
	assert.ErrorIs(t, err, domain.ErrInvalidSuggestionKind)

	_, err = svc.UpdateSuggestionProgress(ctx, "emp-1", domain.SuggestionLearning, "Docker", "r", "bogus")
	assert.ErrorIs(t, err, domain.ErrInvalidProgressStatus)

	_, err = svc.UpdateSuggestionProgress(ctx, "emp-1", domain.SuggestionLearning, "", "r", domain.ProgressCompleted)
	assert.ErrorIs(t, err, domain.ErrMissingRequiredField)
}

func TestPortalService_UpdateSuggestionProgress_NotCompletedHasNoTimestamp(t *testing.T) {
	svc, m := newPortalService()
	ctx := context.Background()

	m.progress.On("Upsert", ctx, mock.Anything).Return(nil)

	progress, err := svc.UpdateSuggestionProgress(ctx, "emp-1",
		domain.SuggestionSkill, "Kubernetes", "skill gap", domain.ProgressInProgress)

	require.NoError(t, err)
	assert.Nil(t, progress.CompletedAt)
}
