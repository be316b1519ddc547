package service

import (
	"context"
	"log"
	"time"

	"github.com/meridianhr/pathfinder/internal/domain"
	"github.com/meridianhr/pathfinder/internal/engine"
)

// ProfileRepositoryInterface defines the repository interface for profile reads
type ProfileRepositoryInterface interface {
	GetByID(ctx context.Context, id string) (*domain.Profile, error)
}

// CatalogRepositoryInterface defines the repository interface for the learning catalog
type CatalogRepositoryInterface interface {
	List(ctx context.Context) ([]domain.CatalogItem, error)
}

// PolicyRepositoryInterface defines the repository interface for compliance policies
type PolicyRepositoryInterface interface {
	ListByDepartment(ctx context.Context, department string) ([]domain.Policy, error)
	GetEmbeddings(ctx context.Context, policyIDs []string) (map[string][]float32, error)
}

// RulesRepositoryInterface defines the repository interface for category rules
type RulesRepositoryInterface interface {
	List(ctx context.Context) ([]domain.CategoryRule, error)
}

// LeaveRepositoryInterface defines the repository interface for leave data
type LeaveRepositoryInterface interface {
	Balance(ctx context.Context, employeeID string) (int, error)
	RecentByEmployee(ctx context.Context, employeeID string, limit int) ([]domain.LeaveRequest, error)
}

// ProgressRepositoryInterface defines the repository interface for suggestion progress
type ProgressRepositoryInterface interface {
	Get(ctx context.Context, employeeID string, keys []string) (map[string]domain.SuggestionProgress, error)
	Upsert(ctx context.Context, progress domain.SuggestionProgress) error
}

// SuggestionStatus is one trackable suggestion with its progress state. Key is
// deterministic over (kind, title, reason), so clients echo those three fields
// back when updating progress.
type SuggestionStatus struct {
	Key    string
	Kind   domain.SuggestionKind
	Title  string
	Reason string
	Status domain.ProgressStatus
}

// RecommendationSet is the full recommendations payload for one employee.
type RecommendationSet struct {
	TopLearning      []domain.ScoredItem
	SkillGaps        []string
	Certifications   []string
	Explanations     []string
	UpcomingPolicies []domain.Policy
	Suggestions      []SuggestionStatus
}

// Reasons surfaced on suggestion rows. They feed the suggestion key, so
// changing one orphans every stored progress row of that kind.
const (
	reasonLearning      = "top learning recommendation"
	reasonCertification = "role certification suggestion"
	reasonPolicy        = "upcoming compliance deadline"
	reasonSkill         = "skill gap"
)

const recentLeaveLimit = 5

// PortalService handles business logic for the recommendation and retrieval
// portal. It loads per-request snapshots from the repositories and delegates
// the pure computation to the engine.
type PortalService struct {
	profileRepo  ProfileRepositoryInterface
	catalogRepo  CatalogRepositoryInterface
	policyRepo   PolicyRepositoryInterface
	rulesRepo    RulesRepositoryInterface
	leaveRepo    LeaveRepositoryInterface
	progressRepo ProgressRepositoryInterface
	engine       *engine.Engine
}

// NewPortalService creates a new PortalService instance
func NewPortalService(
	profileRepo ProfileRepositoryInterface,
	catalogRepo CatalogRepositoryInterface,
	policyRepo PolicyRepositoryInterface,
	rulesRepo RulesRepositoryInterface,
	leaveRepo LeaveRepositoryInterface,
	progressRepo ProgressRepositoryInterface,
	eng *engine.Engine,
) *PortalService {
	return &PortalService{
		profileRepo:  profileRepo,
		catalogRepo:  catalogRepo,
		policyRepo:   policyRepo,
		rulesRepo:    rulesRepo,
		leaveRepo:    leaveRepo,
		progressRepo: progressRepo,
		engine:       eng,
	}
}

// Recommendations computes the employee's learning recommendations, skill
// gaps, certification suggestions, explanations, and compliance reminders,
// with stored progress merged onto each trackable suggestion.
func (s *PortalService) Recommendations(ctx context.Context, employeeID string) (*RecommendationSet, error) {
	profile, err := s.profileRepo.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	catalog, err := s.catalogRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	policies, err := s.policyRepo.ListByDepartment(ctx, profile.Department)
	if err != nil {
		return nil, err
	}

	rec := s.engine.ScoreAndRankLearning(profile, catalog, policies)

	set := &RecommendationSet{
		TopLearning:      rec.TopLearning,
		SkillGaps:        rec.SkillGaps,
		Certifications:   rec.Certifications,
		Explanations:     rec.Explanations,
		UpcomingPolicies: rec.UpcomingPolicies,
		Suggestions:      buildSuggestions(rec),
	}
	s.mergeProgress(ctx, employeeID, set.Suggestions)
	return set, nil
}

// LearningPaths assembles the role-specific learning paths for the employee.
func (s *PortalService) LearningPaths(ctx context.Context, employeeID string) ([]domain.LearningPath, error) {
	profile, err := s.profileRepo.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	catalog, err := s.catalogRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	return s.engine.BuildPaths(profile, catalog), nil
}

// AnswerQuery answers a free-text question over the employee's per-request
// corpus. Retrieval itself never fails; only loading the inputs can.
func (s *PortalService) AnswerQuery(ctx context.Context, employeeID, query string) (engine.Answer, error) {
	profile, err := s.profileRepo.GetByID(ctx, employeeID)
	if err != nil {
		return engine.Answer{}, err
	}

	catalog, err := s.catalogRepo.List(ctx)
	if err != nil {
		return engine.Answer{}, err
	}

	policies, err := s.policyRepo.ListByDepartment(ctx, profile.Department)
	if err != nil {
		return engine.Answer{}, err
	}

	balance, err := s.leaveRepo.Balance(ctx, employeeID)
	if err != nil {
		return engine.Answer{}, err
	}

	requests, err := s.leaveRepo.RecentByEmployee(ctx, employeeID, recentLeaveLimit)
	if err != nil {
		return engine.Answer{}, err
	}

	rules, err := s.rulesRepo.List(ctx)
	if err != nil {
		return engine.Answer{}, err
	}

	corpus := engine.BuildCorpus(profile, engine.CorpusInput{
		Policies:      policies,
		TopLearning:   engine.RankLearning(profile, catalog, s.engine.Weights()),
		LeaveBalance:  balance,
		LeaveRequests: requests,
		CategoryRules: rules,
	})
	s.attachPolicyVectors(ctx, corpus)

	return s.engine.AnswerQuery(ctx, query, corpus), nil
}

// Roadmap resolves the employee's career trajectory.
func (s *PortalService) Roadmap(ctx context.Context, employeeID string) (domain.Roadmap, error) {
	profile, err := s.profileRepo.GetByID(ctx, employeeID)
	if err != nil {
		return domain.Roadmap{}, err
	}
	return s.engine.ResolveRoadmap(profile), nil
}

// SuggestionProgressList returns the employee's current suggestions with
// their stored progress states.
func (s *PortalService) SuggestionProgressList(ctx context.Context, employeeID string) ([]SuggestionStatus, error) {
	set, err := s.Recommendations(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return set.Suggestions, nil
}

// UpdateSuggestionProgress records a progress update for one suggestion.
// Writes are idempotent; last write wins.
func (s *PortalService) UpdateSuggestionProgress(
	ctx context.Context,
	employeeID string,
	kind domain.SuggestionKind,
	title, reason string,
	status domain.ProgressStatus,
) (*domain.SuggestionProgress, error) {
	if err := domain.ValidateSuggestionKind(kind); err != nil {
		return nil, domain.ErrInvalidSuggestionKind
	}
	if err := domain.ValidateProgressStatus(status); err != nil {
		return nil, domain.ErrInvalidProgressStatus
	}
	if title == "" {
		return nil, domain.ErrMissingRequiredField
	}

	progress := domain.SuggestionProgress{
		Key:        engine.SuggestionKey(kind, title, reason),
		EmployeeID: employeeID,
		Status:     status,
	}
	if status == domain.ProgressCompleted {
		now := time.Now().UTC()
		progress.CompletedAt = &now
	}

	if err := s.progressRepo.Upsert(ctx, progress); err != nil {
		return nil, err
	}
	return &progress, nil
}

func buildSuggestions(rec *engine.Recommendations) []SuggestionStatus {
	suggestions := make([]SuggestionStatus, 0,
		len(rec.TopLearning)+len(rec.Certifications)+len(rec.UpcomingPolicies)+len(rec.SkillGaps))

	for _, item := range rec.TopLearning {
		suggestions = append(suggestions, newSuggestion(domain.SuggestionLearning, item.Item.Title, reasonLearning))
	}
	for _, cert := range rec.Certifications {
		suggestions = append(suggestions, newSuggestion(domain.SuggestionCertification, cert, reasonCertification))
	}
	for _, pol := range rec.UpcomingPolicies {
		suggestions = append(suggestions, newSuggestion(domain.SuggestionPolicy, pol.Title, reasonPolicy))
	}
	for _, gap := range rec.SkillGaps {
		suggestions = append(suggestions, newSuggestion(domain.SuggestionSkill, gap, reasonSkill))
	}
	return suggestions
}

func newSuggestion(kind domain.SuggestionKind, title, reason string) SuggestionStatus {
	return SuggestionStatus{
		Key:    engine.SuggestionKey(kind, title, reason),
		Kind:   kind,
		Title:  title,
		Reason: reason,
		Status: domain.ProgressNotStarted,
	}
}

// mergeProgress overlays stored progress onto the suggestion list. A store
// failure leaves everything at not_started; recommendations still render.
func (s *PortalService) mergeProgress(ctx context.Context, employeeID string, suggestions []SuggestionStatus) {
	if len(suggestions) == 0 {
		return
	}

	keys := make([]string, len(suggestions))
	for i, sug := range suggestions {
		keys[i] = sug.Key
	}

	stored, err := s.progressRepo.Get(ctx, employeeID, keys)
	if err != nil {
		log.Printf("suggestion progress lookup failed for employee %s: %v", employeeID, err)
		return
	}

	for i := range suggestions {
		if p, ok := stored[suggestions[i].Key]; ok {
			suggestions[i].Status = p.Status
		}
	}
}

// attachPolicyVectors loads cached policy embeddings into the corpus. A cache
// miss or failure is fine; the semantic retriever embeds on demand.
func (s *PortalService) attachPolicyVectors(ctx context.Context, c *engine.Corpus) {
	if len(c.Policies) == 0 {
		return
	}

	ids := make([]string, len(c.Policies))
	for i, p := range c.Policies {
		ids[i] = p.ID
	}

	vectors, err := s.policyRepo.GetEmbeddings(ctx, ids)
	if err != nil {
		log.Printf("policy embedding cache lookup failed: %v", err)
		return
	}
	c.PolicyVectors = vectors
}
