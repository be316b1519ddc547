package admin

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/meridianhr/pathfinder/internal/config"
	"github.com/meridianhr/pathfinder/internal/database"
	"github.com/meridianhr/pathfinder/internal/domain"
	"github.com/meridianhr/pathfinder/internal/repository"
	"github.com/spf13/cobra"
)

// SeedCmd returns the seed command
func SeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed the database with demo data",
		Long:  "Insert demo profiles, learning content, compliance policies, and category rules for local development",
		RunE:  runSeed,
	}
}

func runSeed(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	pool, err := database.NewPool(ctx, database.Config{URL: cfg.DatabaseURL})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	if err := runMigrations(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	profileRepo := repository.NewProfileRepository(pool)
	catalogRepo := repository.NewCatalogRepository(pool)
	policyRepo := repository.NewPolicyRepository(pool)
	rulesRepo := repository.NewRulesRepository(pool)
	leaveRepo := repository.NewLeaveRepository(pool)

	for _, p := range seedProfiles() {
		p := p
		if err := profileRepo.Create(ctx, &p); err != nil {
			return fmt.Errorf("failed to seed profile %s: %w", p.ID, err)
		}
	}

	for _, item := range seedCatalog() {
		item := item
		if err := catalogRepo.Create(ctx, &item); err != nil {
			return fmt.Errorf("failed to seed catalog item %s: %w", item.ID, err)
		}
	}

	for _, p := range seedPolicies() {
		p := p
		if err := policyRepo.Create(ctx, &p); err != nil {
			return fmt.Errorf("failed to seed policy %s: %w", p.ID, err)
		}
	}

	for _, r := range seedRules() {
		r := r
		if err := rulesRepo.Create(ctx, &r); err != nil {
			return fmt.Errorf("failed to seed rule %s: %w", r.ID, err)
		}
	}

	for _, lr := range seedLeaveRequests() {
		lr := lr
		if err := leaveRepo.Create(ctx, &lr); err != nil {
			return fmt.Errorf("failed to seed leave request %s: %w", lr.ID, err)
		}
	}

	log.Println("database seeded successfully")
	return nil
}

func seedProfiles() []domain.Profile {
	return []domain.Profile{
		{
			ID:         "emp-1001",
			Name:       "John Employee",
			Role:       domain.RoleEmployee,
			Department: "Engineering",
			Skills:     []string{"Python", "React", "Docker"},
			Interests:  []string{"AI", "DevOps"},
			Preferences: &domain.CareerPreferences{
				CurrentRole: "Software Engineer",
				Goals:       []string{"AI", "Leadership"},
			},
			LeaveBalance: 18,
		},
		{
			ID:           "emp-1002",
			Name:         "Jane Manager",
			Role:         domain.RoleManager,
			Department:   "Engineering",
			Skills:       []string{"Leadership", "Project Management"},
			LeaveBalance: 22,
		},
		{
			ID:           "emp-1003",
			Name:         "Asha HR",
			Role:         domain.RoleHR,
			Department:   "HR",
			Skills:       []string{"HR Management", "Compliance"},
			LeaveBalance: 20,
		},
		{
			ID:           "emp-1004",
			Name:         "Bob Developer",
			Role:         domain.RoleEmployee,
			Department:   "Engineering",
			Skills:       []string{"JavaScript", "Node.js"},
			LeaveBalance: 12,
		},
		{
			ID:           "emp-1005",
			Name:         "Alice Sales",
			Role:         domain.RoleEmployee,
			Department:   "Sales",
			Skills:       []string{"Sales", "Communication"},
			LeaveBalance: 15,
		},
	}
}

func seedCatalog() []domain.CatalogItem {
	return []domain.CatalogItem{
		{
			ID:          "lc-0001",
			Title:       "Responsible AI Practices",
			Tags:        []string{"AI", "Ethics", "Engineering"},
			Level:       domain.LevelIntermediate,
			Description: "Learn about ethical AI development and deployment",
		},
		{
			ID:          "lc-0002",
			Title:       "Advanced React Patterns",
			Tags:        []string{"React", "JavaScript", "Frontend"},
			Level:       domain.LevelAdvanced,
			Description: "Master advanced React patterns and best practices",
		},
		{
			ID:          "lc-0003",
			Title:       "Docker and Containerization",
			Tags:        []string{"Docker", "DevOps", "Engineering"},
			Level:       domain.LevelIntermediate,
			Description: "Comprehensive guide to Docker and container orchestration",
		},
		{
			ID:          "lc-0004",
			Title:       "Sales Communication Skills",
			Tags:        []string{"Sales", "Communication", "Soft Skills"},
			Level:       domain.LevelBeginner,
			Description: "Improve your sales communication and negotiation skills",
		},
		{
			ID:          "lc-0005",
			Title:       "Engineering Leadership Fundamentals",
			Tags:        []string{"Leadership", "Management", "Engineering"},
			Level:       domain.LevelIntermediate,
			Description: "Transition from individual contributor to engineering leader",
		},
	}
}

func seedPolicies() []domain.Policy {
	year := time.Now().Year()
	return []domain.Policy{
		{
			ID:          "pol-0001",
			Title:       "Data Privacy Policy",
			Department:  "Engineering",
			DueDate:     time.Date(year, 12, 31, 0, 0, 0, 0, time.UTC),
			Description: "Annual data privacy compliance review",
			Category:    "it",
			Rules:       []string{"Employee data must not leave approved systems", "Access reviews run quarterly"},
		},
		{
			ID:          "pol-0002",
			Title:       "Code Review Standards",
			Department:  "Engineering",
			DueDate:     time.Date(year, 11, 30, 0, 0, 0, 0, time.UTC),
			Description: "Updated code review guidelines",
			Category:    "it",
		},
		{
			ID:          "pol-0003",
			Title:       "Sales Ethics Training",
			Department:  "Sales",
			DueDate:     time.Date(year, 12, 15, 0, 0, 0, 0, time.UTC),
			Description: "Quarterly sales ethics compliance",
			Category:    "finance",
		},
		{
			ID:          "pol-0004",
			Title:       "Workplace Conduct Policy",
			Department:  domain.DepartmentAll,
			DueDate:     time.Date(year, 10, 31, 0, 0, 0, 0, time.UTC),
			Description: "Company-wide conduct and anti-harassment training",
			Category:    "hr",
			Rules:       []string{"Report incidents within 48 hours", "Annual acknowledgement is mandatory"},
		},
	}
}

func seedRules() []domain.CategoryRule {
	return []domain.CategoryRule{
		{ID: "rule-0001", Category: "hr", Text: "Leave requests need manager approval before booking travel.", DisplayOrder: 1},
		{ID: "rule-0002", Category: "hr", Text: "Carry-over leave is capped at 5 days per year.", DisplayOrder: 2},
		{ID: "rule-0003", Category: "ai", Text: "Generative AI tools must not process customer personal data.", DisplayOrder: 1},
		{ID: "rule-0004", Category: "it", Text: "Production access requires an approved change ticket.", DisplayOrder: 1},
		{ID: "rule-0005", Category: "finance", Text: "Expenses above 500 need director sign-off.", DisplayOrder: 1},
	}
}

func seedLeaveRequests() []domain.LeaveRequest {
	now := time.Now()
	return []domain.LeaveRequest{
		{
			ID:         "lr-0001",
			EmployeeID: "emp-1001",
			Department: "Engineering",
			FromDate:   now.AddDate(0, 0, 14),
			ToDate:     now.AddDate(0, 0, 18),
			Reason:     "Family vacation",
			Status:     domain.LeaveStatusPending,
		},
		{
			ID:         "lr-0002",
			EmployeeID: "emp-1001",
			Department: "Engineering",
			FromDate:   now.AddDate(0, -1, 0),
			ToDate:     now.AddDate(0, -1, 2),
			Reason:     "Medical appointment",
			Status:     domain.LeaveStatusApproved,
		},
	}
}
