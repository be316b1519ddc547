package engine

import (
	"github.com/meridianhr/pathfinder/internal/domain"
)

const (
	maxFoundationSteps = 4
	maxAdvancedSteps   = 3
	maxLeadershipSteps = 4
	maxTechnicalSteps  = 3
	maxHRSteps         = 4
)

// EffectiveRole returns the role used for path and certification selection.
// A free-text current role in career preferences overrides the stored role
// when it matches a known role keyword; otherwise the stored role stands.
func EffectiveRole(p *domain.Profile) domain.Role {
	if p == nil {
		return domain.RoleEmployee
	}
	if p.Preferences == nil || p.Preferences.CurrentRole == "" {
		return p.Role
	}

	current := Normalize(p.Preferences.CurrentRole)
	for _, mapping := range effectiveRoleKeywords {
		if containsFold(current, mapping.Keyword) {
			return mapping.Role
		}
	}
	return p.Role
}

// BuildPaths assembles 1-2 named learning paths for the profile's effective
// role. When no role-specific path yields a step, a single path built from
// the top scored items is returned instead, preserving score order.
func BuildPaths(p *domain.Profile, catalog []domain.CatalogItem, w ScoreWeights) []domain.LearningPath {
	if p == nil {
		return nil
	}

	var paths []domain.LearningPath
	switch EffectiveRole(p) {
	case domain.RoleManager:
		paths = managerPaths(p, catalog)
	case domain.RoleHR:
		paths = keywordPath("HR Excellence Path", p, catalog, hrKeywords, maxHRSteps, nil)
	default:
		paths = employeePaths(p, catalog)
	}

	if countSteps(paths) > 0 {
		return paths
	}

	top := RankLearning(p, catalog, w)
	if len(top) == 0 {
		return nil
	}

	fallback := domain.LearningPath{Name: "Recommended Learning Path"}
	for i, item := range top {
		fallback.Steps = append(fallback.Steps, domain.PathStep{Order: i + 1, Item: item.Item})
	}
	return []domain.LearningPath{fallback}
}

func employeePaths(p *domain.Profile, catalog []domain.CatalogItem) []domain.LearningPath {
	used := make(map[string]struct{})

	foundation := domain.LearningPath{Name: "Foundation Skills Path"}
	for _, item := range catalog {
		if len(foundation.Steps) >= maxFoundationSteps {
			break
		}
		if item.Level == domain.LevelAdvanced {
			continue
		}
		if !relevantToProfile(item, p.Department, employeeKeywords) {
			continue
		}
		foundation.Steps = append(foundation.Steps, domain.PathStep{Order: len(foundation.Steps) + 1, Item: item})
		used[item.ID] = struct{}{}
	}

	advanced := domain.LearningPath{Name: "Advanced Skills Path"}
	for _, item := range catalog {
		if len(advanced.Steps) >= maxAdvancedSteps {
			break
		}
		if item.Level == domain.LevelBeginner {
			continue
		}
		if _, ok := used[item.ID]; ok {
			continue
		}
		if !relevantToProfile(item, p.Department, employeeKeywords) {
			continue
		}
		advanced.Steps = append(advanced.Steps, domain.PathStep{Order: len(advanced.Steps) + 1, Item: item})
	}

	paths := []domain.LearningPath{}
	if len(foundation.Steps) > 0 {
		paths = append(paths, foundation)
	}
	if len(advanced.Steps) > 0 {
		paths = append(paths, advanced)
	}
	return paths
}

func managerPaths(p *domain.Profile, catalog []domain.CatalogItem) []domain.LearningPath {
	used := make(map[string]struct{})

	leadership := domain.LearningPath{Name: "Leadership Development Path"}
	for _, item := range catalog {
		if len(leadership.Steps) >= maxLeadershipSteps {
			break
		}
		if !matchesKeywords(item, leadershipKeywords) {
			continue
		}
		leadership.Steps = append(leadership.Steps, domain.PathStep{Order: len(leadership.Steps) + 1, Item: item})
		used[item.ID] = struct{}{}
	}

	// No keyword hits: fall back to department-relevant intermediate and
	// advanced items.
	if len(leadership.Steps) == 0 {
		for _, item := range catalog {
			if len(leadership.Steps) >= maxLeadershipSteps {
				break
			}
			if item.Level == domain.LevelBeginner {
				continue
			}
			if !relevantToProfile(item, p.Department, leadershipKeywords) {
				continue
			}
			leadership.Steps = append(leadership.Steps, domain.PathStep{Order: len(leadership.Steps) + 1, Item: item})
			used[item.ID] = struct{}{}
		}
	}

	paths := []domain.LearningPath{}
	if len(leadership.Steps) > 0 {
		paths = append(paths, leadership)
	}

	if isTechnicalDepartment(p.Department) {
		technical := domain.LearningPath{Name: "Technical Excellence Path"}
		for _, item := range catalog {
			if len(technical.Steps) >= maxTechnicalSteps {
				break
			}
			if _, ok := used[item.ID]; ok {
				continue
			}
			if !matchesKeywords(item, technicalKeywords) {
				continue
			}
			technical.Steps = append(technical.Steps, domain.PathStep{Order: len(technical.Steps) + 1, Item: item})
		}
		if len(technical.Steps) > 0 {
			paths = append(paths, technical)
		}
	}

	return paths
}

func keywordPath(name string, p *domain.Profile, catalog []domain.CatalogItem, keywords []string, maxSteps int, used map[string]struct{}) []domain.LearningPath {
	path := domain.LearningPath{Name: name}
	for _, item := range catalog {
		if len(path.Steps) >= maxSteps {
			break
		}
		if used != nil {
			if _, ok := used[item.ID]; ok {
				continue
			}
		}
		if !matchesKeywords(item, keywords) && !relevantToProfile(item, p.Department, keywords) {
			continue
		}
		path.Steps = append(path.Steps, domain.PathStep{Order: len(path.Steps) + 1, Item: item})
	}

	if len(path.Steps) == 0 {
		return nil
	}
	return []domain.LearningPath{path}
}

// relevantToProfile is the shared relevance test: department substring match
// on the title, any tag matching the role keyword set, or department
// substring match on any tag.
func relevantToProfile(item domain.CatalogItem, department string, keywords []string) bool {
	if containsFold(item.Title, department) {
		return true
	}
	if matchesKeywords(item, keywords) {
		return true
	}
	for _, tag := range item.Tags {
		if containsFold(tag, department) {
			return true
		}
	}
	return false
}

// matchesKeywords reports whether any keyword appears in the item's title or
// tags.
func matchesKeywords(item domain.CatalogItem, keywords []string) bool {
	for _, kw := range keywords {
		if containsFold(item.Title, kw) {
			return true
		}
		for _, tag := range item.Tags {
			if containsFold(tag, kw) {
				return true
			}
		}
	}
	return false
}

func isTechnicalDepartment(department string) bool {
	switch Normalize(department) {
	case "engineering", "it", "information technology":
		return true
	}
	return false
}

func countSteps(paths []domain.LearningPath) int {
	total := 0
	for _, p := range paths {
		total += len(p.Steps)
	}
	return total
}
