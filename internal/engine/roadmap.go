package engine

import (
	"strings"

	"github.com/meridianhr/pathfinder/internal/domain"
)

// ResolveRoadmap resolves the profile's likely career trajectory from the
// static role-transition graph. It never fails: an unknown role falls back
// to the generic three-path default, so every category always holds at
// least one suggestion.
func ResolveRoadmap(p *domain.Profile) domain.Roadmap {
	current := resolveCurrentRole(p)
	return domain.Roadmap{
		CurrentRole: current,
		Paths:       matchRoleGraph(current.Title),
	}
}

// resolveCurrentRole picks the current role title in preference order:
// explicit current role, first preferred role, profile department.
func resolveCurrentRole(p *domain.Profile) domain.RoleInfo {
	department := "Your department"
	if p != nil && p.Department != "" {
		department = p.Department
	}

	if p != nil && p.Preferences != nil {
		if current := strings.TrimSpace(p.Preferences.CurrentRole); current != "" {
			return domain.RoleInfo{Title: current, Department: department}
		}
		for _, preferred := range p.Preferences.PreferredRoles {
			if title := strings.TrimSpace(preferred); title != "" {
				return domain.RoleInfo{Title: title, Department: department}
			}
		}
	}

	if p != nil && p.Department != "" {
		return domain.RoleInfo{Title: p.Department, Department: department}
	}
	return domain.RoleInfo{Title: "Your role", Department: department}
}

// matchRoleGraph looks the title up in the role graph: exact key first, then
// substring containment in either direction, then the generic default.
func matchRoleGraph(title string) []domain.CareerPath {
	key := Normalize(title)
	if key == "" {
		return defaultRoadmap
	}

	if paths, ok := roleGraph[key]; ok {
		return paths
	}

	if match, ok := fuzzyGraphKey(key); ok {
		return roleGraph[match]
	}
	return defaultRoadmap
}

// fuzzyGraphKey finds the longest graph key that contains, or is contained
// in, the lookup key. Preferring the longest match keeps "senior software
// engineer" from landing on the "engineer" entry.
func fuzzyGraphKey(key string) (string, bool) {
	best := ""
	for graphKey := range roleGraph {
		if !strings.Contains(key, graphKey) && !strings.Contains(graphKey, key) {
			continue
		}
		if len(graphKey) > len(best) {
			best = graphKey
		}
	}
	return best, best != ""
}
