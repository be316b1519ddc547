package engine

import (
	"sort"
	"strings"

	"github.com/meridianhr/pathfinder/internal/domain"
)

const (
	maxTopLearning = 5
	maxSkillGaps   = 15
)

// ScoreWeights is the fixed additive scoring policy. The values are a tested
// contract, not a tuned model; change them only together with the tests that
// pin them.
type ScoreWeights struct {
	Department    int
	SkillInTitle  int
	SkillInTag    int
	Interest      int
	Certification int
	CareerGoal    int
}

// DefaultScoreWeights returns the standard scoring policy.
func DefaultScoreWeights() ScoreWeights {
	return ScoreWeights{
		Department:    2,
		SkillInTitle:  2,
		SkillInTag:    3,
		Interest:      2,
		Certification: 1,
		CareerGoal:    2,
	}
}

// ScoreItem scores one catalog item against one profile. The score is
// additive and order-independent; zero means no relevance.
func ScoreItem(p *domain.Profile, item domain.CatalogItem, w ScoreWeights) int {
	if p == nil {
		return 0
	}

	score := 0

	if containsFold(item.Title, p.Department) {
		score += w.Department
	}

	for _, skill := range p.Skills {
		if containsFold(item.Title, skill) {
			score += w.SkillInTitle
		}
		for _, tag := range item.Tags {
			if containsFold(tag, skill) {
				score += w.SkillInTag
			}
		}
	}

	for _, interest := range p.Interests {
		if containsFold(item.Title, interest) || anyContainsFold(item.Tags, interest) {
			score += w.Interest
		}
	}

	for _, cert := range p.Certifications {
		if containsFold(item.Title, cert.Title) {
			score += w.Certification
		}
	}

	for _, goal := range p.Goals() {
		if containsFold(item.Title, goal) {
			score += w.CareerGoal
		}
	}

	return score
}

// RankLearning scores the whole catalog against the profile and returns the
// top five relevant items, sorted by descending score. Ties preserve catalog
// order (stable sort); zero-score items are dropped.
func RankLearning(p *domain.Profile, catalog []domain.CatalogItem, w ScoreWeights) []domain.ScoredItem {
	scored := make([]domain.ScoredItem, 0, len(catalog))
	for _, item := range catalog {
		s := ScoreItem(p, item, w)
		if s > 0 {
			scored = append(scored, domain.ScoredItem{Item: item, Score: s})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > maxTopLearning {
		scored = scored[:maxTopLearning]
	}
	return scored
}

// SkillGaps derives suggested skills the profile lacks: the tags of the top
// learning items plus the profile's department, minus existing skills
// (case-insensitive). The result is sorted for determinism and capped at 15.
func SkillGaps(p *domain.Profile, top []domain.ScoredItem) []string {
	suggested := make(map[string]string)
	add := func(s string) {
		s = strings.TrimSpace(s)
		if s == "" {
			return
		}
		key := strings.ToLower(s)
		if _, ok := suggested[key]; !ok {
			suggested[key] = s
		}
	}

	for _, item := range top {
		for _, tag := range item.Item.Tags {
			add(tag)
		}
	}
	if p != nil {
		add(p.Department)
	}

	have := make(map[string]struct{})
	if p != nil {
		for _, s := range p.Skills {
			have[Normalize(s)] = struct{}{}
		}
	}

	gaps := make([]string, 0, len(suggested))
	for key, original := range suggested {
		if _, ok := have[key]; ok {
			continue
		}
		gaps = append(gaps, original)
	}

	sort.Slice(gaps, func(i, j int) bool {
		return strings.ToLower(gaps[i]) < strings.ToLower(gaps[j])
	})

	if len(gaps) > maxSkillGaps {
		gaps = gaps[:maxSkillGaps]
	}
	return gaps
}

// SuggestedCertifications returns the certification suggestions for the
// given effective role and department. On a miss the first table entry whose
// department matches wins; first match, not closest match.
func SuggestedCertifications(role domain.Role, department string) []string {
	if certs, ok := roleCertifications[roleCertKey(string(role), department)]; ok {
		return certs
	}

	dept := Normalize(department)
	for _, key := range roleCertOrder {
		if strings.HasSuffix(key, "|"+dept) {
			return roleCertifications[key]
		}
	}
	return nil
}
