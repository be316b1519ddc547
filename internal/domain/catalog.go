package domain

import "fmt"

// Level represents the proficiency level of a catalog item
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// CatalogItem represents a learning/training offering. Immutable within a
// request; owned by the external catalog store.
type CatalogItem struct {
	ID          string
	Title       string
	Tags        []string
	Level       Level
	Description string
}

// ScoredItem pairs a catalog item with its relevance score for one profile.
// Transient; never persisted.
type ScoredItem struct {
	Item  CatalogItem
	Score int
}

// PathStep is one ordered step of a learning path
type PathStep struct {
	Order int
	Item  CatalogItem
}

// LearningPath is a named, ordered sequence of catalog items
type LearningPath struct {
	Name  string
	Steps []PathStep
}

// ValidateCatalogItem validates a CatalogItem
func ValidateCatalogItem(c *CatalogItem) error {
	if c == nil {
		return fmt.Errorf("catalog item cannot be nil")
	}

	if c.ID == "" {
		return fmt.Errorf("catalog item ID is required")
	}

	if c.Title == "" {
		return fmt.Errorf("catalog item Title is required")
	}

	if !isValidLevel(c.Level) {
		return fmt.Errorf("catalog item Level is invalid: %s", c.Level)
	}

	return nil
}

// isValidLevel checks if a Level is valid
func isValidLevel(l Level) bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	}
	return false
}
