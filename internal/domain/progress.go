package domain

import (
	"fmt"
	"time"
)

// ProgressStatus represents the completion state of a suggestion
type ProgressStatus string

const (
	ProgressNotStarted ProgressStatus = "not_started"
	ProgressInProgress ProgressStatus = "in_progress"
	ProgressCompleted  ProgressStatus = "completed"
)

// SuggestionKind identifies what kind of suggestion a progress row tracks
type SuggestionKind string

const (
	SuggestionLearning      SuggestionKind = "learning"
	SuggestionCertification SuggestionKind = "certification"
	SuggestionPolicy        SuggestionKind = "policy"
	SuggestionSkill         SuggestionKind = "skill"
)

// SuggestionProgress is a single progress row in the external store, keyed by
// the deterministic suggestion key.
type SuggestionProgress struct {
	Key         string
	EmployeeID  string
	Status      ProgressStatus
	CompletedAt *time.Time
}

// ValidateProgressStatus validates a ProgressStatus value
func ValidateProgressStatus(s ProgressStatus) error {
	switch s {
	case ProgressNotStarted, ProgressInProgress, ProgressCompleted:
		return nil
	}
	return fmt.Errorf("progress status is invalid: %s", s)
}

// ValidateSuggestionKind validates a SuggestionKind value
func ValidateSuggestionKind(k SuggestionKind) error {
	switch k {
	case SuggestionLearning, SuggestionCertification, SuggestionPolicy, SuggestionSkill:
		return nil
	}
	return fmt.Errorf("suggestion kind is invalid: %s", k)
}
