package engine

import (
	"context"
	"crypto/sha256"
	"encoding/hex"

	"github.com/meridianhr/pathfinder/internal/domain"
)

// ProgressStore is the external key-value store of suggestion progress rows.
// The engine computes keys deterministically and reads/writes single rows;
// the store owns the data.
type ProgressStore interface {
	Get(ctx context.Context, employeeID string, keys []string) (map[string]domain.SuggestionProgress, error)
	Upsert(ctx context.Context, progress domain.SuggestionProgress) error
}

// SuggestionKey computes the stable progress key for a suggestion. The hash
// runs over normalized UTF-8 text with NUL separators, so the same
// (kind, title, reason) triple always yields the same key byte-for-byte
// across runs and hosts. Timestamps never participate.
func SuggestionKey(kind domain.SuggestionKind, title, reason string) string {
	h := sha256.New()
	h.Write([]byte(string(kind)))
	h.Write([]byte{0})
	h.Write([]byte(Normalize(title)))
	h.Write([]byte{0})
	h.Write([]byte(Normalize(reason)))
	return hex.EncodeToString(h.Sum(nil))
}
