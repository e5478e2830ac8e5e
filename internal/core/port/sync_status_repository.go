package port

import (
	"context"
	"errors"
	"time"

	"creative-sync/internal/core/domain"
)

// ErrSyncStatusExists is returned by Insert when a row for the pair is
// already stored. Callers recover by merging.
var ErrSyncStatusExists = errors.New("sync status already exists")

// SyncStatusRepository persists one row per (creative, sales agent) pair.
// Implementations must make Insert and Merge individually atomic so that
// concurrent writers to the same pair converge on a single row.
type SyncStatusRepository interface {
	// Insert stores a new row or returns ErrSyncStatusExists.
	Insert(ctx context.Context, rec domain.SyncStatusRecord) error
	// Merge applies patch to the stored row using the field-presence rule.
	// It returns domain.ErrNotFound when no row exists.
	Merge(ctx context.Context, creativeID, salesAgentID string, patch domain.SyncStatusPatch, now time.Time) error
	// Get returns the row for the pair, or nil when absent.
	Get(ctx context.Context, creativeID, salesAgentID string) (*domain.SyncStatusRecord, error)
	// ListByCreative returns every partner row of a creative ordered by
	// partner name.
	ListByCreative(ctx context.Context, creativeID string) ([]domain.SyncStatusRecord, error)
}
