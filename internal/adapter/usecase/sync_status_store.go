package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"creative-sync/internal/core/domain"
	"creative-sync/internal/core/port"
)

// SyncStatusStore keeps the per-(creative, partner) sync record. Writes are
// upserts: insert when the pair is new, otherwise merge the present fields
// of the patch into the stored row.
type SyncStatusStore struct {
	catalog port.CatalogRepository
	repo    port.SyncStatusRepository
	logger  *slog.Logger
	now     func() time.Time
}

// NewSyncStatusStore creates a store backed by repo. The catalog is used to
// resolve the owning brand agent of a creative.
func NewSyncStatusStore(catalog port.CatalogRepository, repo port.SyncStatusRepository, logger *slog.Logger) *SyncStatusStore {
	return &SyncStatusStore{catalog: catalog, repo: repo, logger: logger, now: time.Now}
}

// Upsert writes patch for the pair. It fails with domain.ErrNotFound when
// the creative does not exist, in which case nothing is written. A lost
// insert race is recovered by merging into the winner's row.
func (s *SyncStatusStore) Upsert(ctx context.Context, creativeID, salesAgentID string, patch domain.SyncStatusPatch) error {
	creative, err := s.catalog.GetCreative(ctx, creativeID)
	if err != nil {
		return fmt.Errorf("load creative %s: %w", creativeID, err)
	}
	if creative == nil {
		return fmt.Errorf("creative %s: %w", creativeID, domain.ErrNotFound)
	}

	now := s.now().UTC()
	err = s.repo.Insert(ctx, patch.NewRecord(creativeID, salesAgentID, creative.BrandAgentID, now))
	if err == nil {
		return nil
	}
	if !errors.Is(err, port.ErrSyncStatusExists) {
		return fmt.Errorf("insert sync status: %w", err)
	}

	if err = s.repo.Merge(ctx, creativeID, salesAgentID, patch, now); err != nil {
		return fmt.Errorf("merge sync status: %w", err)
	}
	return nil
}

// GetStatus returns every partner row of a creative ordered by partner name.
func (s *SyncStatusStore) GetStatus(ctx context.Context, creativeID string) ([]domain.SyncStatusRecord, error) {
	records, err := s.repo.ListByCreative(ctx, creativeID)
	if err != nil {
		return nil, fmt.Errorf("list sync status: %w", err)
	}
	return records, nil
}

// RecordApproval stores a partner's review verdict. The pair must exist and
// be synced; approval has no meaning before that.
func (s *SyncStatusStore) RecordApproval(ctx context.Context, creativeID, salesAgentID string, decision domain.ApprovalDecision) error {
	if !decision.Status.IsDecision() {
		return fmt.Errorf("%w: %q is not an approval decision", domain.ErrInvalidTransition, decision.Status)
	}

	current, err := s.repo.Get(ctx, creativeID, salesAgentID)
	if err != nil {
		return fmt.Errorf("load sync status: %w", err)
	}
	if current == nil {
		return fmt.Errorf("sync status %s: %w", domain.SyncStatusID(creativeID, salesAgentID), domain.ErrNotFound)
	}
	if current.SyncStatus != domain.SyncSynced {
		return fmt.Errorf("%w: creative is %s at partner %s", domain.ErrInvalidTransition, current.SyncStatus, salesAgentID)
	}

	status := decision.Status
	patch := domain.SyncStatusPatch{ApprovalStatus: &status}
	if decision.RejectionReason != "" {
		reason := decision.RejectionReason
		patch.RejectionReason = &reason
	}
	if len(decision.RequestedChanges) > 0 {
		patch.RequestedChanges = decision.RequestedChanges
	}

	if err = s.Upsert(ctx, creativeID, salesAgentID, patch); err != nil {
		return err
	}
	s.logger.Info("approval recorded",
		slog.String("creative_id", creativeID),
		slog.String("sales_agent_id", salesAgentID),
		slog.String("approval_status", string(status)),
	)
	return nil
}
