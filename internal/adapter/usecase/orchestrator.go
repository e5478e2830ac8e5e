package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"creative-sync/internal/core/domain"
	"creative-sync/internal/core/port"
)

// DefaultBatchSize bounds how many partner syncs run at once for a single
// creative.
const DefaultBatchSize = 5

// SyncOrchestrator pushes one creative to many partners. Partners are
// processed in fixed-size batches; a batch runs concurrently and the next
// one starts only after every sync in it has settled. A failing partner
// never affects its siblings.
type SyncOrchestrator struct {
	catalog   port.CatalogRepository
	store     *SyncStatusStore
	transport port.PartnerTransport
	notifier  *NotificationGateway
	batchSize int
	logger    *slog.Logger
	now       func() time.Time
}

// NewSyncOrchestrator creates an orchestrator. A non-positive batchSize
// selects DefaultBatchSize.
func NewSyncOrchestrator(
	catalog port.CatalogRepository,
	store *SyncStatusStore,
	transport port.PartnerTransport,
	notifier *NotificationGateway,
	batchSize int,
	logger *slog.Logger,
) *SyncOrchestrator {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &SyncOrchestrator{
		catalog:   catalog,
		store:     store,
		transport: transport,
		notifier:  notifier,
		batchSize: batchSize,
		logger:    logger,
		now:       time.Now,
	}
}

// SyncToAgents delivers the creative to every partner in partnerIDs and
// reports per-partner outcomes. The only error returned is a missing
// creative (or a failure loading it), detected before any partner is
// touched.
func (o *SyncOrchestrator) SyncToAgents(ctx context.Context, creativeID string, partnerIDs []string, sc domain.SyncContext) (*domain.SyncResult, error) {
	creative, err := o.catalog.GetCreative(ctx, creativeID)
	if err != nil {
		return nil, fmt.Errorf("load creative %s: %w", creativeID, err)
	}
	if creative == nil {
		return nil, fmt.Errorf("creative %s: %w", creativeID, domain.ErrNotFound)
	}

	logger := o.logger.With(
		slog.String("creative_id", creativeID),
		slog.String("triggered_by", string(sc.TriggeredBy)),
	)

	outcomes := make([]error, len(partnerIDs))
	for start := 0; start < len(partnerIDs); start += o.batchSize {
		end := min(start+o.batchSize, len(partnerIDs))

		var g errgroup.Group
		for i := start; i < end; i++ {
			g.Go(func() error {
				outcomes[i] = o.syncOne(ctx, *creative, partnerIDs[i], sc)
				return outcomes[i]
			})
		}
		if err = g.Wait(); err != nil {
			logger.Debug("batch settled with failures",
				slog.Int("batch_start", start),
				slog.Int("batch_size", end-start),
				slog.Any("first_error", err),
			)
		}
	}

	result := &domain.SyncResult{Success: []string{}, Failed: []domain.PartnerFailure{}}
	for i, id := range partnerIDs {
		if outcomes[i] != nil {
			result.Failed = append(result.Failed, domain.PartnerFailure{PartnerID: id, Error: outcomes[i].Error()})
			continue
		}
		result.Success = append(result.Success, id)
	}

	if len(result.Failed) > 0 {
		if err = o.notifier.NotifyFailures(ctx, *creative, result.Failed, sc); err != nil {
			logger.Error("failure notification error", slog.Any("error", err))
		}
	}
	if len(result.Success) == len(partnerIDs) {
		if err = o.notifier.NotifySuccess(ctx, *creative, len(result.Success), sc); err != nil {
			logger.Error("success notification error", slog.Any("error", err))
		}
	}

	logger.Info("creative sync finished",
		slog.Int("partners", len(partnerIDs)),
		slog.Int("succeeded", len(result.Success)),
		slog.Int("failed", len(result.Failed)),
	)
	return result, nil
}

// syncOne moves one partner row through syncing to synced or failed. Any
// error is recorded on the row and returned for aggregation.
func (o *SyncOrchestrator) syncOne(ctx context.Context, creative domain.Creative, partnerID string, sc domain.SyncContext) error {
	attempt := o.now().UTC()
	syncing := domain.SyncSyncing
	err := o.store.Upsert(ctx, creative.ID, partnerID, domain.SyncStatusPatch{
		SyncStatus:                 &syncing,
		LastSyncAttempt:            &attempt,
		InitiallySyncedForTacticID: sc.TacticID,
		LastCampaignContext:        sc.CampaignID,
	})
	if err == nil {
		err = o.transport.Sync(ctx, creative, partnerID)
	}
	if err == nil {
		synced, pending := domain.SyncSynced, domain.ApprovalPending
		err = o.store.Upsert(ctx, creative.ID, partnerID, domain.SyncStatusPatch{
			SyncStatus:     &synced,
			ApprovalStatus: &pending,
			ClearSyncError: true,
		})
		if err == nil {
			return nil
		}
	}

	msg := err.Error()
	failed := domain.SyncFailed
	if uerr := o.store.Upsert(ctx, creative.ID, partnerID, domain.SyncStatusPatch{
		SyncStatus: &failed,
		SyncError:  &msg,
	}); uerr != nil {
		o.logger.Error("record sync failure",
			slog.String("creative_id", creative.ID),
			slog.String("sales_agent_id", partnerID),
			slog.Any("error", uerr),
		)
	}
	o.logger.Warn("partner sync failed",
		slog.String("creative_id", creative.ID),
		slog.String("sales_agent_id", partnerID),
		slog.Any("error", err),
	)
	return err
}
