package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"creative-sync/internal/core/domain"
	"creative-sync/internal/core/port"
)

const syncStatusColumns = `s.id, s.creative_id, s.sales_agent_id, COALESCE(sa.name, ''), s.brand_agent_id,
            s.sync_status, s.approval_status, s.rejection_reason, s.requested_changes, s.sync_error,
            s.last_sync_attempt, s.initially_synced_for_tactic_id, s.last_campaign_context,
            s.created_at, s.updated_at`

// SyncStatusRepository implements port.SyncStatusRepository on the
// creative_sync_status table.
type SyncStatusRepository struct {
	pool *pgxpool.Pool
}

// NewSyncStatusRepository returns a new repository instance.
func NewSyncStatusRepository(pool *pgxpool.Pool) *SyncStatusRepository {
	return &SyncStatusRepository{pool: pool}
}

// Insert adds a new row. The unique (creative_id, sales_agent_id) constraint
// makes a concurrent duplicate insert a no-op reported as
// port.ErrSyncStatusExists.
func (r *SyncStatusRepository) Insert(ctx context.Context, rec domain.SyncStatusRecord) error {
	tag, err := r.pool.Exec(ctx, `
        INSERT INTO creative_sync_status
            (id, creative_id, sales_agent_id, brand_agent_id, sync_status, approval_status,
             rejection_reason, requested_changes, sync_error, last_sync_attempt,
             initially_synced_for_tactic_id, last_campaign_context, created_at, updated_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
        ON CONFLICT DO NOTHING`,
		rec.ID, rec.CreativeID, rec.SalesAgentID, rec.BrandAgentID, string(rec.SyncStatus),
		approvalText(rec.ApprovalStatus), rec.RejectionReason, rec.RequestedChanges, rec.SyncError,
		rec.LastSyncAttempt, rec.InitiallySyncedForTacticID, rec.LastCampaignContext,
		rec.CreatedAt, rec.UpdatedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrSyncStatusExists
	}
	return nil
}

// Merge applies patch to the stored row in a single statement: present
// fields overwrite, absent ones keep the stored value.
func (r *SyncStatusRepository) Merge(ctx context.Context, creativeID, salesAgentID string, patch domain.SyncStatusPatch, now time.Time) error {
	var status *string
	if patch.SyncStatus != nil {
		s := string(*patch.SyncStatus)
		status = &s
	}
	tag, err := r.pool.Exec(ctx, `
        UPDATE creative_sync_status SET
            sync_status = COALESCE($3, sync_status),
            approval_status = COALESCE($4, approval_status),
            rejection_reason = COALESCE($5, rejection_reason),
            requested_changes = COALESCE($6, requested_changes),
            sync_error = CASE WHEN $7::boolean THEN NULL ELSE COALESCE($8, sync_error) END,
            last_sync_attempt = COALESCE($9, last_sync_attempt),
            initially_synced_for_tactic_id = COALESCE($10, initially_synced_for_tactic_id),
            last_campaign_context = COALESCE($11, last_campaign_context),
            updated_at = $12
        WHERE creative_id = $1 AND sales_agent_id = $2`,
		creativeID, salesAgentID, status, approvalText(patch.ApprovalStatus), patch.RejectionReason,
		patch.RequestedChanges, patch.ClearSyncError, patch.SyncError, patch.LastSyncAttempt,
		patch.InitiallySyncedForTacticID, patch.LastCampaignContext, now)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Get returns the row for a pair.
func (r *SyncStatusRepository) Get(ctx context.Context, creativeID, salesAgentID string) (*domain.SyncStatusRecord, error) {
	row := r.pool.QueryRow(ctx, `
        SELECT `+syncStatusColumns+`
        FROM creative_sync_status s
        LEFT JOIN sales_agents sa ON sa.id = s.sales_agent_id
        WHERE s.creative_id = $1 AND s.sales_agent_id = $2`, creativeID, salesAgentID)
	rec, err := scanSyncStatus(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// ListByCreative returns every row of a creative ordered by partner name.
func (r *SyncStatusRepository) ListByCreative(ctx context.Context, creativeID string) ([]domain.SyncStatusRecord, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT `+syncStatusColumns+`
        FROM creative_sync_status s
        LEFT JOIN sales_agents sa ON sa.id = s.sales_agent_id
        WHERE s.creative_id = $1
        ORDER BY COALESCE(sa.name, ''), s.sales_agent_id`, creativeID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.SyncStatusRecord, error) {
		return scanSyncStatus(row)
	})
}

func scanSyncStatus(row pgx.Row) (domain.SyncStatusRecord, error) {
	var (
		rec      domain.SyncStatusRecord
		status   string
		approval *string
	)
	err := row.Scan(
		&rec.ID,
		&rec.CreativeID,
		&rec.SalesAgentID,
		&rec.SalesAgentName,
		&rec.BrandAgentID,
		&status,
		&approval,
		&rec.RejectionReason,
		&rec.RequestedChanges,
		&rec.SyncError,
		&rec.LastSyncAttempt,
		&rec.InitiallySyncedForTacticID,
		&rec.LastCampaignContext,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	if err != nil {
		return rec, err
	}
	rec.SyncStatus = domain.SyncStatus(status)
	if approval != nil {
		a := domain.ApprovalStatus(*approval)
		rec.ApprovalStatus = &a
	}
	return rec, nil
}

func approvalText(a *domain.ApprovalStatus) *string {
	if a == nil {
		return nil
	}
	s := string(*a)
	return &s
}

var _ port.SyncStatusRepository = (*SyncStatusRepository)(nil)
