package port

import (
	"context"

	"creative-sync/internal/core/domain"
)

// SyncUseCase defines the operations exposed by the creative sync engine.
// It is the primary port used by the HTTP and CLI adapters.
type SyncUseCase interface {
	// SyncToAgents pushes a creative to the given partners in bounded
	// batches. Only a missing creative is returned as an error; partner
	// failures are reported in the result.
	SyncToAgents(ctx context.Context, creativeID string, partnerIDs []string, sc domain.SyncContext) (*domain.SyncResult, error)

	// AutoSync resolves the relevant partners for a creative and syncs it
	// to all of them.
	AutoSync(ctx context.Context, creativeID string, opts RelevanceOptions) (*domain.SyncResult, error)

	// GetStatus lists the per-partner rows of a creative.
	GetStatus(ctx context.Context, creativeID string) ([]domain.SyncStatusRecord, error)

	// RecordApproval stores a partner's verdict on a synced creative.
	RecordApproval(ctx context.Context, creativeID, salesAgentID string, decision domain.ApprovalDecision) error

	// OnCreativeAssignedToCampaign syncs the creative to every partner on
	// the campaign's active tactics. A nil result means there was nothing
	// to sync.
	OnCreativeAssignedToCampaign(ctx context.Context, creativeID, campaignID string) (*domain.SyncResult, error)

	// OnTacticCreated offers the campaign's creatives to a newly attached
	// partner.
	OnTacticCreated(ctx context.Context, tacticID, campaignID, newPartnerID string) (*domain.TacticSyncReport, error)
}

// RelevanceOptions tunes partner resolution. Zero values select defaults:
// 30 days back and active tactics only.
type RelevanceOptions struct {
	DaysBack           int
	IncludeActive      *bool
	ForceIncludeAgents []string
}
