package usecase

import (
	"context"
	"log/slog"

	"creative-sync/internal/core/domain"
	"creative-sync/internal/core/port"
)

// SyncService is the entry point of the sync engine. It composes the
// resolver, status store, orchestrator and triggers behind port.SyncUseCase.
type SyncService struct {
	resolver     *RelevanceResolver
	store        *SyncStatusStore
	orchestrator *SyncOrchestrator
	triggers     *EventTriggers
}

// NewSyncService wires the engine from its outbound ports.
func NewSyncService(
	catalog port.CatalogRepository,
	statuses port.SyncStatusRepository,
	transport port.PartnerTransport,
	notifier *NotificationGateway,
	batchSize int,
	logger *slog.Logger,
) *SyncService {
	resolver := NewRelevanceResolver(catalog, logger.With(slog.String("component", "relevance")))
	store := NewSyncStatusStore(catalog, statuses, logger.With(slog.String("component", "status_store")))
	orchestrator := NewSyncOrchestrator(catalog, store, transport, notifier, batchSize, logger.With(slog.String("component", "orchestrator")))
	triggers := NewEventTriggers(catalog, resolver, orchestrator, logger.With(slog.String("component", "triggers")))
	return &SyncService{resolver: resolver, store: store, orchestrator: orchestrator, triggers: triggers}
}

func (s *SyncService) SyncToAgents(ctx context.Context, creativeID string, partnerIDs []string, sc domain.SyncContext) (*domain.SyncResult, error) {
	return s.orchestrator.SyncToAgents(ctx, creativeID, partnerIDs, sc)
}

// AutoSync resolves relevant partners for the creative and syncs to all of
// them as a creative update.
func (s *SyncService) AutoSync(ctx context.Context, creativeID string, opts port.RelevanceOptions) (*domain.SyncResult, error) {
	agents, err := s.resolver.DetermineRelevantAgents(ctx, creativeID, "", opts)
	if err != nil {
		return nil, err
	}
	return s.orchestrator.SyncToAgents(ctx, creativeID, agents, domain.SyncContext{TriggeredBy: domain.TriggerCreativeUpdate})
}

func (s *SyncService) GetStatus(ctx context.Context, creativeID string) ([]domain.SyncStatusRecord, error) {
	return s.store.GetStatus(ctx, creativeID)
}

func (s *SyncService) RecordApproval(ctx context.Context, creativeID, salesAgentID string, decision domain.ApprovalDecision) error {
	return s.store.RecordApproval(ctx, creativeID, salesAgentID, decision)
}

func (s *SyncService) OnCreativeAssignedToCampaign(ctx context.Context, creativeID, campaignID string) (*domain.SyncResult, error) {
	return s.triggers.OnCreativeAssignedToCampaign(ctx, creativeID, campaignID)
}

func (s *SyncService) OnTacticCreated(ctx context.Context, tacticID, campaignID, newPartnerID string) (*domain.TacticSyncReport, error) {
	return s.triggers.OnTacticCreated(ctx, tacticID, campaignID, newPartnerID)
}

var _ port.SyncUseCase = (*SyncService)(nil)
