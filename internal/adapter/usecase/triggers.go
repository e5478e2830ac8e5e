package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"creative-sync/internal/core/domain"
	"creative-sync/internal/core/port"
)

// EventTriggers turns upstream campaign events into sync runs.
type EventTriggers struct {
	catalog      port.CatalogRepository
	resolver     *RelevanceResolver
	orchestrator *SyncOrchestrator
	logger       *slog.Logger
}

// NewEventTriggers wires the trigger entry points.
func NewEventTriggers(catalog port.CatalogRepository, resolver *RelevanceResolver, orchestrator *SyncOrchestrator, logger *slog.Logger) *EventTriggers {
	return &EventTriggers{catalog: catalog, resolver: resolver, orchestrator: orchestrator, logger: logger}
}

// OnCreativeAssignedToCampaign syncs the creative to every partner on the
// campaign's active tactics. It returns a nil result when the campaign has
// no active tactics.
func (t *EventTriggers) OnCreativeAssignedToCampaign(ctx context.Context, creativeID, campaignID string) (*domain.SyncResult, error) {
	partners, err := t.catalog.ListActiveCampaignPartners(ctx, campaignID)
	if err != nil {
		return nil, fmt.Errorf("list campaign partners: %w", err)
	}
	if len(partners) == 0 {
		t.logger.Info("campaign has no active tactics",
			slog.String("campaign_id", campaignID),
			slog.String("creative_id", creativeID),
		)
		return nil, nil
	}

	return t.orchestrator.SyncToAgents(ctx, creativeID, partners, domain.SyncContext{
		CampaignID:  &campaignID,
		TriggeredBy: domain.TriggerCampaignAssignment,
	})
}

// OnTacticCreated offers every creative of the campaign to the partner of
// a new tactic. Failures are isolated per creative and reported; the loop
// always runs to completion.
func (t *EventTriggers) OnTacticCreated(ctx context.Context, tacticID, campaignID, newPartnerID string) (*domain.TacticSyncReport, error) {
	links, err := t.catalog.ListCampaignCreatives(ctx, campaignID)
	if err != nil {
		return nil, fmt.Errorf("list campaign creatives: %w", err)
	}

	report := &domain.TacticSyncReport{Synced: []string{}, Skipped: []string{}, Errored: []string{}}
	for _, link := range links {
		logger := t.logger.With(
			slog.String("creative_id", link.CreativeID),
			slog.String("tactic_id", tacticID),
			slog.String("sales_agent_id", newPartnerID),
		)

		agents, err := t.resolver.DetermineRelevantAgents(ctx, link.CreativeID, link.BrandAgentID, port.RelevanceOptions{
			ForceIncludeAgents: []string{newPartnerID},
		})
		if err != nil {
			logger.Error("resolve relevant agents", slog.Any("error", err))
			report.Errored = append(report.Errored, link.CreativeID)
			continue
		}
		if !slices.Contains(agents, newPartnerID) {
			report.Skipped = append(report.Skipped, link.CreativeID)
			continue
		}

		res, err := t.orchestrator.SyncToAgents(ctx, link.CreativeID, []string{newPartnerID}, domain.SyncContext{
			CampaignID:  &campaignID,
			TacticID:    &tacticID,
			TriggeredBy: domain.TriggerTacticCreation,
		})
		if err != nil {
			logger.Error("sync creative to new tactic partner", slog.Any("error", err))
			report.Errored = append(report.Errored, link.CreativeID)
			continue
		}
		if len(res.Failed) > 0 {
			report.Errored = append(report.Errored, link.CreativeID)
			continue
		}
		report.Synced = append(report.Synced, link.CreativeID)
	}
	return report, nil
}
