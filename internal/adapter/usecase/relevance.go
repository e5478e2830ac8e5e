package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"creative-sync/internal/core/domain"
	"creative-sync/internal/core/port"
)

// DefaultDaysBack is how far back tactic activity is considered when no
// window is requested.
const DefaultDaysBack = 30

// RelevanceResolver decides which sales agents should receive a creative.
// It combines recent tactic activity of the creative's tenant with
// capability matching and an explicit force-include list.
type RelevanceResolver struct {
	catalog port.CatalogRepository
	logger  *slog.Logger
	now     func() time.Time
}

// NewRelevanceResolver creates a resolver reading from catalog.
func NewRelevanceResolver(catalog port.CatalogRepository, logger *slog.Logger) *RelevanceResolver {
	return &RelevanceResolver{catalog: catalog, logger: logger, now: time.Now}
}

// DetermineRelevantAgents returns the deduplicated ids of partners that
// should receive the creative. The result always contains every id in
// opts.ForceIncludeAgents. An empty result is not an error. Tenant scoping
// comes from the creative itself; brandAgentID is only recorded in logs.
func (r *RelevanceResolver) DetermineRelevantAgents(ctx context.Context, creativeID, brandAgentID string, opts port.RelevanceOptions) ([]string, error) {
	creative, err := r.catalog.GetCreative(ctx, creativeID)
	if err != nil {
		return nil, fmt.Errorf("load creative %s: %w", creativeID, err)
	}
	if creative == nil {
		return nil, fmt.Errorf("creative %s: %w", creativeID, domain.ErrNotFound)
	}

	daysBack := opts.DaysBack
	if daysBack <= 0 {
		daysBack = DefaultDaysBack
	}
	activeOnly := opts.IncludeActive == nil || *opts.IncludeActive
	since := r.now().UTC().AddDate(0, 0, -daysBack)

	candidates, err := r.catalog.ListRecentPartners(ctx, creative.CustomerID, since, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("list recent partners: %w", err)
	}

	seen := make(map[string]struct{}, len(candidates)+len(opts.ForceIncludeAgents))
	agents := make([]string, 0, len(candidates)+len(opts.ForceIncludeAgents))
	add := func(id string) {
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		agents = append(agents, id)
	}

	for _, c := range candidates {
		if domain.IsCompatible(creative.Format, c.Capabilities) {
			add(c.SalesAgentID)
		}
	}
	for _, id := range opts.ForceIncludeAgents {
		add(id)
	}

	r.logger.Debug("resolved relevant agents",
		slog.String("creative_id", creativeID),
		slog.String("brand_agent_id", brandAgentID),
		slog.String("format", creative.Format),
		slog.Int("candidates", len(candidates)),
		slog.Int("relevant", len(agents)),
	)
	return agents, nil
}
