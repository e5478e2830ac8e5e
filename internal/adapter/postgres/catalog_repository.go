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

// CatalogRepository implements port.CatalogRepository using pgxpool for
// PostgreSQL. The tables it reads are owned by other services.
type CatalogRepository struct {
	pool *pgxpool.Pool
}

// NewCatalogRepository returns a new repository instance.
func NewCatalogRepository(pool *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{pool: pool}
}

// GetCreative returns a creative by id.
func (r *CatalogRepository) GetCreative(ctx context.Context, id string) (*domain.Creative, error) {
	var c domain.Creative
	err := r.pool.QueryRow(ctx, `SELECT id, name, format_id, brand_agent_id, customer_id, created_at, updated_at FROM creatives WHERE id = $1`, id).
		Scan(&c.ID, &c.Name, &c.Format, &c.BrandAgentID, &c.CustomerID, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListRecentPartners returns distinct sales agents with tactics for the
// tenant created since the given time, joined to their capability row.
func (r *CatalogRepository) ListRecentPartners(ctx context.Context, customerID int64, since time.Time, activeOnly bool) ([]domain.PartnerCandidate, error) {
	query := `
        SELECT DISTINCT ON (t.sales_agent_id)
            t.sales_agent_id,
            COALESCE(sa.name, ''),
            c.supports_video,
            c.supports_display,
            c.supports_audio,
            c.supports_native,
            c.supports_ctv
        FROM tactics t
        LEFT JOIN sales_agents sa ON sa.id = t.sales_agent_id
        LEFT JOIN sales_agent_capabilities c ON c.sales_agent_id = t.sales_agent_id
        WHERE t.customer_id = $1
          AND t.created_at >= $2
          AND t.status <> 'deleted'
          AND (NOT $3::boolean OR t.status = 'active')
        ORDER BY t.sales_agent_id`
	rows, err := r.pool.Query(ctx, query, customerID, since, activeOnly)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.PartnerCandidate, error) {
		var p domain.PartnerCandidate
		err := row.Scan(
			&p.SalesAgentID,
			&p.Name,
			&p.Capabilities.SupportsVideo,
			&p.Capabilities.SupportsDisplay,
			&p.Capabilities.SupportsAudio,
			&p.Capabilities.SupportsNative,
			&p.Capabilities.SupportsCTV,
		)
		p.Capabilities.SalesAgentID = p.SalesAgentID
		return p, err
	})
}

// ListActiveCampaignPartners returns the distinct sales agents running an
// active tactic in the campaign.
func (r *CatalogRepository) ListActiveCampaignPartners(ctx context.Context, campaignID string) ([]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT DISTINCT sales_agent_id FROM tactics WHERE campaign_id = $1 AND status = 'active' ORDER BY sales_agent_id`, campaignID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[string])
}

// ListCampaignCreatives returns the active creative links of a campaign.
// A link to a creative that no longer exists is still returned, with an
// empty brand agent.
func (r *CatalogRepository) ListCampaignCreatives(ctx context.Context, campaignID string) ([]domain.CampaignCreative, error) {
	query := `
        SELECT cc.campaign_id, cc.creative_id, COALESCE(cr.brand_agent_id, '')
        FROM campaign_creatives cc
        LEFT JOIN creatives cr ON cr.id = cc.creative_id
        WHERE cc.campaign_id = $1 AND cc.status = 'active'
        ORDER BY cc.creative_id`
	rows, err := r.pool.Query(ctx, query, campaignID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CampaignCreative, error) {
		var l domain.CampaignCreative
		err := row.Scan(&l.CampaignID, &l.CreativeID, &l.BrandAgentID)
		return l, err
	})
}

var _ port.CatalogRepository = (*CatalogRepository)(nil)
