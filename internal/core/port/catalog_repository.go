package port

import (
	"context"
	"time"

	"creative-sync/internal/core/domain"
)

// CatalogRepository is the read side of the analytics store holding
// creatives, tactics and partner capabilities. It is an outbound port;
// the engine never writes through it.
type CatalogRepository interface {
	// GetCreative returns a creative by id, or nil when it does not exist.
	GetCreative(ctx context.Context, id string) (*domain.Creative, error)
	// ListRecentPartners returns the distinct sales agents on non-deleted
	// tactics of the tenant created at or after since, joined to their
	// capability rows. activeOnly restricts tactics to status active.
	ListRecentPartners(ctx context.Context, customerID int64, since time.Time, activeOnly bool) ([]domain.PartnerCandidate, error)
	// ListActiveCampaignPartners returns the distinct sales agents attached
	// to active tactics of a campaign.
	ListActiveCampaignPartners(ctx context.Context, campaignID string) ([]string, error)
	// ListCampaignCreatives returns the creatives actively linked to a
	// campaign.
	ListCampaignCreatives(ctx context.Context, campaignID string) ([]domain.CampaignCreative, error)
}
