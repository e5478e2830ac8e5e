package domain

import "time"

// Creative represents a piece of ad content owned by a brand agent. The
// sync engine only reads creatives; they are created and edited elsewhere.
type Creative struct {
	ID           string
	Name         string
	Format       string // "<mediaType>/<variant>", e.g. "video/standard"
	BrandAgentID string // owning buyer agent, numeric-as-string
	CustomerID   int64  // tenant
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CampaignCreative links a creative to a campaign.
type CampaignCreative struct {
	CampaignID   string
	CreativeID   string
	BrandAgentID string
}
