package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"creative-sync/internal/adapter/memory"
	"creative-sync/internal/core/domain"
)

const demoCustomerID = 1

func flag(b bool) *bool { return &b }

type demoAgent struct {
	id, name string
	caps     *domain.PartnerCapabilities
}

type demoTactic struct {
	id, agent, campaign, status string
	age                         time.Duration
}

var (
	demoAgents = []demoAgent{
		{"sa-streamhub", "StreamHub", &domain.PartnerCapabilities{SupportsVideo: flag(true), SupportsDisplay: flag(true), SupportsCTV: flag(true)}},
		{"sa-bannerworks", "BannerWorks", &domain.PartnerCapabilities{SupportsVideo: flag(false), SupportsDisplay: flag(true)}},
		{"sa-podreach", "PodReach", &domain.PartnerCapabilities{SupportsAudio: flag(true), SupportsDisplay: flag(false)}},
		{"sa-nativeone", "NativeOne", &domain.PartnerCapabilities{SupportsNative: flag(true)}},
		{"sa-openex", "OpenEx", nil},
	}

	demoCreatives = []domain.Creative{
		{ID: "cr-spring-30s", Name: "Spring Launch 30s", Format: "video/standard", BrandAgentID: "101", CustomerID: demoCustomerID},
		{ID: "cr-spring-banner", Name: "Spring Launch Banner", Format: "display/banner", BrandAgentID: "101", CustomerID: demoCustomerID},
		{ID: "cr-podcast-read", Name: "Podcast Host Read", Format: "audio/standard", BrandAgentID: "101", CustomerID: demoCustomerID},
		{ID: "cr-feed-card", Name: "Feed Card", Format: "native/card", BrandAgentID: "101", CustomerID: demoCustomerID},
	}

	demoTactics = []demoTactic{
		{"tc-1", "sa-streamhub", "cmp-spring", "active", 48 * time.Hour},
		{"tc-2", "sa-bannerworks", "cmp-spring", "active", 72 * time.Hour},
		{"tc-3", "sa-podreach", "cmp-spring", "paused", 24 * time.Hour},
		{"tc-4", "sa-nativeone", "cmp-always-on", "active", 20 * 24 * time.Hour},
		{"tc-5", "sa-openex", "cmp-always-on", "deleted", 5 * 24 * time.Hour},
		{"tc-6", "sa-openex", "cmp-legacy", "active", 90 * 24 * time.Hour},
	}

	demoLinks = []domain.CampaignCreative{
		{CampaignID: "cmp-spring", CreativeID: "cr-spring-30s"},
		{CampaignID: "cmp-spring", CreativeID: "cr-spring-banner"},
		{CampaignID: "cmp-always-on", CreativeID: "cr-feed-card"},
		{CampaignID: "cmp-always-on", CreativeID: "cr-podcast-read"},
	}
)

// Seed inserts the demo catalog into PostgreSQL: sales agents with
// differing capabilities, tactics of one tenant and creatives linked to two
// campaigns. It is safe to run repeatedly.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	for _, a := range demoAgents {
		_, err := db.Exec(ctx, `INSERT INTO sales_agents (id, name) VALUES ($1,$2) ON CONFLICT DO NOTHING`, a.id, a.name)
		if err != nil {
			return fmt.Errorf("seed sales agent %s: %w", a.id, err)
		}
		if a.caps == nil {
			continue
		}
		_, err = db.Exec(ctx, `INSERT INTO sales_agent_capabilities
    (sales_agent_id, supports_video, supports_display, supports_audio, supports_native, supports_ctv)
VALUES ($1,$2,$3,$4,$5,$6) ON CONFLICT DO NOTHING`,
			a.id, a.caps.SupportsVideo, a.caps.SupportsDisplay, a.caps.SupportsAudio, a.caps.SupportsNative, a.caps.SupportsCTV)
		if err != nil {
			return fmt.Errorf("seed capabilities %s: %w", a.id, err)
		}
	}

	for _, c := range demoCreatives {
		_, err := db.Exec(ctx, `INSERT INTO creatives (id, name, format_id, brand_agent_id, customer_id, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,now(),now()) ON CONFLICT DO NOTHING`, c.ID, c.Name, c.Format, c.BrandAgentID, c.CustomerID)
		if err != nil {
			return fmt.Errorf("seed creative %s: %w", c.ID, err)
		}
	}

	now := time.Now().UTC()
	for _, t := range demoTactics {
		_, err := db.Exec(ctx, `INSERT INTO tactics (id, sales_agent_id, customer_id, campaign_id, status, created_at)
VALUES ($1,$2,$3,$4,$5,$6) ON CONFLICT DO NOTHING`, t.id, t.agent, demoCustomerID, t.campaign, t.status, now.Add(-t.age))
		if err != nil {
			return fmt.Errorf("seed tactic %s: %w", t.id, err)
		}
	}

	for _, l := range demoLinks {
		_, err := db.Exec(ctx, `INSERT INTO campaign_creatives (campaign_id, creative_id, status) VALUES ($1,$2,'active') ON CONFLICT DO NOTHING`, l.CampaignID, l.CreativeID)
		if err != nil {
			return fmt.Errorf("seed campaign link %s/%s: %w", l.CampaignID, l.CreativeID, err)
		}
	}
	return nil
}

// SeedMemory loads the same demo catalog into an in-memory store.
func SeedMemory(store *memory.Store) {
	for _, a := range demoAgents {
		store.AddSalesAgent(a.id, a.name, a.caps)
	}
	now := time.Now().UTC()
	for _, c := range demoCreatives {
		c.CreatedAt, c.UpdatedAt = now, now
		store.AddCreative(c)
	}
	for _, t := range demoTactics {
		store.AddTactic(memory.Tactic{
			ID:           t.id,
			SalesAgentID: t.agent,
			CustomerID:   demoCustomerID,
			CampaignID:   t.campaign,
			Status:       t.status,
			CreatedAt:    now.Add(-t.age),
		})
	}
	for _, l := range demoLinks {
		store.LinkCreative(l.CampaignID, l.CreativeID, "active")
	}
}
