// Package memory provides in-process implementations of the storage ports.
// They back local development runs and the usecase tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"creative-sync/internal/core/domain"
	"creative-sync/internal/core/port"
)

// Tactic is a row of the tactics table as seen by the engine.
type Tactic struct {
	ID           string
	SalesAgentID string
	CustomerID   int64
	CampaignID   string
	Status       string // active, paused, deleted
	CreatedAt    time.Time
}

type salesAgent struct {
	name string
	caps *domain.PartnerCapabilities
}

type campaignLink struct {
	campaignID string
	creativeID string
	status     string
}

// Store keeps catalog data, sync rows and notifications in memory. It is
// safe for concurrent use.
type Store struct {
	mu            sync.RWMutex
	creatives     map[string]domain.Creative
	agents        map[string]salesAgent
	tactics       []Tactic
	links         []campaignLink
	statuses      map[string]domain.SyncStatusRecord
	notifications []domain.Notification
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		creatives: make(map[string]domain.Creative),
		agents:    make(map[string]salesAgent),
		statuses:  make(map[string]domain.SyncStatusRecord),
	}
}

// AddCreative inserts or replaces a creative.
func (s *Store) AddCreative(c domain.Creative) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creatives[c.ID] = c
}

// AddSalesAgent registers a partner. caps may be nil when the partner has
// no capability row.
func (s *Store) AddSalesAgent(id, name string, caps *domain.PartnerCapabilities) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.agents[id] = salesAgent{name: name, caps: caps}
}

// AddTactic appends a tactic row.
func (s *Store) AddTactic(t Tactic) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tactics = append(s.tactics, t)
}

// LinkCreative attaches a creative to a campaign with the given link status.
func (s *Store) LinkCreative(campaignID, creativeID, status string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.links = append(s.links, campaignLink{campaignID: campaignID, creativeID: creativeID, status: status})
}

func (s *Store) GetCreative(_ context.Context, id string) (*domain.Creative, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.creatives[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (s *Store) ListRecentPartners(_ context.Context, customerID int64, since time.Time, activeOnly bool) ([]domain.PartnerCandidate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{})
	var out []domain.PartnerCandidate
	for _, t := range s.tactics {
		if t.CustomerID != customerID || t.CreatedAt.Before(since) || t.Status == "deleted" {
			continue
		}
		if activeOnly && t.Status != "active" {
			continue
		}
		if _, ok := seen[t.SalesAgentID]; ok {
			continue
		}
		seen[t.SalesAgentID] = struct{}{}

		cand := domain.PartnerCandidate{SalesAgentID: t.SalesAgentID}
		cand.Capabilities.SalesAgentID = t.SalesAgentID
		if a, ok := s.agents[t.SalesAgentID]; ok {
			cand.Name = a.name
			if a.caps != nil {
				cand.Capabilities = *a.caps
				cand.Capabilities.SalesAgentID = t.SalesAgentID
			}
		}
		out = append(out, cand)
	}
	return out, nil
}

func (s *Store) ListActiveCampaignPartners(_ context.Context, campaignID string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{})
	var out []string
	for _, t := range s.tactics {
		if t.CampaignID != campaignID || t.Status != "active" {
			continue
		}
		if _, ok := seen[t.SalesAgentID]; ok {
			continue
		}
		seen[t.SalesAgentID] = struct{}{}
		out = append(out, t.SalesAgentID)
	}
	return out, nil
}

func (s *Store) ListCampaignCreatives(_ context.Context, campaignID string) ([]domain.CampaignCreative, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.CampaignCreative
	for _, l := range s.links {
		if l.campaignID != campaignID || l.status != "active" {
			continue
		}
		link := domain.CampaignCreative{CampaignID: l.campaignID, CreativeID: l.creativeID}
		if c, ok := s.creatives[l.creativeID]; ok {
			link.BrandAgentID = c.BrandAgentID
		}
		out = append(out, link)
	}
	return out, nil
}

func (s *Store) Insert(_ context.Context, rec domain.SyncStatusRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := domain.SyncStatusID(rec.CreativeID, rec.SalesAgentID)
	if _, ok := s.statuses[id]; ok {
		return port.ErrSyncStatusExists
	}
	rec.ID = id
	rec.RequestedChanges = cloneStrings(rec.RequestedChanges)
	s.statuses[id] = rec
	return nil
}

func (s *Store) Merge(_ context.Context, creativeID, salesAgentID string, patch domain.SyncStatusPatch, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := domain.SyncStatusID(creativeID, salesAgentID)
	rec, ok := s.statuses[id]
	if !ok {
		return domain.ErrNotFound
	}
	rec.Apply(patch, now)
	s.statuses[id] = rec
	return nil
}

func (s *Store) Get(_ context.Context, creativeID, salesAgentID string) (*domain.SyncStatusRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.statuses[domain.SyncStatusID(creativeID, salesAgentID)]
	if !ok {
		return nil, nil
	}
	rec = s.withName(rec)
	return &rec, nil
}

func (s *Store) ListByCreative(_ context.Context, creativeID string) ([]domain.SyncStatusRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.SyncStatusRecord, 0)
	for _, rec := range s.statuses {
		if rec.CreativeID == creativeID {
			out = append(out, s.withName(rec))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SalesAgentName != out[j].SalesAgentName {
			return out[i].SalesAgentName < out[j].SalesAgentName
		}
		return out[i].SalesAgentID < out[j].SalesAgentID
	})
	return out, nil
}

func (s *Store) ExistsSince(_ context.Context, key domain.NotificationKey, since time.Time) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, n := range s.notifications {
		if matches(n, key) && n.CreatedAt.After(since) {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) Create(_ context.Context, n domain.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications = append(s.notifications, n)
	return nil
}

func (s *Store) GetByID(_ context.Context, id string) (*domain.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, n := range s.notifications {
		if n.ID == id {
			return &n, nil
		}
	}
	return nil, nil
}

// Notifications returns a snapshot of every stored notification.
func (s *Store) Notifications() []domain.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Notification(nil), s.notifications...)
}

// StatusCount returns the number of stored sync rows.
func (s *Store) StatusCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.statuses)
}

func (s *Store) withName(rec domain.SyncStatusRecord) domain.SyncStatusRecord {
	if a, ok := s.agents[rec.SalesAgentID]; ok {
		rec.SalesAgentName = a.name
	}
	rec.RequestedChanges = cloneStrings(rec.RequestedChanges)
	return rec
}

func matches(n domain.Notification, key domain.NotificationKey) bool {
	if n.Type != key.Type || n.CustomerID != key.CustomerID || n.Data.CreativeID != key.CreativeID {
		return false
	}
	if key.BrandAgentID != nil && (n.BrandAgentID == nil || *n.BrandAgentID != *key.BrandAgentID) {
		return false
	}
	return equalRef(n.Data.SalesAgentID, key.SalesAgentID)
}

func equalRef(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string(nil), in...)
}

var (
	_ port.CatalogRepository      = (*Store)(nil)
	_ port.SyncStatusRepository   = (*Store)(nil)
	_ port.NotificationRepository = (*Store)(nil)
)
