package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"creative-sync/internal/core/domain"
	"creative-sync/internal/core/port"
)

func TestStore_InsertConflict(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	now := time.Now().UTC()

	rec := domain.SyncStatusPatch{}.NewRecord("c1", "p1", "42", now)
	require.NoError(t, s.Insert(ctx, rec))
	assert.ErrorIs(t, s.Insert(ctx, rec), port.ErrSyncStatusExists)
	assert.Equal(t, 1, s.StatusCount())
}

func TestStore_MergeMissingRow(t *testing.T) {
	s := NewStore()
	err := s.Merge(context.Background(), "c1", "p1", domain.SyncStatusPatch{}, time.Now())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_ListByCreativeOrderedByName(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	now := time.Now().UTC()
	s.AddSalesAgent("p1", "Zeta Media", nil)
	s.AddSalesAgent("p2", "Alpha Exchange", nil)

	for _, p := range []string{"p1", "p2"} {
		require.NoError(t, s.Insert(ctx, domain.SyncStatusPatch{}.NewRecord("c1", p, "42", now)))
	}
	require.NoError(t, s.Insert(ctx, domain.SyncStatusPatch{}.NewRecord("c2", "p1", "42", now)))

	rows, err := s.ListByCreative(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Alpha Exchange", rows[0].SalesAgentName)
	assert.Equal(t, "Zeta Media", rows[1].SalesAgentName)
}

func TestStore_ListRecentPartnersFilters(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	now := time.Now().UTC()
	since := now.AddDate(0, 0, -30)

	s.AddTactic(Tactic{ID: "t1", SalesAgentID: "p1", CustomerID: 1, Status: "active", CreatedAt: now})
	s.AddTactic(Tactic{ID: "t2", SalesAgentID: "p1", CustomerID: 1, Status: "active", CreatedAt: now})
	s.AddTactic(Tactic{ID: "t3", SalesAgentID: "p2", CustomerID: 1, Status: "paused", CreatedAt: now})
	s.AddTactic(Tactic{ID: "t4", SalesAgentID: "p3", CustomerID: 1, Status: "deleted", CreatedAt: now})
	s.AddTactic(Tactic{ID: "t5", SalesAgentID: "p4", CustomerID: 2, Status: "active", CreatedAt: now})
	s.AddTactic(Tactic{ID: "t6", SalesAgentID: "p5", CustomerID: 1, Status: "active", CreatedAt: now.AddDate(0, 0, -45)})

	active, err := s.ListRecentPartners(ctx, 1, since, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"p1"}, ids(active))

	all, err := s.ListRecentPartners(ctx, 1, since, false)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"p1", "p2"}, ids(all))
}

func TestDedupStore_Claim(t *testing.T) {
	s := NewDedupStore()
	current := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return current }
	ctx := context.Background()

	ok, err := s.Claim(ctx, "k", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.Claim(ctx, "k", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	current = current.Add(time.Minute)
	ok, err = s.Claim(ctx, "k", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok, "expired key can be claimed again")
	assert.Equal(t, 1, s.Size())
}

func TestDedupStore_Release(t *testing.T) {
	s := NewDedupStore()
	ctx := context.Background()

	ok, err := s.Claim(ctx, "k", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, s.Release(ctx, "k"))
	assert.Equal(t, 0, s.Size())

	ok, err = s.Claim(ctx, "k", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, s.Release(ctx, "missing"))
}

func ids(cands []domain.PartnerCandidate) []string {
	out := make([]string, 0, len(cands))
	for _, c := range cands {
		out = append(out, c.SalesAgentID)
	}
	return out
}
