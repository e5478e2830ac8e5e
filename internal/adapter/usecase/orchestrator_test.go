package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"creative-sync/internal/core/domain"
	"creative-sync/internal/core/port/mocks"
)

// TestSyncToAgents_PartialFailure syncs to three partners where the middle
// one rejects the creative.
func TestSyncToAgents_PartialFailure(t *testing.T) {
	transport := mocks.NewMockPartnerTransport(t)
	transport.EXPECT().Sync(mock.Anything, mock.Anything, "p1").Return(nil)
	transport.EXPECT().Sync(mock.Anything, mock.Anything, "p2").Return(errors.New("partner rejected payload"))
	transport.EXPECT().Sync(mock.Anything, mock.Anything, "p3").Return(nil)

	f := newFixture(t, transport)
	f.seedVideoCreative()

	res, err := f.orch.SyncToAgents(context.Background(), "c1", []string{"p1", "p2", "p3"}, domain.SyncContext{TriggeredBy: domain.TriggerManual})
	require.NoError(t, err)
	f.gateway.Close()

	assert.Equal(t, []string{"p1", "p3"}, res.Success)
	require.Len(t, res.Failed, 1)
	assert.Equal(t, "p2", res.Failed[0].PartnerID)
	assert.Contains(t, res.Failed[0].Error, "partner rejected payload")

	for _, p := range []string{"p1", "p3"} {
		rec := f.status(t, "c1", p)
		assert.Equal(t, domain.SyncSynced, rec.SyncStatus)
		require.NotNil(t, rec.ApprovalStatus)
		assert.Equal(t, domain.ApprovalPending, *rec.ApprovalStatus)
		assert.Nil(t, rec.SyncError)
		assert.NotNil(t, rec.LastSyncAttempt)
	}
	failed := f.status(t, "c1", "p2")
	assert.Equal(t, domain.SyncFailed, failed.SyncStatus)
	require.NotNil(t, failed.SyncError)
	assert.Contains(t, *failed.SyncError, "partner rejected payload")
	assert.Nil(t, failed.ApprovalStatus)

	ns := f.store.Notifications()
	require.Len(t, notificationsOfType(ns, domain.NotificationSyncFailed), 1)
	assert.Empty(t, notificationsOfType(ns, domain.NotificationSyncCompleted))
	assert.Equal(t, "p2", *notificationsOfType(ns, domain.NotificationSyncFailed)[0].Data.SalesAgentID)
	assert.Len(t, f.deliverer.Delivered(), 1)
}

func TestSyncToAgents_AllSucceed(t *testing.T) {
	f := newFixture(t, transportFunc(func(context.Context, domain.Creative, string) error { return nil }))
	f.seedVideoCreative()
	tactic := "t9"

	res, err := f.orch.SyncToAgents(context.Background(), "c1", []string{"p1", "p2"}, domain.SyncContext{
		TacticID:    &tactic,
		TriggeredBy: domain.TriggerTacticCreation,
	})
	require.NoError(t, err)
	f.gateway.Close()

	assert.Equal(t, []string{"p1", "p2"}, res.Success)
	assert.Empty(t, res.Failed)

	ns := f.store.Notifications()
	completed := notificationsOfType(ns, domain.NotificationSyncCompleted)
	require.Len(t, completed, 1)
	assert.Nil(t, completed[0].Data.SalesAgentID)
	assert.Equal(t, &tactic, completed[0].Data.TacticID)
	assert.Contains(t, completed[0].Data.Message, "2 sales agent(s)")
	assert.Empty(t, notificationsOfType(ns, domain.NotificationSyncFailed))

	rec := f.status(t, "c1", "p1")
	require.NotNil(t, rec.InitiallySyncedForTacticID)
	assert.Equal(t, "t9", *rec.InitiallySyncedForTacticID)
}

// TestSyncToAgents_RetryClearsError re-syncs a failed partner and expects
// the stored error to be gone.
func TestSyncToAgents_RetryClearsError(t *testing.T) {
	var fail bool
	f := newFixture(t, transportFunc(func(context.Context, domain.Creative, string) error {
		if fail {
			return errors.New("gateway timeout")
		}
		return nil
	}))
	f.seedVideoCreative()
	ctx := context.Background()

	fail = true
	_, err := f.orch.SyncToAgents(ctx, "c1", []string{"p1"}, domain.SyncContext{TriggeredBy: domain.TriggerManual})
	require.NoError(t, err)
	require.NotNil(t, f.status(t, "c1", "p1").SyncError)

	fail = false
	res, err := f.orch.SyncToAgents(ctx, "c1", []string{"p1"}, domain.SyncContext{TriggeredBy: domain.TriggerManual})
	require.NoError(t, err)
	assert.Equal(t, []string{"p1"}, res.Success)

	rec := f.status(t, "c1", "p1")
	assert.Equal(t, domain.SyncSynced, rec.SyncStatus)
	assert.Nil(t, rec.SyncError)
	assert.Equal(t, 1, f.store.StatusCount())
}

func TestSyncToAgents_EmptyPartnerList(t *testing.T) {
	f := newFixture(t, nil)
	f.seedVideoCreative()

	res, err := f.orch.SyncToAgents(context.Background(), "c1", []string{}, domain.SyncContext{TriggeredBy: domain.TriggerManual})
	require.NoError(t, err)
	assert.Empty(t, res.Success)
	assert.Empty(t, res.Failed)
	assert.Equal(t, 0, f.store.StatusCount())

	ns := f.store.Notifications()
	require.Len(t, ns, 1)
	assert.Equal(t, domain.NotificationSyncCompleted, ns[0].Type)
	assert.Empty(t, notificationsOfType(ns, domain.NotificationSyncFailed))
}

func TestSyncToAgents_MissingCreative(t *testing.T) {
	transport := mocks.NewMockPartnerTransport(t)
	f := newFixture(t, transport)

	res, err := f.orch.SyncToAgents(context.Background(), "ghost", []string{"p1", "p2"}, domain.SyncContext{TriggeredBy: domain.TriggerManual})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, res)
	assert.Equal(t, 0, f.store.StatusCount())
	assert.Empty(t, f.store.Notifications())
	transport.AssertNotCalled(t, "Sync", mock.Anything, mock.Anything, mock.Anything)
}

// TestSyncToAgents_BoundedBatches checks that no more than a batch of
// partners is in flight and that a batch starts only after the previous
// one has settled.
func TestSyncToAgents_BoundedBatches(t *testing.T) {
	const partners = 12

	var (
		mu      sync.Mutex
		active  int
		peak    int
		started = map[string]time.Time{}
		ended   = map[string]time.Time{}
	)
	f := newFixture(t, transportFunc(func(_ context.Context, _ domain.Creative, id string) error {
		mu.Lock()
		active++
		peak = max(peak, active)
		started[id] = time.Now()
		mu.Unlock()

		time.Sleep(10 * time.Millisecond)

		mu.Lock()
		active--
		ended[id] = time.Now()
		mu.Unlock()
		if id == "p07" {
			return errors.New("boom")
		}
		return nil
	}))
	f.seedVideoCreative()

	ids := make([]string, partners)
	for i := range ids {
		ids[i] = fmt.Sprintf("p%02d", i)
	}

	res, err := f.orch.SyncToAgents(context.Background(), "c1", ids, domain.SyncContext{TriggeredBy: domain.TriggerManual})
	require.NoError(t, err)
	f.gateway.Close()

	assert.LessOrEqual(t, peak, DefaultBatchSize)
	assert.Len(t, res.Success, partners-1)
	require.Len(t, res.Failed, 1)
	assert.Equal(t, "p07", res.Failed[0].PartnerID)

	for i := DefaultBatchSize; i < partners; i++ {
		batchStart := (i / DefaultBatchSize) * DefaultBatchSize
		for j := batchStart - DefaultBatchSize; j < batchStart; j++ {
			assert.False(t, started[ids[i]].Before(ended[ids[j]]),
				"%s started before %s of the previous batch ended", ids[i], ids[j])
		}
	}
}
