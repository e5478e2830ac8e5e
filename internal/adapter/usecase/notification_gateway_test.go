package usecase

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"creative-sync/internal/adapter/memory"
	"creative-sync/internal/core/domain"
	"creative-sync/internal/core/port/mocks"
)

func failedRequest(partnerID string) domain.NotificationRequest {
	brand := "42"
	return domain.NotificationRequest{
		Type:         domain.NotificationSyncFailed,
		CustomerID:   1,
		BrandAgentID: &brand,
		Data: domain.NotificationData{
			CreativeID:   "c1",
			SalesAgentID: &partnerID,
			Message:      "sync failed",
		},
	}
}

// claimFunc adapts a function to port.DedupStore.
type claimFunc func(ctx context.Context, key string, ttl time.Duration) (bool, error)

func (f claimFunc) Claim(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return f(ctx, key, ttl)
}

func (f claimFunc) Release(context.Context, string) error { return nil }

// failingCreateStore rejects Create while createErr is set.
type failingCreateStore struct {
	*memory.Store
	createErr error
}

func (s *failingCreateStore) Create(ctx context.Context, n domain.Notification) error {
	if s.createErr != nil {
		return s.createErr
	}
	return s.Store.Create(ctx, n)
}

func TestNotificationGateway_DedupWindow(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	clock := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	f.gateway.now = func() time.Time { return clock }

	first, err := f.gateway.CreateNotification(ctx, failedRequest("p1"))
	require.NoError(t, err)
	assert.NotEqual(t, DuplicateSkipped, first)

	clock = clock.Add(4 * time.Minute)
	second, err := f.gateway.CreateNotification(ctx, failedRequest("p1"))
	require.NoError(t, err)
	assert.Equal(t, DuplicateSkipped, second)

	// another partner is a different notification
	other, err := f.gateway.CreateNotification(ctx, failedRequest("p2"))
	require.NoError(t, err)
	assert.NotEqual(t, DuplicateSkipped, other)

	clock = clock.Add(2 * time.Minute)
	third, err := f.gateway.CreateNotification(ctx, failedRequest("p1"))
	require.NoError(t, err)
	assert.NotEqual(t, DuplicateSkipped, third)
	assert.NotEqual(t, first, third)

	f.gateway.Close()
	assert.Len(t, f.store.Notifications(), 3)
	assert.ElementsMatch(t, []string{first, other, third}, f.deliverer.Delivered())
}

func TestNotificationGateway_BrandAgentOptionalInKey(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	_, err := f.gateway.CreateNotification(ctx, failedRequest("p1"))
	require.NoError(t, err)

	// no brand agent on the request matches any stored brand agent
	req := failedRequest("p1")
	req.BrandAgentID = nil
	id, err := f.gateway.CreateNotification(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, DuplicateSkipped, id)

	other := "77"
	req.BrandAgentID = &other
	id, err = f.gateway.CreateNotification(ctx, req)
	require.NoError(t, err)
	assert.NotEqual(t, DuplicateSkipped, id)
}

// TestNotificationGateway_SharedDedupStore models two replicas with their
// own view of the table racing on the same key.
func TestNotificationGateway_SharedDedupStore(t *testing.T) {
	logger := discardLogger()
	shared := memory.NewDedupStore()
	deliverer := &recordingDeliverer{}

	a := NewNotificationGateway(memory.NewStore(), shared, deliverer, logger)
	b := NewNotificationGateway(memory.NewStore(), shared, deliverer, logger)
	t.Cleanup(a.Close)
	t.Cleanup(b.Close)

	id, err := a.CreateNotification(context.Background(), failedRequest("p1"))
	require.NoError(t, err)
	assert.NotEqual(t, DuplicateSkipped, id)

	id, err = b.CreateNotification(context.Background(), failedRequest("p1"))
	require.NoError(t, err)
	assert.Equal(t, DuplicateSkipped, id)
	assert.Equal(t, 1, shared.Size())
}

func TestNotificationGateway_FailedCreateReleasesClaim(t *testing.T) {
	store := &failingCreateStore{Store: memory.NewStore(), createErr: errors.New("connection reset")}
	shared := memory.NewDedupStore()
	deliverer := &recordingDeliverer{}
	g := NewNotificationGateway(store, shared, deliverer, discardLogger())
	t.Cleanup(g.Close)

	_, err := g.CreateNotification(context.Background(), failedRequest("p1"))
	require.Error(t, err)
	assert.Empty(t, store.Notifications())
	assert.Equal(t, 0, shared.Size())

	store.createErr = nil
	id, err := g.CreateNotification(context.Background(), failedRequest("p1"))
	require.NoError(t, err)
	assert.NotEqual(t, DuplicateSkipped, id)
	require.Len(t, store.Notifications(), 1)
	assert.Equal(t, id, store.Notifications()[0].ID)

	id, err = g.CreateNotification(context.Background(), failedRequest("p1"))
	require.NoError(t, err)
	assert.Equal(t, DuplicateSkipped, id)
}

func TestNotificationGateway_DedupClaimErrorProceeds(t *testing.T) {
	store := memory.NewStore()
	dedup := claimFunc(func(context.Context, string, time.Duration) (bool, error) {
		return false, errors.New("redis: connection refused")
	})
	g := NewNotificationGateway(store, dedup, &recordingDeliverer{}, discardLogger())
	t.Cleanup(g.Close)

	id, err := g.CreateNotification(context.Background(), failedRequest("p1"))
	require.NoError(t, err)
	assert.NotEqual(t, DuplicateSkipped, id)
	assert.Len(t, store.Notifications(), 1)
}

func TestNotificationGateway_DeliveryFailureIsLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	store := memory.NewStore()

	deliverer := mocks.NewMockWebhookDeliverer(t)
	deliverer.EXPECT().Deliver(mock.Anything, mock.AnythingOfType("string")).Return(errors.New("webhook returned 502"))

	g := NewNotificationGateway(store, nil, deliverer, logger)
	id, err := g.CreateNotification(context.Background(), failedRequest("p1"))
	require.NoError(t, err)
	g.Close()

	assert.NotEqual(t, DuplicateSkipped, id)
	stored, err := store.GetByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Contains(t, buf.String(), "webhook delivery failed")
	assert.Contains(t, buf.String(), id)
}

func TestNotificationGateway_NotifyFailuresOnePerPartner(t *testing.T) {
	f := newFixture(t, nil)
	creative := f.seedVideoCreative()
	campaign := "cmp1"

	err := f.gateway.NotifyFailures(context.Background(), creative, []domain.PartnerFailure{
		{PartnerID: "p1", Error: "timeout"},
		{PartnerID: "p2", Error: "rejected"},
	}, domain.SyncContext{CampaignID: &campaign, TriggeredBy: domain.TriggerManual})
	require.NoError(t, err)

	failed := notificationsOfType(f.store.Notifications(), domain.NotificationSyncFailed)
	require.Len(t, failed, 2)
	reasons := map[string]string{}
	for _, n := range failed {
		require.NotNil(t, n.Data.SalesAgentID)
		require.NotNil(t, n.Data.Reason)
		require.NotNil(t, n.BrandAgentID)
		assert.Equal(t, "42", *n.BrandAgentID)
		assert.Equal(t, &campaign, n.Data.CampaignID)
		reasons[*n.Data.SalesAgentID] = *n.Data.Reason
	}
	assert.Equal(t, map[string]string{"p1": "timeout", "p2": "rejected"}, reasons)
}
