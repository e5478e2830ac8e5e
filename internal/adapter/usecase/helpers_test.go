package usecase

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"go.uber.org/goleak"

	"creative-sync/internal/adapter/memory"
	"creative-sync/internal/core/domain"
	"creative-sync/internal/core/port"
)

// TestMain fails the package if a background delivery outlives its test.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func boolPtr(b bool) *bool { return &b }

// transportFunc adapts a function to port.PartnerTransport.
type transportFunc func(ctx context.Context, creative domain.Creative, partnerID string) error

func (f transportFunc) Sync(ctx context.Context, creative domain.Creative, partnerID string) error {
	return f(ctx, creative, partnerID)
}

// recordingDeliverer remembers delivered notification ids.
type recordingDeliverer struct {
	mu  sync.Mutex
	ids []string
	err error
}

func (d *recordingDeliverer) Deliver(_ context.Context, id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.ids = append(d.ids, id)
	return d.err
}

func (d *recordingDeliverer) Delivered() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.ids...)
}

// fixture wires the engine over an in-memory store.
type fixture struct {
	store     *memory.Store
	deliverer *recordingDeliverer
	gateway   *NotificationGateway
	statuses  *SyncStatusStore
	resolver  *RelevanceResolver
	orch      *SyncOrchestrator
	triggers  *EventTriggers
}

func newFixture(t *testing.T, transport port.PartnerTransport) *fixture {
	t.Helper()
	logger := discardLogger()

	store := memory.NewStore()
	deliverer := &recordingDeliverer{}
	gateway := NewNotificationGateway(store, nil, deliverer, logger)
	t.Cleanup(gateway.Close)

	statuses := NewSyncStatusStore(store, store, logger)
	resolver := NewRelevanceResolver(store, logger)
	orch := NewSyncOrchestrator(store, statuses, transport, gateway, DefaultBatchSize, logger)
	triggers := NewEventTriggers(store, resolver, orch, logger)

	return &fixture{
		store:     store,
		deliverer: deliverer,
		gateway:   gateway,
		statuses:  statuses,
		resolver:  resolver,
		orch:      orch,
		triggers:  triggers,
	}
}

// seedVideoCreative stores creative c1 (video/standard) for tenant 1.
func (f *fixture) seedVideoCreative() domain.Creative {
	c := domain.Creative{
		ID:           "c1",
		Name:         "Spring Launch 30s",
		Format:       "video/standard",
		BrandAgentID: "42",
		CustomerID:   1,
		CreatedAt:    time.Now().UTC(),
	}
	f.store.AddCreative(c)
	return c
}

func (f *fixture) status(t *testing.T, creativeID, partnerID string) domain.SyncStatusRecord {
	t.Helper()
	rec, err := f.store.Get(context.Background(), creativeID, partnerID)
	if err != nil {
		t.Fatalf("get status: %v", err)
	}
	if rec == nil {
		t.Fatalf("no status row for %s/%s", creativeID, partnerID)
	}
	return *rec
}

func notificationsOfType(ns []domain.Notification, typ domain.NotificationType) []domain.Notification {
	var out []domain.Notification
	for _, n := range ns {
		if n.Type == typ {
			out = append(out, n)
		}
	}
	return out
}
