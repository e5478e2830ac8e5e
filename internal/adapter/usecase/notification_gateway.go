package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"creative-sync/internal/core/domain"
	"creative-sync/internal/core/port"
)

const (
	// DuplicateSkipped is returned instead of a notification id when an
	// identical notification was created inside the dedup window.
	DuplicateSkipped = "duplicate-skipped"

	// DedupWindow is how long an identical notification is suppressed.
	DedupWindow = 5 * time.Minute

	defaultDeliveryTimeout = 30 * time.Second
)

// NotificationGateway records sync outcome notifications, suppresses
// duplicates and hands new ones to the webhook channel without waiting
// for delivery.
type NotificationGateway struct {
	repo      port.NotificationRepository
	dedup     port.DedupStore
	deliverer port.WebhookDeliverer
	logger    *slog.Logger

	now             func() time.Time
	deliveryTimeout time.Duration
	inflight        sync.WaitGroup
}

// NewNotificationGateway creates a gateway. dedup may be nil, in which case
// only the repository is consulted for duplicates.
func NewNotificationGateway(repo port.NotificationRepository, dedup port.DedupStore, deliverer port.WebhookDeliverer, logger *slog.Logger) *NotificationGateway {
	return &NotificationGateway{
		repo:            repo,
		dedup:           dedup,
		deliverer:       deliverer,
		logger:          logger,
		now:             time.Now,
		deliveryTimeout: defaultDeliveryTimeout,
	}
}

// CreateNotification persists req unless an identical one exists within
// DedupWindow, in which case DuplicateSkipped is returned. Delivery runs in
// the background and its failure is only logged.
func (g *NotificationGateway) CreateNotification(ctx context.Context, req domain.NotificationRequest) (string, error) {
	key := req.DedupKey()
	now := g.now().UTC()

	exists, err := g.repo.ExistsSince(ctx, key, now.Add(-DedupWindow))
	if err != nil {
		return "", fmt.Errorf("check duplicate notification: %w", err)
	}
	if exists {
		g.logger.Debug("duplicate notification skipped", slog.String("key", key.String()))
		return DuplicateSkipped, nil
	}

	var claimed bool
	if g.dedup != nil {
		claimed, err = g.dedup.Claim(ctx, key.String(), DedupWindow)
		switch {
		case err != nil:
			g.logger.Warn("dedup claim failed", slog.String("key", key.String()), slog.Any("error", err))
		case !claimed:
			g.logger.Debug("duplicate notification skipped", slog.String("key", key.String()))
			return DuplicateSkipped, nil
		}
	}

	n := domain.Notification{
		ID:           uuid.NewString(),
		Type:         req.Type,
		CustomerID:   req.CustomerID,
		BrandAgentID: req.BrandAgentID,
		Data:         req.Data,
		CreatedAt:    now,
	}
	if err = g.repo.Create(ctx, n); err != nil {
		if claimed {
			g.release(ctx, key.String())
		}
		return "", fmt.Errorf("create notification: %w", err)
	}

	g.deliver(n.ID)
	return n.ID, nil
}

// release frees a claim so that a later identical request can store the
// notification this call failed to persist.
func (g *NotificationGateway) release(ctx context.Context, key string) {
	if err := g.dedup.Release(context.WithoutCancel(ctx), key); err != nil {
		g.logger.Warn("dedup release failed", slog.String("key", key), slog.Any("error", err))
	}
}

// deliver hands the notification to the webhook channel in the background.
// The caller's context is not used so delivery outlives the request.
func (g *NotificationGateway) deliver(id string) {
	g.inflight.Add(1)
	go func() {
		defer g.inflight.Done()

		ctx, cancel := context.WithTimeout(context.Background(), g.deliveryTimeout)
		defer cancel()

		if err := g.deliverer.Deliver(ctx, id); err != nil {
			g.logger.Warn("webhook delivery failed",
				slog.String("notification_id", id),
				slog.Any("error", err),
			)
		}
	}()
}

// NotifySuccess emits a single sync_completed notification for a run in
// which every partner succeeded.
func (g *NotificationGateway) NotifySuccess(ctx context.Context, creative domain.Creative, count int, sc domain.SyncContext) error {
	_, err := g.CreateNotification(ctx, domain.NotificationRequest{
		Type:         domain.NotificationSyncCompleted,
		CustomerID:   creative.CustomerID,
		BrandAgentID: brandAgentRef(creative),
		Data: domain.NotificationData{
			CreativeID: creative.ID,
			CampaignID: sc.CampaignID,
			TacticID:   sc.TacticID,
			Message:    fmt.Sprintf("Creative %q synced to %d sales agent(s)", creative.Name, count),
		},
	})
	return err
}

// NotifyFailures emits one sync_failed notification per failed partner,
// each carrying that partner's error. All partners are attempted; the
// returned error joins individual failures.
func (g *NotificationGateway) NotifyFailures(ctx context.Context, creative domain.Creative, failures []domain.PartnerFailure, sc domain.SyncContext) error {
	var errs []error
	for _, f := range failures {
		partnerID, reason := f.PartnerID, f.Error
		_, err := g.CreateNotification(ctx, domain.NotificationRequest{
			Type:         domain.NotificationSyncFailed,
			CustomerID:   creative.CustomerID,
			BrandAgentID: brandAgentRef(creative),
			Data: domain.NotificationData{
				CreativeID:   creative.ID,
				SalesAgentID: &partnerID,
				CampaignID:   sc.CampaignID,
				TacticID:     sc.TacticID,
				Message:      fmt.Sprintf("Creative %q failed to sync to sales agent %s", creative.Name, partnerID),
				Reason:       &reason,
			},
		})
		if err != nil {
			errs = append(errs, fmt.Errorf("partner %s: %w", partnerID, err))
		}
	}
	return errors.Join(errs...)
}

// Close waits for background deliveries to finish.
func (g *NotificationGateway) Close() {
	g.inflight.Wait()
}

func brandAgentRef(c domain.Creative) *string {
	if c.BrandAgentID == "" {
		return nil
	}
	id := c.BrandAgentID
	return &id
}
