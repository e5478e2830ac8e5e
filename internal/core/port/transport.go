package port

import (
	"context"

	"creative-sync/internal/core/domain"
)

// PartnerTransport pushes a creative to one sales agent.
type PartnerTransport interface {
	Sync(ctx context.Context, creative domain.Creative, partnerID string) error
}

// WebhookDeliverer hands a stored notification to external agent systems.
// Delivery outcome never affects the engine.
type WebhookDeliverer interface {
	Deliver(ctx context.Context, notificationID string) error
}
