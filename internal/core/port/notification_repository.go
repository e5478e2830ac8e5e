package port

import (
	"context"
	"time"

	"creative-sync/internal/core/domain"
)

// NotificationRepository stores outcome notifications.
type NotificationRepository interface {
	// ExistsSince reports whether a notification matching key was created
	// after since.
	ExistsSince(ctx context.Context, key domain.NotificationKey, since time.Time) (bool, error)
	Create(ctx context.Context, n domain.Notification) error
	// GetByID returns a notification, or nil when it does not exist.
	GetByID(ctx context.Context, id string) (*domain.Notification, error)
}

// DedupStore is a shared, expiring set used to claim a notification key
// across service replicas. Claim returns false when the key is already held.
// Release drops a claim whose notification was never stored.
type DedupStore interface {
	Claim(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}
