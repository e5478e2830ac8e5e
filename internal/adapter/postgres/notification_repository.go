package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"creative-sync/internal/core/domain"
	"creative-sync/internal/core/port"
)

// NotificationRepository implements port.NotificationRepository. The
// payload is stored as JSONB so the dedup lookup can match on its fields.
type NotificationRepository struct {
	pool *pgxpool.Pool
}

// NewNotificationRepository returns a new repository instance.
func NewNotificationRepository(pool *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{pool: pool}
}

// ExistsSince reports whether a matching notification was created after
// since. A nil brand agent in key matches any brand agent.
func (r *NotificationRepository) ExistsSince(ctx context.Context, key domain.NotificationKey, since time.Time) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
        SELECT EXISTS (
            SELECT 1 FROM notifications
            WHERE type = $1
              AND customer_id = $2
              AND ($3::text IS NULL OR brand_agent_id = $3::text)
              AND data->>'creativeId' = $4
              AND (data->>'salesAgentId') IS NOT DISTINCT FROM $5::text
              AND created_at > $6
        )`,
		string(key.Type), key.CustomerID, key.BrandAgentID, key.CreativeID, key.SalesAgentID, since).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// Create inserts a notification.
func (r *NotificationRepository) Create(ctx context.Context, n domain.Notification) error {
	id, err := uuid.Parse(n.ID)
	if err != nil {
		return fmt.Errorf("notification id: %w", err)
	}
	data, err := json.Marshal(n.Data)
	if err != nil {
		return fmt.Errorf("marshal notification data: %w", err)
	}
	_, err = r.pool.Exec(ctx, `INSERT INTO notifications (id, type, customer_id, brand_agent_id, data, created_at) VALUES ($1,$2,$3,$4,$5,$6)`,
		id, string(n.Type), n.CustomerID, n.BrandAgentID, data, n.CreatedAt)
	return err
}

// GetByID returns a notification by id.
func (r *NotificationRepository) GetByID(ctx context.Context, id string) (*domain.Notification, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}
	var (
		n    domain.Notification
		typ  string
		data []byte
	)
	err = r.pool.QueryRow(ctx, `SELECT type, customer_id, brand_agent_id, data, created_at FROM notifications WHERE id = $1`, uid).
		Scan(&typ, &n.CustomerID, &n.BrandAgentID, &data, &n.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err = json.Unmarshal(data, &n.Data); err != nil {
		return nil, fmt.Errorf("unmarshal notification data: %w", err)
	}
	n.ID = uid.String()
	n.Type = domain.NotificationType(typ)
	return &n, nil
}

var _ port.NotificationRepository = (*NotificationRepository)(nil)
