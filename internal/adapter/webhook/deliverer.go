// Package webhook pushes stored notifications to agent systems.
package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"

	"creative-sync/internal/config/configs"
	"creative-sync/internal/core/domain"
	"creative-sync/internal/core/port"
)

// SignatureHeader carries the hex HMAC-SHA256 of the request body,
// prefixed with "sha256=".
const SignatureHeader = "X-Signature-256"

// Payload is the JSON body posted for a notification.
type Payload struct {
	ID           string                  `json:"id"`
	Type         domain.NotificationType `json:"type"`
	CustomerID   int64                   `json:"customerId"`
	BrandAgentID *string                 `json:"brandAgentId,omitempty"`
	Data         domain.NotificationData `json:"data"`
	CreatedAt    time.Time               `json:"createdAt"`
}

// Deliverer posts notifications to a single configured URL.
type Deliverer struct {
	repo            port.NotificationRepository
	client          *http.Client
	url             string
	secret          []byte
	maxRetries      uint64
	initialInterval time.Duration
	logger          *slog.Logger
}

// NewDeliverer creates a deliverer that reads notifications from repo.
func NewDeliverer(repo port.NotificationRepository, cfg configs.Webhook, logger *slog.Logger) *Deliverer {
	return &Deliverer{
		repo:            repo,
		client:          &http.Client{Timeout: cfg.Timeout},
		url:             cfg.URL,
		secret:          []byte(cfg.Secret),
		maxRetries:      cfg.MaxRetries,
		initialInterval: backoff.DefaultInitialInterval,
		logger:          logger,
	}
}

// Deliver loads the notification and posts it, retrying on network errors
// and 5xx answers.
func (d *Deliverer) Deliver(ctx context.Context, notificationID string) error {
	n, err := d.repo.GetByID(ctx, notificationID)
	if err != nil {
		return fmt.Errorf("load notification: %w", err)
	}
	if n == nil {
		return fmt.Errorf("notification %s: %w", notificationID, domain.ErrNotFound)
	}

	body, err := json.Marshal(Payload{
		ID:           n.ID,
		Type:         n.Type,
		CustomerID:   n.CustomerID,
		BrandAgentID: n.BrandAgentID,
		Data:         n.Data,
		CreatedAt:    n.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}
	signature := Sign(d.secret, body)

	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = d.initialInterval
	policy := backoff.WithContext(backoff.WithMaxRetries(exp, d.maxRetries), ctx)

	err = backoff.Retry(func() error { return d.post(ctx, body, signature) }, policy)
	if err != nil {
		return err
	}
	d.logger.Debug("webhook delivered",
		slog.String("notification_id", n.ID),
		slog.String("type", string(n.Type)),
	)
	return nil
}

func (d *Deliverer) post(ctx context.Context, body []byte, signature string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.url, bytes.NewReader(body))
	if err != nil {
		return backoff.Permanent(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if signature != "" {
		req.Header.Set(SignatureHeader, signature)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return err
	}
	_ = resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return backoff.Permanent(fmt.Errorf("webhook responded %d", resp.StatusCode))
	default:
		return fmt.Errorf("webhook responded %d", resp.StatusCode)
	}
}

// Sign returns the signature header value for body, or "" without a secret.
func Sign(secret, body []byte) string {
	if len(secret) == 0 {
		return ""
	}
	mac := hmac.New(sha256.New, secret)
	mac.Write(body)
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

// LogDeliverer stands in when no webhook URL is configured. It only logs.
type LogDeliverer struct {
	logger *slog.Logger
}

// NewLogDeliverer returns a deliverer that logs notification ids.
func NewLogDeliverer(logger *slog.Logger) *LogDeliverer {
	return &LogDeliverer{logger: logger}
}

func (d *LogDeliverer) Deliver(_ context.Context, notificationID string) error {
	d.logger.Info("notification ready", slog.String("notification_id", notificationID))
	return nil
}

var (
	_ port.WebhookDeliverer = (*Deliverer)(nil)
	_ port.WebhookDeliverer = (*LogDeliverer)(nil)
)
