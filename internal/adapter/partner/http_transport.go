// Package partner delivers creatives to sales agent platforms.
package partner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/golang-jwt/jwt/v5"

	"creative-sync/internal/config/configs"
	"creative-sync/internal/core/domain"
	"creative-sync/internal/core/port"
)

const tokenTTL = 5 * time.Minute

// StatusError is returned when a partner answers with a non-2xx status.
type StatusError struct {
	PartnerID string
	Code      int
	Body      string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("partner %s responded %d", e.PartnerID, e.Code)
	}
	return fmt.Sprintf("partner %s responded %d: %s", e.PartnerID, e.Code, e.Body)
}

type creativePayload struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Format       string `json:"format"`
	BrandAgentID string `json:"brandAgentId"`
	CustomerID   int64  `json:"customerId"`
}

// HTTPTransport posts creatives to partner endpoints under BaseURL. Every
// request carries a short-lived HS256 bearer token. Server errors and
// network failures are retried with exponential backoff; 4xx answers are
// final.
type HTTPTransport struct {
	client          *http.Client
	baseURL         string
	secret          []byte
	issuer          string
	timeout         time.Duration
	maxRetries      uint64
	initialInterval time.Duration
	logger          *slog.Logger
	now             func() time.Time
}

// NewHTTPTransport creates a transport from cfg.
func NewHTTPTransport(cfg configs.Partner, logger *slog.Logger) *HTTPTransport {
	return &HTTPTransport{
		client:          &http.Client{},
		baseURL:         strings.TrimRight(cfg.BaseURL, "/"),
		secret:          []byte(cfg.JWTSecret),
		issuer:          cfg.JWTIssuer,
		timeout:         cfg.Timeout,
		maxRetries:      cfg.MaxRetries,
		initialInterval: backoff.DefaultInitialInterval,
		logger:          logger,
		now:             time.Now,
	}
}

// Sync delivers creative to the partner.
func (t *HTTPTransport) Sync(ctx context.Context, creative domain.Creative, partnerID string) error {
	body, err := json.Marshal(creativePayload{
		ID:           creative.ID,
		Name:         creative.Name,
		Format:       creative.Format,
		BrandAgentID: creative.BrandAgentID,
		CustomerID:   creative.CustomerID,
	})
	if err != nil {
		return fmt.Errorf("marshal creative: %w", err)
	}
	endpoint := t.baseURL + "/partners/" + url.PathEscape(partnerID) + "/creatives"

	attempt := 0
	op := func() error {
		attempt++
		err := t.post(ctx, endpoint, partnerID, body)
		if err != nil {
			t.logger.Debug("partner sync attempt failed",
				slog.String("sales_agent_id", partnerID),
				slog.Int("attempt", attempt),
				slog.Any("error", err),
			)
		}
		return err
	}
	return backoff.Retry(op, t.policy(ctx))
}

func (t *HTTPTransport) post(ctx context.Context, endpoint, partnerID string, body []byte) error {
	if t.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return backoff.Permanent(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if len(t.secret) > 0 {
		token, err := t.token(partnerID)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("sign partner token: %w", err))
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return backoff.Permanent(&StatusError{PartnerID: partnerID, Code: resp.StatusCode, Body: strings.TrimSpace(string(msg))})
	default:
		return &StatusError{PartnerID: partnerID, Code: resp.StatusCode, Body: strings.TrimSpace(string(msg))}
	}
}

func (t *HTTPTransport) token(partnerID string) (string, error) {
	now := t.now()
	claims := jwt.RegisteredClaims{
		Issuer:    t.issuer,
		Audience:  jwt.ClaimStrings{partnerID},
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

func (t *HTTPTransport) policy(ctx context.Context) backoff.BackOff {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = t.initialInterval
	return backoff.WithContext(backoff.WithMaxRetries(exp, t.maxRetries), ctx)
}

var _ port.PartnerTransport = (*HTTPTransport)(nil)
