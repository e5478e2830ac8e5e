package partner

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"time"

	"creative-sync/internal/config/configs"
	"creative-sync/internal/core/domain"
	"creative-sync/internal/core/port"
)

// ErrSimulatedFailure is returned by SimulatedTransport for the share of
// calls selected to fail.
var ErrSimulatedFailure = errors.New("simulated partner failure")

// SimulatedTransport stands in for partner platforms during development.
// Each call waits for the configured delay and then fails with the
// configured probability.
type SimulatedTransport struct {
	delay       time.Duration
	failureRate float64
	rnd         func() float64
	logger      *slog.Logger
}

// NewSimulatedTransport creates a transport from cfg.
func NewSimulatedTransport(cfg configs.Partner, logger *slog.Logger) *SimulatedTransport {
	return &SimulatedTransport{
		delay:       cfg.SimulatedDelay,
		failureRate: cfg.SimulatedFailureRate,
		rnd:         rand.Float64,
		logger:      logger,
	}
}

func (t *SimulatedTransport) Sync(ctx context.Context, creative domain.Creative, partnerID string) error {
	if t.delay > 0 {
		timer := time.NewTimer(t.delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}

	if t.rnd() < t.failureRate {
		return ErrSimulatedFailure
	}
	t.logger.Debug("simulated partner sync",
		slog.String("creative_id", creative.ID),
		slog.String("sales_agent_id", partnerID),
	)
	return nil
}

var _ port.PartnerTransport = (*SimulatedTransport)(nil)
