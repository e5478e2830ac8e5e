package partner

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"creative-sync/internal/config/configs"
	"creative-sync/internal/core/domain"
)

var testCreative = domain.Creative{
	ID:           "c1",
	Name:         "Spring Launch 30s",
	Format:       "video/standard",
	BrandAgentID: "42",
	CustomerID:   7,
}

func newTestTransport(baseURL string) *HTTPTransport {
	tr := NewHTTPTransport(configs.Partner{
		BaseURL:    baseURL + "/",
		JWTSecret:  "s3cret",
		JWTIssuer:  "creative-sync",
		Timeout:    time.Second,
		MaxRetries: 2,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	tr.initialInterval = time.Millisecond
	return tr
}

func TestHTTPTransport_Sync(t *testing.T) {
	got := make(chan creativePayload, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/partners/p%201/creatives", r.URL.EscapedPath())
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		raw := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		claims := &jwt.RegisteredClaims{}
		_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
			return []byte("s3cret"), nil
		}, jwt.WithValidMethods([]string{"HS256"}), jwt.WithAudience("p 1"), jwt.WithIssuer("creative-sync"))
		assert.NoError(t, err)

		var payload creativePayload
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		got <- payload
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	err := newTestTransport(srv.URL).Sync(context.Background(), testCreative, "p 1")
	require.NoError(t, err)
	assert.Equal(t, creativePayload{ID: "c1", Name: "Spring Launch 30s", Format: "video/standard", BrandAgentID: "42", CustomerID: 7}, <-got)
}

func TestHTTPTransport_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			http.Error(w, "upstream busy", http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	require.NoError(t, newTestTransport(srv.URL).Sync(context.Background(), testCreative, "p1"))
	assert.Equal(t, int32(3), calls.Load())
}

func TestHTTPTransport_GivesUpAfterMaxRetries(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	err := newTestTransport(srv.URL).Sync(context.Background(), testCreative, "p1")
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusServiceUnavailable, statusErr.Code)
	assert.Equal(t, "down", statusErr.Body)
	assert.Equal(t, int32(3), calls.Load())
}

func TestHTTPTransport_ClientErrorIsFinal(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "unsupported format", http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	err := newTestTransport(srv.URL).Sync(context.Background(), testCreative, "p1")
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusUnprocessableEntity, statusErr.Code)
	assert.Contains(t, err.Error(), "unsupported format")
	assert.Equal(t, int32(1), calls.Load())
}

func TestHTTPTransport_AttemptTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	tr := newTestTransport(srv.URL)
	tr.timeout = 20 * time.Millisecond
	tr.maxRetries = 0

	err := tr.Sync(context.Background(), testCreative, "p1")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestSimulatedTransport(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tr := NewSimulatedTransport(configs.Partner{SimulatedFailureRate: 0.5}, logger)

	tr.rnd = func() float64 { return 0.7 }
	assert.NoError(t, tr.Sync(context.Background(), testCreative, "p1"))

	tr.rnd = func() float64 { return 0.2 }
	assert.ErrorIs(t, tr.Sync(context.Background(), testCreative, "p1"), ErrSimulatedFailure)
}

func TestSimulatedTransport_HonoursCancellation(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tr := NewSimulatedTransport(configs.Partner{SimulatedDelay: time.Hour}, logger)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, tr.Sync(ctx, testCreative, "p1"), context.Canceled)
}
