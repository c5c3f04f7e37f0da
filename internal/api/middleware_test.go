package api

import (
	"net/http"
	"testing"

	"shareit/internal/config"
	"shareit/internal/database"
	"shareit/internal/repository"
	"shareit/internal/service"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newThrottledServer(t *testing.T, requests int) http.Handler {
	t.Helper()
	logger := zerolog.Nop()
	db, err := database.NewDB(":memory:", &logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	srv := NewHTTPServer(
		config.HTTPConfig{Port: 8080},
		config.RateLimitConfig{Requests: requests, Window: 60},
		service.NewBookingService(db, nil, &logger),
		service.NewItemService(db, &logger),
		service.NewUserService(db, &logger),
		service.NewRequestService(db, &logger),
		repository.NewMemoryRateLimiter(),
		&logger,
	)
	return srv.Handler()
}

func TestRateLimitMiddleware(t *testing.T) {
	handler := newThrottledServer(t, 2)
	userID := createUserHTTP(t, handler, "Alice", "alice@example.com")

	rec := doJSON(t, handler, http.MethodGet, "/bookings", userID, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = doJSON(t, handler, http.MethodGet, "/bookings", userID, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, handler, http.MethodGet, "/bookings", userID, nil)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestRateLimitSkipsAnonymous(t *testing.T) {
	handler := newThrottledServer(t, 1)

	// No identity header: the limiter never engages, health stays open.
	for i := 0; i < 5; i++ {
		rec := doJSON(t, handler, http.MethodGet, "/health", 0, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestRequestIDHeader(t *testing.T) {
	handler := newTestServer(t)

	rec := doJSON(t, handler, http.MethodGet, "/health", 0, nil)
	assert.NotEmpty(t, rec.Header().Get(requestIDHeader))
}
