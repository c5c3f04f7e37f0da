package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"shareit/internal/config"
	"shareit/internal/database"
	"shareit/internal/domain"
	"shareit/internal/models"
	"shareit/internal/service"

	"github.com/rs/zerolog"
)

// identityHeader carries the acting user's id on every request.
const identityHeader = "X-Sharer-User-Id"

// HTTPServer exposes the sharing API over plain net/http.
type HTTPServer struct {
	cfg      config.HTTPConfig
	bookings domain.BookingService
	items    domain.ItemService
	users    domain.UserService
	requests domain.RequestService
	limiter  domain.RateLimiter
	limits   config.RateLimitConfig
	server   *http.Server
	logger   *zerolog.Logger
}

func NewHTTPServer(
	cfg config.HTTPConfig,
	limits config.RateLimitConfig,
	bookings domain.BookingService,
	items domain.ItemService,
	users domain.UserService,
	requests domain.RequestService,
	limiter domain.RateLimiter,
	logger *zerolog.Logger,
) *HTTPServer {
	srv := &HTTPServer{
		cfg:      cfg,
		limits:   limits,
		bookings: bookings,
		items:    items,
		users:    users,
		requests: requests,
		limiter:  limiter,
		logger:   logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/health", srv.handleHealth)

	mux.HandleFunc("/bookings", srv.handleBookings)
	mux.HandleFunc("/bookings/owner", srv.handleBookingsOwner)
	mux.HandleFunc("/bookings/export", srv.handleBookingsExport)
	mux.HandleFunc("/bookings/", srv.handleBookingByID)

	mux.HandleFunc("/items", srv.handleItems)
	mux.HandleFunc("/items/search", srv.handleItemsSearch)
	mux.HandleFunc("/items/", srv.handleItemByID)

	mux.HandleFunc("/users", srv.handleUsers)
	mux.HandleFunc("/users/", srv.handleUserByID)

	mux.HandleFunc("/requests", srv.handleRequests)
	mux.HandleFunc("/requests/all", srv.handleRequestsAll)
	mux.HandleFunc("/requests/", srv.handleRequestByID)

	handler := srv.requestIDMiddleware(srv.loggingMiddleware(srv.rateLimitMiddleware(mux)))

	srv.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
	}

	return srv
}

func (s *HTTPServer) Start() error {
	if s.server == nil {
		return fmt.Errorf("http server is not initialized")
	}
	s.logger.Info().Str("addr", s.server.Addr).Msg("HTTP API listening")
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *HTTPServer) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// Handler returns the configured root handler, used by tests.
func (s *HTTPServer) Handler() http.Handler {
	return s.server.Handler
}

func (s *HTTPServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// userID extracts the acting user from the identity header.
func userID(r *http.Request) (int64, error) {
	raw := strings.TrimSpace(r.Header.Get(identityHeader))
	if raw == "" {
		return 0, fmt.Errorf("%s header is required", identityHeader)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%s header must be a positive integer", identityHeader)
	}
	return id, nil
}

// pageWindow parses from/size query parameters with defaults.
func pageWindow(r *http.Request) (from, size int, err error) {
	from = 0
	size = models.DefaultPageSize

	if raw := r.URL.Query().Get("from"); raw != "" {
		from, err = strconv.Atoi(raw)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid from parameter: %s", raw)
		}
	}
	if raw := r.URL.Query().Get("size"); raw != "" {
		size, err = strconv.Atoi(raw)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid size parameter: %s", raw)
		}
	}
	return from, size, nil
}

func pathID(r *http.Request, prefix string) (int64, bool) {
	raw := strings.TrimPrefix(r.URL.Path, prefix)
	raw = strings.Trim(raw, "/")
	if raw == "" || strings.Contains(raw, "/") {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func decodeJSON(r *http.Request, dst any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dst)
}

// writeDomainError maps the closed error set to transport status codes.
// Unclassified errors become an opaque 500 so internals never leak.
func (s *HTTPServer) writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidPeriod),
		errors.Is(err, service.ErrInvalidPagination),
		errors.Is(err, service.ErrUnknownState),
		errors.Is(err, service.ErrItemUnavailable),
		errors.Is(err, service.ErrNoCompletedBooking),
		errors.Is(err, service.ErrEmptyText):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, database.ErrUserNotFound),
		errors.Is(err, database.ErrItemNotFound),
		errors.Is(err, database.ErrBookingNotFound),
		errors.Is(err, database.ErrRequestNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrAlreadyApproved),
		errors.Is(err, database.ErrConcurrentModification),
		errors.Is(err, database.ErrDuplicateEmail):
		writeError(w, http.StatusConflict, err.Error())
	default:
		s.logger.Error().Err(err).Str("path", r.URL.Path).Msg("unhandled error")
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]string{"error": message})
}
