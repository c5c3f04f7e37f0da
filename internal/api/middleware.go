package api

import (
	"net/http"
	"strconv"
	"time"

	"shareit/internal/metrics"

	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-Id"

// statusRecorder запоминает код ответа для логирования
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// requestIDMiddleware tags every request with an id for log correlation.
// A client-supplied id is kept, otherwise one is generated.
func (s *HTTPServer) requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		r.Header.Set(requestIDHeader, id)
		next.ServeHTTP(w, r)
	})
}

func (s *HTTPServer) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(recorder, r)

		metrics.IncHTTP(r.URL.Path, strconv.Itoa(recorder.status))
		s.logger.Info().
			Str("request_id", r.Header.Get(requestIDHeader)).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", recorder.status).
			Dur("duration", time.Since(start)).
			Msg("HTTP request")
	})
}

// rateLimitMiddleware throttles per user. Requests without the identity
// header pass through, the handlers reject those themselves.
func (s *HTTPServer) rateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.limiter == nil || s.limits.Requests <= 0 {
			next.ServeHTTP(w, r)
			return
		}

		id, err := userID(r)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		window := time.Duration(s.limits.Window) * time.Second
		allowed, err := s.limiter.Allow(r.Context(), id, s.limits.Requests, window)
		if err != nil {
			s.logger.Error().Err(err).Int64("user_id", id).Msg("rate limiter error")
			next.ServeHTTP(w, r)
			return
		}
		if !allowed {
			writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}

		next.ServeHTTP(w, r)
	})
}
