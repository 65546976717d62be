package api

import (
	"context"
	"net/http"
	"pauta_voting_system/internal/metrics"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type contextKey string

const (
	requestIDHeader            = "X-Request-ID"
	requestIDKey    contextKey = "request_id"

	// Metrics label for requests no route matched; raw paths would make
	// the series count unbounded.
	unmatchedEndpoint = "unmatched"
)

// RequestID keeps an upstream X-Request-ID or generates a new one.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		w.Header().Set(requestIDHeader, requestID)

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, requestID)))
	})
}

func requestIDFrom(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}

// AccessLog logs every request and records it in the API metrics under its
// route pattern.
func AccessLog(logger *zap.SugaredLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			started := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			duration := time.Since(started)

			endpoint := unmatchedEndpoint
			if routeContext := chi.RouteContext(r.Context()); routeContext != nil && routeContext.RoutePattern() != "" {
				endpoint = routeContext.RoutePattern()
			}
			metrics.RecordAPIRequest(r.Method, endpoint, strconv.Itoa(status), duration)

			logger.Infow("request handled",
				"method", r.Method,
				"path", r.URL.Path,
				"status", status,
				"duration", duration,
				"remoteAddr", r.RemoteAddr,
				"requestID", requestIDFrom(r.Context()),
			)
		})
	}
}
