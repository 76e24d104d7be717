package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/portfolio/portfolio-backend/pkg/dto"
	"github.com/portfolio/portfolio-backend/pkg/logger"
)

type ctxKey string

const (
	requestIDKey ctxKey = "request_id"

	RequestIDHeader = "X-Request-ID"

	slowRequestThreshold = 500 * time.Millisecond
)

type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(data []byte) (int, error) {
	if rw.statusCode == 0 {
		rw.statusCode = http.StatusOK
	}
	n, err := rw.ResponseWriter.Write(data)
	rw.written += n
	return n, err
}

// RequestIDFromContext returns the ID assigned by LoggingMiddleware, or "" outside a request.
func RequestIDFromContext(ctx context.Context) string {
	if requestID, ok := ctx.Value(requestIDKey).(string); ok {
		return requestID
	}
	return ""
}

func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		requestID := uuid.New().String()

		ctx := context.WithValue(r.Context(), requestIDKey, requestID)
		r = r.WithContext(ctx)

		w.Header().Set(RequestIDHeader, requestID)

		wrapped := &responseWriter{
			ResponseWriter: w,
			statusCode:     0,
		}

		slog.Debug("HTTP Request started",
			slog.String("request_id", requestID),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr),
			slog.String("user_agent", r.UserAgent()),
		)

		next.ServeHTTP(wrapped, r)

		if wrapped.statusCode == 0 {
			wrapped.statusCode = http.StatusOK
		}

		duration := time.Since(start)

		logger.LogHTTPRequest(
			ctx,
			r.Method,
			r.URL.Path,
			r.UserAgent(),
			requestID,
			duration,
			wrapped.statusCode,
		)
		logger.LogSlowOperation(ctx, "http_request", duration, slowRequestThreshold)
	})
}

func PanicRecoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				requestID := RequestIDFromContext(r.Context())
				if requestID == "" {
					requestID = "unknown"
				}

				logger.WithRequestID(requestID).Error("Panic recovered in HTTP handler",
					slog.Any("panic", err),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
				)

				errDTO := dto.NewErr(http.StatusText(http.StatusInternalServerError))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte(errDTO.ToString()))
			}
		}()

		next.ServeHTTP(w, r)
	})
}
