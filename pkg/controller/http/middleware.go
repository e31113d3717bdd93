package http

import (
	"context"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/combine/pkg/utils/logging"
)

// LoggingMiddleware returns a middleware that logs HTTP requests. It also
// puts a request scoped logger and a cloned Sentry hub into the request
// context.
func LoggingMiddleware(ctx context.Context) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			reqID := middleware.GetReqID(r.Context())
			logger := logging.From(ctx).With("request_id", reqID)

			hub := sentry.CurrentHub().Clone()
			hub.Scope().SetTag("request_id", reqID)

			reqCtx := logging.With(r.Context(), logger)
			reqCtx = sentry.SetHubOnContext(reqCtx, hub)
			r = r.WithContext(reqCtx)

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				logger.Info("HTTP request",
					"method", r.Method,
					"uri", r.RequestURI,
					"status", ww.Status(),
					"bytes", ww.BytesWritten(),
					"duration_ms", time.Since(start).Milliseconds(),
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

// writeNotFound writes the 404 response of a rejected combo request
func writeNotFound(w http.ResponseWriter, uri string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusNotFound)
	_, _ = w.Write([]byte("not found: " + uri + "\n"))
}
