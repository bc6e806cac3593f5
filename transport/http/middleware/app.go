package middleware

import (
	"context"
	"fmt"
	"jamat/config"
	"jamat/infras/otel"
	"jamat/shared/cache"
	"jamat/shared/constant"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

const (
	otelHTTPScopeName = "http"
)

type AppMiddleware interface {
	Tracing(next http.Handler) http.Handler
	RequestLogger(next http.Handler) http.Handler
	RateLimit(next http.Handler) http.Handler
}

type appMiddleware struct {
	otel   otel.Otel
	config *config.Config
	cache  cache.RedisCache
}

func NewAppMiddleware(otel otel.Otel, config *config.Config, cache cache.RedisCache) AppMiddleware {
	return &appMiddleware{
		otel:   otel,
		config: config,
		cache:  cache,
	}
}

func (a *appMiddleware) Tracing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		spanName := fmt.Sprintf("%s %s", r.Method, r.URL.Path)

		ctx, scope := a.otel.NewScope(r.Context(), otelHTTPScopeName, spanName)
		defer scope.End()

		scope.SetAttributes(map[string]any{
			"app.name":        a.config.App.Name,
			"http.path":       r.URL.Path,
			"http.method":     r.Method,
			"http.user_agent": r.Header.Get(constant.RequestHeaderUserAgent),
			"http.host":       r.Host,
			"http.source":     clientIP(r),
			"http.request_id": chiMiddleware.GetReqID(r.Context()),
		})

		ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r.WithContext(ctx))

		attributes := map[string]any{
			"http.status_code": status(ww),
		}

		if rctx := chi.RouteContext(ctx); rctx != nil && rctx.RoutePattern() != "" {
			attributes["http.route"] = rctx.RoutePattern()
		}

		scope.SetAttributes(attributes)

		if status(ww) >= http.StatusInternalServerError {
			scope.TraceError(fmt.Errorf("%s responded %d", spanName, status(ww)))
		}
	})
}

// RequestLogger logs one line per request and echoes the request id back to the client.
func (a *appMiddleware) RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := chiMiddleware.GetReqID(r.Context())

		if requestID != "" {
			w.Header().Set(constant.RequestHeaderRequestID, requestID)
			r = r.WithContext(context.WithValue(r.Context(), constant.ContextKeyRequestID, requestID))
		}

		ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			event := log.Info()
			if status(ww) >= http.StatusInternalServerError {
				event = log.Error()
			}

			event.
				Str("request_id", requestID).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", status(ww)).
				Int("bytes", ww.BytesWritten()).
				Dur("duration", time.Since(start)).
				Msg("request completed")
		}()

		next.ServeHTTP(ww, r)
	})
}

func status(ww chiMiddleware.WrapResponseWriter) int {
	if ww.Status() == 0 {
		return http.StatusOK
	}

	return ww.Status()
}
