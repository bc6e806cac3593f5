package middleware

import (
	"jamat/shared"
	"jamat/shared/constant"
	"jamat/transport/http/response"
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	cacheKeyRateLimit = "limiter"
)

// RateLimit counts requests per client in a fixed window. Requests pass when the counter store is unavailable.
func (a *appMiddleware) RateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !a.config.App.RateLimiter.Enable {
			next.ServeHTTP(w, r)

			return
		}

		maxReqs := a.config.App.RateLimiter.MaxRequests
		windowSecs := a.config.App.RateLimiter.WindowSeconds

		cacheKey := shared.BuildCacheKey(cacheKeyRateLimit, clientIP(r), userAgent(r))

		count, err := a.cache.Increment(r.Context(), cacheKey, windowSecs)
		if err != nil {
			log.Warn().Err(err).Msg("rate limiter unavailable, letting request through")
			next.ServeHTTP(w, r)

			return
		}

		w.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(maxReqs))
		w.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.FormatInt(max(0, int64(maxReqs)-count), 10))
		w.Header().Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(windowSecs))

		if count > int64(maxReqs) {
			response.WithRequestLimitExceeded(w)

			return
		}

		next.ServeHTTP(w, r)
	})
}

func userAgent(r *http.Request) string {
	ua := r.Header.Get(constant.RequestHeaderUserAgent)
	if ua == "" {
		ua = "unknown"
	}

	return ua
}

func clientIP(r *http.Request) string {
	// X-Forwarded-For may carry a chain, the first entry is the client
	if xff := r.Header.Get(constant.RequestHeaderForwardedFor); xff != "" {
		if commaIdx := strings.Index(xff, ","); commaIdx > 0 {
			return strings.TrimSpace(xff[:commaIdx])
		}

		return strings.TrimSpace(xff)
	}

	if xri := r.Header.Get(constant.RequestHeaderRealIP); xri != "" {
		return strings.TrimSpace(xri)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
