package middleware_test

import (
	"errors"
	"jamat/config"
	otelMocks "jamat/infras/otel/mocks"
	"jamat/shared"
	"jamat/shared/cache/mocks"
	"jamat/shared/constant"
	"jamat/transport/http/middleware"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func limiterConfig(enable bool) *config.Config {
	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = enable
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 60

	return cfg
}

func TestRateLimit(t *testing.T) {
	key := shared.BuildCacheKey("limiter", "10.0.0.1", "jamat-test")

	tests := []struct {
		name          string
		enable        bool
		count         int64
		err           error
		wantStatus    int
		wantRemaining string
	}{
		{name: "first request", enable: true, count: 1, wantStatus: http.StatusOK, wantRemaining: "1"},
		{name: "last allowed", enable: true, count: 2, wantStatus: http.StatusOK, wantRemaining: "0"},
		{name: "over the limit", enable: true, count: 3, wantStatus: http.StatusTooManyRequests, wantRemaining: "0"},
		{name: "counter unavailable", enable: true, err: errors.New("redis down"), wantStatus: http.StatusOK},
		{name: "disabled", enable: false, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			cache := mocks.NewMockRedisCache(ctrl)

			if tt.enable {
				cache.EXPECT().Increment(gomock.Any(), key, 60).Return(tt.count, tt.err)
			}

			mw := middleware.NewAppMiddleware(otelMocks.NewOtel(), limiterConfig(tt.enable), cache)
			handler := mw.RateLimit(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))

			request := httptest.NewRequest(http.MethodGet, "/v1/visits", nil)
			request.Header.Set(constant.RequestHeaderForwardedFor, "10.0.0.1, 172.16.0.1")
			request.Header.Set(constant.RequestHeaderUserAgent, "jamat-test")

			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			assert.Equal(t, tt.wantRemaining, recorder.Header().Get(constant.RequestHeaderRateLimitRemaining))
		})
	}
}
