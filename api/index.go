package handler

import (
	"jamat/config"
	"jamat/di"
	"jamat/shared/logger"
	"net/http"
	"sync"
)

var (
	service     http.Handler
	serviceOnce sync.Once
)

// Handler serves the API from a serverless function. The graph is built once per instance.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	serviceOnce.Do(func() {
		cfg := config.Get()

		logger.InitLogger()
		logger.Configure(cfg)

		service = di.InitializeService()
	})

	service.ServeHTTP(w, r)
}
