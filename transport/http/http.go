package http

import (
	"context"
	"errors"
	"jamat/config"
	"jamat/infras/database"
	"jamat/shared/constant"
	"jamat/transport/http/middleware"
	"jamat/transport/http/response"
	"jamat/transport/http/router"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "jamat/docs" // swagger spec
)

type ServerState int32

const (
	ServerStateReady ServerState = iota + 1
	ServerStateInGracePeriod
	ServerStateInCleanupPeriod
)

const healthCheckTimeout = 3 * time.Second

type HTTP struct {
	Config         *config.Config
	Router         router.Router
	DB             *database.Connection
	AppMiddleware  middleware.AppMiddleware
	AuthMiddleware middleware.Auth

	state  atomic.Int32
	mux    *chi.Mux
	server *http.Server
	once   sync.Once
}

func New(
	cfg *config.Config,
	r router.Router,
	db *database.Connection,
	appMiddleware middleware.AppMiddleware,
	authMiddleware middleware.Auth,
) *HTTP {
	return &HTTP{
		Config:         cfg,
		Router:         r,
		DB:             db,
		AppMiddleware:  appMiddleware,
		AuthMiddleware: authMiddleware,
	}
}

func (h *HTTP) Serve() {
	h.setup()
	h.setupGracefulShutdown()

	h.server = &http.Server{
		Addr:              net.JoinHostPort(h.Config.Server.Host, h.Config.Server.Port),
		Handler:           h.mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Info().Str("port", h.Config.Server.Port).Msg("Starting up HTTP server.")

	if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("Failed to start HTTP server")
	}
}

// ServeHTTP lets the service run behind a serverless entry point.
func (h *HTTP) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.setup()
	h.mux.ServeHTTP(w, r)
}

func (h *HTTP) State() ServerState {
	return ServerState(h.state.Load())
}

func (h *HTTP) setState(state ServerState) {
	h.state.Store(int32(state))
}

func (h *HTTP) setup() {
	h.once.Do(func() {
		h.setupRoutes()
		h.setState(ServerStateReady)
	})
}

func (h *HTTP) setupRoutes() {
	h.mux = chi.NewRouter()

	h.mux.Use(chiMiddleware.RequestID)
	h.mux.Use(h.AppMiddleware.RequestLogger)
	h.mux.Use(chiMiddleware.Recoverer)
	h.mux.Use(h.rejectWhenShuttingDown)

	if timeout := h.Config.Server.RequestTimeoutSeconds; timeout > 0 {
		h.mux.Use(chiMiddleware.Timeout(time.Duration(timeout) * time.Second))
	}

	if h.Config.App.CORS.Enable {
		h.mux.Use(cors.Handler(cors.Options{
			AllowedOrigins:   h.Config.App.CORS.AllowedOrigins,
			AllowedMethods:   h.Config.App.CORS.AllowedMethods,
			AllowedHeaders:   h.Config.App.CORS.AllowedHeaders,
			AllowCredentials: h.Config.App.CORS.AllowCredentials,
			MaxAge:           h.Config.App.CORS.MaxAgeSeconds,
		}))
	}

	h.mux.Use(h.AppMiddleware.Tracing)
	h.mux.Use(h.AppMiddleware.RateLimit)

	h.mux.Get("/health", h.health)
	h.mux.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	h.mux.Group(func(r chi.Router) {
		r.Use(h.AuthMiddleware.Auth)
		h.Router.SetupRoutes(r)
	})
}

func (h *HTTP) health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	if err := h.DB.Ping(ctx); err != nil {
		log.Error().Err(err).Msg("health check failed")
		response.WithUnhealthy(w)

		return
	}

	response.WithMessage(w, http.StatusOK, "OK")
}

func (h *HTTP) rejectWhenShuttingDown(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.State() == ServerStateInCleanupPeriod {
			response.WithPreparingShutdown(w)

			return
		}

		next.ServeHTTP(w, r)
	})
}

func (h *HTTP) setupGracefulShutdown() {
	serverStateCh := make(chan os.Signal, 1)

	signal.Notify(serverStateCh, os.Interrupt, syscall.SIGTERM)

	go h.respondToSigterm(serverStateCh)
}

// respondToSigterm keeps serving through the grace period, then refuses new work and drains in-flight requests.
func (h *HTTP) respondToSigterm(done chan os.Signal) {
	<-done

	if h.Config.Server.Env == constant.ServerEnvDevelopment {
		log.Warn().Msg("Received SIGTERM. Shutting down now.")
		h.shutdown(0)

		return
	}

	shutdownConfig := h.Config.Server.Shutdown

	log.Info().Msg("Received SIGTERM.")
	log.Info().Int64("seconds", shutdownConfig.GracePeriodSeconds).Msg("Entering grace period.")

	h.setState(ServerStateInGracePeriod)

	time.Sleep(time.Duration(shutdownConfig.GracePeriodSeconds) * time.Second)

	log.Info().Int64("seconds", shutdownConfig.CleanupPeriodSeconds).Msg("Entering cleanup period.")

	h.setState(ServerStateInCleanupPeriod)

	h.shutdown(time.Duration(shutdownConfig.CleanupPeriodSeconds) * time.Second)

	log.Info().Msg("Cleaning up completed. Shutting down now.")
}

func (h *HTTP) shutdown(timeout time.Duration) {
	if h.server == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), max(timeout, time.Second))
	defer cancel()

	if err := h.server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("HTTP server did not shut down cleanly")
	}
}
