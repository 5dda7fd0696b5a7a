package http

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"luxhome/config"
	"luxhome/infras/otel"
	"luxhome/infras/postgres"
	"luxhome/shared/constant"
	"luxhome/shared/metrics"
	"luxhome/transport/http/middleware"
	"luxhome/transport/http/response"
	"luxhome/transport/http/router"

	// swagger definitions
	_ "luxhome/docs"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	httpSwagger "github.com/swaggo/http-swagger"
)

const (
	readHeaderTimeout  = 10 * time.Second
	healthCheckTimeout = 2 * time.Second
)

type ServerState int

const (
	ServerStateReady ServerState = iota + 1
	ServerStateInGracePeriod
	ServerStateInCleanupPeriod
)

type HTTP struct {
	Config   *config.Config
	Router   router.Router
	App      middleware.AppMiddleware
	AuthRole middleware.AuthRole
	Metrics  *metrics.Registry
	DB       *postgres.Connection
	Redis    *goRedis.Client
	Tracer   otel.Otel
	State    ServerState
	mux      *chi.Mux
	server   *http.Server
}

func New(
	cfg *config.Config,
	r router.Router,
	app middleware.AppMiddleware,
	authRole middleware.AuthRole,
	registry *metrics.Registry,
	db *postgres.Connection,
	redisClient *goRedis.Client,
	tracer otel.Otel,
) *HTTP {
	return &HTTP{
		Config:   cfg,
		Router:   r,
		App:      app,
		AuthRole: authRole,
		Metrics:  registry,
		DB:       db,
		Redis:    redisClient,
		Tracer:   tracer,
	}
}

func (h *HTTP) Serve() {
	h.setup()

	h.server = &http.Server{
		Addr:              net.JoinHostPort(h.Config.Server.Host, h.Config.Server.Port),
		Handler:           h.mux,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	log.Info().Str("port", h.Config.Server.Port).Msg("Starting up HTTP server.")

	if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("Failed to start HTTP server")
	}
}

// ServeHTTP lets the service run behind another http.Server.
func (h *HTTP) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.mux == nil {
		h.setupRoutes()
		h.State = ServerStateReady
	}

	h.mux.ServeHTTP(w, r)
}

func (h *HTTP) setup() {
	h.setupRoutes()
	h.setupGracefulShutdown()
	h.State = ServerStateReady
}

func (h *HTTP) setupRoutes() {
	h.mux = chi.NewRouter()

	h.mux.Use(chiMiddleware.RequestID)
	h.mux.Use(chiMiddleware.Recoverer)
	h.setupCORS()
	h.mux.Use(h.App.Tracing)
	h.mux.Use(h.App.Observe)
	h.mux.Use(h.App.RateLimit())

	h.mux.Get("/health", h.health)

	if h.Config.External.Metrics.Enable && h.Metrics != nil {
		h.mux.Method(http.MethodGet, "/metrics", h.Metrics.Handler())
	}

	if h.Config.Server.Env != constant.ServerEnvProduction {
		h.mux.Get("/swagger/*", httpSwagger.WrapHandler)
	}

	h.mux.Group(func(secured chi.Router) {
		secured.Use(h.AuthRole.APIKey)
		secured.Use(h.AuthRole.Auth)
		secured.Use(h.AuthRole.RBAC)

		h.Router.SetupRoutes(secured)
	})
}

func (h *HTTP) setupCORS() {
	corsConfig := h.Config.App.CORS
	if !corsConfig.Enable {
		return
	}

	h.mux.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsConfig.AllowedOrigins,
		AllowedMethods:   corsConfig.AllowedMethods,
		AllowedHeaders:   corsConfig.AllowedHeaders,
		AllowCredentials: corsConfig.AllowCredentials,
		MaxAge:           corsConfig.MaxAgeSeconds,
	}))
}

func (h *HTTP) health(w http.ResponseWriter, r *http.Request) {
	switch h.State {
	case ServerStateReady:
		ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
		defer cancel()

		if err := h.ping(ctx); err != nil {
			log.Error().Err(err).Msg("health check failed")
			response.WithUnhealthy(w)

			return
		}

		response.WithMessage(w, http.StatusOK, "OK")
	case ServerStateInGracePeriod, ServerStateInCleanupPeriod:
		response.WithPreparingShutdown(w)
	default:
		response.WithUnhealthy(w)
	}
}

// ping checks the stores a tour request depends on.
func (h *HTTP) ping(ctx context.Context) error {
	if h.DB != nil {
		if err := h.DB.Ping(ctx); err != nil {
			return fmt.Errorf("postgres: %w", err)
		}
	}

	if h.Redis != nil {
		if err := h.Redis.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis: %w", err)
		}
	}

	return nil
}

func (h *HTTP) setupGracefulShutdown() {
	serverStateCh := make(chan os.Signal, 1)

	signal.Notify(serverStateCh, os.Interrupt, syscall.SIGTERM)

	go h.respondToSigterm(serverStateCh)
}

func (h *HTTP) respondToSigterm(done chan os.Signal) {
	<-done

	defer os.Exit(0)

	if h.Config.Server.Env == constant.ServerEnvDevelopment {
		log.Warn().Msg("Received SIGTERM. Shutting down now.")

		return
	}

	shutdownConfig := h.Config.Server.Shutdown

	log.Info().Msg("Received SIGTERM.")
	log.Info().Int64("seconds", shutdownConfig.GracePeriodSeconds).Msg("Entering grace period.")

	h.State = ServerStateInGracePeriod

	time.Sleep(time.Duration(shutdownConfig.GracePeriodSeconds) * time.Second)

	log.Info().Int64("seconds", shutdownConfig.CleanupPeriodSeconds).Msg("Entering cleanup period.")

	h.State = ServerStateInCleanupPeriod

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(shutdownConfig.CleanupPeriodSeconds)*time.Second)
	defer cancel()

	if h.server != nil {
		if err := h.server.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("HTTP server shutdown did not complete")
		}
	}

	if h.DB != nil {
		if err := h.DB.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close database connections")
		}
	}

	if h.Redis != nil {
		if err := h.Redis.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close redis connection")
		}
	}

	if h.Tracer != nil {
		if err := h.Tracer.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("failed to flush traces")
		}
	}

	log.Info().Msg("Cleaning up completed. Shutting down now.")
}
