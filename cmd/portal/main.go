// @title RSVP Portal API
// @version 1.0
// @description Session-scoped gateway in front of the RSVP REST API.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"rsvpportal/config"
	"rsvpportal/internal/adapters/api"
	"rsvpportal/internal/adapters/auth"
	"rsvpportal/internal/adapters/storage"
	"rsvpportal/internal/cache"
	httpdelivery "rsvpportal/internal/delivery/http"
	"rsvpportal/internal/delivery/http/controllers"
	"rsvpportal/internal/delivery/http/middleware"
	"rsvpportal/internal/domain"
	"rsvpportal/internal/services"
)

const (
	shutdownTimeout = 10 * time.Second
	sweepInterval   = 10 * time.Minute
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logger := config.NewLogger(cfg, os.Stdout)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("portal stopped", "err", err)
		os.Exit(1)
	}
	logger.Info("shutdown")
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	store, err := storage.Open(ctx, cfg.CacheStore, cfg.CacheDSN)
	if err != nil {
		return fmt.Errorf("failed to open cache store: %w", err)
	}
	defer store.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	cacheMetrics := cache.NewMetrics(reg)
	httpMetrics := middleware.NewHTTPMetrics(reg)

	client := api.New(api.Options{BaseURL: cfg.APIURL, Timeout: cfg.APITimeout})
	authAPI := api.NewAuthAPI(client)
	eventsAPI := api.NewEventsAPI(client)
	rsvpsAPI := api.NewRSVPsAPI(client)
	tokensAPI := api.NewTokensAPI(client)
	templatesAPI := api.NewEmailTemplatesAPI(client)

	sessions := auth.NewJWTSessions(cfg.SessionSecret)
	manager := services.NewSessionManager(services.SessionManagerConfig{
		Events:     eventsAPI,
		RSVPs:      rsvpsAPI,
		Store:      store,
		TTL:        cfg.CacheTTL,
		SessionTTL: cfg.SessionTTL,
		Metrics:    cacheMetrics,
		Logger:     logger,
	})
	client.OnUnauthorized(func(ctx context.Context, s domain.Session) {
		logger.InfoContext(ctx, "remote api rejected session", "session_id", s.ID)
		manager.Terminate(ctx, s.ID)
	})

	router := httpdelivery.NewRouter(httpdelivery.Controllers{
		Auth:          controllers.NewAuthController(logger, services.NewAuthService(authAPI, sessions, manager, cfg.SessionTTL)),
		Events:        controllers.NewEventController(logger, manager),
		Invitation:    controllers.NewInvitationController(logger, services.NewInvitationService(tokensAPI, rsvpsAPI, time.Now)),
		Public:        controllers.NewPublicController(logger, services.NewPublicRSVPService(eventsAPI, rsvpsAPI, time.Now)),
		Invites:       controllers.NewInviteController(logger, services.NewInviteService(tokensAPI, manager, time.Now)),
		Analytics:     controllers.NewAnalyticsController(logger, services.NewAnalyticsService(tokensAPI, rsvpsAPI, logger)),
		EmailTemplate: controllers.NewEmailTemplateController(logger, services.NewEmailTemplateService(templatesAPI)),
	}, httpdelivery.RouterConfig{
		Logger:         logger,
		Verifier:       sessions,
		Revocations:    manager,
		Gatherer:       reg,
		Metrics:        httpMetrics,
		AllowedOrigins: cfg.CORSAllowedOrigins,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("start and listen", "address", srv.Addr, "api_url", cfg.APIURL, "cache_store", cfg.CacheStore)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("error during listen and serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		manager.Run(gctx, sweepInterval)
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
