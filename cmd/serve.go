package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	httpctx "github.com/dtroode/careercoach-server/internal/api/http/context"
	"github.com/dtroode/careercoach-server/internal/api/http/middleware"
	"github.com/dtroode/careercoach-server/internal/api/http/router"
	httpserver "github.com/dtroode/careercoach-server/internal/api/http/server"
	"github.com/dtroode/careercoach-server/internal/config"
	"github.com/dtroode/careercoach-server/internal/logger"
	"github.com/dtroode/careercoach-server/internal/model"
	"github.com/dtroode/careercoach-server/internal/oauth/google"
	"github.com/dtroode/careercoach-server/internal/password"
	"github.com/dtroode/careercoach-server/internal/server"
	"github.com/dtroode/careercoach-server/internal/service"
	"github.com/dtroode/careercoach-server/internal/token"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.NewConfig()
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}
}

func serve(ctx context.Context, cfg *config.Config) error {
	log := logger.NewWithFormat(cfg.LogLevel, cfg.LogFormat, os.Stdout)
	log.Info("starting careercoach-server",
		"version", buildVersion,
		"commit", buildCommit,
		"env", cfg.Env)

	userStore, closeUsers, err := openUserStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer closeUsers()

	states, closeStates, err := openStateStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize oauth state store: %w", err)
	}
	defer closeStates()

	tokenManager := token.NewJWT(cfg.JWT.Secret)

	var provider model.IdentityProvider
	if cfg.GoogleEnabled() {
		provider = google.New(cfg.Google.ClientID, cfg.Google.ClientSecret, cfg.Google.CallbackURL)
	} else {
		log.Warn("Google sign-in disabled: GOOGLE_CLIENT_ID or GOOGLE_CLIENT_SECRET not set")
	}

	authService := service.NewAuth(userStore, password.NewBcrypt(), tokenManager, log)
	federatedService := service.NewFederated(provider, states, userStore, tokenManager, log)

	metrics, err := middleware.NewMetrics(newRegistry())
	if err != nil {
		return fmt.Errorf("failed to register metrics: %w", err)
	}

	r := router.New(authService, federatedService, httpctx.NewManager(), metrics, cfg.Frontend.URL, log)
	var srv model.Server = httpserver.NewHTTPServer(r.Register(), ":"+cfg.HTTP.Port)
	sl := server.NewSecurityLayer(cfg.HTTP.EnableHTTPS, cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("Starting server on", "address", srv.Address(), "https", cfg.HTTP.EnableHTTPS)
		return srv.Start(sl)
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("received interruption signal, shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Stop(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server stopped with error", "error", err, "address", srv.Address())
		return err
	}

	log.Info("shutdown complete")
	return nil
}

func newRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}
