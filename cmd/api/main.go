package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"autoledger/internal/auth"
	"autoledger/internal/config"
	"autoledger/internal/database"
	"autoledger/internal/handlers"
	"autoledger/internal/logger"
	"autoledger/internal/server"
	"autoledger/internal/validator"
)

// @title           AutoLedger API
// @version         1.0
// @description     AutoLedger tracks vehicles, fuel fill-ups, running costs and vehicle income per user.

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if appConfig.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbManager := database.NewManager(dbConfig)
	defer func() {
		if err := dbManager.Close(); err != nil {
			log.Warnf("database close error: %v", err)
		}
	}()

	if err := dbManager.Migrate(ctx); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	validator.Register()

	var provider handlers.ExternalProvider
	if appConfig.OIDCEnabled() {
		oidcProvider, err := auth.NewOIDCProvider(ctx, auth.OIDCConfig{
			IssuerURL:    appConfig.OIDCIssuerURL,
			ClientID:     appConfig.OIDCClientID,
			ClientSecret: appConfig.OIDCClientSecret,
			RedirectURL:  appConfig.OIDCRedirectURL,
		})
		if err != nil {
			return fmt.Errorf("failed to configure external sign-in: %w", err)
		}
		provider = oidcProvider
		log.Infof("External sign-in enabled (%s)", appConfig.OIDCIssuerURL)
	}

	router := server.NewRouter(
		server.Options{
			CORSOrigin:     appConfig.CORSOrigin,
			MetricsEnabled: appConfig.MetricsEnabled,
			MetricsAPIKey:  appConfig.MetricsAPIKey,
			SecureCookies:  appConfig.Env == "production",
		},
		server.Dependencies{
			Conn:     dbManager,
			Tokens:   auth.NewTokenService(appConfig.JWTSecret, appConfig.JWTExpirationDur),
			Provider: provider,
		},
	)

	srv := &http.Server{
		Addr:              ":" + appConfig.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("Starting AutoLedger server on port %s", appConfig.Port)
		log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
