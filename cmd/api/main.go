package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"slices"
	"strings"
	"syscall"
	"time"

	"github.com/amirhossein-jamali/agency-ledger/internal/app"
	"github.com/amirhossein-jamali/agency-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/agency-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/agency-ledger/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/agency-ledger/internal/infrastructure/adapter/export"
	"github.com/amirhossein-jamali/agency-ledger/internal/infrastructure/adapter/logger"
	timeProvider "github.com/amirhossein-jamali/agency-ledger/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/agency-ledger/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

const startupTimeout = 2 * time.Minute

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("load configuration: %v", err)
	}
	warnings, err := checkServeConfig(cfg)
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	appLogger, err := logger.NewZapLogger(logger.Options{
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		Output:     cfg.Logger.Output,
		TimeFormat: cfg.Logger.TimeFormat,
		CallerInfo: cfg.Logger.CallerInfo,
	})
	if err != nil {
		log.Fatalf("create logger: %v", err)
	}
	for _, w := range warnings {
		appLogger.Warn("Risky production setting", map[string]any{"setting": w})
	}

	if err := serve(cfg, appLogger); err != nil {
		appLogger.Error("Ledger API stopped", map[string]any{"error": err.Error()})
		_ = appLogger.Flush()
		os.Exit(1)
	}
	_ = appLogger.Flush()
}

// serve runs the HTTP API until SIGINT or SIGTERM, then stops taking requests
// before the posting queues drain
func serve(cfg *config.Config, appLogger core.Logger) error {
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}
	tp := timeProvider.NewRealTimeProvider()

	startCtx, cancelStart := context.WithTimeout(context.Background(), startupTimeout)
	ledger, err := app.New(startCtx, cfg, appLogger, tp, app.Options{})
	cancelStart()
	if err != nil {
		return fmt.Errorf("start ledger: %w", err)
	}
	defer ledger.Close()

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger, tp, cfg.Server.AllowedOrigins)
	routes.SetupRoutes(router, routes.Handlers{
		Transactions: handler.NewTransactionHandler(ledger.Posting, ledger.Query, ledger.Exporter, export.ContentType, tp, appLogger),
		Balances:     handler.NewBalanceHandler(ledger.Query, appLogger),
		Events:       handler.NewEventHandler(ledger.AutoPosting, appLogger),
		Health:       handler.NewHealthHandler(ledger.DB, version),
	}, cfg.Ledger.DefaultTenant)

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	sigCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	listenErr := make(chan error, 1)
	go func() {
		appLogger.Info("Ledger API listening", map[string]any{
			"addr":    srv.Addr,
			"env":     cfg.Environment,
			"driver":  cfg.Database.Driver,
			"tenant":  cfg.Ledger.DefaultTenant,
			"version": version,
		})
		listenErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-listenErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen on %s: %w", srv.Addr, err)
		}
		return nil
	case <-sigCtx.Done():
		appLogger.Info("Shutdown requested", nil)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("HTTP shutdown did not finish in time", map[string]any{
			"error":   err.Error(),
			"timeout": cfg.Server.ShutdownTimeout.String(),
		})
	}
	appLogger.Info("Ledger API stopped", nil)
	return nil
}

// checkServeConfig reports settings the API cannot run without as an error and
// risky production settings as warnings
func checkServeConfig(cfg *config.Config) ([]string, error) {
	if !slices.Contains([]string{config.Development, config.Production, config.Test}, cfg.Environment) {
		return nil, fmt.Errorf("unknown environment %q, expected %s, %s or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	required := []struct {
		key     string
		missing bool
	}{
		{"server.port", cfg.Server.Port == 0},
		{"server.readTimeout", cfg.Server.ReadTimeout == 0},
		{"server.writeTimeout", cfg.Server.WriteTimeout == 0},
		{"server.shutdownTimeout", cfg.Server.ShutdownTimeout == 0},
		{"database.host (LEDGER_DB_HOST)", cfg.Database.Driver != "sqlite" && cfg.Database.Host == ""},
		{"database.username (LEDGER_DB_USERNAME)", cfg.Database.Driver != "sqlite" && cfg.Database.Username == ""},
		{"database.database (LEDGER_DB_NAME)", cfg.Database.Database == ""},
		{"database.queryTimeout", cfg.Database.QueryTimeout == 0},
		{"logger.level", cfg.Logger.Level == ""},
	}
	var missing []string
	for _, r := range required {
		if r.missing {
			missing = append(missing, r.key)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing %s", strings.Join(missing, ", "))
	}

	if cfg.Environment != config.Production {
		return nil, nil
	}
	var warnings []string
	switch strings.ToLower(cfg.Database.SSLMode) {
	case "require", "verify-ca", "verify-full":
	default:
		if cfg.Database.Driver == "postgres" {
			warnings = append(warnings, "database.sslMode does not require TLS")
		}
	}
	if cfg.Database.Driver == "sqlite" {
		warnings = append(warnings, "sqlite serializes every write across tenants")
	}
	if cfg.Server.ReadTimeout < 5*time.Second || cfg.Server.WriteTimeout < 5*time.Second {
		warnings = append(warnings, "server read or write timeout below 5s")
	}
	return warnings, nil
}
