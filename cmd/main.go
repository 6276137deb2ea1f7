package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "agency-ops/internal/adapter/http"
	"agency-ops/internal/adapter/postgres"
	"agency-ops/internal/adapter/sqlite"
	"agency-ops/internal/adapter/usecase"
	"agency-ops/internal/config"
	"agency-ops/internal/config/configs"
	"agency-ops/internal/core/policy"
	"agency-ops/internal/core/port"
	"agency-ops/internal/db"
)

// store is implemented by both persistence adapters.
type store interface {
	port.Directory
	port.DirectoryWriter
	port.InvoiceRepository
	port.PaymentRepository
	port.ApprovalRepository
}

// main loads configuration, opens the configured store, applies migrations
// and serves the ledger and approval API until SIGINT or SIGTERM.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	var logger *slog.Logger
	{
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler).With(slog.String("env", cfg.Env))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	repo, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("store initialisation error", slog.Any("error", err))
		return
	}
	defer closeStore()

	if cfg.Ledger.SeedDemo && cfg.Env != "prod" {
		if err = db.Seed(ctx, repo); err != nil {
			logger.Error("seed error", slog.Any("error", err))
			return
		}
		logger.Info("demo directory seeded")
	}

	gate := policy.DefaultGate()
	opts := []usecase.Option{usecase.WithDefaultDueDays(cfg.Ledger.DefaultDueDays)}
	handler := httpadapter.NewHandler(httpadapter.Services{
		Invoices:  usecase.NewInvoiceUseCase(repo, repo, gate, logger, opts...),
		Payments:  usecase.NewPaymentUseCase(repo, repo, repo, gate, logger, opts...),
		Approvals: usecase.NewApprovalUseCase(repo, repo, gate, logger, opts...),
	}, httpadapter.NewAuthenticator(cfg.Auth), logger, cfg.HTTP.RequestTimeout)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening",
			slog.Int("port", int(cfg.HTTP.Port)),
			slog.String("store", cfg.Store.Driver),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			cancel()
		}
	}()

	<-ctx.Done()
	exitCode = 0

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		exitCode = 1
	} else {
		logger.Info("server gracefully stopped")
	}
}

// openStore connects the configured driver and runs its migrations. The
// returned func releases the connection.
func openStore(ctx context.Context, cfg config.Config, logger *slog.Logger) (store, func(), error) {
	switch cfg.Store.Driver {
	case configs.DriverSQLite:
		if err := db.MigrateSQLite(cfg.SQLite.Path); err != nil {
			return nil, nil, fmt.Errorf("migrate sqlite: %w", err)
		}
		conn, err := db.OpenSQLite(ctx, cfg.SQLite.Path)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("sqlite store ready", slog.String("path", cfg.SQLite.Path))
		s := sqlite.NewStore(conn, sqlite.WithRetries(cfg.Ledger.WriteRetries))
		return s, func() { _ = conn.Close() }, nil

	default:
		if cfg.Psql.RunMigrations {
			if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
				return nil, nil, fmt.Errorf("migrate postgres: %w", err)
			}
			logger.Info("migrations applied successfully")
		}
		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			return nil, nil, err
		}
		s := postgres.NewStore(pool, postgres.WithRetries(cfg.Ledger.WriteRetries))
		return s, pool.Close, nil
	}
}
