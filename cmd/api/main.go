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
	"time"

	"github.com/cmlabs-hris/payroll-engine/internal/config"
	appHTTP "github.com/cmlabs-hris/payroll-engine/internal/handler/http"
	"github.com/cmlabs-hris/payroll-engine/internal/pkg/database"
	"github.com/cmlabs-hris/payroll-engine/internal/pkg/jwt"
	"github.com/cmlabs-hris/payroll-engine/internal/repository/postgresql"
	auditService "github.com/cmlabs-hris/payroll-engine/internal/service/audit"
	payrollService "github.com/cmlabs-hris/payroll-engine/internal/service/payroll"
	"github.com/go-chi/httplog/v3"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	logFormat := httplog.SchemaECS.Concise(cfg.App.Env != "development")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       cfg.SlogLevel(),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "payroll-engine"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), database.PoolConfig{
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		return fmt.Errorf("error connecting to database: %w", err)
	}
	defer db.Close()

	transactor := postgresql.NewTransactor(db)
	cycleRepo := postgresql.NewCycleRepository(db)
	detailRepo := postgresql.NewDetailRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	auditRepo := postgresql.NewAuditRepository(db)

	dispatcher := auditService.NewDispatcher(auditRepo, auditService.Config{
		WorkerCount: cfg.Audit.Workers,
		QueueSize:   cfg.Audit.BufferSize,
	})
	defer dispatcher.Stop()

	JWTService := jwt.NewJWTService(cfg.JWT.Secret)
	payrollSvc := payrollService.NewPayrollService(
		transactor,
		cycleRepo,
		detailRepo,
		employeeRepo,
		attendanceRepo,
		dispatcher,
		cfg.Payroll.Location,
	)

	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	router := appHTTP.NewRouter(appHTTP.RouterConfig{
		AllowedOrigins: cfg.App.CORSAllowedOrigins,
		Logger:         logger,
	}, JWTService, payrollHandler)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Server running", "addr", srv.Addr, "payroll_timezone", cfg.Payroll.Timezone)
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

	slog.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	return nil
}
