package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"budget-ledger/internal/config"
	"budget-ledger/internal/handlers"
	"budget-ledger/internal/ledger"
	"budget-ledger/internal/middleware"
	"budget-ledger/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

const (
	shutdownTimeout = 10 * time.Second
	// multipart framing around the workbook itself
	uploadOverheadBytes = 64 << 10
)

// Dependencies are the services the HTTP layer is built on. DB is nil when run history is disabled.
// Generator is only used in development.
type Dependencies struct {
	Reports   services.ReportServiceInterface
	Yearly    services.YearlyBudgetServiceInterface
	Generator services.LedgerGeneratorInterface
	Metrics   services.MetricsRecorderInterface
	DB        *gorm.DB
}

// Server is the echo application for the ledger API
type Server struct {
	echo    *echo.Echo
	limiter *middleware.IPRateLimiter
	cfg     config.ServerConfig
}

// New builds the echo instance with middleware and routes registered
func New(cfg *config.Config, deps Dependencies) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:  cfg.Server.CORSAllowOrigins,
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		ExposeHeaders: []string{middleware.TraceIDHeader, "X-Report-Run-ID", "X-Report-Status", echo.HeaderContentDisposition},
	}))

	limiter := middleware.NewIPRateLimiter(cfg.Server.RateLimitPerSecond, cfg.Server.RateLimitBurst)

	health := handlers.NewHealthCheckHandler(deps.DB)
	reports := handlers.NewReportHandler(
		deps.Reports,
		deps.Yearly,
		ledger.NewLoader(cfg.Ledger.SheetName),
		deps.Metrics,
		cfg.Server.MaxUploadBytes,
		cfg.Server.PreviewRows,
	)

	e.GET("/health", health.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")
	upload := []echo.MiddlewareFunc{
		limiter.Middleware(),
		echomw.BodyLimit(fmt.Sprintf("%dB", cfg.Server.MaxUploadBytes+uploadOverheadBytes)),
	}
	api.POST("/ledgers/classify", reports.ClassifyLedger, upload...)
	api.POST("/reports", reports.GenerateReport, upload...)
	api.POST("/reports/export", reports.ExportReport, upload...)
	api.GET("/reports/runs", reports.ListRuns)
	api.GET("/reports/runs/:id", reports.GetRun)
	api.GET("/budgets/yearly", reports.YearlyBudgets)

	if cfg.IsDevelopment() && deps.Generator != nil {
		dev := handlers.NewDevHandler(deps.Generator)
		api.GET("/dev/sample-ledger", dev.SampleLedger, limiter.Middleware())
	}

	return &Server{echo: e, limiter: limiter, cfg: cfg.Server}
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Run serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	stop := make(chan struct{})
	defer close(stop)
	go s.limiter.RunCleanup(stop)

	srv := &http.Server{
		Addr:         net.JoinHostPort(s.cfg.Host, s.cfg.Port),
		Handler:      s.echo,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("http server listening", "addr", srv.Addr, "environment", s.cfg.Environment)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server failed: %w", err)
	case <-ctx.Done():
	}

	slog.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown failed: %w", err)
	}
	return nil
}
