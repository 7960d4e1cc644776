// Package cli implements the operator commands. Commands are glue: they parse
// arguments, call the exam and card services and print the result.
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"

	cardMetrics "climbreg/internal/card/metrics"
	"climbreg/internal/card/models"
	cardService "climbreg/internal/card/service"
	examMetrics "climbreg/internal/exam/metrics"
	examModels "climbreg/internal/exam/models"
	examService "climbreg/internal/exam/service"
	"climbreg/internal/exam/store"
	"climbreg/internal/platform/config"
	"climbreg/internal/platform/logger"
	platformMetrics "climbreg/internal/platform/metrics"
	"climbreg/internal/platform/postgres"
	"climbreg/internal/platform/redis"
	"climbreg/internal/sheet"
	sheetMetrics "climbreg/internal/sheet/metrics"
	"climbreg/pkg/platform/audit"
	"climbreg/pkg/platform/audit/publisher"
	auditmemory "climbreg/pkg/platform/audit/store/memory"
	auditpostgres "climbreg/pkg/platform/audit/store/postgres"
)

// App holds the services the commands drive.
type App struct {
	Exams    *examService.Service
	Cards    *cardService.Service
	Audit    *publisher.Publisher
	Registry *prometheus.Registry
	Logger   *slog.Logger
	Now      func() time.Time

	// AuditPersisted is false when the audit trail lives in memory and is
	// lost when the process exits.
	AuditPersisted bool

	closers []func() error
}

// Close releases backing connections, draining queued audit events first.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i]())
	}
	return errors.Join(errs...)
}

// Deps are the pieces Build wires together. Access is usually a GoogleAccess;
// tests pass a MemoryAccess.
type Deps struct {
	Config   config.Config
	Access   sheet.Access
	Logger   *slog.Logger
	Registry *prometheus.Registry
	Clock    func() time.Time
}

// Load reads the environment and connects to the configured spreadsheet.
func Load(ctx context.Context) (*App, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return nil, err
	}
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	log := logger.New(level)
	reg := platformMetrics.NewRegistry()

	if cfg.CredentialsFile == "" {
		return nil, fmt.Errorf("CLIMBREG_CREDENTIALS_FILE is required")
	}
	key, err := os.ReadFile(cfg.CredentialsFile)
	if err != nil {
		return nil, fmt.Errorf("read credentials: %w", err)
	}

	m := sheetMetrics.New(reg)
	conn := sheet.NewConnectionProvider(sheet.ServiceAccount(key), m)
	access, err := sheet.NewGoogleAccess(conn, cfg.SpreadsheetID,
		sheet.WithMetrics(m),
		sheet.WithTracerProvider(otel.GetTracerProvider()),
	)
	if err != nil {
		return nil, err
	}

	return Build(ctx, Deps{
		Config:   cfg,
		Access:   access,
		Logger:   log,
		Registry: reg,
	})
}

// Build wires the services over deps.Access. Redis and Postgres are used when
// their URLs are configured; otherwise the cache and audit trail stay in
// process memory.
func Build(ctx context.Context, deps Deps) (*App, error) {
	cfg := deps.Config
	log := deps.Logger
	if log == nil {
		log = slog.Default()
	}
	reg := deps.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}

	app := &App{Registry: reg, Logger: log, Now: clock}
	fail := func(err error) (*App, error) {
		_ = app.Close()
		return nil, err
	}

	tableOpts := []sheet.TableOption{
		sheet.WithLogger(log),
		sheet.WithPositionCapacity(cfg.PositionCacheSize),
	}
	exams, err := sheet.NewTable(deps.Access, examModels.ExamSchema(cfg.ExamsSheet), tableOpts...)
	if err != nil {
		return fail(err)
	}
	cards, err := sheet.NewTable(deps.Access, models.CardSchema(cfg.CardsSheet), tableOpts...)
	if err != nil {
		return fail(err)
	}

	auditStore, err := openAuditStore(ctx, app, cfg.DatabaseURL)
	if err != nil {
		return fail(err)
	}
	pubOpts := []publisher.Option{
		publisher.WithLogger(log),
		publisher.WithMetrics(publisher.NewMetrics(reg)),
		publisher.WithClock(clock),
	}
	if cfg.AuditBufferSize > 0 {
		pubOpts = append(pubOpts, publisher.WithAsyncBuffer(cfg.AuditBufferSize))
	}
	app.Audit = publisher.NewPublisher(auditStore, pubOpts...)
	app.closers = append(app.closers, app.Audit.Close)

	examOpts := []examService.Option{
		examService.WithLogger(log),
		examService.WithMetrics(examMetrics.New(reg)),
		examService.WithAuditPublisher(app.Audit),
		examService.WithClock(clock),
	}
	cache, err := openCache(ctx, app, cfg, clock)
	if err != nil {
		return fail(err)
	}
	if cache != nil {
		examOpts = append(examOpts, examService.WithCache(cache))
	}
	app.Exams, err = examService.New(exams, examOpts...)
	if err != nil {
		return fail(err)
	}

	app.Cards, err = cardService.New(cards, app.Exams,
		cardService.WithLogger(log),
		cardService.WithMetrics(cardMetrics.New(reg)),
		cardService.WithAuditPublisher(app.Audit),
		cardService.WithClock(clock),
	)
	if err != nil {
		return fail(err)
	}
	return app, nil
}

func openAuditStore(ctx context.Context, app *App, url string) (audit.Store, error) {
	db, err := postgres.Open(ctx, url)
	if err != nil {
		return nil, err
	}
	if db == nil {
		app.Logger.Info("audit trail kept in memory; set CLIMBREG_DATABASE_URL to persist it")
		return auditmemory.NewInMemoryStore(), nil
	}
	app.closers = append(app.closers, db.Close)
	app.AuditPersisted = true

	s := auditpostgres.New(db)
	if err := s.EnsureSchema(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// openCache returns nil when caching is disabled with a zero TTL.
func openCache(ctx context.Context, app *App, cfg config.Config, clock func() time.Time) (examService.CertificateCache, error) {
	if cfg.CacheTTL == 0 {
		return nil, nil
	}
	client, err := redis.New(ctx, cfg.Redis)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return store.NewInMemoryCache(cfg.CacheTTL).WithClock(clock), nil
	}
	app.closers = append(app.closers, client.Close)
	return store.NewRedisCache(client.Client, cfg.CacheTTL), nil
}
