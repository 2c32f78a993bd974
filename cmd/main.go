package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/pflag"

	"github.com/m04kA/SMC-MarketplaceClient/internal/config"
	sessionStorage "github.com/m04kA/SMC-MarketplaceClient/internal/infra/storage/session"
	"github.com/m04kA/SMC-MarketplaceClient/internal/integrations/marketplace"
	sessionService "github.com/m04kA/SMC-MarketplaceClient/internal/service/session"
	authUC "github.com/m04kA/SMC-MarketplaceClient/internal/usecase/auth"
	cancelReservationUC "github.com/m04kA/SMC-MarketplaceClient/internal/usecase/cancel_reservation"
	guestBookingUC "github.com/m04kA/SMC-MarketplaceClient/internal/usecase/guest_booking"
	loadDashboardUC "github.com/m04kA/SMC-MarketplaceClient/internal/usecase/load_dashboard"
	renderInvoiceUC "github.com/m04kA/SMC-MarketplaceClient/internal/usecase/render_invoice"
	searchServicesUC "github.com/m04kA/SMC-MarketplaceClient/internal/usecase/search_services"
	updateAgencyProfileUC "github.com/m04kA/SMC-MarketplaceClient/internal/usecase/update_agency_profile"
	"github.com/m04kA/SMC-MarketplaceClient/pkg/logger"
	"github.com/m04kA/SMC-MarketplaceClient/pkg/metrics"
	"github.com/m04kA/SMC-MarketplaceClient/pkg/validation"
)

// app зависимости, общие для всех команд
type app struct {
	cfg     *config.Config
	log     *logger.Logger
	metrics *metrics.Metrics
	out     io.Writer

	session *sessionService.Service
	client  *marketplace.Client
	auth    *authUC.Container

	searchServices      *searchServicesUC.UseCase
	loadDashboard       *loadDashboardUC.UseCase
	cancelReservation   *cancelReservationUC.UseCase
	guestBooking        *guestBookingUC.UseCase
	updateAgencyProfile *updateAgencyProfileUC.UseCase
	renderInvoice       *renderInvoiceUC.UseCase

	closers []func() error
}

// consoleNavigator печатает маршрут, на который веб-клиент сделал бы переход
type consoleNavigator struct {
	w io.Writer
}

func (n consoleNavigator) Navigate(route string) {
	fmt.Fprintf(n.w, "-> %s\n", route)
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "error: %s\n", marketplace.MessageOf(err))
		os.Exit(1)
	}
}

func run(args []string) error {
	var configPath string

	global := pflag.NewFlagSet("marketplace", pflag.ContinueOnError)
	global.StringVarP(&configPath, "config", "c", "config.toml", "path to TOML config file")
	global.SetInterspersed(false)
	global.Usage = func() { printUsage(global) }

	if err := global.Parse(args); err != nil {
		return err
	}
	rest := global.Args()
	if len(rest) == 0 {
		printUsage(global)
		return pflag.ErrHelp
	}

	cmd, ok := commands[rest[0]]
	if !ok {
		printUsage(global)
		return fmt.Errorf("unknown command %q", rest[0])
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx, configPath)
	if err != nil {
		return err
	}
	defer a.close()

	// Сессия, сохраненная прошлым запуском
	if _, err := a.auth.Restore(ctx); err != nil {
		a.log.Warn("Failed to restore session: %v", err)
	}

	return cmd.run(ctx, a, rest[1:])
}

func newApp(ctx context.Context, configPath string) (*app, error) {
	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	a := &app{cfg: cfg, log: log, out: os.Stdout}
	a.closers = append(a.closers, log.Close)

	// Инициализируем метрики (если включены)
	if cfg.Metrics.Enabled {
		a.metrics = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled (pushgateway=%q)", cfg.Metrics.PushGateway)
	}

	// Хранилище сессии
	store, err := a.newSessionStore(ctx)
	if err != nil {
		a.close()
		return nil, err
	}
	a.session = sessionService.NewService(store, log)

	// Клиент API
	var opts []marketplace.Option
	if a.metrics != nil {
		opts = append(opts, marketplace.WithObserver(a.metrics))
	}
	a.client = marketplace.NewClient(
		cfg.API.BaseURL,
		time.Duration(cfg.API.Timeout)*time.Second,
		a.session,
		consoleNavigator{w: os.Stderr},
		log,
		opts...,
	)
	log.Info("API client initialized (base_url=%s, timeout=%ds)", cfg.API.BaseURL, cfg.API.Timeout)

	// Use cases
	validator := validation.New()
	a.auth = authUC.NewContainer(a.client, a.session, validator, log)
	a.searchServices = searchServicesUC.NewUseCase(a.client, cfg.Search.RatePerSecond, cfg.Search.Burst, log)
	a.loadDashboard = loadDashboardUC.NewUseCase(a.client, a.session, log)
	a.cancelReservation = cancelReservationUC.NewUseCase(a.client, time.Local, log)
	a.guestBooking = guestBookingUC.NewUseCase(a.client, validator, log)
	a.updateAgencyProfile = updateAgencyProfileUC.NewUseCase(a.client, a.session, validator, log)
	a.renderInvoice = renderInvoiceUC.NewUseCase(a.client, log)

	return a, nil
}

// newSessionStore создает хранилище по session.driver
func (a *app) newSessionStore(ctx context.Context) (sessionService.Store, error) {
	cfg := a.cfg
	switch cfg.Session.Driver {
	case config.SessionDriverMemory:
		a.log.Info("Session store: memory (session is lost on exit)")
		return sessionStorage.NewMemoryStore(), nil

	case config.SessionDriverFile:
		a.log.Info("Session store: file %s", cfg.Session.FilePath)
		return sessionStorage.NewFileStore(cfg.Session.FilePath), nil

	case config.SessionDriverRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		a.closers = append(a.closers, client.Close)
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("failed to ping redis %s: %w", cfg.Redis.Addr, err)
		}
		a.log.Info("Session store: redis %s (prefix=%s, namespace=%s)", cfg.Redis.Addr, cfg.Redis.Prefix, cfg.Session.Namespace)
		return sessionStorage.NewRedisStore(client, cfg.Redis.Prefix, cfg.Session.Namespace), nil

	case config.SessionDriverPostgres:
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		a.closers = append(a.closers, db.Close)
		db.SetMaxOpenConns(2)

		if err := db.PingContext(ctx); err != nil {
			return nil, fmt.Errorf("failed to ping database: %w", err)
		}
		store, err := sessionStorage.NewPostgresStore(db, cfg.Database.Table, cfg.Session.Namespace)
		if err != nil {
			return nil, err
		}
		if err := store.EnsureSchema(ctx); err != nil {
			return nil, err
		}
		a.log.Info("Session store: postgres (host=%s, port=%d, db=%s, table=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName, cfg.Database.Table)
		return store, nil

	default:
		return nil, fmt.Errorf("%w: unknown session driver %q", config.ErrInvalidConfig, cfg.Session.Driver)
	}
}

func (a *app) close() {
	if a.metrics != nil && a.cfg.Metrics.PushGateway != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := a.metrics.Push(ctx, a.cfg.Metrics.PushGateway, a.cfg.Metrics.ServiceName); err != nil {
			a.log.Warn("Failed to push metrics: %v", err)
		}
		cancel()
	}

	for i := len(a.closers) - 1; i >= 0; i-- {
		_ = a.closers[i]()
	}
}

func printUsage(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `Booking marketplace command line client.

Usage:
  marketplace [--config path] <command> [flags]

Commands:
`)
	for _, name := range commandOrder {
		fmt.Fprintf(os.Stderr, "  %-16s %s\n", name, commands[name].summary)
	}
	fmt.Fprintf(os.Stderr, "\nGlobal flags:\n%s", flagSet.FlagUsages())
}
