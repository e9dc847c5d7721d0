package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/libin99527/newapi-checkin/internal/clock"
	"github.com/libin99527/newapi-checkin/internal/config"
	"github.com/libin99527/newapi-checkin/internal/handlers"
	"github.com/libin99527/newapi-checkin/internal/ledger"
	"github.com/libin99527/newapi-checkin/internal/pg"
	"github.com/libin99527/newapi-checkin/internal/repo"
	"github.com/libin99527/newapi-checkin/internal/service"
	"github.com/libin99527/newapi-checkin/internal/sqlite"
	"github.com/libin99527/newapi-checkin/pkg/auth"
	"github.com/libin99527/newapi-checkin/pkg/logger"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg  *config.Config
	api  *handlers.Handlers
	srv  *service.Services
	repo *repo.Repositories

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	ledgerClient := ledger.New(pg.New(pool), &auth.HashService{})

	db, err := sqlite.Open(cfg.LocalDBPath)
	if err != nil {
		zap.L().Error("open local database failed: ", zap.Error(err))
		return fmt.Errorf("can't open local database: %w", err)
	}

	a.cfg = cfg
	a.repo, err = repo.New(db)
	if err != nil {
		zap.L().Error("migrate local database failed: ", zap.Error(err))
		return fmt.Errorf("can't migrate local database: %w", err)
	}

	settings := config.NewSettings(cfg)
	clockPolicy := clock.New(cfg.DayOffsetHours)
	jwtService := auth.NewJWTService(cfg.AdminSecret)

	a.srv = service.New(a.repo, ledgerClient, settings, clockPolicy)
	a.api = handlers.New(a.srv, settings, jwtService, cfg.AdminSecret)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.LedgerDSN)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:    a.cfg.Address,
		Handler: router,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(sCtx)
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
