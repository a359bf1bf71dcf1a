package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/go-pg/pg/v10"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/daniilsolovey/campus-reading/config"
	"github.com/daniilsolovey/campus-reading/internal/db"
	"github.com/daniilsolovey/campus-reading/internal/reading"
	"github.com/daniilsolovey/campus-reading/internal/rest"
	"github.com/daniilsolovey/campus-reading/internal/rpc"
)

const rpcPath = "/rpc/"

type App struct {
	Manager *reading.Manager
	Logger  *slog.Logger
	Echo    *echo.Echo
	Config  config.Config

	closers []func() error
}

// New connects the configured storage, seeds it when needed and builds the
// HTTP routes. Close releases the storage connections.
func New(ctx context.Context, cfg config.Config, logger *slog.Logger) (*App, error) {
	a := &App{
		Logger: logger,
		Config: cfg,
	}

	tables, seed, err := a.openTables(ctx)
	if err != nil {
		_ = a.Close()
		return nil, err
	}

	a.Manager = reading.NewManager(tables, logger)
	if seed {
		if err := a.Manager.Seed(ctx); err != nil {
			_ = a.Close()
			return nil, err
		}
		logger.InfoContext(ctx, "collections seeded", "driver", cfg.Storage.Driver)
	}

	handler := rest.NewHandler(a.Manager, logger, cfg.App.BasePath)
	a.Echo = handler.RegisterRoutes()
	a.Echo.Any(rpcPath, echo.WrapHandler(rpc.New(logger, a.Manager)))

	return a, nil
}

// openTables reports whether the tables have to be seeded.
func (a *App) openTables(ctx context.Context) (reading.Tables, bool, error) {
	switch a.Config.Storage.Driver {
	case config.DriverPostgres:
		tables, err := a.openPostgres(ctx)
		return tables, a.Config.Storage.ResetOnStart, err
	case config.DriverRedis:
		tables, err := a.openRedis(ctx)
		return tables, a.Config.Storage.ResetOnStart, err
	default:
		return reading.NewMemoryTables(), true, nil
	}
}

func (a *App) openPostgres(ctx context.Context) (reading.Tables, error) {
	dbConnect := pg.Connect(&a.Config.Database)
	a.closers = append(a.closers, dbConnect.Close)

	if a.Config.Storage.LogQueries {
		dbConnect.AddQueryHook(db.NewQueryHook(a.Logger))
	}

	if err := dbConnect.Ping(ctx); err != nil {
		return reading.Tables{}, fmt.Errorf("ping postgres: %w", err)
	}

	if err := db.Migrate(ctx, &a.Config.Database); err != nil {
		return reading.Tables{}, fmt.Errorf("migrate: %w", err)
	}

	if err := db.EnsureTablesExist(ctx, dbConnect, []string{db.Tables.Record.Name}); err != nil {
		return reading.Tables{}, err
	}

	return reading.Tables{
		Notices:  db.NewPGTable[reading.Notice](dbConnect, "notices"),
		Reviews:  db.NewPGTable[reading.Review](dbConnect, "reviews"),
		Classics: db.NewPGTable[reading.Classic](dbConnect, "classics"),
		Programs: db.NewPGTable[reading.Program](dbConnect, "programs"),
	}, nil
}

func (a *App) openRedis(ctx context.Context) (reading.Tables, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     a.Config.Redis.Addr,
		Password: a.Config.Redis.Password,
		DB:       a.Config.Redis.DB,
	})
	a.closers = append(a.closers, client.Close)

	if err := client.Ping(ctx).Err(); err != nil {
		return reading.Tables{}, fmt.Errorf("ping redis: %w", err)
	}

	prefix := a.Config.Redis.Prefix
	return reading.Tables{
		Notices:  db.NewRedisTable[reading.Notice](client, prefix, "notices"),
		Reviews:  db.NewRedisTable[reading.Review](client, prefix, "reviews"),
		Classics: db.NewRedisTable[reading.Classic](client, prefix, "classics"),
		Programs: db.NewRedisTable[reading.Program](client, prefix, "programs"),
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	addr := net.JoinHostPort(a.Config.App.Host, strconv.Itoa(a.Config.App.Port))
	a.Logger.InfoContext(ctx, "service started", "addr", addr, "driver", a.Config.Storage.Driver)

	return a.Echo.Start(addr)
}

func (a *App) GracefulShutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	if errors.Is(err, http.ErrServerClosed) {
		err = nil
	}

	return errors.Join(err, a.Close())
}

// Close closes the storage connections opened by New.
func (a *App) Close() error {
	var errs []error
	for _, closeFn := range a.closers {
		errs = append(errs, closeFn())
	}
	a.closers = nil

	return errors.Join(errs...)
}
