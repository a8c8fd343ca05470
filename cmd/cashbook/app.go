package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/glamour"

	"cashbook/internal/config"
	"cashbook/internal/gateway"
	"cashbook/internal/usecase"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var envFile = flag.String("env", "", "path to a .env file (default: ./.env when present)")
var debug = flag.Bool("debug", false, "enable debug logging")

// store is a KeyValueStore that holds an open file or connection.
type store interface {
	usecase.KeyValueStore
	io.Closer
}

// app wires the engines for one command invocation.
type app struct {
	cfg     *config.Config
	logger  *slog.Logger
	store   store
	history *usecase.HistoryLog
	ledger  *usecase.CashLedger
}

// openApp loads configuration, opens the store and restores ledger and history.
func openApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load(*envFile)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := newLogger(cfg.Debug || *debug)

	s, err := openStore(cfg.Store)
	if err != nil {
		return nil, err
	}
	logger.Debug("store opened", "driver", cfg.Store.Driver, "path", cfg.Store.Path)

	loc, err := cfg.Location()
	if err != nil {
		_ = s.Close()
		return nil, err
	}

	history := usecase.NewHistoryLog(s, logger)
	// A broken history is reported by Load and replaced by an empty one.
	_ = history.Load(ctx)

	ledger := usecase.NewCashLedger(ctx, s, history, gateway.NewSystemClipboard(os.Stderr),
		usecase.WithLocation(loc),
		usecase.WithLogger(logger),
	)

	return &app{cfg: cfg, logger: logger, store: s, history: history, ledger: ledger}, nil
}

func (a *app) Close() error {
	return a.store.Close()
}

func openStore(cfg config.StoreConfig) (store, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		return gateway.NewSQLiteStore(cfg.Path)
	case config.DriverMemory:
		return gateway.NewMemoryStore(), nil
	default:
		return gateway.NewBoltStore(cfg.Path)
	}
}

func newLogger(debug bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if debug {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)
	return logger
}

// printMarkdown renders md for the terminal, or prints it as is in plain mode.
func (a *app) printMarkdown(md string) {
	if a.cfg.Plain {
		fmt.Print(md)
		return
	}
	out, err := glamour.Render(md, "dark")
	if err != nil {
		a.logger.Debug("markdown not rendered", "error", err)
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
