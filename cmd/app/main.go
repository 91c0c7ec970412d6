package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"

	"github.com/osse101/GildedRose_Go/internal/config"
	"github.com/osse101/GildedRose_Go/internal/domain"
	"github.com/osse101/GildedRose_Go/internal/item"
	"github.com/osse101/GildedRose_Go/internal/logger"
	"github.com/osse101/GildedRose_Go/internal/metrics"
	"github.com/osse101/GildedRose_Go/internal/report"
	"github.com/osse101/GildedRose_Go/internal/shop"
)

// Set with -ldflags "-X main.version=..." by devtool build
var version string

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		slog.Error(LogMsgSimulationFailed, "error", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf(ErrFmtLoadConfig, err)
	}
	if version != "" {
		cfg.Version = version
	}

	if err := parseFlags(cfg, args); err != nil {
		return err
	}

	warnings, err := config.Validate(cfg)
	if err != nil {
		return err
	}

	initLogger(cfg)
	for _, w := range warnings {
		slog.Warn(LogMsgConfigWarning, "warning", w)
	}

	ctx = logger.WithRunID(ctx, logger.GenerateRunID())
	log := logger.FromContext(ctx)

	items, err := loadInventory(ctx, cfg.InventoryPath)
	if err != nil {
		return err
	}

	engine := shop.NewEngine(shop.WithRecorder(metrics.NewEngineRecorder()))
	svc := shop.NewService(engine)

	if err := svc.Simulate(ctx, items, cfg.Days, report.DayWriter(stdout)); err != nil {
		return err
	}

	if cfg.MetricsPath != "" {
		if err := metrics.WriteTextfile(ctx, cfg.MetricsPath); err != nil {
			return err
		}
	}

	log.Debug(LogMsgRunFinished, "days", cfg.Days, "items", len(items))
	return nil
}

// parseFlags overrides configuration with command line flags. A bare
// positional argument is taken as the number of days.
func parseFlags(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("gildedrose", flag.ContinueOnError)
	days := fs.Int("days", cfg.Days, "Number of days to simulate after the initial state")
	inventory := fs.String("inventory", cfg.InventoryPath, "Path to a JSON inventory file (default: built-in fixture)")
	metricsOut := fs.String("metrics-out", cfg.MetricsPath, "Write run metrics to this textfile (.prom)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg.Days = *days
	cfg.InventoryPath = *inventory
	cfg.MetricsPath = *metricsOut

	if fs.NArg() > 0 {
		n, err := strconv.Atoi(fs.Arg(0))
		if err != nil {
			return fmt.Errorf(ErrFmtInvalidDaysArg, fs.Arg(0), err)
		}
		cfg.Days = n
	}

	return nil
}

func loadInventory(ctx context.Context, path string) ([]*domain.Item, error) {
	log := logger.FromContext(ctx)

	if path == "" {
		log.Debug(item.LogMsgUsingFixture)
		return item.DefaultItems(), nil
	}

	items, err := item.LoadItems(item.NewLoader(), path)
	if err != nil {
		return nil, fmt.Errorf(ErrFmtLoadInventory, err)
	}

	log.Info(item.LogMsgInventoryLoaded, "path", path, "items", len(items))
	return items, nil
}
