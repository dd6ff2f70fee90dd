// Command barangay is the records office of a barangay: a local SQLite store of
// residents, households, map pins, officials, blotters, the ledger and events,
// driven from the command line or over MCP.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/barangay-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/barangay-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/barangay-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/barangay-cli/internal/core/domain"
	"github.com/custodia-labs/barangay-cli/internal/core/services"
	"github.com/custodia-labs/barangay-cli/internal/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	cli.SetBootstrap(bootstrap)
	err := cli.Execute(ctx)
	stop()

	if err != nil {
		if errors.Is(err, domain.ErrSchema) {
			fmt.Fprintln(os.Stderr, "fatal: the records database could not be initialised")
		}
		os.Exit(1)
	}
}

// bootstrap loads configuration, opens the store and builds the services.
// Flags win over config.toml, which wins over the built-in defaults.
func bootstrap(ctx context.Context, opts cli.Options) (*cli.Services, error) {
	configDir := opts.ConfigDir
	if configDir == "" {
		dir, err := file.DefaultDir()
		if err != nil {
			return nil, err
		}
		configDir = dir
	}

	cfg, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	applyLogging(cfg, opts.Verbose)

	dataDir := opts.DataDir
	if dataDir == "" {
		dataDir = cfg.GetString(file.KeyDataDir)
	}

	store, err := sqlite.NewStore(ctx, dataDir)
	if err != nil {
		_ = logger.Close()
		return nil, err
	}

	residents := store.ResidentStore()
	return &cli.Services{
		Residents:    services.NewResidentService(residents),
		Households:   services.NewHouseholdService(store.HouseholdQuery(), cfg),
		MapPins:      services.NewMapPinService(store.MapPinStore()),
		Officials:    services.NewOfficialService(store.OfficialStore()),
		Blotters:     services.NewBlotterService(store.BlotterStore()),
		Ledger:       services.NewLedgerService(store.LedgerStore()),
		Events:       services.NewEventService(store.EventStore()),
		Settings:     services.NewSettingsService(store.SettingsStore()),
		DatabasePath: store.Path(),
		MCPRateLimit: cfg.GetInt(file.KeyMCPRateLimit),
		WatchConfig: func(ctx context.Context, onChange func()) error {
			return cfg.Watch(ctx, func() {
				applyLogging(cfg, opts.Verbose)
				onChange()
			})
		},
		Close: func() error {
			return errors.Join(store.Close(), logger.Close())
		},
	}, nil
}

// applyLogging turns on verbose output and the log file from config.
// The --verbose flag cannot be switched off by config.
func applyLogging(cfg *file.ConfigStore, verboseFlag bool) {
	logger.SetVerbose(verboseFlag || cfg.GetBool(file.KeyLogVerbose))
	if err := logger.SetFile(cfg.GetString(file.KeyLogFile), 0, 0); err != nil {
		logger.Warn("log file: %v", err)
	}
}
