// Package cli provides the cobra command tree for the barangay records store.
package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/barangay-cli/internal/core/ports/driving"
	"github.com/custodia-labs/barangay-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Options are the persistent flag values handed to the bootstrap function.
type Options struct {
	DataDir   string
	ConfigDir string
	Verbose   bool
}

// Services holds the driving ports the commands use, plus the runtime hooks
// that only cmd/barangay knows how to build.
type Services struct {
	Residents  driving.ResidentService
	Households driving.HouseholdService
	MapPins    driving.MapPinService
	Officials  driving.OfficialService
	Blotters   driving.BlotterService
	Ledger     driving.LedgerService
	Events     driving.EventService
	Settings   driving.SettingsService

	// DatabasePath is the SQLite file backing the services.
	DatabasePath string

	// MCPRateLimit is the HTTP requests per second for mcp serve.
	MCPRateLimit int

	// WatchConfig reloads configuration when the config file changes.
	WatchConfig func(ctx context.Context, onChange func()) error

	// Close releases the store.
	Close func() error
}

// Bootstrap builds the services once flags are parsed.
type Bootstrap func(ctx context.Context, opts Options) (*Services, error)

var (
	bootstrap Bootstrap
	services  *Services

	opts       Options
	jsonOutput bool
)

// errNotConfigured is returned when a command runs before services are built.
var errNotConfigured = errors.New("services not configured")

var rootCmd = &cobra.Command{
	Use:   "barangay",
	Short: "Barangay records office",
	Long: `barangay keeps the records of a barangay office in a local SQLite database:
residents and their households, household map pins, officials, incident
blotters, the income and expense ledger, events and the office settings.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&opts.DataDir, "data-dir", "", "directory holding the database (default ~/.barangay/data)")
	rootCmd.PersistentFlags().StringVar(&opts.ConfigDir, "config-dir", "", "directory holding config.toml (default ~/.barangay)")
	rootCmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "enable debug output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print results as JSON")
}

// SetBootstrap registers the function that builds services after flag parsing.
func SetBootstrap(b Bootstrap) {
	bootstrap = b
}

// SetServices injects prebuilt services, bypassing the bootstrap.
func SetServices(s *Services) {
	services = s
}

// Execute runs the root command and then releases the services, whether or
// not the command succeeded.
func Execute(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	return errors.Join(err, teardown())
}

// setup builds services for commands that need them.
func setup(cmd *cobra.Command, _ []string) error {
	if opts.Verbose {
		logger.SetVerbose(true)
	}
	if services != nil || bootstrap == nil || !needsServices(cmd) {
		return nil
	}

	built, err := bootstrap(cmd.Context(), opts)
	if err != nil {
		return err
	}
	services = built
	return nil
}

func teardown() error {
	if services == nil || services.Close == nil {
		return nil
	}
	err := services.Close()
	services = nil
	return err
}

// needsServices reports whether cmd touches the store.
func needsServices(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c == versionCmd {
			return false
		}
	}
	return cmd.Runnable()
}

func requireServices() (*Services, error) {
	if services == nil {
		return nil, errNotConfigured
	}
	return services, nil
}
