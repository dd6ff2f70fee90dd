package cli

import (
	"bytes"
	"context"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/custodia-labs/barangay-cli/internal/adapters/driven/storage/memory"
	coreservices "github.com/custodia-labs/barangay-cli/internal/core/services"
)

// setupTestServices injects services backed by in-memory stores.
func setupTestServices() func() {
	residents := memory.NewResidentStore()
	SetServices(&Services{
		Residents:    coreservices.NewResidentService(residents),
		Households:   coreservices.NewHouseholdService(memory.NewHouseholdQuery(residents), memory.NewConfigStore()),
		MapPins:      coreservices.NewMapPinService(memory.NewMapPinStore(residents)),
		Officials:    coreservices.NewOfficialService(memory.NewOfficialStore()),
		Blotters:     coreservices.NewBlotterService(memory.NewBlotterStore()),
		Ledger:       coreservices.NewLedgerService(memory.NewLedgerStore()),
		Events:       coreservices.NewEventService(memory.NewEventStore()),
		Settings:     coreservices.NewSettingsService(memory.NewSettingsStore()),
		DatabasePath: "/tmp/barangay-test.db",
	})
	return func() {
		SetServices(nil)
		resetFlags(rootCmd)
	}
}

// resetFlags restores every flag to its default; cobra keeps values between executions.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// execute runs the root command with args and stdin, returning combined output.
func execute(stdin string, args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		resetFlags(rootCmd)
	}()

	err := Execute(context.Background())
	return buf.String(), err
}
