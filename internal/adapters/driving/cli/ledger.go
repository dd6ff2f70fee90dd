package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/barangay-cli/internal/core/domain"
)

var ledgerCmd = &cobra.Command{
	Use:   "ledger",
	Short: "Manage income and expense entries",
	Long: `Income and expense entries share one ledger, separated by kind.
Amounts are stored in centavos.`,
}

var ledgerListCmd = &cobra.Command{
	Use:   "list",
	Short: "List ledger entries",
	Args:  cobra.NoArgs,
	RunE:  runLedgerList,
}

var ledgerSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Insert or update a ledger entry from JSON",
	Args:  cobra.NoArgs,
	RunE:  runLedgerSave,
}

var ledgerDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a ledger entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runLedgerDelete,
}

var ledgerTotalsCmd = &cobra.Command{
	Use:   "totals",
	Short: "Sum amounts per category",
	Args:  cobra.NoArgs,
	RunE:  runLedgerTotals,
}

func init() {
	ledgerListCmd.Flags().String("kind", "", "income or expense (default both)")
	ledgerTotalsCmd.Flags().String("kind", "", "income or expense (default both)")
	ledgerSaveCmd.Flags().StringP("file", "f", "", "JSON file to read (- for stdin)")

	ledgerCmd.AddCommand(ledgerListCmd)
	ledgerCmd.AddCommand(ledgerSaveCmd)
	ledgerCmd.AddCommand(ledgerDeleteCmd)
	ledgerCmd.AddCommand(ledgerTotalsCmd)
	rootCmd.AddCommand(ledgerCmd)
}

func runLedgerList(cmd *cobra.Command, _ []string) error {
	svc, err := requireServices()
	if err != nil {
		return err
	}

	kind, _ := cmd.Flags().GetString("kind")
	entries, err := svc.Ledger.List(cmd.Context(), domain.LedgerKind(kind))
	if err != nil {
		return fmt.Errorf("failed to list ledger entries: %w", err)
	}

	rows := make([][]string, len(entries))
	for i, e := range entries {
		rows[i] = []string{
			itoa(e.ID), e.Date, string(e.Kind), string(e.Category), e.Type,
			domain.FormatCentavos(e.AmountCentavos), e.ReferenceNumber,
		}
	}
	return printRows(cmd, entries, []string{"ID", "DATE", "KIND", "CATEGORY", "TYPE", "AMOUNT", "REFERENCE"}, rows)
}

func runLedgerSave(cmd *cobra.Command, _ []string) error {
	svc, err := requireServices()
	if err != nil {
		return err
	}

	path, _ := cmd.Flags().GetString("file")
	var entry domain.LedgerEntry
	if err := readJSON(cmd, path, &entry); err != nil {
		return err
	}

	id, err := svc.Ledger.Save(cmd.Context(), entry)
	if err != nil {
		return fmt.Errorf("failed to save ledger entry: %w", err)
	}
	return printSaved(cmd, "ledger entry", id)
}

func runLedgerDelete(cmd *cobra.Command, args []string) error {
	svc, err := requireServices()
	if err != nil {
		return err
	}

	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	if err := svc.Ledger.Delete(cmd.Context(), id); err != nil {
		return fmt.Errorf("failed to delete ledger entry: %w", err)
	}
	return printDone(cmd, "Deleted ledger entry %d", id)
}

func runLedgerTotals(cmd *cobra.Command, _ []string) error {
	svc, err := requireServices()
	if err != nil {
		return err
	}

	kind, _ := cmd.Flags().GetString("kind")
	totals, err := svc.Ledger.Totals(cmd.Context(), domain.LedgerKind(kind))
	if err != nil {
		return fmt.Errorf("failed to total ledger: %w", err)
	}

	rows := make([][]string, len(totals))
	for i, t := range totals {
		rows[i] = []string{string(t.Kind), string(t.Category), fmt.Sprint(t.Entries), domain.FormatCentavos(t.AmountCentavos)}
	}
	return printRows(cmd, totals, []string{"KIND", "CATEGORY", "ENTRIES", "TOTAL"}, rows)
}
