package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/barangay-cli/internal/core/domain"
)

var householdCmd = &cobra.Command{
	Use:   "household",
	Short: "Query households",
	Long: `Households are derived from residents sharing a household number.
These commands are read-only.`,
}

var householdHeadsCmd = &cobra.Command{
	Use:   "heads",
	Short: "List one head per household",
	Args:  cobra.NoArgs,
	RunE:  runHouseholdHeads,
}

var householdMembersCmd = &cobra.Command{
	Use:   "members [household-number]",
	Short: "List the members of a household",
	Args:  cobra.ExactArgs(1),
	RunE:  runHouseholdMembers,
}

var householdSummaryCmd = &cobra.Command{
	Use:   "summary [household-number]",
	Short: "Summarise a household",
	Args:  cobra.ExactArgs(1),
	RunE:  runHouseholdSummary,
}

var householdIncomeCmd = &cobra.Command{
	Use:   "income",
	Short: "Show total monthly income per household",
	Args:  cobra.NoArgs,
	RunE:  runHouseholdIncome,
}

var householdPWDCmd = &cobra.Command{
	Use:   "pwd",
	Short: "List households with a person with disability",
	Args:  cobra.NoArgs,
	RunE:  runHouseholdPWD,
}

var householdSeniorCmd = &cobra.Command{
	Use:   "senior",
	Short: "List households with a senior citizen",
	Args:  cobra.NoArgs,
	RunE:  runHouseholdSenior,
}

var householdLowIncomeCmd = &cobra.Command{
	Use:   "low-income",
	Short: "List households below an income threshold",
	Long: `Lists households whose total monthly income is strictly below the threshold.
Without --threshold the configured households.low_income_threshold is used.`,
	Args: cobra.NoArgs,
	RunE: runHouseholdLowIncome,
}

func init() {
	householdLowIncomeCmd.Flags().Int64("threshold", 0, "monthly income threshold")

	householdCmd.AddCommand(householdHeadsCmd)
	householdCmd.AddCommand(householdMembersCmd)
	householdCmd.AddCommand(householdSummaryCmd)
	householdCmd.AddCommand(householdIncomeCmd)
	householdCmd.AddCommand(householdPWDCmd)
	householdCmd.AddCommand(householdSeniorCmd)
	householdCmd.AddCommand(householdLowIncomeCmd)
	rootCmd.AddCommand(householdCmd)
}

func runHouseholdHeads(cmd *cobra.Command, _ []string) error {
	svc, err := requireServices()
	if err != nil {
		return err
	}

	heads, err := svc.Households.Heads(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list household heads: %w", err)
	}

	rows := make([][]string, len(heads))
	for i := range heads {
		h := &heads[i]
		rows[i] = []string{h.HouseholdNumber, itoa(h.ID), h.FullName(), h.Zone, yesNo(h.IsPWD), yesNo(h.IsSenior)}
	}
	return printRows(cmd, heads, []string{"HOUSEHOLD", "ID", "HEAD", "ZONE", "PWD", "SENIOR"}, rows)
}

func runHouseholdMembers(cmd *cobra.Command, args []string) error {
	svc, err := requireServices()
	if err != nil {
		return err
	}

	members, err := svc.Households.Members(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to list household members: %w", err)
	}
	return printResidents(cmd, members)
}

func runHouseholdSummary(cmd *cobra.Command, args []string) error {
	svc, err := requireServices()
	if err != nil {
		return err
	}

	summary, err := svc.Households.Summary(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to summarise household: %w", err)
	}
	if jsonOutput {
		return printJSON(cmd, summary)
	}

	cmd.Printf("Household: %s\n\n", summary.HouseholdNumber)
	if summary.Head != nil {
		cmd.Printf("  Head:         %s\n", summary.Head.FullName())
	}
	cmd.Printf("  Members:      %d\n", len(summary.Members))
	cmd.Printf("  Total income: %d\n", summary.TotalIncome)
	cmd.Printf("  Has PWD:      %t\n", summary.HasPWD)
	cmd.Printf("  Has senior:   %t\n", summary.HasSenior)
	return nil
}

func runHouseholdIncome(cmd *cobra.Command, _ []string) error {
	svc, err := requireServices()
	if err != nil {
		return err
	}

	totals, err := svc.Households.IncomeTotals(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to total household income: %w", err)
	}
	return printIncomes(cmd, totals)
}

func runHouseholdLowIncome(cmd *cobra.Command, _ []string) error {
	svc, err := requireServices()
	if err != nil {
		return err
	}

	threshold, _ := cmd.Flags().GetInt64("threshold")
	totals, err := svc.Households.LowIncome(cmd.Context(), threshold)
	if err != nil {
		return fmt.Errorf("failed to list low income households: %w", err)
	}
	return printIncomes(cmd, totals)
}

func printIncomes(cmd *cobra.Command, totals []domain.HouseholdIncome) error {
	rows := make([][]string, len(totals))
	for i, t := range totals {
		rows[i] = []string{t.HouseholdNumber, itoa(t.TotalIncome)}
	}
	return printRows(cmd, totals, []string{"HOUSEHOLD", "TOTAL INCOME"}, rows)
}

func runHouseholdPWD(cmd *cobra.Command, _ []string) error {
	svc, err := requireServices()
	if err != nil {
		return err
	}

	numbers, err := svc.Households.WithPWD(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list households with PWD: %w", err)
	}
	return printHouseholdNumbers(cmd, numbers)
}

func runHouseholdSenior(cmd *cobra.Command, _ []string) error {
	svc, err := requireServices()
	if err != nil {
		return err
	}

	numbers, err := svc.Households.WithSenior(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list households with seniors: %w", err)
	}
	return printHouseholdNumbers(cmd, numbers)
}

func printHouseholdNumbers(cmd *cobra.Command, numbers []string) error {
	rows := make([][]string, len(numbers))
	for i, n := range numbers {
		rows[i] = []string{n}
	}
	return printRows(cmd, numbers, []string{"HOUSEHOLD"}, rows)
}
