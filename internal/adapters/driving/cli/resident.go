package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/barangay-cli/internal/core/domain"
)

var residentCmd = &cobra.Command{
	Use:   "resident",
	Short: "Manage residents",
	Long:  `List, save, or delete registered residents.`,
}

var residentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all residents",
	Args:  cobra.NoArgs,
	RunE:  runResidentList,
}

var residentSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Insert or update a resident from JSON",
	Long: `Reads a resident as JSON. A record without "id" is inserted;
a record with "id" replaces the stored resident.

Example:
  echo '{"first_name":"Juan","last_name":"Dela Cruz"}' | barangay resident save --file -`,
	Args: cobra.NoArgs,
	RunE: runResidentSave,
}

var residentDeleteCmd = &cobra.Command{
	Use:   "delete [id...]",
	Short: "Delete one or more residents",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runResidentDelete,
}

func init() {
	residentSaveCmd.Flags().StringP("file", "f", "", "JSON file to read (- for stdin)")

	residentCmd.AddCommand(residentListCmd)
	residentCmd.AddCommand(residentSaveCmd)
	residentCmd.AddCommand(residentDeleteCmd)
	rootCmd.AddCommand(residentCmd)
}

func runResidentList(cmd *cobra.Command, _ []string) error {
	svc, err := requireServices()
	if err != nil {
		return err
	}

	residents, err := svc.Residents.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list residents: %w", err)
	}
	return printResidents(cmd, residents)
}

func printResidents(cmd *cobra.Command, residents []domain.Resident) error {
	rows := make([][]string, len(residents))
	for i := range residents {
		r := &residents[i]
		household := ""
		if r.HouseholdNumber != nil {
			household = *r.HouseholdNumber
		}
		rows[i] = []string{
			itoa(r.ID), r.DisplayName(), household, string(r.RoleInHousehold),
			r.Zone, string(r.Status), itoa(r.AverageMonthlyIncome),
		}
	}
	return printRows(cmd, residents,
		[]string{"ID", "NAME", "HOUSEHOLD", "ROLE", "ZONE", "STATUS", "INCOME"}, rows)
}

func runResidentSave(cmd *cobra.Command, _ []string) error {
	svc, err := requireServices()
	if err != nil {
		return err
	}

	path, _ := cmd.Flags().GetString("file")
	var resident domain.Resident
	if err := readJSON(cmd, path, &resident); err != nil {
		return err
	}

	id, err := svc.Residents.Save(cmd.Context(), resident)
	if err != nil {
		return fmt.Errorf("failed to save resident: %w", err)
	}
	return printSaved(cmd, "resident", id)
}

func runResidentDelete(cmd *cobra.Command, args []string) error {
	svc, err := requireServices()
	if err != nil {
		return err
	}

	ids := make([]int64, len(args))
	for i, arg := range args {
		if ids[i], err = parseID(arg); err != nil {
			return err
		}
	}

	if len(ids) == 1 {
		err = svc.Residents.Delete(cmd.Context(), ids[0])
	} else {
		err = svc.Residents.DeleteMany(cmd.Context(), ids)
	}
	if err != nil {
		return fmt.Errorf("failed to delete residents: %w", err)
	}
	return printDone(cmd, "Deleted %d resident(s)", len(ids))
}
