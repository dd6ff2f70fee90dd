package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/barangay-cli/internal/core/domain"
)

var blotterCmd = &cobra.Command{
	Use:   "blotter",
	Short: "Manage incident reports",
}

var blotterListCmd = &cobra.Command{
	Use:   "list",
	Short: "List incident reports",
	Args:  cobra.NoArgs,
	RunE:  runBlotterList,
}

var blotterSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Insert or update an incident report from JSON",
	Args:  cobra.NoArgs,
	RunE:  runBlotterSave,
}

var blotterStatusCmd = &cobra.Command{
	Use:   "status [id]",
	Short: "Update the status and case fields of a report",
	Long: `Updates only the fields given as flags; everything else is kept.

Example:
  barangay blotter status 12 --status Scheduled --hearing-date 2024-04-10`,
	Args: cobra.ExactArgs(1),
	RunE: runBlotterStatus,
}

var blotterDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete an incident report",
	Args:  cobra.ExactArgs(1),
	RunE:  runBlotterDelete,
}

func init() {
	blotterSaveCmd.Flags().StringP("file", "f", "", "JSON file to read (- for stdin)")

	blotterStatusCmd.Flags().String("status", "", "new status")
	blotterStatusCmd.Flags().String("narrative", "", "incident narrative")
	blotterStatusCmd.Flags().String("action", "", "action taken")
	blotterStatusCmd.Flags().String("resolution", "", "resolution")
	blotterStatusCmd.Flags().String("hearing-date", "", "hearing date (YYYY-MM-DD)")

	blotterCmd.AddCommand(blotterListCmd)
	blotterCmd.AddCommand(blotterSaveCmd)
	blotterCmd.AddCommand(blotterStatusCmd)
	blotterCmd.AddCommand(blotterDeleteCmd)
	rootCmd.AddCommand(blotterCmd)
}

func runBlotterList(cmd *cobra.Command, _ []string) error {
	svc, err := requireServices()
	if err != nil {
		return err
	}

	blotters, err := svc.Blotters.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list blotters: %w", err)
	}

	rows := make([][]string, len(blotters))
	for i, b := range blotters {
		rows[i] = []string{itoa(b.ID), b.IncidentDate, b.Type, b.ReportedBy, b.Zone, string(b.Status), b.HearingDate}
	}
	return printRows(cmd, blotters, []string{"ID", "DATE", "TYPE", "REPORTED BY", "ZONE", "STATUS", "HEARING"}, rows)
}

func runBlotterSave(cmd *cobra.Command, _ []string) error {
	svc, err := requireServices()
	if err != nil {
		return err
	}

	path, _ := cmd.Flags().GetString("file")
	var blotter domain.Blotter
	if err := readJSON(cmd, path, &blotter); err != nil {
		return err
	}

	id, err := svc.Blotters.Save(cmd.Context(), blotter)
	if err != nil {
		return fmt.Errorf("failed to save blotter: %w", err)
	}
	return printSaved(cmd, "blotter", id)
}

func runBlotterStatus(cmd *cobra.Command, args []string) error {
	svc, err := requireServices()
	if err != nil {
		return err
	}

	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	var patch domain.BlotterPatch
	if cmd.Flags().Changed("status") {
		v, _ := cmd.Flags().GetString("status")
		status := domain.BlotterStatus(v)
		patch.Status = &status
	}
	patch.Narrative = changedString(cmd, "narrative")
	patch.Action = changedString(cmd, "action")
	patch.Resolution = changedString(cmd, "resolution")
	patch.HearingDate = changedString(cmd, "hearing-date")

	if err := svc.Blotters.UpdateCase(cmd.Context(), id, patch); err != nil {
		return fmt.Errorf("failed to update blotter: %w", err)
	}
	return printDone(cmd, "Updated blotter %d", id)
}

// changedString returns the flag value only when it was given on the command line.
func changedString(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetString(name)
	return &v
}

func runBlotterDelete(cmd *cobra.Command, args []string) error {
	svc, err := requireServices()
	if err != nil {
		return err
	}

	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	if err := svc.Blotters.Delete(cmd.Context(), id); err != nil {
		return fmt.Errorf("failed to delete blotter: %w", err)
	}
	return printDone(cmd, "Deleted blotter %d", id)
}
