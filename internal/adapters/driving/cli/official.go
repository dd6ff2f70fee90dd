package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/barangay-cli/internal/core/domain"
)

var officialCmd = &cobra.Command{
	Use:   "official",
	Short: "Manage barangay officials",
}

var officialListCmd = &cobra.Command{
	Use:   "list",
	Short: "List officials",
	Args:  cobra.NoArgs,
	RunE:  runOfficialList,
}

var officialSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Insert or update an official from JSON",
	Args:  cobra.NoArgs,
	RunE:  runOfficialSave,
}

var officialDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete an official",
	Args:  cobra.ExactArgs(1),
	RunE:  runOfficialDelete,
}

func init() {
	officialSaveCmd.Flags().StringP("file", "f", "", "JSON file to read (- for stdin)")

	officialCmd.AddCommand(officialListCmd)
	officialCmd.AddCommand(officialSaveCmd)
	officialCmd.AddCommand(officialDeleteCmd)
	rootCmd.AddCommand(officialCmd)
}

func runOfficialList(cmd *cobra.Command, _ []string) error {
	svc, err := requireServices()
	if err != nil {
		return err
	}

	officials, err := svc.Officials.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list officials: %w", err)
	}

	rows := make([][]string, len(officials))
	for i, o := range officials {
		rows[i] = []string{itoa(o.ID), o.Name, string(o.Role), string(o.Type), o.TermStart, o.TermEnd, o.Contact}
	}
	return printRows(cmd, officials, []string{"ID", "NAME", "ROLE", "TYPE", "TERM START", "TERM END", "CONTACT"}, rows)
}

func runOfficialSave(cmd *cobra.Command, _ []string) error {
	svc, err := requireServices()
	if err != nil {
		return err
	}

	path, _ := cmd.Flags().GetString("file")
	var official domain.Official
	if err := readJSON(cmd, path, &official); err != nil {
		return err
	}

	id, err := svc.Officials.Save(cmd.Context(), official)
	if err != nil {
		return fmt.Errorf("failed to save official: %w", err)
	}
	return printSaved(cmd, "official", id)
}

func runOfficialDelete(cmd *cobra.Command, args []string) error {
	svc, err := requireServices()
	if err != nil {
		return err
	}

	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	if err := svc.Officials.Delete(cmd.Context(), id); err != nil {
		return fmt.Errorf("failed to delete official: %w", err)
	}
	return printDone(cmd, "Deleted official %d", id)
}
