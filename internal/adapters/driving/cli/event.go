package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/barangay-cli/internal/core/domain"
)

var eventCmd = &cobra.Command{
	Use:   "event",
	Short: "Manage barangay events",
}

var eventListCmd = &cobra.Command{
	Use:   "list",
	Short: "List events",
	Args:  cobra.NoArgs,
	RunE:  runEventList,
}

var eventSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Insert or update an event from JSON",
	Args:  cobra.NoArgs,
	RunE:  runEventSave,
}

var eventDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete an event",
	Args:  cobra.ExactArgs(1),
	RunE:  runEventDelete,
}

func init() {
	eventSaveCmd.Flags().StringP("file", "f", "", "JSON file to read (- for stdin)")

	eventCmd.AddCommand(eventListCmd)
	eventCmd.AddCommand(eventSaveCmd)
	eventCmd.AddCommand(eventDeleteCmd)
	rootCmd.AddCommand(eventCmd)
}

func runEventList(cmd *cobra.Command, _ []string) error {
	svc, err := requireServices()
	if err != nil {
		return err
	}

	events, err := svc.Events.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list events: %w", err)
	}

	rows := make([][]string, len(events))
	for i, e := range events {
		rows[i] = []string{itoa(e.ID), e.Date, e.Name, e.Type, string(e.Status), e.Venue}
	}
	return printRows(cmd, events, []string{"ID", "DATE", "NAME", "TYPE", "STATUS", "VENUE"}, rows)
}

func runEventSave(cmd *cobra.Command, _ []string) error {
	svc, err := requireServices()
	if err != nil {
		return err
	}

	path, _ := cmd.Flags().GetString("file")
	var event domain.Event
	if err := readJSON(cmd, path, &event); err != nil {
		return err
	}

	id, err := svc.Events.Save(cmd.Context(), event)
	if err != nil {
		return fmt.Errorf("failed to save event: %w", err)
	}
	return printSaved(cmd, "event", id)
}

func runEventDelete(cmd *cobra.Command, args []string) error {
	svc, err := requireServices()
	if err != nil {
		return err
	}

	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	if err := svc.Events.Delete(cmd.Context(), id); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return printDone(cmd, "Deleted event %d", id)
}
