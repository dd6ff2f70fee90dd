package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/barangay-cli/internal/core/domain"
)

var mappinCmd = &cobra.Command{
	Use:   "mappin",
	Short: "Manage household map pins",
	Long:  `Pins place households on the barangay map. Pin names are unique.`,
}

var mappinListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all map pins",
	Args:  cobra.NoArgs,
	RunE:  runMapPinList,
}

var mappinSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Insert or update a map pin from JSON",
	Args:  cobra.NoArgs,
	RunE:  runMapPinSave,
}

var mappinLinkCmd = &cobra.Command{
	Use:   "link [resident-id]",
	Short: "Create a pin named after a resident",
	Long: `Creates a map pin whose name is the resident's "First Last" name.
Fails if the resident does not exist or a pin with that name already exists.`,
	Args: cobra.ExactArgs(1),
	RunE: runMapPinLink,
}

var mappinUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Replace an existing map pin from JSON",
	Args:  cobra.NoArgs,
	RunE:  runMapPinUpdate,
}

var mappinDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a map pin",
	Args:  cobra.ExactArgs(1),
	RunE:  runMapPinDelete,
}

func init() {
	mappinSaveCmd.Flags().StringP("file", "f", "", "JSON file to read (- for stdin)")
	mappinUpdateCmd.Flags().StringP("file", "f", "", "JSON file to read (- for stdin)")

	mappinLinkCmd.Flags().Float64("x", 0, "x coordinate on the map")
	mappinLinkCmd.Flags().Float64("y", 0, "y coordinate on the map")
	mappinLinkCmd.Flags().String("house-number", "", "house number")
	mappinLinkCmd.Flags().String("zone", "", "zone")
	mappinLinkCmd.Flags().String("section", "", "section")

	mappinCmd.AddCommand(mappinListCmd)
	mappinCmd.AddCommand(mappinSaveCmd)
	mappinCmd.AddCommand(mappinLinkCmd)
	mappinCmd.AddCommand(mappinUpdateCmd)
	mappinCmd.AddCommand(mappinDeleteCmd)
	rootCmd.AddCommand(mappinCmd)
}

func runMapPinList(cmd *cobra.Command, _ []string) error {
	svc, err := requireServices()
	if err != nil {
		return err
	}

	pins, err := svc.MapPins.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list map pins: %w", err)
	}

	rows := make([][]string, len(pins))
	for i, p := range pins {
		rows[i] = []string{
			itoa(p.ID), p.Name,
			strconv.FormatFloat(p.X, 'f', -1, 64), strconv.FormatFloat(p.Y, 'f', -1, 64),
			p.HouseNumber, p.Zone, p.Section,
		}
	}
	return printRows(cmd, pins, []string{"ID", "NAME", "X", "Y", "HOUSE", "ZONE", "SECTION"}, rows)
}

func runMapPinSave(cmd *cobra.Command, _ []string) error {
	svc, err := requireServices()
	if err != nil {
		return err
	}

	path, _ := cmd.Flags().GetString("file")
	var pin domain.MapPin
	if err := readJSON(cmd, path, &pin); err != nil {
		return err
	}

	id, err := svc.MapPins.Save(cmd.Context(), pin)
	if err != nil {
		return fmt.Errorf("failed to save map pin: %w", err)
	}
	return printSaved(cmd, "map pin", id)
}

func runMapPinLink(cmd *cobra.Command, args []string) error {
	svc, err := requireServices()
	if err != nil {
		return err
	}

	residentID, err := parseID(args[0])
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	var pin domain.MapPin
	pin.X, _ = flags.GetFloat64("x")
	pin.Y, _ = flags.GetFloat64("y")
	pin.HouseNumber, _ = flags.GetString("house-number")
	pin.Zone, _ = flags.GetString("zone")
	pin.Section, _ = flags.GetString("section")

	id, err := svc.MapPins.SaveFromResident(cmd.Context(), residentID, pin)
	if err != nil {
		return fmt.Errorf("failed to link map pin: %w", err)
	}
	return printSaved(cmd, "map pin", id)
}

func runMapPinUpdate(cmd *cobra.Command, _ []string) error {
	svc, err := requireServices()
	if err != nil {
		return err
	}

	path, _ := cmd.Flags().GetString("file")
	var pin domain.MapPin
	if err := readJSON(cmd, path, &pin); err != nil {
		return err
	}

	if err := svc.MapPins.Update(cmd.Context(), pin); err != nil {
		return fmt.Errorf("failed to update map pin: %w", err)
	}
	return printDone(cmd, "Updated map pin %d", pin.ID)
}

func runMapPinDelete(cmd *cobra.Command, args []string) error {
	svc, err := requireServices()
	if err != nil {
		return err
	}

	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	if err := svc.MapPins.Delete(cmd.Context(), id); err != nil {
		return fmt.Errorf("failed to delete map pin: %w", err)
	}
	return printDone(cmd, "Deleted map pin %d", id)
}
