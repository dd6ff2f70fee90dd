package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/barangay-cli/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage the office settings",
	Long:  `View and save the barangay's identity: its name, municipality, province, contacts and logos.`,
	RunE:  runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsShow,
}

var settingsSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save settings from JSON",
	Args:  cobra.NoArgs,
	RunE:  runSettingsSave,
}

func init() {
	settingsSaveCmd.Flags().StringP("file", "f", "", "JSON file to read (- for stdin)")

	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSaveCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	svc, err := requireServices()
	if err != nil {
		return err
	}

	settings, err := svc.Settings.Get(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	if jsonOutput {
		return printJSON(cmd, settings)
	}
	if settings.IsZero() {
		cmd.Println("Settings have not been saved yet.")
		return nil
	}

	cmd.Println("Office Settings")
	cmd.Println("===============")
	cmd.Println()
	cmd.Printf("  Barangay:       %s\n", settings.Barangay)
	cmd.Printf("  Municipality:   %s\n", settings.Municipality)
	cmd.Printf("  Province:       %s\n", settings.Province)
	cmd.Printf("  Phone:          %s\n", orNotSet(settings.Phone))
	cmd.Printf("  Email:          %s\n", orNotSet(settings.Email))
	cmd.Printf("  Logo:           %s\n", orNotSet(settings.Logo))
	cmd.Printf("  Municipal logo: %s\n", orNotSet(settings.MunicipalLogo))
	return nil
}

func runSettingsSave(cmd *cobra.Command, _ []string) error {
	svc, err := requireServices()
	if err != nil {
		return err
	}

	path, _ := cmd.Flags().GetString("file")
	var settings domain.Settings
	if err := readJSON(cmd, path, &settings); err != nil {
		return err
	}

	if err := svc.Settings.Save(cmd.Context(), settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return printDone(cmd, "Settings saved")
}

func orNotSet(s string) string {
	if s == "" {
		return "(not set)"
	}
	return s
}
