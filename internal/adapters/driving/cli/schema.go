package cli

import (
	"github.com/spf13/cobra"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Database schema commands",
}

var schemaInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create or upgrade the database schema",
	Long: `Opens the database, creating it if needed, and brings its schema up to date:
missing tables and columns are added and legacy map pins are imported.
Running it again is harmless.`,
	Args: cobra.NoArgs,
	RunE: runSchemaInit,
}

func init() {
	schemaCmd.AddCommand(schemaInitCmd)
	rootCmd.AddCommand(schemaCmd)
}

// runSchemaInit reports the database the bootstrap opened; opening it is what upgrades the schema.
func runSchemaInit(cmd *cobra.Command, _ []string) error {
	svc, err := requireServices()
	if err != nil {
		return err
	}
	if jsonOutput {
		return printJSON(cmd, map[string]string{"database": svc.DatabasePath})
	}
	cmd.Printf("Schema ready: %s\n", svc.DatabasePath)
	return nil
}
