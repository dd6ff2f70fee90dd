package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/barangay-cli/internal/adapters/driving/mcp"
	"github.com/custodia-labs/barangay-cli/internal/logger"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server exposing the records as tools.

By default, the server communicates over stdio using JSON-RPC and can be
used with Claude Desktop and other MCP-compatible AI assistants.

Use --port to start an HTTP server instead. HTTP requests are rate limited
by mcp.rate_limit in config.toml (requests per second).

The config file is watched while the server runs; edits take effect
without a restart.

Examples:
  # Stdio mode (default)
  barangay mcp serve

  # HTTP mode
  barangay mcp serve --port 8080`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	svc, err := requireServices()
	if err != nil {
		return err
	}

	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	ports := &mcp.Ports{
		Residents:  svc.Residents,
		Households: svc.Households,
		MapPins:    svc.MapPins,
		Officials:  svc.Officials,
		Blotters:   svc.Blotters,
		Ledger:     svc.Ledger,
		Events:     svc.Events,
		Settings:   svc.Settings,
	}

	server, err := mcp.NewServer(ports, mcp.WithRateLimit(svc.MCPRateLimit))
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if svc.WatchConfig != nil {
		if err := svc.WatchConfig(ctx, func() { logger.Info("configuration reloaded") }); err != nil {
			logger.Warn("config watch disabled: %v", err)
		}
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.ErrOrStderr(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(ctx, addr)
	}

	return server.Run(ctx)
}
