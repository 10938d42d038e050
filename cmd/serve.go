package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/mj1618/ax-inspector/internal/platform"
	"github.com/mj1618/ax-inspector/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an MCP server exposing the inspector as tools",
	Long: `Start a Model Context Protocol (MCP) server with inspect, attributes and
list_apps tools. Every call reads the tree afresh.

Supported transports:
  stdio             Standard I/O (default)
  streamable-http   Streamable HTTP transport

Examples:
  ax-inspector serve
  ax-inspector serve --transport streamable-http --port 8080`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("transport", "stdio", "Transport: stdio, streamable-http")
	serveCmd.Flags().Int("port", 8080, "HTTP port for streamable-http transport")
}

func runServe(cmd *cobra.Command, args []string) error {
	transport, _ := cmd.Flags().GetString("transport")
	port, _ := cmd.Flags().GetInt("port")

	opts, err := inspectOptions(viper.GetViper(), false)
	if err != nil {
		return err
	}

	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}

	srv := server.New(provider, opts, logger)
	logger.Info("starting MCP server", zap.String("transport", transport), zap.Int("port", port))
	if err := srv.Serve(server.Config{Transport: transport, Port: port}); err != nil {
		return fmt.Errorf("mcp server: %w", err)
	}
	return nil
}
