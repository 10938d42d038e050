// Package server exposes the inspector as Model Context Protocol tools.
package server

import (
	"fmt"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/mj1618/ax-inspector/internal/ax"
	"github.com/mj1618/ax-inspector/internal/platform"
	"github.com/mj1618/ax-inspector/internal/version"
)

// Config holds transport settings.
type Config struct {
	Transport string
	Port      int
}

// Server wraps the MCP server with the platform provider.
// Calls are serialized on providerMu and each builds its own inspector.
type Server struct {
	provider   *platform.Provider
	providerMu sync.Mutex
	defaults   ax.Options
	logger     *zap.Logger
	mcp        *mcpserver.MCPServer
}

// New creates a server whose inspect tool starts from defaults.
func New(provider *platform.Provider, defaults ax.Options, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		provider: provider,
		defaults: defaults,
		logger:   logger,
	}
	s.mcp = mcpserver.NewMCPServer("ax-inspector", version.Version)
	s.registerTools()
	return s
}

// Serve blocks serving the configured transport.
func (s *Server) Serve(cfg Config) error {
	switch cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (s *Server) registerTools() {
	s.mcp.AddTool(
		mcp.NewTool("inspect",
			mcp.WithDescription("Dump the accessibility tree of a running macOS application. Text output has one line per element, indented two spaces per level."),
			mcp.WithString("app", mcp.Description("Application name (e.g. 'Finder'). Omit for the frontmost application.")),
			mcp.WithBoolean("frontmost", mcp.Description("Inspect the frontmost application")),
			mcp.WithBoolean("full", mcp.Description("Query every attribute and print role, description, title and value")),
			mcp.WithNumber("max_depth", mcp.Description("Maximum depth below the application element (default 10)")),
			mcp.WithString("format", mcp.Description("Output format: text (default), yaml, json")),
			mcp.WithBoolean("flat", mcp.Description("Flat element list with path breadcrumbs (yaml/json only)")),
		),
		s.handleInspect,
	)

	s.mcp.AddTool(
		mcp.NewTool("attributes",
			mcp.WithDescription("List every attribute of an application's root accessibility element"),
			mcp.WithString("app", mcp.Description("Application name. Omit for the frontmost application.")),
			mcp.WithBoolean("frontmost", mcp.Description("Use the frontmost application")),
		),
		s.handleAttributes,
	)

	s.mcp.AddTool(
		mcp.NewTool("list_apps",
			mcp.WithDescription("List regular running applications with name, PID and frontmost flag"),
		),
		s.handleListApps,
	)
}
