package server

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"

	"github.com/mj1618/ax-inspector/internal/ax"
	"github.com/mj1618/ax-inspector/internal/model"
	"github.com/mj1618/ax-inspector/internal/output"
	"github.com/mj1618/ax-inspector/internal/render"
)

func targetParam(request mcp.CallToolRequest) (ax.Target, error) {
	name := strings.TrimSpace(request.GetString("app", ""))
	frontmost := request.GetBool("frontmost", false)
	if frontmost && name != "" {
		return ax.Target{}, fmt.Errorf("specify app or frontmost, not both")
	}
	return ax.Target{Name: name, Frontmost: name == ""}, nil
}

// encode writes v in the given structured format.
func encode(format output.Format, v interface{}) (string, error) {
	var b strings.Builder
	var err error
	switch format {
	case output.FormatJSON:
		err = output.PrintPrettyJSON(&b, v)
	default:
		err = output.PrintYAML(&b, v)
	}
	return b.String(), err
}

func (s *Server) handleInspect(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	target, err := targetParam(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	format, err := output.ParseFormat(request.GetString("format", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	opts := s.defaults
	if request.GetBool("full", false) {
		opts.Mode = ax.ModeFull
	}
	opts.MaxDepth = request.GetInt("max_depth", opts.MaxDepth)

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	in, err := s.provider.NewInspector(opts, ax.WithLogger(s.logger))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	s.logger.Debug("mcp inspect", zap.Stringer("target", target), zap.Stringer("mode", opts.Mode))

	if format == output.FormatText {
		var b strings.Builder
		lw := output.NewLineWriter(&b)
		if _, err := in.Inspect(target, render.New(lw, opts.Mode).Render); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if err := lw.Flush(); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(b.String()), nil
	}

	var c model.Collector
	app, err := in.Inspect(target, c.Visit)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	result := output.NewInspectResult(app, opts, c.Tree())

	var text string
	if request.GetBool("flat", false) {
		text, err = encode(format, result.Flat())
	} else {
		text, err = encode(format, result)
	}
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(text), nil
}

func (s *Server) handleAttributes(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	target, err := targetParam(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	in, err := s.provider.NewInspector(s.defaults, ax.WithLogger(s.logger))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	app, snap, err := in.ReadRoot(target)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	text, err := encode(output.FormatYAML, output.NewAttributesResult(app, snap))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(text), nil
}

func (s *Server) handleListApps(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	apps, err := s.provider.Resolver.ListApplications()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	sort.SliceStable(apps, func(i, j int) bool {
		return strings.ToLower(apps[i].Name) < strings.ToLower(apps[j].Name)
	})

	text, err := encode(output.FormatYAML, apps)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(text), nil
}
