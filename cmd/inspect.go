package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/mj1618/ax-inspector/internal/ax"
	"github.com/mj1618/ax-inspector/internal/model"
	"github.com/mj1618/ax-inspector/internal/output"
	"github.com/mj1618/ax-inspector/internal/platform"
	"github.com/mj1618/ax-inspector/internal/render"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [app]",
	Short: "Print the accessibility tree of an application",
	Long: `Walk the accessibility tree of a running application and print each element.

The default curated mode prints one "Element Properties: {...}" line per element
with up to ten common attributes. --full prints role, role description, title
and value for every element instead.

Without an application name the frontmost application is inspected. Use
--delay to switch to the target application before the tree is read.

Examples:
  ax-inspector inspect Finder
  ax-inspector inspect --full --max-depth 4 "System Settings"
  ax-inspector inspect --delay 3
  ax-inspector inspect Notes --format yaml --flat`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().Bool("frontmost", false, "Inspect the frontmost application")
	inspectCmd.Flags().Bool("full", false, "Query every attribute and print role, description, title and value")
	inspectCmd.Flags().Int("max-depth", ax.DefaultMaxDepth, "Maximum depth below the application element")
	inspectCmd.Flags().Int("delay", 0, "Seconds to wait before reading the tree")
	inspectCmd.Flags().Int("truncate", 0, "Truncate text values to this many terminal cells (0 = off)")
	inspectCmd.Flags().Bool("flat", false, "Flat element list with path breadcrumbs (yaml/json only)")
	bindFlags(inspectCmd.Flags(), map[string]string{
		"max-depth": keyMaxDepth,
		"truncate":  keyTruncate,
	})
}

func runInspect(cmd *cobra.Command, args []string) error {
	frontmost, _ := cmd.Flags().GetBool("frontmost")
	full, _ := cmd.Flags().GetBool("full")
	flat, _ := cmd.Flags().GetBool("flat")
	delay, _ := cmd.Flags().GetInt("delay")

	target, err := parseTarget(args, frontmost)
	if err != nil {
		return err
	}
	opts, err := inspectOptions(viper.GetViper(), full)
	if err != nil {
		return err
	}
	width, err := truncateWidth(viper.GetViper())
	if err != nil {
		return err
	}
	if delay < 0 {
		return fmt.Errorf("--delay must not be negative")
	}

	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}
	inspectorOpts := []ax.InspectorOption{ax.WithLogger(logger)}
	if delay > 0 {
		// The wait starts only once permission is known to be granted.
		inspectorOpts = append(inspectorOpts, ax.WithAfterPermission(func() {
			countdown(countdownWriter(), delay, time.Sleep)
		}))
	}
	inspector, err := provider.NewInspector(opts, inspectorOpts...)
	if err != nil {
		return err
	}

	logger.Debug("inspecting",
		zap.Stringer("target", target),
		zap.Stringer("mode", opts.Mode),
		zap.Int("max_depth", opts.MaxDepth))

	if output.OutputFormat == output.FormatText {
		return inspectText(cmd.OutOrStdout(), inspector, target, opts.Mode, rendererOptions(width)...)
	}
	return inspectStructured(cmd.OutOrStdout(), inspector, target, opts, flat)
}

// inspectText streams rendered lines to w as the walk proceeds.
func inspectText(w io.Writer, in *ax.Inspector, target ax.Target, mode ax.Mode, opts ...render.Option) error {
	lw := output.NewLineWriter(w)
	r := render.New(lw, mode, opts...)

	app, err := in.Inspect(target, r.Render)
	if ferr := lw.Flush(); err == nil {
		err = ferr
	}
	if err != nil {
		return err
	}
	logger.Debug("inspection complete", zap.String("app", app.Name), zap.Int("lines", lw.Lines()))
	return nil
}

// inspectStructured collects the whole walk and prints it as YAML or JSON.
func inspectStructured(w io.Writer, in *ax.Inspector, target ax.Target, opts ax.Options, flat bool) error {
	var c model.Collector
	app, err := in.Inspect(target, c.Visit)
	if err != nil {
		return err
	}
	logger.Debug("inspection complete", zap.String("app", app.Name), zap.Int("elements", c.Len()))

	result := output.NewInspectResult(app, opts, c.Tree())
	if flat {
		return output.Print(w, result.Flat())
	}
	return output.Print(w, result)
}
