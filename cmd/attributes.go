package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/mj1618/ax-inspector/internal/ax"
	"github.com/mj1618/ax-inspector/internal/output"
	"github.com/mj1618/ax-inspector/internal/platform"
	"github.com/mj1618/ax-inspector/internal/render"
)

var attributesCmd = &cobra.Command{
	Use:   "attributes [app]",
	Short: "List every attribute of an application's root element",
	Long: `Query every attribute the application element supports and print one
"name = value" line per attribute, in the same order as inspect uses.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAttributes,
}

func init() {
	rootCmd.AddCommand(attributesCmd)
	attributesCmd.Flags().Bool("frontmost", false, "Use the frontmost application")
}

func runAttributes(cmd *cobra.Command, args []string) error {
	frontmost, _ := cmd.Flags().GetBool("frontmost")
	target, err := parseTarget(args, frontmost)
	if err != nil {
		return err
	}
	width, err := truncateWidth(viper.GetViper())
	if err != nil {
		return err
	}

	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}
	inspector, err := provider.NewInspector(ax.DefaultOptions(), ax.WithLogger(logger))
	if err != nil {
		return err
	}

	app, snap, err := inspector.ReadRoot(target)
	if err != nil {
		return err
	}
	logger.Debug("read root attributes", zap.String("app", app.Name), zap.Int("count", len(snap)))

	if output.OutputFormat != output.FormatText {
		return output.Print(cmd.OutOrStdout(), output.NewAttributesResult(app, snap))
	}

	lw := output.NewLineWriter(cmd.OutOrStdout())
	if err := render.New(lw, ax.ModeFull, rendererOptions(width)...).Attributes(snap); err != nil {
		return err
	}
	return lw.Flush()
}
