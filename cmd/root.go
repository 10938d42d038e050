package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/mj1618/ax-inspector/internal/output"
	"github.com/mj1618/ax-inspector/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "ax-inspector",
	Short: "Dump the accessibility tree of macOS applications",
	Long: `Inspect the accessibility tree that macOS exposes for a running application
and print each UI element's attributes.

The terminal running ax-inspector needs Accessibility permission:
System Settings > Privacy & Security > Accessibility.`,
	SilenceUsage: true,
}

var (
	logger    = zap.NewNop()
	logCloser io.Closer
	useColor  bool
)

func Execute() {
	err := rootCmd.Execute()
	closeLogger()
	if err != nil {
		os.Exit(1)
	}
}

// closeLogger flushes the logger and closes the log file. It runs after
// every command, including failed ones.
func closeLogger() {
	_ = logger.Sync()
	if logCloser != nil {
		if err := logCloser.Close(); err != nil {
			fmt.Fprintf(stderrWriter, "closing log file: %v\n", err)
		}
		logCloser = nil
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/ax-inspector/config.yaml)")
	flags.String("format", "text", "Output format: text, yaml, json")
	flags.Bool("pretty", false, "Pretty-print JSON output")
	flags.BoolP("verbose", "v", false, "Log debug details to stderr")
	flags.String("log-file", "", "Also write JSON logs to this rotating file")
	flags.String("color", "auto", "Colorize text output: auto, always, never")
	bindFlags(flags, map[string]string{
		"format":   keyFormat,
		"verbose":  keyVerbose,
		"log-file": keyLogFile,
		"color":    keyColor,
	})

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		format, err := output.ParseFormat(viper.GetString(keyFormat))
		if err != nil {
			return err
		}
		output.OutputFormat = format
		output.PrettyOutput, _ = rootCmd.PersistentFlags().GetBool("pretty")

		useColor, err = colorEnabled(viper.GetString(keyColor), !output.IsOutputPiped())
		if err != nil {
			return err
		}
		color.NoColor = !useColor

		l, closer, err := newLogger(logSettings{
			Level:      viper.GetString(keyLogLevel),
			Verbose:    viper.GetBool(keyVerbose),
			File:       viper.GetString(keyLogFile),
			MaxSize:    viper.GetInt(keyLogMaxSize),
			MaxBackups: viper.GetInt(keyLogMaxBackups),
			MaxAge:     viper.GetInt(keyLogMaxAge),
		}, stderrWriter)
		if err != nil {
			return err
		}
		logger, logCloser = l, closer
		if used := viper.ConfigFileUsed(); used != "" {
			logger.Debug("loaded config", zap.String("file", used))
		}
		return nil
	}
}

// colorEnabled resolves the --color setting against whether stdout is a terminal.
func colorEnabled(mode string, terminal bool) (bool, error) {
	switch strings.ToLower(mode) {
	case "", "auto":
		return terminal, nil
	case "always":
		return true, nil
	case "never":
		return false, nil
	default:
		return false, fmt.Errorf("unsupported color mode: %s (use auto, always, or never)", mode)
	}
}
