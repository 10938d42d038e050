package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/mj1618/ax-inspector/internal/ax"
)

var cfgFile string

// Config keys.
const (
	keyMaxDepth      = "max_depth"
	keyMode          = "mode"
	keyFormat        = "format"
	keyColor         = "color"
	keyTruncate      = "truncate"
	keyVerbose       = "verbose"
	keyLogLevel      = "log_level"
	keyLogFile       = "log_file"
	keyLogMaxSize    = "log_max_size"
	keyLogMaxBackups = "log_max_backups"
	keyLogMaxAge     = "log_max_age"
)

// initConfig loads $HOME/.config/ax-inspector/config.yaml (or --config) and
// AXI_* environment variables.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(filepath.Join(home, ".config", "ax-inspector"))
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("AXI")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	setDefaults(viper.GetViper())

	// A missing config file is fine; everything has a default.
	_ = viper.ReadInConfig()
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(keyMaxDepth, ax.DefaultMaxDepth)
	v.SetDefault(keyMode, ax.ModeCurated.String())
	v.SetDefault(keyFormat, "text")
	v.SetDefault(keyColor, "auto")
	v.SetDefault(keyTruncate, 0)
	v.SetDefault(keyVerbose, false)
	v.SetDefault(keyLogLevel, "warn")
	v.SetDefault(keyLogFile, "")
	v.SetDefault(keyLogMaxSize, 10)
	v.SetDefault(keyLogMaxBackups, 3)
	v.SetDefault(keyLogMaxAge, 28)
}

// bindFlags binds each flag to its config key so that an explicitly set
// flag overrides the environment and the config file.
func bindFlags(flags *pflag.FlagSet, keys map[string]string) {
	for flag, key := range keys {
		if f := flags.Lookup(flag); f != nil {
			cobra.CheckErr(viper.BindPFlag(key, f))
		}
	}
}

// inspectOptions builds traversal options from v.
// --full wins over the configured mode.
func inspectOptions(v *viper.Viper, full bool) (ax.Options, error) {
	mode, err := ax.ParseMode(v.GetString(keyMode))
	if err != nil {
		return ax.Options{}, err
	}
	if full {
		mode = ax.ModeFull
	}
	opts := ax.Options{Mode: mode, MaxDepth: v.GetInt(keyMaxDepth)}
	return opts, opts.Validate()
}

// truncateWidth returns the configured truncation width. Zero means off.
func truncateWidth(v *viper.Viper) (int, error) {
	n := v.GetInt(keyTruncate)
	if n < 0 {
		return 0, fmt.Errorf("truncate must be >= 0, got %d", n)
	}
	return n, nil
}
