package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/mj1618/ax-inspector/internal/ax"
	"github.com/mj1618/ax-inspector/internal/output"
	"github.com/mj1618/ax-inspector/internal/platform"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List running applications that can be inspected",
	Long:  "List regular running applications with their name and PID. The frontmost one is marked with *.",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}

	apps, err := provider.Resolver.ListApplications()
	if err != nil {
		return err
	}
	sortApps(apps)

	if output.OutputFormat != output.FormatText {
		return output.Print(cmd.OutOrStdout(), apps)
	}

	lw := output.NewLineWriter(cmd.OutOrStdout())
	for _, line := range appLines(apps) {
		if err := lw.WriteLine(line); err != nil {
			return err
		}
	}
	return lw.Flush()
}

// sortApps orders apps by name, ignoring case.
func sortApps(apps []ax.AppInfo) {
	sort.SliceStable(apps, func(i, j int) bool {
		return strings.ToLower(apps[i].Name) < strings.ToLower(apps[j].Name)
	})
}

// appLines formats apps as aligned "* name  pid" rows.
func appLines(apps []ax.AppInfo) []string {
	width := 0
	for _, a := range apps {
		width = max(width, runewidth.StringWidth(a.Name))
	}
	lines := make([]string, 0, len(apps))
	for _, a := range apps {
		marker := " "
		if a.Frontmost {
			marker = "*"
		}
		lines = append(lines, fmt.Sprintf("%s %s  %d", marker, runewidth.FillRight(a.Name, width), a.PID))
	}
	return lines
}
