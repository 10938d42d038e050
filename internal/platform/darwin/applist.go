package darwin

import (
	"strconv"
	"strings"

	"github.com/mj1618/ax-inspector/internal/ax"
)

// parseAppList decodes the tab-separated "pid\tfrontmost\tname" lines
// produced by the AppKit enumeration. Malformed lines are skipped.
func parseAppList(raw string) []ax.AppInfo {
	apps := []ax.AppInfo{}
	for _, line := range strings.Split(raw, "\n") {
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, "\t", 3)
		if len(parts) != 3 {
			continue
		}
		pid, err := strconv.Atoi(parts[0])
		if err != nil {
			continue
		}
		apps = append(apps, ax.AppInfo{
			Name:      parts[2],
			PID:       pid,
			Frontmost: parts[1] == "1",
		})
	}
	return apps
}
