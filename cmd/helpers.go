package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mj1618/ax-inspector/internal/ax"
	"github.com/mj1618/ax-inspector/internal/output"
	"github.com/mj1618/ax-inspector/internal/render"
)

// parseTarget picks the application to inspect from the positional
// argument and --frontmost. With neither, the frontmost application is used.
func parseTarget(args []string, frontmost bool) (ax.Target, error) {
	name := ""
	if len(args) > 0 {
		name = strings.TrimSpace(args[0])
	}
	if frontmost && name != "" {
		return ax.Target{}, fmt.Errorf("specify an application name or --frontmost, not both")
	}
	return ax.Target{Name: name, Frontmost: name == ""}, nil
}

// countdown waits seconds, announcing each remaining second on w when w is
// not nil.
func countdown(w io.Writer, seconds int, sleep func(time.Duration)) {
	for i := seconds; i > 0; i-- {
		if w != nil {
			fmt.Fprintf(w, "Inspecting in %d...\n", i)
		}
		sleep(time.Second)
	}
}

// countdownWriter returns stderr when it is a terminal and nil otherwise.
func countdownWriter() io.Writer {
	if f, ok := stderrWriter.(*os.File); ok && output.IsTerminal(f) {
		return f
	}
	return nil
}

// rendererOptions applies --color and the validated --truncate width.
func rendererOptions(width int) []render.Option {
	return []render.Option{
		render.WithColor(useColor),
		render.WithMaxWidth(width),
	}
}
