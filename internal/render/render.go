// Package render turns traversal frames into indented text lines.
package render

import (
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/mj1618/ax-inspector/internal/ax"
)

// Sink receives rendered lines in order.
type Sink interface {
	WriteLine(line string) error
}

const (
	indentUnit         = "  "
	curatedLabel       = "Element Properties:"
	unknownRole        = "unknown"
	truncationSuffix   = "..."
	minTruncationWidth = len(truncationSuffix) + 1
)

var (
	roleStyle  = color.New(color.FgCyan, color.Bold)
	labelStyle = color.New(color.FgYellow)
	keyStyle   = color.New(color.FgHiBlue)
)

// Renderer formats frames for one traversal mode.
type Renderer struct {
	sink     Sink
	mode     ax.Mode
	color    bool
	maxWidth int
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithColor enables ANSI styling of roles and labels.
func WithColor(enabled bool) Option {
	return func(r *Renderer) { r.color = enabled }
}

// WithMaxWidth truncates each displayed value to n terminal cells.
// Zero or a negative n disables truncation.
func WithMaxWidth(n int) Option {
	return func(r *Renderer) {
		switch {
		case n <= 0:
			n = 0
		case n < minTruncationWidth:
			n = minTruncationWidth
		}
		r.maxWidth = n
	}
}

// New returns a Renderer writing to sink.
func New(sink Sink, mode ax.Mode, opts ...Option) *Renderer {
	r := &Renderer{sink: sink, mode: mode}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Render writes the lines for f to the sink. It has the ax.VisitFunc signature.
func (r *Renderer) Render(f ax.Frame) error {
	for _, line := range r.Lines(f) {
		if err := r.sink.WriteLine(line); err != nil {
			return err
		}
	}
	return nil
}

// Lines returns the text lines for f without writing them.
func (r *Renderer) Lines(f ax.Frame) []string {
	indent := strings.Repeat(indentUnit, max(f.Depth, 0))
	if r.mode == ax.ModeFull {
		return r.fullLines(indent, f.Snapshot)
	}
	return []string{indent + r.style(labelStyle, curatedLabel) + " " + r.properties(f.Snapshot)}
}

// properties formats the snapshot as {Key: value, ...}.
func (r *Renderer) properties(snap ax.Snapshot) string {
	var b strings.Builder
	b.WriteByte('{')
	for i, key := range snap.Keys() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(r.style(keyStyle, key))
		b.WriteString(": ")
		b.WriteString(r.literal(snap[key]))
	}
	b.WriteByte('}')
	return b.String()
}

// literal renders numbers bare and everything else quoted.
func (r *Renderer) literal(v ax.Value) string {
	if n, ok := v.(ax.Number); ok {
		return ax.Display(n)
	}
	return strconv.Quote(r.truncate(ax.Display(v)))
}

func (r *Renderer) fullLines(indent string, snap ax.Snapshot) []string {
	role := snap.Text(ax.AttrRole)
	if role == "" {
		role = unknownRole
	}
	lines := []string{
		indent + "[" + r.style(roleStyle, role) + "] " + snap.Text(ax.AttrRoleDescription),
	}
	if title := snap.Text(ax.AttrTitle); title != "" {
		lines = append(lines, indent+indentUnit+r.style(labelStyle, "Title:")+" "+strconv.Quote(r.truncate(title)))
	}
	if value := snap.Text(ax.AttrValue); value != "" {
		lines = append(lines, indent+indentUnit+r.style(labelStyle, "Value:")+" "+strconv.Quote(r.truncate(value)))
	}
	return lines
}

// Attributes writes every attribute of snap as a "name = value" line,
// regardless of mode.
func (r *Renderer) Attributes(snap ax.Snapshot) error {
	for _, key := range snap.Keys() {
		if err := r.sink.WriteLine(r.style(keyStyle, key) + " = " + r.literal(snap[key])); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) truncate(s string) string {
	if r.maxWidth == 0 || runewidth.StringWidth(s) <= r.maxWidth {
		return s
	}
	return runewidth.Truncate(s, r.maxWidth, truncationSuffix)
}

func (r *Renderer) style(c *color.Color, s string) string {
	if !r.color {
		return s
	}
	return c.Sprint(s)
}
