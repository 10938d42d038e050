package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mj1618/ax-inspector/internal/ax"
	"github.com/mj1618/ax-inspector/internal/model"
	"gopkg.in/yaml.v3"
)

// Format represents the output format.
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// OutputFormat is the current output format, set by the root command's --format flag.
var OutputFormat Format = FormatText

// PrettyOutput enables pretty-printing for JSON output.
var PrettyOutput bool

// ParseFormat converts a flag value to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatText, nil
	case FormatText, FormatYAML, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported format: %s (use text, yaml, or json)", s)
	}
}

// InspectResult is the structured output of the `inspect` command.
type InspectResult struct {
	App      string          `yaml:"app,omitempty" json:"app,omitempty"`
	PID      int             `yaml:"pid,omitempty" json:"pid,omitempty"`
	Mode     string          `yaml:"mode"          json:"mode"`
	MaxDepth int             `yaml:"max_depth"     json:"max_depth"`
	TS       int64           `yaml:"ts"            json:"ts"`
	Elements []model.Element `yaml:"elements"      json:"elements"`
}

// InspectFlatResult is the structured output when --flat is used.
type InspectFlatResult struct {
	App      string              `yaml:"app,omitempty" json:"app,omitempty"`
	PID      int                 `yaml:"pid,omitempty" json:"pid,omitempty"`
	Mode     string              `yaml:"mode"          json:"mode"`
	MaxDepth int                 `yaml:"max_depth"     json:"max_depth"`
	TS       int64               `yaml:"ts"            json:"ts"`
	Elements []model.FlatElement `yaml:"elements"      json:"elements"`
}

// NewInspectResult wraps a collected tree with its target and options.
func NewInspectResult(app *ax.Application, opts ax.Options, elements []model.Element) InspectResult {
	r := InspectResult{
		Mode:     opts.Mode.String(),
		MaxDepth: opts.MaxDepth,
		TS:       time.Now().Unix(),
		Elements: elements,
	}
	if app != nil {
		r.App, r.PID = app.Name, app.PID
	}
	return r
}

// Flat converts r to its flat form with path breadcrumbs.
func (r InspectResult) Flat() InspectFlatResult {
	return InspectFlatResult{
		App:      r.App,
		PID:      r.PID,
		Mode:     r.Mode,
		MaxDepth: r.MaxDepth,
		TS:       r.TS,
		Elements: model.FlattenElements(r.Elements),
	}
}

// NewAttributesResult wraps the root attributes of app.
func NewAttributesResult(app *ax.Application, snap ax.Snapshot) AttributesResult {
	r := AttributesResult{TS: time.Now().Unix(), Attributes: snap.Strings()}
	if app != nil {
		r.App, r.PID = app.Name, app.PID
	}
	return r
}

// AttributesResult is the structured output of the `attributes` command.
type AttributesResult struct {
	App        string            `yaml:"app,omitempty" json:"app,omitempty"`
	PID        int               `yaml:"pid,omitempty" json:"pid,omitempty"`
	TS         int64             `yaml:"ts"            json:"ts"`
	Attributes map[string]string `yaml:"attributes"    json:"attributes"`
}

// Print serializes v to w in the current output format. Text output is
// handled by the renderer, so FormatText falls back to YAML here.
func Print(w io.Writer, v interface{}) error {
	switch OutputFormat {
	case FormatJSON:
		if PrettyOutput {
			return PrintPrettyJSON(w, v)
		}
		return PrintJSON(w, v)
	case FormatYAML, FormatText:
		return PrintYAML(w, v)
	default:
		return fmt.Errorf("unsupported output format: %s", OutputFormat)
	}
}

// PrintJSON serializes v to w as compact single-line JSON.
func PrintJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("json encode: %w", err)
	}
	return nil
}

// PrintPrettyJSON serializes v to w as indented JSON.
func PrintPrettyJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("json encode: %w", err)
	}
	return nil
}

// PrintYAML serializes v to w as YAML.
func PrintYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}
	return enc.Close()
}
