package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/mj1618/ax-inspector/internal/ax"
	"github.com/mj1618/ax-inspector/internal/model"
	"gopkg.in/yaml.v3"
)

func sampleResult() InspectResult {
	return InspectResult{
		App:      "Safari",
		PID:      1234,
		Mode:     "curated",
		MaxDepth: 10,
		TS:       1707500000,
		Elements: []model.Element{
			{Role: "AXWindow", Title: "GitHub", Children: []model.Element{
				{Depth: 1, Role: "AXButton", Title: "OK"},
			}},
		},
	}
}

func TestPrintYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := PrintYAML(&buf, sampleResult()); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	// YAML output should be multi-line
	if bytes.Count([]byte(out), []byte("\n")) <= 1 {
		t.Errorf("YAML output should be multi-line, got:\n%s", out)
	}

	var decoded InspectResult
	if err := yaml.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if decoded.App != "Safari" {
		t.Errorf("app: got %q, want %q", decoded.App, "Safari")
	}
	if len(decoded.Elements) != 1 || len(decoded.Elements[0].Children) != 1 {
		t.Errorf("elements: got %+v", decoded.Elements)
	}
}

func TestPrintJSON_Compact(t *testing.T) {
	var buf bytes.Buffer
	if err := PrintJSON(&buf, sampleResult()); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	// Compact output should be a single line (plus newline from Encode)
	if bytes.Count([]byte(out), []byte("\n")) > 1 {
		t.Errorf("compact output should be single line, got:\n%s", out)
	}

	var decoded InspectResult
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.PID != 1234 {
		t.Errorf("pid: got %d, want 1234", decoded.PID)
	}
}

func TestPrintPrettyJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := PrintPrettyJSON(&buf, sampleResult()); err != nil {
		t.Fatal(err)
	}
	if bytes.Count(buf.Bytes(), []byte("\n")) <= 1 {
		t.Errorf("pretty output should be multi-line, got:\n%s", buf.String())
	}
}

func TestPrintJSON_NoHTMLEscape(t *testing.T) {
	var buf bytes.Buffer
	if err := PrintJSON(&buf, map[string]string{"v": "<b>&</b>"}); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "{\"v\":\"<b>&</b>\"}\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPrint_UsesOutputFormat(t *testing.T) {
	orig := OutputFormat
	defer func() { OutputFormat = orig }()

	tests := []struct {
		format Format
		prefix string
	}{
		{FormatJSON, "{"},
		{FormatYAML, "app:"},
		{FormatText, "app:"},
	}
	for _, tt := range tests {
		OutputFormat = tt.format
		var buf bytes.Buffer
		if err := Print(&buf, sampleResult()); err != nil {
			t.Fatalf("Print(%s): %v", tt.format, err)
		}
		if !bytes.HasPrefix(buf.Bytes(), []byte(tt.prefix)) {
			t.Errorf("Print(%s) = %q, want prefix %q", tt.format, buf.String(), tt.prefix)
		}
	}

	OutputFormat = Format("xml")
	if err := Print(&bytes.Buffer{}, sampleResult()); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestInspectResult_OmitEmpty(t *testing.T) {
	result := InspectResult{
		TS:       123,
		Elements: []model.Element{},
	}
	data, err := yaml.Marshal(result)
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]interface{}
	if err := yaml.Unmarshal(data, &m); err != nil {
		t.Fatal(err)
	}
	// App and PID should be omitted when empty/zero
	if _, ok := m["app"]; ok {
		t.Error("empty app should be omitted")
	}
	if _, ok := m["pid"]; ok {
		t.Error("zero pid should be omitted")
	}
	for _, key := range []string{"ts", "mode", "max_depth", "elements"} {
		if _, ok := m[key]; !ok {
			t.Errorf("%s should always be present", key)
		}
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input string
		want  Format
	}{
		{"", FormatText},
		{"text", FormatText},
		{"YAML", FormatYAML},
		{" json ", FormatJSON},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		if err != nil {
			t.Errorf("ParseFormat(%q): %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
	if _, err := ParseFormat("agent"); err == nil {
		t.Error("ParseFormat(\"agent\") should fail")
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestLineWriter(t *testing.T) {
	var buf bytes.Buffer
	lw := NewLineWriter(&buf)
	for _, line := range []string{"[AXWindow] standard window", "  [AXButton] "} {
		if err := lw.WriteLine(line); err != nil {
			t.Fatal(err)
		}
	}
	if buf.Len() != 0 {
		t.Error("output should be buffered until Flush")
	}
	if err := lw.Flush(); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "[AXWindow] standard window\n  [AXButton] \n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if lw.Lines() != 2 {
		t.Errorf("Lines() = %d, want 2", lw.Lines())
	}
}

func TestLineWriter_FlushError(t *testing.T) {
	lw := NewLineWriter(failingWriter{})
	if err := lw.WriteLine("x"); err != nil {
		t.Fatalf("buffered write should succeed: %v", err)
	}
	if err := lw.Flush(); err == nil {
		t.Error("expected flush error")
	}
}

func TestNewInspectResult(t *testing.T) {
	app := &ax.Application{Name: "Notes", PID: 77}
	opts := ax.Options{Mode: ax.ModeFull, MaxDepth: 3}
	r := NewInspectResult(app, opts, sampleResult().Elements)

	if r.App != "Notes" || r.PID != 77 {
		t.Errorf("app/pid: got %q/%d", r.App, r.PID)
	}
	if r.Mode != "full" || r.MaxDepth != 3 {
		t.Errorf("mode/max_depth: got %q/%d", r.Mode, r.MaxDepth)
	}
	if r.TS == 0 {
		t.Error("ts should be set")
	}

	flat := r.Flat()
	if len(flat.Elements) != 2 {
		t.Fatalf("flat elements: got %d, want 2", len(flat.Elements))
	}
	if flat.Elements[1].Path != "AXWindow > AXButton" {
		t.Errorf("path: got %q", flat.Elements[1].Path)
	}
}

func TestNewAttributesResult(t *testing.T) {
	snap := ax.Snapshot{ax.AttrRole: ax.Text("AXApplication"), ax.AttrEnabled: ax.Opaque{Description: "true"}}
	r := NewAttributesResult(nil, snap)

	if r.App != "" || r.PID != 0 {
		t.Errorf("nil app should leave app/pid empty, got %q/%d", r.App, r.PID)
	}
	if r.Attributes[ax.AttrRole] != "AXApplication" || r.Attributes[ax.AttrEnabled] != "true" {
		t.Errorf("attributes: got %v", r.Attributes)
	}
}
