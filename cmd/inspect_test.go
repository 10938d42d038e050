package cmd

import (
	"bytes"
	"errors"
	"testing"

	"github.com/mj1618/ax-inspector/internal/ax"
	"github.com/mj1618/ax-inspector/internal/ax/axtest"
)

func TestInspectCommand_Flags(t *testing.T) {
	flags := inspectCmd.Flags()

	tests := []struct {
		name     string
		flagType string
		defValue string
	}{
		{"frontmost", "bool", "false"},
		{"full", "bool", "false"},
		{"max-depth", "int", "10"},
		{"delay", "int", "0"},
		{"truncate", "int", "0"},
		{"flat", "bool", "false"},
	}

	for _, tt := range tests {
		f := flags.Lookup(tt.name)
		if f == nil {
			t.Errorf("expected flag %q not found", tt.name)
			continue
		}
		if f.Value.Type() != tt.flagType {
			t.Errorf("flag %q: expected type %q, got %q", tt.name, tt.flagType, f.Value.Type())
		}
		if f.DefValue != tt.defValue {
			t.Errorf("flag %q: expected default %q, got %q", tt.name, tt.defValue, f.DefValue)
		}
	}
}

func TestInspectCommand_AcceptsAtMostOneApp(t *testing.T) {
	if err := inspectCmd.Args(inspectCmd, []string{"Finder"}); err != nil {
		t.Errorf("one arg should be accepted: %v", err)
	}
	if err := inspectCmd.Args(inspectCmd, []string{"Finder", "Mail"}); err == nil {
		t.Error("two args should be rejected")
	}
}

func TestAttributesCommand_Flags(t *testing.T) {
	f := attributesCmd.Flags().Lookup("frontmost")
	if f == nil {
		t.Fatal("expected flag \"frontmost\" not found")
	}
	if f.Value.Type() != "bool" {
		t.Errorf("frontmost: expected bool, got %q", f.Value.Type())
	}
}

func TestServeCommand_Flags(t *testing.T) {
	flags := serveCmd.Flags()
	if f := flags.Lookup("transport"); f == nil || f.DefValue != "stdio" {
		t.Errorf("transport flag missing or wrong default: %+v", f)
	}
	if f := flags.Lookup("port"); f == nil || f.DefValue != "8080" {
		t.Errorf("port flag missing or wrong default: %+v", f)
	}
}

func newTestInspector(t *testing.T, trusted bool) (*ax.Inspector, *axtest.Service) {
	t.Helper()
	svc := &axtest.Service{}
	resolver := &axtest.Resolver{Apps: map[string]*axtest.Node{
		"finder": axtest.Element("AXApplication",
			axtest.Element("AXWindow").With(ax.AttrTitle, ax.Text("Recents")),
		),
	}}
	in, err := ax.NewInspector(&axtest.Trust{Trusted: trusted}, svc, resolver, ax.Options{Mode: ax.ModeFull, MaxDepth: 10})
	if err != nil {
		t.Fatal(err)
	}
	return in, svc
}

func TestInspectText_PermissionDeniedWritesNothing(t *testing.T) {
	in, svc := newTestInspector(t, false)

	var buf bytes.Buffer
	err := inspectText(&buf, in, ax.Target{Name: "Finder"}, ax.ModeFull)
	if !errors.Is(err, ax.ErrPermissionDenied) {
		t.Fatalf("err = %v, want ErrPermissionDenied", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
	if svc.Queries() != 0 {
		t.Errorf("expected no attribute queries, got %d", svc.Queries())
	}
}

func TestInspectText_NotFoundWritesNothing(t *testing.T) {
	in, _ := newTestInspector(t, true)

	var buf bytes.Buffer
	err := inspectText(&buf, in, ax.Target{Name: "Mail"}, ax.ModeFull)
	if !errors.Is(err, ax.ErrApplicationNotFound) {
		t.Fatalf("err = %v, want ErrApplicationNotFound", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestInspectText_FullMode(t *testing.T) {
	in, _ := newTestInspector(t, true)

	var buf bytes.Buffer
	if err := inspectText(&buf, in, ax.Target{Name: "finder"}, ax.ModeFull); err != nil {
		t.Fatal(err)
	}
	want := "[AXApplication] \n  [AXWindow] \n    Title: \"Recents\"\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}
