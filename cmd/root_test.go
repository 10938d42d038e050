package cmd

import (
	"testing"
)

func TestRootCommand_HasSubcommands(t *testing.T) {
	expected := []string{"inspect", "attributes", "list", "serve"}
	commands := rootCmd.Commands()

	found := make(map[string]bool)
	for _, c := range commands {
		found[c.Name()] = true
	}

	for _, name := range expected {
		if !found[name] {
			t.Errorf("expected subcommand %q not found", name)
		}
	}
}

func TestRootCommand_Version(t *testing.T) {
	if rootCmd.Version == "" {
		t.Error("root command version should be set")
	}
}

func TestRootCommand_PersistentFlags(t *testing.T) {
	flags := rootCmd.PersistentFlags()
	for _, name := range []string{"config", "format", "pretty", "verbose", "log-file", "color"} {
		if flags.Lookup(name) == nil {
			t.Errorf("expected persistent flag %q not found", name)
		}
	}
}

func TestColorEnabled(t *testing.T) {
	tests := []struct {
		mode     string
		terminal bool
		want     bool
		wantErr  bool
	}{
		{"auto", true, true, false},
		{"auto", false, false, false},
		{"", true, true, false},
		{"always", false, true, false},
		{"ALWAYS", false, true, false},
		{"never", true, false, false},
		{"rainbow", true, false, true},
	}

	for _, tt := range tests {
		got, err := colorEnabled(tt.mode, tt.terminal)
		if (err != nil) != tt.wantErr {
			t.Errorf("colorEnabled(%q, %v) error = %v, wantErr %v", tt.mode, tt.terminal, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("colorEnabled(%q, %v) = %v, want %v", tt.mode, tt.terminal, got, tt.want)
		}
	}
}
