package platform

import (
	"runtime"
	"testing"

	"github.com/mj1618/ax-inspector/internal/ax"
	"github.com/mj1618/ax-inspector/internal/ax/axtest"
)

func TestNewProvider_ReturnsProvider(t *testing.T) {
	if runtime.GOOS != "darwin" {
		t.Skip("skipping on non-darwin")
	}
	// On darwin, the darwin package may or may not be imported for side effects
	// depending on whether the test binary includes it. We just verify the
	// function doesn't panic.
	_, _ = NewProvider()
}

func TestNewProvider_UnsupportedPlatform(t *testing.T) {
	// Temporarily clear the provider func to simulate unsupported platform
	orig := NewProviderFunc
	NewProviderFunc = nil
	defer func() { NewProviderFunc = orig }()

	_, err := NewProvider()
	if err == nil {
		t.Fatal("expected error on unsupported platform")
	}
	if err != ErrUnsupported {
		t.Errorf("expected ErrUnsupported, got: %v", err)
	}
}

func TestNewProvider_Incomplete(t *testing.T) {
	orig := NewProviderFunc
	NewProviderFunc = func() (*Provider, error) {
		return &Provider{Trust: &axtest.Trust{Trusted: true}}, nil
	}
	defer func() { NewProviderFunc = orig }()

	if _, err := NewProvider(); err == nil {
		t.Fatal("expected error for provider without service and resolver")
	}
}

func TestProvider_NewInspector(t *testing.T) {
	resolver := &axtest.Resolver{Apps: map[string]*axtest.Node{"notes": axtest.Element("AXApplication")}}
	p := &Provider{
		Trust:    &axtest.Trust{Trusted: true},
		Service:  &axtest.Service{},
		Resolver: resolver,
	}
	in, err := p.NewInspector(ax.DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	frames := 0
	if _, err := in.Inspect(ax.Target{Name: "Notes"}, func(ax.Frame) error { frames++; return nil }); err != nil {
		t.Fatal(err)
	}
	if frames != 1 {
		t.Errorf("frames = %d, want 1", frames)
	}
}
