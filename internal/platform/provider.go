package platform

import (
	"fmt"
	"runtime"

	"github.com/mj1618/ax-inspector/internal/ax"
)

// Provider bundles all platform backends for the current OS.
type Provider struct {
	Trust    ax.TrustChecker
	Service  ax.Service
	Resolver AppResolver
}

// ErrUnsupported is returned on unsupported platforms.
var ErrUnsupported = fmt.Errorf("ax-inspector is not supported on %s/%s; supported: darwin/amd64, darwin/arm64 (cgo enabled)", runtime.GOOS, runtime.GOARCH)

// NewProviderFunc is set by platform-specific packages via init().
// See internal/platform/darwin/init.go for the macOS registration.
var NewProviderFunc func() (*Provider, error)

// NewProvider returns a Provider for the current OS.
func NewProvider() (*Provider, error) {
	if NewProviderFunc == nil {
		return nil, ErrUnsupported
	}
	p, err := NewProviderFunc()
	if err != nil {
		return nil, err
	}
	if p.Trust == nil || p.Service == nil || p.Resolver == nil {
		return nil, fmt.Errorf("incomplete platform provider for %s", runtime.GOOS)
	}
	return p, nil
}

// NewInspector builds an inspector over p's backends.
func (p *Provider) NewInspector(opts ax.Options, options ...ax.InspectorOption) (*ax.Inspector, error) {
	return ax.NewInspector(p.Trust, p.Service, p.Resolver, opts, options...)
}
