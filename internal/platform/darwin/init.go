//go:build darwin && cgo

package darwin

import "github.com/mj1618/ax-inspector/internal/platform"

func init() {
	platform.NewProviderFunc = func() (*platform.Provider, error) {
		return &platform.Provider{
			Trust:    NewTrustChecker(),
			Service:  NewService(),
			Resolver: NewResolver(),
		}, nil
	}
}
