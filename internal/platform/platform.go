package platform

import "github.com/mj1618/ax-inspector/internal/ax"

// AppResolver resolves target applications and lists running ones.
type AppResolver interface {
	ax.Resolver

	// ListApplications returns the running applications that own a UI.
	ListApplications() ([]ax.AppInfo, error)
}
