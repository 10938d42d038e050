// Package ax walks an accessibility tree and extracts attribute snapshots.
//
// The package is platform neutral. The OS accessibility service, the trust
// query and application lookup are supplied through the Service,
// TrustChecker and Resolver interfaces; see internal/platform/darwin for the
// macOS implementation.
package ax
