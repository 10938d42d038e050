// Package darwin provides macOS platform support using the Accessibility and AppKit APIs.
// All functionality requires CGo (Objective-C frameworks).
// When CGo is disabled, or on other systems, only the pure-Go helpers compile
// and no provider is registered.
package darwin
