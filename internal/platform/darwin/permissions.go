//go:build darwin

package darwin

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework ApplicationServices -framework Foundation
#include <ApplicationServices/ApplicationServices.h>

static int is_trusted() {
    return AXIsProcessTrusted();
}
*/
import "C"

// TrustChecker reports the process's accessibility trust status.
// It uses AXIsProcessTrusted, which never shows the system prompt.
type TrustChecker struct{}

// NewTrustChecker creates a new macOS trust checker.
func NewTrustChecker() *TrustChecker {
	return &TrustChecker{}
}

// IsTrusted returns true if the process has accessibility permission.
func (*TrustChecker) IsTrusted() bool {
	return C.is_trusted() != 0
}
