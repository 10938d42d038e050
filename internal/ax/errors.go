package ax

import (
	"errors"
	"fmt"
)

var (
	// ErrPermissionDenied means the process is not trusted to use the
	// accessibility service.
	ErrPermissionDenied = errors.New("accessibility permission denied")

	// ErrApplicationNotFound means no running application matched the target name.
	ErrApplicationNotFound = errors.New("application not found")

	// ErrNoActiveApplication means there is no frontmost application.
	ErrNoActiveApplication = errors.New("no active application")

	// ErrAttributeQueryFailed means a single attribute query on one node failed.
	ErrAttributeQueryFailed = errors.New("attribute query failed")

	// ErrInvalidNodeHandle means a query succeeded but the value did not have
	// the element shape the caller expected.
	ErrInvalidNodeHandle = errors.New("invalid node handle")
)

// PermissionError is returned by CheckPermission when the process is not trusted.
type PermissionError struct {
	Trusted bool
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf(
		"accessibility permission required (trusted=%t)\n\n"+
			"Grant permission at: System Settings > Privacy & Security > Accessibility\n"+
			"Add your terminal app (e.g. Terminal.app, iTerm2, or the IDE running this command).\n"+
			"Then restart the terminal and try again.", e.Trusted)
}

func (e *PermissionError) Unwrap() error { return ErrPermissionDenied }

// NotFoundError is returned by a Resolver when no application matches Name.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("application %q not found", e.Name)
}

func (e *NotFoundError) Unwrap() error { return ErrApplicationNotFound }

// QueryError describes a failed attribute query.
type QueryError struct {
	Attribute string
	Code      int
	Reason    string
}

func (e *QueryError) Error() string {
	if e.Attribute == "" {
		return fmt.Sprintf("attribute names query failed: %s (code %d)", e.Reason, e.Code)
	}
	return fmt.Sprintf("query %s failed: %s (code %d)", e.Attribute, e.Reason, e.Code)
}

func (e *QueryError) Unwrap() error { return ErrAttributeQueryFailed }

// IsFatal reports whether err aborts an inspection. Per-node query failures
// never do.
func IsFatal(err error) bool {
	return errors.Is(err, ErrPermissionDenied) ||
		errors.Is(err, ErrApplicationNotFound) ||
		errors.Is(err, ErrNoActiveApplication)
}
