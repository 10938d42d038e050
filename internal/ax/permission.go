package ax

// CheckPermission fails with a *PermissionError if t reports the process
// is not trusted. It performs no other query.
func CheckPermission(t TrustChecker) error {
	if trusted := t.IsTrusted(); !trusted {
		return &PermissionError{Trusted: trusted}
	}
	return nil
}
