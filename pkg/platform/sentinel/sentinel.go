// Package sentinel holds the store-level facts that services translate into
// domain failures. Stores wrap them with context; callers test with errors.Is.
package sentinel

import "errors"

var (
	// ErrNotFound reports a missing case, event, custody record or institution.
	ErrNotFound = errors.New("not found")
	// ErrConflict reports a violated uniqueness constraint, such as a duplicate CRN.
	ErrConflict = errors.New("conflict")
)
