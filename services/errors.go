package services

import (
	"errors"
	"strconv"
)

// Error taxonomy shared by all services. Handlers recover these at the
// boundary and translate them to user-facing messages; none of them
// should ever reach the transport layer uncaught.
//
// ErrNotFound and ErrInvalidIdentifier are deliberately conflated in
// user messaging (both read as "not found in our database") but stay
// distinct values internally.
var (
	ErrNotFound          = errors.New("record not found")
	ErrInvalidIdentifier = errors.New("invalid identifier")
	ErrPermissionDenied  = errors.New("permission denied")
	ErrAlreadyExists     = errors.New("record already exists")
	ErrQuotaExceeded     = errors.New("quota exceeded")
)

// ParseID parses a numeric resource identifier from a path or query
// parameter. Malformed input maps to ErrInvalidIdentifier, never a
// panic or an unscoped query.
func ParseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, ErrInvalidIdentifier
	}
	return uint(id), nil
}
