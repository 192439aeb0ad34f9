package errs

import "errors"

// Domain-specific sentinel errors for the read-side usecase layers
var (
	// Listing errors
	ErrListingNotFound = errors.New("listing not found")
	ErrRoomNotFound    = errors.New("room not found")

	// Quote errors
	ErrInvalidStayRange   = errors.New("invalid stay range")
	ErrDatesUnavailable   = errors.New("dates unavailable")
	ErrStayBoundsViolated = errors.New("stay length outside allowed bounds")
	ErrNegativeBasePrice  = errors.New("negative base price")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
