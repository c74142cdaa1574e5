package repo_errors

import "errors"

var (
	ErrNotFound = errors.New("record not found")
	// ErrConflict is returned when an insert hits a uniqueness constraint,
	// e.g. a second bid from the same freelancer on the same gig.
	ErrConflict = errors.New("record already exists")
	// ErrGigNotOpen is returned by the conditional bid insert when the gig
	// is no longer open at the moment of the insert.
	ErrGigNotOpen = errors.New("gig is not open")
)
