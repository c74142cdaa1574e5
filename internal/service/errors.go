package service

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyTaken  = errors.New("user with given email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrGigNotFound          = errors.New("gig not found")
	ErrUserHasNoAccessToGig = errors.New("user doesn't have sufficient rights to access the gig")
	ErrGigAlreadyAssigned   = errors.New("gig has already been assigned")

	ErrBidNotFound    = errors.New("bid not found")
	ErrBidUnavailable = errors.New("bid is no longer available")
	ErrDuplicateBid   = errors.New("freelancer has already bid on this gig")
	ErrOwnGigBid      = errors.New("gig owner can't bid on their own gig")
)
