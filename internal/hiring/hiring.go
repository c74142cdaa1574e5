// Package hiring holds the pure decision logic of the hire transition.
// It decides whether a hire is legal and computes the full write-set as
// data; it performs no I/O. Applying the write-set atomically is the
// job of the repo layer.
package hiring

import (
	"errors"

	"gig-marketplace-api/internal/common"
	"gig-marketplace-api/internal/entity"

	"github.com/google/uuid"
)

// Rejection reasons, in precondition order. Each maps to exactly one
// user-facing status at the controller.
var (
	ErrGigNotFound    = errors.New("gig not found")
	ErrBidNotFound    = errors.New("bid not found")
	ErrNotGigOwner    = errors.New("requester is not the gig owner")
	ErrGigAssigned    = errors.New("gig has already been assigned")
	ErrBidUnavailable = errors.New("bid is no longer available")
)

// Plan is the write-set of one hire transition. All three parts must be
// applied as a single atomic unit, or not at all.
type Plan struct {
	GigId        uuid.UUID
	HireBidId    uuid.UUID
	RejectBidIds []uuid.UUID
}

// Outcome is the committed state returned by the coordinator after a
// plan has been applied.
type Outcome struct {
	Gig            *entity.Gig
	HiredBid       *entity.Bid
	RejectedBidIds []uuid.UUID
}

// Decide validates a hire attempt and computes its write-set.
//
// gig and bid are the rows as currently read inside the coordinator's
// critical section; either may be nil when the row does not exist.
// gigBids are all bids referencing the gig. The preconditions are
// checked in a fixed order so that every caller observes the same
// rejection for the same state.
func Decide(gig *entity.Gig, bid *entity.Bid, gigBids []entity.Bid, requesterId string) (*Plan, error) {
	if gig == nil {
		return nil, ErrGigNotFound
	}
	if bid == nil || bid.GigId != gig.Id {
		return nil, ErrBidNotFound
	}
	if gig.OwnerId.String() != requesterId {
		return nil, ErrNotGigOwner
	}
	if gig.Status != common.GigOpen {
		return nil, ErrGigAssigned
	}
	if bid.Status != common.BidPending {
		return nil, ErrBidUnavailable
	}

	plan := &Plan{
		GigId:        gig.Id,
		HireBidId:    bid.Id,
		RejectBidIds: make([]uuid.UUID, 0, len(gigBids)),
	}
	for _, sibling := range gigBids {
		if sibling.Id == bid.Id {
			continue
		}
		// Terminal siblings cannot occur while the gig is open if the
		// invariants hold, but skip them rather than rewrite them.
		if sibling.Status != common.BidPending {
			continue
		}
		plan.RejectBidIds = append(plan.RejectBidIds, sibling.Id)
	}

	return plan, nil
}
