package common

// Gig statuses. A gig starts open and becomes assigned exactly once;
// there is no way back.
const (
	GigOpen     = "open"
	GigAssigned = "assigned"
)

// Bid statuses. A bid starts pending and is terminally resolved to
// hired or rejected by the hire transition of its gig.
const (
	BidPending  = "pending"
	BidHired    = "hired"
	BidRejected = "rejected"
)
