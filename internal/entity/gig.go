package entity

import (
	"github.com/google/uuid"
)

// db model
type Gig struct {
	Id          uuid.UUID     `json:"id" db:"id"`
	Title       string        `json:"title" db:"title"`
	Description string        `json:"description" db:"description"`
	Budget      float64       `json:"budget" db:"budget"`
	OwnerId     uuid.UUID     `json:"ownerId" db:"owner_id"`
	Status      string        `json:"status" db:"status"`
	HiringBidId uuid.NullUUID `json:"hiringBidId" db:"hiring_bid_id"`
	CreatedAt   string        `json:"createdAt" db:"created_at"`
}

// service + repo input model
type CreateGigInput struct {
	Title       string  // given
	Description string  // given
	Budget      float64 // given
	OwnerId     string  // taken from the authenticated requester
	// Status should be set: "open"
	// Id UUID sets automatically
	// CreatedAt sets automatically
}

// controller model
type GigOutputModel struct {
	Id          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Budget      float64 `json:"budget"`
	OwnerId     string  `json:"ownerId"`
	Status      string  `json:"status"`
	HiringBidId string  `json:"hiringBidId,omitempty"`
	BidCount    int     `json:"bidCount"`
	CreatedAt   string  `json:"createdAt"`
}
