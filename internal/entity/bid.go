package entity

import (
	"github.com/google/uuid"
)

// db model
type Bid struct {
	Id           uuid.UUID `json:"id" db:"id"`
	GigId        uuid.UUID `json:"gigId" db:"gig_id"`
	FreelancerId uuid.UUID `json:"freelancerId" db:"freelancer_id"`
	Message      string    `json:"message" db:"message"`
	Price        float64   `json:"price" db:"price"`
	Status       string    `json:"status" db:"status"`
	CreatedAt    string    `json:"createdAt" db:"created_at"`
}

// service + repo input model
type CreateBidInput struct {
	GigId        string  // given
	FreelancerId string  // taken from the authenticated requester
	Message      string  // given
	Price        float64 // given
	// Status should be set: "pending"
	// Id UUID sets automatically
	// CreatedAt sets automatically
}

// controller model
type BidOutputModel struct {
	Id           string  `json:"id"`
	GigId        string  `json:"gigId"`
	FreelancerId string  `json:"freelancerId"`
	Message      string  `json:"message"`
	Price        float64 `json:"price"`
	Status       string  `json:"status"`
	CreatedAt    string  `json:"createdAt"`
}

// controller model for the hire transition result
type HireResultOutput struct {
	Message string         `json:"message"`
	Bid     BidOutputModel `json:"bid"`
}
