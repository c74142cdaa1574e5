package service

import (
	"context"

	"gig-marketplace-api/internal/entity"
	"gig-marketplace-api/internal/notifier"
	"gig-marketplace-api/internal/repo"

	"github.com/rs/zerolog"
)

type Diagnostics interface {
	Ping() error
}

type User interface {
	Register(ctx context.Context, name string, email string, password string) (*entity.UserOutputModel, error)
	Login(ctx context.Context, email string, password string) (*entity.UserOutputModel, error)
	GetUserById(ctx context.Context, id string) (*entity.UserOutputModel, error)
}

type Gig interface {
	CreateGig(ctx context.Context, input *entity.CreateGigInput) (*entity.GigOutputModel, error)
	GetGigById(ctx context.Context, gigId string) (*entity.GigOutputModel, error)
	GetOpenGigs(ctx context.Context, search string, pg *entity.PaginationInput) ([]entity.GigOutputModel, error)
	GetUserGigs(ctx context.Context, ownerId string, pg *entity.PaginationInput) ([]entity.GigOutputModel, error)
	EditGigById(ctx context.Context, gigId string, requesterId string, title string, description string, budget float64) (*entity.GigOutputModel, error)
	DeleteGigById(ctx context.Context, gigId string, requesterId string) error
}

type Bid interface {
	SubmitBid(ctx context.Context, input *entity.CreateBidInput) (*entity.BidOutputModel, error)
	GetGigBids(ctx context.Context, gigId string, requesterId string, pg *entity.PaginationInput) ([]entity.BidOutputModel, error)
	GetUserBids(ctx context.Context, freelancerId string, pg *entity.PaginationInput) ([]entity.BidOutputModel, error)
}

type Hire interface {
	HireBid(ctx context.Context, gigId string, bidId string, requesterId string) (*entity.HireResultOutput, error)
}

// HireNotifier is the post-commit delivery channel for the hire event.
// Implementations must be fire-and-forget: no error, no blocking.
type HireNotifier interface {
	NotifyHired(freelancerId string, event notifier.HiredEvent)
}

type Services struct {
	Diagnostics Diagnostics
	User        User
	Gig         Gig
	Bid         Bid
	Hire        Hire
}

func NewServices(repos *repo.Repositories, hireNotifier HireNotifier, logger zerolog.Logger) *Services {
	return &Services{
		Diagnostics: NewDiagnosticsService(repos),
		User:        NewUserService(repos),
		Gig:         NewGigService(repos),
		Bid:         NewBidService(repos),
		Hire:        NewHireService(repos, hireNotifier, logger),
	}
}
