package repo

import (
	"context"

	"gig-marketplace-api/internal/entity"
	"gig-marketplace-api/internal/hiring"
	"gig-marketplace-api/internal/repo/pgdb"
	"gig-marketplace-api/pkg/postgres"

	"github.com/google/uuid"
)

type Diagnostics interface {
	Ping() error
}

type User interface {
	CreateUser(ctx context.Context, input *entity.CreateUserInput) (uuid.UUID, error)
	GetUserById(ctx context.Context, id string) (*entity.User, error)
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
}

type Gig interface {
	CreateGig(ctx context.Context, input *entity.CreateGigInput) (uuid.UUID, error)
	GetGigById(ctx context.Context, id string) (*entity.Gig, error)
	GetOpenGigs(ctx context.Context, search string, pg *entity.PaginationInput) ([]entity.Gig, error)
	GetUserGigs(ctx context.Context, ownerId string, pg *entity.PaginationInput) ([]entity.Gig, error)
	EditGigById(ctx context.Context, id string, title string, description string, budget float64) error
	DeleteGigById(ctx context.Context, id string) error
}

type Bid interface {
	CreateBid(ctx context.Context, input *entity.CreateBidInput) (uuid.UUID, error)
	GetBidById(ctx context.Context, id string) (*entity.Bid, error)
	GetGigBids(ctx context.Context, gigId string, pg *entity.PaginationInput) ([]entity.Bid, error)
	GetUserBids(ctx context.Context, freelancerId string, pg *entity.PaginationInput) ([]entity.Bid, error)
	CountGigBids(ctx context.Context, gigId string) (int, error)
}

// Hire executes the hire transition: the whole read-decide-write span runs
// inside a per-gig critical section and the write-set commits atomically.
type Hire interface {
	ExecuteHire(ctx context.Context, gigId string, bidId string, requesterId string) (*hiring.Outcome, error)
}

type Repositories struct {
	Diagnostics
	User
	Gig
	Bid
	Hire
}

func NewRepositories(p *postgres.Postgres) *Repositories {
	return &Repositories{
		Diagnostics: pgdb.NewDiagnosticsRepo(p),
		User:        pgdb.NewUserRepo(p),
		Gig:         pgdb.NewGigRepo(p),
		Bid:         pgdb.NewBidRepo(p),
		Hire:        pgdb.NewHireRepo(p),
	}
}
