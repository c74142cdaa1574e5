package service

import (
	"context"
	"errors"
	"fmt"

	"gig-marketplace-api/internal/entity"
	"gig-marketplace-api/internal/hiring"
	"gig-marketplace-api/internal/notifier"
	"gig-marketplace-api/internal/repo"

	"github.com/rs/zerolog"
)

type HireService struct {
	hireRepo     repo.Hire
	hireNotifier HireNotifier
	logger       zerolog.Logger
}

func NewHireService(repos *repo.Repositories, hireNotifier HireNotifier, logger zerolog.Logger) *HireService {
	return &HireService{
		hireRepo:     repos.Hire,
		hireNotifier: hireNotifier,
		logger:       logger.With().Str("component", "hire").Logger(),
	}
}

// HireBid runs the hire transition and, once it has committed, notifies
// the winner. The notification is fire-and-forget and carries no ctx:
// the request being cancelled after commit must not cancel delivery.
func (s *HireService) HireBid(ctx context.Context, gigId string, bidId string, requesterId string) (*entity.HireResultOutput, error) {
	outcome, err := s.hireRepo.ExecuteHire(ctx, gigId, bidId, requesterId)
	if err != nil {
		switch {
		case errors.Is(err, hiring.ErrGigNotFound):
			return nil, ErrGigNotFound
		case errors.Is(err, hiring.ErrBidNotFound):
			return nil, ErrBidNotFound
		case errors.Is(err, hiring.ErrNotGigOwner):
			return nil, ErrUserHasNoAccessToGig
		case errors.Is(err, hiring.ErrGigAssigned):
			return nil, ErrGigAlreadyAssigned
		case errors.Is(err, hiring.ErrBidUnavailable):
			return nil, ErrBidUnavailable
		}

		return nil, err
	}

	s.logger.Info().
		Str("gigId", outcome.Gig.Id.String()).
		Str("bidId", outcome.HiredBid.Id.String()).
		Int("rejected", len(outcome.RejectedBidIds)).
		Msg("hire committed")

	s.hireNotifier.NotifyHired(outcome.HiredBid.FreelancerId.String(), notifier.HiredEvent{
		BidId:    outcome.HiredBid.Id.String(),
		GigId:    outcome.Gig.Id.String(),
		GigTitle: outcome.Gig.Title,
		Message:  fmt.Sprintf("Congratulations! You've been hired for %s", outcome.Gig.Title),
	})

	return &entity.HireResultOutput{
		Message: "Freelancer hired successfully!",
		Bid:     *mapBid(outcome.HiredBid),
	}, nil
}
