package service

import (
	"context"
	"errors"

	"gig-marketplace-api/internal/common"
	"gig-marketplace-api/internal/entity"
	"gig-marketplace-api/internal/repo"
	"gig-marketplace-api/internal/repo/repo_errors"
)

type BidService struct {
	bidRepo repo.Bid
	gigRepo repo.Gig
}

func NewBidService(repos *repo.Repositories) *BidService {
	return &BidService{
		bidRepo: repos.Bid,
		gigRepo: repos.Gig,
	}
}

func (s *BidService) SubmitBid(ctx context.Context, input *entity.CreateBidInput) (*entity.BidOutputModel, error) {
	gig, err := s.gigRepo.GetGigById(ctx, input.GigId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrGigNotFound
		}

		return nil, err
	}

	if gig.Status != common.GigOpen {
		return nil, ErrGigAlreadyAssigned
	}

	if gig.OwnerId.String() == input.FreelancerId {
		return nil, ErrOwnGigBid
	}

	// The insert re-checks the gig status under a lock; the checks above
	// only exist to give precise errors without paying for a transaction.
	id, err := s.bidRepo.CreateBid(ctx, input)
	if err != nil {
		switch {
		case errors.Is(err, repo_errors.ErrNotFound):
			return nil, ErrGigNotFound
		case errors.Is(err, repo_errors.ErrGigNotOpen):
			return nil, ErrGigAlreadyAssigned
		case errors.Is(err, repo_errors.ErrConflict):
			return nil, ErrDuplicateBid
		}

		return nil, err
	}

	bid, err := s.bidRepo.GetBidById(ctx, id.String())
	if err != nil {
		return nil, err
	}

	return mapBid(bid), nil
}

// Only the gig owner may see the bids on their gig.
func (s *BidService) GetGigBids(ctx context.Context, gigId string, requesterId string, pg *entity.PaginationInput) ([]entity.BidOutputModel, error) {
	gig, err := s.gigRepo.GetGigById(ctx, gigId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrGigNotFound
		}

		return nil, err
	}

	if gig.OwnerId.String() != requesterId {
		return nil, ErrUserHasNoAccessToGig
	}

	bids, err := s.bidRepo.GetGigBids(ctx, gigId, pg)
	if err != nil {
		return nil, err
	}

	return mapBids(bids), nil
}

func (s *BidService) GetUserBids(ctx context.Context, freelancerId string, pg *entity.PaginationInput) ([]entity.BidOutputModel, error) {
	bids, err := s.bidRepo.GetUserBids(ctx, freelancerId, pg)
	if err != nil {
		return nil, err
	}

	return mapBids(bids), nil
}
