package service

import (
	"context"
	"errors"

	"gig-marketplace-api/internal/common"
	"gig-marketplace-api/internal/entity"
	"gig-marketplace-api/internal/repo"
	"gig-marketplace-api/internal/repo/repo_errors"
)

type GigService struct {
	gigRepo repo.Gig
	bidRepo repo.Bid
}

func NewGigService(repos *repo.Repositories) *GigService {
	return &GigService{
		gigRepo: repos.Gig,
		bidRepo: repos.Bid,
	}
}

func (s *GigService) CreateGig(ctx context.Context, input *entity.CreateGigInput) (*entity.GigOutputModel, error) {
	id, err := s.gigRepo.CreateGig(ctx, input)
	if err != nil {
		return nil, err
	}

	gig, err := s.gigRepo.GetGigById(ctx, id.String())
	if err != nil {
		return nil, err
	}

	return mapGig(gig), nil
}

func (s *GigService) GetGigById(ctx context.Context, gigId string) (*entity.GigOutputModel, error) {
	gig, err := s.gigRepo.GetGigById(ctx, gigId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrGigNotFound
		}

		return nil, err
	}

	count, err := s.bidRepo.CountGigBids(ctx, gigId)
	if err != nil {
		return nil, err
	}

	out := mapGig(gig)
	out.BidCount = count

	return out, nil
}

func (s *GigService) GetOpenGigs(ctx context.Context, search string, pg *entity.PaginationInput) ([]entity.GigOutputModel, error) {
	gigs, err := s.gigRepo.GetOpenGigs(ctx, search, pg)
	if err != nil {
		return nil, err
	}

	return mapGigs(gigs), nil
}

func (s *GigService) GetUserGigs(ctx context.Context, ownerId string, pg *entity.PaginationInput) ([]entity.GigOutputModel, error) {
	gigs, err := s.gigRepo.GetUserGigs(ctx, ownerId, pg)
	if err != nil {
		return nil, err
	}

	out := mapGigs(gigs)
	for i := range out {
		count, err := s.bidRepo.CountGigBids(ctx, out[i].Id)
		if err != nil {
			return nil, err
		}
		out[i].BidCount = count
	}

	return out, nil
}

func (s *GigService) EditGigById(ctx context.Context, gigId string, requesterId string, title string, description string, budget float64) (*entity.GigOutputModel, error) {
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

	if gig.Status != common.GigOpen {
		return nil, ErrGigAlreadyAssigned
	}

	if err := s.gigRepo.EditGigById(ctx, gigId, title, description, budget); err != nil {
		return nil, err
	}

	gig, err = s.gigRepo.GetGigById(ctx, gigId)
	if err != nil {
		return nil, err
	}

	return mapGig(gig), nil
}

func (s *GigService) DeleteGigById(ctx context.Context, gigId string, requesterId string) error {
	gig, err := s.gigRepo.GetGigById(ctx, gigId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return ErrGigNotFound
		}

		return err
	}

	if gig.OwnerId.String() != requesterId {
		return ErrUserHasNoAccessToGig
	}

	if gig.Status != common.GigOpen {
		return ErrGigAlreadyAssigned
	}

	return s.gigRepo.DeleteGigById(ctx, gigId)
}
