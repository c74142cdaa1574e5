package service

import (
	"context"
	"testing"

	"gig-marketplace-api/internal/common"
	"gig-marketplace-api/internal/entity"
	"gig-marketplace-api/internal/repo"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBidServiceWithFakes() (*BidService, *fakeGigRepo, *fakeBidRepo) {
	gigs := newFakeGigRepo()
	bids := newFakeBidRepo(gigs)
	s := NewBidService(&repo.Repositories{Gig: gigs, Bid: bids})

	return s, gigs, bids
}

func TestSubmitBid_Success(t *testing.T) {
	s, gigs, _ := newBidServiceWithFakes()
	gig := gigs.addGig(uuid.New(), common.GigOpen)

	bid, err := s.SubmitBid(context.Background(), &entity.CreateBidInput{
		GigId:        gig.Id.String(),
		FreelancerId: uuid.NewString(),
		Message:      "I can start today",
		Price:        400,
	})
	require.NoError(t, err)

	assert.Equal(t, common.BidPending, bid.Status)
	assert.Equal(t, gig.Id.String(), bid.GigId)
	assert.Equal(t, 400.0, bid.Price)
}

func TestSubmitBid_GigNotFound(t *testing.T) {
	s, _, _ := newBidServiceWithFakes()

	_, err := s.SubmitBid(context.Background(), &entity.CreateBidInput{
		GigId:        uuid.NewString(),
		FreelancerId: uuid.NewString(),
		Message:      "hello",
		Price:        100,
	})

	assert.ErrorIs(t, err, ErrGigNotFound)
}

func TestSubmitBid_AssignedGigRejected(t *testing.T) {
	s, gigs, _ := newBidServiceWithFakes()
	gig := gigs.addGig(uuid.New(), common.GigAssigned)

	_, err := s.SubmitBid(context.Background(), &entity.CreateBidInput{
		GigId:        gig.Id.String(),
		FreelancerId: uuid.NewString(),
		Message:      "too late",
		Price:        100,
	})

	assert.ErrorIs(t, err, ErrGigAlreadyAssigned)
}

func TestSubmitBid_OwnGigRejected(t *testing.T) {
	s, gigs, _ := newBidServiceWithFakes()
	owner := uuid.New()
	gig := gigs.addGig(owner, common.GigOpen)

	_, err := s.SubmitBid(context.Background(), &entity.CreateBidInput{
		GigId:        gig.Id.String(),
		FreelancerId: owner.String(),
		Message:      "bidding on myself",
		Price:        100,
	})

	assert.ErrorIs(t, err, ErrOwnGigBid)
}

func TestSubmitBid_DuplicateRejected(t *testing.T) {
	s, gigs, _ := newBidServiceWithFakes()
	gig := gigs.addGig(uuid.New(), common.GigOpen)
	freelancer := uuid.NewString()

	input := &entity.CreateBidInput{
		GigId:        gig.Id.String(),
		FreelancerId: freelancer,
		Message:      "first offer",
		Price:        300,
	}
	_, err := s.SubmitBid(context.Background(), input)
	require.NoError(t, err)

	input.Message = "second offer"
	_, err = s.SubmitBid(context.Background(), input)

	assert.ErrorIs(t, err, ErrDuplicateBid)
}

func TestGetGigBids_OwnerOnly(t *testing.T) {
	s, gigs, _ := newBidServiceWithFakes()
	owner := uuid.New()
	gig := gigs.addGig(owner, common.GigOpen)

	_, err := s.SubmitBid(context.Background(), &entity.CreateBidInput{
		GigId:        gig.Id.String(),
		FreelancerId: uuid.NewString(),
		Message:      "offer",
		Price:        250,
	})
	require.NoError(t, err)

	pg := entity.NewPaginationInput(20, 0)

	bids, err := s.GetGigBids(context.Background(), gig.Id.String(), owner.String(), pg)
	require.NoError(t, err)
	assert.Len(t, bids, 1)

	_, err = s.GetGigBids(context.Background(), gig.Id.String(), uuid.NewString(), pg)
	assert.ErrorIs(t, err, ErrUserHasNoAccessToGig)
}
