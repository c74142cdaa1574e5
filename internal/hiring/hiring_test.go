package hiring

import (
	"testing"

	"gig-marketplace-api/internal/common"
	"gig-marketplace-api/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOpenGig(owner uuid.UUID) *entity.Gig {
	return &entity.Gig{
		Id:      uuid.New(),
		Title:   "Build a landing page",
		Budget:  500,
		OwnerId: owner,
		Status:  common.GigOpen,
	}
}

func newBid(gigId uuid.UUID, status string) entity.Bid {
	return entity.Bid{
		Id:           uuid.New(),
		GigId:        gigId,
		FreelancerId: uuid.New(),
		Message:      "I can do this",
		Price:        450,
		Status:       status,
	}
}

func TestDecide_GigMissing(t *testing.T) {
	bid := newBid(uuid.New(), common.BidPending)

	plan, err := Decide(nil, &bid, nil, uuid.NewString())

	assert.ErrorIs(t, err, ErrGigNotFound)
	assert.Nil(t, plan)
}

func TestDecide_BidMissing(t *testing.T) {
	owner := uuid.New()
	gig := newOpenGig(owner)

	plan, err := Decide(gig, nil, nil, owner.String())

	assert.ErrorIs(t, err, ErrBidNotFound)
	assert.Nil(t, plan)
}

func TestDecide_BidOnDifferentGig(t *testing.T) {
	owner := uuid.New()
	gig := newOpenGig(owner)
	stray := newBid(uuid.New(), common.BidPending)

	plan, err := Decide(gig, &stray, nil, owner.String())

	assert.ErrorIs(t, err, ErrBidNotFound)
	assert.Nil(t, plan)
}

func TestDecide_RequesterNotOwner(t *testing.T) {
	gig := newOpenGig(uuid.New())
	bid := newBid(gig.Id, common.BidPending)

	plan, err := Decide(gig, &bid, []entity.Bid{bid}, bid.FreelancerId.String())

	assert.ErrorIs(t, err, ErrNotGigOwner)
	assert.Nil(t, plan)
}

// Ownership is checked before the gig status, so an outsider probing an
// assigned gig learns nothing beyond "not yours".
func TestDecide_NotOwnerBeforeAssigned(t *testing.T) {
	gig := newOpenGig(uuid.New())
	gig.Status = common.GigAssigned
	bid := newBid(gig.Id, common.BidPending)

	_, err := Decide(gig, &bid, []entity.Bid{bid}, uuid.NewString())

	assert.ErrorIs(t, err, ErrNotGigOwner)
}

func TestDecide_GigAlreadyAssigned(t *testing.T) {
	owner := uuid.New()
	gig := newOpenGig(owner)
	gig.Status = common.GigAssigned
	bid := newBid(gig.Id, common.BidPending)

	plan, err := Decide(gig, &bid, []entity.Bid{bid}, owner.String())

	assert.ErrorIs(t, err, ErrGigAssigned)
	assert.Nil(t, plan)
}

func TestDecide_BidNotPending(t *testing.T) {
	owner := uuid.New()

	for _, status := range []string{common.BidHired, common.BidRejected} {
		t.Run(status, func(t *testing.T) {
			gig := newOpenGig(owner)
			bid := newBid(gig.Id, status)

			plan, err := Decide(gig, &bid, []entity.Bid{bid}, owner.String())

			assert.ErrorIs(t, err, ErrBidUnavailable)
			assert.Nil(t, plan)
		})
	}
}

func TestDecide_PlanRejectsOnlyPendingSiblings(t *testing.T) {
	owner := uuid.New()
	gig := newOpenGig(owner)

	target := newBid(gig.Id, common.BidPending)
	pendingSibling := newBid(gig.Id, common.BidPending)
	rejectedSibling := newBid(gig.Id, common.BidRejected)

	plan, err := Decide(gig, &target, []entity.Bid{target, pendingSibling, rejectedSibling}, owner.String())
	require.NoError(t, err)

	assert.Equal(t, gig.Id, plan.GigId)
	assert.Equal(t, target.Id, plan.HireBidId)
	assert.Equal(t, []uuid.UUID{pendingSibling.Id}, plan.RejectBidIds)
}

func TestDecide_SingleBid(t *testing.T) {
	owner := uuid.New()
	gig := newOpenGig(owner)
	target := newBid(gig.Id, common.BidPending)

	plan, err := Decide(gig, &target, []entity.Bid{target}, owner.String())
	require.NoError(t, err)

	assert.Equal(t, target.Id, plan.HireBidId)
	assert.Empty(t, plan.RejectBidIds)
}
