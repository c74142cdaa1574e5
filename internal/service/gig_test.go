package service

import (
	"context"
	"testing"

	"gig-marketplace-api/internal/common"
	"gig-marketplace-api/internal/repo"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGigServiceWithFakes() (*GigService, *fakeGigRepo) {
	gigs := newFakeGigRepo()
	s := NewGigService(&repo.Repositories{Gig: gigs, Bid: newFakeBidRepo(gigs)})

	return s, gigs
}

func TestEditGig_OwnerOnly(t *testing.T) {
	s, gigs := newGigServiceWithFakes()
	gig := gigs.addGig(uuid.New(), common.GigOpen)

	_, err := s.EditGigById(context.Background(), gig.Id.String(), uuid.NewString(), "new title", "", 0)

	assert.ErrorIs(t, err, ErrUserHasNoAccessToGig)
	assert.Equal(t, "Build a landing page", gig.Title)
}

func TestEditGig_AssignedGigImmutable(t *testing.T) {
	s, gigs := newGigServiceWithFakes()
	owner := uuid.New()
	gig := gigs.addGig(owner, common.GigAssigned)

	_, err := s.EditGigById(context.Background(), gig.Id.String(), owner.String(), "new title", "", 0)

	assert.ErrorIs(t, err, ErrGigAlreadyAssigned)
}

func TestEditGig_PartialUpdate(t *testing.T) {
	s, gigs := newGigServiceWithFakes()
	owner := uuid.New()
	gig := gigs.addGig(owner, common.GigOpen)

	out, err := s.EditGigById(context.Background(), gig.Id.String(), owner.String(), "", "", 750)
	require.NoError(t, err)

	assert.Equal(t, "Build a landing page", out.Title)
	assert.Equal(t, 750.0, out.Budget)
}

func TestDeleteGig_AssignedGigRejected(t *testing.T) {
	s, gigs := newGigServiceWithFakes()
	owner := uuid.New()
	gig := gigs.addGig(owner, common.GigAssigned)

	err := s.DeleteGigById(context.Background(), gig.Id.String(), owner.String())

	assert.ErrorIs(t, err, ErrGigAlreadyAssigned)
	assert.Contains(t, gigs.gigs, gig.Id.String())
}

func TestDeleteGig_NotFound(t *testing.T) {
	s, _ := newGigServiceWithFakes()

	err := s.DeleteGigById(context.Background(), uuid.NewString(), uuid.NewString())

	assert.ErrorIs(t, err, ErrGigNotFound)
}
