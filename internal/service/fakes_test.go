package service

import (
	"context"
	"sync"

	"gig-marketplace-api/internal/common"
	"gig-marketplace-api/internal/entity"
	"gig-marketplace-api/internal/hiring"
	"gig-marketplace-api/internal/notifier"
	"gig-marketplace-api/internal/repo/repo_errors"

	"github.com/google/uuid"
)

// memHireStore mimics the store-side hire contract: the mutex plays the
// role of the per-gig row lock, covering the whole read-decide-write
// span, and the write counter observes that rejections stay write-free.
type memHireStore struct {
	mu     sync.Mutex
	gigs   map[uuid.UUID]*entity.Gig
	bids   map[uuid.UUID]*entity.Bid
	writes int
}

func newMemHireStore() *memHireStore {
	return &memHireStore{
		gigs: make(map[uuid.UUID]*entity.Gig),
		bids: make(map[uuid.UUID]*entity.Bid),
	}
}

func (s *memHireStore) addGig(owner uuid.UUID, title string) *entity.Gig {
	gig := &entity.Gig{
		Id:      uuid.New(),
		Title:   title,
		Budget:  500,
		OwnerId: owner,
		Status:  common.GigOpen,
	}
	s.gigs[gig.Id] = gig

	return gig
}

func (s *memHireStore) addBid(gig *entity.Gig) *entity.Bid {
	bid := &entity.Bid{
		Id:           uuid.New(),
		GigId:        gig.Id,
		FreelancerId: uuid.New(),
		Message:      "ready to start",
		Price:        450,
		Status:       common.BidPending,
	}
	s.bids[bid.Id] = bid

	return bid
}

func (s *memHireStore) ExecuteHire(ctx context.Context, gigId string, bidId string, requesterId string) (*hiring.Outcome, error) {
	gigUuid, err := uuid.Parse(gigId)
	if err != nil {
		return nil, hiring.ErrGigNotFound
	}

	bidUuid, err := uuid.Parse(bidId)
	if err != nil {
		return nil, hiring.ErrBidNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	gig := s.gigs[gigUuid]
	bid := s.bids[bidUuid]

	gigBids := make([]entity.Bid, 0)
	for _, b := range s.bids {
		if gig != nil && b.GigId == gig.Id {
			gigBids = append(gigBids, *b)
		}
	}

	plan, err := hiring.Decide(gig, bid, gigBids, requesterId)
	if err != nil {
		return nil, err
	}

	s.bids[plan.HireBidId].Status = common.BidHired
	s.writes++
	for _, id := range plan.RejectBidIds {
		s.bids[id].Status = common.BidRejected
		s.writes++
	}
	gig.Status = common.GigAssigned
	gig.HiringBidId = uuid.NullUUID{UUID: plan.HireBidId, Valid: true}
	s.writes++

	return &hiring.Outcome{
		Gig:            gig,
		HiredBid:       bid,
		RejectedBidIds: plan.RejectBidIds,
	}, nil
}

func (s *memHireStore) writeCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.writes
}

func (s *memHireStore) bidStatusCounts(gigId uuid.UUID) map[string]int {
	s.mu.Lock()
	defer s.mu.Unlock()

	counts := make(map[string]int)
	for _, b := range s.bids {
		if b.GigId == gigId {
			counts[b.Status]++
		}
	}

	return counts
}

type recorderNotifier struct {
	mu     sync.Mutex
	users  []string
	events []notifier.HiredEvent
}

func (r *recorderNotifier) NotifyHired(freelancerId string, event notifier.HiredEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.users = append(r.users, freelancerId)
	r.events = append(r.events, event)
}

func (r *recorderNotifier) delivered() ([]string, []notifier.HiredEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]string(nil), r.users...), append([]notifier.HiredEvent(nil), r.events...)
}

type fakeGigRepo struct {
	gigs map[string]*entity.Gig
}

func newFakeGigRepo() *fakeGigRepo {
	return &fakeGigRepo{gigs: make(map[string]*entity.Gig)}
}

func (f *fakeGigRepo) addGig(owner uuid.UUID, status string) *entity.Gig {
	gig := &entity.Gig{
		Id:      uuid.New(),
		Title:   "Build a landing page",
		Budget:  500,
		OwnerId: owner,
		Status:  status,
	}
	if status == common.GigAssigned {
		gig.HiringBidId = uuid.NullUUID{UUID: uuid.New(), Valid: true}
	}
	f.gigs[gig.Id.String()] = gig

	return gig
}

func (f *fakeGigRepo) CreateGig(ctx context.Context, input *entity.CreateGigInput) (uuid.UUID, error) {
	owner, err := uuid.Parse(input.OwnerId)
	if err != nil {
		return uuid.Nil, err
	}

	gig := &entity.Gig{
		Id:          uuid.New(),
		Title:       input.Title,
		Description: input.Description,
		Budget:      input.Budget,
		OwnerId:     owner,
		Status:      common.GigOpen,
	}
	f.gigs[gig.Id.String()] = gig

	return gig.Id, nil
}

func (f *fakeGigRepo) GetGigById(ctx context.Context, id string) (*entity.Gig, error) {
	gig, ok := f.gigs[id]
	if !ok {
		return nil, repo_errors.ErrNotFound
	}

	return gig, nil
}

func (f *fakeGigRepo) GetOpenGigs(ctx context.Context, search string, pg *entity.PaginationInput) ([]entity.Gig, error) {
	gigs := make([]entity.Gig, 0)
	for _, gig := range f.gigs {
		if gig.Status == common.GigOpen {
			gigs = append(gigs, *gig)
		}
	}

	return gigs, nil
}

func (f *fakeGigRepo) GetUserGigs(ctx context.Context, ownerId string, pg *entity.PaginationInput) ([]entity.Gig, error) {
	gigs := make([]entity.Gig, 0)
	for _, gig := range f.gigs {
		if gig.OwnerId.String() == ownerId {
			gigs = append(gigs, *gig)
		}
	}

	return gigs, nil
}

func (f *fakeGigRepo) EditGigById(ctx context.Context, id string, title string, description string, budget float64) error {
	gig, ok := f.gigs[id]
	if !ok {
		return repo_errors.ErrNotFound
	}

	if title != "" {
		gig.Title = title
	}
	if description != "" {
		gig.Description = description
	}
	if budget > 0 {
		gig.Budget = budget
	}

	return nil
}

func (f *fakeGigRepo) DeleteGigById(ctx context.Context, id string) error {
	if _, ok := f.gigs[id]; !ok {
		return repo_errors.ErrNotFound
	}
	delete(f.gigs, id)

	return nil
}

type fakeBidRepo struct {
	gigs *fakeGigRepo
	bids map[string]*entity.Bid
}

func newFakeBidRepo(gigs *fakeGigRepo) *fakeBidRepo {
	return &fakeBidRepo{gigs: gigs, bids: make(map[string]*entity.Bid)}
}

func (f *fakeBidRepo) CreateBid(ctx context.Context, input *entity.CreateBidInput) (uuid.UUID, error) {
	gig, ok := f.gigs.gigs[input.GigId]
	if !ok {
		return uuid.Nil, repo_errors.ErrNotFound
	}
	if gig.Status != common.GigOpen {
		return uuid.Nil, repo_errors.ErrGigNotOpen
	}

	for _, b := range f.bids {
		if b.GigId.String() == input.GigId && b.FreelancerId.String() == input.FreelancerId {
			return uuid.Nil, repo_errors.ErrConflict
		}
	}

	freelancer, err := uuid.Parse(input.FreelancerId)
	if err != nil {
		return uuid.Nil, err
	}

	bid := &entity.Bid{
		Id:           uuid.New(),
		GigId:        gig.Id,
		FreelancerId: freelancer,
		Message:      input.Message,
		Price:        input.Price,
		Status:       common.BidPending,
	}
	f.bids[bid.Id.String()] = bid

	return bid.Id, nil
}

func (f *fakeBidRepo) GetBidById(ctx context.Context, id string) (*entity.Bid, error) {
	bid, ok := f.bids[id]
	if !ok {
		return nil, repo_errors.ErrNotFound
	}

	return bid, nil
}

func (f *fakeBidRepo) GetGigBids(ctx context.Context, gigId string, pg *entity.PaginationInput) ([]entity.Bid, error) {
	bids := make([]entity.Bid, 0)
	for _, bid := range f.bids {
		if bid.GigId.String() == gigId {
			bids = append(bids, *bid)
		}
	}

	return bids, nil
}

func (f *fakeBidRepo) GetUserBids(ctx context.Context, freelancerId string, pg *entity.PaginationInput) ([]entity.Bid, error) {
	bids := make([]entity.Bid, 0)
	for _, bid := range f.bids {
		if bid.FreelancerId.String() == freelancerId {
			bids = append(bids, *bid)
		}
	}

	return bids, nil
}

func (f *fakeBidRepo) CountGigBids(ctx context.Context, gigId string) (int, error) {
	count := 0
	for _, bid := range f.bids {
		if bid.GigId.String() == gigId {
			count++
		}
	}

	return count, nil
}

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (f *fakeUserRepo) CreateUser(ctx context.Context, input *entity.CreateUserInput) (uuid.UUID, error) {
	for _, u := range f.users {
		if u.Email == input.Email {
			return uuid.Nil, repo_errors.ErrConflict
		}
	}

	user := &entity.User{
		Id:           uuid.New(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: input.PasswordHash,
	}
	f.users[user.Id.String()] = user

	return user.Id, nil
}

func (f *fakeUserRepo) GetUserById(ctx context.Context, id string) (*entity.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, repo_errors.ErrNotFound
	}

	return user, nil
}

func (f *fakeUserRepo) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}

	return nil, repo_errors.ErrNotFound
}
