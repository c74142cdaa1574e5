package pgdb

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"gig-marketplace-api/internal/common"
	"gig-marketplace-api/internal/entity"
	"gig-marketplace-api/internal/repo/repo_errors"
	"gig-marketplace-api/pkg/postgres"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type BidRepo struct {
	*postgres.Postgres
}

func NewBidRepo(pgdb *postgres.Postgres) *BidRepo {
	return &BidRepo{pgdb}
}

const bidColumns = "id, gig_id, freelancer_id, message, price, status, created_at"

// CreateBid inserts a bid only while its gig is open. The gig row is read
// with a share lock inside the same transaction, so the insert cannot
// interleave with a hire transition on the gig: a hire holds the row
// exclusively for its whole read-decide-write span, while concurrent bid
// submissions on the same gig do not block each other.
func (r *BidRepo) CreateBid(ctx context.Context, input *entity.CreateBidInput) (uuid.UUID, error) {
	gigUuid, err := uuid.Parse(input.GigId)
	if err != nil {
		return uuid.Nil, repo_errors.ErrNotFound
	}

	freelancerUuid, err := uuid.Parse(input.FreelancerId)
	if err != nil {
		return uuid.Nil, repo_errors.ErrNotFound
	}

	tx, err := r.Database.BeginTx(ctx, nil)
	if err != nil {
		return uuid.Nil, err
	}

	lockGigSql, args, _ := r.SqlBuilder.
		Select("status").
		From("gig").
		Where("id = ?", gigUuid).
		Suffix("FOR SHARE").
		ToSql()

	var gigStatus string
	err = tx.QueryRowContext(ctx, lockGigSql, args...).Scan(&gigStatus)
	if err != nil {
		if e := tx.Rollback(); e != nil {
			return uuid.Nil, e
		}
		if errors.Is(err, sql.ErrNoRows) {
			return uuid.Nil, repo_errors.ErrNotFound
		}

		return uuid.Nil, err
	}

	if gigStatus != common.GigOpen {
		if e := tx.Rollback(); e != nil {
			return uuid.Nil, e
		}

		return uuid.Nil, repo_errors.ErrGigNotOpen
	}

	createBidSql, args, _ := r.SqlBuilder.
		Insert("bid").
		Columns("gig_id", "freelancer_id", "message", "price", "status").
		Values(gigUuid, freelancerUuid, input.Message, input.Price, common.BidPending).
		Suffix("RETURNING id").
		ToSql()

	var bidId uuid.UUID
	err = tx.QueryRowContext(ctx, createBidSql, args...).Scan(&bidId)
	if err != nil {
		if e := tx.Rollback(); e != nil {
			return uuid.Nil, e
		}

		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return uuid.Nil, repo_errors.ErrConflict
		}

		return uuid.Nil, err
	}

	if err = tx.Commit(); err != nil {
		return uuid.Nil, err
	}

	return bidId, nil
}

func (r *BidRepo) GetBidById(ctx context.Context, id string) (*entity.Bid, error) {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return nil, repo_errors.ErrNotFound
	}

	getBidSql, args, _ := r.SqlBuilder.
		Select(bidColumns).
		From("bid").
		Where("id = ?", uuidForm).
		ToSql()

	bid, err := scanBid(r.Database.QueryRowContext(ctx, getBidSql, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}

	return bid, nil
}

func (r *BidRepo) GetGigBids(ctx context.Context, gigId string, pg *entity.PaginationInput) ([]entity.Bid, error) {
	gigUuid, err := uuid.Parse(gigId)
	if err != nil {
		return nil, repo_errors.ErrNotFound
	}

	getBidsSql, args, _ := r.SqlBuilder.
		Select(bidColumns).
		From("bid").
		Where("gig_id = ?", gigUuid).
		OrderBy("created_at DESC").
		Offset(uint64(pg.Offset)).
		Limit(uint64(pg.Limit)).
		ToSql()

	return r.queryBids(ctx, getBidsSql, args...)
}

func (r *BidRepo) GetUserBids(ctx context.Context, freelancerId string, pg *entity.PaginationInput) ([]entity.Bid, error) {
	freelancerUuid, err := uuid.Parse(freelancerId)
	if err != nil {
		return nil, repo_errors.ErrNotFound
	}

	getBidsSql, args, _ := r.SqlBuilder.
		Select(bidColumns).
		From("bid").
		Where("freelancer_id = ?", freelancerUuid).
		OrderBy("created_at DESC").
		Offset(uint64(pg.Offset)).
		Limit(uint64(pg.Limit)).
		ToSql()

	return r.queryBids(ctx, getBidsSql, args...)
}

func (r *BidRepo) CountGigBids(ctx context.Context, gigId string) (int, error) {
	gigUuid, err := uuid.Parse(gigId)
	if err != nil {
		return 0, repo_errors.ErrNotFound
	}

	countSql, args, _ := r.SqlBuilder.
		Select("count(*)").
		From("bid").
		Where("gig_id = ?", gigUuid).
		ToSql()

	var count int
	if err := r.Database.QueryRowContext(ctx, countSql, args...).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}

func (r *BidRepo) queryBids(ctx context.Context, query string, args ...interface{}) ([]entity.Bid, error) {
	rows, err := r.Database.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bids := make([]entity.Bid, 0)
	for rows.Next() {
		var bid entity.Bid
		var createdAt time.Time
		if err := rows.Scan(&bid.Id, &bid.GigId, &bid.FreelancerId, &bid.Message,
			&bid.Price, &bid.Status, &createdAt); err != nil {
			return bids, err
		}
		bid.CreatedAt = createdAt.Format(time.RFC3339)
		bids = append(bids, bid)
	}
	if err = rows.Err(); err != nil {
		return bids, err
	}

	return bids, nil
}

func scanBid(row rowScanner) (*entity.Bid, error) {
	var bid entity.Bid
	var createdAt time.Time
	err := row.Scan(&bid.Id, &bid.GigId, &bid.FreelancerId, &bid.Message,
		&bid.Price, &bid.Status, &createdAt)
	if err != nil {
		return nil, err
	}
	bid.CreatedAt = createdAt.Format(time.RFC3339)

	return &bid, nil
}
