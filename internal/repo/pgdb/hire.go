package pgdb

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"gig-marketplace-api/internal/common"
	"gig-marketplace-api/internal/entity"
	"gig-marketplace-api/internal/hiring"
	"gig-marketplace-api/pkg/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

// HireRepo drives the hire transition against the store. The gig row lock
// taken with FOR UPDATE is the per-gig critical section: it covers the
// whole read-decide-write span, so two hire attempts on the same gig are
// serialized and the losing one re-reads the committed assigned state.
// Unrelated gigs never contend.
type HireRepo struct {
	*postgres.Postgres
}

func NewHireRepo(pgdb *postgres.Postgres) *HireRepo {
	return &HireRepo{pgdb}
}

func (r *HireRepo) ExecuteHire(ctx context.Context, gigId string, bidId string, requesterId string) (*hiring.Outcome, error) {
	gigUuid, err := uuid.Parse(gigId)
	if err != nil {
		return nil, hiring.ErrGigNotFound
	}

	bidUuid, err := uuid.Parse(bidId)
	if err != nil {
		return nil, hiring.ErrBidNotFound
	}

	tx, err := r.Database.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}

	gig, err := r.getGigForUpdate(ctx, tx, gigUuid)
	if err != nil {
		if e := tx.Rollback(); e != nil {
			return nil, e
		}

		return nil, err
	}

	bid, err := r.getBidInTx(ctx, tx, bidUuid)
	if err != nil {
		if e := tx.Rollback(); e != nil {
			return nil, e
		}

		return nil, err
	}

	gigBids, err := r.getGigBidsInTx(ctx, tx, gigUuid)
	if err != nil {
		if e := tx.Rollback(); e != nil {
			return nil, e
		}

		return nil, err
	}

	plan, err := hiring.Decide(gig, bid, gigBids, requesterId)
	if err != nil {
		// Rejection: no writes happened, surface the reason as is.
		if e := tx.Rollback(); e != nil {
			return nil, e
		}

		return nil, err
	}

	if err := r.applyPlan(ctx, tx, plan); err != nil {
		if e := tx.Rollback(); e != nil {
			return nil, e
		}

		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}

	gig.Status = common.GigAssigned
	gig.HiringBidId = uuid.NullUUID{UUID: plan.HireBidId, Valid: true}
	bid.Status = common.BidHired

	return &hiring.Outcome{
		Gig:            gig,
		HiredBid:       bid,
		RejectedBidIds: plan.RejectBidIds,
	}, nil
}

func (r *HireRepo) applyPlan(ctx context.Context, tx *sql.Tx, plan *hiring.Plan) error {
	hireBidSql, args, _ := r.SqlBuilder.
		Update("bid").
		Set("status", common.BidHired).
		Where("id = ?", plan.HireBidId).
		ToSql()

	if _, err := tx.ExecContext(ctx, hireBidSql, args...); err != nil {
		return err
	}

	if len(plan.RejectBidIds) > 0 {
		rejectBidsSql, args, _ := r.SqlBuilder.
			Update("bid").
			Set("status", common.BidRejected).
			Where(squirrel.Eq{"id": plan.RejectBidIds}).
			ToSql()

		if _, err := tx.ExecContext(ctx, rejectBidsSql, args...); err != nil {
			return err
		}
	}

	assignGigSql, args, _ := r.SqlBuilder.
		Update("gig").
		Set("status", common.GigAssigned).
		Set("hiring_bid_id", plan.HireBidId).
		Where("id = ?", plan.GigId).
		ToSql()

	if _, err := tx.ExecContext(ctx, assignGigSql, args...); err != nil {
		return err
	}

	return nil
}

// getGigForUpdate locks the gig row for the rest of the transaction.
// A missing gig is reported as nil, nil so the decision logic owns the
// rejection reason.
func (r *HireRepo) getGigForUpdate(ctx context.Context, tx *sql.Tx, gigId uuid.UUID) (*entity.Gig, error) {
	getGigSql, args, _ := r.SqlBuilder.
		Select(gigColumns).
		From("gig").
		Where("id = ?", gigId).
		Suffix("FOR UPDATE").
		ToSql()

	gig, err := scanGig(tx.QueryRowContext(ctx, getGigSql, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}

		return nil, err
	}

	return gig, nil
}

func (r *HireRepo) getBidInTx(ctx context.Context, tx *sql.Tx, bidId uuid.UUID) (*entity.Bid, error) {
	getBidSql, args, _ := r.SqlBuilder.
		Select(bidColumns).
		From("bid").
		Where("id = ?", bidId).
		ToSql()

	bid, err := scanBid(tx.QueryRowContext(ctx, getBidSql, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}

		return nil, err
	}

	return bid, nil
}

func (r *HireRepo) getGigBidsInTx(ctx context.Context, tx *sql.Tx, gigId uuid.UUID) ([]entity.Bid, error) {
	getBidsSql, args, _ := r.SqlBuilder.
		Select(bidColumns).
		From("bid").
		Where("gig_id = ?", gigId).
		ToSql()

	rows, err := tx.QueryContext(ctx, getBidsSql, args...)
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
