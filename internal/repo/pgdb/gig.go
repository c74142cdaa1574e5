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
)

type GigRepo struct {
	*postgres.Postgres
}

func NewGigRepo(pgdb *postgres.Postgres) *GigRepo {
	return &GigRepo{pgdb}
}

const gigColumns = "id, title, description, budget, owner_id, status, hiring_bid_id, created_at"

func (r *GigRepo) CreateGig(ctx context.Context, input *entity.CreateGigInput) (uuid.UUID, error) {
	ownerUuid, err := uuid.Parse(input.OwnerId)
	if err != nil {
		return uuid.Nil, err
	}

	createGigSql, args, _ := r.SqlBuilder.
		Insert("gig").
		Columns("title", "description", "budget", "owner_id", "status").
		Values(input.Title, input.Description, input.Budget, ownerUuid, common.GigOpen).
		Suffix("RETURNING id").
		ToSql()

	var gigId uuid.UUID
	if err := r.Database.QueryRowContext(ctx, createGigSql, args...).Scan(&gigId); err != nil {
		return uuid.Nil, err
	}

	return gigId, nil
}

func (r *GigRepo) GetGigById(ctx context.Context, id string) (*entity.Gig, error) {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return nil, repo_errors.ErrNotFound
	}

	getGigSql, args, _ := r.SqlBuilder.
		Select(gigColumns).
		From("gig").
		Where("id = ?", uuidForm).
		ToSql()

	gig, err := scanGig(r.Database.QueryRowContext(ctx, getGigSql, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}

	return gig, nil
}

func (r *GigRepo) GetOpenGigs(ctx context.Context, search string, pg *entity.PaginationInput) ([]entity.Gig, error) {
	builder := r.SqlBuilder.
		Select(gigColumns).
		From("gig").
		Where("status = ?", common.GigOpen)

	if search != "" {
		builder = builder.Where("(title ILIKE ? OR description ILIKE ?)", "%"+search+"%", "%"+search+"%")
	}

	getGigsSql, args, _ := builder.
		OrderBy("created_at DESC").
		Offset(uint64(pg.Offset)).
		Limit(uint64(pg.Limit)).
		ToSql()

	return r.queryGigs(ctx, getGigsSql, args...)
}

func (r *GigRepo) GetUserGigs(ctx context.Context, ownerId string, pg *entity.PaginationInput) ([]entity.Gig, error) {
	ownerUuid, err := uuid.Parse(ownerId)
	if err != nil {
		return nil, repo_errors.ErrNotFound
	}

	getGigsSql, args, _ := r.SqlBuilder.
		Select(gigColumns).
		From("gig").
		Where("owner_id = ?", ownerUuid).
		OrderBy("created_at DESC").
		Offset(uint64(pg.Offset)).
		Limit(uint64(pg.Limit)).
		ToSql()

	return r.queryGigs(ctx, getGigsSql, args...)
}

func (r *GigRepo) EditGigById(ctx context.Context, id string, title string, description string, budget float64) error {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return repo_errors.ErrNotFound
	}

	builder := r.SqlBuilder.
		Update("gig").
		Where("id = ?", uuidForm)

	if title != "" {
		builder = builder.Set("title", title)
	}
	if description != "" {
		builder = builder.Set("description", description)
	}
	if budget > 0 {
		builder = builder.Set("budget", budget)
	}

	editGigSql, args, err := builder.ToSql()
	if err != nil {
		// squirrel rejects an UPDATE without SET clauses
		return nil
	}

	result, err := r.Database.ExecContext(ctx, editGigSql, args...)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return repo_errors.ErrNotFound
	}

	return nil
}

// DeleteGigById removes the gig; its bids go with it via ON DELETE CASCADE.
func (r *GigRepo) DeleteGigById(ctx context.Context, id string) error {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return repo_errors.ErrNotFound
	}

	deleteGigSql, args, _ := r.SqlBuilder.
		Delete("gig").
		Where("id = ?", uuidForm).
		ToSql()

	result, err := r.Database.ExecContext(ctx, deleteGigSql, args...)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return repo_errors.ErrNotFound
	}

	return nil
}

func (r *GigRepo) queryGigs(ctx context.Context, query string, args ...interface{}) ([]entity.Gig, error) {
	rows, err := r.Database.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	gigs := make([]entity.Gig, 0)
	for rows.Next() {
		var gig entity.Gig
		var createdAt time.Time
		if err := rows.Scan(&gig.Id, &gig.Title, &gig.Description, &gig.Budget,
			&gig.OwnerId, &gig.Status, &gig.HiringBidId, &createdAt); err != nil {
			return gigs, err
		}
		gig.CreatedAt = createdAt.Format(time.RFC3339)
		gigs = append(gigs, gig)
	}
	if err = rows.Err(); err != nil {
		return gigs, err
	}

	return gigs, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanGig(row rowScanner) (*entity.Gig, error) {
	var gig entity.Gig
	var createdAt time.Time
	err := row.Scan(&gig.Id, &gig.Title, &gig.Description, &gig.Budget,
		&gig.OwnerId, &gig.Status, &gig.HiringBidId, &createdAt)
	if err != nil {
		return nil, err
	}
	gig.CreatedAt = createdAt.Format(time.RFC3339)

	return &gig, nil
}
