package pgdb

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"gig-marketplace-api/internal/entity"
	"gig-marketplace-api/internal/repo/repo_errors"
	"gig-marketplace-api/pkg/postgres"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const uniqueViolation = "23505"

type UserRepo struct {
	*postgres.Postgres
}

func NewUserRepo(pgdb *postgres.Postgres) *UserRepo {
	return &UserRepo{pgdb}
}

func (r *UserRepo) CreateUser(ctx context.Context, input *entity.CreateUserInput) (uuid.UUID, error) {
	createUserSql, args, _ := r.SqlBuilder.
		Insert("users").
		Columns("name", "email", "password_hash").
		Values(input.Name, input.Email, input.PasswordHash).
		Suffix("RETURNING id").
		ToSql()

	var userId uuid.UUID
	err := r.Database.QueryRowContext(ctx, createUserSql, args...).Scan(&userId)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return uuid.Nil, repo_errors.ErrConflict
		}

		return uuid.Nil, err
	}

	return userId, nil
}

func (r *UserRepo) GetUserById(ctx context.Context, id string) (*entity.User, error) {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return nil, repo_errors.ErrNotFound
	}

	getUserSql, args, _ := r.SqlBuilder.
		Select("id", "name", "email", "password_hash", "created_at").
		From("users").
		Where("id = ?", uuidForm).
		ToSql()

	return r.scanUser(r.Database.QueryRowContext(ctx, getUserSql, args...))
}

func (r *UserRepo) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	getUserSql, args, _ := r.SqlBuilder.
		Select("id", "name", "email", "password_hash", "created_at").
		From("users").
		Where("email = ?", email).
		ToSql()

	return r.scanUser(r.Database.QueryRowContext(ctx, getUserSql, args...))
}

func (r *UserRepo) scanUser(row *sql.Row) (*entity.User, error) {
	var user entity.User
	var createdAt time.Time
	err := row.Scan(&user.Id, &user.Name, &user.Email, &user.PasswordHash, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}
	user.CreatedAt = createdAt.Format(time.RFC3339)

	return &user, nil
}
