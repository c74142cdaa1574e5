package service

import (
	"context"
	"errors"

	"gig-marketplace-api/internal/entity"
	"gig-marketplace-api/internal/repo"
	"gig-marketplace-api/internal/repo/repo_errors"

	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	userRepo repo.User
}

func NewUserService(repos *repo.Repositories) *UserService {
	return &UserService{userRepo: repos.User}
}

func (s *UserService) Register(ctx context.Context, name string, email string, password string) (*entity.UserOutputModel, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	input := &entity.CreateUserInput{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	}

	id, err := s.userRepo.CreateUser(ctx, input)
	if err != nil {
		if errors.Is(err, repo_errors.ErrConflict) {
			return nil, ErrEmailAlreadyTaken
		}

		return nil, err
	}

	user, err := s.userRepo.GetUserById(ctx, id.String())
	if err != nil {
		return nil, err
	}

	return mapUser(user), nil
}

// Login deliberately reports a missing user and a wrong password the same
// way, so the response doesn't reveal which emails are registered.
func (s *UserService) Login(ctx context.Context, email string, password string) (*entity.UserOutputModel, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}

		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return mapUser(user), nil
}

func (s *UserService) GetUserById(ctx context.Context, id string) (*entity.UserOutputModel, error) {
	user, err := s.userRepo.GetUserById(ctx, id)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrUserNotFound
		}

		return nil, err
	}

	return mapUser(user), nil
}
