package services

import (
	"context"
	"errors"
	"fmt"

	dto "todo-list-api.com/todo-list-api/internal/data_models"
	apperr "todo-list-api.com/todo-list-api/internal/errors"
	model "todo-list-api.com/todo-list-api/internal/models"
	repository "todo-list-api.com/todo-list-api/internal/repositories"
	"todo-list-api.com/todo-list-api/internal/security"
)

type UserService struct {
	repo   *repository.UserRepository
	hasher security.PasswordHasher
}

func NewUserService(repo *repository.UserRepository, hasher security.PasswordHasher) *UserService {
	return &UserService{
		repo:   repo,
		hasher: hasher,
	}
}

// CreateUser rejects an email that is already registered before hashing
// the password and inserting the row.
func (s *UserService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*model.User, error) {
	existing, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("lookup user by email: %w", err)
	}
	if existing != nil {
		return nil, apperr.ErrEmailAlreadyRegistered
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.Create(ctx, req.Email, hash)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperr.ErrEmailAlreadyRegistered
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func (s *UserService) GetUser(ctx context.Context, id string) (*model.User, error) {
	user, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, userError("get user", err)
	}
	return user, nil
}

// UpdateUser re-hashes the password only when the payload carries one.
func (s *UserService) UpdateUser(ctx context.Context, id string, req dto.UpdateUserRequest) (*model.User, error) {
	changes := make(map[string]any)
	if req.Email.HasValue() {
		changes["email"] = req.Email.Value
	}
	if req.Password.HasValue() {
		hash, err := s.hasher.Hash(req.Password.Value)
		if err != nil {
			return nil, err
		}
		changes["password_hash"] = hash
	}

	user, err := s.repo.Update(ctx, id, changes)
	if err != nil {
		return nil, userError("update user", err)
	}
	return user, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if !ok {
		return apperr.ErrUserNotFound
	}
	return nil
}

func userError(op string, err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return apperr.ErrUserNotFound
	case errors.Is(err, repository.ErrDuplicate):
		return apperr.ErrEmailAlreadyRegistered
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
