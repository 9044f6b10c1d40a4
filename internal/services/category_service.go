package services

import (
	"context"
	"errors"
	"fmt"

	dto "todo-list-api.com/todo-list-api/internal/data_models"
	apperr "todo-list-api.com/todo-list-api/internal/errors"
	model "todo-list-api.com/todo-list-api/internal/models"
	repository "todo-list-api.com/todo-list-api/internal/repositories"
)

type CategoryService struct {
	repo *repository.CategoryRepository
}

func NewCategoryService(repo *repository.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

func (s *CategoryService) ListCategories(ctx context.Context, ownerID string) ([]model.Category, error) {
	categories, err := s.repo.List(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

func (s *CategoryService) GetCategory(ctx context.Context, id, ownerID string) (*model.Category, error) {
	category, err := s.repo.Get(ctx, id, ownerID)
	if err != nil {
		return nil, categoryError("get category", err)
	}
	return category, nil
}

func (s *CategoryService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest, ownerID string) (*model.Category, error) {
	category, err := s.repo.Create(ctx, req, ownerID)
	if err != nil {
		return nil, categoryError("create category", err)
	}
	return category, nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, id string, req dto.UpdateCategoryRequest, ownerID string) (*model.Category, error) {
	category, err := s.repo.Update(ctx, id, req, ownerID)
	if err != nil {
		return nil, categoryError("update category", err)
	}
	return category, nil
}

func (s *CategoryService) DeleteCategory(ctx context.Context, id, ownerID string) error {
	ok, err := s.repo.Delete(ctx, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	if !ok {
		return apperr.ErrCategoryNotFound
	}
	return nil
}

func categoryError(op string, err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return apperr.ErrCategoryNotFound
	case errors.Is(err, repository.ErrInvalidReference):
		return apperr.ErrInvalidReference
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
