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

type ProjectService struct {
	repo *repository.ProjectRepository
}

func NewProjectService(repo *repository.ProjectRepository) *ProjectService {
	return &ProjectService{repo: repo}
}

func (s *ProjectService) ListProjects(ctx context.Context, ownerID string) ([]model.Project, error) {
	projects, err := s.repo.List(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

func (s *ProjectService) GetProject(ctx context.Context, id, ownerID string) (*model.Project, error) {
	project, err := s.repo.Get(ctx, id, ownerID)
	if err != nil {
		return nil, projectError("get project", err)
	}
	return project, nil
}

func (s *ProjectService) CreateProject(ctx context.Context, req dto.CreateProjectRequest, ownerID string) (*model.Project, error) {
	project, err := s.repo.Create(ctx, req, ownerID)
	if err != nil {
		return nil, projectError("create project", err)
	}
	return project, nil
}

func (s *ProjectService) UpdateProject(ctx context.Context, id string, req dto.UpdateProjectRequest, ownerID string) (*model.Project, error) {
	project, err := s.repo.Update(ctx, id, req, ownerID)
	if err != nil {
		return nil, projectError("update project", err)
	}
	return project, nil
}

func (s *ProjectService) DeleteProject(ctx context.Context, id, ownerID string) error {
	ok, err := s.repo.Delete(ctx, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	if !ok {
		return apperr.ErrProjectNotFound
	}
	return nil
}

func projectError(op string, err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return apperr.ErrProjectNotFound
	case errors.Is(err, repository.ErrInvalidReference):
		return apperr.ErrInvalidReference
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
