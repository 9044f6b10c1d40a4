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

type TaskService struct {
	repo       *repository.TaskRepository
	categories *repository.CategoryRepository
	projects   *repository.ProjectRepository
}

func NewTaskService(
	repo *repository.TaskRepository,
	categories *repository.CategoryRepository,
	projects *repository.ProjectRepository,
) *TaskService {
	return &TaskService{
		repo:       repo,
		categories: categories,
		projects:   projects,
	}
}

func (s *TaskService) ListTasks(ctx context.Context, ownerID string) ([]model.Task, error) {
	tasks, err := s.repo.List(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

func (s *TaskService) GetTask(ctx context.Context, id, ownerID string) (*model.Task, error) {
	task, err := s.repo.Get(ctx, id, ownerID)
	if err != nil {
		return nil, taskError("get task", err)
	}
	return task, nil
}

func (s *TaskService) CreateTask(ctx context.Context, req dto.CreateTaskRequest, ownerID string) (*model.Task, error) {
	if err := s.checkReferences(ctx, req.CategoryID, req.ProjectID, ownerID); err != nil {
		return nil, err
	}

	task, err := s.repo.Create(ctx, req, ownerID)
	if err != nil {
		return nil, taskError("create task", err)
	}
	return task, nil
}

func (s *TaskService) UpdateTask(ctx context.Context, id string, req dto.UpdateTaskRequest, ownerID string) (*model.Task, error) {
	var categoryID, projectID *string
	if req.CategoryID.HasValue() {
		categoryID = &req.CategoryID.Value
	}
	if req.ProjectID.HasValue() {
		projectID = &req.ProjectID.Value
	}
	if err := s.checkReferences(ctx, categoryID, projectID, ownerID); err != nil {
		return nil, err
	}

	task, err := s.repo.Update(ctx, id, req, ownerID)
	if err != nil {
		return nil, taskError("update task", err)
	}
	return task, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, id, ownerID string) error {
	ok, err := s.repo.Delete(ctx, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if !ok {
		return apperr.ErrTaskNotFound
	}
	return nil
}

// checkReferences keeps a task from pointing at another user's category or
// project; the foreign keys alone only prove the row exists.
func (s *TaskService) checkReferences(ctx context.Context, categoryID, projectID *string, ownerID string) error {
	if categoryID != nil {
		if _, err := s.categories.Get(ctx, *categoryID, ownerID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return apperr.ErrCategoryReference
			}
			return fmt.Errorf("check category: %w", err)
		}
	}
	if projectID != nil {
		if _, err := s.projects.Get(ctx, *projectID, ownerID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return apperr.ErrProjectReference
			}
			return fmt.Errorf("check project: %w", err)
		}
	}
	return nil
}

func taskError(op string, err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return apperr.ErrTaskNotFound
	case errors.Is(err, repository.ErrInvalidReference):
		return apperr.ErrInvalidReference
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
