package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "todo-list-api.com/todo-list-api/internal/data_models"
	model "todo-list-api.com/todo-list-api/internal/models"
)

type TaskRepository struct {
	owned ownedRepository[model.Task]
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{owned: ownedRepository[model.Task]{db: db, order: "created_at desc"}}
}

func (r *TaskRepository) List(ctx context.Context, ownerID string) ([]model.Task, error) {
	return r.owned.list(ctx, ownerID)
}

func (r *TaskRepository) Get(ctx context.Context, id, ownerID string) (*model.Task, error) {
	return r.owned.get(ctx, id, ownerID)
}

func (r *TaskRepository) Create(ctx context.Context, req dto.CreateTaskRequest, ownerID string) (*model.Task, error) {
	task := &model.Task{
		ID:          uuid.NewString(),
		UserID:      ownerID,
		CategoryID:  req.CategoryID,
		ProjectID:   req.ProjectID,
		Title:       req.Title,
		Description: req.Description,
		IsCompleted: req.IsCompleted,
		DueDate:     req.DueDate,
		Priority:    req.Priority,
	}
	return r.owned.create(ctx, task, task.ID, ownerID)
}

func (r *TaskRepository) Update(ctx context.Context, id string, req dto.UpdateTaskRequest, ownerID string) (*model.Task, error) {
	return r.owned.update(ctx, id, ownerID, req.Changes())
}

func (r *TaskRepository) Delete(ctx context.Context, id, ownerID string) (bool, error) {
	return r.owned.delete(ctx, id, ownerID)
}
