package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "todo-list-api.com/todo-list-api/internal/data_models"
	model "todo-list-api.com/todo-list-api/internal/models"
)

type ProjectRepository struct {
	owned ownedRepository[model.Project]
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{owned: ownedRepository[model.Project]{db: db, order: "create_day desc"}}
}

func (r *ProjectRepository) List(ctx context.Context, ownerID string) ([]model.Project, error) {
	return r.owned.list(ctx, ownerID)
}

func (r *ProjectRepository) Get(ctx context.Context, id, ownerID string) (*model.Project, error) {
	return r.owned.get(ctx, id, ownerID)
}

func (r *ProjectRepository) Create(ctx context.Context, req dto.CreateProjectRequest, ownerID string) (*model.Project, error) {
	project := &model.Project{
		ID:       uuid.NewString(),
		UserID:   ownerID,
		Name:     req.Name,
		DueDate:  req.DueDate,
		Progress: req.Progress,
	}
	return r.owned.create(ctx, project, project.ID, ownerID)
}

func (r *ProjectRepository) Update(ctx context.Context, id string, req dto.UpdateProjectRequest, ownerID string) (*model.Project, error) {
	return r.owned.update(ctx, id, ownerID, req.Changes())
}

func (r *ProjectRepository) Delete(ctx context.Context, id, ownerID string) (bool, error) {
	return r.owned.delete(ctx, id, ownerID)
}
