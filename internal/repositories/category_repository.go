package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "todo-list-api.com/todo-list-api/internal/data_models"
	model "todo-list-api.com/todo-list-api/internal/models"
)

type CategoryRepository struct {
	owned ownedRepository[model.Category]
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{owned: ownedRepository[model.Category]{db: db, order: "name asc"}}
}

func (r *CategoryRepository) List(ctx context.Context, ownerID string) ([]model.Category, error) {
	return r.owned.list(ctx, ownerID)
}

func (r *CategoryRepository) Get(ctx context.Context, id, ownerID string) (*model.Category, error) {
	return r.owned.get(ctx, id, ownerID)
}

func (r *CategoryRepository) Create(ctx context.Context, req dto.CreateCategoryRequest, ownerID string) (*model.Category, error) {
	category := &model.Category{
		ID:     uuid.NewString(),
		UserID: ownerID,
		Name:   req.Name,
	}
	return r.owned.create(ctx, category, category.ID, ownerID)
}

func (r *CategoryRepository) Update(ctx context.Context, id string, req dto.UpdateCategoryRequest, ownerID string) (*model.Category, error) {
	return r.owned.update(ctx, id, ownerID, req.Changes())
}

func (r *CategoryRepository) Delete(ctx context.Context, id, ownerID string) (bool, error) {
	return r.owned.delete(ctx, id, ownerID)
}
