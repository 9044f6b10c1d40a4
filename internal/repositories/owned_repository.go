package repository

import (
	"context"

	"gorm.io/gorm"
)

// ownedRepository implements the user-scoped CRUD shared by every model
// that carries a user_id column. The owner is always part of the same
// WHERE clause as the primary key.
type ownedRepository[T any] struct {
	db    *gorm.DB
	order string
}

func scoped(db *gorm.DB, id, ownerID string) *gorm.DB {
	return db.Where("id = ? AND user_id = ?", id, ownerID)
}

func (r ownedRepository[T]) list(ctx context.Context, ownerID string) ([]T, error) {
	rows := make([]T, 0)
	query := r.db.WithContext(ctx).Where("user_id = ?", ownerID)
	if r.order != "" {
		query = query.Order(r.order)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, classify(err)
	}
	return rows, nil
}

func (r ownedRepository[T]) get(ctx context.Context, id, ownerID string) (*T, error) {
	return r.find(r.db.WithContext(ctx), id, ownerID)
}

func (r ownedRepository[T]) find(db *gorm.DB, id, ownerID string) (*T, error) {
	var row T
	if err := scoped(db, id, ownerID).First(&row).Error; err != nil {
		return nil, classify(err)
	}
	return &row, nil
}

// create inserts row and returns it as stored, defaults included.
func (r ownedRepository[T]) create(ctx context.Context, row *T, id, ownerID string) (*T, error) {
	var created *T
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(row).Error; err != nil {
			return classify(err)
		}
		var err error
		created, err = r.find(tx, id, ownerID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// update writes only the given columns and re-reads the row. An empty
// change set issues no UPDATE.
func (r ownedRepository[T]) update(ctx context.Context, id, ownerID string, changes map[string]any) (*T, error) {
	var updated *T
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(changes) > 0 {
			if err := scoped(tx.Model(new(T)), id, ownerID).Updates(changes).Error; err != nil {
				return classify(err)
			}
		}
		var err error
		updated, err = r.find(tx, id, ownerID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r ownedRepository[T]) delete(ctx context.Context, id, ownerID string) (bool, error) {
	res := scoped(r.db.WithContext(ctx), id, ownerID).Delete(new(T))
	if res.Error != nil {
		return false, classify(res.Error)
	}
	return res.RowsAffected > 0, nil
}
