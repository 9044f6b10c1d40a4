package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "todo-list-api.com/todo-list-api/internal/models"
)

// UserRepository is not owner scoped; users are the root of ownership.
// Rows of the other models reference users with ON DELETE CASCADE.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Get(ctx context.Context, id string) (*model.User, error) {
	return r.first(r.db.WithContext(ctx), "id = ?", id)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.first(r.db.WithContext(ctx), "email = ?", email)
}

func (r *UserRepository) first(db *gorm.DB, query string, arg any) (*model.User, error) {
	var user model.User
	if err := db.Where(query, arg).First(&user).Error; err != nil {
		return nil, classify(err)
	}
	return &user, nil
}

// Create stores an already hashed credential.
func (r *UserRepository) Create(ctx context.Context, email, passwordHash string) (*model.User, error) {
	user := &model.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: passwordHash,
	}

	var created *model.User
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return classify(err)
		}
		var err error
		created, err = r.first(tx, "id = ?", user.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Update writes the given columns; password_hash must already be hashed.
func (r *UserRepository) Update(ctx context.Context, id string, changes map[string]any) (*model.User, error) {
	var updated *model.User
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(changes) > 0 {
			if err := tx.Model(&model.User{}).Where("id = ?", id).Updates(changes).Error; err != nil {
				return classify(err)
			}
		}
		var err error
		updated, err = r.first(tx, "id = ?", id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.User{})
	if res.Error != nil {
		return false, classify(res.Error)
	}
	return res.RowsAffected > 0, nil
}
