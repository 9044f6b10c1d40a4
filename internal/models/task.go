package model

import "time"

// Task belongs to a user and optionally to one category and one project.
// Removing the category or project clears the reference, removing the user
// removes the task.
type Task struct {
	ID          string     `gorm:"primaryKey;size:36" json:"id"`
	UserID      string     `gorm:"size:36;not null;index" json:"user_id"`
	CategoryID  *string    `gorm:"size:36;index" json:"category_id"`
	ProjectID   *string    `gorm:"size:36;index" json:"project_id"`
	Title       string     `gorm:"size:255;not null" json:"title"`
	Description *string    `json:"description"`
	IsCompleted bool       `gorm:"not null;default:false" json:"is_completed"`
	DueDate     *time.Time `json:"due_date"`
	Priority    int        `gorm:"not null;default:0" json:"priority"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	User     *User     `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Category *Category `gorm:"constraint:OnDelete:SET NULL" json:"-"`
	Project  *Project  `gorm:"constraint:OnDelete:SET NULL" json:"-"`
}
