package model

type Category struct {
	ID     string `gorm:"primaryKey;size:36" json:"id"`
	UserID string `gorm:"size:36;not null;index" json:"user_id"`
	Name   string `gorm:"size:255;not null" json:"name"`

	User *User `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
