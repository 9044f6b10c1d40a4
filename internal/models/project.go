package model

import "time"

type Project struct {
	ID        string     `gorm:"primaryKey;size:36" json:"id"`
	UserID    string     `gorm:"size:36;not null;index" json:"user_id"`
	Name      string     `gorm:"size:255;not null" json:"name"`
	CreateDay time.Time  `gorm:"autoCreateTime" json:"create_day"`
	DueDate   *time.Time `json:"due_date"`
	Progress  int        `gorm:"not null;default:0" json:"progress"`

	User *User `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
