package models

import (
	"time"
)

type Subtask struct {
	ID        uint64 `gorm:"primarykey" json:"id"`
	Title     string `gorm:"not null" json:"title"`
	Completed bool   `gorm:"not null;default:false" json:"completed"`
	DueDate   string `gorm:"not null" json:"due_date"`
	TaskID    uint64 `gorm:"not null;index" json:"task_id"`
	// UserID duplicates the parent task's owner so ownership checks never
	// need a join
	UserID    uint64    `gorm:"not null;index" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Task Task `gorm:"foreignKey:TaskID" json:"-"`
	User User `gorm:"foreignKey:UserID" json:"-"`
}
