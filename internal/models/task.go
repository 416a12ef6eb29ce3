package models

import (
	"time"
)

type Task struct {
	ID        uint64 `gorm:"primarykey" json:"id"`
	Title     string `gorm:"not null;uniqueIndex:idx_tasks_user_title" json:"title"`
	Completed bool   `gorm:"not null;default:false" json:"completed"`
	// Priority is one of "Alta", "Normal" or "Baixa"
	Priority string `gorm:"type:varchar(20);not null;default:'Normal'" json:"priority"`
	// DueDate holds either a date string or the "Sem vencimento" sentinel
	DueDate   string    `gorm:"not null" json:"due_date"`
	UserID    uint64    `gorm:"not null;uniqueIndex:idx_tasks_user_title" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	User     User      `gorm:"foreignKey:UserID" json:"-"`
	Subtasks []Subtask `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE" json:"-"`
}
