package models

import (
	"time"
)

// Todo is a single to-do row. Each row has exactly one owner, bound at
// creation and never reassigned.
type Todo struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	IsCompleted bool      `gorm:"not null;default:false" json:"isCompleted"`
	CategoryID  *string   `gorm:"type:varchar(64)" json:"categoryId"`
	CreatedByID uint64    `gorm:"not null;index:idx_todos_owner_created,priority:1" json:"createdById"`
	CreatedAt   time.Time `gorm:"index:idx_todos_owner_created,priority:2" json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	// Relations
	CreatedBy User `gorm:"foreignKey:CreatedByID" json:"-"`
}
