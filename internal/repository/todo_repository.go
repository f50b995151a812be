package repository

import (
	"gorm.io/gorm"

	"todoapp/internal/models"
)

// GormTodoRepository is a GORM implementation of TodoRepository
type GormTodoRepository struct {
	db *gorm.DB
}

// NewTodoRepository creates a new TodoRepository
func NewTodoRepository(db *gorm.DB) TodoRepository {
	return &GormTodoRepository{db: db}
}

// Create inserts a new to-do row
func (r *GormTodoRepository) Create(todo *models.Todo) error {
	return r.db.Create(todo).Error
}

// ListByOwner returns all to-dos owned by a user, ordered by creation time ascending
func (r *GormTodoRepository) ListByOwner(ownerID uint64) ([]models.Todo, error) {
	var todos []models.Todo
	err := r.db.
		Where("created_by_id = ?", ownerID).
		Order("created_at ASC").
		Find(&todos).Error
	if err != nil {
		return nil, err
	}
	return todos, nil
}

// UpdateCompletion sets is_completed on the row matching both id and owner.
// The owner condition makes "not found" and "not yours" indistinguishable.
func (r *GormTodoRepository) UpdateCompletion(id, ownerID uint64, isCompleted bool) (int64, error) {
	result := r.db.Model(&models.Todo{}).
		Where("id = ? AND created_by_id = ?", id, ownerID).
		Update("is_completed", isCompleted)
	return result.RowsAffected, result.Error
}

// Delete removes the row matching both id and owner
func (r *GormTodoRepository) Delete(id, ownerID uint64) (int64, error) {
	result := r.db.
		Where("id = ? AND created_by_id = ?", id, ownerID).
		Delete(&models.Todo{})
	return result.RowsAffected, result.Error
}
