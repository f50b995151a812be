package repository

import (
	"todoapp/internal/models"
)

// TodoRepository defines the interface for to-do data access. All mutating
// queries are scoped to the owning user so a row can never be read or
// modified by anyone but its creator.
type TodoRepository interface {
	// Create inserts a new to-do row
	Create(todo *models.Todo) error

	// ListByOwner returns all to-dos owned by a user, ordered by creation time ascending
	ListByOwner(ownerID uint64) ([]models.Todo, error)

	// UpdateCompletion sets is_completed on the row matching both id and owner.
	// Returns the number of rows affected.
	UpdateCompletion(id, ownerID uint64, isCompleted bool) (int64, error)

	// Delete removes the row matching both id and owner.
	// Returns the number of rows affected.
	Delete(id, ownerID uint64) (int64, error)
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)
}
