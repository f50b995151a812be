package services

import (
	"errors"
	"fmt"
	"strings"

	"todoapp/internal/models"
	"todoapp/internal/repository"
)

var (
	ErrTextRequired = errors.New("text cannot be empty")
	ErrTodoNotFound = errors.New("todo not found")
)

// TodoService handles to-do business logic
type TodoService struct {
	todoRepo repository.TodoRepository
}

// NewTodoService creates a new TodoService
func NewTodoService(todoRepo repository.TodoRepository) *TodoService {
	return &TodoService{
		todoRepo: todoRepo,
	}
}

// CreateTodoInput represents input for creating a to-do. OwnerID always
// comes from the authenticated session, never from the request body.
type CreateTodoInput struct {
	Text        string
	IsCompleted bool
	CategoryID  *string
	OwnerID     uint64
}

// Create validates the input and persists a new to-do owned by the caller.
// Timestamps are assigned by the store, not taken from the client.
func (s *TodoService) Create(input CreateTodoInput) (*models.Todo, error) {
	if strings.TrimSpace(input.Text) == "" {
		return nil, ErrTextRequired
	}

	todo := &models.Todo{
		Title:       input.Text,
		IsCompleted: input.IsCompleted,
		CategoryID:  input.CategoryID,
		CreatedByID: input.OwnerID,
	}

	if err := s.todoRepo.Create(todo); err != nil {
		return nil, fmt.Errorf("failed to create todo: %w", err)
	}

	return todo, nil
}

// List returns the caller's own to-dos, ordered by creation time ascending
func (s *TodoService) List(ownerID uint64) ([]models.Todo, error) {
	todos, err := s.todoRepo.ListByOwner(ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}
	return todos, nil
}

// UpdateCompletion sets the completion flag on one of the caller's to-dos.
// A zero-row update means either the id does not exist or the row belongs
// to someone else; both surface as ErrTodoNotFound.
func (s *TodoService) UpdateCompletion(id, ownerID uint64, isCompleted bool) error {
	affected, err := s.todoRepo.UpdateCompletion(id, ownerID, isCompleted)
	if err != nil {
		return fmt.Errorf("failed to update todo: %w", err)
	}
	if affected == 0 {
		return ErrTodoNotFound
	}
	return nil
}

// Delete removes one of the caller's to-dos
func (s *TodoService) Delete(id, ownerID uint64) error {
	affected, err := s.todoRepo.Delete(id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete todo: %w", err)
	}
	if affected == 0 {
		return ErrTodoNotFound
	}
	return nil
}
