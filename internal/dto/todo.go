package dto

import (
	"time"

	"todoapp/internal/models"
)

// UserDTO represents a user in API responses
type UserDTO struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
}

// TodoItemDTO is the list projection of a to-do row
type TodoItemDTO struct {
	ID          uint64    `json:"id"`
	Title       string    `json:"title"`
	IsCompleted bool      `json:"isCompleted"`
	CategoryID  *string   `json:"categoryId"`
	CreatedAt   time.Time `json:"createdAt"`
}

// TodoListResponse wraps the items returned by getItems
type TodoListResponse struct {
	Items []TodoItemDTO `json:"items"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:       user.ID,
		Username: user.Username,
	}
}

// ToTodoItemDTO converts a Todo model to its list projection
func ToTodoItemDTO(todo models.Todo) TodoItemDTO {
	return TodoItemDTO{
		ID:          todo.ID,
		Title:       todo.Title,
		IsCompleted: todo.IsCompleted,
		CategoryID:  todo.CategoryID,
		CreatedAt:   todo.CreatedAt,
	}
}

// ToTodoListResponse converts a slice of todos to the getItems response
func ToTodoListResponse(todos []models.Todo) TodoListResponse {
	items := make([]TodoItemDTO, len(todos))
	for i, todo := range todos {
		items[i] = ToTodoItemDTO(todo)
	}
	return TodoListResponse{Items: items}
}
