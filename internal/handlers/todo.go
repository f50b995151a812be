package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"todoapp/internal/dto"
	apierrors "todoapp/internal/errors"
	"todoapp/internal/middleware"
	"todoapp/internal/services"
)

// TodoHandler exposes the to-do procedures. Every handler requires an
// authenticated caller; ownership is always taken from the session.
type TodoHandler struct {
	todoService *services.TodoService
}

// NewTodoHandler creates a new TodoHandler
func NewTodoHandler(todoService *services.TodoService) *TodoHandler {
	return &TodoHandler{
		todoService: todoService,
	}
}

// CreateToDo creates a new to-do owned by the current user.
// The request carries no owner or timestamp fields; those are server-assigned.
func (h *TodoHandler) CreateToDo(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type CreateToDoRequest struct {
		Text        string  `json:"text"`
		IsCompleted bool    `json:"isCompleted"`
		CategoryID  *string `json:"categoryId"`
	}

	var req CreateToDoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	todo, err := h.todoService.Create(services.CreateTodoInput{
		Text:        req.Text,
		IsCompleted: req.IsCompleted,
		CategoryID:  req.CategoryID,
		OwnerID:     userID,
	})
	if err != nil {
		if errors.Is(err, services.ErrTextRequired) {
			apierrors.BadRequest(c, "Text cannot be empty")
			return
		}
		log.Printf("create todo: %v", err)
		apierrors.InternalError(c, "Failed to create ToDo")
		return
	}

	c.JSON(http.StatusCreated, todo)
}

// GetItems returns the current user's to-dos, oldest first
func (h *TodoHandler) GetItems(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	todos, err := h.todoService.List(userID)
	if err != nil {
		log.Printf("list todos: %v", err)
		apierrors.InternalError(c, "Failed to fetch ToDos")
		return
	}

	c.JSON(http.StatusOK, dto.ToTodoListResponse(todos))
}

// UpdateCompletion sets the completion flag on one of the user's to-dos
func (h *TodoHandler) UpdateCompletion(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type UpdateCompletionRequest struct {
		ID          uint64 `json:"id" binding:"required"`
		IsCompleted *bool  `json:"isCompleted" binding:"required"`
	}

	var req UpdateCompletionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.todoService.UpdateCompletion(req.ID, userID, *req.IsCompleted); err != nil {
		if errors.Is(err, services.ErrTodoNotFound) {
			apierrors.NotFound(c, "No todo updated")
			return
		}
		log.Printf("update todo completion: %v", err)
		apierrors.InternalError(c, "Failed to update ToDo")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Todo updated",
	})
}

// DeleteItem removes one of the user's to-dos
func (h *TodoHandler) DeleteItem(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type DeleteItemRequest struct {
		ID uint64 `json:"id" binding:"required"`
	}

	var req DeleteItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.todoService.Delete(req.ID, userID); err != nil {
		if errors.Is(err, services.ErrTodoNotFound) {
			apierrors.NotFound(c, "No todo deleted")
			return
		}
		log.Printf("delete todo: %v", err)
		apierrors.InternalError(c, "Failed to delete ToDo")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Todo deleted",
	})
}
