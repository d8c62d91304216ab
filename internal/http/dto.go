package http

import (
	"fmt"
	"strings"
	"time"

	"todo-board/internal/domain"
)

const (
	msgUserExists   = "User already exists."
	msgUserNotFound = "User not found."
	msgTodoNotFound = "TODO not found."
)

type createUserRequest struct {
	Name     string `json:"name"`
	Username string `json:"username" binding:"required"`
}

// todoRequest is the body of both todo creation and update.
type todoRequest struct {
	Title    string `json:"title" binding:"required"`
	Deadline string `json:"deadline" binding:"required"`
}

type UserResponse struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Username string         `json:"username"`
	Todos    []TodoResponse `json:"todos"`
}

type TodoResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Done      bool   `json:"done"`
	Deadline  string `json:"deadline"`
	CreatedAt string `json:"created_at"`
}

var deadlineLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
}

// parseDeadline accepts a date ("2025-01-01", start of that day in UTC) or a
// datetime in RFC3339. A datetime without offset is read as UTC.
func parseDeadline(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, fmt.Errorf("deadline is required")
	}
	for _, layout := range deadlineLayouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			return parsed.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("deadline: use date (YYYY-MM-DD) or RFC3339 datetime, got %q", raw)
}

func userToResponse(user domain.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Name:     user.Name,
		Username: user.Username,
		Todos:    todosToResponse(user.Todos),
	}
}

func todosToResponse(todos []domain.Todo) []TodoResponse {
	resp := make([]TodoResponse, len(todos))
	for i := range todos {
		resp[i] = todoToResponse(todos[i])
	}
	return resp
}

func todoToResponse(todo domain.Todo) TodoResponse {
	return TodoResponse{
		ID:        todo.ID,
		Title:     todo.Title,
		Done:      todo.Done,
		Deadline:  todo.Deadline.UTC().Format(time.RFC3339Nano),
		CreatedAt: todo.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}
