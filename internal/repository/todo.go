package repository

import (
	"context"

	"todo-board/internal/domain"
)

// TodoRepository manages the todos of a single owner, identified by user ID.
// Every method returns ErrNotFound when the owner or the todo is missing.
type TodoRepository interface {
	Init(ctx context.Context) error
	ListByUser(ctx context.Context, userID string) ([]domain.Todo, error)
	Create(ctx context.Context, userID string, todo *domain.Todo) error
	Get(ctx context.Context, userID, id string) (*domain.Todo, error)
	Update(ctx context.Context, userID string, todo *domain.Todo) error
	Delete(ctx context.Context, userID, id string) error
}
