package memory

import (
	"context"
	"fmt"

	"todo-board/internal/domain"
	"todo-board/internal/repository"
)

type TodoRepository struct {
	store *Store
}

func NewTodoRepository(store *Store) repository.TodoRepository {
	return &TodoRepository{store: store}
}

func (r *TodoRepository) Init(ctx context.Context) error {
	return ctx.Err()
}

func (r *TodoRepository) ListByUser(ctx context.Context, userID string) ([]domain.Todo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	rec, err := r.owner(userID)
	if err != nil {
		return nil, err
	}
	return copyTodos(rec.todos), nil
}

func (r *TodoRepository) Create(ctx context.Context, userID string, todo *domain.Todo) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	rec, err := r.owner(userID)
	if err != nil {
		return err
	}
	if rec.indexOf(todo.ID) >= 0 {
		return fmt.Errorf("todo %s: %w", todo.ID, repository.ErrAlreadyExists)
	}
	rec.todos = append(rec.todos, *todo)
	return nil
}

func (r *TodoRepository) Get(ctx context.Context, userID, id string) (*domain.Todo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	rec, err := r.owner(userID)
	if err != nil {
		return nil, err
	}
	i := rec.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("todo %s: %w", id, repository.ErrNotFound)
	}
	todo := rec.todos[i]
	return &todo, nil
}

// Update replaces the stored todo with the same ID, keeping its position.
func (r *TodoRepository) Update(ctx context.Context, userID string, todo *domain.Todo) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	rec, err := r.owner(userID)
	if err != nil {
		return err
	}
	i := rec.indexOf(todo.ID)
	if i < 0 {
		return fmt.Errorf("todo %s: %w", todo.ID, repository.ErrNotFound)
	}
	rec.todos[i] = *todo
	return nil
}

func (r *TodoRepository) Delete(ctx context.Context, userID, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	rec, err := r.owner(userID)
	if err != nil {
		return err
	}
	i := rec.indexOf(id)
	if i < 0 {
		return fmt.Errorf("todo %s: %w", id, repository.ErrNotFound)
	}
	rec.todos = append(rec.todos[:i], rec.todos[i+1:]...)
	return nil
}

// owner must be called with the store lock held.
func (r *TodoRepository) owner(userID string) (*userRecord, error) {
	rec, ok := r.store.byID[userID]
	if !ok {
		return nil, fmt.Errorf("user id %s: %w", userID, repository.ErrNotFound)
	}
	return rec, nil
}
