package memory

import (
	"context"
	"fmt"

	"todo-board/internal/domain"
	"todo-board/internal/repository"
)

type UserRepository struct {
	store *Store
}

func NewUserRepository(store *Store) repository.UserRepository {
	return &UserRepository{store: store}
}

// Init is a no-op; the store needs no schema.
func (r *UserRepository) Init(ctx context.Context) error {
	return ctx.Err()
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.byUsername[user.Username]; exists {
		return fmt.Errorf("user %q: %w", user.Username, repository.ErrAlreadyExists)
	}
	if _, exists := r.store.byID[user.ID]; exists {
		return fmt.Errorf("user id %s: %w", user.ID, repository.ErrAlreadyExists)
	}

	rec := &userRecord{
		user: domain.User{
			ID:       user.ID,
			Name:     user.Name,
			Username: user.Username,
		},
		todos: copyTodos(user.Todos),
	}
	r.store.byUsername[user.Username] = rec
	r.store.byID[user.ID] = rec
	return nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	rec, ok := r.store.byUsername[username]
	if !ok {
		return nil, fmt.Errorf("user %q: %w", username, repository.ErrNotFound)
	}
	user := rec.snapshot()
	return &user, nil
}
