package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"todo-board/internal/domain"
	"todo-board/internal/repository"
)

const createUsersTable = `
CREATE TABLE IF NOT EXISTS users (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	username TEXT NOT NULL UNIQUE
);
`

type UserRepository struct {
	db    *sql.DB
	todos *TodoRepository
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &UserRepository{db: db, todos: &TodoRepository{db: db}}
}

func (r *UserRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createUsersTable); err != nil {
		return fmt.Errorf("create users table: %w", err)
	}
	return nil
}

// Create inserts the user row. Todos attached to the user are ignored; they
// are added through the todo repository.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO users (id, name, username)
VALUES (?, ?, ?)`,
		user.ID,
		user.Name,
		user.Username,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("user %q: %w", user.Username, repository.ErrAlreadyExists)
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, name, username
FROM users
WHERE username = ?`,
		username,
	)

	var user domain.User
	if err := row.Scan(&user.ID, &user.Name, &user.Username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user %q: %w", username, repository.ErrNotFound)
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}

	todos, err := r.todos.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	user.Todos = todos
	return &user, nil
}
