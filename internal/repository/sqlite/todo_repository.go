package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"todo-board/internal/domain"
	"todo-board/internal/repository"
)

// seq preserves insertion order; id is the public identifier.
const createTodosTable = `
CREATE TABLE IF NOT EXISTS todos (
	seq INTEGER PRIMARY KEY AUTOINCREMENT,
	id TEXT NOT NULL,
	user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	title TEXT NOT NULL,
	done INTEGER NOT NULL DEFAULT 0,
	deadline DATETIME NOT NULL,
	created_at DATETIME NOT NULL,
	UNIQUE (user_id, id)
);
`

type TodoRepository struct {
	db *sql.DB
}

func NewTodoRepository(db *sql.DB) repository.TodoRepository {
	return &TodoRepository{db: db}
}

func (r *TodoRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createTodosTable); err != nil {
		return fmt.Errorf("create todos table: %w", err)
	}
	return nil
}

func (r *TodoRepository) ListByUser(ctx context.Context, userID string) ([]domain.Todo, error) {
	if err := r.ensureOwner(ctx, userID); err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `
SELECT id, title, done, deadline, created_at
FROM todos
WHERE user_id = ?
ORDER BY seq ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	defer rows.Close()

	todos := []domain.Todo{}
	for rows.Next() {
		todo, err := scanTodo(rows)
		if err != nil {
			return nil, err
		}
		todos = append(todos, *todo)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate todos: %w", err)
	}
	return todos, nil
}

func (r *TodoRepository) Create(ctx context.Context, userID string, todo *domain.Todo) error {
	if err := r.ensureOwner(ctx, userID); err != nil {
		return err
	}

	_, err := r.db.ExecContext(ctx, `
INSERT INTO todos (id, user_id, title, done, deadline, created_at)
VALUES (?, ?, ?, ?, ?, ?)`,
		todo.ID,
		userID,
		todo.Title,
		todo.Done,
		todo.Deadline.UTC(),
		todo.CreatedAt.UTC(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("todo %s: %w", todo.ID, repository.ErrAlreadyExists)
		}
		return fmt.Errorf("insert todo: %w", err)
	}
	return nil
}

func (r *TodoRepository) Get(ctx context.Context, userID, id string) (*domain.Todo, error) {
	if err := r.ensureOwner(ctx, userID); err != nil {
		return nil, err
	}

	row := r.db.QueryRowContext(ctx, `
SELECT id, title, done, deadline, created_at
FROM todos
WHERE user_id = ? AND id = ?`,
		userID,
		id,
	)
	todo, err := scanTodo(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("todo %s: %w", id, repository.ErrNotFound)
		}
		return nil, err
	}
	return todo, nil
}

// Update writes every mutable column of the todo. created_at is never touched.
func (r *TodoRepository) Update(ctx context.Context, userID string, todo *domain.Todo) error {
	if err := r.ensureOwner(ctx, userID); err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, `
UPDATE todos
SET title=?, done=?, deadline=?
WHERE user_id=? AND id=?`,
		todo.Title,
		todo.Done,
		todo.Deadline.UTC(),
		userID,
		todo.ID,
	)
	if err != nil {
		return fmt.Errorf("update todo: %w", err)
	}
	return expectOneRow(res, todo.ID)
}

func (r *TodoRepository) Delete(ctx context.Context, userID, id string) error {
	if err := r.ensureOwner(ctx, userID); err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM todos WHERE user_id=? AND id=?`, userID, id)
	if err != nil {
		return fmt.Errorf("delete todo: %w", err)
	}
	return expectOneRow(res, id)
}

func (r *TodoRepository) ensureOwner(ctx context.Context, userID string) error {
	var one int
	err := r.db.QueryRowContext(ctx, `SELECT 1 FROM users WHERE id = ?`, userID).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("user id %s: %w", userID, repository.ErrNotFound)
		}
		return fmt.Errorf("lookup todo owner: %w", err)
	}
	return nil
}

func expectOneRow(res sql.Result, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("todo rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("todo %s: %w", id, repository.ErrNotFound)
	}
	return nil
}

func scanTodo(row interface {
	Scan(dest ...any) error
}) (*domain.Todo, error) {
	var (
		todo      domain.Todo
		deadline  time.Time
		createdAt time.Time
	)
	if err := row.Scan(
		&todo.ID,
		&todo.Title,
		&todo.Done,
		&deadline,
		&createdAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan todo: %w", err)
	}
	todo.Deadline = deadline.UTC()
	todo.CreatedAt = createdAt.UTC()
	return &todo, nil
}
