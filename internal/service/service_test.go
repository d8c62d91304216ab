package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-board/internal/domain"
	"todo-board/internal/repository/memory"
)

func newServices(t *testing.T) (UserService, TodoService) {
	t.Helper()
	store := memory.NewStore()
	return NewUserService(memory.NewUserRepository(store)), NewTodoService(memory.NewTodoRepository(store))
}

func mustCreateUser(t *testing.T, users UserService, username string) *domain.User {
	t.Helper()
	user, err := users.Create(context.Background(), "Name "+username, username)
	require.NoError(t, err)
	return user
}

func TestUserServiceCreate(t *testing.T) {
	users, _ := newServices(t)
	ctx := context.Background()

	user, err := users.Create(ctx, "A", "a")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "A", user.Name)
	assert.Equal(t, "a", user.Username)
	assert.NotNil(t, user.Todos)
	assert.Empty(t, user.Todos)

	_, err = users.Create(ctx, "B", "a")
	assert.ErrorIs(t, err, ErrUserAlreadyExists)

	_, err = users.Create(ctx, "C", "   ")
	assert.ErrorIs(t, err, ErrUsernameRequired)

	other, err := users.Create(ctx, "A", "b")
	require.NoError(t, err)
	assert.NotEqual(t, user.ID, other.ID)
}

func TestUserServiceResolve(t *testing.T) {
	users, _ := newServices(t)
	ctx := context.Background()
	created := mustCreateUser(t, users, "alice")

	got, err := users.Resolve(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	for _, name := range []string{"", "Alice", "alice2", " alice"} {
		_, err := users.Resolve(ctx, name)
		assert.ErrorIs(t, err, ErrUserNotFound, "username %q", name)
	}
}

func TestTodoServiceCreateAndList(t *testing.T) {
	users, todos := newServices(t)
	ctx := context.Background()
	user := mustCreateUser(t, users, "u")
	deadline := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

	before := time.Now().UTC()
	todo, err := todos.Create(ctx, user, "x", deadline)
	require.NoError(t, err)
	assert.NotEmpty(t, todo.ID)
	assert.False(t, todo.Done)
	assert.True(t, deadline.Equal(todo.Deadline))
	assert.False(t, todo.CreatedAt.Before(before))
	assert.False(t, todo.CreatedAt.After(time.Now().UTC()))

	list, err := todos.List(ctx, user)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, todo.ID, list[0].ID)
	assert.Equal(t, "x", list[0].Title)
}

func TestTodoServiceUpdate(t *testing.T) {
	users, todos := newServices(t)
	ctx := context.Background()
	user := mustCreateUser(t, users, "u")

	todo, err := todos.Create(ctx, user, "old", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	_, err = todos.MarkDone(ctx, user, todo.ID)
	require.NoError(t, err)

	newDeadline := time.Date(2026, 6, 30, 12, 0, 0, 0, time.UTC)
	updated, err := todos.Update(ctx, user, todo.ID, "new", newDeadline)
	require.NoError(t, err)
	assert.Equal(t, todo.ID, updated.ID)
	assert.Equal(t, "new", updated.Title)
	assert.True(t, newDeadline.Equal(updated.Deadline))
	assert.True(t, updated.Done)
	assert.True(t, todo.CreatedAt.Equal(updated.CreatedAt))

	_, err = todos.Update(ctx, user, "missing", "t", newDeadline)
	assert.ErrorIs(t, err, ErrTodoNotFound)
}

func TestTodoServiceMarkDoneIsIdempotent(t *testing.T) {
	users, todos := newServices(t)
	ctx := context.Background()
	user := mustCreateUser(t, users, "u")
	deadline := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	todo, err := todos.Create(ctx, user, "x", deadline)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		done, err := todos.MarkDone(ctx, user, todo.ID)
		require.NoError(t, err)
		assert.True(t, done.Done)
		assert.Equal(t, "x", done.Title)
		assert.True(t, deadline.Equal(done.Deadline))
	}

	_, err = todos.MarkDone(ctx, user, "missing")
	assert.ErrorIs(t, err, ErrTodoNotFound)
}

func TestTodoServiceDelete(t *testing.T) {
	users, todos := newServices(t)
	ctx := context.Background()
	user := mustCreateUser(t, users, "u")
	deadline := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	keep, err := todos.Create(ctx, user, "keep", deadline)
	require.NoError(t, err)
	drop, err := todos.Create(ctx, user, "drop", deadline)
	require.NoError(t, err)

	require.NoError(t, todos.Delete(ctx, user, drop.ID))

	list, err := todos.List(ctx, user)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, keep.ID, list[0].ID)

	assert.ErrorIs(t, todos.Delete(ctx, user, drop.ID), ErrTodoNotFound)
}

func TestTodoServiceUsesClock(t *testing.T) {
	store := memory.NewStore()
	users := NewUserService(memory.NewUserRepository(store))
	fixed := time.Date(2024, 3, 4, 5, 6, 7, 0, time.FixedZone("X", 3600))
	todos := &todoService{
		todos: memory.NewTodoRepository(store),
		now:   func() time.Time { return fixed },
	}
	user := mustCreateUser(t, users, "u")

	todo, err := todos.Create(context.Background(), user, "x", fixed)
	require.NoError(t, err)
	assert.Equal(t, fixed.UTC(), todo.CreatedAt)
	assert.Equal(t, time.UTC, todo.Deadline.Location())
}
