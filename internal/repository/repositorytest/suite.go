// Package repositorytest holds behaviour checks shared by every repository
// backend.
package repositorytest

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-board/internal/domain"
	"todo-board/internal/repository"
)

// Factory returns freshly initialised, empty repositories sharing one store.
type Factory func(t *testing.T) (repository.UserRepository, repository.TodoRepository)

// Run executes the shared checks against the backend built by newRepos.
func Run(t *testing.T, newRepos Factory) {
	t.Run("create and get user", func(t *testing.T) {
		users, _ := newRepos(t)
		ctx := context.Background()

		user := newUser("alice")
		require.NoError(t, users.Create(ctx, user))

		got, err := users.GetByUsername(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
		assert.Equal(t, user.Name, got.Name)
		assert.Empty(t, got.Todos)
	})

	t.Run("duplicate username", func(t *testing.T) {
		users, _ := newRepos(t)
		ctx := context.Background()

		require.NoError(t, users.Create(ctx, newUser("bob")))
		err := users.Create(ctx, newUser("bob"))
		assert.ErrorIs(t, err, repository.ErrAlreadyExists)
	})

	t.Run("username lookup is exact", func(t *testing.T) {
		users, _ := newRepos(t)
		ctx := context.Background()

		require.NoError(t, users.Create(ctx, newUser("carol")))
		for _, name := range []string{"Carol", "carol ", "caro", ""} {
			_, err := users.GetByUsername(ctx, name)
			assert.ErrorIs(t, err, repository.ErrNotFound, "username %q", name)
		}
	})

	t.Run("todos keep insertion order", func(t *testing.T) {
		users, todos := newRepos(t)
		ctx := context.Background()
		owner := newUser("dave")
		require.NoError(t, users.Create(ctx, owner))

		var ids []string
		for _, title := range []string{"first", "second", "third"} {
			todo := newTodo(title)
			require.NoError(t, todos.Create(ctx, owner.ID, todo))
			ids = append(ids, todo.ID)
		}

		list, err := todos.ListByUser(ctx, owner.ID)
		require.NoError(t, err)
		require.Len(t, list, 3)
		for i := range list {
			assert.Equal(t, ids[i], list[i].ID)
		}

		got, err := users.GetByUsername(ctx, "dave")
		require.NoError(t, err)
		assert.Len(t, got.Todos, 3)
	})

	t.Run("todo round trip", func(t *testing.T) {
		users, todos := newRepos(t)
		ctx := context.Background()
		owner := newUser("erin")
		require.NoError(t, users.Create(ctx, owner))

		todo := newTodo("write report")
		require.NoError(t, todos.Create(ctx, owner.ID, todo))

		got, err := todos.Get(ctx, owner.ID, todo.ID)
		require.NoError(t, err)
		assert.Equal(t, todo.Title, got.Title)
		assert.False(t, got.Done)
		assert.True(t, todo.Deadline.Equal(got.Deadline), "deadline %s != %s", todo.Deadline, got.Deadline)
		assert.True(t, todo.CreatedAt.Equal(got.CreatedAt), "created_at %s != %s", todo.CreatedAt, got.CreatedAt)
	})

	t.Run("update in place", func(t *testing.T) {
		users, todos := newRepos(t)
		ctx := context.Background()
		owner := newUser("frank")
		require.NoError(t, users.Create(ctx, owner))

		first, second := newTodo("a"), newTodo("b")
		require.NoError(t, todos.Create(ctx, owner.ID, first))
		require.NoError(t, todos.Create(ctx, owner.ID, second))

		first.Title = "a2"
		first.Done = true
		require.NoError(t, todos.Update(ctx, owner.ID, first))

		list, err := todos.ListByUser(ctx, owner.ID)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, first.ID, list[0].ID)
		assert.Equal(t, "a2", list[0].Title)
		assert.True(t, list[0].Done)
		assert.Equal(t, "b", list[1].Title)

		missing := newTodo("ghost")
		assert.ErrorIs(t, todos.Update(ctx, owner.ID, missing), repository.ErrNotFound)
	})

	t.Run("delete removes the matched todo only", func(t *testing.T) {
		users, todos := newRepos(t)
		ctx := context.Background()
		owner := newUser("grace")
		require.NoError(t, users.Create(ctx, owner))

		a, b, c := newTodo("a"), newTodo("b"), newTodo("c")
		for _, todo := range []*domain.Todo{a, b, c} {
			require.NoError(t, todos.Create(ctx, owner.ID, todo))
		}

		require.NoError(t, todos.Delete(ctx, owner.ID, b.ID))

		list, err := todos.ListByUser(ctx, owner.ID)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, a.ID, list[0].ID)
		assert.Equal(t, c.ID, list[1].ID)

		assert.ErrorIs(t, todos.Delete(ctx, owner.ID, b.ID), repository.ErrNotFound)
		_, err = todos.Get(ctx, owner.ID, b.ID)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("todos are scoped to their owner", func(t *testing.T) {
		users, todos := newRepos(t)
		ctx := context.Background()
		owner, other := newUser("heidi"), newUser("ivan")
		require.NoError(t, users.Create(ctx, owner))
		require.NoError(t, users.Create(ctx, other))

		todo := newTodo("private")
		require.NoError(t, todos.Create(ctx, owner.ID, todo))

		_, err := todos.Get(ctx, other.ID, todo.ID)
		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.ErrorIs(t, todos.Delete(ctx, other.ID, todo.ID), repository.ErrNotFound)

		list, err := todos.ListByUser(ctx, other.ID)
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("unknown owner", func(t *testing.T) {
		_, todos := newRepos(t)
		ctx := context.Background()

		_, err := todos.ListByUser(ctx, uuid.NewString())
		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.ErrorIs(t, todos.Create(ctx, uuid.NewString(), newTodo("orphan")), repository.ErrNotFound)
	})
}

func newUser(username string) *domain.User {
	return &domain.User{
		ID:       uuid.NewString(),
		Name:     "Name of " + username,
		Username: username,
	}
}

func newTodo(title string) *domain.Todo {
	return &domain.Todo{
		ID:        uuid.NewString(),
		Title:     title,
		Deadline:  time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		CreatedAt: time.Now().UTC(),
	}
}
