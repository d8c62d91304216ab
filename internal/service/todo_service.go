package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"todo-board/internal/domain"
	"todo-board/internal/repository"
)

// ErrTodoNotFound is returned when the resolved user owns no todo with the given id.
var ErrTodoNotFound = errors.New("todo not found")

// TodoService operates on the todo collection of an already resolved user.
type TodoService interface {
	List(ctx context.Context, user *domain.User) ([]domain.Todo, error)
	Create(ctx context.Context, user *domain.User, title string, deadline time.Time) (*domain.Todo, error)
	Update(ctx context.Context, user *domain.User, id, title string, deadline time.Time) (*domain.Todo, error)
	MarkDone(ctx context.Context, user *domain.User, id string) (*domain.Todo, error)
	Delete(ctx context.Context, user *domain.User, id string) error
}

type todoService struct {
	todos repository.TodoRepository
	now   func() time.Time
}

func NewTodoService(todos repository.TodoRepository) TodoService {
	return &todoService{
		todos: todos,
		now:   time.Now,
	}
}

func (s *todoService) List(ctx context.Context, user *domain.User) ([]domain.Todo, error) {
	todos, err := s.todos.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, translateTodoErr(err)
	}
	return todos, nil
}

func (s *todoService) Create(ctx context.Context, user *domain.User, title string, deadline time.Time) (*domain.Todo, error) {
	todo := &domain.Todo{
		ID:        uuid.NewString(),
		Title:     title,
		Done:      false,
		Deadline:  deadline.UTC(),
		CreatedAt: s.now().UTC(),
	}
	if err := s.todos.Create(ctx, user.ID, todo); err != nil {
		return nil, translateTodoErr(err)
	}
	return todo, nil
}

func (s *todoService) Update(ctx context.Context, user *domain.User, id, title string, deadline time.Time) (*domain.Todo, error) {
	return s.modify(ctx, user, id, func(todo *domain.Todo) {
		todo.Title = title
		todo.Deadline = deadline.UTC()
	})
}

func (s *todoService) MarkDone(ctx context.Context, user *domain.User, id string) (*domain.Todo, error) {
	return s.modify(ctx, user, id, func(todo *domain.Todo) {
		todo.Done = true
	})
}

func (s *todoService) Delete(ctx context.Context, user *domain.User, id string) error {
	if err := s.todos.Delete(ctx, user.ID, id); err != nil {
		return translateTodoErr(err)
	}
	return nil
}

func (s *todoService) modify(ctx context.Context, user *domain.User, id string, apply func(*domain.Todo)) (*domain.Todo, error) {
	todo, err := s.todos.Get(ctx, user.ID, id)
	if err != nil {
		return nil, translateTodoErr(err)
	}
	apply(todo)
	if err := s.todos.Update(ctx, user.ID, todo); err != nil {
		return nil, translateTodoErr(err)
	}
	return todo, nil
}

func translateTodoErr(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrTodoNotFound
	}
	return err
}
