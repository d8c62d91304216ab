package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"todo-board/internal/domain"
	"todo-board/internal/repository"
)

var (
	// ErrUserAlreadyExists is returned when the username is already registered.
	ErrUserAlreadyExists = errors.New("user already exists")
	// ErrUserNotFound is returned when no user matches the supplied username.
	ErrUserNotFound = errors.New("user not found")
	// ErrUsernameRequired is returned when creating a user with a blank username.
	ErrUsernameRequired = errors.New("username is required")
)

// UserService describes user lifecycle operations.
type UserService interface {
	Create(ctx context.Context, name, username string) (*domain.User, error)
	// Resolve maps a username to its user. Matching is exact and case-sensitive.
	Resolve(ctx context.Context, username string) (*domain.User, error)
}

type userService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) UserService {
	return &userService{users: users}
}

func (s *userService) Create(ctx context.Context, name, username string) (*domain.User, error) {
	if strings.TrimSpace(username) == "" {
		return nil, ErrUsernameRequired
	}

	user := &domain.User{
		ID:       uuid.NewString(),
		Name:     name,
		Username: username,
		Todos:    []domain.Todo{},
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return nil, ErrUserAlreadyExists
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) Resolve(ctx context.Context, username string) (*domain.User, error) {
	if username == "" {
		return nil, ErrUserNotFound
	}
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
