package memory

import (
	"sync"

	"todo-board/internal/domain"
)

// userRecord is the stored form of a user. Todos keep insertion order.
type userRecord struct {
	user  domain.User
	todos []domain.Todo
}

// Store holds every user and todo in process memory. It is safe for
// concurrent use; a zero Store is not, use NewStore.
type Store struct {
	mu sync.RWMutex

	byUsername map[string]*userRecord
	byID       map[string]*userRecord
}

func NewStore() *Store {
	return &Store{
		byUsername: map[string]*userRecord{},
		byID:       map[string]*userRecord{},
	}
}

// indexOf returns the position of the todo with the given id, or -1.
func (r *userRecord) indexOf(id string) int {
	for i := range r.todos {
		if r.todos[i].ID == id {
			return i
		}
	}
	return -1
}

func (r *userRecord) snapshot() domain.User {
	u := r.user
	u.Todos = copyTodos(r.todos)
	return u
}

func copyTodos(todos []domain.Todo) []domain.Todo {
	out := make([]domain.Todo, len(todos))
	copy(out, todos)
	return out
}
