package domain

// User is an account addressed by its unique username. Users own their todos.
type User struct {
	ID       string
	Name     string
	Username string
	Todos    []Todo
}
