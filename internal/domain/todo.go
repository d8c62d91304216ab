package domain

import "time"

// Todo is a single task owned by exactly one User.
type Todo struct {
	ID        string
	Title     string
	Done      bool
	Deadline  time.Time
	CreatedAt time.Time
}
