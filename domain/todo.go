// domain/todo.go
package domain

// Todo is a single list record.
type Todo struct {
	ID   int    `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

type Todos []Todo

// SampleTodos is the fixed set the server is seeded with when no seed
// file is configured.
func SampleTodos() Todos {
	return Todos{
		{ID: 1, Name: "Alice"},
		{ID: 2, Name: "Bob"},
		{ID: 3, Name: "Hehe"},
	}
}
