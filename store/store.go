// store/store.go
package store

import (
	"sync"

	"todostarter/domain"
)

// Store holds the todo list in memory, in insertion order. The list is
// owned by the server process and reset on restart.
type Store struct {
	mu     sync.RWMutex
	todos  domain.Todos
	nextID int
}

// New creates a store populated with the given seed records.
func New(seed domain.Todos) *Store {
	s := &Store{
		todos:  make(domain.Todos, len(seed)),
		nextID: 1,
	}
	copy(s.todos, seed)
	for _, t := range seed {
		if t.ID >= s.nextID {
			s.nextID = t.ID + 1
		}
	}
	return s
}

// List returns a copy of the list in insertion order.
func (s *Store) List() domain.Todos {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(domain.Todos, len(s.todos))
	copy(out, s.todos)
	return out
}

func (s *Store) Get(id int) (domain.Todo, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.todos {
		if t.ID == id {
			return t, true
		}
	}
	return domain.Todo{}, false
}

// Create appends a todo with the next free ID and returns it.
func (s *Store) Create(name string) domain.Todo {
	s.mu.Lock()
	defer s.mu.Unlock()

	todo := domain.Todo{ID: s.nextID, Name: name}
	s.nextID++
	s.todos = append(s.todos, todo)
	return todo
}

func (s *Store) Update(id int, name string) (domain.Todo, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, t := range s.todos {
		if t.ID == id {
			s.todos[i].Name = name
			return s.todos[i], true
		}
	}
	return domain.Todo{}, false
}

func (s *Store) Delete(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, t := range s.todos {
		if t.ID == id {
			s.todos = append(s.todos[:i], s.todos[i+1:]...)
			return true
		}
	}
	return false
}
