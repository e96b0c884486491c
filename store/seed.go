// store/seed.go
package store

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"todostarter/domain"
)

// LoadSeed reads a YAML seed file containing a list of todos.
func LoadSeed(path string) (domain.Todos, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var todos domain.Todos
	if err := yaml.Unmarshal(data, &todos); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}

	seen := make(map[int]bool, len(todos))
	for _, t := range todos {
		if seen[t.ID] {
			return nil, fmt.Errorf("duplicate todo id in seed file: %d", t.ID)
		}
		seen[t.ID] = true
	}

	return todos, nil
}
