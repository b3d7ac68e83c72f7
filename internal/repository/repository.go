package repository

import (
	"fmt"

	"github.com/yourusername/pick-settler/internal/database"
)

// Repositories holds all repository implementations
type Repositories struct {
	Pick PickRepository
}

// NewRepositories creates and returns all repository implementations
func NewRepositories(db *database.DB) (*Repositories, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is required")
	}

	return &Repositories{
		Pick: NewPostgresPickRepository(db),
	}, nil
}
