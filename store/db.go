package store

import (
	"github.com/ayoisaiah/hourclock/internal/models"
)

// DB is the database storage interface.
type DB interface {
	// Load returns the persisted state. A missing or unreadable record yields
	// a fresh default state rather than an error
	Load() (*models.State, error)
	// Save replaces the persisted state
	Save(state *models.State) error
	// Close ends the database connection
	Close() error
}
