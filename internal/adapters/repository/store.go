// Package repository defines the persistence sink for generated players.
//
// The sink is a collaborator, not a dependency: the generation pipeline
// proceeds whether or not a save succeeds.
package repository

import (
	"context"
	"time"

	"github.com/okian/scoutgen/internal/domain/model"
)

// Record bundles a generated player with the report produced for it.
type Record struct {
	ID        string       `json:"id"`
	Player    model.Player `json:"player"`
	Report    model.Report `json:"report"`
	CreatedAt time.Time    `json:"created_at"`
}

// Store persists generation records and hands back stored identifiers.
type Store interface {
	// Save stores a record and returns its identifier. An empty Record.ID
	// is assigned by the store.
	Save(ctx context.Context, rec Record) (string, error)

	// Get returns a stored record by id.
	// Returns ErrNotFound if the id is unknown.
	Get(ctx context.Context, id string) (Record, error)

	// Count returns the number of stored records.
	Count(ctx context.Context) (int, error)

	// Close releases store resources.
	Close() error
}
