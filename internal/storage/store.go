// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/golfwager/internal/models"
)

// ErrNotFound is returned when a round or user does not exist.
var ErrNotFound = errors.New("not found")

// Store defines the interface for round and scorekeeper storage.
// The scoring core never sees it; services change a snapshot through
// ModifyRound and hand snapshots to the calculator.
type Store interface {
	// CreateRound persists a new round. ID and CreatedAt are filled in if empty.
	CreateRound(ctx context.Context, round *models.Round) error

	// GetRound retrieves a full round snapshot, including every hole entry.
	GetRound(ctx context.Context, roundID string) (*models.Round, error)

	// ModifyRound loads a round, applies fn and saves the result atomically.
	// Concurrent calls on one round are serialized. Nothing is saved if fn fails.
	ModifyRound(ctx context.Context, roundID string, fn func(*models.Round) error) (*models.Round, error)

	// LockRound locks a round and freezes the settlement lines settle computes
	// from it, atomically. A round that is already locked comes back as is.
	LockRound(ctx context.Context, roundID string, settle func(*models.Round) ([]models.SettlementLine, error)) (*models.Round, error)

	// DeleteRound removes a round and everything recorded for it.
	DeleteRound(ctx context.Context, roundID string) error

	// ListRoundsByOwner returns the owner's rounds, newest first.
	ListRoundsByOwner(ctx context.Context, ownerID string) ([]*models.Round, error)

	// ListSettlementLines returns frozen lines in the order they were saved.
	ListSettlementLines(ctx context.Context, roundID string) ([]models.SettlementLine, error)

	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// Close releases any resources held by the store.
	Close() error
}
