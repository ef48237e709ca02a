package game

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/pyramid-party/server/internal/repositories/game Repository

import (
	"context"

	"github.com/pyramid-party/server/internal/models"
)

// Repository defines the interface for game record persistence
type Repository interface {
	// CreateGame persists a brand new game record; fails if the room
	// code is already taken
	CreateGame(ctx context.Context, input *CreateGameInput) error

	// GetGame retrieves the latest committed record for a room
	GetGame(ctx context.Context, input *GetGameInput) (*models.GameRecord, error)

	// UpdateGame atomically applies a read-modify-write to a record and
	// returns the merged result
	UpdateGame(ctx context.Context, input *UpdateGameInput) (*models.GameRecord, error)

	// DeleteGame removes a game record
	DeleteGame(ctx context.Context, input *DeleteGameInput) error
}
