package game

import "github.com/pyramid-party/server/internal/models"

type CreateGameInput struct {
	Record *models.GameRecord
}

type GetGameInput struct {
	RoomCode string
}

type UpdateGameInput struct {
	RoomCode string

	// Apply mutates the freshly read record. It runs inside the
	// optimistic transaction and may run more than once, so it must not
	// hold side effects beyond the record itself.
	Apply func(record *models.GameRecord) error
}

type DeleteGameInput struct {
	RoomCode string
}
