package gateway

import (
	"sync"

	"github.com/pyramid-party/server/internal/models"
)

type CreateInput struct {
	Record *models.GameRecord
}

type SubscribeInput struct {
	RoomCode string
}

// Subscription is a live feed of committed snapshots for one room.
type Subscription struct {
	// Snapshots receives immutable records, the initial snapshot first.
	// The channel closes after Unsubscribe.
	Snapshots <-chan *models.GameRecord

	cancel func()
	once   sync.Once
}

// Unsubscribe stops further snapshot delivery. Safe to call more than once.
func (s *Subscription) Unsubscribe() {
	s.once.Do(s.cancel)
}

type MutateInput struct {
	RoomCode string

	// Mutation is the partial update to merge; untouched paths keep
	// whatever a concurrent writer committed
	Mutation *models.Mutation
}

type MutateOutput struct {
	// Record is the merged record as committed
	Record *models.GameRecord
}

type GetFreshInput struct {
	RoomCode string
}
