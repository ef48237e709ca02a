package gateway

//go:generate mockgen -package=mocks -destination=mocks/mock_gateway.go github.com/pyramid-party/server/internal/gateway Gateway

import (
	"context"

	"github.com/pyramid-party/server/internal/models"
)

// Gateway mediates every read and write of the shared game record. Clients
// never talk to the store directly; they observe committed snapshots through
// Subscribe and submit partial mutations through Mutate.
type Gateway interface {
	// Create persists a brand new record and announces it to subscribers
	Create(ctx context.Context, input *CreateInput) error

	// Subscribe delivers the current snapshot immediately, then every
	// subsequently committed snapshot in commit order as observed by
	// this subscriber. Delivery is at-least-once; snapshots are complete
	// records, so redelivery is idempotent downstream.
	Subscribe(ctx context.Context, input *SubscribeInput) (*Subscription, error)

	// Mutate merges a partial mutation into the canonical record and
	// returns once the write is durably committed
	Mutate(ctx context.Context, input *MutateInput) (*MutateOutput, error)

	// GetFresh forces a server round-trip, bypassing any locally
	// delivered snapshot. Callers that depend on their own just-written
	// values use this to break stale-read cycles.
	GetFresh(ctx context.Context, input *GetFreshInput) (*models.GameRecord, error)
}
