package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"

	"github.com/pyramid-party/server/internal/models"
	gameRepo "github.com/pyramid-party/server/internal/repositories/game"
)

const (
	// Channel prefix for snapshot announcements
	eventChannelPrefix = "room:events:"

	// snapshotBuffer bounds how far a slow subscriber may lag before
	// delivery applies backpressure
	snapshotBuffer = 16
)

// Config holds configuration for the Redis gateway
type Config struct {
	// Redis client used for pub/sub
	RedisClient *redis.Client

	// GameRepo persists the records
	GameRepo gameRepo.Repository
}

// redisGateway implements the Gateway interface over the game repository
// plus a Redis pub/sub channel per room
type redisGateway struct {
	client *redis.Client
	repo   gameRepo.Repository
}

// NewRedis creates a new Redis-backed gateway
func NewRedis(cfg *Config) (*redisGateway, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if cfg.GameRepo == nil {
		return nil, errors.New("game repository cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisGateway{
		client: cfg.RedisClient,
		repo:   cfg.GameRepo,
	}, nil
}

func eventChannel(roomCode string) string {
	return fmt.Sprintf("%s%s", eventChannelPrefix, roomCode)
}

// Create persists a brand new record and announces it to subscribers
func (g *redisGateway) Create(ctx context.Context, input *CreateInput) error {
	if input == nil || input.Record == nil {
		return errors.New("input and record cannot be nil")
	}

	if err := g.repo.CreateGame(ctx, &gameRepo.CreateGameInput{
		Record: input.Record,
	}); err != nil {
		return err
	}

	g.publish(ctx, input.Record)
	return nil
}

// Subscribe delivers the current snapshot, then every later commit
func (g *redisGateway) Subscribe(ctx context.Context, input *SubscribeInput) (*Subscription, error) {
	if input == nil || input.RoomCode == "" {
		return nil, errors.New("input and room code cannot be empty")
	}

	// Open the channel before the initial read so a commit landing in
	// between is delivered rather than lost. It may arrive after an
	// initial snapshot that already contains it; delivery is
	// at-least-once and snapshots are idempotent.
	pubsub := g.client.Subscribe(ctx, eventChannel(input.RoomCode))
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("failed to subscribe to room events: %w", err)
	}

	initial, err := g.repo.GetGame(ctx, &gameRepo.GetGameInput{
		RoomCode: input.RoomCode,
	})
	if err != nil {
		_ = pubsub.Close()
		return nil, err
	}

	snapshots := make(chan *models.GameRecord, snapshotBuffer)
	done := make(chan struct{})

	go func() {
		defer close(snapshots)

		deliver := func(record *models.GameRecord) bool {
			select {
			case snapshots <- record:
				return true
			case <-done:
				return false
			}
		}

		if !deliver(initial) {
			return
		}

		for msg := range pubsub.Channel() {
			var record models.GameRecord
			if err := json.Unmarshal([]byte(msg.Payload), &record); err != nil {
				log.Printf("gateway: dropping malformed snapshot for room %s: %v", input.RoomCode, err)
				continue
			}
			if !deliver(&record) {
				return
			}
		}
	}()

	return &Subscription{
		Snapshots: snapshots,
		cancel: func() {
			close(done)
			_ = pubsub.Close()
		},
	}, nil
}

// Mutate merges a partial mutation and announces the committed record
func (g *redisGateway) Mutate(ctx context.Context, input *MutateInput) (*MutateOutput, error) {
	if input == nil || input.RoomCode == "" || input.Mutation == nil {
		return nil, errors.New("input, room code and mutation cannot be empty")
	}

	record, err := g.repo.UpdateGame(ctx, &gameRepo.UpdateGameInput{
		RoomCode: input.RoomCode,
		Apply: func(record *models.GameRecord) error {
			input.Mutation.Apply(record)
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	g.publish(ctx, record)

	return &MutateOutput{Record: record}, nil
}

// GetFresh retrieves the latest committed record straight from the store
func (g *redisGateway) GetFresh(ctx context.Context, input *GetFreshInput) (*models.GameRecord, error) {
	if input == nil || input.RoomCode == "" {
		return nil, errors.New("input and room code cannot be empty")
	}

	return g.repo.GetGame(ctx, &gameRepo.GetGameInput{
		RoomCode: input.RoomCode,
	})
}

// publish announces a committed record. The write itself has already
// succeeded; subscribers missing an announcement reconcile via GetFresh, so
// a publish failure is logged rather than surfaced.
func (g *redisGateway) publish(ctx context.Context, record *models.GameRecord) {
	payload, err := json.Marshal(record)
	if err != nil {
		log.Printf("gateway: failed to marshal snapshot for room %s: %v", record.RoomCode, err)
		return
	}

	if err := g.client.Publish(ctx, eventChannel(record.RoomCode), payload).Err(); err != nil {
		log.Printf("gateway: failed to publish snapshot for room %s: %v", record.RoomCode, err)
	}
}
