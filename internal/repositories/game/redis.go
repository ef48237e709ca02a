package game

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pyramid-party/server/internal/models"
)

const (
	// Key prefix for Redis
	roomKeyPrefix = "room:"

	// roomTTL bounds how long a finished or abandoned room lingers;
	// refreshed on every write
	roomTTL = 24 * time.Hour
)

// ErrGameNotFound is returned when no record exists for a room code
var ErrGameNotFound = errors.New("game not found")

// ErrGameExists is returned when creating a room whose code is taken
var ErrGameExists = errors.New("game already exists for this room code")

// ErrWriteConflict is returned when an update loses the optimistic
// transaction twice in a row to concurrent writers
var ErrWriteConflict = errors.New("game record was modified concurrently")

// Config holds configuration for the Redis game repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed game repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

func roomKey(roomCode string) string {
	return fmt.Sprintf("%s%s", roomKeyPrefix, roomCode)
}

// CreateGame persists a brand new game record to Redis
func (r *redisRepository) CreateGame(ctx context.Context, input *CreateGameInput) error {
	if input == nil || input.Record == nil {
		return errors.New("input and record cannot be nil")
	}

	if input.Record.RoomCode == "" {
		return errors.New("room code cannot be empty")
	}

	// Marshal the record to JSON
	recordJSON, err := json.Marshal(input.Record)
	if err != nil {
		return fmt.Errorf("failed to marshal game record: %w", err)
	}

	// SetNX so two hosts picking the same code cannot both win
	created, err := r.client.SetNX(ctx, roomKey(input.Record.RoomCode), recordJSON, roomTTL).Result()
	if err != nil {
		return fmt.Errorf("failed to create game record: %w", err)
	}

	if !created {
		return ErrGameExists
	}

	return nil
}

// GetGame retrieves a game record by room code from Redis
func (r *redisRepository) GetGame(ctx context.Context, input *GetGameInput) (*models.GameRecord, error) {
	if input == nil || input.RoomCode == "" {
		return nil, errors.New("input and room code cannot be empty")
	}

	recordJSON, err := r.client.Get(ctx, roomKey(input.RoomCode)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game record: %w", err)
	}

	var record models.GameRecord
	if err := json.Unmarshal([]byte(recordJSON), &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game record: %w", err)
	}

	return &record, nil
}

// UpdateGame applies a read-modify-write to a record under WATCH so a
// concurrent writer forces a clean retry instead of a lost update. One
// retry is attempted before surfacing ErrWriteConflict.
func (r *redisRepository) UpdateGame(ctx context.Context, input *UpdateGameInput) (*models.GameRecord, error) {
	if input == nil || input.RoomCode == "" || input.Apply == nil {
		return nil, errors.New("input, room code and apply func cannot be empty")
	}

	key := roomKey(input.RoomCode)
	var updated *models.GameRecord

	txf := func(tx *redis.Tx) error {
		recordJSON, err := tx.Get(ctx, key).Result()
		if err != nil {
			if err == redis.Nil {
				return ErrGameNotFound
			}
			return fmt.Errorf("failed to get game record: %w", err)
		}

		var record models.GameRecord
		if err := json.Unmarshal([]byte(recordJSON), &record); err != nil {
			return fmt.Errorf("failed to unmarshal game record: %w", err)
		}

		if err := input.Apply(&record); err != nil {
			return err
		}

		payload, err := json.Marshal(&record)
		if err != nil {
			return fmt.Errorf("failed to marshal game record: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, payload, roomTTL)
			return nil
		})
		if err != nil {
			return err
		}

		updated = &record
		return nil
	}

	err := r.client.Watch(ctx, txf, key)
	if errors.Is(err, redis.TxFailedErr) {
		// A concurrent writer committed between our read and write.
		err = r.client.Watch(ctx, txf, key)
		if errors.Is(err, redis.TxFailedErr) {
			return nil, ErrWriteConflict
		}
	}
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteGame removes a game record from Redis
func (r *redisRepository) DeleteGame(ctx context.Context, input *DeleteGameInput) error {
	if input == nil || input.RoomCode == "" {
		return errors.New("input and room code cannot be empty")
	}

	deleted, err := r.client.Del(ctx, roomKey(input.RoomCode)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete game record: %w", err)
	}

	if deleted == 0 {
		return ErrGameNotFound
	}

	return nil
}
