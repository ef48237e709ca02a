package game

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/pyramid-party/server/internal/models"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	// Create a Redis client connected to the miniredis server
	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	// Create the repository
	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.testNow = time.Date(2025, 6, 14, 21, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) testRecord() *models.GameRecord {
	return &models.GameRecord{
		RoomCode: "ABCD",
		Meta: models.Meta{
			CreatedAt: s.testNow,
		},
		Deck: []int{15, 16, 17},
		Pyramid: []models.PyramidSlot{
			{CardID: 0},
			{CardID: 1},
		},
		Players: map[string]*models.PlayerRecord{
			"host": {UID: "host", Name: "Hosty", Admin: true, Hand: []models.HandCard{}},
		},
		Rounds: map[int]*models.RoundRecord{},
	}
}

func (s *RedisRepositoryTestSuite) TestCreateAndGetGame() {
	err := s.repo.CreateGame(context.Background(), &CreateGameInput{
		Record: s.testRecord(),
	})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetGame(context.Background(), &GetGameInput{
		RoomCode: "ABCD",
	})
	s.Require().NoError(err)
	s.Require().NotNil(retrieved)

	s.Equal("ABCD", retrieved.RoomCode)
	s.Equal([]int{15, 16, 17}, retrieved.Deck)
	s.Len(retrieved.Pyramid, 2)
	s.Require().Contains(retrieved.Players, "host")
	s.True(retrieved.Players["host"].Admin)
	s.Equal(s.testNow.Unix(), retrieved.Meta.CreatedAt.Unix())
}

func (s *RedisRepositoryTestSuite) TestCreateGameDuplicateCode() {
	err := s.repo.CreateGame(context.Background(), &CreateGameInput{
		Record: s.testRecord(),
	})
	s.Require().NoError(err)

	err = s.repo.CreateGame(context.Background(), &CreateGameInput{
		Record: s.testRecord(),
	})
	s.Require().ErrorIs(err, ErrGameExists)
}

func (s *RedisRepositoryTestSuite) TestCreateGameSetsTTL() {
	err := s.repo.CreateGame(context.Background(), &CreateGameInput{
		Record: s.testRecord(),
	})
	s.Require().NoError(err)

	s.Greater(s.mr.TTL("room:ABCD"), time.Duration(0))
}

func (s *RedisRepositoryTestSuite) TestGetGameNotFound() {
	_, err := s.repo.GetGame(context.Background(), &GetGameInput{
		RoomCode: "ZZZZ",
	})
	s.Require().ErrorIs(err, ErrGameNotFound)
}

func (s *RedisRepositoryTestSuite) TestUpdateGameAppliesAndPersists() {
	err := s.repo.CreateGame(context.Background(), &CreateGameInput{
		Record: s.testRecord(),
	})
	s.Require().NoError(err)

	updated, err := s.repo.UpdateGame(context.Background(), &UpdateGameInput{
		RoomCode: "ABCD",
		Apply: func(record *models.GameRecord) error {
			record.Meta.Started = true
			record.Players["host"].Drinks = 3
			return nil
		},
	})
	s.Require().NoError(err)
	s.True(updated.Meta.Started)
	s.Equal(3, updated.Players["host"].Drinks)

	// The merged record is what a later read observes.
	retrieved, err := s.repo.GetGame(context.Background(), &GetGameInput{
		RoomCode: "ABCD",
	})
	s.Require().NoError(err)
	s.True(retrieved.Meta.Started)
	s.Equal(3, retrieved.Players["host"].Drinks)
}

func (s *RedisRepositoryTestSuite) TestUpdateGameNotFound() {
	_, err := s.repo.UpdateGame(context.Background(), &UpdateGameInput{
		RoomCode: "ZZZZ",
		Apply: func(record *models.GameRecord) error {
			return nil
		},
	})
	s.Require().ErrorIs(err, ErrGameNotFound)
}

func (s *RedisRepositoryTestSuite) TestUpdateGameApplyErrorSurfaces() {
	err := s.repo.CreateGame(context.Background(), &CreateGameInput{
		Record: s.testRecord(),
	})
	s.Require().NoError(err)

	sentinel := errors.New("not legal here")
	_, err = s.repo.UpdateGame(context.Background(), &UpdateGameInput{
		RoomCode: "ABCD",
		Apply: func(record *models.GameRecord) error {
			return sentinel
		},
	})
	s.Require().ErrorIs(err, sentinel)

	// The record is untouched.
	retrieved, err := s.repo.GetGame(context.Background(), &GetGameInput{
		RoomCode: "ABCD",
	})
	s.Require().NoError(err)
	s.False(retrieved.Meta.Started)
}

func (s *RedisRepositoryTestSuite) TestDeleteGame() {
	err := s.repo.CreateGame(context.Background(), &CreateGameInput{
		Record: s.testRecord(),
	})
	s.Require().NoError(err)

	err = s.repo.DeleteGame(context.Background(), &DeleteGameInput{
		RoomCode: "ABCD",
	})
	s.Require().NoError(err)

	_, err = s.repo.GetGame(context.Background(), &GetGameInput{
		RoomCode: "ABCD",
	})
	s.Require().ErrorIs(err, ErrGameNotFound)
}

func (s *RedisRepositoryTestSuite) TestDeleteGameNotFound() {
	err := s.repo.DeleteGame(context.Background(), &DeleteGameInput{
		RoomCode: "ZZZZ",
	})
	s.Require().ErrorIs(err, ErrGameNotFound)
}
