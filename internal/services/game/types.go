package game

import (
	"time"

	"github.com/pyramid-party/server/internal/common/clock"
	"github.com/pyramid-party/server/internal/common/uuid"
	"github.com/pyramid-party/server/internal/deck"
	"github.com/pyramid-party/server/internal/gateway"
	"github.com/pyramid-party/server/internal/models"
)

// Config holds configuration for the game service
type Config struct {
	// Maximum number of players per room
	MaxPlayers int

	// Number of cards dealt to each player
	HandSize int

	// Length of generated room codes
	RoomCodeLength int

	// How long a player may view a freshly dealt replacement card
	PeekWindow time.Duration

	// Gateway mediates all reads and writes of the shared record
	Gateway gateway.Gateway

	// Shuffler produces the seeded deck permutation
	Shuffler deck.Shuffler

	// Clock supplies timestamps
	Clock clock.Clock

	// UUIDGenerator supplies transaction IDs
	UUIDGenerator uuid.UUID
}

// CreateGameInput contains parameters for creating a new room
type CreateGameInput struct {
	// RoomCode is the desired room code; generated when empty
	RoomCode string

	// HostUID is the uid of the player hosting the room
	HostUID string

	// HostName is the display name of the host
	HostName string
}

// CreateGameOutput contains the result of creating a room
type CreateGameOutput struct {
	// RoomCode is the code of the created room
	RoomCode string

	// Record is the initial record as committed
	Record *models.GameRecord
}

// JoinGameInput contains parameters for joining a room
type JoinGameInput struct {
	RoomCode string

	// UID is the joining player's uid
	UID string

	// Name is the joining player's display name
	Name string
}

// JoinGameOutput contains the result of joining a room
type JoinGameOutput struct {
	// Player is the created player record
	Player *models.PlayerRecord

	// Record is the merged record as committed
	Record *models.GameRecord
}

// DealInitialHandsInput contains parameters for dealing hands
type DealInitialHandsInput struct {
	RoomCode string

	// UID is the acting player; must be the host
	UID string
}

// DealInitialHandsOutput contains the result of dealing hands
type DealInitialHandsOutput struct {
	// Record is the merged record as committed
	Record *models.GameRecord
}

// StartGameInput contains parameters for starting play
type StartGameInput struct {
	RoomCode string

	// UID is the acting player; must be the host
	UID string
}

// StartGameOutput contains the result of starting play
type StartGameOutput struct {
	Record *models.GameRecord
}

// RevealNextCardInput contains parameters for revealing a pyramid slot
type RevealNextCardInput struct {
	RoomCode string

	// UID is the acting player; must be the host
	UID string
}

// RevealNextCardOutput contains the result of revealing a pyramid slot
type RevealNextCardOutput struct {
	// GameEnded indicates no unshown slot remained and the game ended
	// instead of a new round opening
	GameEnded bool

	// Round describes the opened round (nil when GameEnded)
	Round *models.CurrentRound

	// Record is the merged record as committed
	Record *models.GameRecord
}

// CloseRoundInput contains parameters for closing the open round
type CloseRoundInput struct {
	RoomCode string

	// UID is the acting player; must be the host
	UID string
}

// CloseRoundOutput contains the result of closing a round
type CloseRoundOutput struct {
	// GameEnded indicates the final slot had been revealed and the game
	// is now over
	GameEnded bool

	// Summary is the final tally when GameEnded
	Summary map[string]int

	// Record is the merged record as committed
	Record *models.GameRecord
}

// CallPlayerInput contains parameters for calling a player
type CallPlayerInput struct {
	RoomCode string

	// From is the uid of the player claiming a matching card
	From string

	// To is the uid of the player being assigned the drinks
	To string
}

// CallPlayerOutput contains the result of calling a player
type CallPlayerOutput struct {
	// Transaction is the created waiting transaction
	Transaction *models.Transaction

	// Record is the merged record as committed
	Record *models.GameRecord
}

// RespondDecision is the target player's response to a call
type RespondDecision string

const (
	// RespondAccept accepts the drinks; the transaction becomes terminal
	RespondAccept RespondDecision = "accept"

	// RespondBullshit disputes the call, forcing the caller to reveal a
	// hand card
	RespondBullshit RespondDecision = "bullshit"
)

// RespondToCallInput contains parameters for responding to a call
type RespondToCallInput struct {
	RoomCode string

	// UID is the responding player; must be the transaction target
	UID string

	// TransactionID identifies the transaction in the current round
	TransactionID string

	// Decision is accept or bullshit
	Decision RespondDecision
}

// RespondToCallOutput contains the result of responding to a call
type RespondToCallOutput struct {
	// Transaction is the transaction after the transition
	Transaction *models.Transaction

	// DrinksTaken is how many drinks the responder took (accept only)
	DrinksTaken int

	// Record is the merged record as committed
	Record *models.GameRecord
}

// ResolveChallengeInput contains parameters for resolving a disputed call
type ResolveChallengeInput struct {
	RoomCode string

	// UID is the acting player; must be the transaction creator
	UID string

	// TransactionID identifies the disputed transaction
	TransactionID string

	// CardID is the hand card revealed as proof
	CardID int
}

// ResolveChallengeOutput contains the result of resolving a challenge
type ResolveChallengeOutput struct {
	// Transaction is the transaction after the transition
	Transaction *models.Transaction

	// Match indicates the revealed rank equalled the round card's rank
	Match bool

	// DrinksTaken is how many drinks the losing side took
	DrinksTaken int

	// Replaced indicates a replacement card was dealt; false only when
	// the deck was exhausted and the hand shrank
	Replaced bool

	// PeekWindow is how long the replacement card may be viewed
	PeekWindow time.Duration

	// Record is the merged record as committed
	Record *models.GameRecord
}

// MarkCardSeenInput contains parameters for marking a hand card seen
type MarkCardSeenInput struct {
	RoomCode string

	// UID is the owning player
	UID string

	// CardID is the hand card that was viewed
	CardID int
}

// MarkCardSeenOutput contains the result of marking a card seen
type MarkCardSeenOutput struct {
	Record *models.GameRecord
}

// ComputeSummaryInput contains parameters for computing the drink tally
type ComputeSummaryInput struct {
	RoomCode string
}

// ComputeSummaryOutput contains the drink tally per player
type ComputeSummaryOutput struct {
	// Summary maps uid to total drinks across all rounds
	Summary map[string]int
}

// GetGameInput contains parameters for fetching a room's record
type GetGameInput struct {
	RoomCode string
}

// GetGameOutput contains the freshest committed record
type GetGameOutput struct {
	Record *models.GameRecord
}
