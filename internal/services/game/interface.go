package game

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/pyramid-party/server/internal/services/game Service

import "context"

// Service defines the interface for game operations. Every operation reads
// the freshest committed record, derives legality from it, and submits a
// partial mutation through the gateway; host and player clients share this
// single rules core instead of re-deriving the rules separately.
type Service interface {
	// CreateGame builds a new room: seeded shuffle, pyramid and deck
	CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error)

	// JoinGame registers a player in a room before hands are dealt
	JoinGame(ctx context.Context, input *JoinGameInput) (*JoinGameOutput, error)

	// DealInitialHands slices the configured hand size off the deck for
	// every joined player
	DealInitialHands(ctx context.Context, input *DealInitialHandsInput) (*DealInitialHandsOutput, error)

	// StartGame opens play once hands are dealt
	StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error)

	// RevealNextCard reveals the next pyramid slot and opens a round,
	// discarding any unresolved transactions from the previous round
	RevealNextCard(ctx context.Context, input *RevealNextCardInput) (*RevealNextCardOutput, error)

	// CloseRound closes the open round; closing after the final slot
	// computes the summary and ends the game
	CloseRound(ctx context.Context, input *CloseRoundInput) (*CloseRoundOutput, error)

	// CallPlayer creates a waiting transaction assigning drinks
	CallPlayer(ctx context.Context, input *CallPlayerInput) (*CallPlayerOutput, error)

	// RespondToCall accepts or disputes a waiting transaction
	RespondToCall(ctx context.Context, input *RespondToCallInput) (*RespondToCallOutput, error)

	// ResolveChallenge reveals a hand card to settle a disputed call and
	// deals a replacement when the deck allows
	ResolveChallenge(ctx context.Context, input *ResolveChallengeInput) (*ResolveChallengeOutput, error)

	// MarkCardSeen records that a player has viewed one of their cards
	MarkCardSeen(ctx context.Context, input *MarkCardSeenInput) (*MarkCardSeenOutput, error)

	// ComputeSummary tallies drinks by replaying every round's
	// transactions
	ComputeSummary(ctx context.Context, input *ComputeSummaryInput) (*ComputeSummaryOutput, error)

	// GetGame returns the freshest committed record for a room
	GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error)
}
