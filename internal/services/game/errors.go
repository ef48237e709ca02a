package game

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrRoomNotFound        GameError = "room not found"
	ErrRoomExists          GameError = "room code already in use"
	ErrInvalidRoomCode     GameError = "room code must be 4-6 letters"
	ErrPlayerNotFound      GameError = "player not found"
	ErrPlayerAlreadyJoined GameError = "player already joined this room"
	ErrGameFull            GameError = "game is at maximum capacity"
	ErrInvalidGameState    GameError = "action not legal in the current game state"
	ErrInvalidTransition   GameError = "illegal transaction status transition"
	ErrTransactionNotFound GameError = "transaction not found in the current round"
	ErrCallPending         GameError = "player already has an unresolved call this round"
	ErrSelfCall            GameError = "cannot assign a drink to yourself"
	ErrNotCallTarget       GameError = "transaction does not target this player"
	ErrNotCallOwner        GameError = "transaction was not created by this player"
	ErrCardNotInHand       GameError = "card is not in the player's hand"
	ErrNotAdmin            GameError = "action requires the host"
	ErrNilConfig           GameError = "config cannot be nil"
	ErrNilGateway          GameError = "gateway cannot be nil"
	ErrNilShuffler         GameError = "shuffler cannot be nil"
	ErrNilClock            GameError = "clock cannot be nil"
	ErrNilUUIDGenerator    GameError = "UUID generator cannot be nil"
)
