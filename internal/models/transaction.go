package models

import (
	"time"
)

// TransactionStatus represents the state of a drink assignment
type TransactionStatus string

const (
	// TransactionWaiting indicates the target has not yet responded
	TransactionWaiting TransactionStatus = "waiting"

	// TransactionAccepted indicates the target accepted the drink; terminal
	TransactionAccepted TransactionStatus = "accepted"

	// TransactionBullshit indicates the target disputed the call and the
	// caller must reveal a hand card
	TransactionBullshit TransactionStatus = "bullshit"

	// TransactionBullshitCorrect indicates the revealed card matched the
	// round card's rank; terminal
	TransactionBullshitCorrect TransactionStatus = "bullshit_correct"

	// TransactionBullshitWrong indicates the revealed card did not match;
	// terminal
	TransactionBullshitWrong TransactionStatus = "bullshit_wrong"
)

// Transaction records one drink assignment between two players. Transactions
// live under a generated ID inside their round so independent writers never
// collide on an array index.
type Transaction struct {
	// ID is the unique identifier for the transaction
	ID string `json:"id"`

	// From is the uid of the player assigning the drink
	From string `json:"from"`

	// To is the uid of the player receiving the drink
	To string `json:"to"`

	// Status is the current state of the negotiation
	Status TransactionStatus `json:"status"`

	// SeenBy lists the uids that have observed the transaction
	SeenBy []string `json:"seen_by"`

	// CreatedAt is when the transaction was created
	CreatedAt time.Time `json:"created_at"`
}

// CanTransitionTo reports whether moving from s to next is legal. The graph
// is waiting -> {accepted | bullshit}, bullshit -> {bullshit_correct |
// bullshit_wrong}; every other status is terminal.
func (s TransactionStatus) CanTransitionTo(next TransactionStatus) bool {
	switch s {
	case TransactionWaiting:
		return next == TransactionAccepted || next == TransactionBullshit
	case TransactionBullshit:
		return next == TransactionBullshitCorrect || next == TransactionBullshitWrong
	default:
		return false
	}
}

// Open reports whether the transaction still requires action from either
// party.
func (s TransactionStatus) Open() bool {
	return s == TransactionWaiting || s == TransactionBullshit
}

// MarkSeenBy appends uid to SeenBy if not already present.
func (t *Transaction) MarkSeenBy(uid string) {
	for _, existing := range t.SeenBy {
		if existing == uid {
			return
		}
	}
	t.SeenBy = append(t.SeenBy, uid)
}
