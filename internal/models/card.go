package models

// Cards are identified by a single int in [0,51]. Suit and rank are always
// derived from the id, never stored, so every client that knows the room code
// resolves the same card from the same id.

const (
	// DeckSize is the number of cards in a full deck
	DeckSize = 52

	// RanksPerSuit is the number of ranks within each suit
	RanksPerSuit = 13
)

// Suit returns the suit index (0-3) for a card id.
func Suit(cardID int) int {
	return cardID / RanksPerSuit
}

// Rank returns the rank index (0=Ace .. 12=King) for a card id.
func Rank(cardID int) int {
	return cardID % RanksPerSuit
}
