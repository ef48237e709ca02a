package models

// HandCard is one private card in a player's hand
type HandCard struct {
	// CardID is the card held
	CardID int `json:"card_id"`

	// Seen indicates the player has viewed the card; replacement cards
	// arrive unseen and start a fresh viewing window
	Seen bool `json:"seen"`
}

// PlayerRecord represents one player inside a GameRecord
type PlayerRecord struct {
	// UID is the player's unique identifier
	UID string `json:"uid"`

	// Name is the player's display name
	Name string `json:"name"`

	// Admin indicates this player is the host
	Admin bool `json:"admin"`

	// Hand is the player's private cards, at most the configured hand size
	Hand []HandCard `json:"hand"`

	// Drinks is the running total of drinks assigned to this player
	Drinks int `json:"drinks"`

	// InChallenge indicates the player is blocked resolving a disputed
	// call; cleared when the round moves on
	InChallenge bool `json:"in_challenge"`
}

// HandIndex returns the position of a card in the player's hand.
func (p *PlayerRecord) HandIndex(cardID int) (int, bool) {
	for i, card := range p.Hand {
		if card.CardID == cardID {
			return i, true
		}
	}
	return 0, false
}
