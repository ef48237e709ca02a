package models

import (
	"time"
)

const (
	// PyramidSize is the number of slots in the pyramid layout
	PyramidSize = 15

	// PyramidRowCount is the number of rows in the pyramid layout
	PyramidRowCount = 5
)

// Meta holds the lifecycle flags for a game
type Meta struct {
	// Started indicates the host has opened play after dealing
	Started bool `json:"started"`

	// Finished indicates the game has ended and Summary is final
	Finished bool `json:"finished"`

	// CreatedAt is when the room was created
	CreatedAt time.Time `json:"created_at"`
}

// PyramidSlot is one of the 15 fixed positions in the pyramid
type PyramidSlot struct {
	// CardID is the card occupying this slot
	CardID int `json:"card_id"`

	// Shown indicates the slot has been revealed by the host
	Shown bool `json:"shown"`
}

// CurrentRound identifies the open round, present only between a reveal
// and that round's close
type CurrentRound struct {
	// Number is the round number, starting at 1
	Number int `json:"number"`

	// Row is the pyramid row of the revealed card and its drink value
	Row int `json:"row"`

	// CardID is the revealed card
	CardID int `json:"card_id"`
}

// RoundRecord is the durable record of one round
type RoundRecord struct {
	// Row is the pyramid row of the round's card
	Row int `json:"row"`

	// CardID is the card revealed for this round
	CardID int `json:"card_id"`

	// Transactions holds the round's drink assignments keyed by
	// transaction ID, so concurrent calls from different players
	// merge without clobbering each other
	Transactions map[string]*Transaction `json:"transactions"`
}

// GameRecord is the single shared document for one room. Every client reads
// and partially writes it through the gateway; no client owns it.
type GameRecord struct {
	// RoomCode is the unique room identifier, also the shuffle seed
	RoomCode string `json:"room_code"`

	// Meta holds the lifecycle flags
	Meta Meta `json:"meta"`

	// Deck is the ordered sequence of card ids not yet dealt
	Deck []int `json:"deck"`

	// Pyramid is the fixed ordered sequence of 15 slots
	Pyramid []PyramidSlot `json:"pyramid"`

	// Players maps uid to each player's record
	Players map[string]*PlayerRecord `json:"players"`

	// CurrentRound is the open round, nil while no round is open
	CurrentRound *CurrentRound `json:"current_round,omitempty"`

	// Rounds maps round number to its record
	Rounds map[int]*RoundRecord `json:"rounds"`

	// Summary maps uid to total drinks, computed once at game end
	Summary map[string]int `json:"summary,omitempty"`
}

// RowForSlot returns the pyramid row (1-5) for a slot index. Slots are laid
// out bottom row first: 0-4 row 1, 5-8 row 2, 9-11 row 3, 12-13 row 4,
// 14 row 5.
func RowForSlot(slot int) int {
	switch {
	case slot < 5:
		return 1
	case slot < 9:
		return 2
	case slot < 12:
		return 3
	case slot < 14:
		return 4
	default:
		return 5
	}
}

// NextUnshownSlot returns the index of the first unrevealed pyramid slot.
func (g *GameRecord) NextUnshownSlot() (int, bool) {
	for i, slot := range g.Pyramid {
		if !slot.Shown {
			return i, true
		}
	}
	return 0, false
}

// ShownCount returns the number of revealed pyramid slots.
func (g *GameRecord) ShownCount() int {
	count := 0
	for _, slot := range g.Pyramid {
		if slot.Shown {
			count++
		}
	}
	return count
}

// LastRoundNumber returns the highest round number created so far, or 0.
func (g *GameRecord) LastRoundNumber() int {
	last := 0
	for number := range g.Rounds {
		if number > last {
			last = number
		}
	}
	return last
}

// CardConservation reports whether the deck, the pyramid slots and every
// player's hand together cover the full card id space exactly once. This
// must hold at every observed snapshot.
func (g *GameRecord) CardConservation() bool {
	seen := make(map[int]bool, DeckSize)

	mark := func(cardID int) bool {
		if cardID < 0 || cardID >= DeckSize || seen[cardID] {
			return false
		}
		seen[cardID] = true
		return true
	}

	for _, cardID := range g.Deck {
		if !mark(cardID) {
			return false
		}
	}
	for _, slot := range g.Pyramid {
		if !mark(slot.CardID) {
			return false
		}
	}
	for _, player := range g.Players {
		for _, card := range player.Hand {
			if !mark(card.CardID) {
				return false
			}
		}
	}

	return len(seen) == DeckSize
}
