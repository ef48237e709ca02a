package models

// Mutation is a partial update to a GameRecord. Nil fields leave their path
// untouched; non-nil scalar and struct fields replace that path only.
// Whole-list replacement of deck, pyramid and hand is reserved for writers
// that own the list at that point in the lifecycle (the host dealing or
// revealing, a player flipping a seen flag on their own hand). Anything that
// can race with another client goes through a delta field instead: Players,
// Rounds and Transactions merge per key, and card removal, replacement
// dealing and drink totals are expressed as deltas applied to the record the
// merge runs on.
type Mutation struct {
	// Meta mutates individual lifecycle flags
	Meta *MetaMutation

	// Deck replaces the undealt card sequence
	Deck *[]int

	// Pyramid replaces the pyramid slots
	Pyramid *[]PyramidSlot

	// Players merges player mutations by uid
	Players map[string]*PlayerMutation

	// CurrentRound replaces the open round pointer when non-nil
	CurrentRound *CurrentRound

	// ClearCurrentRound closes the open round. Distinct from CurrentRound
	// being nil, which leaves it untouched.
	ClearCurrentRound bool

	// Rounds merges round mutations by round number
	Rounds map[int]*RoundMutation

	// Summary replaces the end-of-game tally
	Summary map[string]int
}

// MetaMutation mutates individual fields of Meta
type MetaMutation struct {
	Started  *bool
	Finished *bool
}

// PlayerMutation mutates one player's record. Record creates or fully
// replaces the player; the remaining fields patch an existing player.
// RemoveCard, DealReplacement and AddDrinks are deltas evaluated against
// the record the merge runs on, not the snapshot the writer read, so
// concurrent writers touching the deck or the same drink counter compose
// instead of clobbering each other.
type PlayerMutation struct {
	Record *PlayerRecord
	Name   *string
	Hand   *[]HandCard

	// RemoveCard removes one instance of the card from the hand
	RemoveCard *int

	// DealReplacement moves the deck's head card into the hand, unseen.
	// A no-op when the deck is exhausted: the hand permanently shrinks.
	DealReplacement bool

	// AddDrinks increments the player's drink total
	AddDrinks int

	InChallenge *bool
}

// RoundMutation mutates one round. Record creates or fully replaces the
// round; Transactions sets individual transactions by ID.
type RoundMutation struct {
	Record       *RoundRecord
	Transactions map[string]*Transaction
}

// Apply merges the mutation into the record in place. Sibling paths of every
// touched field are left exactly as they were.
func (m *Mutation) Apply(record *GameRecord) {
	if m == nil || record == nil {
		return
	}

	if m.Meta != nil {
		if m.Meta.Started != nil {
			record.Meta.Started = *m.Meta.Started
		}
		if m.Meta.Finished != nil {
			record.Meta.Finished = *m.Meta.Finished
		}
	}

	if m.Deck != nil {
		record.Deck = *m.Deck
	}

	if m.Pyramid != nil {
		record.Pyramid = *m.Pyramid
	}

	if len(m.Players) > 0 && record.Players == nil {
		record.Players = make(map[string]*PlayerRecord, len(m.Players))
	}
	for uid, pm := range m.Players {
		pm.apply(record, uid)
	}

	if m.CurrentRound != nil {
		record.CurrentRound = m.CurrentRound
	} else if m.ClearCurrentRound {
		record.CurrentRound = nil
	}

	if len(m.Rounds) > 0 && record.Rounds == nil {
		record.Rounds = make(map[int]*RoundRecord, len(m.Rounds))
	}
	for number, rm := range m.Rounds {
		rm.apply(record, number)
	}

	if m.Summary != nil {
		record.Summary = m.Summary
	}
}

func (pm *PlayerMutation) apply(record *GameRecord, uid string) {
	if pm.Record != nil {
		record.Players[uid] = pm.Record
		return
	}

	player, ok := record.Players[uid]
	if !ok {
		// Patch for a player this record has never seen; nothing to
		// patch against, so the write is dropped rather than invented.
		return
	}

	if pm.Name != nil {
		player.Name = *pm.Name
	}
	if pm.Hand != nil {
		player.Hand = *pm.Hand
	}
	if pm.RemoveCard != nil {
		if idx, ok := player.HandIndex(*pm.RemoveCard); ok {
			hand := make([]HandCard, 0, len(player.Hand)-1)
			hand = append(hand, player.Hand[:idx]...)
			hand = append(hand, player.Hand[idx+1:]...)
			player.Hand = hand
		}
	}
	if pm.DealReplacement && len(record.Deck) > 0 {
		player.Hand = append(player.Hand, HandCard{CardID: record.Deck[0]})
		record.Deck = record.Deck[1:]
	}
	player.Drinks += pm.AddDrinks
	if pm.InChallenge != nil {
		player.InChallenge = *pm.InChallenge
	}
}

func (rm *RoundMutation) apply(record *GameRecord, number int) {
	if rm.Record != nil {
		record.Rounds[number] = rm.Record
	}

	if len(rm.Transactions) == 0 {
		return
	}

	round, ok := record.Rounds[number]
	if !ok {
		return
	}
	if round.Transactions == nil {
		round.Transactions = make(map[string]*Transaction, len(rm.Transactions))
	}
	for id, tx := range rm.Transactions {
		round.Transactions[id] = tx
	}
}
