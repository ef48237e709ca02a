package models

// Phase represents the derived lifecycle state of a game. Phases are never
// stored; every client recomputes them from the latest snapshot so partially
// applied local state cannot drift from the shared record.
type Phase string

const (
	// PhaseWaitingToStart indicates players are joining and no hands exist
	PhaseWaitingToStart Phase = "waiting_to_start"

	// PhaseDealt indicates hands have been dealt but play has not begun
	PhaseDealt Phase = "dealt"

	// PhaseRoundActive indicates play is open and no round is in progress
	PhaseRoundActive Phase = "round_active"

	// PhaseRoundResolving indicates a pyramid card is revealed and players
	// are calling and resolving drink assignments
	PhaseRoundResolving Phase = "round_resolving"

	// PhaseGameEnded indicates all 15 slots are shown and the summary is
	// final
	PhaseGameEnded Phase = "game_ended"
)

// Phase derives the lifecycle state from the record.
func (g *GameRecord) Phase() Phase {
	switch {
	case g.Meta.Finished:
		return PhaseGameEnded
	case g.CurrentRound != nil:
		return PhaseRoundResolving
	case g.Meta.Started:
		return PhaseRoundActive
	case g.handsDealt():
		return PhaseDealt
	default:
		return PhaseWaitingToStart
	}
}

// handsDealt reports whether initial hands have been sliced off the deck.
func (g *GameRecord) handsDealt() bool {
	for _, player := range g.Players {
		if len(player.Hand) > 0 {
			return true
		}
	}
	return false
}

// OpenOutgoingTransaction returns the caller's unresolved transaction in the
// current round, if any. A player may have at most one.
func (g *GameRecord) OpenOutgoingTransaction(uid string) *Transaction {
	if g.CurrentRound == nil {
		return nil
	}
	round, ok := g.Rounds[g.CurrentRound.Number]
	if !ok {
		return nil
	}
	for _, tx := range round.Transactions {
		if tx.From == uid && tx.Status.Open() {
			return tx
		}
	}
	return nil
}
