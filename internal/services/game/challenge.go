package game

import (
	"context"

	"github.com/pyramid-party/server/internal/gateway"
	"github.com/pyramid-party/server/internal/models"
)

// The challenge protocol is a two-party negotiation mediated entirely by
// writes to the round's transaction map; the caller and target never talk
// to each other directly. Every transition re-reads the freshest record and
// validates against the legal transition graph before writing.

// CallPlayer creates a waiting transaction assigning drinks from the caller
// to the target
func (s *service) CallPlayer(ctx context.Context, input *CallPlayerInput) (*CallPlayerOutput, error) {
	if input == nil || input.From == "" || input.To == "" {
		return nil, ErrPlayerNotFound
	}

	if input.From == input.To {
		return nil, ErrSelfCall
	}

	record, err := s.fresh(ctx, input.RoomCode)
	if err != nil {
		return nil, err
	}

	if record.Phase() != models.PhaseRoundResolving {
		return nil, ErrInvalidGameState
	}

	if _, ok := record.Players[input.From]; !ok {
		return nil, ErrPlayerNotFound
	}
	if _, ok := record.Players[input.To]; !ok {
		return nil, ErrPlayerNotFound
	}

	// One unresolved outgoing call per player per round.
	if record.OpenOutgoingTransaction(input.From) != nil {
		return nil, ErrCallPending
	}

	tx := &models.Transaction{
		ID:        s.config.UUIDGenerator.NewUUID(),
		From:      input.From,
		To:        input.To,
		Status:    models.TransactionWaiting,
		SeenBy:    []string{input.From},
		CreatedAt: s.config.Clock.Now(),
	}

	out, err := s.config.Gateway.Mutate(ctx, &gateway.MutateInput{
		RoomCode: input.RoomCode,
		Mutation: &models.Mutation{
			Rounds: map[int]*models.RoundMutation{
				record.CurrentRound.Number: {
					Transactions: map[string]*models.Transaction{
						tx.ID: tx,
					},
				},
			},
		},
	})
	if err != nil {
		return nil, err
	}

	return &CallPlayerOutput{
		Transaction: tx,
		Record:      out.Record,
	}, nil
}

// RespondToCall accepts or disputes a waiting transaction
func (s *service) RespondToCall(ctx context.Context, input *RespondToCallInput) (*RespondToCallOutput, error) {
	if input == nil || input.UID == "" {
		return nil, ErrPlayerNotFound
	}

	record, err := s.fresh(ctx, input.RoomCode)
	if err != nil {
		return nil, err
	}

	if record.Phase() != models.PhaseRoundResolving {
		return nil, ErrInvalidGameState
	}

	tx, err := currentRoundTransaction(record, input.TransactionID)
	if err != nil {
		return nil, err
	}

	if tx.To != input.UID {
		return nil, ErrNotCallTarget
	}

	switch input.Decision {
	case RespondAccept:
		return s.acceptCall(ctx, input, record, tx)
	case RespondBullshit:
		return s.disputeCall(ctx, input, record, tx)
	default:
		return nil, ErrInvalidTransition
	}
}

// acceptCall settles the transaction: the target drinks the row value
func (s *service) acceptCall(ctx context.Context, input *RespondToCallInput, record *models.GameRecord, tx *models.Transaction) (*RespondToCallOutput, error) {
	if !tx.Status.CanTransitionTo(models.TransactionAccepted) {
		return nil, ErrInvalidTransition
	}

	updated := *tx
	updated.Status = models.TransactionAccepted
	updated.MarkSeenBy(input.UID)

	row := record.CurrentRound.Row

	out, err := s.config.Gateway.Mutate(ctx, &gateway.MutateInput{
		RoomCode: input.RoomCode,
		Mutation: &models.Mutation{
			Players: map[string]*models.PlayerMutation{
				tx.To: {AddDrinks: row},
			},
			Rounds: map[int]*models.RoundMutation{
				record.CurrentRound.Number: {
					Transactions: map[string]*models.Transaction{
						updated.ID: &updated,
					},
				},
			},
		},
	})
	if err != nil {
		return nil, err
	}

	return &RespondToCallOutput{
		Transaction: &updated,
		DrinksTaken: row,
		Record:      out.Record,
	}, nil
}

// disputeCall moves the transaction to bullshit; the caller is now blocked
// until they reveal a hand card
func (s *service) disputeCall(ctx context.Context, input *RespondToCallInput, record *models.GameRecord, tx *models.Transaction) (*RespondToCallOutput, error) {
	if !tx.Status.CanTransitionTo(models.TransactionBullshit) {
		return nil, ErrInvalidTransition
	}

	updated := *tx
	updated.Status = models.TransactionBullshit
	updated.MarkSeenBy(input.UID)

	blocked := true
	out, err := s.config.Gateway.Mutate(ctx, &gateway.MutateInput{
		RoomCode: input.RoomCode,
		Mutation: &models.Mutation{
			Players: map[string]*models.PlayerMutation{
				tx.From: {InChallenge: &blocked},
			},
			Rounds: map[int]*models.RoundMutation{
				record.CurrentRound.Number: {
					Transactions: map[string]*models.Transaction{
						updated.ID: &updated,
					},
				},
			},
		},
	})
	if err != nil {
		return nil, err
	}

	return &RespondToCallOutput{
		Transaction: &updated,
		Record:      out.Record,
	}, nil
}

// ResolveChallenge settles a disputed call by revealing a hand card. A rank
// match proves the caller right and the target drinks double; otherwise the
// caller drinks double. Either way the revealed card leaves the hand and a
// replacement is dealt unless the deck is exhausted, in which case the hand
// permanently shrinks.
func (s *service) ResolveChallenge(ctx context.Context, input *ResolveChallengeInput) (*ResolveChallengeOutput, error) {
	if input == nil || input.UID == "" {
		return nil, ErrPlayerNotFound
	}

	record, err := s.fresh(ctx, input.RoomCode)
	if err != nil {
		return nil, err
	}

	if record.Phase() != models.PhaseRoundResolving {
		return nil, ErrInvalidGameState
	}

	tx, err := currentRoundTransaction(record, input.TransactionID)
	if err != nil {
		return nil, err
	}

	if tx.From != input.UID {
		return nil, ErrNotCallOwner
	}

	match := models.Rank(input.CardID) == models.Rank(record.CurrentRound.CardID)
	next := models.TransactionBullshitWrong
	if match {
		next = models.TransactionBullshitCorrect
	}
	if !tx.Status.CanTransitionTo(next) {
		return nil, ErrInvalidTransition
	}

	caller, ok := record.Players[input.UID]
	if !ok {
		return nil, ErrPlayerNotFound
	}

	if _, ok := caller.HandIndex(input.CardID); !ok {
		return nil, ErrCardNotInHand
	}

	updated := *tx
	updated.Status = next
	updated.MarkSeenBy(tx.To)

	// Removing the revealed card and dealing its replacement are deltas
	// evaluated inside the store's atomic update, so two callers resolving
	// in the same round can never be dealt the same replacement card.
	removed := input.CardID
	unblocked := false
	callerMutation := &models.PlayerMutation{
		RemoveCard:      &removed,
		DealReplacement: true,
		InChallenge:     &unblocked,
	}

	players := map[string]*models.PlayerMutation{
		input.UID: callerMutation,
	}

	row := record.CurrentRound.Row
	drinker := tx.From
	if match {
		drinker = tx.To
	}
	if drinker == input.UID {
		callerMutation.AddDrinks = 2 * row
	} else {
		players[drinker] = &models.PlayerMutation{AddDrinks: 2 * row}
	}

	out, err := s.config.Gateway.Mutate(ctx, &gateway.MutateInput{
		RoomCode: input.RoomCode,
		Mutation: &models.Mutation{
			Players: players,
			Rounds: map[int]*models.RoundMutation{
				record.CurrentRound.Number: {
					Transactions: map[string]*models.Transaction{
						updated.ID: &updated,
					},
				},
			},
		},
	})
	if err != nil {
		return nil, err
	}

	// The hand is written only by its owner, so its size in the merged
	// record tells whether a replacement was dealt or the deck ran out.
	replaced := len(out.Record.Players[input.UID].Hand) == len(caller.Hand)

	return &ResolveChallengeOutput{
		Transaction: &updated,
		Match:       match,
		DrinksTaken: 2 * row,
		Replaced:    replaced,
		PeekWindow:  s.config.PeekWindow,
		Record:      out.Record,
	}, nil
}

// currentRoundTransaction looks a transaction up in the open round.
// Transactions from closed rounds are invisible here: once the host moves
// on they can no longer be acted upon.
func currentRoundTransaction(record *models.GameRecord, transactionID string) (*models.Transaction, error) {
	if transactionID == "" {
		return nil, ErrTransactionNotFound
	}

	round, ok := record.Rounds[record.CurrentRound.Number]
	if !ok {
		return nil, ErrTransactionNotFound
	}

	tx, ok := round.Transactions[transactionID]
	if !ok {
		return nil, ErrTransactionNotFound
	}

	return tx, nil
}
