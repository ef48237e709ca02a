package game

import (
	"encoding/json"
	"time"

	"github.com/pyramid-party/server/internal/models"
)

// openRoundWithCall opens the first round and has anna call ben.
func (s *GameServiceTestSuite) openRoundWithCall() (*models.CurrentRound, *models.Transaction) {
	round := s.openRound()

	out, err := s.gameService.CallPlayer(s.ctx, &CallPlayerInput{
		RoomCode: testRoomCode,
		From:     "anna",
		To:       "ben",
	})
	s.Require().NoError(err)
	return round, out.Transaction
}

// disputedCall advances the call to a bullshit dispute by ben.
func (s *GameServiceTestSuite) disputedCall() (*models.CurrentRound, *models.Transaction) {
	round, tx := s.openRoundWithCall()

	out, err := s.gameService.RespondToCall(s.ctx, &RespondToCallInput{
		RoomCode:      testRoomCode,
		UID:           "ben",
		TransactionID: tx.ID,
		Decision:      RespondBullshit,
	})
	s.Require().NoError(err)
	return round, out.Transaction
}

// rigHand swaps the caller's first hand card for the given id so a resolve
// outcome can be forced.
func (s *GameServiceTestSuite) rigHand(uid string, cardID int) {
	s.record.Players[uid].Hand[0] = models.HandCard{CardID: cardID, Seen: true}
}

// snapshot deep-copies the canonical record, standing in for the state a
// client read before other writes landed.
func (s *GameServiceTestSuite) snapshot() *models.GameRecord {
	payload, err := json.Marshal(s.record)
	s.Require().NoError(err)

	var clone models.GameRecord
	s.Require().NoError(json.Unmarshal(payload, &clone))
	return &clone
}

// matchingCard is a card of the round's rank in another suit.
func matchingCard(round *models.CurrentRound) int {
	return (round.CardID + models.RanksPerSuit) % models.DeckSize
}

// nonMatchingCard is a card one rank off the round's rank.
func nonMatchingCard(round *models.CurrentRound) int {
	return (round.CardID + 1) % models.DeckSize
}

func (s *GameServiceTestSuite) TestCallPlayerCreatesWaitingTransaction() {
	_, tx := s.openRoundWithCall()

	s.Equal("tx-1", tx.ID)
	s.Equal("anna", tx.From)
	s.Equal("ben", tx.To)
	s.Equal(models.TransactionWaiting, tx.Status)
	s.Equal([]string{"anna"}, tx.SeenBy)
	s.Equal(s.testTime, tx.CreatedAt)

	s.Require().Contains(s.record.Rounds[1].Transactions, tx.ID)
}

func (s *GameServiceTestSuite) TestCallPlayerWhileCallPending() {
	s.openRoundWithCall()

	_, err := s.gameService.CallPlayer(s.ctx, &CallPlayerInput{
		RoomCode: testRoomCode,
		From:     "anna",
		To:       testHostUID,
	})
	s.Require().ErrorIs(err, ErrCallPending)
}

func (s *GameServiceTestSuite) TestCallPlayerSecondCallAfterSettlement() {
	_, tx := s.openRoundWithCall()

	_, err := s.gameService.RespondToCall(s.ctx, &RespondToCallInput{
		RoomCode:      testRoomCode,
		UID:           "ben",
		TransactionID: tx.ID,
		Decision:      RespondAccept,
	})
	s.Require().NoError(err)

	// Settled means anna is free to call again this round.
	out, err := s.gameService.CallPlayer(s.ctx, &CallPlayerInput{
		RoomCode: testRoomCode,
		From:     "anna",
		To:       testHostUID,
	})
	s.Require().NoError(err)
	s.Equal("tx-2", out.Transaction.ID)
	s.Len(s.record.Rounds[1].Transactions, 2)
}

func (s *GameServiceTestSuite) TestCallPlayerSelf() {
	s.openRound()

	_, err := s.gameService.CallPlayer(s.ctx, &CallPlayerInput{
		RoomCode: testRoomCode,
		From:     "anna",
		To:       "anna",
	})
	s.Require().ErrorIs(err, ErrSelfCall)
}

func (s *GameServiceTestSuite) TestCallPlayerNoOpenRound() {
	s.activeRoom()

	_, err := s.gameService.CallPlayer(s.ctx, &CallPlayerInput{
		RoomCode: testRoomCode,
		From:     "anna",
		To:       "ben",
	})
	s.Require().ErrorIs(err, ErrInvalidGameState)
}

func (s *GameServiceTestSuite) TestCallPlayerUnknownTarget() {
	s.openRound()

	_, err := s.gameService.CallPlayer(s.ctx, &CallPlayerInput{
		RoomCode: testRoomCode,
		From:     "anna",
		To:       "ghost",
	})
	s.Require().ErrorIs(err, ErrPlayerNotFound)
}

func (s *GameServiceTestSuite) TestAcceptCall() {
	round, tx := s.openRoundWithCall()
	handBefore := len(s.record.Players["ben"].Hand)
	deckBefore := len(s.record.Deck)

	out, err := s.gameService.RespondToCall(s.ctx, &RespondToCallInput{
		RoomCode:      testRoomCode,
		UID:           "ben",
		TransactionID: tx.ID,
		Decision:      RespondAccept,
	})
	s.Require().NoError(err)

	s.Equal(models.TransactionAccepted, out.Transaction.Status)
	s.Equal(round.Row, out.DrinksTaken)
	s.Equal(round.Row, s.record.Players["ben"].Drinks)
	s.Contains(out.Transaction.SeenBy, "ben")

	// Accepting moves drinks, never cards.
	s.Len(s.record.Players["ben"].Hand, handBefore)
	s.Len(s.record.Deck, deckBefore)
	s.False(s.record.Players["anna"].InChallenge)
}

func (s *GameServiceTestSuite) TestRespondWrongTarget() {
	_, tx := s.openRoundWithCall()

	_, err := s.gameService.RespondToCall(s.ctx, &RespondToCallInput{
		RoomCode:      testRoomCode,
		UID:           testHostUID,
		TransactionID: tx.ID,
		Decision:      RespondAccept,
	})
	s.Require().ErrorIs(err, ErrNotCallTarget)
}

func (s *GameServiceTestSuite) TestRespondToSettledCall() {
	_, tx := s.openRoundWithCall()

	_, err := s.gameService.RespondToCall(s.ctx, &RespondToCallInput{
		RoomCode:      testRoomCode,
		UID:           "ben",
		TransactionID: tx.ID,
		Decision:      RespondAccept,
	})
	s.Require().NoError(err)

	_, err = s.gameService.RespondToCall(s.ctx, &RespondToCallInput{
		RoomCode:      testRoomCode,
		UID:           "ben",
		TransactionID: tx.ID,
		Decision:      RespondBullshit,
	})
	s.Require().ErrorIs(err, ErrInvalidTransition)
}

func (s *GameServiceTestSuite) TestRespondUnknownTransaction() {
	s.openRound()

	_, err := s.gameService.RespondToCall(s.ctx, &RespondToCallInput{
		RoomCode:      testRoomCode,
		UID:           "ben",
		TransactionID: "nope",
		Decision:      RespondAccept,
	})
	s.Require().ErrorIs(err, ErrTransactionNotFound)
}

func (s *GameServiceTestSuite) TestDisputeCallBlocksCaller() {
	_, tx := s.disputedCall()

	s.Equal(models.TransactionBullshit, tx.Status)
	s.True(s.record.Players["anna"].InChallenge)
	// No drinks move until the challenge resolves.
	s.Equal(0, s.record.Players["anna"].Drinks)
	s.Equal(0, s.record.Players["ben"].Drinks)
}

func (s *GameServiceTestSuite) TestResolveChallengeCorrect() {
	round, tx := s.disputedCall()

	revealed := matchingCard(round)
	s.rigHand("anna", revealed)
	deckBefore := make([]int, len(s.record.Deck))
	copy(deckBefore, s.record.Deck)

	out, err := s.gameService.ResolveChallenge(s.ctx, &ResolveChallengeInput{
		RoomCode:      testRoomCode,
		UID:           "anna",
		TransactionID: tx.ID,
		CardID:        revealed,
	})
	s.Require().NoError(err)

	s.True(out.Match)
	s.Equal(models.TransactionBullshitCorrect, out.Transaction.Status)
	s.Equal(2*round.Row, out.DrinksTaken)
	s.Equal(2*round.Row, s.record.Players["ben"].Drinks)
	s.Equal(0, s.record.Players["anna"].Drinks)

	// The revealed card left the hand and a replacement was dealt.
	s.True(out.Replaced)
	s.Equal(15*time.Second, out.PeekWindow)
	anna := s.record.Players["anna"]
	s.Len(anna.Hand, defaultHandSize)
	s.Equal(deckBefore[0], anna.Hand[len(anna.Hand)-1].CardID)
	s.False(anna.Hand[len(anna.Hand)-1].Seen)
	s.Equal(deckBefore[1:], s.record.Deck)
	s.False(anna.InChallenge)
}

func (s *GameServiceTestSuite) TestResolveChallengeWrong() {
	round, tx := s.disputedCall()

	revealed := nonMatchingCard(round)
	s.rigHand("anna", revealed)
	deckBefore := len(s.record.Deck)

	out, err := s.gameService.ResolveChallenge(s.ctx, &ResolveChallengeInput{
		RoomCode:      testRoomCode,
		UID:           "anna",
		TransactionID: tx.ID,
		CardID:        revealed,
	})
	s.Require().NoError(err)

	s.False(out.Match)
	s.Equal(models.TransactionBullshitWrong, out.Transaction.Status)
	// The bluff backfires on the caller.
	s.Equal(2*round.Row, s.record.Players["anna"].Drinks)
	s.Equal(0, s.record.Players["ben"].Drinks)

	s.True(out.Replaced)
	s.Len(s.record.Players["anna"].Hand, defaultHandSize)
	s.Len(s.record.Deck, deckBefore-1)
	s.False(s.record.Players["anna"].InChallenge)
}

func (s *GameServiceTestSuite) TestResolveChallengeDeckExhausted() {
	round, tx := s.disputedCall()

	revealed := nonMatchingCard(round)
	s.rigHand("anna", revealed)
	s.record.Deck = []int{}

	out, err := s.gameService.ResolveChallenge(s.ctx, &ResolveChallengeInput{
		RoomCode:      testRoomCode,
		UID:           "anna",
		TransactionID: tx.ID,
		CardID:        revealed,
	})
	s.Require().NoError(err)

	// No replacement; the hand permanently shrinks.
	s.False(out.Replaced)
	s.Len(s.record.Players["anna"].Hand, defaultHandSize-1)
	s.Empty(s.record.Deck)
	s.Equal(2*round.Row, s.record.Players["anna"].Drinks)
}

func (s *GameServiceTestSuite) TestConcurrentResolvesDrawDistinctReplacements() {
	round := s.openRound()

	// anna and host each have their own disputed call against ben.
	_, err := s.gameService.CallPlayer(s.ctx, &CallPlayerInput{
		RoomCode: testRoomCode, From: "anna", To: "ben",
	})
	s.Require().NoError(err)
	_, err = s.gameService.CallPlayer(s.ctx, &CallPlayerInput{
		RoomCode: testRoomCode, From: testHostUID, To: "ben",
	})
	s.Require().NoError(err)
	for _, txID := range []string{"tx-1", "tx-2"} {
		_, err = s.gameService.RespondToCall(s.ctx, &RespondToCallInput{
			RoomCode:      testRoomCode,
			UID:           "ben",
			TransactionID: txID,
			Decision:      RespondBullshit,
		})
		s.Require().NoError(err)
	}

	annaCard := nonMatchingCard(round)
	hostCard := (annaCard + models.RanksPerSuit) % models.DeckSize
	s.rigHand("anna", annaCard)
	s.rigHand(testHostUID, hostCard)

	// Both resolutions act on the same pre-write snapshot.
	s.staleRead = s.snapshot()
	deckBefore := make([]int, len(s.record.Deck))
	copy(deckBefore, s.record.Deck)

	_, err = s.gameService.ResolveChallenge(s.ctx, &ResolveChallengeInput{
		RoomCode: testRoomCode, UID: "anna", TransactionID: "tx-1", CardID: annaCard,
	})
	s.Require().NoError(err)
	_, err = s.gameService.ResolveChallenge(s.ctx, &ResolveChallengeInput{
		RoomCode: testRoomCode, UID: testHostUID, TransactionID: "tx-2", CardID: hostCard,
	})
	s.Require().NoError(err)

	// Each resolution drew its own card off the canonical deck.
	anna := s.record.Players["anna"]
	host := s.record.Players[testHostUID]
	annaDrawn := anna.Hand[len(anna.Hand)-1].CardID
	hostDrawn := host.Hand[len(host.Hand)-1].CardID
	s.Equal(deckBefore[0], annaDrawn)
	s.Equal(deckBefore[1], hostDrawn)
	s.NotEqual(annaDrawn, hostDrawn)
	s.Equal(deckBefore[2:], s.record.Deck)
}

func (s *GameServiceTestSuite) TestConcurrentAcceptAndResolveBothCharge() {
	round := s.openRound()

	// ben faces a waiting call from anna and a disputed one from the host.
	_, err := s.gameService.CallPlayer(s.ctx, &CallPlayerInput{
		RoomCode: testRoomCode, From: "anna", To: "ben",
	})
	s.Require().NoError(err)
	_, err = s.gameService.CallPlayer(s.ctx, &CallPlayerInput{
		RoomCode: testRoomCode, From: testHostUID, To: "ben",
	})
	s.Require().NoError(err)
	_, err = s.gameService.RespondToCall(s.ctx, &RespondToCallInput{
		RoomCode:      testRoomCode,
		UID:           "ben",
		TransactionID: "tx-2",
		Decision:      RespondBullshit,
	})
	s.Require().NoError(err)

	revealed := matchingCard(round)
	s.rigHand(testHostUID, revealed)

	// Both writers act on a snapshot where ben's total is still zero.
	s.staleRead = s.snapshot()

	_, err = s.gameService.RespondToCall(s.ctx, &RespondToCallInput{
		RoomCode:      testRoomCode,
		UID:           "ben",
		TransactionID: "tx-1",
		Decision:      RespondAccept,
	})
	s.Require().NoError(err)
	_, err = s.gameService.ResolveChallenge(s.ctx, &ResolveChallengeInput{
		RoomCode: testRoomCode, UID: testHostUID, TransactionID: "tx-2", CardID: revealed,
	})
	s.Require().NoError(err)

	// The accept (1x row) and the lost challenge (2x row) both stick.
	s.Equal(3*round.Row, s.record.Players["ben"].Drinks)
}

func (s *GameServiceTestSuite) TestResolveChallengeBeforeDispute() {
	_, tx := s.openRoundWithCall()

	_, err := s.gameService.ResolveChallenge(s.ctx, &ResolveChallengeInput{
		RoomCode:      testRoomCode,
		UID:           "anna",
		TransactionID: tx.ID,
		CardID:        s.record.Players["anna"].Hand[0].CardID,
	})
	s.Require().ErrorIs(err, ErrInvalidTransition)
}

func (s *GameServiceTestSuite) TestResolveChallengeNotOwner() {
	_, tx := s.disputedCall()

	_, err := s.gameService.ResolveChallenge(s.ctx, &ResolveChallengeInput{
		RoomCode:      testRoomCode,
		UID:           "ben",
		TransactionID: tx.ID,
		CardID:        s.record.Players["ben"].Hand[0].CardID,
	})
	s.Require().ErrorIs(err, ErrNotCallOwner)
}

func (s *GameServiceTestSuite) TestResolveChallengeCardNotInHand() {
	round, tx := s.disputedCall()

	// A card anna does not hold.
	revealed := nonMatchingCard(round)
	for {
		if _, held := s.record.Players["anna"].HandIndex(revealed); !held {
			break
		}
		revealed = (revealed + 1) % models.DeckSize
	}

	_, err := s.gameService.ResolveChallenge(s.ctx, &ResolveChallengeInput{
		RoomCode:      testRoomCode,
		UID:           "anna",
		TransactionID: tx.ID,
		CardID:        revealed,
	})
	s.Require().ErrorIs(err, ErrCardNotInHand)
}

func (s *GameServiceTestSuite) TestMarkCardSeen() {
	s.dealtRoom()

	cardID := s.record.Players["anna"].Hand[1].CardID
	_, err := s.gameService.MarkCardSeen(s.ctx, &MarkCardSeenInput{
		RoomCode: testRoomCode,
		UID:      "anna",
		CardID:   cardID,
	})
	s.Require().NoError(err)

	hand := s.record.Players["anna"].Hand
	s.True(hand[1].Seen)
	s.False(hand[0].Seen)
}

func (s *GameServiceTestSuite) TestMarkCardSeenNotHeld() {
	s.dealtRoom()

	_, err := s.gameService.MarkCardSeen(s.ctx, &MarkCardSeenInput{
		RoomCode: testRoomCode,
		UID:      "anna",
		CardID:   s.record.Deck[0],
	})
	s.Require().ErrorIs(err, ErrCardNotInHand)
}
