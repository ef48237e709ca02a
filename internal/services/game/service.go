package game

import (
	"context"
	"errors"
	"math/rand"
	"sort"
	"strings"

	"github.com/pyramid-party/server/internal/gateway"
	"github.com/pyramid-party/server/internal/models"
	gameRepo "github.com/pyramid-party/server/internal/repositories/game"
)

const (
	defaultMaxPlayers     = 9
	defaultHandSize       = 4
	defaultRoomCodeLength = 4

	roomCodeLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

	// How many generated codes to try before giving up on a collision
	maxCodeAttempts = 5
)

// service implements the Service interface
type service struct {
	config *Config
	rng    *rand.Rand
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Gateway == nil {
		return nil, ErrNilGateway
	}

	if cfg.Shuffler == nil {
		return nil, ErrNilShuffler
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	if cfg.MaxPlayers == 0 {
		cfg.MaxPlayers = defaultMaxPlayers
	}

	if cfg.HandSize == 0 {
		cfg.HandSize = defaultHandSize
	}

	if cfg.RoomCodeLength == 0 {
		cfg.RoomCodeLength = defaultRoomCodeLength
	}

	return &service{
		config: cfg,
		rng:    rand.New(rand.NewSource(cfg.Clock.Now().UnixNano())),
	}, nil
}

// CreateGame builds a new room from the seeded shuffle and persists it
func (s *service) CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error) {
	if input == nil || input.HostUID == "" {
		return nil, ErrPlayerNotFound
	}

	code := strings.ToUpper(strings.TrimSpace(input.RoomCode))
	generated := code == ""

	if !generated && !validRoomCode(code) {
		return nil, ErrInvalidRoomCode
	}

	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		if generated {
			code = s.randomRoomCode()
		}

		record := s.buildRecord(code, input)

		err := s.config.Gateway.Create(ctx, &gateway.CreateInput{
			Record: record,
		})
		if err == nil {
			return &CreateGameOutput{
				RoomCode: code,
				Record:   record,
			}, nil
		}

		if errors.Is(err, gameRepo.ErrGameExists) {
			if !generated {
				return nil, ErrRoomExists
			}
			// Generated code collided; pick another.
			continue
		}

		return nil, err
	}

	return nil, ErrRoomExists
}

// buildRecord constructs the initial record: 15 unshown pyramid slots off
// the top of the seeded permutation, the remainder as the deck, the host
// registered as admin.
func (s *service) buildRecord(code string, input *CreateGameInput) *models.GameRecord {
	order := s.config.Shuffler.Shuffle(code)

	pyramid := make([]models.PyramidSlot, models.PyramidSize)
	for i := range pyramid {
		pyramid[i] = models.PyramidSlot{CardID: order[i]}
	}

	deck := make([]int, len(order)-models.PyramidSize)
	copy(deck, order[models.PyramidSize:])

	return &models.GameRecord{
		RoomCode: code,
		Meta: models.Meta{
			CreatedAt: s.config.Clock.Now(),
		},
		Deck:    deck,
		Pyramid: pyramid,
		Players: map[string]*models.PlayerRecord{
			input.HostUID: {
				UID:   input.HostUID,
				Name:  input.HostName,
				Admin: true,
				Hand:  []models.HandCard{},
			},
		},
		Rounds: map[int]*models.RoundRecord{},
	}
}

// JoinGame registers a player in a room before hands are dealt
func (s *service) JoinGame(ctx context.Context, input *JoinGameInput) (*JoinGameOutput, error) {
	if input == nil || input.UID == "" {
		return nil, ErrPlayerNotFound
	}

	record, err := s.fresh(ctx, input.RoomCode)
	if err != nil {
		return nil, err
	}

	// Joining stops once hands exist: a later joiner could never be dealt
	// a hand and would sit in the game handless.
	if record.Phase() != models.PhaseWaitingToStart {
		return nil, ErrInvalidGameState
	}

	if _, ok := record.Players[input.UID]; ok {
		return nil, ErrPlayerAlreadyJoined
	}

	if len(record.Players) >= s.config.MaxPlayers {
		return nil, ErrGameFull
	}

	player := &models.PlayerRecord{
		UID:  input.UID,
		Name: input.Name,
		Hand: []models.HandCard{},
	}

	out, err := s.config.Gateway.Mutate(ctx, &gateway.MutateInput{
		RoomCode: input.RoomCode,
		Mutation: &models.Mutation{
			Players: map[string]*models.PlayerMutation{
				input.UID: {Record: player},
			},
		},
	})
	if err != nil {
		return nil, err
	}

	return &JoinGameOutput{
		Player: player,
		Record: out.Record,
	}, nil
}

// DealInitialHands slices the configured hand size off the deck for every
// joined player
func (s *service) DealInitialHands(ctx context.Context, input *DealInitialHandsInput) (*DealInitialHandsOutput, error) {
	if input == nil {
		return nil, ErrRoomNotFound
	}

	record, err := s.fresh(ctx, input.RoomCode)
	if err != nil {
		return nil, err
	}

	if err := requireAdmin(record, input.UID); err != nil {
		return nil, err
	}

	if record.Phase() != models.PhaseWaitingToStart {
		return nil, ErrInvalidGameState
	}

	needed := s.config.HandSize * len(record.Players)
	if len(record.Deck) < needed {
		return nil, ErrInvalidGameState
	}

	// Deal in sorted uid order so the slicing is reproducible.
	uids := make([]string, 0, len(record.Players))
	for uid := range record.Players {
		uids = append(uids, uid)
	}
	sort.Strings(uids)

	deck := record.Deck
	players := make(map[string]*models.PlayerMutation, len(uids))
	for _, uid := range uids {
		hand := make([]models.HandCard, s.config.HandSize)
		for i := 0; i < s.config.HandSize; i++ {
			hand[i] = models.HandCard{CardID: deck[i]}
		}
		deck = deck[s.config.HandSize:]

		handCopy := hand
		players[uid] = &models.PlayerMutation{Hand: &handCopy}
	}

	remaining := make([]int, len(deck))
	copy(remaining, deck)

	out, err := s.config.Gateway.Mutate(ctx, &gateway.MutateInput{
		RoomCode: input.RoomCode,
		Mutation: &models.Mutation{
			Deck:    &remaining,
			Players: players,
		},
	})
	if err != nil {
		return nil, err
	}

	return &DealInitialHandsOutput{Record: out.Record}, nil
}

// StartGame opens play once hands are dealt
func (s *service) StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error) {
	if input == nil {
		return nil, ErrRoomNotFound
	}

	record, err := s.fresh(ctx, input.RoomCode)
	if err != nil {
		return nil, err
	}

	if err := requireAdmin(record, input.UID); err != nil {
		return nil, err
	}

	if record.Phase() != models.PhaseDealt {
		return nil, ErrInvalidGameState
	}

	started := true
	out, err := s.config.Gateway.Mutate(ctx, &gateway.MutateInput{
		RoomCode: input.RoomCode,
		Mutation: &models.Mutation{
			Meta: &models.MetaMutation{Started: &started},
		},
	})
	if err != nil {
		return nil, err
	}

	return &StartGameOutput{Record: out.Record}, nil
}

// RevealNextCard reveals the next pyramid slot and opens a round. A still
// open previous round is swept first: its unresolved transactions are
// discarded and blocked players unblocked, so a stuck challenge can never
// leak into the new round.
func (s *service) RevealNextCard(ctx context.Context, input *RevealNextCardInput) (*RevealNextCardOutput, error) {
	if input == nil {
		return nil, ErrRoomNotFound
	}

	record, err := s.fresh(ctx, input.RoomCode)
	if err != nil {
		return nil, err
	}

	if err := requireAdmin(record, input.UID); err != nil {
		return nil, err
	}

	if record.Meta.Finished || !record.Meta.Started {
		return nil, ErrInvalidGameState
	}

	mutation := &models.Mutation{}
	if record.CurrentRound != nil {
		sweepRound(record, mutation)
	}

	slot, ok := record.NextUnshownSlot()
	if !ok {
		// Nothing left to reveal; the game ends here.
		finishGame(record, mutation)
		out, err := s.config.Gateway.Mutate(ctx, &gateway.MutateInput{
			RoomCode: input.RoomCode,
			Mutation: mutation,
		})
		if err != nil {
			return nil, err
		}
		return &RevealNextCardOutput{
			GameEnded: true,
			Record:    out.Record,
		}, nil
	}

	pyramid := make([]models.PyramidSlot, len(record.Pyramid))
	copy(pyramid, record.Pyramid)
	pyramid[slot].Shown = true

	number := record.LastRoundNumber() + 1
	row := models.RowForSlot(slot)
	cardID := pyramid[slot].CardID

	current := &models.CurrentRound{
		Number: number,
		Row:    row,
		CardID: cardID,
	}

	mutation.Pyramid = &pyramid
	mutation.CurrentRound = current
	mutation.ClearCurrentRound = false
	mutation.Rounds = map[int]*models.RoundMutation{
		number: {
			Record: &models.RoundRecord{
				Row:          row,
				CardID:       cardID,
				Transactions: map[string]*models.Transaction{},
			},
		},
	}

	out, err := s.config.Gateway.Mutate(ctx, &gateway.MutateInput{
		RoomCode: input.RoomCode,
		Mutation: mutation,
	})
	if err != nil {
		return nil, err
	}

	return &RevealNextCardOutput{
		Round:  current,
		Record: out.Record,
	}, nil
}

// CloseRound closes the open round; after the final pyramid slot this
// computes the summary and ends the game
func (s *service) CloseRound(ctx context.Context, input *CloseRoundInput) (*CloseRoundOutput, error) {
	if input == nil {
		return nil, ErrRoomNotFound
	}

	record, err := s.fresh(ctx, input.RoomCode)
	if err != nil {
		return nil, err
	}

	if err := requireAdmin(record, input.UID); err != nil {
		return nil, err
	}

	if record.CurrentRound == nil || record.Meta.Finished {
		return nil, ErrInvalidGameState
	}

	mutation := &models.Mutation{}
	sweepRound(record, mutation)

	ended := record.ShownCount() == models.PyramidSize
	var summary map[string]int
	if ended {
		summary = finishGame(record, mutation)
	}

	out, err := s.config.Gateway.Mutate(ctx, &gateway.MutateInput{
		RoomCode: input.RoomCode,
		Mutation: mutation,
	})
	if err != nil {
		return nil, err
	}

	return &CloseRoundOutput{
		GameEnded: ended,
		Summary:   summary,
		Record:    out.Record,
	}, nil
}

// MarkCardSeen records that a player has viewed one of their hand cards
func (s *service) MarkCardSeen(ctx context.Context, input *MarkCardSeenInput) (*MarkCardSeenOutput, error) {
	if input == nil {
		return nil, ErrRoomNotFound
	}

	record, err := s.fresh(ctx, input.RoomCode)
	if err != nil {
		return nil, err
	}

	player, ok := record.Players[input.UID]
	if !ok {
		return nil, ErrPlayerNotFound
	}

	idx, ok := player.HandIndex(input.CardID)
	if !ok {
		return nil, ErrCardNotInHand
	}

	hand := make([]models.HandCard, len(player.Hand))
	copy(hand, player.Hand)
	hand[idx].Seen = true

	out, err := s.config.Gateway.Mutate(ctx, &gateway.MutateInput{
		RoomCode: input.RoomCode,
		Mutation: &models.Mutation{
			Players: map[string]*models.PlayerMutation{
				input.UID: {Hand: &hand},
			},
		},
	})
	if err != nil {
		return nil, err
	}

	return &MarkCardSeenOutput{Record: out.Record}, nil
}

// ComputeSummary tallies drinks by replaying every round's transactions
func (s *service) ComputeSummary(ctx context.Context, input *ComputeSummaryInput) (*ComputeSummaryOutput, error) {
	if input == nil {
		return nil, ErrRoomNotFound
	}

	record, err := s.fresh(ctx, input.RoomCode)
	if err != nil {
		return nil, err
	}

	if record.Summary != nil {
		return &ComputeSummaryOutput{Summary: record.Summary}, nil
	}

	return &ComputeSummaryOutput{Summary: computeSummary(record)}, nil
}

// GetGame returns the freshest committed record for a room
func (s *service) GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error) {
	if input == nil {
		return nil, ErrRoomNotFound
	}

	record, err := s.fresh(ctx, input.RoomCode)
	if err != nil {
		return nil, err
	}

	return &GetGameOutput{Record: record}, nil
}

// fresh reads the latest committed record, mapping store sentinels to
// service errors
func (s *service) fresh(ctx context.Context, roomCode string) (*models.GameRecord, error) {
	if roomCode == "" {
		return nil, ErrRoomNotFound
	}

	record, err := s.config.Gateway.GetFresh(ctx, &gateway.GetFreshInput{
		RoomCode: roomCode,
	})
	if err != nil {
		if errors.Is(err, gameRepo.ErrGameNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	return record, nil
}

// requireAdmin verifies the acting player is the host
func requireAdmin(record *models.GameRecord, uid string) error {
	player, ok := record.Players[uid]
	if !ok {
		return ErrPlayerNotFound
	}
	if !player.Admin {
		return ErrNotAdmin
	}
	return nil
}

// sweepRound closes the open round in the mutation: unresolved transactions
// are left in place but ignored from here on, and players stuck
// mid-challenge are unblocked.
func sweepRound(record *models.GameRecord, mutation *models.Mutation) {
	mutation.ClearCurrentRound = true

	for uid, player := range record.Players {
		if !player.InChallenge {
			continue
		}
		if mutation.Players == nil {
			mutation.Players = make(map[string]*models.PlayerMutation)
		}
		unblocked := false
		mutation.Players[uid] = &models.PlayerMutation{InChallenge: &unblocked}
	}
}

// finishGame marks the game finished and writes the replayed summary into
// the mutation
func finishGame(record *models.GameRecord, mutation *models.Mutation) map[string]int {
	summary := computeSummary(record)
	finished := true

	mutation.Summary = summary
	if mutation.Meta == nil {
		mutation.Meta = &models.MetaMutation{}
	}
	mutation.Meta.Finished = &finished

	return summary
}

// computeSummary replays every round's transactions. Accepted calls charge
// the target the row value; a correct challenge charges the target double;
// a wrong challenge charges the caller double. Unresolved transactions
// charge nobody.
func computeSummary(record *models.GameRecord) map[string]int {
	summary := make(map[string]int, len(record.Players))
	for uid := range record.Players {
		summary[uid] = 0
	}

	for _, round := range record.Rounds {
		for _, tx := range round.Transactions {
			switch tx.Status {
			case models.TransactionAccepted:
				summary[tx.To] += round.Row
			case models.TransactionBullshitCorrect:
				summary[tx.To] += 2 * round.Row
			case models.TransactionBullshitWrong:
				summary[tx.From] += 2 * round.Row
			}
		}
	}

	return summary
}

// validRoomCode reports whether code is 4-6 uppercase letters
func validRoomCode(code string) bool {
	if len(code) < 4 || len(code) > 6 {
		return false
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

// randomRoomCode generates a code of the configured length
func (s *service) randomRoomCode() string {
	letters := make([]byte, s.config.RoomCodeLength)
	for i := range letters {
		letters[i] = roomCodeLetters[s.rng.Intn(len(roomCodeLetters))]
	}
	return string(letters)
}
