package deck

//go:generate mockgen -package=mocks -destination=mocks/mock_shuffler.go github.com/pyramid-party/server/internal/deck Shuffler

import (
	"hash/fnv"
	"math/rand"

	"github.com/pyramid-party/server/internal/models"
)

// Shuffler produces deterministic card permutations from a string seed
type Shuffler interface {
	// Shuffle returns a permutation of the card ids 0..51 derived from
	// seed. Repeated calls with the same seed return the same ordering.
	Shuffle(seed string) []int
}

// SeededShuffler implements Shuffler with a Fisher-Yates pass driven by a
// PRNG seeded from the room code. Every client holding the same code derives
// the same ordering, so the card mapping never travels over the wire.
type SeededShuffler struct{}

// New creates a new seeded shuffler
func New() *SeededShuffler {
	return &SeededShuffler{}
}

// Shuffle returns the permutation of 0..51 for the given seed.
func (s *SeededShuffler) Shuffle(seed string) []int {
	hasher := fnv.New64a()
	hasher.Write([]byte(seed))
	random := rand.New(rand.NewSource(int64(hasher.Sum64())))

	cards := make([]int, models.DeckSize)
	for i := range cards {
		cards[i] = i
	}
	random.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})

	return cards
}
