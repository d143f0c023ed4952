package deck

import rand "math/rand/v2"

// Size is the number of cards in a standard deck
const Size = 52

// Suits lists all suits in their canonical deck-building order
var Suits = []Suit{Spades, Hearts, Diamonds, Clubs}

// Ranks lists all ranks from Ace (low) to King
var Ranks = []Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}

// New returns a standard 52-card deck in fixed suit-major order,
// all cards face-down. Deterministic; callers shuffle separately.
func New() []Card {
	cards := make([]Card, 0, Size)
	for _, suit := range Suits {
		for _, rank := range Ranks {
			cards = append(cards, NewCard(suit, rank))
		}
	}
	return cards
}

// Shuffle returns a new slice containing the same cards in a uniformly
// random order using a Fisher-Yates pass. The input is never mutated.
func Shuffle(cards []Card, rng *rand.Rand) []Card {
	shuffled := make([]Card, len(cards))
	copy(shuffled, cards)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}
