package deck

import "fmt"

// Suit represents a card suit
type Suit int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// String returns the string representation of a suit
func (s Suit) String() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	default:
		return "?"
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Color represents a card color, derived from the suit
type Color int

const (
	Black Color = iota
	Red
)

// String returns the string representation of a color
func (c Color) String() string {
	if c == Red {
		return "red"
	}
	return "black"
}

// Rank represents a card rank. Aces are low: the rank doubles as the
// ordinal index used for foundation and tableau ordering (A=0 .. K=12).
type Rank int

const (
	Ace Rank = iota
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// String returns the string representation of a rank
func (r Rank) String() string {
	switch r {
	case Ace:
		return "A"
	case Two:
		return "2"
	case Three:
		return "3"
	case Four:
		return "4"
	case Five:
		return "5"
	case Six:
		return "6"
	case Seven:
		return "7"
	case Eight:
		return "8"
	case Nine:
		return "9"
	case Ten:
		return "10"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return "?"
	}
}

// Card represents a playing card with a face orientation.
// Two cards are the same card when suit and rank match; FaceUp is
// table state, not identity.
type Card struct {
	Suit   Suit
	Rank   Rank
	FaceUp bool
}

// NewCard creates a new face-down card
func NewCard(suit Suit, rank Rank) Card {
	return Card{Suit: suit, Rank: rank}
}

// String returns the string representation of a card (e.g., "A♠").
// Face-down cards render as "##" so logged piles don't leak hidden cards.
func (c Card) String() string {
	if !c.FaceUp {
		return "##"
	}
	return fmt.Sprintf("%s%s", c.Rank, c.Suit)
}

// Color returns the card's color, always derived from the suit
func (c Card) Color() Color {
	if c.Suit.IsRed() {
		return Red
	}
	return Black
}

// IsRed returns true if the card is red
func (c Card) IsRed() bool {
	return c.Suit.IsRed()
}

// Index returns the ordinal index of the card's rank (A=0 .. K=12)
func (c Card) Index() int {
	return int(c.Rank)
}

// Is reports whether this is the same physical card as other,
// ignoring face orientation.
func (c Card) Is(other Card) bool {
	return c.Suit == other.Suit && c.Rank == other.Rank
}

// IsAce returns true if the card is an Ace
func (c Card) IsAce() bool {
	return c.Rank == Ace
}

// IsKing returns true if the card is a King
func (c Card) IsKing() bool {
	return c.Rank == King
}

// FacedUp returns a copy of the card turned face-up
func (c Card) FacedUp() Card {
	c.FaceUp = true
	return c
}

// FacedDown returns a copy of the card turned face-down
func (c Card) FacedDown() Card {
	c.FaceUp = false
	return c
}
