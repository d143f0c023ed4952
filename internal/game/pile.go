package game

import (
	"fmt"
	"strings"

	"github.com/lox/klondike/internal/deck"
)

// Pile is an ordered sequence of cards; the last element is the top
// (most recently placed, accessible) card.
type Pile []deck.Card

// Top returns the top card of the pile, if any
func (p Pile) Top() (deck.Card, bool) {
	if len(p) == 0 {
		return deck.Card{}, false
	}
	return p[len(p)-1], true
}

// Empty returns true if the pile has no cards
func (p Pile) Empty() bool {
	return len(p) == 0
}

// Clone returns an independent deep copy of the pile
func (p Pile) Clone() Pile {
	if p == nil {
		return nil
	}
	clone := make(Pile, len(p))
	copy(clone, p)
	return clone
}

// String renders the pile bottom-to-top for logs
func (p Pile) String() string {
	parts := make([]string, len(p))
	for i, c := range p {
		parts[i] = c.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// PileKind identifies which family of pile a PileRef addresses
type PileKind int

const (
	Stock PileKind = iota
	Waste
	Foundation
	Tableau
)

// String returns the string representation of a pile kind
func (k PileKind) String() string {
	switch k {
	case Stock:
		return "stock"
	case Waste:
		return "waste"
	case Foundation:
		return "foundation"
	case Tableau:
		return "tableau"
	default:
		return "?"
	}
}

// NumFoundations and NumTableaus are fixed by the Klondike layout
const (
	NumFoundations = 4
	NumTableaus    = 7
)

// PileRef addresses a single pile. Index is meaningful only for
// Foundation (0..3) and Tableau (0..6) kinds.
type PileRef struct {
	Kind  PileKind
	Index int
}

// String returns a short pile name like "t3" or "f1"
func (r PileRef) String() string {
	switch r.Kind {
	case Stock:
		return "s"
	case Waste:
		return "w"
	case Foundation:
		return fmt.Sprintf("f%d", r.Index+1)
	case Tableau:
		return fmt.Sprintf("t%d", r.Index+1)
	default:
		return "?"
	}
}

// Valid reports whether the ref addresses a pile that exists on the board.
// Drops resolved to nothing by a frontend arrive here as out-of-range refs
// and must be rejected without touching state.
func (r PileRef) Valid() bool {
	switch r.Kind {
	case Stock, Waste:
		return r.Index == 0
	case Foundation:
		return r.Index >= 0 && r.Index < NumFoundations
	case Tableau:
		return r.Index >= 0 && r.Index < NumTableaus
	default:
		return false
	}
}

// ParsePileRef parses the short pile names used by the frontends:
// "s", "w", "f1".."f4", "t1".."t7".
func ParsePileRef(s string) (PileRef, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case s == "s":
		return PileRef{Kind: Stock}, nil
	case s == "w":
		return PileRef{Kind: Waste}, nil
	case len(s) == 2 && s[0] == 'f':
		n := int(s[1] - '0')
		if n < 1 || n > NumFoundations {
			return PileRef{}, fmt.Errorf("foundation index out of range: %q", s)
		}
		return PileRef{Kind: Foundation, Index: n - 1}, nil
	case len(s) == 2 && s[0] == 't':
		n := int(s[1] - '0')
		if n < 1 || n > NumTableaus {
			return PileRef{}, fmt.Errorf("tableau index out of range: %q", s)
		}
		return PileRef{Kind: Tableau, Index: n - 1}, nil
	default:
		return PileRef{}, fmt.Errorf("unknown pile %q", s)
	}
}
