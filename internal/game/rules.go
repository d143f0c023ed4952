package game

import "github.com/lox/klondike/internal/deck"

// Move legality predicates. All of these are pure: they inspect cards
// and piles and never mutate anything.

// CanMoveToFoundation reports whether card may be placed on the given
// foundation pile: an Ace on an empty foundation, otherwise the same
// suit one rank above the current top.
func CanMoveToFoundation(card deck.Card, foundation Pile) bool {
	top, ok := foundation.Top()
	if !ok {
		return card.IsAce()
	}
	return card.Suit == top.Suit && card.Index() == top.Index()+1
}

// CanMoveToTableau reports whether card may be placed on the given
// tableau pile: a King on an empty pile, otherwise an alternating-color
// card one rank below a face-up top.
func CanMoveToTableau(card deck.Card, tableau Pile) bool {
	top, ok := tableau.Top()
	if !ok {
		return card.IsKing()
	}
	return top.FaceUp && card.Color() != top.Color() && card.Index() == top.Index()-1
}

// IsSequential reports whether lower may sit on upper within a tableau
// run: colors alternate and upper is exactly one rank above lower.
func IsSequential(upper, lower deck.Card) bool {
	return upper.Color() != lower.Color() && upper.Index() == lower.Index()+1
}

// isMovableRun reports whether run (ordered bottom-to-top, as sliced
// from a tableau pile) can be lifted as a unit: every card face-up and
// every adjacent pair alternating-color descending.
func isMovableRun(run []deck.Card) bool {
	if len(run) == 0 {
		return false
	}
	for i, c := range run {
		if !c.FaceUp {
			return false
		}
		if i > 0 && !IsSequential(run[i-1], run[i]) {
			return false
		}
	}
	return true
}
