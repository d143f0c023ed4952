package game

import "github.com/lox/klondike/internal/deck"

// Deal distributes a shuffled 52-card deck into the opening Klondike
// layout. The deck is consumed as a stack (cards come off the end):
// tableau pile i receives i+1 cards with only the last one face-up,
// and the remaining 24 cards become the stock, face-down.
func Deal(cards []deck.Card) (stock Pile, tableau [NumTableaus]Pile) {
	remaining := make([]deck.Card, len(cards))
	copy(remaining, cards)

	for i := 0; i < NumTableaus; i++ {
		tableau[i] = make(Pile, 0, i+1)
		for j := 0; j <= i; j++ {
			card := remaining[len(remaining)-1]
			remaining = remaining[:len(remaining)-1]
			if j == i {
				card = card.FacedUp()
			} else {
				card = card.FacedDown()
			}
			tableau[i] = append(tableau[i], card)
		}
	}

	stock = make(Pile, 0, len(remaining))
	for _, card := range remaining {
		stock = append(stock, card.FacedDown())
	}
	return stock, tableau
}
