package tui

import (
	"fmt"
	"strings"

	"github.com/lox/klondike/internal/deck"
	"github.com/lox/klondike/internal/game"
)

var asciiSuitNames = map[deck.Suit]string{
	deck.Spades:   "S",
	deck.Hearts:   "H",
	deck.Diamonds: "D",
	deck.Clubs:    "C",
}

// Renderer renders the board as text. Ascii switches the suit glyphs
// to letters for terminals that can't display them.
type Renderer struct {
	Ascii bool
}

// NewRenderer creates a renderer matching the terminal's capabilities
func NewRenderer() *Renderer {
	return &Renderer{Ascii: asciiSuits()}
}

// Card renders a single card with its color style, or a face-down marker
func (r *Renderer) Card(c deck.Card) string {
	if !c.FaceUp {
		return FaceDownStyle.Render("[##]")
	}

	suit := c.Suit.String()
	if r.Ascii {
		suit = asciiSuitNames[c.Suit]
	}
	text := fmt.Sprintf("[%s%s]", c.Rank, suit)
	if c.IsRed() {
		return RedCardStyle.Render(text)
	}
	return BlackCardStyle.Render(text)
}

func (r *Renderer) top(p game.Pile, emptyMarker string) string {
	top, ok := p.Top()
	if !ok {
		return FaceDownStyle.Render(emptyMarker)
	}
	return r.Card(top)
}

// Board renders the whole table: the stock/waste/foundation row, then
// each tableau pile on its own line.
func (r *Renderer) Board(g *game.Game) string {
	var b strings.Builder

	fmt.Fprintf(&b, "stock(%2d) %s   waste(%2d) %s\n",
		len(g.Stock), r.top(g.Stock, "[  ]"),
		len(g.Waste), r.top(g.Waste, "[  ]"))

	for i, f := range g.Foundations {
		fmt.Fprintf(&b, "f%d %s  ", i+1, r.top(f, "[--]"))
	}
	b.WriteString("\n\n")

	for i, pile := range g.Tableau {
		fmt.Fprintf(&b, "t%d ", i+1)
		if pile.Empty() {
			b.WriteString(FaceDownStyle.Render("[  ]"))
		}
		for _, c := range pile {
			b.WriteString(r.Card(c))
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}
	return b.String()
}
