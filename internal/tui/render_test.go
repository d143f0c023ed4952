package tui

import (
	"testing"

	"github.com/lox/klondike/internal/deck"
	"github.com/lox/klondike/internal/game"
	"github.com/stretchr/testify/assert"
)

func TestRenderBoardLayout(t *testing.T) {
	g := game.New(game.WithSeed(1))
	r := &Renderer{}

	out := r.Board(g)

	assert.Contains(t, out, "stock(24)")
	assert.Contains(t, out, "waste( 0)")
	for _, label := range []string{"f1", "f2", "f3", "f4", "t1", "t7"} {
		assert.Contains(t, out, label)
	}
	assert.Contains(t, out, "##", "face-down cards render hidden")
}

func TestRenderBoardShowsFaceUpCards(t *testing.T) {
	g := game.New(game.WithSeed(1))
	g.Waste = game.Pile{deck.NewCard(deck.Hearts, deck.Queen).FacedUp()}
	r := &Renderer{}

	out := r.Board(g)

	assert.Contains(t, out, "Q♥")
}

func TestRenderBoardAsciiSuits(t *testing.T) {
	g := game.New(game.WithSeed(1))
	g.Waste = game.Pile{deck.NewCard(deck.Hearts, deck.Queen).FacedUp()}
	r := &Renderer{Ascii: true}

	out := r.Board(g)

	assert.Contains(t, out, "QH")
	assert.NotContains(t, out, "♥")
}
