package tui

import (
	"testing"

	"github.com/coder/quartz"
	"github.com/lox/klondike/internal/deck"
	"github.com/lox/klondike/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Command
		wantErr bool
	}{
		{"draw short", "d", Command{Kind: CmdDraw}, false},
		{"draw long", "draw", Command{Kind: CmdDraw}, false},
		{"undo", "u", Command{Kind: CmdUndo}, false},
		{"new game", "n", Command{Kind: CmdNewGame}, false},
		{"quit", "q", Command{Kind: CmdQuit}, false},
		{
			"move top card",
			"m w f1",
			Command{
				Kind:      CmdMove,
				Source:    game.PileRef{Kind: game.Waste},
				CardIndex: -1,
				Dest:      game.PileRef{Kind: game.Foundation, Index: 0},
			},
			false,
		},
		{
			"move run with card number",
			"m t3 2 t5",
			Command{
				Kind:      CmdMove,
				Source:    game.PileRef{Kind: game.Tableau, Index: 2},
				CardIndex: 1,
				Dest:      game.PileRef{Kind: game.Tableau, Index: 4},
			},
			false,
		},
		{"uppercase accepted", "M W T1", Command{
			Kind:      CmdMove,
			Source:    game.PileRef{Kind: game.Waste},
			CardIndex: -1,
			Dest:      game.PileRef{Kind: game.Tableau, Index: 0},
		}, false},
		{"empty line", "", Command{}, true},
		{"unknown command", "x", Command{}, true},
		{"move missing args", "m w", Command{}, true},
		{"move bad pile", "m w z9", Command{}, true},
		{"move bad card number", "m t1 zero t2", Command{}, true},
		{"move zero card number", "m t1 0 t2", Command{}, true},
		{"tableau out of range", "m t8 t1", Command{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCommand(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func newTestSession(t *testing.T) *game.Session {
	t.Helper()
	return game.NewSession(quartz.NewMock(t), game.WithSeed(1))
}

func TestApplyDraw(t *testing.T) {
	s := newTestSession(t)

	status := Command{Kind: CmdDraw}.Apply(s)

	assert.Contains(t, status, "drew")
	assert.Equal(t, 1, s.Game.Moves)
	assert.Len(t, s.Game.Waste, 1)
}

func TestApplyMoveDefaultsToTopCard(t *testing.T) {
	s := newTestSession(t)
	g := s.Game

	// Build a known layout: waste holds the ace of spades.
	g.Waste = game.Pile{deck.NewCard(deck.Spades, deck.Ace).FacedUp()}

	status := Command{
		Kind:      CmdMove,
		Source:    game.PileRef{Kind: game.Waste},
		CardIndex: -1,
		Dest:      game.PileRef{Kind: game.Foundation, Index: 0},
	}.Apply(s)

	assert.Contains(t, status, "moved")
	assert.Len(t, g.Foundations[0], 1)
}

func TestApplyIllegalMoveReportsError(t *testing.T) {
	s := newTestSession(t)
	before := s.Game.Moves

	status := Command{
		Kind:      CmdMove,
		Source:    game.PileRef{Kind: game.Waste},
		CardIndex: -1,
		Dest:      game.PileRef{Kind: game.Foundation, Index: 0},
	}.Apply(s)

	assert.Contains(t, status, "illegal")
	assert.Equal(t, before, s.Game.Moves)
}

func TestApplyUndo(t *testing.T) {
	s := newTestSession(t)

	assert.Equal(t, "nothing to undo", Command{Kind: CmdUndo}.Apply(s))

	Command{Kind: CmdDraw}.Apply(s)
	assert.Equal(t, "undone", Command{Kind: CmdUndo}.Apply(s))
	assert.Empty(t, s.Game.Waste)
}

func TestApplyNewGame(t *testing.T) {
	s := newTestSession(t)
	Command{Kind: CmdDraw}.Apply(s)

	status := Command{Kind: CmdNewGame}.Apply(s)

	assert.Equal(t, "new game dealt", status)
	assert.Zero(t, s.Game.Moves)
	assert.Len(t, s.Game.Stock, 24)
}
