package tui

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/klondike/internal/deck"
	"github.com/lox/klondike/internal/game"
	"github.com/lox/klondike/internal/stats"
)

func TestModelTracksWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.json")
	logger := log.New(io.Discard)

	tracker, err := stats.Open(path, logger)
	require.NoError(t, err)

	session := game.NewSession(quartz.NewMock(t), game.WithLogger(logger))
	m := NewModel(session, tracker, logger)
	assert.Equal(t, 1, tracker.Snapshot().GamesStarted)
	assert.Equal(t, 0, tracker.Snapshot().GamesWon)

	// move every card to the foundations
	for i, suit := range deck.Suits {
		var pile game.Pile
		for _, rank := range deck.Ranks {
			pile = append(pile, deck.Card{Suit: suit, Rank: rank, FaceUp: true})
		}
		session.Game.Foundations[i] = pile
	}
	require.True(t, session.Game.IsWon())

	m.recordWin()
	m.recordWin()
	assert.Equal(t, 1, tracker.Snapshot().GamesWon)
}
