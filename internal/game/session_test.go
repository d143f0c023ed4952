package game

import (
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionElapsed(t *testing.T) {
	clock := quartz.NewMock(t)
	s := NewSession(clock, WithSeed(1))

	assert.Equal(t, time.Duration(0), s.Elapsed())
	assert.Equal(t, "0:00", s.FormatElapsed())

	clock.Advance(65 * time.Second)
	assert.Equal(t, 65*time.Second, s.Elapsed())
	assert.Equal(t, "1:05", s.FormatElapsed())
}

func TestSessionNewGameRestartsClock(t *testing.T) {
	clock := quartz.NewMock(t)
	s := NewSession(clock, WithSeed(1))

	s.Game.Draw()
	clock.Advance(30 * time.Second)
	require.Equal(t, 30*time.Second, s.Elapsed())

	s.NewGame()

	assert.Equal(t, time.Duration(0), s.Elapsed())
	assert.Zero(t, s.Game.Moves)
	assert.False(t, s.Game.CanUndo())
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0:00"},
		{9 * time.Second, "0:09"},
		{59 * time.Second, "0:59"},
		{60 * time.Second, "1:00"},
		{10*time.Minute + 7*time.Second, "10:07"},
		{-5 * time.Second, "0:00"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDuration(tt.d), "duration %s", tt.d)
	}
}
