package game

import (
	"fmt"
	"time"

	"github.com/coder/quartz"
)

// Session couples a Game with the wall-clock reference for elapsed
// time. The clock is injected so tests can advance time deterministically;
// the engine itself never reads it during moves.
type Session struct {
	Game    *Game
	clock   quartz.Clock
	started time.Time
}

// NewSession creates a session around a freshly dealt game
func NewSession(clock quartz.Clock, opts ...Option) *Session {
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Session{
		Game:    New(opts...),
		clock:   clock,
		started: clock.Now(),
	}
}

// NewGame re-deals the game and restarts the elapsed-time reference
func (s *Session) NewGame() {
	s.Game.Reset()
	s.started = s.clock.Now()
}

// Elapsed returns the time since the current game was dealt
func (s *Session) Elapsed() time.Duration {
	return s.clock.Now().Sub(s.started)
}

// FormatElapsed renders the elapsed time as M:SS for display
func (s *Session) FormatElapsed() string {
	return FormatDuration(s.Elapsed())
}

// FormatDuration renders a duration as M:SS
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Seconds())
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
