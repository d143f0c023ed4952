package game

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lox/klondike/internal/deck"
)

// Rules holds the tunable scoring and bookkeeping parameters. The
// defaults match the classic variant; RecycleCountsMove is explicit
// because recycling the waste back into the stock is a reset-for-redraw
// rather than a play, and by default does not count as a move.
type Rules struct {
	FoundationPoints  int
	TableauPoints     int
	UndoDepth         int
	RecycleCountsMove bool
}

// DefaultRules returns the standard scoring rules
func DefaultRules() Rules {
	return Rules{
		FoundationPoints: 10,
		TableauPoints:    5,
		UndoDepth:        5,
	}
}

// Option configures a Game at construction time
type Option func(*Game)

// WithSeed makes the shuffle deterministic for the given seed
func WithSeed(seed int64) Option {
	return func(g *Game) {
		g.seed = seed
		g.hasSeed = true
	}
}

// WithDeck bypasses shuffling entirely and deals the provided deck
// as-is. The injection path for reproducible tests.
func WithDeck(cards []deck.Card) Option {
	return func(g *Game) {
		g.fixedDeck = make([]deck.Card, len(cards))
		copy(g.fixedDeck, cards)
	}
}

// WithRules overrides the default scoring rules
func WithRules(rules Rules) Option {
	return func(g *Game) {
		g.rules = rules
	}
}

// WithLogger attaches a logger for move-level debug output
func WithLogger(logger *log.Logger) Option {
	return func(g *Game) {
		g.logger = logger
	}
}

func defaultSeed() int64 {
	return time.Now().UnixNano()
}

func discardLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}
