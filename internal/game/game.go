package game

import (
	"errors"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/lox/klondike/internal/deck"
	"github.com/lox/klondike/internal/randutil"
)

var (
	// ErrIllegalMove is returned when the source/destination violate the
	// move legality rules. The game is left untouched.
	ErrIllegalMove = errors.New("illegal move")

	// ErrNoSuchPile is returned when a pile ref or card index resolves to
	// nothing on the board, e.g. a drop into the gap between two slots.
	ErrNoSuchPile = errors.New("no such pile")
)

// Game owns the full Klondike board plus move and score bookkeeping.
// It is the single mutation point: frontends issue commands (Draw,
// Move, Undo, Reset) and re-read the whole state afterwards. Every
// command validates first and mutates only on success; rejected
// commands count nothing, score nothing and push no history.
//
// Game is not safe for concurrent use; each session owns exactly one.
type Game struct {
	Stock       Pile
	Waste       Pile
	Foundations [NumFoundations]Pile
	Tableau     [NumTableaus]Pile

	Moves int
	Score int

	rules     Rules
	history   *History
	logger    *log.Logger
	rng       *rand.Rand
	seed      int64
	hasSeed   bool
	fixedDeck []deck.Card
}

// New creates a game with a fresh shuffled deal
func New(opts ...Option) *Game {
	g := &Game{
		rules:  DefaultRules(),
		logger: discardLogger(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if !g.hasSeed {
		g.seed = defaultSeed()
	}
	g.rng = randutil.New(g.seed)
	g.history = NewHistory(g.rules.UndoDepth)
	g.Reset()
	return g
}

// Rules returns the rules the game was built with
func (g *Game) Rules() Rules {
	return g.rules
}

// Seed returns the shuffle seed for this game
func (g *Game) Seed() int64 {
	return g.seed
}

// Reset discards the current board and deals a new game: fresh shuffle
// (or the injected deck), empty waste and foundations, cleared history,
// zero moves and score.
func (g *Game) Reset() {
	var cards []deck.Card
	if g.fixedDeck != nil {
		cards = g.fixedDeck
	} else {
		cards = deck.Shuffle(deck.New(), g.rng)
	}

	g.Stock, g.Tableau = Deal(cards)
	g.Waste = Pile{}
	for i := range g.Foundations {
		g.Foundations[i] = Pile{}
	}
	g.Moves = 0
	g.Score = 0
	g.history.Clear()

	g.logger.Debug("dealt new game", "seed", g.seed, "stock", len(g.Stock))
}

// DrawOutcome describes what a Draw call did
type DrawOutcome int

const (
	// DrewCard means the stock's top card was flipped onto the waste
	DrewCard DrawOutcome = iota
	// RecycledWaste means the empty stock was refilled from the waste
	RecycledWaste
	// NothingToDraw means stock and waste were both empty; no-op
	NothingToDraw
)

// Draw pops the top stock card face-up onto the waste and counts a
// move. With an empty stock it instead recycles the waste back into the
// stock face-down, reversed so the original draw order repeats; the
// recycle counts as a move only when the rules say so.
func (g *Game) Draw() DrawOutcome {
	switch {
	case !g.Stock.Empty():
		g.pushSnapshot()
		card := g.Stock[len(g.Stock)-1]
		g.Stock = g.Stock[:len(g.Stock)-1]
		g.Waste = append(g.Waste, card.FacedUp())
		g.Moves++
		g.logger.Debug("drew from stock", "card", card.FacedUp(), "stock", len(g.Stock))
		return DrewCard

	case !g.Waste.Empty():
		g.pushSnapshot()
		for i := len(g.Waste) - 1; i >= 0; i-- {
			g.Stock = append(g.Stock, g.Waste[i].FacedDown())
		}
		g.Waste = Pile{}
		if g.rules.RecycleCountsMove {
			g.Moves++
		}
		g.logger.Debug("recycled waste into stock", "stock", len(g.Stock))
		return RecycledWaste

	default:
		return NothingToDraw
	}
}

// Move transfers the card at cardIndex in the source pile, together
// with everything above it, onto the destination pile. Single cards may
// move from the waste or a tableau to a foundation or tableau; runs
// move only between tableaus. On success the newly exposed source
// tableau card is flipped face-up, the move is counted and the score
// credited. On failure nothing changes.
func (g *Game) Move(src PileRef, cardIndex int, dst PileRef) error {
	if !src.Valid() || !dst.Valid() {
		return ErrNoSuchPile
	}

	// Stock cards only move via Draw; foundation cards never move at
	// all, which also closes the foundation-to-foundation score farm.
	if src.Kind == Stock || src.Kind == Foundation {
		return ErrIllegalMove
	}
	if src == dst {
		return ErrIllegalMove
	}

	source := g.pile(src)
	if cardIndex < 0 || cardIndex >= len(*source) {
		return ErrNoSuchPile
	}
	moving := (*source)[cardIndex:]

	// The waste only ever exposes its top card.
	if src.Kind == Waste && len(moving) != 1 {
		return ErrIllegalMove
	}

	var points int
	switch dst.Kind {
	case Foundation:
		if len(moving) != 1 || !moving[0].FaceUp {
			return ErrIllegalMove
		}
		if !CanMoveToFoundation(moving[0], g.Foundations[dst.Index]) {
			return ErrIllegalMove
		}
		points = g.rules.FoundationPoints

	case Tableau:
		if !isMovableRun(moving) {
			return ErrIllegalMove
		}
		if !CanMoveToTableau(moving[0], g.Tableau[dst.Index]) {
			return ErrIllegalMove
		}
		points = g.rules.TableauPoints

	default:
		return ErrIllegalMove
	}

	g.pushSnapshot()

	dest := g.pile(dst)
	*dest = append(*dest, moving...)
	*source = (*source)[:cardIndex]

	if src.Kind == Tableau && !source.Empty() {
		top := (*source)[len(*source)-1]
		(*source)[len(*source)-1] = top.FacedUp()
	}

	g.Moves++
	g.Score += points
	g.logger.Debug("moved cards",
		"from", src, "to", dst, "count", len(moving), "points", points, "score", g.Score)
	return nil
}

// CanUndo reports whether an undo is available; frontends use this to
// disable the control rather than issuing a command that would no-op.
func (g *Game) CanUndo() bool {
	return !g.history.Empty()
}

// Undo restores the piles and score from the most recent snapshot and
// decrements the visible move counter by one. With no history it is a
// no-op and returns false.
func (g *Game) Undo() bool {
	snap, ok := g.history.Pop()
	if !ok {
		return false
	}

	g.Stock = snap.Stock
	g.Waste = snap.Waste
	g.Foundations = snap.Foundations
	g.Tableau = snap.Tableau
	g.Score = snap.Score

	// The move counter steps back by one rather than restoring the
	// snapshot's raw count; this is the counter the UI displays.
	if g.Moves > 0 {
		g.Moves--
	}

	g.logger.Debug("undid move", "moves", g.Moves, "score", g.Score)
	return true
}

// IsWon reports whether all 52 cards have reached the foundations
func (g *Game) IsWon() bool {
	total := 0
	for _, f := range g.Foundations {
		total += len(f)
	}
	return total == deck.Size
}

// HistoryLen returns the number of undoable moves
func (g *Game) HistoryLen() int {
	return g.history.Len()
}

func (g *Game) pile(ref PileRef) *Pile {
	switch ref.Kind {
	case Stock:
		return &g.Stock
	case Waste:
		return &g.Waste
	case Foundation:
		return &g.Foundations[ref.Index]
	default:
		return &g.Tableau[ref.Index]
	}
}

func (g *Game) pushSnapshot() {
	snap := Snapshot{
		Stock: g.Stock.Clone(),
		Waste: g.Waste.Clone(),
		Moves: g.Moves,
		Score: g.Score,
	}
	for i := range g.Foundations {
		snap.Foundations[i] = g.Foundations[i].Clone()
	}
	for i := range g.Tableau {
		snap.Tableau[i] = g.Tableau[i].Clone()
	}
	g.history.Push(snap)
}
