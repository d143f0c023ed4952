package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lox/klondike/internal/game"
)

// CommandKind identifies a parsed player command
type CommandKind int

const (
	CmdDraw CommandKind = iota
	CmdMove
	CmdUndo
	CmdNewGame
	CmdQuit
)

// Command is one player action entered at the prompt
type Command struct {
	Kind      CommandKind
	Source    game.PileRef
	CardIndex int
	Dest      game.PileRef
}

// ParseCommand parses a prompt line:
//
//	d                draw from the stock
//	m <src> <dst>    move the top card of src onto dst
//	m <src> <n> <dst> move src's card number n (1-based from the bottom) and the run above it
//	u                undo
//	n                new game
//	q                quit
//
// Piles are named s, w, f1-f4 and t1-t7.
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(line)))
	if len(fields) == 0 {
		return Command{}, fmt.Errorf("empty command")
	}

	switch fields[0] {
	case "d", "draw":
		return Command{Kind: CmdDraw}, nil
	case "u", "undo":
		return Command{Kind: CmdUndo}, nil
	case "n", "new":
		return Command{Kind: CmdNewGame}, nil
	case "q", "quit":
		return Command{Kind: CmdQuit}, nil
	case "m", "move":
		return parseMove(fields[1:])
	default:
		return Command{}, fmt.Errorf("unknown command %q", fields[0])
	}
}

func parseMove(args []string) (Command, error) {
	if len(args) != 2 && len(args) != 3 {
		return Command{}, fmt.Errorf("usage: m <src> [card#] <dst>")
	}

	src, err := game.ParsePileRef(args[0])
	if err != nil {
		return Command{}, err
	}
	dst, err := game.ParsePileRef(args[len(args)-1])
	if err != nil {
		return Command{}, err
	}

	cmd := Command{Kind: CmdMove, Source: src, CardIndex: -1, Dest: dst}
	if len(args) == 3 {
		n, err := strconv.Atoi(args[1])
		if err != nil || n < 1 {
			return Command{}, fmt.Errorf("card number must be a positive integer, got %q", args[1])
		}
		cmd.CardIndex = n - 1
	}
	return cmd, nil
}

// Apply executes a command against the session and returns a status
// line for the prompt. Quit commands do nothing here; the model handles
// them.
func (c Command) Apply(s *game.Session) string {
	g := s.Game

	switch c.Kind {
	case CmdDraw:
		switch g.Draw() {
		case game.DrewCard:
			return fmt.Sprintf("drew %s", g.Waste[len(g.Waste)-1])
		case game.RecycledWaste:
			return "recycled waste into stock"
		default:
			return "nothing to draw"
		}

	case CmdMove:
		index := c.CardIndex
		if index < 0 {
			// Default to the top card of the source pile.
			srcLen := len(*pileOf(g, c.Source))
			if srcLen == 0 {
				return ErrorStyle.Render("illegal move")
			}
			index = srcLen - 1
		}
		if err := g.Move(c.Source, index, c.Dest); err != nil {
			return ErrorStyle.Render(err.Error())
		}
		return fmt.Sprintf("moved %s → %s", c.Source, c.Dest)

	case CmdUndo:
		if !g.Undo() {
			return "nothing to undo"
		}
		return "undone"

	case CmdNewGame:
		s.NewGame()
		return "new game dealt"

	default:
		return ""
	}
}

func pileOf(g *game.Game, ref game.PileRef) *game.Pile {
	switch ref.Kind {
	case game.Stock:
		return &g.Stock
	case game.Waste:
		return &g.Waste
	case game.Foundation:
		return &g.Foundations[ref.Index]
	default:
		return &g.Tableau[ref.Index]
	}
}
