package server

import (
	"encoding/json"
	"time"

	"github.com/lox/klondike/internal/deck"
	"github.com/lox/klondike/internal/game"
)

// MessageType identifies a protocol message
type MessageType string

const (
	// Client → server commands
	MessageTypeNewGame MessageType = "new_game"
	MessageTypeDraw    MessageType = "draw"
	MessageTypeMove    MessageType = "move"
	MessageTypeUndo    MessageType = "undo"
	MessageTypeState   MessageType = "state"

	// Server → client
	MessageTypeGameState MessageType = "game_state"
	MessageTypeError     MessageType = "error"
)

// Message represents the base WebSocket message structure
type Message struct {
	Type      MessageType     `json:"type"`
	Data      json.RawMessage `json:"data,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}

// NewMessage creates a new message with the current timestamp
func NewMessage(messageType MessageType, data interface{}) (*Message, error) {
	var dataBytes json.RawMessage
	if data != nil {
		var err error
		dataBytes, err = json.Marshal(data)
		if err != nil {
			return nil, err
		}
	}

	return &Message{
		Type:      messageType,
		Data:      dataBytes,
		Timestamp: time.Now(),
	}, nil
}

// MoveData is the payload of a "move" command. Piles are named with
// the short refs the engine parses: s, w, f1-f4, t1-t7.
type MoveData struct {
	Source      string `json:"source"`
	CardIndex   int    `json:"cardIndex"`
	Destination string `json:"destination"`
}

// CardView is the wire representation of a single card
type CardView struct {
	Suit   string `json:"suit"`
	Rank   string `json:"rank"`
	Color  string `json:"color"`
	FaceUp bool   `json:"faceUp"`
}

// StateData is the full-board snapshot sent after every command. The
// renderer re-reads everything and redraws; there is no diff contract.
type StateData struct {
	Stock       []CardView   `json:"stock"`
	Waste       []CardView   `json:"waste"`
	Foundations [][]CardView `json:"foundations"`
	Tableau     [][]CardView `json:"tableau"`
	Moves       int          `json:"moves"`
	Score       int          `json:"score"`
	Elapsed     string       `json:"elapsed"`
	CanUndo     bool         `json:"canUndo"`
	Won         bool         `json:"won"`
	Rejected    bool         `json:"rejected,omitempty"`
	Reason      string       `json:"reason,omitempty"`
}

// ErrorData reports a malformed request (not an illegal move; those come
// back as a Rejected state snapshot)
type ErrorData struct {
	Message string `json:"message"`
}

func cardView(c deck.Card) CardView {
	return CardView{
		Suit:   c.Suit.String(),
		Rank:   c.Rank.String(),
		Color:  c.Color().String(),
		FaceUp: c.FaceUp,
	}
}

func pileView(p game.Pile) []CardView {
	views := make([]CardView, len(p))
	for i, c := range p {
		views[i] = cardView(c)
	}
	return views
}

// StateFromSession builds the full snapshot for a session
func StateFromSession(s *game.Session) StateData {
	g := s.Game

	state := StateData{
		Stock:       pileView(g.Stock),
		Waste:       pileView(g.Waste),
		Foundations: make([][]CardView, game.NumFoundations),
		Tableau:     make([][]CardView, game.NumTableaus),
		Moves:       g.Moves,
		Score:       g.Score,
		Elapsed:     s.FormatElapsed(),
		CanUndo:     g.CanUndo(),
		Won:         g.IsWon(),
	}
	for i, f := range g.Foundations {
		state.Foundations[i] = pileView(f)
	}
	for i, t := range g.Tableau {
		state.Tableau[i] = pileView(t)
	}
	return state
}
