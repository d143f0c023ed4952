package server

import (
	"encoding/json"
	"errors"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
	"github.com/lox/klondike/internal/game"
	"github.com/lox/klondike/internal/gameid"
)

// ErrConnectionClosed is returned when writing to a closed connection
var ErrConnectionClosed = errors.New("connection closed")

// Connection binds one WebSocket client to its own game session.
// Commands are read, applied and answered sequentially on a single
// goroutine, so the session never sees concurrent mutation.
type Connection struct {
	id      string
	conn    *websocket.Conn
	session *game.Session
	logger  *log.Logger
}

// NewConnection creates a connection wrapper around an upgraded socket
func NewConnection(conn *websocket.Conn, session *game.Session, logger *log.Logger) *Connection {
	id := gameid.New()
	return &Connection{
		id:      id,
		conn:    conn,
		session: session,
		logger:  logger.WithPrefix("conn").With("game", id, "remote", conn.RemoteAddr().String()),
	}
}

// ID returns the identifier assigned to this session
func (c *Connection) ID() string {
	return c.id
}

// Serve sends the initial state and then processes commands until the
// client disconnects.
func (c *Connection) Serve() {
	c.logger.Info("game session started", "seed", c.session.Game.Seed())
	defer func() {
		c.logger.Info("game session ended", "moves", c.session.Game.Moves, "score", c.session.Game.Score)
		if err := c.conn.Close(); err != nil {
			c.logger.Debug("close failed", "error", err)
		}
	}()

	if err := c.sendState("", false); err != nil {
		c.logger.Debug("failed to send initial state", "error", err)
		return
	}

	for {
		var msg Message
		if err := c.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Warn("unexpected disconnect", "error", err)
			}
			return
		}

		if err := c.handle(&msg); err != nil {
			c.logger.Debug("write failed", "error", err)
			return
		}
	}
}

// handle applies one command and replies with a full-state snapshot
func (c *Connection) handle(msg *Message) error {
	g := c.session.Game

	switch msg.Type {
	case MessageTypeNewGame:
		c.session.NewGame()
		return c.sendState("", false)

	case MessageTypeDraw:
		g.Draw()
		return c.sendState("", false)

	case MessageTypeMove:
		var move MoveData
		if err := json.Unmarshal(msg.Data, &move); err != nil {
			return c.sendError("malformed move payload")
		}
		src, err := game.ParsePileRef(move.Source)
		if err != nil {
			return c.sendState(err.Error(), true)
		}
		dst, err := game.ParsePileRef(move.Destination)
		if err != nil {
			return c.sendState(err.Error(), true)
		}
		if err := g.Move(src, move.CardIndex, dst); err != nil {
			return c.sendState(err.Error(), true)
		}
		return c.sendState("", false)

	case MessageTypeUndo:
		g.Undo()
		return c.sendState("", false)

	case MessageTypeState:
		return c.sendState("", false)

	default:
		return c.sendError("unknown command: " + string(msg.Type))
	}
}

func (c *Connection) sendState(reason string, rejected bool) error {
	state := StateFromSession(c.session)
	state.Rejected = rejected
	state.Reason = reason

	msg, err := NewMessage(MessageTypeGameState, state)
	if err != nil {
		return err
	}
	return c.conn.WriteJSON(msg)
}

func (c *Connection) sendError(text string) error {
	msg, err := NewMessage(MessageTypeError, ErrorData{Message: text})
	if err != nil {
		return err
	}
	return c.conn.WriteJSON(msg)
}
