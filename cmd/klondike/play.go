package main

import (
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/klondike/cmd/klondike/shared"
	"github.com/lox/klondike/internal/config"
	"github.com/lox/klondike/internal/game"
	"github.com/lox/klondike/internal/stats"
	"github.com/lox/klondike/internal/tui"
)

// PlayCmd runs the interactive terminal game
type PlayCmd struct {
	Seed   *int64 `kong:"help='Deterministic shuffle seed (optional)'"`
	Config string `kong:"default='klondike.hcl',help='Path to HCL config file'"`
	Debug  bool   `kong:"help='Enable debug logging to klondike.log'"`
}

func (c *PlayCmd) Run() error {
	logger := shared.DiscardLogger()
	if c.Debug {
		fileLogger, closer, err := shared.SetupFileLogger("klondike.log", true)
		if err != nil {
			return err
		}
		defer closer.Close()
		logger = fileLogger
	}

	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}

	opts := []game.Option{
		game.WithRules(cfg.GameRules()),
		game.WithLogger(logger),
	}
	if c.Seed != nil {
		opts = append(opts, game.WithSeed(*c.Seed))
	}

	session := game.NewSession(quartz.NewReal(), opts...)
	logger.Info("starting interactive game", "seed", session.Game.Seed())

	return tui.Run(session, openTracker(logger), logger)
}

// openTracker loads per-user statistics. Play continues without them
// if the statistics file is unusable.
func openTracker(logger *log.Logger) *stats.Tracker {
	path, err := stats.DefaultPath()
	if err != nil {
		logger.Warn("statistics disabled", "error", err)
		return nil
	}
	tracker, err := stats.Open(path, logger)
	if err != nil {
		logger.Warn("statistics disabled", "path", path, "error", err)
		return nil
	}
	return tracker
}
