package main

import (
	"github.com/lox/klondike/cmd/klondike/shared"
	"github.com/lox/klondike/internal/config"
	"github.com/lox/klondike/internal/server"
)

// ServeCmd runs the web server for browser play
type ServeCmd struct {
	Addr   string `kong:"help='Server address (overrides config)'"`
	Config string `kong:"default='klondike.hcl',help='Path to HCL config file'"`
	Seed   *int64 `kong:"help='Deterministic shuffle seed for every session (optional)'"`
	Debug  bool   `kong:"help='Enable debug logging'"`
}

func (c *ServeCmd) Run() error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}

	debug := c.Debug || cfg.Server.LogLevel == "debug"
	logger := shared.SetupLogger(debug)

	addr := cfg.Server.Addr
	if c.Addr != "" {
		addr = c.Addr
	}

	opts := []server.ServerOption{server.WithRules(cfg.GameRules())}
	if c.Seed != nil {
		logger.Info("using deterministic seed", "seed", *c.Seed)
		opts = append(opts, server.WithSeed(*c.Seed))
	}

	s := server.NewServer(addr, logger, opts...)

	ctx := shared.SetupSignalHandler(logger)
	return s.Run(ctx)
}
