package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/lox/klondike/internal/game"
)

// Config represents the complete klondike configuration
type Config struct {
	Server ServerSettings `hcl:"server,block"`
	Rules  *RulesSettings `hcl:"rules,block"`
}

// ServerSettings contains the web server configuration
type ServerSettings struct {
	Addr     string `hcl:"addr,optional"`
	LogLevel string `hcl:"log_level,optional"`
}

// RulesSettings tunes the scoring and undo behaviour
type RulesSettings struct {
	FoundationPoints  *int `hcl:"foundation_points,optional"`
	TableauPoints     *int `hcl:"tableau_points,optional"`
	UndoDepth         *int `hcl:"undo_depth,optional"`
	RecycleCountsMove bool `hcl:"recycle_counts_move,optional"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Server: ServerSettings{
			Addr:     ":8080",
			LogLevel: "info",
		},
	}
}

// Load reads configuration from an HCL file. A missing file yields the
// defaults rather than an error.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.Server.LogLevel == "" {
		cfg.Server.LogLevel = "info"
	}
	return &cfg, nil
}

// GameRules resolves the configured rules against the engine defaults
func (c *Config) GameRules() game.Rules {
	rules := game.DefaultRules()
	if c.Rules == nil {
		return rules
	}
	if c.Rules.FoundationPoints != nil {
		rules.FoundationPoints = *c.Rules.FoundationPoints
	}
	if c.Rules.TableauPoints != nil {
		rules.TableauPoints = *c.Rules.TableauPoints
	}
	if c.Rules.UndoDepth != nil {
		rules.UndoDepth = *c.Rules.UndoDepth
	}
	rules.RecycleCountsMove = c.Rules.RecycleCountsMove
	return rules
}
