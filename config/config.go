// Package config loads simulation settings from an HCL file.
package config

import (
	"errors"
	"fmt"
	"os"

	"splendor/agent"
	"splendor/game"
	"splendor/meta"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config is the complete simulation configuration.
type Config struct {
	Simulation *Simulation `hcl:"simulation,block"`
	Seats      []Seat      `hcl:"seat,block"`
	Log        *Log        `hcl:"log,block"`
}

type Simulation struct {
	Games       int    `hcl:"games,optional"`
	Players     int    `hcl:"players,optional"`
	Concurrency int    `hcl:"concurrency,optional"`
	Seed        int    `hcl:"seed,optional"`
	MaxTurns    int    `hcl:"max_turns,optional"`
	Verify      bool   `hcl:"verify,optional"`
	Output      string `hcl:"output,optional"`
}

// Seat configures the agent of one player. Seats are reused in order when
// there are more players than seats.
type Seat struct {
	Name     string `hcl:"name,label"`
	Strategy string `hcl:"strategy"`
	Depth    int    `hcl:"depth,optional"`
}

type Log struct {
	Level  string `hcl:"level,optional"`
	Pretty bool   `hcl:"pretty,optional"`
}

func (s Seat) Spec() agent.Spec {
	return agent.Spec{Strategy: s.Strategy, Depth: s.Depth}
}

// Default returns an alpha-beta agent against a random one.
func Default() *Config {
	c := &Config{
		Seats: []Seat{
			{Name: "searcher", Strategy: meta.Strategy, Depth: meta.Depth},
			{Name: "baseline", Strategy: agent.StrategyRandom},
		},
	}
	c.applyDefaults()
	return c
}

// Load reads filename, returning the defaults when it does not exist.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var c Config
	diags = gohcl.DecodeBody(file.Body, nil, &c)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	c.applyDefaults()
	return &c, nil
}

func (c *Config) applyDefaults() {
	if c.Simulation == nil {
		c.Simulation = &Simulation{}
	}
	if c.Log == nil {
		c.Log = &Log{}
	}
	if len(c.Seats) == 0 {
		c.Seats = Default().Seats
	}

	s := c.Simulation
	if s.Games == 0 {
		s.Games = meta.Games
	}
	if s.Players == 0 {
		s.Players = max(len(c.Seats), meta.Players)
	}
	if s.Concurrency == 0 {
		s.Concurrency = meta.Concurrency
	}
	if s.Seed == 0 {
		s.Seed = meta.Seed
	}
	if s.MaxTurns == 0 {
		s.MaxTurns = meta.MaxTurns
	}
	if s.Output == "" {
		s.Output = meta.OutputDir
	}
	if c.Log.Level == "" {
		c.Log.Level = meta.LogLevel
	}

	for i := range c.Seats {
		if c.Seats[i].Strategy != agent.StrategyRandom && c.Seats[i].Depth == 0 {
			c.Seats[i].Depth = meta.Depth
		}
	}
}

// Validate reports settings no simulation can run with.
func (c *Config) Validate() error {
	s := c.Simulation
	if s.Players < game.MinPlayers || s.Players > game.MaxPlayers {
		return fmt.Errorf("players must be between %d and %d, got %d", game.MinPlayers, game.MaxPlayers, s.Players)
	}
	if s.Games < 1 {
		return fmt.Errorf("games must be positive, got %d", s.Games)
	}
	if s.Concurrency < 1 {
		return fmt.Errorf("concurrency must be positive, got %d", s.Concurrency)
	}
	if len(c.Seats) == 0 {
		return errors.New("at least one seat is required")
	}
	for _, seat := range c.Seats {
		if _, err := agent.New(seat.Spec()); err != nil {
			return fmt.Errorf("seat %q: %w", seat.Name, err)
		}
	}
	return nil
}

// Seat returns the seat of player p.
func (c *Config) Seat(p int) Seat {
	return c.Seats[p%len(c.Seats)]
}
