package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"splendor/agent"
	"splendor/config"
	"splendor/experiments"
	"splendor/logger"
	"splendor/meta"
	"splendor/searcher"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

var cli struct {
	Config   string `help:"HCL config file; missing means defaults" default:"splendor.hcl" type:"path"`
	LogLevel string `help:"log level, overrides the config file"`
	Pretty   bool   `help:"human-readable logs"`

	Simulate SimulateCmd `cmd:"" help:"play a batch of games between configured seats"`
	Move     MoveCmd     `cmd:"" help:"read a search request as JSON on stdin and write the response"`
}

// SimulateCmd flags override the config file when set.
type SimulateCmd struct {
	Games       int      `help:"number of games"`
	Players     int      `help:"players per game (2-4)"`
	Concurrency int      `help:"games played at once"`
	Seed        int      `help:"base seed; game n uses seed+n"`
	MaxTurns    int      `help:"turn limit per game"`
	Verify      bool     `help:"check coin conservation after every turn"`
	Output      string   `help:"directory for records"`
	Seat        []string `help:"seat as name=strategy[:depth], repeatable; replaces the configured seats"`
	NoRecords   bool     `help:"do not write records"`
}

type MoveCmd struct {
	Strategy string `help:"search strategy" default:"alphabeta" enum:"random,alphabeta,maxn,weighted"`
	Depth    int    `help:"look-ahead depth; a request depth wins" default:"2"`
	Seed     int64  `help:"random seed; 0 uses time seed" default:"0"`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("splendor"),
		kong.Description("Game engine and look-ahead agents for a gem-trading board game"),
		kong.UsageOnError(),
	)

	cfg, err := config.Load(cli.Config)
	if err != nil {
		logger.Init(nil, meta.LogLevel, cli.Pretty)
		log.Fatal().Err(err).Str("file", cli.Config).Msg("failed to load config")
	}
	level := cfg.Log.Level
	if cli.LogLevel != "" {
		level = cli.LogLevel
	}
	logger.Init(nil, level, cli.Pretty || cfg.Log.Pretty)

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch ctx.Command() {
	case "simulate":
		err = cli.Simulate.Run(runCtx, cfg)
	case "move":
		err = cli.Move.Run(os.Stdin, os.Stdout)
	default:
		err = fmt.Errorf("unknown command: %s", ctx.Command())
	}
	if err != nil {
		log.Fatal().Err(err).Msgf("%s failed", ctx.Command())
	}
}

func (c *SimulateCmd) Run(ctx context.Context, cfg *config.Config) error {
	if err := c.apply(cfg); err != nil {
		return err
	}
	var options []experiments.Option
	if c.NoRecords {
		options = append(options, experiments.WithoutRecords())
	}

	report, err := experiments.Run(ctx, cfg, options...)
	if err != nil {
		return err
	}
	log.Info().
		Str("run", report.RunID).
		Int("games", report.Games).
		Int("halted", report.Halted).
		Float64("mean_turns", report.Turns).
		Interface("wins", report.Wins).
		Str("dir", report.Dir).
		Msg("simulation finished")
	return nil
}

func (c *SimulateCmd) apply(cfg *config.Config) error {
	s := cfg.Simulation
	if c.Games > 0 {
		s.Games = c.Games
	}
	if c.Players > 0 {
		s.Players = c.Players
	}
	if c.Concurrency > 0 {
		s.Concurrency = c.Concurrency
	}
	if c.Seed != 0 {
		s.Seed = c.Seed
	}
	if c.MaxTurns > 0 {
		s.MaxTurns = c.MaxTurns
	}
	if c.Verify {
		s.Verify = true
	}
	if c.Output != "" {
		s.Output = c.Output
	}
	if len(c.Seat) == 0 {
		return nil
	}

	seats := make([]config.Seat, 0, len(c.Seat))
	for _, raw := range c.Seat {
		seat, err := parseSeat(raw)
		if err != nil {
			return err
		}
		seats = append(seats, seat)
	}
	cfg.Seats = seats
	return nil
}

// parseSeat reads name=strategy[:depth].
func parseSeat(raw string) (config.Seat, error) {
	name, spec, ok := strings.Cut(raw, "=")
	if !ok || name == "" || spec == "" {
		return config.Seat{}, fmt.Errorf("seat %q: want name=strategy[:depth]", raw)
	}
	seat := config.Seat{Name: name, Strategy: spec, Depth: meta.Depth}
	if strategy, depth, ok := strings.Cut(spec, ":"); ok {
		d, err := strconv.Atoi(depth)
		if err != nil || d < 1 {
			return config.Seat{}, fmt.Errorf("seat %q: bad depth %q", raw, depth)
		}
		seat.Strategy, seat.Depth = strategy, d
	}
	if seat.Strategy == agent.StrategyRandom {
		seat.Depth = 0
	}
	return seat, nil
}

func (c *MoveCmd) Run(in io.Reader, out io.Writer) error {
	var req agent.Request
	if err := json.NewDecoder(in).Decode(&req); err != nil {
		return fmt.Errorf("failed to decode request: %w", err)
	}

	options := []searcher.Option{searcher.WithMetrics()}
	if c.Seed != 0 {
		options = append(options, searcher.WithRand(rand.New(rand.NewSource(uint64(c.Seed)))))
	}
	a, err := agent.New(agent.Spec{Strategy: c.Strategy, Depth: c.Depth}, options...)
	if err != nil {
		return err
	}

	resp, err := agent.NewWorker(a).Handle(req)
	if err != nil {
		return err
	}
	log.Debug().Bool("found", resp.Found).Stringer("action", resp.Action).Int64("nodes", resp.Metrics.Nodes).Msg("answered request")

	if err := json.NewEncoder(out).Encode(resp); err != nil {
		return fmt.Errorf("failed to encode response: %w", err)
	}
	return nil
}
