// Package experiments plays batches of games between configured seats.
package experiments

import (
	"context"
	"fmt"
	"time"

	"splendor/agent"
	"splendor/config"
	"splendor/engine"
	"splendor/experiments/metrics"
	"splendor/game"
	"splendor/searcher"

	"github.com/coder/quartz"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
)

// Report summarizes a run.
type Report struct {
	RunID  string
	Dir    string // Empty when no records were written
	Games  int
	Halted int
	Wins   map[string]int // Per seat name
	Turns  float64        // Mean over finished games
}

type Option func(r *runner)

// WithClock replaces the wall clock used for game timings.
func WithClock(clock quartz.Clock) Option {
	return func(r *runner) {
		if clock != nil {
			r.clock = clock
		}
	}
}

// WithoutRecords skips collecting and writing per-game records.
func WithoutRecords() Option {
	return func(r *runner) {
		r.records = false
	}
}

type runner struct {
	cfg     *config.Config
	clock   quartz.Clock
	records bool
}

// Run plays cfg.Simulation.Games games, at most Concurrency at a time. Every
// game gets its own agents, so searches never share pools. The first seat
// rotates from game to game.
func Run(ctx context.Context, cfg *config.Config, options ...Option) (Report, error) {
	if err := cfg.Validate(); err != nil {
		return Report{}, fmt.Errorf("invalid config: %w", err)
	}
	r := &runner{cfg: cfg, clock: quartz.NewReal(), records: true}
	for _, option := range options {
		option(r)
	}

	sim := cfg.Simulation
	report := Report{RunID: uuid.NewString(), Wins: map[string]int{}}
	collector := metrics.NewDummyCollector()
	if r.records {
		collector = metrics.NewCollector()
	}
	start := r.clock.Now()

	log.Info().Str("run", report.RunID).Int("games", sim.Games).Int("players", sim.Players).Msg("starting simulation")

	results := make(chan outcome, sim.Concurrency)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(sim.Concurrency)
	go func() {
		for i := 0; i < sim.Games; i++ {
			id := i + 1
			g.Go(func() error {
				out, err := r.play(ctx, id)
				if err != nil {
					return fmt.Errorf("game %d: %w", id, err)
				}
				collector.Add(out.id, out.seed, out.seats, out.result)
				select {
				case results <- out:
					return nil
				case <-ctx.Done():
					return ctx.Err()
				}
			})
		}
		g.Wait()
		close(results)
	}()

	finishedTurns := 0
	for out := range results {
		report.Games++
		if out.result.Halted {
			report.Halted++
		} else {
			report.Wins[out.seats[out.result.Winner]]++
			finishedTurns += out.result.Turns
		}
		log.Info().Int("game", out.id).Int("winner", out.result.Winner).Int("turns", out.result.Turns).Msg("completed game")
	}
	if err := g.Wait(); err != nil {
		return report, err
	}
	if finished := report.Games - report.Halted; finished > 0 {
		report.Turns = float64(finishedTurns) / float64(finished)
	}

	log.Info().Str("run", report.RunID).Interface("wins", report.Wins).Int("halted", report.Halted).Msg("completed simulation")

	if !r.records {
		return report, nil
	}
	dir, err := r.write(collector, report.RunID, start)
	report.Dir = dir
	return report, err
}

type outcome struct {
	id     int
	seed   uint64
	seats  []string
	result engine.Result
}

func (r *runner) play(ctx context.Context, id int) (outcome, error) {
	sim := r.cfg.Simulation
	seed := uint64(sim.Seed) + uint64(id)
	out := outcome{id: id, seed: seed, seats: make([]string, sim.Players)}

	agents := make([]agent.Agent, sim.Players)
	for p := range agents {
		seat := r.cfg.Seat(p + id - 1)
		out.seats[p] = seat.Name
		a, err := agent.New(seat.Spec(),
			searcher.WithRand(rand.New(rand.NewSource(seed*31+uint64(p)))),
			searcher.WithClock(r.clock),
			searcher.WithMetrics(),
		)
		if err != nil {
			return out, err
		}
		agents[p] = a
	}

	options := []engine.Option{engine.WithMaxTurns(sim.MaxTurns), engine.WithClock(r.clock)}
	if sim.Verify {
		options = append(options, engine.WithVerify())
	}
	g := game.NewGame(sim.Players, rand.New(rand.NewSource(seed)))
	res, err := engine.New(g, agents, options...).Run(ctx)
	out.result = res
	return out, err
}

func (r *runner) write(collector metrics.Collector, runID string, start time.Time) (string, error) {
	writer, err := metrics.NewWriter(r.cfg.Simulation.Output, runID, start)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	seats := make([]metrics.SeatConfig, len(r.cfg.Seats))
	for i, s := range r.cfg.Seats {
		seats[i] = metrics.SeatConfig{Name: s.Name, Strategy: s.Strategy, Depth: s.Depth}
	}
	if err := writer.WriteSeatConfigs(seats); err != nil {
		return writer.Dir(), fmt.Errorf("failed to store seat configs: %w", err)
	}

	games := collector.Games()
	if err := writer.WriteGameRecords(games); err != nil {
		return writer.Dir(), fmt.Errorf("failed to write game records: %w", err)
	}
	if err := writer.WriteMoveRecords(collector.Moves()); err != nil {
		return writer.Dir(), fmt.Errorf("failed to write move records: %w", err)
	}

	winners := collector.Winners()
	for _, record := range games {
		if err := writer.WriteGameLog(record, winners[record.ID]); err != nil {
			return writer.Dir(), fmt.Errorf("failed to write log of game %d: %w", record.ID, err)
		}
	}

	log.Info().Str("dir", writer.Dir()).Msg("stored experiment records")
	return writer.Dir(), nil
}
