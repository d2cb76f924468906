// Package match plays automated duels between two bots and aggregates the
// outcomes of many games.
package match

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"sync"

	log "github.com/sirupsen/logrus"

	"duel-ca/internal/bot"
	"duel-ca/pkg/duel"
)

// Result is the outcome of a single game.
type Result struct {
	Game        int
	Seed        int64
	Winner      duel.Winner
	Generated   duel.Counters
	Generations int
	// Finished is false when the step cap was hit before the game ended.
	Finished bool
}

// Play runs one game: each tick both bots paint a cluster while they have
// budget, taking turns on who paints first, and then the engine steps. Play
// stops when the game ends or after maxSteps ticks.
func Play(cfg duel.Config, seed int64, maxSteps int, opts bot.Options) (Result, error) {
	engine, err := duel.New(cfg)
	if err != nil {
		return Result{}, fmt.Errorf("match: %w", err)
	}
	red := bot.New(duel.ColorA, seed*2+1, opts)
	blue := bot.New(duel.ColorB, seed*2+2, opts)
	players := [2]*bot.Bot{red, blue}

	for tick := 0; tick < maxSteps && !engine.Ended(); tick++ {
		first := tick % 2
		for i := 0; i < 2; i++ {
			p := players[(first+i)%2]
			if engine.Remaining(p.Color()) > 0 {
				p.Cluster(engine)
			}
		}
		engine.Step()
	}

	return Result{
		Seed:        seed,
		Winner:      engine.Winner(),
		Generated:   engine.Generated(),
		Generations: engine.Generation(),
		Finished:    engine.Ended(),
	}, nil
}

// Options configures a batch of games.
type Options struct {
	Config   duel.Config
	Bot      bot.Options
	Games    int
	Workers  int
	Seed     int64
	MaxSteps int
	Logger   log.FieldLogger
}

// Summary aggregates a batch of games.
type Summary struct {
	Results    []Result
	RedWins    int
	BlueWins   int
	Draws      int
	Unfinished int
}

// MeanGenerations returns the average game length over all results.
func (s Summary) MeanGenerations() float64 {
	if len(s.Results) == 0 {
		return 0
	}
	total := 0
	for _, r := range s.Results {
		total += r.Generations
	}
	return float64(total) / float64(len(s.Results))
}

func (s *Summary) add(r Result) {
	s.Results = append(s.Results, r)
	if !r.Finished {
		s.Unfinished++
		return
	}
	switch r.Winner {
	case duel.WinnerColorA:
		s.RedWins++
	case duel.WinnerColorB:
		s.BlueWins++
	case duel.WinnerDraw:
		s.Draws++
	}
}

// Sweep plays opts.Games games on a pool of workers. Game i uses seed
// opts.Seed+i, so a sweep is reproducible regardless of worker count.
// Results are ordered by game index.
func Sweep(ctx context.Context, opts Options) (Summary, error) {
	if err := opts.Config.Validate(); err != nil {
		return Summary{}, fmt.Errorf("match: %w", err)
	}
	if opts.Games <= 0 {
		return Summary{}, nil
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > opts.Games {
		workers = opts.Games
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.StandardLogger()
	}

	jobs := make(chan int)
	results := make(chan Result)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for game := range jobs {
				res, err := Play(opts.Config, opts.Seed+int64(game), opts.MaxSteps, opts.Bot)
				if err != nil {
					logger.WithError(err).WithField("game", game).Error("game failed")
					continue
				}
				res.Game = game
				select {
				case results <- res:
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		defer close(jobs)
		for game := 0; game < opts.Games; game++ {
			select {
			case jobs <- game:
			case <-ctx.Done():
				return
			}
		}
	}()

	var summary Summary
	for res := range results {
		summary.add(res)
		logger.WithFields(log.Fields{
			"game":        res.Game,
			"winner":      res.Winner.String(),
			"red":         res.Generated.A,
			"blue":        res.Generated.B,
			"generations": res.Generations,
		}).Debug("game finished")
	}

	sort.Slice(summary.Results, func(i, j int) bool { return summary.Results[i].Game < summary.Results[j].Game })
	if err := ctx.Err(); err != nil {
		return summary, err
	}
	return summary, nil
}
