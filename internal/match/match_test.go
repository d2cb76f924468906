package match

import (
	"context"
	"errors"
	"io"
	"testing"

	log "github.com/sirupsen/logrus"

	"duel-ca/internal/bot"
	"duel-ca/pkg/duel"
)

func quietLogger() log.FieldLogger {
	l := log.New()
	l.SetOutput(io.Discard)
	return l
}

func smallConfig() duel.Config {
	cfg := duel.DefaultConfig()
	cfg.Cols, cfg.Rows = 40, 30
	cfg.MaxDrawn = 40
	cfg.GenerationLimit = 300
	return cfg
}

func TestPlayDeterministic(t *testing.T) {
	a, err := Play(smallConfig(), 5, 2000, bot.DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	b, err := Play(smallConfig(), 5, 2000, bot.DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Fatalf("same seed gave different results: %+v vs %+v", a, b)
	}
}

func TestPlayRespectsStepCap(t *testing.T) {
	res, err := Play(smallConfig(), 1, 3, bot.DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if res.Generations > 3 {
		t.Fatalf("played %d generations, cap was 3", res.Generations)
	}
	if !res.Finished && res.Winner != duel.WinnerNone {
		t.Fatal("unfinished games have no winner")
	}
}

func TestPlayRejectsInvalidConfig(t *testing.T) {
	cfg := smallConfig()
	cfg.Cols = 0
	if _, err := Play(cfg, 1, 10, bot.DefaultOptions()); !errors.Is(err, duel.ErrInvalidConfiguration) {
		t.Fatalf("err = %v, expected ErrInvalidConfiguration", err)
	}
}

func TestSweepIndependentOfWorkerCount(t *testing.T) {
	opts := Options{
		Config:   smallConfig(),
		Bot:      bot.DefaultOptions(),
		Games:    12,
		Seed:     100,
		MaxSteps: 2000,
		Logger:   quietLogger(),
	}
	opts.Workers = 1
	serial, err := Sweep(context.Background(), opts)
	if err != nil {
		t.Fatal(err)
	}
	opts.Workers = 4
	parallel, err := Sweep(context.Background(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if len(serial.Results) != 12 || len(parallel.Results) != 12 {
		t.Fatalf("expected 12 results, got %d and %d", len(serial.Results), len(parallel.Results))
	}
	for i := range serial.Results {
		if serial.Results[i] != parallel.Results[i] {
			t.Fatalf("game %d differs: %+v vs %+v", i, serial.Results[i], parallel.Results[i])
		}
	}
	total := serial.RedWins + serial.BlueWins + serial.Draws + serial.Unfinished
	if total != 12 {
		t.Fatalf("tallies add to %d, expected 12", total)
	}
}

func TestSweepCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Sweep(ctx, Options{Config: smallConfig(), Games: 50, Workers: 2, MaxSteps: 100, Logger: quietLogger()})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, expected context.Canceled", err)
	}
}
