package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/integrii/flaggy"
	"github.com/logrusorgru/aurora"
	log "github.com/sirupsen/logrus"

	"duel-ca/internal/app"
	"duel-ca/internal/bot"
	"duel-ca/internal/match"
)

func main() {
	cfg := app.NewConfig()
	opts := match.Options{
		Bot:      bot.DefaultOptions(),
		Games:    64,
		Workers:  runtime.NumCPU(),
		Seed:     42,
		MaxSteps: 20000,
	}

	flaggy.SetName("duel-sweep")
	flaggy.SetDescription("Play automated duels and report win statistics")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	cfg.Bind(flaggy.DefaultParser)
	flaggy.Int(&opts.Games, "g", "games", "Number of games to play")
	flaggy.Int(&opts.Workers, "w", "workers", "Number of worker goroutines")
	flaggy.Int64(&opts.Seed, "", "seed", "Seed of the first game")
	flaggy.Int(&opts.MaxSteps, "m", "max-steps", "Abandon a game after this many steps")
	flaggy.Int(&opts.Bot.Radius, "", "cluster-radius", "Half-width of each bot cluster")
	flaggy.Float64(&opts.Bot.Density, "", "cluster-density", "Share of cluster cells painted")
	flaggy.Parse()

	if err := cfg.Duel.Validate(); err != nil {
		flaggy.ShowHelpAndExit(err.Error())
	}
	closer, err := app.ConfigureLogging(cfg, false)
	if err != nil {
		log.Fatal(err)
	}
	defer closer.Close()
	opts.Config = cfg.Duel
	opts.Logger = log.StandardLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log.WithFields(log.Fields{
		"games":   opts.Games,
		"workers": opts.Workers,
		"cols":    cfg.Duel.Cols,
		"rows":    cfg.Duel.Rows,
		"budget":  cfg.Duel.MaxDrawn,
	}).Info("sweep started")

	start := time.Now()
	summary, err := match.Sweep(ctx, opts)
	if err != nil {
		log.WithError(err).Warn("sweep interrupted, reporting partial results")
	}
	elapsed := time.Since(start)

	played := len(summary.Results)
	fmt.Printf("\nPlayed %d games in %s (mean %.1f generations)\n", played, elapsed.Round(time.Millisecond), summary.MeanGenerations())
	fmt.Printf("  %s %s\n", aurora.Red("Red wins: "), share(summary.RedWins, played))
	fmt.Printf("  %s %s\n", aurora.Blue("Blue wins:"), share(summary.BlueWins, played))
	fmt.Printf("  %s %s\n", aurora.Yellow("Draws:    "), share(summary.Draws, played))
	if summary.Unfinished > 0 {
		fmt.Printf("  %s %s\n", aurora.Magenta("Unfinished:"), share(summary.Unfinished, played))
	}
}

func share(n, total int) string {
	if total == 0 {
		return "0"
	}
	return fmt.Sprintf("%d (%.1f%%)", n, 100*float64(n)/float64(total))
}
