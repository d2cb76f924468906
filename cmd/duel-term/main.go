package main

import (
	"time"

	"github.com/integrii/flaggy"
	log "github.com/sirupsen/logrus"

	"duel-ca/internal/app"
	"duel-ca/internal/term"
	"duel-ca/pkg/duel"
)

func main() {
	cfg := app.NewConfig()
	cfg.Duel.Cols, cfg.Duel.Rows = 60, 30
	seed := time.Now().UnixNano()

	flaggy.SetName("duel-term")
	flaggy.SetDescription("Two-color Game of Life duel in the terminal")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	cfg.Bind(flaggy.DefaultParser)
	flaggy.Int64(&seed, "", "seed", "Seed for the W random-seeding key")
	flaggy.Parse()

	if err := cfg.Validate(); err != nil {
		flaggy.ShowHelpAndExit(err.Error())
	}
	closer, err := app.ConfigureLogging(cfg, true)
	if err != nil {
		log.Fatal(err)
	}
	defer closer.Close()

	engine, err := duel.New(cfg.Duel)
	if err != nil {
		log.Fatal(err)
	}
	console, err := term.New(app.NewSession(engine, cfg.Speed, log.StandardLogger()), seed)
	if err != nil {
		log.Fatal(err)
	}
	log.WithField("seed", seed).Info("terminal duel started")
	if err := console.Run(); err != nil {
		log.Fatal(err)
	}
}
