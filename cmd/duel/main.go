//go:build ebiten

package main

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/integrii/flaggy"
	log "github.com/sirupsen/logrus"

	"duel-ca/internal/app"
	"duel-ca/pkg/duel"
)

func main() {
	cfg := app.NewConfig()
	flaggy.SetName("duel")
	flaggy.SetDescription("Two-color Game of Life duel")
	cfg.Bind(flaggy.DefaultParser)
	flaggy.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	closer, err := app.ConfigureLogging(cfg, false)
	if err != nil {
		log.Fatal(err)
	}
	defer closer.Close()

	engine, err := duel.New(cfg.Duel)
	if err != nil {
		log.Fatal(err)
	}
	session := app.NewSession(engine, cfg.Speed, log.StandardLogger())
	game := app.New(session, cfg.Scale)

	ebiten.SetWindowTitle("duel-ca: red vs blue")
	ebiten.SetTPS(60)
	w, h := game.Layout(0, 0)
	ebiten.SetWindowSize(w, h)

	log.WithFields(log.Fields{
		"cols":   cfg.Duel.Cols,
		"rows":   cfg.Duel.Rows,
		"budget": cfg.Duel.MaxDrawn,
		"limit":  cfg.Duel.GenerationLimit,
	}).Info("starting duel")

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
