package app

import (
	"testing"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"duel-ca/pkg/duel"
)

func newSession(t *testing.T, cfg duel.Config) (*Session, *test.Hook) {
	t.Helper()
	e, err := duel.New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	logger, hook := test.NewNullLogger()
	logger.SetLevel(log.DebugLevel)
	return NewSession(e, 5, logger), hook
}

func blinkerConfig() duel.Config {
	cfg := duel.DefaultConfig()
	cfg.Cols, cfg.Rows = 5, 5
	cfg.GenerationLimit = 4
	return cfg
}

func paintBlinker(t *testing.T, s *Session) {
	t.Helper()
	for x := 1; x <= 3; x++ {
		if !s.Paint(x, 2, duel.ColorA) {
			t.Fatalf("paint (%d,2) rejected", x)
		}
	}
}

func TestSessionStepsOnInterval(t *testing.T) {
	s, _ := newSession(t, blinkerConfig())
	paintBlinker(t, s)
	if s.Advance(100 * time.Millisecond) {
		t.Fatal("stepped before 200ms elapsed")
	}
	if !s.Advance(100 * time.Millisecond) {
		t.Fatal("expected a step after 200ms")
	}
	if s.Engine().Generation() != 1 {
		t.Fatalf("generation = %d, expected 1", s.Engine().Generation())
	}
}

func TestSessionPauseHoldsSteps(t *testing.T) {
	s, _ := newSession(t, blinkerConfig())
	s.TogglePause()
	if s.Status() != "paused" {
		t.Fatalf("status = %q, expected paused", s.Status())
	}
	if s.Advance(time.Second) {
		t.Fatal("paused session must not step")
	}
	s.StepOnce()
	if s.Engine().Generation() != 1 {
		t.Fatal("manual step should advance while paused")
	}
	s.TogglePause()
	if !s.Advance(time.Second) {
		t.Fatal("resumed session should step")
	}
}

func TestSessionReportsGameOverOnce(t *testing.T) {
	s, hook := newSession(t, blinkerConfig())
	paintBlinker(t, s)
	s.StepOnce()
	s.StepOnce()
	if !s.Engine().Ended() {
		t.Fatal("expected the blinker to reach the limit in two steps")
	}
	s.StepOnce()

	overs := 0
	for _, entry := range hook.AllEntries() {
		if entry.Message != "game over" {
			continue
		}
		overs++
		if entry.Data["winner"] != "red" || entry.Data["red"] != 4 {
			t.Fatalf("unexpected game over fields: %v", entry.Data)
		}
	}
	if overs != 1 {
		t.Fatalf("logged game over %d times, expected once", overs)
	}
	if s.Status() != "over" || s.Advance(time.Second) {
		t.Fatal("ended session must not step")
	}
}

func TestSessionRestart(t *testing.T) {
	s, hook := newSession(t, blinkerConfig())
	paintBlinker(t, s)
	s.TogglePause()
	s.StepOnce()
	s.StepOnce()
	s.Restart()
	if s.Paused() || s.Engine().Ended() || s.Engine().Drawn(duel.ColorA) != 0 {
		t.Fatal("restart should resume and clear the engine")
	}
	if hook.LastEntry() == nil || hook.LastEntry().Message != "game restarted" {
		t.Fatal("expected restart to be logged")
	}
}

func TestSessionSpeedParameter(t *testing.T) {
	s, _ := newSession(t, blinkerConfig())
	if !s.SetDigit(0) || s.Speed() != 10 {
		t.Fatalf("digit 0 should select 10 steps/s, got %d", s.Speed())
	}
	if !s.SetIntParameter(SpeedKey, 3) || s.Speed() != 3 {
		t.Fatal("speed setter not applied")
	}
	if s.SetIntParameter("nope", 3) {
		t.Fatal("unknown keys must be rejected")
	}
	p, ok := s.Parameters().Lookup(SpeedKey)
	if !ok || p.Value != "3" {
		t.Fatalf("speed parameter = %+v", p)
	}
	if c := SpeedControl(); c.Clamp(42) != 10 {
		t.Fatal("speed control should clamp to the maximum rate")
	}
}
