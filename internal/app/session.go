package app

import (
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"

	"duel-ca/internal/core"
	pcore "duel-ca/pkg/core"
	"duel-ca/pkg/duel"
)

// SpeedKey is the parameter key of the adjustable tick rate.
const SpeedKey = "speed"

// Session is the host-side state around an engine: pause flag, tick cadence
// and game-over reporting. Both the window and terminal hosts drive the
// engine through it. It is not safe for concurrent use.
type Session struct {
	engine   *duel.Engine
	clock    *core.FixedStep
	paused   bool
	reported bool
	log      log.FieldLogger
}

// NewSession wraps engine, stepping it rate times per second.
func NewSession(engine *duel.Engine, rate int, logger log.FieldLogger) *Session {
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &Session{engine: engine, clock: core.NewFixedStep(rate), log: logger}
}

// Engine returns the wrapped engine.
func (s *Session) Engine() *duel.Engine { return s.engine }

// Paused reports whether automatic stepping is suspended.
func (s *Session) Paused() bool { return s.paused }

// TogglePause suspends or resumes automatic stepping.
func (s *Session) TogglePause() {
	s.paused = !s.paused
	s.clock.Pause()
}

// Speed returns the current steps-per-second rate.
func (s *Session) Speed() int { return s.clock.Rate() }

// SetSpeed changes the steps-per-second rate.
func (s *Session) SetSpeed(rate int) {
	s.clock.SetRate(rate)
	s.log.WithField("speed", s.clock.Rate()).Debug("speed changed")
}

// SetDigit applies the speed preset bound to a digit key.
func (s *Session) SetDigit(d int) bool {
	rate, ok := core.RateForDigit(d)
	if ok {
		s.SetSpeed(rate)
	}
	return ok
}

// Paint forwards to the engine.
func (s *Session) Paint(x, y int, color duel.CellState) bool {
	return s.engine.Paint(x, y, color)
}

// Restart starts a fresh game, resuming automatic stepping.
func (s *Session) Restart() {
	s.engine.Restart()
	s.paused = false
	s.reported = false
	s.clock.Reset()
	s.log.Info("game restarted")
}

// StepOnce advances the engine by one generation regardless of the pause
// flag.
func (s *Session) StepOnce() {
	s.engine.Step()
	s.report()
}

// Update polls the wall clock and steps the engine when an interval has
// elapsed. It reports whether a step was taken.
func (s *Session) Update() bool {
	if s.paused || s.engine.Ended() {
		s.clock.Pause()
		return false
	}
	if !s.clock.ShouldStep() {
		return false
	}
	s.StepOnce()
	return true
}

// Advance is Update with an explicit elapsed time.
func (s *Session) Advance(delta time.Duration) bool {
	if s.paused || s.engine.Ended() {
		return false
	}
	if !s.clock.Advance(delta) {
		return false
	}
	s.StepOnce()
	return true
}

func (s *Session) report() {
	if s.reported || !s.engine.Ended() {
		return
	}
	s.reported = true
	gen := s.engine.Generated()
	s.log.WithFields(log.Fields{
		"winner":     s.engine.Winner().String(),
		"red":        gen.A,
		"blue":       gen.B,
		"generation": s.engine.Generation(),
	}).Info("game over")
}

// Status names the session state: running, paused or over.
func (s *Session) Status() string {
	switch {
	case s.engine.Ended():
		return "over"
	case s.paused:
		return "paused"
	default:
		return "running"
	}
}

// Parameters returns the host read-outs shown under the scoreboard.
func (s *Session) Parameters() pcore.ParameterSnapshot {
	return pcore.ParameterSnapshot{Groups: []pcore.ParameterGroup{{
		Name: "Host",
		Tone: s.Status(),
		Params: []pcore.Parameter{
			{Key: "mode", Label: "Mode", Type: pcore.ParamTypeText, Value: s.Status()},
			{Key: SpeedKey, Label: "Speed /s", Type: pcore.ParamTypeInt, Value: strconv.Itoa(s.Speed())},
		},
	}}}
}

// SpeedControl describes the HUD control for the tick rate.
func SpeedControl() pcore.ParameterControl {
	return pcore.ParameterControl{
		Key:    SpeedKey,
		Label:  "Speed",
		Step:   1,
		Min:    core.MinRate,
		Max:    core.MaxRate,
		HasMin: true,
		HasMax: true,
	}
}

// SetIntParameter implements the HUD setter for the speed control.
func (s *Session) SetIntParameter(key string, value int) bool {
	if key != SpeedKey {
		return false
	}
	s.SetSpeed(value)
	return true
}
