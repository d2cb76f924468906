// Package term is a terminal front end for duel sessions built on gocui.
package term

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"
	log "github.com/sirupsen/logrus"

	"duel-ca/internal/app"
	"duel-ca/internal/bot"
	"duel-ca/pkg/duel"
)

// pollInterval is how often the session clock is polled; the session decides
// whether that poll becomes a step.
const pollInterval = 20 * time.Millisecond

const (
	viewHeader = "header"
	viewScore  = "score"
	viewBoard  = "board"
	viewHelp   = "help"
)

type keyBinding struct {
	key      interface{}
	name     string
	descr    string
	handler  func(v *gocui.View) error
	viewName string
}

// Console renders a session into the terminal and maps keys and mouse clicks
// onto it. All session access happens on gocui's main loop.
type Console struct {
	session *app.Session
	bots    [2]*bot.Bot
	g       *gocui.Gui
	k       []keyBinding
	fillers map[duel.CellState]string
	done    chan struct{}
}

var modeDescr = map[string]string{
	"running": aurora.Colorize("running", aurora.GreenFg).String(),
	"paused":  aurora.Colorize("paused (Space/P)", aurora.YellowFg).String(),
	"over":    aurora.Colorize("game over (R)", aurora.RedFg).String(),
}

// New creates the terminal UI. seed drives the random-seeding bots bound to
// the W key.
func New(session *app.Session, seed int64) (*Console, error) {
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return nil, fmt.Errorf("term: %w", err)
	}
	c := &Console{
		session: session,
		bots: [2]*bot.Bot{
			bot.New(duel.ColorA, seed*2+1, bot.DefaultOptions()),
			bot.New(duel.ColorB, seed*2+2, bot.DefaultOptions()),
		},
		g: g,
		fillers: map[duel.CellState]string{
			duel.Empty:  "░",
			duel.ColorA: aurora.Red("█").String(),
			duel.ColorB: aurora.Blue("█").String(),
		},
		done: make(chan struct{}),
	}
	g.Mouse = true

	c.k = []keyBinding{
		{gocui.KeyCtrlC, "^C", "Exit", c.cmdQuit, ""},
		{'q', "Q", "Exit", c.cmdQuit, ""},
		{gocui.KeySpace, "Space/P", "Pause", c.cmdPause, ""},
		{'p', "", "", c.cmdPause, ""},
		{'n', "N", "Step", c.cmdStep, ""},
		{'r', "R", "Restart", c.cmdRestart, ""},
		{'w', "W", "Random seed", c.cmdSeed, ""},
		{gocui.MouseLeft, "LMB", "Paint red", c.paintAt(duel.ColorA), viewBoard},
		{gocui.MouseRight, "RMB", "Paint blue", c.paintAt(duel.ColorB), viewBoard},
	}
	for d := 0; d <= 9; d++ {
		name, descr := "", ""
		if d == 0 {
			name, descr = "1-9,0", "Speed"
		}
		c.k = append(c.k, keyBinding{rune('0' + d), name, descr, c.cmdSpeed(d), ""})
	}

	g.SetManagerFunc(c.layout)
	if err := c.initKeyBindings(); err != nil {
		g.Close()
		return nil, err
	}
	return c, nil
}

func (c *Console) initKeyBindings() error {
	for _, kb := range c.k {
		h := kb.handler
		if err := c.g.SetKeybinding(kb.viewName, kb.key, gocui.ModNone, func(_ *gocui.Gui, v *gocui.View) error { return h(v) }); err != nil {
			return fmt.Errorf("term: bind %s: %w", kb.name, err)
		}
	}
	return nil
}

// Run blocks in the gocui main loop until the user quits.
func (c *Console) Run() error {
	defer c.g.Close()
	go c.pump()
	err := c.g.MainLoop()
	close(c.done)
	if err != nil && !errors.Is(err, gocui.ErrQuit) {
		return err
	}
	return nil
}

// pump polls the session clock from gocui's main loop so that engine access
// stays on one goroutine. The layout pass after each update redraws.
func (c *Console) pump() {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()
	for {
		select {
		case <-c.done:
			return
		case <-ticker.C:
			c.g.Update(func(*gocui.Gui) error {
				c.session.Update()
				return nil
			})
		}
	}
}

func (c *Console) refresh(g *gocui.Gui) {
	c.renderBoard(g)
	c.renderScore(g)
}

func (c *Console) renderBoard(g *gocui.Gui) {
	v, err := g.View(viewBoard)
	if err != nil {
		return
	}
	v.Clear()

	e := c.session.Engine()
	cols, rows := e.Cols(), e.Rows()
	maxW, maxH := v.Size()
	warn := warningRow(cols, rows, maxW, maxH)
	cells := e.Cells()

	var b bytes.Buffer
	for y := 0; y < rows && y < maxH; y++ {
		if y != 0 {
			b.WriteByte('\n')
		}
		if y == warn {
			b.WriteString(aurora.Red("The board is larger than the view").BgBlack().String())
			break
		}
		for x := 0; x < cols && x < maxW; x++ {
			b.WriteString(c.fillers[cells[y*cols+x]])
		}
	}
	_, _ = fmt.Fprint(v, b.String())
}

// warningRow returns the view row that carries the crop warning instead of
// cells, or -1 when the whole board fits.
func warningRow(cols, rows, viewW, viewH int) int {
	if cols > viewW || rows > viewH {
		return viewH - 1
	}
	return -1
}

func (c *Console) renderScore(g *gocui.Gui) {
	v, err := g.View(viewScore)
	if err != nil {
		return
	}
	v.Clear()
	e := c.session.Engine()
	gen := e.Generated()
	_, _ = fmt.Fprintln(v, renderProp(aurora.Red("Red generated"), "%d", gen.A))
	_, _ = fmt.Fprintln(v, renderProp(aurora.Red("Red left"), "%d", e.Remaining(duel.ColorA)))
	_, _ = fmt.Fprintln(v, renderProp(aurora.Blue("Blue generated"), "%d", gen.B))
	_, _ = fmt.Fprintln(v, renderProp(aurora.Blue("Blue left"), "%d", e.Remaining(duel.ColorB)))
	_, _ = fmt.Fprintln(v)
	_, _ = fmt.Fprintln(v, renderProp(aurora.Cyan("Generation"), "%d", e.Generation()))
	_, _ = fmt.Fprintln(v, renderProp(aurora.Cyan("Speed"), "%d/sec", c.session.Speed()))
	_, _ = fmt.Fprintln(v, renderProp(aurora.Cyan("Mode"), "%s", modeDescr[c.session.Status()]))
	if e.Ended() {
		_, _ = fmt.Fprintln(v)
		_, _ = fmt.Fprintln(v, " "+aurora.Bold(aurora.Yellow(headline(e.Winner()))).String())
	}
}

func renderProp(name aurora.Value, valueFormat string, values ...interface{}) string {
	return fmt.Sprintf(" "+name.String()+": "+valueFormat, values...)
}

func headline(w duel.Winner) string {
	switch w {
	case duel.WinnerColorA:
		return "RED WINS!"
	case duel.WinnerColorB:
		return "BLUE WINS!"
	default:
		return "DRAW!"
	}
}

func (c *Console) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	leftColumnWidth := 30
	minWindowHeight := 16

	if maxY < minWindowHeight {
		if err := c.headerLayout(g, maxY, "Terminal height too small"); err != nil {
			return err
		}
		_ = g.DeleteView(viewScore)
		_ = g.DeleteView(viewBoard)
		_ = g.DeleteView(viewHelp)
		return nil
	}
	if err := c.headerLayout(g, 2, headerText(c.session.Engine().Config())); err != nil {
		return err
	}

	if v, err := g.SetView(viewScore, 0, 2, leftColumnWidth, maxY-4); err != nil {
		if !errors.Is(err, gocui.ErrUnknownView) {
			return err
		}
		v.Title = "Score"
	}
	if v, err := g.SetView(viewBoard, leftColumnWidth+1, 2, maxX-1, maxY-4); err != nil {
		if !errors.Is(err, gocui.ErrUnknownView) {
			return err
		}
		v.Title = "Board"
	}
	if v, err := g.SetView(viewHelp, -1, maxY-4, maxX, maxY-1); err != nil {
		if !errors.Is(err, gocui.ErrUnknownView) {
			return err
		}
		v.Frame = false
		v.Wrap = true
		var b strings.Builder
		b.WriteString("KEYS: ")
		first := true
		for _, k := range c.k {
			if k.name == "" {
				continue
			}
			if !first {
				b.WriteString(", ")
			}
			first = false
			b.WriteString(aurora.Green(k.name).String())
			b.WriteString(": ")
			b.WriteString(k.descr)
		}
		_, _ = fmt.Fprintln(v, b.String())
	}
	c.refresh(g)
	return nil
}

func headerText(cfg duel.Config) string {
	return fmt.Sprintf("duel-ca: red vs blue (%dx%d, budget %d, limit %d)",
		cfg.Cols, cfg.Rows, cfg.MaxDrawn, cfg.GenerationLimit)
}

func (c *Console) headerLayout(g *gocui.Gui, height int, text string) error {
	maxX, _ := g.Size()
	v, err := g.SetView(viewHeader, -1, -1, maxX, height)
	if err != nil {
		if !errors.Is(err, gocui.ErrUnknownView) {
			return err
		}
		v.Frame = false
		v.BgColor = gocui.ColorCyan
		v.FgColor = gocui.ColorBlack
	}
	v.Clear()
	pad := 0
	if maxX > len(text) {
		pad = (maxX - len(text)) / 2
	}
	_, _ = fmt.Fprintln(v, strings.Repeat(" ", pad)+text)
	return nil
}

func (c *Console) cmdQuit(_ *gocui.View) error { return gocui.ErrQuit }

func (c *Console) cmdPause(_ *gocui.View) error {
	c.session.TogglePause()
	return nil
}

func (c *Console) cmdStep(_ *gocui.View) error {
	c.session.StepOnce()
	return nil
}

func (c *Console) cmdRestart(_ *gocui.View) error {
	c.session.Restart()
	return nil
}

func (c *Console) cmdSeed(_ *gocui.View) error {
	e := c.session.Engine()
	for _, b := range c.bots {
		painted := b.Spend(e)
		log.WithFields(log.Fields{"color": b.Color().String(), "painted": painted}).Debug("random seed")
	}
	return nil
}

func (c *Console) cmdSpeed(d int) func(*gocui.View) error {
	return func(_ *gocui.View) error {
		c.session.SetDigit(d)
		return nil
	}
}

func (c *Console) paintAt(color duel.CellState) func(*gocui.View) error {
	return func(v *gocui.View) error {
		if v == nil {
			return nil
		}
		cx, cy := v.Cursor()
		ox, oy := v.Origin()
		e := c.session.Engine()
		w, h := v.Size()
		if cy == warningRow(e.Cols(), e.Rows(), w, h) {
			return nil
		}
		c.session.Paint(cx+ox, cy+oy, color)
		return nil
	}
}
