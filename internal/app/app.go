//go:build ebiten

package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"duel-ca/internal/render"
	"duel-ca/internal/ui"
	pcore "duel-ca/pkg/core"
	"duel-ca/pkg/duel"
)

// HUDWidth is the width of the scoreboard panel in pixels.
const HUDWidth = 200

var digitKeys = [...]ebiten.Key{
	ebiten.KeyDigit0, ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4,
	ebiten.KeyDigit5, ebiten.KeyDigit6, ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

// Game adapts a duel session to the ebiten.Game interface.
type Game struct {
	session *Session
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay

	scale int
}

// New constructs a Game for the provided session.
func New(session *Session, scale int) *Game {
	e := session.Engine()
	size := e.Size()
	return &Game{
		session: session,
		painter: render.NewGridPainter(size.W, size.H),
		hud:     ui.NewHUD(HUDWidth, size.H*scale, session, []pcore.ParameterControl{SpeedControl()}, e, session),
		overlay: ui.NewOverlay(e, size.W*scale, size.H*scale),
		scale:   scale,
	}
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.session.Restart()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.session.TogglePause()
	}
	for d, key := range digitKeys {
		if inpututil.IsKeyJustPressed(key) {
			g.session.SetDigit(d)
		}
	}

	g.hud.Update(g.boardWidth())
	g.handleMouse()
	g.session.Update()
	return nil
}

func (g *Game) handleMouse() {
	mx, my := ebiten.CursorPosition()
	if mx < 0 || my < 0 || mx >= g.boardWidth() || g.hud.Contains(mx, my) {
		return
	}
	x, y := mx/g.scale, my/g.scale
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.session.Paint(x, y, duel.ColorA)
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		g.session.Paint(x, y, duel.ColorB)
	}
}

// Draw renders the board, the scoreboard and the game-over banner.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.session.Engine().Cells(), g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.boardWidth())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.session.Engine().Size()
	return s.W*g.scale + g.hud.Width(), s.H * g.scale
}

func (g *Game) boardWidth() int { return g.session.Engine().Cols() * g.scale }
