//go:build ebiten

package app

import (
	"voidlife/internal/life"
	"voidlife/internal/render"
	"voidlife/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 220

// Game adapts a Session to the ebiten.Game interface.
type Game struct {
	session *Session
	painter *render.GridPainter
	hud     *ui.HUD

	lastX, lastY int
}

// New constructs a Game for the provided session.
func New(s *Session) *Game {
	size := s.Status().Grid
	return &Game{
		session: s,
		painter: render.NewGridPainter(size.W, size.H),
		hud:     ui.NewHUD(s, hudWidth, "Life"),
		lastX:   -1,
		lastY:   -1,
	}
}

// WindowSize returns the outer size the window should open at.
func (g *Game) WindowSize() (int, int) {
	c := g.session.Canvas()
	return c.W + g.hud.Width(), c.H
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	s := g.session
	// Resolve last frame's flash and step before new input so a fresh stamp
	// is drawn as Bright exactly once.
	s.Tick()

	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.handleKeys()

	canvas := s.Canvas()
	if g.hud.Update(canvas.W, s.Status().Lines()) {
		return nil
	}
	g.handlePointer()
	return nil
}

func (g *Game) handleKeys() {
	s := g.session
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		s.Toggle()
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		s.StepOnce()
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		s.Clear()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		s.Randomize()
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit1):
		s.SelectTool(life.ToolPattern)
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit2):
		s.SelectTool(life.ToolPlaceVoid)
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit3):
		s.SelectTool(life.ToolRemoveVoid)
	case inpututil.IsKeyJustPressed(ebiten.KeyBracketRight), inpututil.IsKeyJustPressed(ebiten.KeyTab):
		s.CyclePattern(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft):
		s.CyclePattern(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		s.Faster()
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		s.Slower()
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual), inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd):
		s.ZoomIn()
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus), inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract):
		s.ZoomOut()
	}
}

func (g *Game) handlePointer() {
	s := g.session
	mx, my := ebiten.CursorPosition()
	canvas := s.Canvas()
	if mx < 0 || my < 0 || mx >= canvas.W || my >= canvas.H {
		s.PointerLeave()
		g.lastX, g.lastY = -1, -1
		return
	}
	moved := mx != g.lastX || my != g.lastY
	if moved {
		s.PointerMove(mx, my)
	}
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		s.PointerDown(mx, my)
	case moved && s.Tool() != life.ToolPattern && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		// Void tools paint while dragging.
		s.PointerDown(mx, my)
	}
	g.lastX, g.lastY = mx, my
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	s := g.session
	g.painter.Draw(screen, s.Grid(), s.Ghost(), s.CellSize())
	canvas := s.Canvas()
	g.hud.Draw(screen, canvas.W, canvas.H)
	s.FrameRendered()
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.WindowSize()
}
