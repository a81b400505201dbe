package app

import (
	"context"
	"time"

	"voidlife/internal/life"
	"voidlife/internal/render"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"
)

// TerminalConfig adapts cfg to a terminal of w×h character cells: one
// character per grid cell and no zoom.
func TerminalConfig(cfg Config, w, h int) Config {
	cfg.Width, cfg.Height = w, h
	cfg.CellSize, cfg.MinCellSize, cfg.MaxCellSize = 1, 1, 1
	cfg.Normalize()
	return cfg
}

// RunTerminal drives s on screen until the user quits or ctx is done. Input
// is polled on its own goroutine and handed to the loop over a channel, so
// every Session call happens on the loop goroutine. The screen is finalized
// before RunTerminal returns.
func RunTerminal(ctx context.Context, screen tcell.Screen, s *Session, frame time.Duration) error {
	if frame <= 0 {
		frame = 33 * time.Millisecond
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	events := make(chan tcell.Event, 16)
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return nil
			}
		}
	})

	g.Go(func() error {
		defer screen.Fini()
		defer cancel()
		t := &termLoop{session: s, painter: render.NewTermPainter(screen), screen: screen}
		return t.run(ctx, events, frame)
	})

	return g.Wait()
}

type termLoop struct {
	session *Session
	painter *render.TermPainter
	screen  tcell.Screen
	down    bool
}

func (t *termLoop) run(ctx context.Context, events <-chan tcell.Event, frame time.Duration) error {
	ticker := time.NewTicker(frame)
	defer ticker.Stop()
	t.render()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if quit := t.handle(ev); quit {
				return nil
			}
		case <-ticker.C:
			t.session.Tick()
			if t.session.Dirty() {
				t.render()
			}
		}
	}
}

func (t *termLoop) render() {
	s := t.session
	t.painter.Draw(s.Grid(), s.Ghost(), s.Status().String())
	s.FrameRendered()
}

func (t *termLoop) handle(ev tcell.Event) bool {
	s := t.session
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, h := t.painter.GridArea()
		s.ResizeCanvas(w, h)
		t.screen.Sync()
	case *tcell.EventMouse:
		x, y := ev.Position()
		pressed := ev.Buttons()&tcell.Button1 != 0
		s.PointerMove(x, y)
		stamped := pressed && (!t.down || s.Tool() != life.ToolPattern)
		if stamped {
			s.PointerDown(x, y)
		}
		t.down = pressed
		if stamped {
			// The flash must reach the screen before the next Tick resolves it.
			t.render()
		}
	case *tcell.EventKey:
		return t.handleKey(ev)
	}
	return false
}

func (t *termLoop) handleKey(ev *tcell.EventKey) bool {
	s := t.session
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		s.Faster()
	case tcell.KeyDown:
		s.Slower()
	case tcell.KeyTab:
		s.CyclePattern(1)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case ' ':
			s.Toggle()
		case 'n':
			s.StepOnce()
		case 'c':
			s.Clear()
		case 'r':
			s.Randomize()
		case '1':
			s.SelectTool(life.ToolPattern)
		case '2':
			s.SelectTool(life.ToolPlaceVoid)
		case '3':
			s.SelectTool(life.ToolRemoveVoid)
		case ']':
			s.CyclePattern(1)
		case '[':
			s.CyclePattern(-1)
		case '+':
			s.Faster()
		case '-':
			s.Slower()
		}
	}
	return false
}
