package app

import (
	"fmt"

	"voidlife/internal/core"
	"voidlife/internal/life"
	"voidlife/internal/pattern"
)

// Status is a read-only snapshot for labels and status lines.
type Status struct {
	Generation int
	Population int
	Running    bool
	Rate       int
	CellSize   int
	Grid       core.Size
	Tool       life.Tool
	Pattern    pattern.ID
}

type pointer struct {
	row, col int
	inside   bool
}

// Session owns the simulation, its overlays and the timing controls. It is
// driven from a single loop: input handlers, Tick and FrameRendered must be
// called from the same goroutine.
type Session struct {
	cfg      Config
	canvas   core.Size
	engine   *life.Engine
	overlay  *life.Overlay
	lib      *pattern.Library
	timer    *core.FixedStep
	controls Controls

	tool     life.Tool
	selected pattern.ID
	pointer  pointer
	seed     int64
	dirty    bool
}

// NewSession builds a session sized to the configured canvas. A nil library
// falls back to the built-in patterns.
func NewSession(cfg Config, lib *pattern.Library) *Session {
	cfg.Normalize()
	if lib == nil || lib.Len() == 0 {
		lib = pattern.Builtins()
	}
	s := &Session{
		cfg:      cfg,
		canvas:   core.Size{W: cfg.Width, H: cfg.Height},
		lib:      lib,
		controls: NewControls(cfg),
		seed:     cfg.Seed,
		dirty:    true,
	}
	s.selected = lib.IDs()[0]
	if _, ok := lib.Get(pattern.Glider); ok {
		s.selected = pattern.Glider
	}
	s.timer = core.NewFixedStep(s.controls.Rate.Value)
	w, h := s.gridDims()
	s.engine = life.NewEngine(w, h)
	s.overlay = life.NewOverlay(s.engine.Buffers())
	if cfg.Run {
		s.timer.Start()
	}
	return s
}

// Timer exposes the step scheduler, mainly so tests can swap its clock.
func (s *Session) Timer() *core.FixedStep { return s.timer }

// Engine exposes the simulation engine.
func (s *Session) Engine() *life.Engine { return s.engine }

// Library returns the pattern library.
func (s *Session) Library() *pattern.Library { return s.lib }

// Canvas returns the canvas size in pixels.
func (s *Session) Canvas() core.Size { return s.canvas }

// CellSize returns the current cell size in pixels.
func (s *Session) CellSize() int { return s.controls.CellSize.Value }

// Grid returns the authoritative grid for rendering.
func (s *Session) Grid() *core.Grid { return s.engine.Current() }

// Ghost returns the preview grid for rendering.
func (s *Session) Ghost() *core.Grid { return s.overlay.Ghost() }

// Dirty reports whether the displayed state is stale.
func (s *Session) Dirty() bool { return s.dirty }

// MarkClean acknowledges a render.
func (s *Session) MarkClean() { s.dirty = false }

func (s *Session) gridDims() (int, int) {
	cell := s.controls.CellSize.Value
	return max(1, s.canvas.W/cell), max(1, s.canvas.H/cell)
}

// ResizeCanvas changes the canvas size and reallocates the grid when the
// derived dimensions change.
func (s *Session) ResizeCanvas(w, h int) {
	if w <= 0 || h <= 0 || (s.canvas.W == w && s.canvas.H == h) {
		return
	}
	s.canvas = core.Size{W: w, H: h}
	s.reallocate(false)
}

// reallocate rebuilds the engine and overlay at the derived grid size. Unless
// force is set, a canvas change that keeps the dimensions keeps the board.
func (s *Session) reallocate(force bool) {
	w, h := s.gridDims()
	if size := s.engine.Size(); !force && size.W == w && size.H == h {
		s.dirty = true
		return
	}
	s.engine.Resize(w, h)
	s.overlay.Attach(s.engine.Buffers())
	s.pointer.inside = false
	s.dirty = true
}

func (s *Session) shape() pattern.Pattern {
	selected, _ := s.lib.Get(s.selected)
	return s.tool.Shape(selected)
}

// PointerMove refreshes the ghost preview under the pointer.
func (s *Session) PointerMove(px, py int) {
	row, col := CellAt(px, py, s.CellSize())
	if !s.Grid().InBounds(row, col) {
		s.PointerLeave()
		return
	}
	if s.pointer.inside && s.pointer.row == row && s.pointer.col == col {
		return
	}
	s.pointer = pointer{row: row, col: col, inside: true}
	s.overlay.Preview(s.shape(), row, col)
	s.dirty = true
}

// PointerLeave hides the ghost preview.
func (s *Session) PointerLeave() {
	if !s.pointer.inside {
		return
	}
	s.pointer.inside = false
	s.overlay.ClearGhost()
	s.dirty = true
}

// PointerDown stamps the active tool at the pointer. The stamped cells show
// as Bright until FrameRendered or the next Tick resolves them.
func (s *Session) PointerDown(px, py int) {
	row, col := CellAt(px, py, s.CellSize())
	if !s.Grid().InBounds(row, col) {
		return
	}
	s.overlay.Flash(s.shape(), row, col, s.tool.Target())
	s.dirty = true
}

// FrameRendered resolves pending Bright cells after they were drawn once.
func (s *Session) FrameRendered() {
	s.MarkClean()
	if s.overlay.Pending() {
		s.overlay.Resolve()
		s.dirty = true
	}
}

// Tick resolves pending feedback and advances one generation when the
// schedule is due. It reports whether a step happened.
func (s *Session) Tick() bool {
	if s.overlay.Pending() {
		s.overlay.Resolve()
		s.dirty = true
	}
	if !s.timer.ShouldStep() {
		return false
	}
	s.engine.Step()
	s.dirty = true
	return true
}

// StepOnce advances a single generation regardless of the schedule.
func (s *Session) StepOnce() {
	if s.overlay.Pending() {
		s.overlay.Resolve()
	}
	s.engine.Step()
	s.dirty = true
}

// Running reports whether timed evolution is active.
func (s *Session) Running() bool { return s.timer.Running() }

// Start begins timed evolution.
func (s *Session) Start() { s.timer.Start() }

// Stop halts timed evolution. Stopping twice is harmless.
func (s *Session) Stop() {
	s.timer.Stop()
	s.dirty = true
}

// Toggle flips between running and stopped.
func (s *Session) Toggle() {
	if s.timer.Running() {
		s.Stop()
		return
	}
	s.Start()
}

// Clear kills every cell and removes all voids.
func (s *Session) Clear() {
	s.overlay.Resolve()
	s.engine.Reset()
	s.dirty = true
}

// Randomize fills the board with random Live cells and advances the seed so
// repeated calls differ.
func (s *Session) Randomize() {
	s.overlay.Resolve()
	s.engine.Randomize(s.seed, s.cfg.Density)
	s.seed++
	s.dirty = true
}

// Tool returns the active tool.
func (s *Session) Tool() life.Tool { return s.tool }

// SelectTool changes the active tool and refreshes the preview.
func (s *Session) SelectTool(t life.Tool) {
	if s.tool == t {
		return
	}
	s.tool = t
	s.refreshPreview()
}

// Pattern returns the selected pattern identifier.
func (s *Session) Pattern() pattern.ID { return s.selected }

// SelectPattern makes id the stamped pattern and switches to the pattern tool.
func (s *Session) SelectPattern(id pattern.ID) bool {
	if _, ok := s.lib.Get(id); !ok {
		return false
	}
	s.selected = id
	s.tool = life.ToolPattern
	s.refreshPreview()
	return true
}

// CyclePattern selects the pattern delta places away in the library.
func (s *Session) CyclePattern(delta int) {
	s.SelectPattern(s.lib.Next(s.selected, delta))
}

func (s *Session) refreshPreview() {
	if s.pointer.inside {
		s.overlay.Preview(s.shape(), s.pointer.row, s.pointer.col)
	}
	s.dirty = true
}

// Faster doubles the rate.
func (s *Session) Faster() bool { return s.AdjustControl(KeyRate, 1) }

// Slower halves the rate.
func (s *Session) Slower() bool { return s.AdjustControl(KeyRate, -1) }

// ZoomIn doubles the cell size.
func (s *Session) ZoomIn() bool { return s.AdjustControl(KeyCellSize, 1) }

// ZoomOut halves the cell size.
func (s *Session) ZoomOut() bool { return s.AdjustControl(KeyCellSize, -1) }

// Controls lists the adjustable parameters.
func (s *Session) Controls() []core.ScaledParam {
	return []core.ScaledParam{s.controls.Rate, s.controls.CellSize}
}

// AdjustControl applies a +/- step to the control named by key. A running
// schedule is restarted at the current rate; a stopped one gets a forced
// render instead.
func (s *Session) AdjustControl(key string, direction int) bool {
	var param *core.ScaledParam
	switch key {
	case KeyRate:
		param = &s.controls.Rate
	case KeyCellSize:
		param = &s.controls.CellSize
	default:
		return false
	}
	var changed bool
	switch {
	case direction > 0:
		changed = param.Increase()
	case direction < 0:
		changed = param.Decrease()
	}
	if !changed {
		return false
	}
	if key == KeyCellSize {
		s.reallocate(true)
	}
	s.timer.SetTPS(s.controls.Rate.Value)
	if !s.timer.Running() {
		s.dirty = true
	}
	return true
}

// Status returns a snapshot of the session for display.
func (s *Session) Status() Status {
	return Status{
		Generation: s.engine.Generation(),
		Population: s.engine.Population(),
		Running:    s.timer.Running(),
		Rate:       s.controls.Rate.Value,
		CellSize:   s.controls.CellSize.Value,
		Grid:       s.engine.Size(),
		Tool:       s.tool,
		Pattern:    s.selected,
	}
}

// Lines formats the snapshot as short labels for a side panel.
func (st Status) Lines() []string {
	state := "paused"
	if st.Running {
		state = "running"
	}
	return []string{
		fmt.Sprintf("Tool: %s", st.Tool),
		fmt.Sprintf("Pattern: %s", st.Pattern),
		fmt.Sprintf("Generation: %d", st.Generation),
		fmt.Sprintf("Population: %d", st.Population),
		fmt.Sprintf("Grid: %dx%d (%s)", st.Grid.W, st.Grid.H, state),
	}
}

// String formats the snapshot as a single status line.
func (st Status) String() string {
	state := "paused"
	if st.Running {
		state = "running"
	}
	return fmt.Sprintf("%s | gen %d | pop %d | %d gen/s | %s: %s", state, st.Generation, st.Population, st.Rate, st.Tool, st.Pattern)
}
