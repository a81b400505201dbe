package core

// ScaledParam is an integer tunable adjusted multiplicatively by Factor and
// clamped to [Min, Max].
type ScaledParam struct {
	Key    string
	Label  string
	Unit   string
	Value  int
	Min    int
	Max    int
	Factor int
}

func (p *ScaledParam) clamp(v int) int {
	if v < p.Min {
		v = p.Min
	}
	if p.Max >= p.Min && v > p.Max {
		v = p.Max
	}
	return v
}

func (p *ScaledParam) factor() int {
	if p.Factor < 2 {
		return 2
	}
	return p.Factor
}

// Set assigns a clamped value and reports whether it changed.
func (p *ScaledParam) Set(v int) bool {
	v = p.clamp(v)
	if v == p.Value {
		return false
	}
	p.Value = v
	return true
}

// Increase multiplies the value by Factor, saturating at Max.
func (p *ScaledParam) Increase() bool { return p.Set(p.Value * p.factor()) }

// Decrease divides the value by Factor, saturating at Min.
func (p *ScaledParam) Decrease() bool { return p.Set(p.Value / p.factor()) }

// CanIncrease reports whether Increase would change the value.
func (p ScaledParam) CanIncrease() bool { return p.clamp(p.Value*p.factor()) != p.Value }

// CanDecrease reports whether Decrease would change the value.
func (p ScaledParam) CanDecrease() bool { return p.clamp(p.Value/p.factor()) != p.Value }

// ControlsProvider exposes the list of HUD-adjustable controls.
type ControlsProvider interface {
	Controls() []ScaledParam
}

// ControlAdjuster applies a HUD +/- press to the control named by key.
// A negative direction decreases, a positive one increases.
type ControlAdjuster interface {
	AdjustControl(key string, direction int) bool
}
