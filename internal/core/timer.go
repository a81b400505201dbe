package core

import "time"

// FixedStep paces simulation updates at a steady ticks-per-second rate. It is
// polled from the owning loop, so a stopped FixedStep never fires and
// changing the rate never leaves two schedules running.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	running     bool
	now         func() time.Time
}

// NewFixedStep constructs a stopped FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetTPS(tps)
	return fs
}

// WithClock replaces the time source. Intended for tests.
func (f *FixedStep) WithClock(now func() time.Time) *FixedStep {
	if now != nil {
		f.now = now
	}
	return f
}

// Interval returns the duration between ticks.
func (f *FixedStep) Interval() time.Duration { return f.step }

// SetTPS changes the tick rate. A running schedule is cancelled and restarted
// at the new interval.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
	if f.running {
		f.Stop()
		f.Start()
	}
}

// Start arms the schedule. The first tick is due immediately.
func (f *FixedStep) Start() {
	if f.running {
		return
	}
	f.running = true
	f.last = time.Time{}
	f.accumulator = f.step
}

// Stop cancels the schedule. Stopping an already stopped FixedStep is a no-op.
func (f *FixedStep) Stop() {
	f.running = false
	f.accumulator = 0
	f.last = time.Time{}
}

// Running reports whether the schedule is armed.
func (f *FixedStep) Running() bool { return f.running }

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	if !f.running {
		return false
	}
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		// Drop backlog so a stalled loop does not burst-step to catch up.
		if f.accumulator > f.step {
			f.accumulator = f.step
		}
		return true
	}
	return false
}
