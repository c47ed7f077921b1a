package core

import "time"

// FixedStep paces work at a steady rate independent of the frame rate. The
// GUI uses it to play relaxation passes back at a configurable speed.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting rate steps per
// second. The first call to ShouldStep always fires.
func NewFixedStep(rate int) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetRate(rate)
	fs.accumulator = fs.step
	return fs
}

// SetRate changes the step rate; non-positive rates fall back to 60.
func (f *FixedStep) SetRate(rate int) {
	if rate <= 0 {
		rate = 60
	}
	f.step = time.Second / time.Duration(rate)
}

// Restart makes the next ShouldStep fire immediately.
func (f *FixedStep) Restart() {
	f.last = time.Time{}
	f.accumulator = f.step
}

// ShouldStep reports whether the caller should advance by one step.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}
