package core

import (
	"testing"
	"time"
)

func TestFixedStepPacesSteps(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return clock }

	if !fs.ShouldStep() {
		t.Fatal("first call must step")
	}
	clock = clock.Add(50 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("stepped before the interval elapsed")
	}
	clock = clock.Add(50 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("expected a step after 100ms at 10/s")
	}

	fs.Restart()
	if !fs.ShouldStep() {
		t.Fatal("Restart must make the next call step")
	}
}

func TestFixedStepDefaultsRate(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.step != time.Second/60 {
		t.Fatalf("expected 60/s default, got %v", fs.step)
	}
}
