package progress

import (
	"testing"
	"time"
)

func TestNewSpinnerUnderCI(t *testing.T) {
	t.Setenv("CI", "1")
	if _, ok := NewSpinner().(*lineSpinner); !ok {
		t.Error("expected the line spinner when CI is set")
	}
}

func TestTermSpinnerPumpsAndStops(t *testing.T) {
	s := &termSpinner{}
	s.Start("working...")
	if s.bar == nil || s.done == nil {
		t.Fatal("Start did not initialize the spinner")
	}

	// Let the ticker advance the bar at least once before stopping.
	time.Sleep(250 * time.Millisecond)
	if s.bar.State().CurrentNum == 0 {
		t.Error("ticker did not advance the bar")
	}
	s.Stop()

	if s.bar != nil || s.done != nil {
		t.Error("Stop did not clear the spinner")
	}

	// A second Stop must be a no-op.
	s.Stop()
}
