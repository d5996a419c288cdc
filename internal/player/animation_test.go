package player

import (
	"testing"
	"time"
)

var testClips = Clips{Idle: "idle", Running: "running", IdleToRunning: "idle_to_running"}

func TestAnimatorSpeedsUpThenRuns(t *testing.T) {
	a := NewAnimator(testClips, 500*time.Millisecond)

	if a.Clip() != "idle" || a.Motion() != MotionIdle {
		t.Fatalf("Expected idle start, got %s/%s", a.Clip(), a.Motion())
	}

	clip, changed := a.Update(100*time.Millisecond, true)
	if clip != "idle_to_running" || !changed {
		t.Errorf("Expected change to idle_to_running, got %s (changed=%v)", clip, changed)
	}

	for i := 0; i < 3; i++ {
		if clip, changed = a.Update(100*time.Millisecond, true); changed {
			t.Errorf("Unexpected clip change to %s at frame %d", clip, i+2)
		}
	}

	clip, changed = a.Update(100*time.Millisecond, true)
	if clip != "running" || !changed {
		t.Errorf("Expected change to running after 500ms, got %s (changed=%v)", clip, changed)
	}
	if a.Motion() != MotionRunning {
		t.Errorf("Expected running motion, got %s", a.Motion())
	}

	if _, changed = a.Update(time.Second, true); changed {
		t.Error("Expected running to loop without changes")
	}
}

func TestAnimatorReleaseReturnsToIdle(t *testing.T) {
	a := NewAnimator(testClips, 500*time.Millisecond)
	a.Update(400*time.Millisecond, true)

	clip, changed := a.Update(16*time.Millisecond, false)
	if clip != "idle" || !changed {
		t.Errorf("Expected change back to idle, got %s (changed=%v)", clip, changed)
	}

	// Progress toward running does not carry over a release.
	a.Update(200*time.Millisecond, true)
	if a.Motion() != MotionSpeedingUp {
		t.Errorf("Expected speeding up after re-press, got %s", a.Motion())
	}

	if _, changed = a.Update(16*time.Millisecond, false); !changed {
		t.Error("Expected change on release")
	}
	if _, changed = a.Update(16*time.Millisecond, false); changed {
		t.Error("Expected idle to stay unchanged")
	}
}

func TestAnimatorClipTimeRestartsOnChange(t *testing.T) {
	a := NewAnimator(testClips, 500*time.Millisecond)

	a.Update(300*time.Millisecond, false)
	a.Update(300*time.Millisecond, false)
	if got := a.ClipTime(); got != 600*time.Millisecond {
		t.Errorf("Expected idle clip time 600ms, got %v", got)
	}

	a.Update(100*time.Millisecond, true)
	if got := a.ClipTime(); got != 0 {
		t.Errorf("Expected clip time reset on change, got %v", got)
	}
	a.Update(100*time.Millisecond, true)
	if got := a.ClipTime(); got != 100*time.Millisecond {
		t.Errorf("Expected 100ms into idle_to_running, got %v", got)
	}
}
