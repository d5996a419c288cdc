package camera

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

func TestOneFrameStep(t *testing.T) {
	f := NewFollow(DefaultConfig())
	s := &FocusState{}

	_, phase := f.Update(s, 50*time.Millisecond, mgl32.Vec3{10, 0, 0}, true)

	if phase != Tracking {
		t.Errorf("Expected tracking, got %s", phase)
	}
	want := mgl32.Vec3{1, 0, 0}
	if !near(s.Current, want, 1e-5) {
		t.Errorf("Expected current focus %v, got %v", want, s.Current)
	}
	if s.Desired != (mgl32.Vec3{10, 0, 0}) {
		t.Errorf("Expected desired focus to follow the target, got %v", s.Desired)
	}
}

func TestSettledWithinDeadZone(t *testing.T) {
	f := NewFollow(DefaultConfig())
	s := &FocusState{Desired: mgl32.Vec3{5, 0.5, 5}, Current: mgl32.Vec3{5.1, 0.5, 4.9}}
	start := s.Current

	for i := 0; i < 100; i++ {
		if _, phase := f.Update(s, 16*time.Millisecond, s.Desired, true); phase != Settled {
			t.Fatalf("Expected settled at frame %d, got %s", i, phase)
		}
	}
	if s.Current != start {
		t.Errorf("Expected frozen focus %v, got %v", start, s.Current)
	}
}

func TestConvergesWithoutOvershoot(t *testing.T) {
	frames := []time.Duration{
		5 * time.Millisecond,
		16 * time.Millisecond,
		100 * time.Millisecond,
		400 * time.Millisecond,
	}

	for _, dt := range frames {
		t.Run(dt.String(), func(t *testing.T) {
			f := NewFollow(DefaultConfig())
			target := mgl32.Vec3{30, 0.5, -12}
			s := &FocusState{}

			prev := target.Sub(s.Current).Len()
			for i := 0; i < 2000; i++ {
				f.Update(s, dt, target, true)
				dist := target.Sub(s.Current).Len()
				if dist > prev {
					t.Fatalf("Distance grew from %v to %v at frame %d", prev, dist, i)
				}
				// Each step moves along the delta by less than its length.
				for axis := 0; axis < 3; axis++ {
					if s.Current[axis]*target[axis] < 0 || abs(s.Current[axis]) > abs(target[axis])+1e-4 {
						t.Fatalf("Overshoot on axis %d: current %v target %v", axis, s.Current, target)
					}
				}
				prev = dist
			}
			if prev > DefaultConfig().DeadZone+1e-4 {
				t.Errorf("Expected to settle within the dead zone, still %v away", prev)
			}
		})
	}
}

func TestMissingTargetKeepsDesired(t *testing.T) {
	f := NewFollow(DefaultConfig())
	s := &FocusState{}

	f.Update(s, 16*time.Millisecond, mgl32.Vec3{4, 0.5, 4}, true)
	f.Update(s, 16*time.Millisecond, mgl32.Vec3{-99, -99, -99}, false)

	if s.Desired != (mgl32.Vec3{4, 0.5, 4}) {
		t.Errorf("Expected desired focus kept, got %v", s.Desired)
	}
}

func TestCameraPlacement(t *testing.T) {
	cfg := DefaultConfig()
	f := NewFollow(cfg)
	s := &FocusState{Desired: mgl32.Vec3{3, 0.5, 2}, Current: mgl32.Vec3{3, 0.5, 2}}

	tr := f.Transform(s)

	wantEye := mgl32.Vec3{3 + cfg.OffsetX, cfg.Height, 2}
	if !near(tr.Translation, wantEye, 1e-5) {
		t.Errorf("Expected eye %v, got %v", wantEye, tr.Translation)
	}
	wantDir := s.Desired.Sub(wantEye).Normalize()
	if !near(tr.Forward(), wantDir, 1e-4) {
		t.Errorf("Expected forward %v, got %v", wantDir, tr.Forward())
	}
}

func TestLookAtPolicy(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LookAt = LookAtCurrent
	f := NewFollow(cfg)
	s := &FocusState{Desired: mgl32.Vec3{10, 0, 10}, Current: mgl32.Vec3{0, 0, 0}}

	tr := f.Transform(s)
	wantDir := s.Current.Sub(tr.Translation).Normalize()
	if !near(tr.Forward(), wantDir, 1e-4) {
		t.Errorf("Expected to face current focus %v, got forward %v", wantDir, tr.Forward())
	}

	if err := LookAtPolicy("sideways").Validate(); err == nil {
		t.Error("Expected an error for an unknown policy")
	}
}

func TestProjectionCentersFocus(t *testing.T) {
	cfg := DefaultConfig()
	f := NewFollow(cfg)
	s := &FocusState{Desired: mgl32.Vec3{2, 0.5, 1}, Current: mgl32.Vec3{2, 0.5, 1}}
	proj := cfg.NewProjection(f.Transform(s), 1280, 720)

	x, y, ok := proj.ToScreen(s.Desired)
	if !ok {
		t.Fatal("Expected the focus point to be visible")
	}
	if abs(x-640) > 1 || abs(y-360) > 1 {
		t.Errorf("Expected focus at screen center, got (%v, %v)", x, y)
	}

	// A point behind the camera is culled.
	if _, _, ok := proj.ToScreen(mgl32.Vec3{-60, 20, 1}); ok {
		t.Error("Expected a point behind the camera to be culled")
	}
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func near(got, want mgl32.Vec3, eps float32) bool {
	return got.Sub(want).Len() < eps
}
