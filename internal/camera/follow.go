// Package camera makes the camera trail the player with a smoothed focus
// point.
package camera

import (
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"chosenoffset.com/colony/internal/core/transform"
)

// LookAtPolicy selects which focus point the camera faces.
type LookAtPolicy string

const (
	// LookAtDesired faces the player's current position.
	LookAtDesired LookAtPolicy = "desired"
	// LookAtCurrent faces the smoothed focus point.
	LookAtCurrent LookAtPolicy = "current"
)

// Validate reports an error for unknown policies.
func (p LookAtPolicy) Validate() error {
	switch p {
	case LookAtDesired, LookAtCurrent:
		return nil
	default:
		return fmt.Errorf("unknown look-at policy %q", string(p))
	}
}

// Config holds the follow tuning and the projection parameters.
type Config struct {
	Speed      float32      `yaml:"speed"`
	DeadZone   float32      `yaml:"dead_zone"`
	Height     float32      `yaml:"height"`
	OffsetX    float32      `yaml:"offset_x"`
	LookAt     LookAtPolicy `yaml:"look_at"`
	FovDegrees float32      `yaml:"fov_degrees"`
	Near       float32      `yaml:"near"`
	Far        float32      `yaml:"far"`
}

// DefaultConfig returns the stock follow tuning.
func DefaultConfig() Config {
	return Config{
		Speed:      2.0,
		DeadZone:   0.2,
		Height:     20,
		OffsetX:    -20,
		LookAt:     LookAtDesired,
		FovDegrees: 45,
		Near:       0.1,
		Far:        500,
	}
}

// Phase is the follow latch, re-evaluated every frame.
type Phase int

const (
	// Settled means the focus is within the dead zone and frozen.
	Settled Phase = iota
	// Tracking means the focus is moving toward the target.
	Tracking
)

// String returns the phase name.
func (p Phase) String() string {
	if p == Tracking {
		return "tracking"
	}
	return "settled"
}

// FocusState is the camera's focus: where it should look and where it
// currently looks.
type FocusState struct {
	Desired mgl32.Vec3
	Current mgl32.Vec3
}

// Follow moves a FocusState toward its target each frame.
type Follow struct {
	cfg Config
}

// NewFollow creates a follow behaviour with the given tuning.
func NewFollow(cfg Config) *Follow {
	return &Follow{cfg: cfg}
}

// Config returns the follow tuning.
func (f *Follow) Config() Config {
	return f.cfg
}

// Update retargets the focus when the target was found, steps the current
// focus toward it and returns the camera transform. The step is
// delta * Speed * dt, an explicit Euler step that only applies while the
// remaining distance exceeds the dead zone; it does not overshoot while
// Speed * dt < 1.
func (f *Follow) Update(s *FocusState, dt time.Duration, target mgl32.Vec3, found bool) (transform.Transform, Phase) {
	if found {
		s.Desired = target
	}

	phase := Settled
	motion := s.Desired.Sub(s.Current)
	if motion.Len() > f.cfg.DeadZone {
		s.Current = s.Current.Add(motion.Mul(f.cfg.Speed * float32(dt.Seconds())))
		phase = Tracking
	}

	return f.Transform(s), phase
}

// Transform places the camera above and behind the current focus, facing
// the focus point selected by the look-at policy.
func (f *Follow) Transform(s *FocusState) transform.Transform {
	eye := s.Current
	eye[1] = f.cfg.Height
	eye[0] += f.cfg.OffsetX

	lookAt := s.Desired
	if f.cfg.LookAt == LookAtCurrent {
		lookAt = s.Current
	}
	return transform.Identity().WithTranslation(eye).LookingAt(lookAt, transform.Up)
}

// InitialTransform is the camera placement before the first follow
// update: high above the origin, looking down at it.
func InitialTransform() transform.Transform {
	return transform.FromXYZ(-2, 200, 0.25).LookingAt(mgl32.Vec3{}, transform.Up)
}
