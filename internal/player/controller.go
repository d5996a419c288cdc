// Package player implements grid movement and the animation latch of the
// controlled character.
package player

import (
	"math"
	"time"

	"chosenoffset.com/colony/internal/core/timer"
	"chosenoffset.com/colony/internal/core/transform"
	"chosenoffset.com/colony/internal/input"
)

// Facing angles about the vertical axis for each step direction.
const (
	FacingUp    = -math.Pi / 2
	FacingDown  = math.Pi / 2
	FacingRight = math.Pi
	FacingLeft  = 0
)

// Height is the world Y the player stands at.
const Height = 0.5

// Config holds the movement rules.
type Config struct {
	MinGrid      float32       `yaml:"min_grid"`
	MaxGrid      float32       `yaml:"max_grid"`
	MoveCooldown time.Duration `yaml:"move_cooldown"`
	StartX       float32       `yaml:"start_x"`
	StartY       float32       `yaml:"start_y"`
	IdleToRun    time.Duration `yaml:"idle_to_run"`
}

// DefaultConfig returns the stock movement rules.
func DefaultConfig() Config {
	return Config{
		MinGrid:      -10,
		MaxGrid:      10,
		MoveCooldown: 200 * time.Millisecond,
		IdleToRun:    500 * time.Millisecond,
	}
}

// State is the controlled character's grid placement. It is mutated only
// by Controller.Update.
type State struct {
	GridX        float32
	GridY        float32
	MoveCooldown timer.Timer
	Facing       float32
}

// Transform maps the grid placement to world space. Grid X runs along
// world Z and grid Y along world X.
func (s *State) Transform() transform.Transform {
	return transform.FromXYZ(s.GridY, Height, s.GridX).
		WithRotation(transform.YawRotation(s.Facing))
}

// Controller applies directional input to a State.
type Controller struct {
	cfg Config
}

// NewController creates a controller for the given rules.
func NewController(cfg Config) *Controller {
	return &Controller{cfg: cfg}
}

// NewState creates the starting state: the configured start cell, clamped
// and snapped to whole cells, with the cooldown not yet elapsed.
func (c *Controller) NewState() State {
	return State{
		GridX:        c.clamp(float32(math.Round(float64(c.cfg.StartX)))),
		GridY:        c.clamp(float32(math.Round(float64(c.cfg.StartY)))),
		MoveCooldown: timer.New(c.cfg.MoveCooldown),
	}
}

// Update advances the cooldown by dt and, once it has elapsed, steps the
// grid position one cell per held direction. Directions are evaluated Up,
// Down, Right, Left; the last held one sets the facing. It returns the new
// world transform and true when a step was taken.
func (c *Controller) Update(s *State, dt time.Duration, keys input.Directions) (transform.Transform, bool) {
	s.MoveCooldown.Tick(dt)
	if !s.MoveCooldown.Finished() || !keys.Any() {
		return transform.Transform{}, false
	}

	if keys.Up {
		s.GridY = c.clamp(s.GridY + 1)
		s.Facing = FacingUp
	}
	if keys.Down {
		s.GridY = c.clamp(s.GridY - 1)
		s.Facing = FacingDown
	}
	if keys.Right {
		s.GridX = c.clamp(s.GridX + 1)
		s.Facing = FacingRight
	}
	if keys.Left {
		s.GridX = c.clamp(s.GridX - 1)
		s.Facing = FacingLeft
	}

	s.MoveCooldown.Reset()
	return s.Transform(), true
}

func (c *Controller) clamp(v float32) float32 {
	if v < c.cfg.MinGrid {
		return c.cfg.MinGrid
	}
	if v > c.cfg.MaxGrid {
		return c.cfg.MaxGrid
	}
	return v
}
