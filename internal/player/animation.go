package player

import (
	"time"

	"chosenoffset.com/colony/internal/core/timer"
)

// Motion is the animation latch state.
type Motion int

const (
	MotionIdle Motion = iota
	MotionSpeedingUp
	MotionRunning
)

// String returns the motion name.
func (m Motion) String() string {
	switch m {
	case MotionIdle:
		return "idle"
	case MotionSpeedingUp:
		return "speeding_up"
	case MotionRunning:
		return "running"
	default:
		return "unknown"
	}
}

// Clips names the animation clips played for each motion.
type Clips struct {
	Idle          string
	Running       string
	IdleToRunning string
}

// Animator picks the character's animation clip from held input. Holding a
// direction plays the idle-to-running transition, then loops running once
// the transition time has passed. Releasing returns to idle.
type Animator struct {
	clips   Clips
	motion  Motion
	speedUp timer.Timer
	clip    string

	// clipTime is how long the current clip has been playing.
	clipTime time.Duration
}

// NewAnimator creates an idle animator.
func NewAnimator(clips Clips, idleToRun time.Duration) *Animator {
	return &Animator{
		clips:   clips,
		motion:  MotionIdle,
		speedUp: timer.New(idleToRun),
		clip:    clips.Idle,
	}
}

// Update advances the latch by one frame and returns the clip to play and
// whether it differs from the previous frame's clip.
func (a *Animator) Update(dt time.Duration, held bool) (string, bool) {
	prev := a.clip
	a.step(held, dt)

	if a.clip != prev {
		a.clipTime = 0
		return a.clip, true
	}
	if dt > 0 {
		a.clipTime += dt
	}
	return a.clip, false
}

func (a *Animator) step(held bool, dt time.Duration) {
	if !held {
		a.motion = MotionIdle
		a.speedUp.Reset()
		a.clip = a.clips.Idle
		return
	}

	if a.motion == MotionIdle {
		a.motion = MotionSpeedingUp
		a.clip = a.clips.IdleToRunning
	}
	if a.motion == MotionSpeedingUp {
		a.speedUp.Tick(dt)
		if a.speedUp.Finished() {
			a.speedUp.Reset()
			a.motion = MotionRunning
			a.clip = a.clips.Running
		}
	}
}

// Motion returns the current latch state.
func (a *Animator) Motion() Motion {
	return a.motion
}

// Clip returns the clip currently playing.
func (a *Animator) Clip() string {
	return a.clip
}

// ClipTime returns how long the current clip has been playing.
func (a *Animator) ClipTime() time.Duration {
	return a.clipTime
}
