package game

import (
	"time"

	"chosenoffset.com/colony/internal/input"
)

// Frame is the per-frame context passed to systems.
type Frame struct {
	// Delta is the clamped frame time the simulation advances by.
	Delta time.Duration
	// Raw is the measured frame time before clamping.
	Raw time.Duration

	// Input is filled in by the input system.
	Input input.Snapshot
}

// System is one named step of a phase.
type System struct {
	Name string
	Run  func(f *Frame)
}

// Schedule runs the systems of the current phase in registration order.
// Enter systems run once when a phase becomes current; update systems run
// every frame while it is.
type Schedule struct {
	phase   Phase
	started bool
	next    *Phase

	enter  map[Phase][]System
	update map[Phase][]System
}

// NewSchedule creates a schedule starting in initial.
func NewSchedule(initial Phase) *Schedule {
	return &Schedule{
		phase:  initial,
		enter:  make(map[Phase][]System),
		update: make(map[Phase][]System),
	}
}

// OnEnter appends systems run when p becomes current.
func (s *Schedule) OnEnter(p Phase, systems ...System) {
	s.enter[p] = append(s.enter[p], systems...)
}

// OnUpdate appends systems run every frame in p.
func (s *Schedule) OnUpdate(p Phase, systems ...System) {
	s.update[p] = append(s.update[p], systems...)
}

// Phase returns the current phase.
func (s *Schedule) Phase() Phase {
	return s.phase
}

// Transition requests a switch to p at the end of the current frame.
// Requesting the current phase does nothing.
func (s *Schedule) Transition(p Phase) {
	if p == s.phase {
		s.next = nil
		return
	}
	s.next = &p
}

// Run advances one frame. The first call runs the initial phase's enter
// systems before its update systems.
func (s *Schedule) Run(f *Frame) {
	if !s.started {
		s.started = true
		runAll(s.enter[s.phase], f)
	}

	runAll(s.update[s.phase], f)

	if s.next != nil {
		s.phase = *s.next
		s.next = nil
		runAll(s.enter[s.phase], f)
	}
}

func runAll(systems []System, f *Frame) {
	for _, sys := range systems {
		sys.Run(f)
	}
}
