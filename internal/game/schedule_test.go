package game

import (
	"reflect"
	"testing"
)

func recordingSystem(name string, trace *[]string) System {
	return System{Name: name, Run: func(*Frame) { *trace = append(*trace, name) }}
}

func TestSchedule_RunsInRegistrationOrder(t *testing.T) {
	var trace []string
	s := NewSchedule(PhaseLoading)
	s.OnEnter(PhaseLoading, recordingSystem("start", &trace))
	s.OnUpdate(PhaseLoading, recordingSystem("a", &trace), recordingSystem("b", &trace))
	s.OnUpdate(PhaseLoading, recordingSystem("c", &trace))
	s.OnUpdate(PhasePlaying, recordingSystem("never", &trace))

	s.Run(&Frame{})
	s.Run(&Frame{})

	want := []string{"start", "a", "b", "c", "a", "b", "c"}
	if !reflect.DeepEqual(trace, want) {
		t.Errorf("Expected %v, got %v", want, trace)
	}
}

func TestSchedule_TransitionRunsEnterAtEndOfFrame(t *testing.T) {
	var trace []string
	s := NewSchedule(PhaseLoading)
	s.OnUpdate(PhaseLoading, System{Name: "poll", Run: func(*Frame) {
		trace = append(trace, "poll")
		s.Transition(PhasePlaying)
	}})
	s.OnUpdate(PhaseLoading, recordingSystem("after-poll", &trace))
	s.OnEnter(PhasePlaying, recordingSystem("setup", &trace))
	s.OnUpdate(PhasePlaying, recordingSystem("play", &trace))

	s.Run(&Frame{})
	if s.Phase() != PhasePlaying {
		t.Fatalf("Expected playing after transition, got %s", s.Phase())
	}
	s.Run(&Frame{})

	want := []string{"poll", "after-poll", "setup", "play"}
	if !reflect.DeepEqual(trace, want) {
		t.Errorf("Expected %v, got %v", want, trace)
	}
}

func TestSchedule_TransitionToCurrentPhaseIsNoop(t *testing.T) {
	enters := 0
	s := NewSchedule(PhasePlaying)
	s.OnEnter(PhasePlaying, System{Name: "count", Run: func(*Frame) { enters++ }})

	s.Run(&Frame{})
	s.Transition(PhasePlaying)
	s.Run(&Frame{})

	if enters != 1 {
		t.Errorf("Expected a single enter, got %d", enters)
	}
}
