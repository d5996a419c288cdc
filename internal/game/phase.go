package game

// Phase is the client's top-level state.
type Phase int

const (
	// PhaseLoading waits for the asset collection.
	PhaseLoading Phase = iota
	// PhasePlaying runs the scene.
	PhasePlaying
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhasePlaying:
		return "playing"
	default:
		return "unknown"
	}
}
