// Package input turns raw key state into the per-frame snapshot the
// gameplay systems consume.
package input

import "chosenoffset.com/colony/internal/render"

// Directions is the set of directional keys held during a frame.
type Directions struct {
	Up, Down, Left, Right bool
}

// Any reports whether at least one direction is held.
func (d Directions) Any() bool {
	return d.Up || d.Down || d.Left || d.Right
}

// Snapshot is everything the frame systems read from the keyboard.
type Snapshot struct {
	Directions Directions
	Quit       bool
	ToggleInfo bool
}

// Sample reads the current frame's input. Arrow keys and WASD both steer.
func Sample(m render.InputManager) Snapshot {
	return Snapshot{
		Directions: Directions{
			Up:    m.IsKeyPressed(render.KeyUp) || m.IsKeyPressed(render.KeyW),
			Down:  m.IsKeyPressed(render.KeyDown) || m.IsKeyPressed(render.KeyS),
			Left:  m.IsKeyPressed(render.KeyLeft) || m.IsKeyPressed(render.KeyA),
			Right: m.IsKeyPressed(render.KeyRight) || m.IsKeyPressed(render.KeyD),
		},
		Quit:       m.IsKeyJustPressed(render.KeyEscape),
		ToggleInfo: m.IsKeyJustPressed(render.KeyF3),
	}
}
