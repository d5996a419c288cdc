package world

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/mlange-42/ark/ecs"

	"chosenoffset.com/colony/internal/camera"
	"chosenoffset.com/colony/internal/core/transform"
	"chosenoffset.com/colony/internal/player"
)

// SpawnPlayer creates the controlled entity at the state's grid cell and
// records it as the world's player. An existing player is replaced.
func (w *World) SpawnPlayer(state player.State, anim player.Animator) ecs.Entity {
	w.Despawn(w.Player)
	tr := state.Transform()
	w.Player = w.players.NewEntity(&tr, &state, &anim)
	return w.Player
}

// SpawnCamera creates the main camera with a zeroed focus. An existing
// camera is replaced.
func (w *World) SpawnCamera(tr transform.Transform) ecs.Entity {
	w.Despawn(w.Camera)
	focus := camera.FocusState{}
	w.Camera = w.cameras.NewEntity(&tr, &focus)
	return w.Camera
}

// SpawnGround creates a ground plane at the origin.
func (w *World) SpawnGround(g Ground) ecs.Entity {
	tr := transform.Identity()
	return w.grounds.NewEntity(&tr, &g)
}

// SpawnLight creates a light placed by tr.
func (w *World) SpawnLight(tr transform.Transform, l Light) ecs.Entity {
	return w.lights.NewEntity(&tr, &l)
}

// SpawnAxisIndicator creates a body and a head segment for each of the X, Y
// and Z axes, coloured red, green and blue.
func (w *World) SpawnAxisIndicator() []ecs.Entity {
	axes := []struct {
		dir mgl32.Vec3
		rot mgl32.Quat
	}{
		{mgl32.Vec3{1, 0, 0}, mgl32.QuatRotate(math.Pi/2, mgl32.Vec3{0, 0, 1})},
		{mgl32.Vec3{0, 1, 0}, mgl32.QuatRotate(math.Pi/2, mgl32.Vec3{0, 1, 0})},
		{mgl32.Vec3{0, 0, 1}, mgl32.QuatRotate(math.Pi/2, mgl32.Vec3{1, 0, 0})},
	}

	entities := make([]ecs.Entity, 0, len(axes)*2)
	for i, a := range axes {
		clr := axisColor(a.dir)

		body := transform.Identity().WithTranslation(a.dir.Mul(0.5)).WithRotation(a.rot)
		bodyPart := AxisPart{Axis: i, Length: 1, Color: clr}
		entities = append(entities, w.axes.NewEntity(&body, &bodyPart))

		head := body.WithTranslation(a.dir)
		headPart := AxisPart{Axis: i, Head: true, Length: 0.04, Color: clr}
		entities = append(entities, w.axes.NewEntity(&head, &headPart))
	}
	return entities
}

func axisColor(axis mgl32.Vec3) color.NRGBA {
	return color.NRGBA{
		R: uint8(axis.X() * 255),
		G: uint8(axis.Y() * 255),
		B: uint8(axis.Z() * 255),
		A: uint8(0.8 * 255),
	}
}
