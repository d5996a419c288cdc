// Package world stores the scene's entities in an ark ECS world and
// resolves the player and camera handles each frame.
package world

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/mlange-42/ark/ecs"

	"chosenoffset.com/colony/internal/camera"
	"chosenoffset.com/colony/internal/core/transform"
	"chosenoffset.com/colony/internal/player"
)

// World owns the ECS world, its component mappers and the handles of the
// entities the frame systems address directly.
type World struct {
	ECS ecs.World

	transforms *ecs.Map[transform.Transform]
	states     *ecs.Map[player.State]
	animators  *ecs.Map[player.Animator]
	focuses    *ecs.Map[camera.FocusState]

	players *ecs.Map3[transform.Transform, player.State, player.Animator]
	cameras *ecs.Map2[transform.Transform, camera.FocusState]
	grounds *ecs.Map2[transform.Transform, Ground]
	lights  *ecs.Map2[transform.Transform, Light]
	axes    *ecs.Map2[transform.Transform, AxisPart]

	all         *ecs.Filter1[transform.Transform]
	groundQuery *ecs.Filter2[transform.Transform, Ground]
	lightQuery  *ecs.Filter2[transform.Transform, Light]
	axisQuery   *ecs.Filter2[transform.Transform, AxisPart]

	// Player and Camera are the controlled entity and the main camera.
	// The zero entity means none has been spawned.
	Player ecs.Entity
	Camera ecs.Entity
}

// New creates an empty world.
func New() *World {
	w := &World{ECS: ecs.NewWorld(256)}
	ew := &w.ECS

	w.transforms = ecs.NewMap[transform.Transform](ew)
	w.states = ecs.NewMap[player.State](ew)
	w.animators = ecs.NewMap[player.Animator](ew)
	w.focuses = ecs.NewMap[camera.FocusState](ew)

	w.players = ecs.NewMap3[transform.Transform, player.State, player.Animator](ew)
	w.cameras = ecs.NewMap2[transform.Transform, camera.FocusState](ew)
	w.grounds = ecs.NewMap2[transform.Transform, Ground](ew)
	w.lights = ecs.NewMap2[transform.Transform, Light](ew)
	w.axes = ecs.NewMap2[transform.Transform, AxisPart](ew)

	w.all = ecs.NewFilter1[transform.Transform](ew)
	w.groundQuery = ecs.NewFilter2[transform.Transform, Ground](ew)
	w.lightQuery = ecs.NewFilter2[transform.Transform, Light](ew)
	w.axisQuery = ecs.NewFilter2[transform.Transform, AxisPart](ew)
	return w
}

// resolve reports whether e names a live entity.
func (w *World) resolve(e ecs.Entity) bool {
	return !e.IsZero() && w.ECS.Alive(e)
}

// PlayerState returns the controlled entity's grid state.
func (w *World) PlayerState() (*player.State, bool) {
	if !w.resolve(w.Player) {
		return nil, false
	}
	return w.states.Get(w.Player), true
}

// PlayerAnimator returns the controlled entity's animation latch.
func (w *World) PlayerAnimator() (*player.Animator, bool) {
	if !w.resolve(w.Player) {
		return nil, false
	}
	return w.animators.Get(w.Player), true
}

// PlayerPosition returns the controlled entity's world position.
func (w *World) PlayerPosition() (mgl32.Vec3, bool) {
	if !w.resolve(w.Player) {
		return mgl32.Vec3{}, false
	}
	return w.transforms.Get(w.Player).Translation, true
}

// PlayerTransform returns the controlled entity's transform.
func (w *World) PlayerTransform() (transform.Transform, bool) {
	if !w.resolve(w.Player) {
		return transform.Transform{}, false
	}
	return *w.transforms.Get(w.Player), true
}

// SetPlayerTransform writes the controlled entity's transform. It returns
// false when there is no live player to write to.
func (w *World) SetPlayerTransform(t transform.Transform) bool {
	if !w.resolve(w.Player) {
		return false
	}
	*w.transforms.Get(w.Player) = t
	return true
}

// CameraFocus returns the main camera's focus state.
func (w *World) CameraFocus() (*camera.FocusState, bool) {
	if !w.resolve(w.Camera) {
		return nil, false
	}
	return w.focuses.Get(w.Camera), true
}

// CameraTransform returns the main camera's transform.
func (w *World) CameraTransform() (transform.Transform, bool) {
	if !w.resolve(w.Camera) {
		return transform.Transform{}, false
	}
	return *w.transforms.Get(w.Camera), true
}

// SetCameraTransform writes the main camera's transform.
func (w *World) SetCameraTransform(t transform.Transform) bool {
	if !w.resolve(w.Camera) {
		return false
	}
	*w.transforms.Get(w.Camera) = t
	return true
}

// Despawn removes e from the world and clears any handle naming it.
func (w *World) Despawn(e ecs.Entity) {
	if !w.resolve(e) {
		return
	}
	w.ECS.RemoveEntity(e)
	if e == w.Player {
		w.Player = ecs.Entity{}
	}
	if e == w.Camera {
		w.Camera = ecs.Entity{}
	}
}

// EntityCount returns the number of live entities with a transform.
func (w *World) EntityCount() int {
	n := 0
	q := w.all.Query()
	for q.Next() {
		n++
	}
	return n
}

// EachGround calls fn for every ground plane.
func (w *World) EachGround(fn func(transform.Transform, Ground)) {
	q := w.groundQuery.Query()
	for q.Next() {
		tr, g := q.Get()
		fn(*tr, *g)
	}
}

// EachLight calls fn for every light.
func (w *World) EachLight(fn func(transform.Transform, Light)) {
	q := w.lightQuery.Query()
	for q.Next() {
		tr, l := q.Get()
		fn(*tr, *l)
	}
}

// EachAxisPart calls fn for every axis indicator segment.
func (w *World) EachAxisPart(fn func(transform.Transform, AxisPart)) {
	q := w.axisQuery.Query()
	for q.Next() {
		tr, a := q.Get()
		fn(*tr, *a)
	}
}
