package world

import (
	"image/color"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"chosenoffset.com/colony/internal/camera"
	"chosenoffset.com/colony/internal/core/transform"
	"chosenoffset.com/colony/internal/player"
)

func spawnTestPlayer(w *World) {
	c := player.NewController(player.DefaultConfig())
	anim := player.NewAnimator(player.Clips{Idle: "idle"}, 500*time.Millisecond)
	w.SpawnPlayer(c.NewState(), *anim)
}

func TestEmptyWorldResolvesNothing(t *testing.T) {
	w := New()

	if _, ok := w.PlayerPosition(); ok {
		t.Error("Expected no player position in an empty world")
	}
	if _, ok := w.CameraFocus(); ok {
		t.Error("Expected no camera focus in an empty world")
	}
	if w.SetPlayerTransform(transform.Identity()) {
		t.Error("Expected player write to fail without a player")
	}
	if w.EntityCount() != 0 {
		t.Errorf("Expected 0 entities, got %d", w.EntityCount())
	}
}

func TestPlayerSpawnAndWrite(t *testing.T) {
	w := New()
	spawnTestPlayer(w)

	pos, ok := w.PlayerPosition()
	if !ok {
		t.Fatal("Expected player to resolve")
	}
	if !pos.ApproxEqual(mgl32.Vec3{0, player.Height, 0}) {
		t.Errorf("Expected spawn at origin cell, got %v", pos)
	}

	state, ok := w.PlayerState()
	if !ok {
		t.Fatal("Expected player state")
	}
	state.GridX = 4
	if !w.SetPlayerTransform(state.Transform()) {
		t.Fatal("Expected player write to succeed")
	}

	pos, _ = w.PlayerPosition()
	if !pos.ApproxEqual(mgl32.Vec3{0, player.Height, 4}) {
		t.Errorf("Expected written position, got %v", pos)
	}

	again, _ := w.PlayerState()
	if again.GridX != 4 {
		t.Errorf("Expected state mutation to persist, got grid x %v", again.GridX)
	}
}

func TestDespawnClearsHandle(t *testing.T) {
	w := New()
	spawnTestPlayer(w)
	e := w.Player

	w.Despawn(e)

	if !w.Player.IsZero() {
		t.Error("Expected player handle cleared")
	}
	if _, ok := w.PlayerPosition(); ok {
		t.Error("Expected despawned player to no longer resolve")
	}
	// A stale handle must not resolve either.
	w.Player = e
	if _, ok := w.PlayerPosition(); ok {
		t.Error("Expected stale handle to not resolve")
	}
}

func TestRespawnReplacesPlayer(t *testing.T) {
	w := New()
	spawnTestPlayer(w)
	spawnTestPlayer(w)

	if w.EntityCount() != 1 {
		t.Errorf("Expected a single player entity, got %d", w.EntityCount())
	}
}

func TestCameraSpawn(t *testing.T) {
	w := New()
	w.SpawnCamera(camera.InitialTransform())

	focus, ok := w.CameraFocus()
	if !ok {
		t.Fatal("Expected camera focus")
	}
	if focus.Current != (mgl32.Vec3{}) || focus.Desired != (mgl32.Vec3{}) {
		t.Errorf("Expected zeroed focus, got %+v", *focus)
	}

	tr := transform.FromXYZ(1, 2, 3)
	if !w.SetCameraTransform(tr) {
		t.Fatal("Expected camera write to succeed")
	}
	got, _ := w.CameraTransform()
	if got.Translation != tr.Translation {
		t.Errorf("Expected %v, got %v", tr.Translation, got.Translation)
	}
}

func TestSceneQueries(t *testing.T) {
	w := New()
	w.SpawnGround(Ground{Size: 15, Color: color.NRGBA{77, 128, 77, 255}})
	w.SpawnLight(transform.FromXYZ(4, 15, 4), Light{Kind: PointLight, Intensity: 1500})
	w.SpawnLight(transform.FromXYZ(-2, 9999, -2), Light{Kind: DirectionalLight, Illuminance: 4000})
	parts := w.SpawnAxisIndicator()

	if len(parts) != 6 {
		t.Errorf("Expected 6 axis parts, got %d", len(parts))
	}

	grounds, lights, heads := 0, 0, 0
	w.EachGround(func(_ transform.Transform, g Ground) {
		grounds++
		if g.Size != 15 {
			t.Errorf("Expected ground size 15, got %v", g.Size)
		}
	})
	w.EachLight(func(_ transform.Transform, _ Light) { lights++ })
	w.EachAxisPart(func(tr transform.Transform, a AxisPart) {
		if a.Head {
			heads++
			if tr.Translation[a.Axis] != 1 {
				t.Errorf("Expected head of axis %d at 1, got %v", a.Axis, tr.Translation)
			}
		}
	})

	if grounds != 1 || lights != 2 || heads != 3 {
		t.Errorf("Expected 1 ground, 2 lights, 3 heads; got %d, %d, %d", grounds, lights, heads)
	}
	if w.EntityCount() != 9 {
		t.Errorf("Expected 9 entities, got %d", w.EntityCount())
	}
}
