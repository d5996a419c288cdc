package game

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"

	"chosenoffset.com/colony/internal/assets"
	"chosenoffset.com/colony/internal/camera"
	"chosenoffset.com/colony/internal/core/transform"
	"chosenoffset.com/colony/internal/input"
	"chosenoffset.com/colony/internal/logger"
	"chosenoffset.com/colony/internal/player"
	"chosenoffset.com/colony/internal/world"
)

func (c *Client) registerSystems() {
	inputSys := System{Name: "input", Run: c.sampleInput}
	diagSys := System{Name: "diagnostics", Run: c.recordDiagnostics}

	c.schedule.OnEnter(PhaseLoading,
		System{Name: "start_loading", Run: c.startLoading},
		System{Name: "axis_indicator", Run: c.spawnAxisIndicator},
	)
	c.schedule.OnUpdate(PhaseLoading,
		inputSys,
		System{Name: "poll_assets", Run: c.pollAssets},
		diagSys,
	)

	c.schedule.OnEnter(PhasePlaying,
		System{Name: "setup_scene", Run: c.setupScene},
	)
	c.schedule.OnUpdate(PhasePlaying,
		inputSys,
		System{Name: "move_player", Run: c.movePlayer},
		System{Name: "animate_player", Run: c.animatePlayer},
		System{Name: "follow_camera", Run: c.followCamera},
		diagSys,
	)
}

func (c *Client) sampleInput(f *Frame) {
	f.Input = input.Sample(c.input)
	if f.Input.Quit {
		c.quit = true
	}
	if f.Input.ToggleInfo {
		c.showInfo = !c.showInfo
		if !c.showInfo {
			c.releaseOverlay()
		}
	}
}

func (c *Client) startLoading(*Frame) {
	c.log.Info("Loading assets")
	c.loader.Start(c.ctx)
}

func (c *Client) spawnAxisIndicator(*Frame) {
	if !c.cfg.Debug.AxisIndicator {
		return
	}
	c.world.SpawnAxisIndicator()
}

func (c *Client) pollAssets(*Frame) {
	if c.loadErr != nil {
		return
	}

	coll, err := c.loader.Poll()
	if errors.Is(err, assets.ErrNotReady) {
		return
	}
	if err != nil {
		c.loadErr = err
		c.log.Error("Asset loading failed", logger.Err(err))
		return
	}

	c.assets = coll
	c.log.Info("Assets ready", logger.Field{Key: "models", Value: len(coll.Models)})
	c.schedule.Transition(PhasePlaying)
}

// setupScene spawns the static scene, the player and the camera.
func (c *Client) setupScene(*Frame) {
	layout := c.assets.Scene

	c.world.SpawnGround(world.Ground{
		Size:  layout.Ground.Size,
		Color: layout.Ground.Color.NRGBA(1),
	})

	pl := layout.PointLight
	c.world.SpawnLight(transform.Identity().WithTranslation(pl.Position), world.Light{
		Kind:      world.PointLight,
		Intensity: pl.Intensity,
		Shadows:   pl.Shadows,
		Color:     pl.Color.NRGBA(1),
	})

	dl := layout.DirectionalLight
	c.world.SpawnLight(
		transform.Identity().WithTranslation(dl.Position).LookingAt(mgl32.Vec3{}, transform.Up),
		world.Light{
			Kind:        world.DirectionalLight,
			Illuminance: dl.Illuminance,
			Color:       dl.Color.NRGBA(1),
		})

	anim := player.NewAnimator(c.assets.PlayerClips, c.cfg.Player.IdleToRun)
	state := c.controller.NewState()
	c.world.SpawnPlayer(state, *anim)
	c.world.SpawnCamera(camera.InitialTransform())

	c.log.Info("Scene ready",
		logger.Field{Key: "entities", Value: c.world.EntityCount()},
		logger.Field{Key: "grid_x", Value: state.GridX},
		logger.Field{Key: "grid_y", Value: state.GridY})
}

func (c *Client) movePlayer(f *Frame) {
	state, ok := c.world.PlayerState()
	if !ok {
		if f.Input.Directions.Any() {
			c.log.Error("No player entity to move")
		}
		return
	}

	tr, moved := c.controller.Update(state, f.Delta, f.Input.Directions)
	if !moved {
		return
	}
	if !c.world.SetPlayerTransform(tr) {
		c.log.Error("No player entity to move")
		return
	}
	c.log.Debug("Player moved",
		logger.Field{Key: "grid_x", Value: state.GridX},
		logger.Field{Key: "grid_y", Value: state.GridY},
		logger.Field{Key: "facing", Value: state.Facing})
}

func (c *Client) animatePlayer(f *Frame) {
	anim, ok := c.world.PlayerAnimator()
	if !ok {
		return
	}
	if clip, changed := anim.Update(f.Delta, f.Input.Directions.Any()); changed {
		c.log.Debug("Player animation changed",
			logger.Field{Key: "clip", Value: clip},
			logger.Field{Key: "motion", Value: anim.Motion()})
	}
}

func (c *Client) followCamera(f *Frame) {
	focus, ok := c.world.CameraFocus()
	if !ok {
		c.log.Debug("No camera entity to follow with")
		return
	}

	target, found := c.world.PlayerPosition()
	tr, phase := c.follow.Update(focus, f.Delta, target, found)
	c.world.SetCameraTransform(tr)

	if phase != c.cameraPhase {
		c.cameraPhase = phase
		c.log.Debug("Camera follow changed",
			logger.Field{Key: "phase", Value: phase},
			logger.Field{Key: "current", Value: focus.Current})
	}
}

func (c *Client) recordDiagnostics(f *Frame) {
	if c.diag == nil {
		return
	}
	c.diag.Record(f.Raw, c.world.EntityCount())
}
