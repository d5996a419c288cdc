package game

import (
	"fmt"
	"image/color"
	"strings"

	"chosenoffset.com/colony/internal/render"
	"chosenoffset.com/colony/internal/render/scene"
)

var overlayShadow = color.NRGBA{0, 0, 0, 160}

// Draw renders the current phase.
func (c *Client) Draw(screen render.Image) {
	screen.Fill(c.cfg.Render.ClearColor.NRGBA(1))

	switch c.schedule.Phase() {
	case PhaseLoading:
		c.drawLoading(screen)
	case PhasePlaying:
		c.view.Draw(screen, c.world, c.playerAppearance(), scene.Options{Focus: c.overlayVisible()})
	}

	if c.overlayVisible() {
		c.drawOverlay(screen)
	}
}

func (c *Client) overlayVisible() bool {
	return c.diag != nil && c.showInfo
}

func (c *Client) playerAppearance() scene.Player {
	p := scene.Player{}
	if c.assets != nil {
		p.Model = c.assets.PlayerModel
	}
	if anim, ok := c.world.PlayerAnimator(); ok {
		p.Motion = anim.Motion()
		p.Clip = anim.Clip()
		p.ClipTime = anim.ClipTime()
	}
	return p
}

func (c *Client) drawLoading(screen render.Image) {
	msg := "Loading..."
	if c.loadErr != nil {
		msg = fmt.Sprintf("Failed to load assets:\n%v\n\nPress Esc to quit", c.loadErr)
	}

	w, h := screen.Size()
	tw, th := c.renderer.MeasureText(msg)
	c.renderer.DrawText(screen, msg, (w-tw)/2, (h-th)/2)
}

func (c *Client) drawOverlay(screen render.Image) {
	lines := append([]string{"phase: " + c.schedule.Phase().String()}, c.diag.Lines()...)

	if state, ok := c.world.PlayerState(); ok {
		lines = append(lines, fmt.Sprintf("grid: (%.0f, %.0f) facing %.2f", state.GridX, state.GridY, state.Facing))
	}
	if anim, ok := c.world.PlayerAnimator(); ok {
		lines = append(lines, fmt.Sprintf("animation: %s (%s)", anim.Clip(), anim.Motion()))
	}
	if focus, ok := c.world.CameraFocus(); ok {
		lines = append(lines, fmt.Sprintf("camera: %s desired %.2f current %.2f",
			c.cameraPhase, focus.Desired, focus.Current))
	}

	text := strings.Join(lines, "\n")
	tw, th := c.renderer.MeasureText(text)
	w, h := tw+8, th+8

	// The panel is composed off-screen and reallocated when its size changes.
	if c.overlay != nil {
		if ow, oh := c.overlay.Size(); ow != w || oh != h {
			c.releaseOverlay()
		}
	}
	if c.overlay == nil {
		c.overlay = c.renderer.NewImage(w, h)
	}
	c.overlay.Clear()
	c.renderer.FillRect(c.overlay, 0, 0, float32(w), float32(h), overlayShadow)
	c.renderer.DrawText(c.overlay, text, 4, 4)
	c.renderer.DrawImage(screen, c.overlay, 4, 4)
}

func (c *Client) releaseOverlay() {
	if c.overlay != nil {
		c.overlay.Dispose()
		c.overlay = nil
	}
}
