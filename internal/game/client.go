// Package game drives the client: it owns the world, runs the per-phase
// systems each frame and draws the result.
package game

import (
	"context"
	"time"

	"chosenoffset.com/colony/internal/assets"
	"chosenoffset.com/colony/internal/camera"
	"chosenoffset.com/colony/internal/config"
	"chosenoffset.com/colony/internal/diagnostics"
	"chosenoffset.com/colony/internal/logger"
	"chosenoffset.com/colony/internal/player"
	"chosenoffset.com/colony/internal/render"
	"chosenoffset.com/colony/internal/render/scene"
	"chosenoffset.com/colony/internal/world"
)

// AssetLoader produces the asset collection in the background.
type AssetLoader interface {
	Start(ctx context.Context)
	Poll() (*assets.Collection, error)
}

// Options wires a Client to its host.
type Options struct {
	Config   *config.Config
	Renderer render.Renderer
	Input    render.InputManager
	Assets   AssetLoader
	Logger   logger.Logger

	// Now is the frame clock. Defaults to time.Now.
	Now func() time.Time
}

// Client implements render.Game.
type Client struct {
	ctx      context.Context
	cfg      *config.Config
	renderer render.Renderer
	input    render.InputManager
	loader   AssetLoader
	log      logger.Logger

	now  func() time.Time
	last time.Time

	schedule   *Schedule
	frame      Frame
	world      *world.World
	controller *player.Controller
	follow     *camera.Follow
	view       *scene.View
	diag       *diagnostics.Diagnostics

	assets      *assets.Collection
	loadErr     error
	cameraPhase camera.Phase
	showInfo    bool
	overlay     render.Image
	quit        bool

	ScreenWidth  int
	ScreenHeight int
}

// NewClient creates a client in the Loading phase. Loading starts on the
// first Update and is cancelled with ctx.
func NewClient(ctx context.Context, opts Options) *Client {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	log := opts.Logger
	if log == nil {
		log = logger.FromContext(ctx)
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	c := &Client{
		ctx:          ctx,
		cfg:          cfg,
		renderer:     opts.Renderer,
		input:        opts.Input,
		loader:       opts.Assets,
		log:          log.With(logger.Field{Key: "component", Value: "game"}),
		now:          now,
		schedule:     NewSchedule(PhaseLoading),
		world:        world.New(),
		controller:   player.NewController(cfg.Player),
		follow:       camera.NewFollow(cfg.Camera),
		view:         scene.NewView(opts.Renderer, cfg.Camera),
		showInfo:     cfg.Debug.Diagnostics,
		ScreenWidth:  cfg.Window.Width,
		ScreenHeight: cfg.Window.Height,
	}
	if cfg.Debug.Diagnostics {
		c.diag = diagnostics.New(log, cfg.Debug.LogInterval)
	}
	c.registerSystems()
	return c
}

// Phase returns the current phase.
func (c *Client) Phase() Phase {
	return c.schedule.Phase()
}

// World returns the client's entity store.
func (c *Client) World() *world.World {
	return c.world
}

// Update advances one frame. It returns render.ErrQuit once Escape has
// been pressed or the client's context is done.
func (c *Client) Update() error {
	if err := c.ctx.Err(); err != nil {
		c.log.Info("Context done, closing", logger.Err(err))
		return render.ErrQuit
	}

	now := c.now()
	var raw time.Duration
	if !c.last.IsZero() {
		raw = now.Sub(c.last)
	}
	c.last = now

	c.frame = Frame{
		Raw:   raw,
		Delta: clampDelta(raw, c.cfg.Render.MaxFrameDelta),
	}
	c.schedule.Run(&c.frame)

	if c.quit {
		c.log.Info("Escape pressed, closing")
		return render.ErrQuit
	}
	return nil
}

// Layout tracks the window size; the logical screen matches it.
func (c *Client) Layout(outsideWidth, outsideHeight int) (int, int) {
	c.ScreenWidth, c.ScreenHeight = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// clampDelta bounds dt to [0, limit].
func clampDelta(dt, limit time.Duration) time.Duration {
	if dt < 0 {
		return 0
	}
	if limit > 0 && dt > limit {
		return limit
	}
	return dt
}
