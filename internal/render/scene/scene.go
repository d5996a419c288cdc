// Package scene draws the world as a projected wireframe through the main
// camera.
package scene

import (
	"image/color"
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"chosenoffset.com/colony/internal/assets"
	"chosenoffset.com/colony/internal/camera"
	"chosenoffset.com/colony/internal/core/transform"
	"chosenoffset.com/colony/internal/player"
	"chosenoffset.com/colony/internal/render"
	"chosenoffset.com/colony/internal/world"
)

var (
	facingColor  = color.NRGBA{220, 40, 40, 255}
	desiredColor = color.NRGBA{60, 220, 60, 255}
	currentColor = color.NRGBA{220, 60, 220, 255}
)

// motionTints colours the player wireframe by the animation latch state.
var motionTints = map[player.Motion]color.NRGBA{
	player.MotionIdle:       {240, 240, 240, 255},
	player.MotionSpeedingUp: {240, 220, 80, 255},
	player.MotionRunning:    {250, 150, 40, 255},
}

// Player is what the view needs to draw the controlled entity.
type Player struct {
	Model    *assets.Model // nil draws a marker
	Motion   player.Motion
	Clip     string
	ClipTime time.Duration
}

// Options toggles debug layers.
type Options struct {
	// Focus draws the camera's desired and current focus points.
	Focus bool
}

// View draws a world through its camera.
type View struct {
	renderer render.Renderer
	camera   camera.Config
}

// NewView creates a view that projects with the camera configuration.
func NewView(r render.Renderer, cfg camera.Config) *View {
	return &View{renderer: r, camera: cfg}
}

// Draw renders w onto dst. Nothing is drawn while the world has no camera.
func (v *View) Draw(dst render.Image, w *world.World, p Player, opts Options) {
	cam, ok := w.CameraTransform()
	if !ok {
		return
	}
	width, height := dst.Size()
	proj := v.camera.NewProjection(cam, width, height)

	w.EachGround(func(tr transform.Transform, g world.Ground) {
		v.drawGround(dst, proj, tr, g)
	})
	w.EachLight(func(tr transform.Transform, l world.Light) {
		v.drawLight(dst, proj, tr, l)
	})
	w.EachAxisPart(func(tr transform.Transform, a world.AxisPart) {
		v.drawAxisPart(dst, proj, tr, a)
	})

	if tr, ok := w.PlayerTransform(); ok {
		v.drawPlayer(dst, proj, tr, p)
	}

	if opts.Focus {
		if focus, ok := w.CameraFocus(); ok {
			if x, y, ok := proj.ToScreen(focus.Desired); ok {
				v.renderer.StrokeCircle(dst, x, y, 6, 1.5, desiredColor)
			}
			if x, y, ok := proj.ToScreen(focus.Current); ok {
				v.renderer.FillCircle(dst, x, y, 3, currentColor)
			}
		}
	}
}

// line draws a world-space segment. Segments with an endpoint outside the
// view volume are dropped.
func (v *View) line(dst render.Image, proj camera.Projection, a, b mgl32.Vec3, width float32, clr color.Color) bool {
	x0, y0, ok0 := proj.ToScreen(a)
	x1, y1, ok1 := proj.ToScreen(b)
	if !ok0 || !ok1 {
		return false
	}
	v.renderer.StrokeLine(dst, x0, y0, x1, y1, width, clr)
	return true
}

// drawGround draws the plane as a grid of unit cells.
func (v *View) drawGround(dst render.Image, proj camera.Projection, tr transform.Transform, g world.Ground) {
	half := g.Size / 2
	m := tr.Matrix()
	cells := int(math.Ceil(float64(g.Size)))

	at := func(x, z float32) mgl32.Vec3 {
		return m.Mul4x1(mgl32.Vec4{x, 0, z, 1}).Vec3()
	}

	for i := 0; i <= cells; i++ {
		off := -half + float32(i)
		if off > half {
			off = half
		}
		for j := 0; j < cells; j++ {
			s := -half + float32(j)
			e := s + 1
			if e > half {
				e = half
			}
			v.line(dst, proj, at(off, s), at(off, e), 1, g.Color)
			v.line(dst, proj, at(s, off), at(e, off), 1, g.Color)
		}
	}
}

func (v *View) drawLight(dst render.Image, proj camera.Projection, tr transform.Transform, l world.Light) {
	switch l.Kind {
	case world.PointLight:
		x, y, ok := proj.ToScreen(tr.Translation)
		if !ok {
			return
		}
		radius := float32(4 + math.Log10(float64(l.Intensity)+1))
		v.renderer.FillCircle(dst, x, y, radius, l.Color)
		if l.Shadows {
			foot := tr.Translation
			foot[1] = 0
			v.line(dst, proj, tr.Translation, foot, 1, l.Color)
		}
	case world.DirectionalLight:
		// The sun itself is far outside the view volume; draw its direction
		// as a ray ending above the origin.
		dir := tr.Forward()
		end := mgl32.Vec3{0, 2, 0}
		start := end.Sub(dir.Mul(3))
		v.line(dst, proj, start, end, 2, l.Color)
		if x, y, ok := proj.ToScreen(start); ok {
			v.renderer.StrokeCircle(dst, x, y, 5, 1.5, l.Color)
		}
	}
}

func (v *View) drawAxisPart(dst render.Image, proj camera.Projection, tr transform.Transform, a world.AxisPart) {
	var dir mgl32.Vec3
	dir[a.Axis] = 1

	if a.Head {
		if x, y, ok := proj.ToScreen(tr.Translation); ok {
			v.renderer.FillCircle(dst, x, y, 4, a.Color)
		}
		return
	}
	half := dir.Mul(a.Length / 2)
	v.line(dst, proj, tr.Translation.Sub(half), tr.Translation.Add(half), 2, a.Color)
}

func (v *View) drawPlayer(dst render.Image, proj camera.Projection, tr transform.Transform, p Player) {
	tint, ok := motionTints[p.Motion]
	if !ok {
		tint = motionTints[player.MotionIdle]
	}

	if p.Model == nil {
		if x, y, ok := proj.ToScreen(tr.Translation); ok {
			v.renderer.FillCircle(dst, x, y, 6, tint)
		}
	} else {
		bob := float32(0)
		if clip, ok := p.Model.Clip(p.Clip); ok {
			bob = Bob(clip, p.ClipTime)
		}
		m := mgl32.Translate3D(0, bob, 0).Mul4(tr.Matrix())
		for _, e := range p.Model.Edges {
			a := m.Mul4x1(p.Model.Vertices[e[0]].Vec4(1)).Vec3()
			b := m.Mul4x1(p.Model.Vertices[e[1]].Vec4(1)).Vec3()
			v.line(dst, proj, a, b, 1.5, tint)
		}
	}

	v.line(dst, proj, tr.Translation, tr.Translation.Add(tr.Forward().Mul(0.8)), 2, facingColor)
}

// Bob returns the clip's vertical offset at time t. Looping clips repeat;
// one-shot clips hold their final pose.
func Bob(c assets.Clip, t time.Duration) float32 {
	if c.Duration <= 0 {
		return 0
	}
	if c.Loop {
		t %= c.Duration
	} else if t > c.Duration {
		t = c.Duration
	}
	phase := float64(t) / float64(c.Duration)
	return c.Amplitude * float32(math.Abs(math.Sin(phase*math.Pi)))
}
