package camera

import (
	"github.com/go-gl/mathgl/mgl32"

	"chosenoffset.com/colony/internal/core/transform"
)

// Projection maps world points to screen pixels for one frame.
type Projection struct {
	viewProj      mgl32.Mat4
	width, height float32
}

// NewProjection builds the projection for a camera transform and a
// viewport of the given size in pixels.
func (c Config) NewProjection(cam transform.Transform, width, height int) Projection {
	aspect := float32(1)
	if height > 0 {
		aspect = float32(width) / float32(height)
	}
	proj := mgl32.Perspective(mgl32.DegToRad(c.FovDegrees), aspect, c.Near, c.Far)
	return Projection{
		viewProj: proj.Mul4(cam.ViewMatrix()),
		width:    float32(width),
		height:   float32(height),
	}
}

// ToScreen projects p to screen coordinates with Y growing downward. It
// returns false for points behind the camera or outside the depth range.
func (p Projection) ToScreen(world mgl32.Vec3) (x, y float32, ok bool) {
	clip := p.viewProj.Mul4x1(world.Vec4(1))
	w := clip.W()
	if w <= 1e-6 {
		return 0, 0, false
	}
	ndc := clip.Vec3().Mul(1 / w)
	if ndc.Z() < -1 || ndc.Z() > 1 {
		return 0, 0, false
	}
	x = (ndc.X() + 1) / 2 * p.width
	y = (1 - ndc.Y()) / 2 * p.height
	return x, y, true
}
