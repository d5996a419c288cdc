// Package transform holds the world-space placement of an entity.
package transform

import "github.com/go-gl/mathgl/mgl32"

// Up is the world's vertical axis.
var Up = mgl32.Vec3{0, 1, 0}

// Transform is a world position and orientation. The rotation maps the
// entity's local axes to world axes, with local forward pointing at -Z.
type Transform struct {
	Translation mgl32.Vec3
	Rotation    mgl32.Quat
}

// Identity returns a transform at the origin with no rotation.
func Identity() Transform {
	return Transform{Rotation: mgl32.QuatIdent()}
}

// FromXYZ returns an unrotated transform at (x, y, z).
func FromXYZ(x, y, z float32) Transform {
	return Transform{Translation: mgl32.Vec3{x, y, z}, Rotation: mgl32.QuatIdent()}
}

// WithRotation returns a copy of t using rotation r.
func (t Transform) WithRotation(r mgl32.Quat) Transform {
	t.Rotation = r
	return t
}

// WithTranslation returns a copy of t moved to p.
func (t Transform) WithTranslation(p mgl32.Vec3) Transform {
	t.Translation = p
	return t
}

// LookingAt returns a copy of t rotated so that forward points at target.
func (t Transform) LookingAt(target, up mgl32.Vec3) Transform {
	t.LookAt(target, up)
	return t
}

// LookAt rotates t in place so that forward points at target. If target
// coincides with the translation, or lies straight along up, the rotation
// is left unchanged.
func (t *Transform) LookAt(target, up mgl32.Vec3) {
	dir := target.Sub(t.Translation)
	if dir.Len() < 1e-6 || dir.Normalize().Cross(up).Len() < 1e-6 {
		return
	}
	// LookAtV yields the view rotation; the entity rotation is its inverse.
	view := mgl32.LookAtV(mgl32.Vec3{}, dir, up)
	t.Rotation = mgl32.Mat4ToQuat(view).Normalize().Inverse()
}

// YawRotation returns a rotation of angle radians about the vertical axis.
func YawRotation(angle float32) mgl32.Quat {
	return mgl32.QuatRotate(angle, Up)
}

// Forward returns the direction the transform faces.
func (t Transform) Forward() mgl32.Vec3 {
	return t.Rotation.Rotate(mgl32.Vec3{0, 0, -1})
}

// Matrix returns the local-to-world matrix.
func (t Transform) Matrix() mgl32.Mat4 {
	return mgl32.Translate3D(t.Translation.X(), t.Translation.Y(), t.Translation.Z()).Mul4(t.Rotation.Mat4())
}

// ViewMatrix returns the world-to-local matrix, used when t is a camera.
func (t Transform) ViewMatrix() mgl32.Mat4 {
	inv := t.Rotation.Conjugate().Mat4()
	return inv.Mul4(mgl32.Translate3D(-t.Translation.X(), -t.Translation.Y(), -t.Translation.Z()))
}
