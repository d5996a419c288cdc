package world

import "image/color"

// Ground is a flat square centred on its transform.
type Ground struct {
	Size  float32
	Color color.NRGBA
}

// LightKind distinguishes light sources.
type LightKind int

const (
	PointLight LightKind = iota
	DirectionalLight
)

// String returns the light kind name.
func (k LightKind) String() string {
	if k == DirectionalLight {
		return "directional"
	}
	return "point"
}

// Light is a scene light. Point lights use Intensity, directional lights
// use Illuminance and shine along the transform's forward axis.
type Light struct {
	Kind        LightKind
	Intensity   float32
	Illuminance float32
	Shadows     bool
	Color       color.NRGBA
}

// AxisPart is one arrow segment of the debug axis indicator.
type AxisPart struct {
	Axis   int // 0=X, 1=Y, 2=Z
	Head   bool
	Length float32
	Color  color.NRGBA
}
