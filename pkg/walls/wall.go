package walls

import (
	"fmt"

	"github.com/epjengine/epj/pkg/geom"
)

// Rotation is a wall's rotation around the vertical axis. Only quarter turns
// of 0 and 90 degrees exist.
type Rotation uint8

const (
	Rotation0 Rotation = iota
	Rotation90
)

func (r Rotation) Degrees() float64 {
	if r == Rotation90 {
		return 90
	}
	return 0
}

func (r Rotation) String() string {
	return fmt.Sprintf("%g°", r.Degrees())
}

func (r Rotation) Valid() bool {
	return r == Rotation0 || r == Rotation90
}

// Wall is a ground-anchored wall segment. Width, Height and Depth are
// half-extents along the wall's local axes.
type Wall struct {
	X, Y, Z  float64
	Width    float64
	Height   float64
	Depth    float64
	Rotation Rotation
}

// New returns a wall standing on the ground plane at (x, z).
func New(x, z, width, height, depth float64, rotation Rotation) Wall {
	return Wall{
		X:        x,
		Z:        z,
		Width:    width,
		Height:   height,
		Depth:    depth,
		Rotation: rotation,
	}
}

func (w Wall) Position() geom.Vector {
	return geom.NewVector(w.X, w.Y, w.Z)
}

// EffectiveWidth is the half-extent along world X.
func (w Wall) EffectiveWidth() float64 {
	if w.Rotation == Rotation90 {
		return w.Depth
	}
	return w.Width
}

// EffectiveDepth is the half-extent along world Z.
func (w Wall) EffectiveDepth() float64 {
	if w.Rotation == Rotation90 {
		return w.Width
	}
	return w.Depth
}

// Footprint is the wall's projection onto the ground plane.
func (w Wall) Footprint() geom.Rect {
	return geom.Rect{
		CenterX: w.X,
		CenterZ: w.Z,
		HalfX:   w.EffectiveWidth(),
		HalfZ:   w.EffectiveDepth(),
	}
}

// Overlaps reports whether the footprints of w and o intersect.
func (w Wall) Overlaps(o Wall) bool {
	return w.Footprint().Intersects(o.Footprint())
}

func (w Wall) String() string {
	return fmt.Sprintf(
		"(%.2f, %.2f, %.2f) %gx%gx%g %s",
		w.X, w.Y, w.Z,
		w.Width, w.Height, w.Depth,
		w.Rotation,
	)
}
