// Package sim implements the gravitational N-body simulation core: the body
// store, the force/integration step, collision merging, click selection and
// orbit prediction. It has no knowledge of terminals, timing or input devices;
// hosts feed it time steps and click points and read back drawable snapshots.
package sim

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// BodyID identifies a body for the lifetime of a store. IDs are never reused.
type BodyID int

// SunID is the reserved identity of the sun.
const SunID BodyID = -1

// unitSphereVolume is the volume factor of a sphere of radius 1 (4/3·π).
const unitSphereVolume = 4.0 / 3.0 * math.Pi

// Body is a circular mass point.
type Body struct {
	ID       BodyID
	Position r2.Vec
	Velocity r2.Vec
	Mass     float64
	Radius   float64
	Sun      bool // immune to gravity, still attracts and collides
	Selected bool
}

// RadiusFromMass returns the radius of a uniform-density sphere of the given mass.
func RadiusFromMass(mass float64) float64 {
	return math.Cbrt(mass / unitSphereVolume)
}

// NewBody creates a body whose radius is derived from its mass.
func NewBody(position, velocity r2.Vec, mass float64) Body {
	return Body{
		Position: position,
		Velocity: velocity,
		Mass:     mass,
		Radius:   RadiusFromMass(mass),
	}
}

// NewSun creates the sun at the given position with zero velocity.
func NewSun(position r2.Vec, mass float64) Body {
	b := NewBody(position, r2.Vec{}, mass)
	b.ID = SunID
	b.Sun = true
	return b
}

// Overlapping reports whether two bodies' disks intersect.
// Disks that merely touch do not overlap.
func Overlapping(a, b Body) bool {
	reach := a.Radius + b.Radius
	return r2.Norm2(r2.Sub(b.Position, a.Position)) < reach*reach
}

// surfaceDistance returns how far p lies outside the body's disk, or 0 when inside.
func (b Body) surfaceDistance(p r2.Vec) float64 {
	return math.Max(0, r2.Norm(r2.Sub(p, b.Position))-b.Radius)
}
