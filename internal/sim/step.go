package sim

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/tui-gravity/internal/config"
)

// MergeRadius selects how an absorbing body's radius changes after a merge.
type MergeRadius int

const (
	// MergeRadiusStale keeps the absorber's radius unchanged.
	MergeRadiusStale MergeRadius = iota
	// MergeRadiusArea conserves disk area: r = sqrt(rA² + rB²).
	MergeRadiusArea
)

// ParseMergeRadius converts a config value to a MergeRadius.
func ParseMergeRadius(s string) (MergeRadius, error) {
	switch s {
	case config.MergeRadiusStale, "":
		return MergeRadiusStale, nil
	case config.MergeRadiusArea:
		return MergeRadiusArea, nil
	default:
		return 0, fmt.Errorf("sim: unknown merge radius mode %q", s)
	}
}

// Physics holds the tunables of one physics step.
type Physics struct {
	G           float64 // gravitational constant (a calibration knob)
	MinDistance float64 // floor applied to pair distances in the force law
	MergeRadius MergeRadius
}

// PhysicsFromConfig builds step parameters from configuration.
func PhysicsFromConfig(c config.PhysicsConfig) (Physics, error) {
	mode, err := ParseMergeRadius(c.MergeRadius)
	if err != nil {
		return Physics{}, err
	}
	return Physics{
		G:           c.GravitationalConstant,
		MinDistance: c.MinDistance,
		MergeRadius: mode,
	}, nil
}

// acceleration returns the acceleration that other exerts on a body at pos.
// Coincident points have no defined direction and contribute nothing.
func (p Physics) acceleration(pos r2.Vec, other Body) r2.Vec {
	diff := r2.Sub(other.Position, pos)
	d := r2.Norm(diff)
	if d == 0 {
		return r2.Vec{}
	}
	dist := math.Max(d, p.MinDistance)
	magnitude := p.G * other.Mass / (dist * dist)
	return r2.Scale(magnitude/d, diff)
}

// Integrate advances velocities then positions by dt (semi-implicit Euler).
// Every non-sun body accumulates the pull of all other bodies as seen in the
// input slice; the input is never modified.
func Integrate(bodies []Body, dt float64, p Physics) []Body {
	next := make([]Body, len(bodies))
	copy(next, bodies)

	for i := range next {
		if next[i].Sun {
			continue
		}
		var acc r2.Vec
		for j := range bodies {
			if i == j {
				continue
			}
			acc = r2.Add(acc, p.acceleration(bodies[i].Position, bodies[j]))
		}
		next[i].Velocity = r2.Add(next[i].Velocity, r2.Scale(dt, acc))
	}

	for i := range next {
		next[i].Position = r2.Add(next[i].Position, r2.Scale(dt, next[i].Velocity))
	}
	return next
}

// absorbs reports whether a swallows b when they overlap.
// Equal masses go to the lower ID so exactly one side survives.
func absorbs(a, b Body) bool {
	if a.Mass != b.Mass {
		return a.Mass > b.Mass
	}
	return a.ID < b.ID
}

// Collide resolves overlapping pairs. Each ordered pair (A, B) is judged from
// A's side only: a heavier A takes B's mass and a momentum nudge of
// B.Velocity·(B.Mass/A.Mass); a lighter A marks itself deleted. All decisions
// use the input state, so visiting (A, B) and (B, A) yields one absorber and
// one deletion. A body overlapping two heavier bodies feeds its mass to both.
//
// The sun is never judged from its own side: it keeps its mass and is never
// deleted. A lighter body touching it is still deleted, and a heavier one
// takes the sun's mass every tick they overlap.
func Collide(bodies []Body, mode MergeRadius) ([]Body, map[BodyID]struct{}, int) {
	next := make([]Body, len(bodies))
	copy(next, bodies)
	deleted := make(map[BodyID]struct{})
	merges := 0

	for i, a := range bodies {
		if a.Sun {
			continue
		}
		for j, b := range bodies {
			if i == j || !Overlapping(a, b) {
				continue
			}
			if !absorbs(a, b) {
				deleted[a.ID] = struct{}{}
				continue
			}
			next[i].Velocity = r2.Add(next[i].Velocity, r2.Scale(b.Mass/a.Mass, b.Velocity))
			next[i].Mass += b.Mass
			if mode == MergeRadiusArea {
				next[i].Radius = math.Hypot(next[i].Radius, b.Radius)
			}
			merges++
		}
	}
	return next, deleted, merges
}

// StepResult is the outcome of one physics step.
type StepResult struct {
	Bodies  []Body              // every input body, post-move and post-merge
	Deleted map[BodyID]struct{} // bodies swallowed this step
	Merges  int                 // absorption events this step
}

// Survivors returns the bodies not deleted this step, in order.
func (r StepResult) Survivors() []Body {
	out := make([]Body, 0, len(r.Bodies)-len(r.Deleted))
	for _, b := range r.Bodies {
		if _, gone := r.Deleted[b.ID]; !gone {
			out = append(out, b)
		}
	}
	return out
}

// Updates returns the per-ID state of the surviving bodies, ready for Store.Apply.
func (r StepResult) Updates() map[BodyID]BodyUpdate {
	updates := make(map[BodyID]BodyUpdate, len(r.Bodies))
	for _, b := range r.Bodies {
		if _, gone := r.Deleted[b.ID]; gone {
			continue
		}
		updates[b.ID] = BodyUpdate{
			Position: b.Position,
			Velocity: b.Velocity,
			Mass:     b.Mass,
			Radius:   b.Radius,
		}
	}
	return updates
}

// Step runs one full tick over a snapshot: integrate, then collide.
func Step(bodies []Body, dt float64, p Physics) StepResult {
	moved := Integrate(bodies, dt, p)
	merged, deleted, merges := Collide(moved, p.MergeRadius)
	return StepResult{Bodies: merged, Deleted: deleted, Merges: merges}
}
