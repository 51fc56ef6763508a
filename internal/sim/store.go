package sim

import (
	"errors"
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"
)

// ErrInvalidPopulation is returned (wrapped) when a store cannot be populated.
var ErrInvalidPopulation = errors.New("invalid population")

// Population describes the bodies created when a store is initialized.
type Population struct {
	SunMass      float64
	Count        int
	Width        float64
	Height       float64
	InitialSpeed float64 // velocity components drawn from [-speed, speed]
	MaxMass      float64 // masses drawn from (1, MaxMass)
}

func (p Population) validate() error {
	switch {
	case p.Count <= 0:
		return fmt.Errorf("sim: %w: body count must be positive, got %d", ErrInvalidPopulation, p.Count)
	case p.SunMass <= 0:
		return fmt.Errorf("sim: %w: sun mass must be positive, got %g", ErrInvalidPopulation, p.SunMass)
	case p.MaxMass <= 1:
		return fmt.Errorf("sim: %w: max mass must be greater than 1, got %g", ErrInvalidPopulation, p.MaxMass)
	case p.Width <= 0 || p.Height <= 0:
		return fmt.Errorf("sim: %w: world size must be positive, got %gx%g", ErrInvalidPopulation, p.Width, p.Height)
	case p.InitialSpeed < 0:
		return fmt.Errorf("sim: %w: initial speed must not be negative, got %g", ErrInvalidPopulation, p.InitialSpeed)
	}
	return nil
}

// BodyUpdate is the post-step physical state of a surviving body.
type BodyUpdate struct {
	Position r2.Vec
	Velocity r2.Vec
	Mass     float64
	Radius   float64
}

// Store is the authoritative, ordered collection of live bodies.
// Iteration order is creation order and stays stable across updates.
type Store struct {
	bodies []Body
	index  map[BodyID]int
	nextID BodyID
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{index: make(map[BodyID]int)}
}

// Initialize clears the store and populates one sun at the center of the
// world plus p.Count random bodies. An invalid population leaves the store untouched.
func (s *Store) Initialize(p Population, rng *rand.Rand) error {
	if err := p.validate(); err != nil {
		return err
	}

	s.reset()
	s.insert(NewSun(r2.Vec{X: p.Width / 2, Y: p.Height / 2}, p.SunMass))

	for i := 0; i < p.Count; i++ {
		pos := r2.Vec{X: rng.Float64() * p.Width, Y: rng.Float64() * p.Height}
		vel := r2.Vec{X: symmetric(rng, p.InitialSpeed), Y: symmetric(rng, p.InitialSpeed)}
		mass := 1 + rng.Float64()*(p.MaxMass-1)
		s.insert(NewBody(pos, vel, mass))
	}
	return nil
}

// symmetric draws from [-bound, bound], or returns 0 for a zero bound.
func symmetric(rng *rand.Rand, bound float64) float64 {
	if bound == 0 {
		return 0
	}
	return (rng.Float64()*2 - 1) * bound
}

// Add inserts a body during setup and returns its assigned ID.
// Suns always receive SunID; only one sun may exist.
func (s *Store) Add(b Body) (BodyID, error) {
	if b.Mass <= 0 {
		return 0, fmt.Errorf("sim: body mass must be positive, got %g", b.Mass)
	}
	if b.Sun {
		if _, exists := s.index[SunID]; exists {
			return 0, errors.New("sim: store already has a sun")
		}
	}
	if b.Selected {
		s.SetSelection(0, false)
	}
	return s.insert(b), nil
}

func (s *Store) insert(b Body) BodyID {
	if b.Sun {
		b.ID = SunID
	} else {
		b.ID = s.nextID
		s.nextID++
	}
	s.index[b.ID] = len(s.bodies)
	s.bodies = append(s.bodies, b)
	return b.ID
}

func (s *Store) reset() {
	s.bodies = nil
	s.index = make(map[BodyID]int)
	s.nextID = 0
}

// Len returns the number of live bodies.
func (s *Store) Len() int {
	return len(s.bodies)
}

// Snapshot returns a copy of every body in iteration order.
// Mutating the returned slice never affects the store.
func (s *Store) Snapshot() []Body {
	out := make([]Body, len(s.bodies))
	copy(out, s.bodies)
	return out
}

// Body looks up a live body by ID.
func (s *Store) Body(id BodyID) (Body, bool) {
	i, ok := s.index[id]
	if !ok {
		return Body{}, false
	}
	return s.bodies[i], true
}

// Selected returns the selected body, if any.
func (s *Store) Selected() (Body, bool) {
	for _, b := range s.bodies {
		if b.Selected {
			return b, true
		}
	}
	return Body{}, false
}

// Apply drops deleted bodies and overwrites all others from updates as one batch.
// Every live body that is not deleted must have an update; a missing update
// means the step lost track of a body and Apply panics before changing anything.
func (s *Store) Apply(updates map[BodyID]BodyUpdate, deletions map[BodyID]struct{}) {
	for _, b := range s.bodies {
		if _, gone := deletions[b.ID]; gone {
			continue
		}
		if _, ok := updates[b.ID]; !ok {
			panic(fmt.Sprintf("sim: no update for live body %d", b.ID))
		}
	}

	kept := make([]Body, 0, len(s.bodies))
	index := make(map[BodyID]int, len(s.bodies))
	for _, b := range s.bodies {
		if _, gone := deletions[b.ID]; gone {
			continue
		}
		u := updates[b.ID]
		b.Position = u.Position
		b.Velocity = u.Velocity
		b.Mass = u.Mass
		b.Radius = u.Radius
		index[b.ID] = len(kept)
		kept = append(kept, b)
	}
	s.bodies = kept
	s.index = index
}

// Translate shifts every body by offset without touching velocities.
func (s *Store) Translate(offset r2.Vec) {
	for i := range s.bodies {
		s.bodies[i].Position = r2.Add(s.bodies[i].Position, offset)
	}
}

// SetSelection selects the body with the given ID and deselects all others.
// With ok false, or an unknown ID, nothing stays selected.
func (s *Store) SetSelection(id BodyID, ok bool) {
	for i := range s.bodies {
		s.bodies[i].Selected = ok && s.bodies[i].ID == id
	}
}

// FindNearestWithin returns the body whose surface is closest to p, provided
// that distance is below maxDistance. Points inside a disk have distance 0.
// Ties go to the body earliest in iteration order.
func (s *Store) FindNearestWithin(p r2.Vec, maxDistance float64) (BodyID, bool) {
	var (
		best  BodyID
		found bool
		dist  float64
	)
	for _, b := range s.bodies {
		d := b.surfaceDistance(p)
		if d >= maxDistance {
			continue
		}
		if !found || d < dist {
			best, dist, found = b.ID, d, true
		}
	}
	return best, found
}
