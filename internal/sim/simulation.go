package sim

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/tui-gravity/internal/config"
)

// Drawable is the read-only view of a body handed to renderers.
type Drawable struct {
	Position     r2.Vec
	Radius       float64
	Sun          bool
	SelectMarker bool // outline drawn around the selected body
}

// Stats summarizes a running simulation.
type Stats struct {
	Tick        uint64  // completed physics ticks
	Bodies      int     // live bodies, sun included
	Merges      int     // absorption events since initialization
	LargestMass float64 // heaviest non-sun body
	Paused      bool
}

// Simulation owns a body store plus the pause, selection and orbit
// prediction state of one run. It is not safe for concurrent use.
type Simulation struct {
	cfg     config.GravityConfig
	physics Physics
	store   *Store
	seed    int64

	paused     bool
	prediction []r2.Vec
	predicted  bool // prediction is cached (possibly empty)

	tick   uint64
	merges int
}

// New creates an empty, uninitialized simulation.
func New() *Simulation {
	return &Simulation{store: NewStore()}
}

// Initialize validates cfg and repopulates the simulation from seed.
// On error the previous state is kept.
func (s *Simulation) Initialize(cfg config.GravityConfig, seed int64) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("sim: cannot initialize: %w", err)
	}
	physics, err := PhysicsFromConfig(cfg.Physics)
	if err != nil {
		return err
	}

	store := NewStore()
	pop := Population{
		SunMass:      cfg.Sun.Mass,
		Count:        cfg.Bodies.Count,
		Width:        cfg.World.Width,
		Height:       cfg.World.Height,
		InitialSpeed: cfg.Bodies.InitialSpeed,
		MaxMass:      cfg.Bodies.MaxMass,
	}
	if err := store.Initialize(pop, rand.New(rand.NewSource(seed))); err != nil {
		return err
	}

	*s = Simulation{
		cfg:     cfg,
		physics: physics,
		store:   store,
		seed:    seed,
	}
	return nil
}

// Config returns the configuration the simulation was initialized with.
func (s *Simulation) Config() config.GravityConfig {
	return s.cfg
}

// Seed returns the seed used for the current population.
func (s *Simulation) Seed() int64 {
	return s.seed
}

// Tick advances the simulation by dt, or computes the orbit prediction
// when paused.
func (s *Simulation) Tick(dt float64) {
	s.TickCamera(dt, r2.Vec{})
}

// TickCamera is Tick followed by a whole-system translation by camera.
// The translation happens after physics is resolved and is skipped while paused.
func (s *Simulation) TickCamera(dt float64, camera r2.Vec) {
	if s.paused {
		if !s.predicted {
			s.prediction = PredictOrbit(s.store.Snapshot(), dt, s.physics, s.predictionBounds())
			s.predicted = true
		}
		return
	}

	s.advance(dt)
	if camera != (r2.Vec{}) {
		s.store.Translate(camera)
	}
}

// StepOnce advances exactly one tick regardless of the paused flag.
// The cached prediction no longer matches and is dropped.
func (s *Simulation) StepOnce(dt float64) {
	s.advance(dt)
	s.clearPrediction()
}

func (s *Simulation) advance(dt float64) {
	res := Step(s.store.Snapshot(), dt, s.physics)
	s.store.Apply(res.Updates(), res.Deleted)
	s.tick++
	s.merges += res.Merges
}

func (s *Simulation) predictionBounds() Prediction {
	return Prediction{
		Iterations:  s.cfg.Prediction.Iterations,
		SampleEvery: s.cfg.Prediction.SampleEvery,
	}
}

// Click selects the body nearest to p within the selection tolerance,
// or clears the selection when nothing is close enough.
func (s *Simulation) Click(p r2.Vec) {
	s.ClickWithin(p, s.cfg.Selection.Tolerance)
}

// ClickWithin is Click with an explicit tolerance, for hosts whose pointer
// resolution is coarser than the configured one.
func (s *Simulation) ClickWithin(p r2.Vec, tolerance float64) {
	s.clearPrediction()
	s.store.SetSelection(s.store.FindNearestWithin(p, tolerance))
}

// Pause suspends physics. The next tick computes the orbit prediction.
func (s *Simulation) Pause() {
	s.paused = true
}

// Resume restarts physics and drops the orbit prediction.
func (s *Simulation) Resume() {
	s.paused = false
	s.clearPrediction()
}

// TogglePause flips between Pause and Resume.
func (s *Simulation) TogglePause() {
	if s.paused {
		s.Resume()
	} else {
		s.Pause()
	}
}

// Paused reports whether physics is suspended.
func (s *Simulation) Paused() bool {
	return s.paused
}

func (s *Simulation) clearPrediction() {
	s.prediction = nil
	s.predicted = false
}

// Prediction returns a copy of the cached orbit points and whether a
// prediction has been computed since the last invalidation.
func (s *Simulation) Prediction() ([]r2.Vec, bool) {
	return append([]r2.Vec(nil), s.prediction...), s.predicted
}

// Bodies returns a snapshot of all live bodies.
func (s *Simulation) Bodies() []Body {
	return s.store.Snapshot()
}

// Selected returns the selected body, if any.
func (s *Simulation) Selected() (Body, bool) {
	return s.store.Selected()
}

// RenderSnapshot returns one drawable per live body, followed by a marker
// for the selected body, plus the predicted orbit points (possibly empty).
func (s *Simulation) RenderSnapshot() ([]Drawable, []r2.Vec) {
	bodies := s.store.Snapshot()
	drawables := make([]Drawable, 0, len(bodies)+1)
	for _, b := range bodies {
		drawables = append(drawables, Drawable{
			Position: b.Position,
			Radius:   b.Radius,
			Sun:      b.Sun,
		})
	}
	for _, b := range bodies {
		if b.Selected {
			drawables = append(drawables, Drawable{
				Position:     b.Position,
				Radius:       b.Radius,
				SelectMarker: true,
			})
		}
	}
	orbit, _ := s.Prediction()
	return drawables, orbit
}

// Stats returns counters describing the current run.
func (s *Simulation) Stats() Stats {
	st := Stats{
		Tick:   s.tick,
		Bodies: s.store.Len(),
		Merges: s.merges,
		Paused: s.paused,
	}
	for _, b := range s.store.Snapshot() {
		if !b.Sun && b.Mass > st.LargestMass {
			st.LargestMass = b.Mass
		}
	}
	return st
}
