package sim

import (
	"errors"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func testPopulation() Population {
	return Population{
		SunMass:      5000,
		Count:        20,
		Width:        800,
		Height:       600,
		InitialSpeed: 20,
		MaxMass:      50,
	}
}

func TestStoreInitialize(t *testing.T) {
	s := NewStore()
	p := testPopulation()
	if err := s.Initialize(p, rand.New(rand.NewSource(1))); err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	if s.Len() != p.Count+1 {
		t.Fatalf("Len() = %d, expected %d", s.Len(), p.Count+1)
	}

	sun, ok := s.Body(SunID)
	if !ok {
		t.Fatal("sun missing after Initialize")
	}
	if sun.Position != (r2.Vec{X: 400, Y: 300}) {
		t.Errorf("sun at %v, expected world center", sun.Position)
	}

	seen := make(map[BodyID]bool)
	for _, b := range s.Snapshot() {
		if seen[b.ID] {
			t.Errorf("duplicate ID %d", b.ID)
		}
		seen[b.ID] = true
		if b.Sun {
			continue
		}
		if b.Position.X < 0 || b.Position.X >= p.Width || b.Position.Y < 0 || b.Position.Y >= p.Height {
			t.Errorf("body %d at %v outside world", b.ID, b.Position)
		}
		if b.Mass < 1 || b.Mass >= p.MaxMass {
			t.Errorf("body %d mass %v outside [1, %v)", b.ID, b.Mass, p.MaxMass)
		}
		if b.Velocity.X < -p.InitialSpeed || b.Velocity.X > p.InitialSpeed {
			t.Errorf("body %d velocity %v exceeds %v", b.ID, b.Velocity, p.InitialSpeed)
		}
		if b.Radius != RadiusFromMass(b.Mass) {
			t.Errorf("body %d radius %v not derived from mass", b.ID, b.Radius)
		}
	}
}

func TestStoreInitializeSameSeed(t *testing.T) {
	a, b := NewStore(), NewStore()
	_ = a.Initialize(testPopulation(), rand.New(rand.NewSource(7)))
	_ = b.Initialize(testPopulation(), rand.New(rand.NewSource(7)))

	sa, sb := a.Snapshot(), b.Snapshot()
	for i := range sa {
		if sa[i] != sb[i] {
			t.Fatalf("body %d differs: %+v vs %+v", i, sa[i], sb[i])
		}
	}
}

func TestStoreInitializeInvalid(t *testing.T) {
	s := NewStore()
	_ = s.Initialize(testPopulation(), rand.New(rand.NewSource(1)))
	before := s.Len()

	p := testPopulation()
	p.Count = 0
	err := s.Initialize(p, rand.New(rand.NewSource(1)))
	if !errors.Is(err, ErrInvalidPopulation) {
		t.Fatalf("expected ErrInvalidPopulation, got %v", err)
	}
	if s.Len() != before {
		t.Errorf("store changed after failed Initialize: %d bodies, expected %d", s.Len(), before)
	}
}

func TestStoreAdd(t *testing.T) {
	s := NewStore()

	id0, err := s.Add(NewBody(r2.Vec{}, r2.Vec{}, 1))
	if err != nil || id0 != 0 {
		t.Fatalf("Add = (%d, %v), expected (0, nil)", id0, err)
	}
	sunID, err := s.Add(NewSun(r2.Vec{}, 100))
	if err != nil || sunID != SunID {
		t.Fatalf("Add sun = (%d, %v), expected (%d, nil)", sunID, err, SunID)
	}
	if _, err := s.Add(NewSun(r2.Vec{}, 100)); err == nil {
		t.Error("expected error adding a second sun")
	}
	if _, err := s.Add(Body{Mass: 0}); err == nil {
		t.Error("expected error adding a massless body")
	}

	a := NewBody(r2.Vec{}, r2.Vec{}, 1)
	a.Selected = true
	idA, _ := s.Add(a)
	b := NewBody(r2.Vec{}, r2.Vec{}, 1)
	b.Selected = true
	idB, _ := s.Add(b)

	sel, ok := s.Selected()
	if !ok || sel.ID != idB {
		t.Errorf("Selected() = (%d, %v), expected (%d, true)", sel.ID, ok, idB)
	}
	if got, _ := s.Body(idA); got.Selected {
		t.Error("earlier selection not cleared")
	}
}

func TestStoreApply(t *testing.T) {
	s := NewStore()
	a, _ := s.Add(NewBody(r2.Vec{X: 1}, r2.Vec{}, 2))
	b, _ := s.Add(NewBody(r2.Vec{X: 2}, r2.Vec{}, 3))
	c, _ := s.Add(NewBody(r2.Vec{X: 3}, r2.Vec{}, 4))

	s.Apply(map[BodyID]BodyUpdate{
		a: {Position: r2.Vec{X: 10}, Mass: 5, Radius: 1},
		c: {Position: r2.Vec{X: 30}, Mass: 4, Radius: 1},
	}, map[BodyID]struct{}{b: {}})

	if s.Len() != 2 {
		t.Fatalf("Len() = %d, expected 2", s.Len())
	}
	if _, ok := s.Body(b); ok {
		t.Error("deleted body still present")
	}
	got, _ := s.Body(a)
	if got.Position.X != 10 || got.Mass != 5 {
		t.Errorf("body a = %+v, expected updated state", got)
	}

	snap := s.Snapshot()
	if snap[0].ID != a || snap[1].ID != c {
		t.Errorf("order = [%d %d], expected [%d %d]", snap[0].ID, snap[1].ID, a, c)
	}
}

func TestStoreApplyMissingUpdatePanics(t *testing.T) {
	s := NewStore()
	a, _ := s.Add(NewBody(r2.Vec{}, r2.Vec{}, 1))
	_, _ = s.Add(NewBody(r2.Vec{X: 5}, r2.Vec{}, 1))

	defer func() {
		if recover() == nil {
			t.Error("expected panic for live body without update")
		}
		if s.Len() != 2 {
			t.Errorf("store modified before panic: %d bodies", s.Len())
		}
	}()
	s.Apply(map[BodyID]BodyUpdate{a: {Mass: 1}}, nil)
}

func TestStoreSnapshotIsCopy(t *testing.T) {
	s := NewStore()
	id, _ := s.Add(NewBody(r2.Vec{}, r2.Vec{}, 1))

	snap := s.Snapshot()
	snap[0].Mass = 99

	if b, _ := s.Body(id); b.Mass != 1 {
		t.Errorf("store mass = %v after mutating snapshot, expected 1", b.Mass)
	}
}

func TestStoreFindNearestWithin(t *testing.T) {
	s := NewStore()
	small, _ := s.Add(Body{Position: r2.Vec{X: 0}, Radius: 1, Mass: 1})
	big, _ := s.Add(Body{Position: r2.Vec{X: 10}, Radius: 6, Mass: 10})

	tests := []struct {
		name  string
		p     r2.Vec
		id    BodyID
		found bool
	}{
		{"inside small", r2.Vec{X: 0.5}, small, true},
		{"closer to big surface", r2.Vec{X: 3}, big, true},
		{"near small only", r2.Vec{X: -4}, small, true},
		{"exactly at tolerance", r2.Vec{X: -6}, 0, false},
		{"empty space", r2.Vec{X: 100, Y: 100}, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			id, ok := s.FindNearestWithin(tc.p, 5)
			if ok != tc.found || (ok && id != tc.id) {
				t.Errorf("FindNearestWithin(%v) = (%d, %v), expected (%d, %v)", tc.p, id, ok, tc.id, tc.found)
			}
		})
	}
}

func TestStoreFindNearestTie(t *testing.T) {
	s := NewStore()
	first, _ := s.Add(Body{Position: r2.Vec{X: -3}, Radius: 1, Mass: 1})
	_, _ = s.Add(Body{Position: r2.Vec{X: 3}, Radius: 1, Mass: 1})

	id, ok := s.FindNearestWithin(r2.Vec{}, 5)
	if !ok || id != first {
		t.Errorf("tie resolved to (%d, %v), expected (%d, true)", id, ok, first)
	}
}

func TestStoreTranslate(t *testing.T) {
	s := NewStore()
	id, _ := s.Add(NewBody(r2.Vec{X: 1, Y: 2}, r2.Vec{X: 3, Y: 4}, 1))

	s.Translate(r2.Vec{X: 10, Y: -2})

	b, _ := s.Body(id)
	if b.Position != (r2.Vec{X: 11, Y: 0}) {
		t.Errorf("position = %v, expected {11 0}", b.Position)
	}
	if b.Velocity != (r2.Vec{X: 3, Y: 4}) {
		t.Errorf("velocity changed to %v", b.Velocity)
	}
}
