package sim

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

// driftPhysics turns gravity off so bodies move in straight lines.
func driftPhysics() Physics {
	return Physics{G: 0, MinDistance: 0.001, MergeRadius: MergeRadiusStale}
}

func TestPredictOrbitSamplingCadence(t *testing.T) {
	bodies := []Body{
		{ID: 0, Velocity: r2.Vec{X: 1}, Mass: 1, Radius: 1, Selected: true},
	}

	points := PredictOrbit(bodies, 1, driftPhysics(), Prediction{Iterations: 10000, SampleEvery: 100})

	if len(points) != 100 {
		t.Fatalf("len(points) = %d, expected 100", len(points))
	}
	// samples are taken after steps 1, 101, 201...
	for i, want := range []float64{1, 101, 201} {
		if points[i].X != want {
			t.Errorf("points[%d].X = %v, expected %v", i, points[i].X, want)
		}
	}
	if last := points[len(points)-1].X; last != 9901 {
		t.Errorf("last point X = %v, expected 9901", last)
	}
	if bodies[0].Position != (r2.Vec{}) {
		t.Error("prediction moved the input body")
	}
}

func TestPredictOrbitKeepsPointsAfterAbsorption(t *testing.T) {
	// the light body reaches the heavy one on step 9 (x = 9, gap 1.5 < 2)
	light := Body{ID: 0, Velocity: r2.Vec{X: 1}, Mass: 1, Radius: 1, Selected: true}
	heavy := Body{ID: 1, Position: r2.Vec{X: 10.5}, Mass: 100, Radius: 1}
	bodies := []Body{light, heavy}

	points := PredictOrbit(bodies, 1, driftPhysics(), Prediction{Iterations: 50, SampleEvery: 2})

	want := []float64{1, 3, 5, 7}
	if len(points) != len(want) {
		t.Fatalf("points = %v, expected x = %v", points, want)
	}
	for i, x := range want {
		if points[i].X != x {
			t.Errorf("points[%d].X = %v, expected %v", i, points[i].X, x)
		}
	}
	if len(bodies) != 2 || bodies[0].Position != (r2.Vec{}) {
		t.Error("prediction changed the input bodies")
	}
}

func TestPredictOrbitWithoutSelection(t *testing.T) {
	bodies := []Body{{ID: 0, Velocity: r2.Vec{X: 1}, Mass: 1, Radius: 1}}

	if points := PredictOrbit(bodies, 1, driftPhysics(), Prediction{Iterations: 10, SampleEvery: 1}); points != nil {
		t.Errorf("points = %v, expected nil", points)
	}
}
