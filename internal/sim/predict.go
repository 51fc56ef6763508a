package sim

import "gonum.org/v1/gonum/spatial/r2"

// Prediction bounds for PredictOrbit.
type Prediction struct {
	Iterations  int // forward steps to simulate
	SampleEvery int // record the selected position every Nth step
}

// PredictOrbit runs a private forward simulation on a copy of bodies and
// samples the selected body's position on steps 0, SampleEvery, 2·SampleEvery...
// Sampling stops for good once the selected body is swallowed; the points
// collected until then are returned. The input slice is never modified.
func PredictOrbit(bodies []Body, dt float64, p Physics, pr Prediction) []r2.Vec {
	if pr.Iterations <= 0 || pr.SampleEvery <= 0 || !hasSelection(bodies) {
		return nil
	}

	scratch := make([]Body, len(bodies))
	copy(scratch, bodies)

	points := make([]r2.Vec, 0, pr.Iterations/pr.SampleEvery+1)
	for i := 0; i < pr.Iterations; i++ {
		scratch = Step(scratch, dt, p).Survivors()
		if !hasSelection(scratch) {
			break
		}
		if i%pr.SampleEvery == 0 {
			for _, b := range scratch {
				if b.Selected {
					points = append(points, b.Position)
					break
				}
			}
		}
	}
	return points
}

func hasSelection(bodies []Body) bool {
	for _, b := range bodies {
		if b.Selected {
			return true
		}
	}
	return false
}
