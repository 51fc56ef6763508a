package sim

import (
	"fmt"
	"hash/fnv"

	"github.com/vmihailenco/msgpack/v5"
)

type digestBody struct {
	ID       int     `msgpack:"id"`
	X        float64 `msgpack:"x"`
	Y        float64 `msgpack:"y"`
	VX       float64 `msgpack:"vx"`
	VY       float64 `msgpack:"vy"`
	Mass     float64 `msgpack:"m"`
	Radius   float64 `msgpack:"r"`
	Sun      bool    `msgpack:"sun"`
	Selected bool    `msgpack:"sel"`
}

type digestState struct {
	Tick   uint64       `msgpack:"tick"`
	Paused bool         `msgpack:"paused"`
	Bodies []digestBody `msgpack:"bodies"`
}

// Digest returns a hash of the complete physical state, used to verify
// determinism and to tag stored runs. Equal states hash equally.
func (s *Simulation) Digest() (uint64, error) {
	bodies := s.store.Snapshot()
	state := digestState{
		Tick:   s.tick,
		Paused: s.paused,
		Bodies: make([]digestBody, len(bodies)),
	}
	for i, b := range bodies {
		state.Bodies[i] = digestBody{
			ID:       int(b.ID),
			X:        b.Position.X,
			Y:        b.Position.Y,
			VX:       b.Velocity.X,
			VY:       b.Velocity.Y,
			Mass:     b.Mass,
			Radius:   b.Radius,
			Sun:      b.Sun,
			Selected: b.Selected,
		}
	}

	data, err := msgpack.Marshal(&state)
	if err != nil {
		return 0, fmt.Errorf("sim: cannot encode state: %w", err)
	}
	h := fnv.New64a()
	h.Write(data)
	return h.Sum64(), nil
}
