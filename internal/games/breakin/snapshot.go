package breakin

import "math"

// Snapshot is the read-only view of a simulation after a step. The renderer
// draws from it and tests compare it across runs.
type Snapshot struct {
	Tick     uint64
	Ball     Ball
	Blocks   []Block
	Lives    int
	Outcome  Outcome
	RowSpeed float64

	// RNGState is set when the simulation uses SimpleRNG.
	RNGState uint64
}

// Snapshot returns the current simulation state.
func (s *Sim) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:     s.tick,
		Ball:     s.ball,
		Blocks:   s.Blocks(),
		Lives:    s.lives,
		Outcome:  s.outcome,
		RowSpeed: s.rowSpeed,
	}
	if r, ok := s.rng.(*SimpleRNG); ok {
		snap.RNGState = r.State()
	}
	return snap
}

// EndMessage returns the end-of-game text, or "" while unresolved.
func (snap Snapshot) EndMessage() string {
	return snap.Outcome.Message()
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap Snapshot) Hash() uint64 {
	f := math.Float64bits

	h := snap.Tick
	h = h*31 + f(snap.Ball.Pos.X)
	h = h*31 + f(snap.Ball.Pos.Y)
	h = h*31 + f(snap.Ball.Vel.X)
	h = h*31 + f(snap.Ball.Vel.Y)
	h = h*31 + uint64(snap.Lives)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Outcome) //#nosec G115 -- hash computation
	h = h*31 + f(snap.RowSpeed)
	h = h*31 + uint64(len(snap.Blocks))

	for _, b := range snap.Blocks {
		h = h*31 + f(b.Pos.X)
		h = h*31 + f(b.Pos.Y)
		h = h*31 + f(b.Size.X)
		h = h*31 + f(b.Size.Y)
	}

	h = h*31 + snap.RNGState

	return h
}
