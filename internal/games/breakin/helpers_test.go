package breakin

import "github.com/vovakirdan/break-in/internal/core"

// scriptedRand replays fixed values, then returns zeros.
type scriptedRand struct {
	floats []float64
	ints   []int
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func (r *scriptedRand) IntN(n int) int {
	if len(r.ints) == 0 || n <= 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

// testArena is the original 500x500 field with 10-unit walls.
var testArena = Arena{Width: 500, Height: 500, WallSize: 10}

func testParams(blocks ...Block) Params {
	return Params{
		Arena:          testArena,
		Speed:          5,
		MaxSpawnXSpeed: 5,
		Lives:          3,
		RowAccel:       0.2,
		MaxRowSpeed:    5,
		Blocks:         blocks,
	}
}

func block(x, y, w, h float64) Block {
	return Block{Pos: core.V2(x, y), Size: core.V2(w, h)}
}
