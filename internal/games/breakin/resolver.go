package breakin

import (
	"math"

	"github.com/vovakirdan/break-in/internal/core"
)

// Ball is the ball state in arena units.
type Ball struct {
	Pos core.Vec2 // Center
	Vel core.Vec2 // Displacement per tick
}

// BounceX reverses horizontal velocity.
func (b *Ball) BounceX() {
	b.Vel = core.V2(-b.Vel.X, b.Vel.Y)
}

// BounceY reverses vertical velocity.
func (b *Ball) BounceY() {
	b.Vel = core.V2(b.Vel.X, -b.Vel.Y)
}

// Arena is the walled play field. The playable area is
// [WallSize, Width-WallSize] x [WallSize, Height-WallSize].
type Arena struct {
	Width, Height float64
	WallSize      float64
}

// WallHits records which wall checks fired in one step.
type WallHits struct {
	Left, Right, Top bool
	Bottom           bool // Ball crossed the losing wall
}

// Any reports whether any wall check fired.
func (w WallHits) Any() bool {
	return w.Left || w.Right || w.Top || w.Bottom
}

// ReflectWalls reflects the ball off the left, right and top walls and
// reports a crossing of the bottom wall. Each check is independent: a ball
// that overshoots both side walls in one step is reflected twice.
func ReflectWalls(ball *Ball, arena Arena) WallHits {
	var hits WallHits

	if ball.Pos.X < arena.WallSize {
		ball.BounceX()
		hits.Left = true
	}
	if ball.Pos.X > arena.Width-arena.WallSize {
		ball.BounceX()
		hits.Right = true
	}
	if ball.Pos.Y < arena.WallSize {
		ball.BounceY()
		hits.Top = true
	}
	if ball.Pos.Y > arena.Height-arena.WallSize {
		hits.Bottom = true
	}

	return hits
}

// FirstHit scans blocks in order and returns the index and side of the
// first block containing p, or (-1, SideNone).
func FirstHit(blocks []Block, p core.Vec2) (int, Side) {
	for i, b := range blocks {
		if side := b.Classify(p); side != SideNone {
			return i, side
		}
	}
	return -1, SideNone
}

// BounceKind tells how a block collision was resolved.
type BounceKind int

const (
	BounceNone   BounceKind = iota
	BounceReal              // Ball approached the side it hit; that axis reflects
	BounceCorner            // Velocity contradicts the side; the other axis reflects
)

// String returns the name of the bounce kind.
func (k BounceKind) String() string {
	switch k {
	case BounceReal:
		return "real"
	case BounceCorner:
		return "corner"
	default:
		return "none"
	}
}

// Bounce describes the outcome of BounceOffBlock.
type Bounce struct {
	Kind        BounceKind
	Transferred bool // Row motion was transferred into the ball
}

// BounceOffBlock updates the ball velocity for a collision on the given side.
// rowSpeed is the block row's horizontal speed and speed the ball's constant
// speed magnitude.
func BounceOffBlock(ball *Ball, side Side, rowSpeed, speed float64) Bounce {
	switch side {
	case SideTop:
		if ball.Vel.Y <= 0 {
			ball.BounceX()
			return Bounce{Kind: BounceCorner}
		}
		ball.BounceY()
		if rowSpeed == 0 {
			return Bounce{Kind: BounceReal}
		}
		nudge := 1.0
		if rowSpeed < 0 {
			nudge = -1
		}
		return Bounce{Kind: BounceReal, Transferred: transferSpeed(ball, ball.Vel.X+nudge, speed)}

	case SideBottom:
		if ball.Vel.Y >= 0 {
			ball.BounceX()
			return Bounce{Kind: BounceCorner}
		}
		ball.BounceY()
		if rowSpeed == 0 {
			return Bounce{Kind: BounceReal}
		}
		return Bounce{Kind: BounceReal, Transferred: transferSpeed(ball, ball.Vel.X+rowSpeed/(2*speed), speed)}

	case SideLeft:
		if ball.Vel.X <= 0 {
			ball.BounceY()
			return Bounce{Kind: BounceCorner}
		}
		ball.BounceX()
		return Bounce{Kind: BounceReal}

	case SideRight:
		if ball.Vel.X >= 0 {
			ball.BounceY()
			return Bounce{Kind: BounceCorner}
		}
		ball.BounceX()
		return Bounce{Kind: BounceReal}
	}

	return Bounce{Kind: BounceNone}
}

// transferSpeed sets the ball's x velocity to vx and rederives y so that the
// magnitude stays speed, keeping y's sign. When |vx| >= speed there is no
// real y component, so the velocity is left alone and false is returned.
func transferSpeed(ball *Ball, vx, speed float64) bool {
	if vx >= speed || vx <= -speed {
		return false
	}
	vy := math.Sqrt(speed*speed - vx*vx)
	if ball.Vel.Y < 0 {
		vy = -vy
	}
	ball.Vel = core.V2(vx, vy)
	return true
}
