// Package breakin implements a breakout-style game where the player steers
// the block row instead of a paddle.
package breakin

import (
	"github.com/vovakirdan/break-in/internal/config"
	"github.com/vovakirdan/break-in/internal/core"
)

// Side indicates which side of a block a point collided with.
type Side int

const (
	SideNone Side = iota
	SideTop
	SideBottom
	SideLeft
	SideRight
)

// String returns the name of the side.
func (s Side) String() string {
	switch s {
	case SideNone:
		return "none"
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "unknown"
	}
}

// Block is an axis-aligned rectangle in arena units.
type Block struct {
	Pos  core.Vec2 // Top-left corner
	Size core.Vec2 // Width and height, both positive
}

// Left returns the x-coordinate of the left edge.
func (b Block) Left() float64 { return b.Pos.X }

// Right returns the x-coordinate of the right edge.
func (b Block) Right() float64 { return b.Pos.X + b.Size.X }

// Top returns the y-coordinate of the top edge.
func (b Block) Top() float64 { return b.Pos.Y }

// Bottom returns the y-coordinate of the bottom edge.
func (b Block) Bottom() float64 { return b.Pos.Y + b.Size.Y }

// Classify reports which side of the block the point p is nearest to, or
// SideNone if p lies outside the block. Points on the boundary are inside.
//
// Ties resolve in a fixed order: top only wins when strictly nearer than
// all three other edges, then bottom when strictly nearer than left and
// right, then left when strictly nearer than right, and right otherwise.
func (b Block) Classify(p core.Vec2) Side {
	if p.X < b.Left() || p.Y < b.Top() || p.X > b.Right() || p.Y > b.Bottom() {
		return SideNone
	}

	in := p.Sub(b.Pos)
	distTop := in.Y
	distLeft := in.X
	distRight := b.Size.X - in.X
	distBottom := b.Size.Y - in.Y

	switch {
	case distTop < distLeft && distTop < distRight && distTop < distBottom:
		return SideTop
	case distBottom < distRight && distBottom < distLeft:
		return SideBottom
	case distLeft < distRight:
		return SideLeft
	default:
		return SideRight
	}
}

// LayoutBlocks builds the initial block grid, column by column.
func LayoutBlocks(cfg config.BreakinBlocks) []Block {
	blocks := make([]Block, 0, cfg.Columns*cfg.Rows)
	size := core.V2(cfg.Width, cfg.Height)
	for col := range cfg.Columns {
		for row := range cfg.Rows {
			pos := core.V2(
				cfg.OriginX+float64(col)*cfg.SpacingX,
				cfg.OriginY+float64(row)*cfg.SpacingY,
			)
			blocks = append(blocks, Block{Pos: pos, Size: size})
		}
	}
	return blocks
}
