package breakin

import (
	"math"

	"github.com/vovakirdan/break-in/internal/config"
	"github.com/vovakirdan/break-in/internal/core"
)

// Outcome is the end state of a game. Once it leaves Unresolved it never
// changes again.
type Outcome int

const (
	Unresolved Outcome = iota
	Won
	Lost
)

// String returns the name of the outcome.
func (o Outcome) String() string {
	switch o {
	case Unresolved:
		return "unresolved"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// Message returns the end-of-game text, or "" while the game is running.
func (o Outcome) Message() string {
	switch o {
	case Won:
		return "You Win!"
	case Lost:
		return "You lose..."
	default:
		return ""
	}
}

// Direction is the player's steering input for one tick.
type Direction int

const (
	DirNone Direction = iota
	DirLeft
	DirRight
)

// DirectionFrom maps held keys to a direction. Left wins when both are held.
func DirectionFrom(left, right bool) Direction {
	switch {
	case left:
		return DirLeft
	case right:
		return DirRight
	default:
		return DirNone
	}
}

// Params configures a simulation.
type Params struct {
	Arena          Arena
	Speed          float64 // Constant ball speed
	MaxSpawnXSpeed float64 // Spawn x component is drawn from [0, MaxSpawnXSpeed)
	Lives          int
	RowAccel       float64 // Row speed change per tick while steering
	MaxRowSpeed    float64
	Blocks         []Block // Initial layout, in collision order
}

// ParamsFromConfig builds simulation parameters from a loaded config.
func ParamsFromConfig(cfg config.BreakinConfig) Params {
	return Params{
		Arena: Arena{
			Width:    cfg.Arena.Width,
			Height:   cfg.Arena.Height,
			WallSize: cfg.Arena.WallSize,
		},
		Speed:          cfg.Ball.Speed,
		MaxSpawnXSpeed: cfg.Ball.MaxSpawnXSpeed,
		Lives:          cfg.Gameplay.Lives,
		RowAccel:       cfg.Row.Acceleration,
		MaxRowSpeed:    cfg.Row.MaxSpeed,
		Blocks:         LayoutBlocks(cfg.Blocks),
	}
}

// Sim owns the ball, the block row, the lives counter and the outcome, and
// advances them one step per tick. It is not safe for concurrent use: the
// host calls Step and reads state from the same goroutine.
type Sim struct {
	params Params
	rng    Rand

	ball     Ball
	blocks   []Block
	lives    int
	outcome  Outcome
	rowSpeed float64
	tick     uint64
}

// NewSim creates a simulation with a freshly spawned ball.
func NewSim(p Params, rng Rand) *Sim {
	s := &Sim{
		params: p,
		rng:    rng,
		blocks: append([]Block(nil), p.Blocks...),
		lives:  p.Lives,
	}
	s.spawnBall()
	return s
}

// spawnBall places the ball at top-center with a random velocity of
// magnitude Speed. The vertical component always points up.
func (s *Sim) spawnBall() {
	a := s.params.Arena
	xSpeed := s.rng.Float64() * s.params.MaxSpawnXSpeed
	ySpeed := math.Sqrt(math.Max(s.params.Speed*s.params.Speed-xSpeed*xSpeed, 0))
	if s.rng.IntN(2) == 1 {
		xSpeed = -xSpeed
	}
	s.ball = Ball{
		// Horizontal center floors like the integer field it models.
		Pos: core.V2(a.Width, 2*a.WallSize).DivFloor(2),
		Vel: core.V2(xSpeed, -ySpeed),
	}
}

// Step advances the simulation by one tick and returns what happened.
// It does nothing once the game has been won or lost.
func (s *Sim) Step(dir Direction) []Event {
	if s.outcome != Unresolved {
		return nil
	}
	s.tick++

	var events []Event
	if s.steerRow(dir) {
		events = append(events, Event{Kind: EventRowBlocked})
	}

	s.ball.Pos = s.ball.Pos.Add(s.ball.Vel)

	events = append(events, s.resolveWalls()...)
	if s.outcome == Unresolved {
		events = append(events, s.resolveBlocks()...)
	}
	return events
}

// steerRow updates the row speed from input and shifts every block by it.
// If the shift would push any block past a side wall the whole row stays
// put and its speed drops to zero. Returns true in that case.
func (s *Sim) steerRow(dir Direction) bool {
	switch dir {
	case DirLeft:
		s.rowSpeed = core.ClampF(s.rowSpeed-s.params.RowAccel, -s.params.MaxRowSpeed, s.params.MaxRowSpeed)
	case DirRight:
		s.rowSpeed = core.ClampF(s.rowSpeed+s.params.RowAccel, -s.params.MaxRowSpeed, s.params.MaxRowSpeed)
	default:
		s.rowSpeed = 0
		return false
	}

	a := s.params.Arena
	for _, b := range s.blocks {
		x := b.Pos.X + s.rowSpeed
		if x < a.WallSize || x+b.Size.X > a.Width-a.WallSize {
			s.rowSpeed = 0
			return true
		}
	}

	shift := core.V2(s.rowSpeed, 0)
	for i := range s.blocks {
		s.blocks[i].Pos = s.blocks[i].Pos.Add(shift)
	}
	return false
}

// resolveWalls applies wall reflections and handles a lost ball.
func (s *Sim) resolveWalls() []Event {
	hits := ReflectWalls(&s.ball, s.params.Arena)
	if !hits.Any() {
		return nil
	}

	var events []Event
	if hits.Left || hits.Right || hits.Top {
		events = append(events, Event{Kind: EventWallBounce, Walls: hits})
	}
	if hits.Bottom {
		s.lives--
		events = append(events, Event{Kind: EventLifeLost, Lives: s.lives})
		if s.lives > 0 {
			s.spawnBall()
		} else {
			s.outcome = Lost
			events = append(events, Event{Kind: EventLost})
		}
	}
	return events
}

// resolveBlocks bounces the ball off the first block it is inside and
// destroys that block. At most one block is destroyed per step.
func (s *Sim) resolveBlocks() []Event {
	idx, side := FirstHit(s.blocks, s.ball.Pos)
	if idx < 0 {
		return nil
	}

	bounce := BounceOffBlock(&s.ball, side, s.rowSpeed, s.params.Speed)
	s.blocks = append(s.blocks[:idx], s.blocks[idx+1:]...)

	events := []Event{{
		Kind:      EventBlockDestroyed,
		Side:      side,
		Bounce:    bounce.Kind,
		Transfer:  bounce.Transferred,
		Remaining: len(s.blocks),
	}}
	if len(s.blocks) == 0 {
		s.outcome = Won
		events = append(events, Event{Kind: EventWon})
	}
	return events
}

// Ball returns the current ball state.
func (s *Sim) Ball() Ball { return s.ball }

// Blocks returns a copy of the active blocks.
func (s *Sim) Blocks() []Block { return append([]Block(nil), s.blocks...) }

// BlockCount returns the number of active blocks.
func (s *Sim) BlockCount() int { return len(s.blocks) }

// Lives returns the remaining lives.
func (s *Sim) Lives() int { return s.lives }

// Outcome returns the end state.
func (s *Sim) Outcome() Outcome { return s.outcome }

// RowSpeed returns the block row's current horizontal speed.
func (s *Sim) RowSpeed() float64 { return s.rowSpeed }

// Tick returns the number of steps simulated so far.
func (s *Sim) Tick() uint64 { return s.tick }

// Arena returns the play field dimensions.
func (s *Sim) Arena() Arena { return s.params.Arena }
