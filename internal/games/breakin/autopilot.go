package breakin

import "fmt"

// Policy is a scripted player used by the headless runner.
type Policy string

const (
	PolicyIdle  Policy = "idle"  // Never steer
	PolicyTrack Policy = "track" // Keep the row centered under the ball
	PolicySweep Policy = "sweep" // Alternate left and right on a fixed period
)

// sweepPeriod is how many ticks the sweep policy holds each direction.
const sweepPeriod = 90

// trackDeadZone is how far the ball may drift from the row center before
// the track policy steers.
const trackDeadZone = 5.0

// ParsePolicy converts a CLI value to a policy.
func ParsePolicy(name string) (Policy, error) {
	switch p := Policy(name); p {
	case PolicyIdle, PolicyTrack, PolicySweep:
		return p, nil
	default:
		return "", fmt.Errorf("breakin: unknown policy %q (want idle, track or sweep)", name)
	}
}

// Steer picks the direction for the next step.
func (p Policy) Steer(s *Sim) Direction {
	switch p {
	case PolicyTrack:
		if len(s.blocks) == 0 {
			return DirNone
		}
		minX, maxX := s.blocks[0].Left(), s.blocks[0].Right()
		for _, b := range s.blocks[1:] {
			minX = min(minX, b.Left())
			maxX = max(maxX, b.Right())
		}
		center := (minX + maxX) / 2
		switch x := s.ball.Pos.X; {
		case x < center-trackDeadZone:
			return DirLeft
		case x > center+trackDeadZone:
			return DirRight
		}
		return DirNone

	case PolicySweep:
		if (s.tick/sweepPeriod)%2 == 0 {
			return DirLeft
		}
		return DirRight

	default:
		return DirNone
	}
}
