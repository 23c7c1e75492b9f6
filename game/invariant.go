package game

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvariant is wrapped by every invariant violation reported by Verify
var ErrInvariant = errors.New("invariant violated")

// Verify checks the session's structural invariants: paddles inside the field,
// scores non-negative, ball speed unchanged in magnitude on both axes
func (s *Session) Verify() error {
	for _, p := range []struct {
		name string
		p    *Paddle
	}{{"player1", s.Player1}, {"player2", s.Player2}} {
		if p.p.Y < 0 || p.p.Y > p.p.MaxY() {
			return fmt.Errorf("%w: %s paddle y=%g outside [0, %g]", ErrInvariant, p.name, p.p.Y, p.p.MaxY())
		}
	}

	if s.Score.Player1 < 0 || s.Score.Player2 < 0 {
		return fmt.Errorf("%w: negative score %+v", ErrInvariant, s.Score)
	}

	speed := s.Ball.Speed()
	if math.Abs(s.Ball.DX) != speed || math.Abs(s.Ball.DY) != speed {
		return fmt.Errorf("%w: ball velocity (%g, %g) differs from launch speed %g",
			ErrInvariant, s.Ball.DX, s.Ball.DY, speed)
	}
	return nil
}

// assertInvariants panics on a violation in builds tagged pongdebug
func (s *Session) assertInvariants() {
	if !debugAsserts {
		return
	}
	if err := s.Verify(); err != nil {
		panic(err)
	}
}
