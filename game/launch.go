package game

import (
	"fmt"
	"time"

	"golang.org/x/exp/rand"

	"github.com/lixenwraith/term-pong/constant"
)

// LaunchPolicy picks the ball direction on every reset
// Direction returns the sign (+1 or -1) applied to the launch speed on each axis
type LaunchPolicy interface {
	Direction() (sx, sy float64)
}

// FixedLaunch always serves down and to the right
type FixedLaunch struct{}

func (FixedLaunch) Direction() (float64, float64) {
	return 1, 1
}

// RandomLaunch chooses each axis sign independently
type RandomLaunch struct {
	rng *rand.Rand
}

// NewRandomLaunch seeds the policy; seed 0 uses the current time
func NewRandomLaunch(seed uint64) *RandomLaunch {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &RandomLaunch{rng: rand.New(rand.NewSource(seed))}
}

func (l *RandomLaunch) Direction() (float64, float64) {
	return float64(l.rng.Intn(2)*2 - 1), float64(l.rng.Intn(2)*2 - 1)
}

// NewLaunchPolicy resolves a configured policy name
func NewLaunchPolicy(name string, seed uint64) (LaunchPolicy, error) {
	switch name {
	case constant.LaunchFixed, "":
		return FixedLaunch{}, nil
	case constant.LaunchRandom:
		return NewRandomLaunch(seed), nil
	default:
		return nil, fmt.Errorf("unknown launch policy %q", name)
	}
}
