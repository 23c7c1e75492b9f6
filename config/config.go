// Package config holds the single configuration structure for a pong session
// and its runtime hosts.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/lixenwraith/term-pong/constant"
)

// EnvPrefix is prepended to every environment variable name
const EnvPrefix = "PONG_"

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

// Config describes playfield geometry, entity sizes and speeds, and runtime knobs
type Config struct {
	FieldWidth  float64 `env:"FIELD_WIDTH"`
	FieldHeight float64 `env:"FIELD_HEIGHT"`

	PaddleWidth   float64 `env:"PADDLE_WIDTH"`
	PaddleHeight  float64 `env:"PADDLE_HEIGHT"`
	PaddleSpeed   float64 `env:"PADDLE_SPEED"`
	PaddleOffsetX float64 `env:"PADDLE_OFFSET_X"`
	PaddleOffsetY float64 `env:"PADDLE_OFFSET_Y"`

	BallWidth  float64 `env:"BALL_WIDTH"`
	BallHeight float64 `env:"BALL_HEIGHT"`
	BallSpeed  float64 `env:"BALL_SPEED"`

	// Launch selects the ball direction policy on reset: "fixed" or "random"
	Launch string `env:"LAUNCH"`
	// Seed feeds the random launch policy, 0 seeds from the clock
	Seed uint64 `env:"SEED"`

	FrameInterval time.Duration `env:"FRAME_INTERVAL"`
	HoldTimeout   time.Duration `env:"HOLD_TIMEOUT"`
	// EdgeHoldTimeout releases held confirm/restart/mute/quit keys; must exceed
	// the terminal's auto-repeat delay
	EdgeHoldTimeout time.Duration `env:"EDGE_HOLD_TIMEOUT"`

	// Keys rebinds terminal runes, e.g. "p1_up=k,p1_down=j"
	Keys string `env:"KEYS"`

	Audio Audio `envPrefix:"AUDIO_"`
}

// Default returns the observed constants of the classic 1280x720 field
func Default() Config {
	return Config{
		FieldWidth:      constant.FieldWidth,
		FieldHeight:     constant.FieldHeight,
		PaddleWidth:     constant.PaddleWidth,
		PaddleHeight:    constant.PaddleHeight,
		PaddleSpeed:     constant.PaddleSpeed,
		PaddleOffsetX:   constant.PaddleOffsetX,
		PaddleOffsetY:   constant.PaddleOffsetY,
		BallWidth:       constant.BallWidth,
		BallHeight:      constant.BallHeight,
		BallSpeed:       constant.BallSpeed,
		Launch:          constant.LaunchFixed,
		FrameInterval:   constant.FrameUpdateInterval,
		HoldTimeout:     constant.InputHoldTimeout,
		EdgeHoldTimeout: constant.InputEdgeHoldTimeout,
		Audio:           DefaultAudio(),
	}
}

// Load returns the defaults overridden by PONG_* variables from the process environment
func Load() (Config, error) {
	return LoadFrom(nil)
}

// LoadFrom is Load with an explicit environment, nil means the process environment
func LoadFrom(environ map[string]string) (Config, error) {
	cfg := Default()
	opts := env.Options{Prefix: EnvPrefix}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects geometry that cannot host a game
func (c Config) Validate() error {
	positive := []struct {
		name string
		v    float64
	}{
		{"field width", c.FieldWidth},
		{"field height", c.FieldHeight},
		{"paddle width", c.PaddleWidth},
		{"paddle height", c.PaddleHeight},
		{"paddle speed", c.PaddleSpeed},
		{"ball width", c.BallWidth},
		{"ball height", c.BallHeight},
		{"ball speed", c.BallSpeed},
	}
	for _, p := range positive {
		if p.v <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %g", ErrInvalid, p.name, p.v)
		}
	}

	if c.PaddleOffsetX < 0 || c.PaddleOffsetY < 0 {
		return fmt.Errorf("%w: paddle offsets must not be negative", ErrInvalid)
	}
	if c.PaddleHeight+c.PaddleOffsetY > c.FieldHeight {
		return fmt.Errorf("%w: paddle height %g with offset %g exceeds field height %g",
			ErrInvalid, c.PaddleHeight, c.PaddleOffsetY, c.FieldHeight)
	}
	if 2*(c.PaddleOffsetX+c.PaddleWidth) >= c.FieldWidth {
		return fmt.Errorf("%w: paddles overlap on a %g wide field", ErrInvalid, c.FieldWidth)
	}
	if c.BallHeight >= c.FieldHeight || c.BallWidth >= c.FieldWidth {
		return fmt.Errorf("%w: ball does not fit the field", ErrInvalid)
	}

	switch c.Launch {
	case constant.LaunchFixed, constant.LaunchRandom:
	default:
		return fmt.Errorf("%w: unknown launch policy %q", ErrInvalid, c.Launch)
	}

	if c.FrameInterval <= 0 {
		return fmt.Errorf("%w: frame interval must be positive", ErrInvalid)
	}
	if c.HoldTimeout <= 0 {
		return fmt.Errorf("%w: hold timeout must be positive", ErrInvalid)
	}
	if c.EdgeHoldTimeout < c.HoldTimeout {
		return fmt.Errorf("%w: edge hold timeout shorter than hold timeout", ErrInvalid)
	}

	if err := c.Audio.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// Player1Start is the starting top-left corner of the left paddle
func (c Config) Player1Start() (x, y float64) {
	return c.PaddleOffsetX, c.PaddleOffsetY
}

// Player2Start is the starting top-left corner of the right paddle
func (c Config) Player2Start() (x, y float64) {
	return c.FieldWidth - c.PaddleOffsetX - c.PaddleWidth, c.FieldHeight - c.PaddleOffsetY - c.PaddleHeight
}

// BallCenter is the top-left corner that centres the ball in the field
func (c Config) BallCenter() (x, y float64) {
	return c.FieldWidth/2 - c.BallWidth/2, c.FieldHeight/2 - c.BallHeight/2
}
