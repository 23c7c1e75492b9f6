package config

import (
	"fmt"

	"github.com/lixenwraith/term-pong/constant"
)

// Audio controls cue playback; volumes are linear in [0, 1]
type Audio struct {
	Enabled      bool    `env:"ENABLED"`
	MasterVolume float64 `env:"MASTER_VOLUME"`
	SampleRate   int     `env:"SAMPLE_RATE"`

	PaddleVolume float64 `env:"PADDLE_VOLUME"`
	WallVolume   float64 `env:"WALL_VOLUME"`
	ScoreVolume  float64 `env:"SCORE_VOLUME"`
}

// DefaultAudio returns the default audio configuration
func DefaultAudio() Audio {
	return Audio{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   constant.AudioSampleRate,
		PaddleVolume: 0.8,
		WallVolume:   0.5,
		ScoreVolume:  1.0,
	}
}

// Validate checks volume ranges and sample rate
func (a Audio) Validate() error {
	if a.SampleRate <= 0 {
		return fmt.Errorf("audio sample rate must be positive, got %d", a.SampleRate)
	}
	for name, v := range map[string]float64{
		"master": a.MasterVolume,
		"paddle": a.PaddleVolume,
		"wall":   a.WallVolume,
		"score":  a.ScoreVolume,
	} {
		if v < 0 || v > 1 {
			return fmt.Errorf("%s volume %g outside [0, 1]", name, v)
		}
	}
	return nil
}
