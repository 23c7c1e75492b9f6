package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/term-pong/config"
	"github.com/lixenwraith/term-pong/constant"
	"github.com/lixenwraith/term-pong/game"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// waveforms maps a phase in [0, 1) to an amplitude in [-1, 1]
var waveforms = map[WaveType]func(phase float64) float64{
	WaveSine: func(p float64) float64 { return math.Sin(2 * math.Pi * p) },
	WaveSquare: func(p float64) float64 {
		if p < 0.5 {
			return 1
		}
		return -1
	},
	WaveSaw:   func(p float64) float64 { return 2*p - 1 },
	WaveNoise: func(float64) float64 { return rand.Float64()*2 - 1 },
}

// oscillator plays a periodic waveform for a fixed number of samples
type oscillator struct {
	shape     func(float64) float64
	phase     float64
	step      float64
	remaining int
}

// NewOscillator creates a finite oscillator of the given wave shape
// Unknown shapes produce silence for the duration
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	shape, ok := waveforms[wave]
	if !ok {
		shape = func(float64) float64 { return 0 }
	}
	return &oscillator{
		shape:     shape,
		step:      freq / float64(rate),
		remaining: rate.N(duration),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (int, bool) {
	if o.remaining == 0 {
		return 0, false
	}
	n := min(len(samples), o.remaining)
	for i := range samples[:n] {
		v := o.shape(o.phase)
		samples[i] = [2]float64{v, v}
		_, o.phase = math.Modf(o.phase + o.step)
	}
	o.remaining -= n
	return n, true
}

func (o *oscillator) Err() error { return nil }

// envelope shapes a source with a linear fade in and fade out and cuts it at length
type envelope struct {
	src       beep.Streamer
	pos       int
	length    int
	attack    int
	release   int
	releaseAt int
}

// NewEnvelope wraps s with attack and release ramps; s may be infinite
// When attack and release overlap, the release ramp starts where attack ends
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	length := rate.N(duration)
	att := rate.N(attack)
	return &envelope{
		src:       s,
		length:    length,
		attack:    att,
		release:   rate.N(release),
		releaseAt: max(length-rate.N(release), att),
	}
}

// gain returns the envelope level at sample position pos
func (e *envelope) gain(pos int) float64 {
	switch {
	case e.release > 0 && pos >= e.releaseAt:
		return max(float64(e.length-pos)/float64(e.release), 0)
	case pos < e.attack:
		return float64(pos) / float64(e.attack)
	default:
		return 1
	}
}

func (e *envelope) Stream(samples [][2]float64) (int, bool) {
	left := e.length - e.pos
	if left <= 0 {
		return 0, false
	}
	n, ok := e.src.Stream(samples[:min(len(samples), left)])
	for i := range samples[:n] {
		g := e.gain(e.pos)
		samples[i][0] *= g
		samples[i][1] *= g
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.src.Err() }

// newVolume scales linear volume onto effects.Volume's log2 scale
// math.Log2(0) is -Inf, so zero maps to Silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreatePaddleSound generates a short pure tone for a paddle hit
func CreatePaddleSound(cfg config.Audio) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	tone, err := generators.SineTone(rate, constant.PaddleSoundFreq)
	if err != nil {
		// Frequency above Nyquist for a tiny sample rate, fall back to the oscillator
		tone = NewOscillator(constant.PaddleSoundFreq, constant.PaddleSoundDuration, WaveSine, rate)
	}
	shaped := NewEnvelope(tone, constant.PaddleSoundDuration, constant.PaddleSoundAttack, constant.PaddleSoundRelease, rate)

	return newVolume(shaped, cfg.PaddleVolume*cfg.MasterVolume)
}

// CreateWallSound generates a low square blip for a wall bounce
func CreateWallSound(cfg config.Audio) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(constant.WallSoundFreq, constant.WallSoundDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, constant.WallSoundDuration, constant.WallSoundAttack, constant.WallSoundRelease, rate)

	// Square waves are loud at equal amplitude
	return newVolume(newVolume(shaped, 0.4), cfg.WallVolume*cfg.MasterVolume)
}

// CreateScoreSound generates a rising two-note chime for a point
func CreateScoreSound(cfg config.Audio) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// B5
	n1 := NewOscillator(constant.ScoreNote1Freq, constant.ScoreNote1Duration, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, constant.ScoreNote1Duration, constant.ScoreSoundAttack, constant.ScoreNote1Release, rate)

	// E6
	n2 := NewOscillator(constant.ScoreNote2Freq, constant.ScoreNote2Duration, WaveSquare, rate)
	n2Shaped := NewEnvelope(n2, constant.ScoreNote2Duration, constant.ScoreSoundAttack, constant.ScoreNote2Release, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), cfg.ScoreVolume*cfg.MasterVolume)
}

// CueSound returns the streamer for a cue, nil for unknown cues
func CueSound(c game.Cue, cfg config.Audio) beep.Streamer {
	switch c {
	case game.CuePaddle:
		return CreatePaddleSound(cfg)
	case game.CueWall:
		return CreateWallSound(cfg)
	case game.CueScore:
		return CreateScoreSound(cfg)
	default:
		return nil
	}
}
