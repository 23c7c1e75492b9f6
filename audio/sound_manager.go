package audio

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/term-pong/config"
	"github.com/lixenwraith/term-pong/constant"
	"github.com/lixenwraith/term-pong/game"
)

// Sentinel errors
var (
	ErrNotInitialized = errors.New("audio: speaker not initialized")
	ErrDisabled       = errors.New("audio: disabled by configuration")
)

// Player is a cue sink the host can mute and shut down
type Player interface {
	game.CueSink
	ToggleMute() bool
	Muted() bool
	Cleanup()
}

// SoundManager plays game cues through the beep speaker
type SoundManager struct {
	mu          sync.Mutex
	cfg         config.Audio
	mixer       *beep.Mixer
	initialized bool
	muted       bool
	lastPlayed  [game.CueCount]time.Time
	now         func() time.Time
	logger      *slog.Logger
}

// NewSoundManager creates an uninitialized manager; Cue is a no-op until Initialize succeeds
func NewSoundManager(cfg config.Audio, logger *slog.Logger) *SoundManager {
	if logger == nil {
		logger = slog.Default()
	}
	return &SoundManager{
		cfg:    cfg,
		mixer:  &beep.Mixer{},
		now:    time.Now,
		logger: logger,
	}
}

// Initialize opens the speaker and starts the mixer
// Calling it twice is a no-op
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.cfg.Enabled {
		return ErrDisabled
	}
	if sm.initialized {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constant.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	sm.logger.Debug("audio initialized", "sample_rate", sm.cfg.SampleRate)
	return nil
}

// Cleanup silences the mixer and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()

	sm.initialized = false
}

// Cue implements game.CueSink, dropping the cue when silent or rate limited
func (sm *SoundManager) Cue(c game.Cue) {
	if err := sm.Play(c); err != nil && !errors.Is(err, ErrNotInitialized) {
		sm.logger.Debug("cue dropped", "cue", c.String(), "error", err)
	}
}

// Play queues the sound for c on the mixer
// Returns ErrNotInitialized before Initialize; muted and rate limited cues return nil
func (sm *SoundManager) Play(c game.Cue) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return ErrNotInitialized
	}
	if sm.muted || c >= game.CueCount {
		return nil
	}

	now := sm.now()
	if now.Sub(sm.lastPlayed[c]) < constant.MinSoundGap {
		return nil
	}

	s := CueSound(c, sm.cfg)
	if s == nil {
		return fmt.Errorf("no sound for cue %s", c)
	}
	sm.lastPlayed[c] = now

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	return nil
}

// ToggleMute flips the mute flag and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = !sm.muted
	if sm.muted && sm.initialized {
		speaker.Lock()
		sm.mixer.Clear()
		speaker.Unlock()
	}
	return sm.muted
}

// Muted reports the mute flag
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Silent is a Player that never makes a sound
// Used by the headless host and when the speaker is unavailable
type Silent struct {
	mu    sync.Mutex
	muted bool
	cues  [game.CueCount]int
}

// Cue counts the cue and discards it
func (s *Silent) Cue(c game.Cue) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c < game.CueCount {
		s.cues[c]++
	}
}

// Count returns how many times c was received
func (s *Silent) Count(c game.Cue) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c >= game.CueCount {
		return 0
	}
	return s.cues[c]
}

func (s *Silent) ToggleMute() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.muted = !s.muted
	return s.muted
}

func (s *Silent) Muted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.muted
}

func (s *Silent) Cleanup() {}

// Open returns a SoundManager when the speaker comes up, otherwise a Silent player
// The returned error explains the fallback and is informational only
func Open(cfg config.Audio, logger *slog.Logger) (Player, error) {
	sm := NewSoundManager(cfg, logger)
	if err := sm.Initialize(); err != nil {
		return &Silent{}, err
	}
	return sm, nil
}
