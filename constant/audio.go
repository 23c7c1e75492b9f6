package constant

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond

	// MinSoundGap between consecutive cues of the same type
	MinSoundGap = 40 * time.Millisecond
)

// Paddle Sound
const (
	PaddleSoundDuration = 60 * time.Millisecond
	PaddleSoundAttack   = 3 * time.Millisecond
	PaddleSoundRelease  = 30 * time.Millisecond
	PaddleSoundFreq     = 440.0
)

// Wall Sound
const (
	WallSoundDuration = 50 * time.Millisecond
	WallSoundAttack   = 3 * time.Millisecond
	WallSoundRelease  = 25 * time.Millisecond
	WallSoundFreq     = 220.0
)

// Score Sound
const (
	ScoreNote1Duration = 90 * time.Millisecond
	ScoreNote2Duration = 260 * time.Millisecond
	ScoreSoundAttack   = 5 * time.Millisecond
	ScoreNote1Release  = 40 * time.Millisecond
	ScoreNote2Release  = 200 * time.Millisecond
	ScoreNote1Freq     = 987.77
	ScoreNote2Freq     = 1318.51
)
