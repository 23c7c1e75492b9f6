package game

import (
	"io"
	"log/slog"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/term-pong/config"
	"github.com/lixenwraith/term-pong/input"
)

// heldKeys is an input source whose flags stay set until cleared
type heldKeys map[input.Action]bool

func (h heldKeys) Held(a input.Action) bool { return h[a] }
func (h heldKeys) Clear(a input.Action)     { h[a] = false }

type recordedCues []Cue

func (r *recordedCues) Cue(c Cue) { *r = append(*r, c) }

func (r recordedCues) count(c Cue) int {
	n := 0
	for _, got := range r {
		if got == c {
			n++
		}
	}
	return n
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestSession(t *testing.T, opts ...Option) (*Session, *recordedCues) {
	t.Helper()
	cues := &recordedCues{}
	opts = append([]Option{WithCues(cues), WithLogger(quietLogger())}, opts...)
	s, err := NewSession(config.Default(), opts...)
	require.NoError(t, err)
	return s, cues
}

func TestNewSession(t *testing.T) {
	s, _ := newTestSession(t)

	assert.Equal(t, StateStart, s.State, "initial state should be start")
	assert.Equal(t, Score{}, s.Score)
	assert.Equal(t, 30.0, s.Player1.X)
	assert.Equal(t, 30.0, s.Player1.Y)
	assert.Equal(t, 1230.0, s.Player2.X)
	assert.Equal(t, 490.0, s.Player2.Y)
	assert.Equal(t, 630.0, s.Ball.X)
	assert.Equal(t, 350.0, s.Ball.Y)
	assert.NotEqual(t, [16]byte{}, [16]byte(s.ID))
	assert.NoError(t, s.Verify())
}

func TestNewSessionRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.BallSpeed = 0

	_, err := NewSession(cfg)
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestConfirmStartsPlay(t *testing.T) {
	s, _ := newTestSession(t)
	keys := heldKeys{input.ActionConfirm: true}

	s.Update(0.1, keys)

	assert.Equal(t, StatePlay, s.State)
	assert.False(t, keys[input.ActionConfirm], "confirm is consumed")
	assert.Equal(t, 650.0, s.Ball.X, "ball moves in the same frame play begins")
}

func TestBallParkedDuringStart(t *testing.T) {
	s, _ := newTestSession(t)

	for i := 0; i < 10; i++ {
		s.Update(0.1, heldKeys{})
	}

	assert.Equal(t, StateStart, s.State)
	assert.Equal(t, 630.0, s.Ball.X)
	assert.Equal(t, 350.0, s.Ball.Y)
}

func TestConfirmHeldTriggersOnce(t *testing.T) {
	s, _ := newTestSession(t)
	keys := input.NewKeys(0, 0, nil)
	keys.Press(input.ActionConfirm)

	s.Update(0.016, keys)
	s.Update(0.016, keys)

	// Key repeat from the host while still held
	keys.Press(input.ActionConfirm)
	s.Update(0.016, keys)

	assert.Equal(t, StatePlay, s.State, "held confirm transitions exactly once")
}

func TestConfirmDuringPlayReturnsToStart(t *testing.T) {
	s, _ := newTestSession(t)
	s.Update(0.1, heldKeys{input.ActionConfirm: true})
	s.Update(0.5, heldKeys{})
	require.NotEqual(t, 630.0, s.Ball.X)

	s.Update(0.1, heldKeys{input.ActionConfirm: true})

	assert.Equal(t, StateStart, s.State)
	assert.Equal(t, 630.0, s.Ball.X, "ball parked at centre")
	assert.Equal(t, 350.0, s.Ball.Y)
	assert.Equal(t, Score{}, s.Score, "no point for a manual reset")
}

func TestScoreLeftBoundary(t *testing.T) {
	s, cues := newTestSession(t)
	s.State = StatePlay
	s.Ball.X = -1

	s.Update(0, heldKeys{})

	assert.Equal(t, 1, s.Score.Player2, "ball past the left edge scores for player 2")
	assert.Equal(t, 0, s.Score.Player1)
	assert.Equal(t, StateStart, s.State)
	assert.Equal(t, 630.0, s.Ball.X)
	assert.Equal(t, 350.0, s.Ball.Y)
	assert.Equal(t, 1, cues.count(CueScore))
}

func TestScoreRightBoundary(t *testing.T) {
	s, cues := newTestSession(t)
	s.State = StatePlay
	s.Ball.X = s.Config().FieldWidth

	s.Update(0, heldKeys{})

	assert.Equal(t, 1, s.Score.Player1)
	assert.Equal(t, 0, s.Score.Player2)
	assert.Equal(t, StateStart, s.State)
	assert.Equal(t, 630.0, s.Ball.X)
	assert.Equal(t, 1, cues.count(CueScore))
}

func TestScoreCheckedInStartState(t *testing.T) {
	s, _ := newTestSession(t)
	s.Ball.X = -10

	s.Update(0, heldKeys{})

	assert.Equal(t, 1, s.Score.Player2, "boundary check runs regardless of state")
}

func TestBallReachesRightEdgeFromServe(t *testing.T) {
	s, _ := newTestSession(t)
	s.Update(0, heldKeys{input.ActionConfirm: true})

	// Fixed serve heads right at 200/s; player 2 never moves out of its start
	for i := 0; i < 2000 && s.Score == (Score{}); i++ {
		s.Update(1.0/60, heldKeys{})
	}

	assert.Equal(t, Score{Player1: 1}, s.Score)
}

func TestPaddlesMoveInBothStates(t *testing.T) {
	s, _ := newTestSession(t)
	keys := heldKeys{input.ActionPlayer1Down: true, input.ActionPlayer2Up: true}

	s.Update(0.1, keys)
	assert.Equal(t, StateStart, s.State)
	assert.Equal(t, 130.0, s.Player1.Y)
	assert.Equal(t, 390.0, s.Player2.Y)

	keys[input.ActionConfirm] = true
	s.Update(0.1, keys)
	assert.Equal(t, StatePlay, s.State)
	assert.Equal(t, 230.0, s.Player1.Y)
	assert.Equal(t, 290.0, s.Player2.Y)
}

func TestPaddleUpAndDownCancel(t *testing.T) {
	s, _ := newTestSession(t)
	both := heldKeys{input.ActionPlayer1Up: true, input.ActionPlayer1Down: true}

	s.Player1.Reset(300)
	s.Update(0.1, both)
	assert.Equal(t, 300.0, s.Player1.Y)
	assert.Zero(t, s.Player1.DY)

	// At the top wall the up move is clamped away and only the down move remains
	s.Player1.Reset(0)
	s.Update(0.1, both)
	assert.Equal(t, 100.0, s.Player1.Y)
}

func TestPaddleStopsWithoutInput(t *testing.T) {
	s, _ := newTestSession(t)
	s.Update(0.1, heldKeys{input.ActionPlayer1Down: true})
	require.NotZero(t, s.Player1.DY)

	s.Update(0.1, heldKeys{})

	assert.Zero(t, s.Player1.DY)
}

func TestPlayCuesOnWallAndPaddle(t *testing.T) {
	s, cues := newTestSession(t)
	s.State = StatePlay
	s.Ball.Y = s.Config().FieldHeight - s.Ball.Height

	s.Update(0.01, heldKeys{})
	assert.Equal(t, 1, cues.count(CueWall))

	s.Ball.X = s.Player1.X + 5
	s.Ball.Y = s.Player1.Y + 10
	s.Update(0.01, heldKeys{})
	assert.Equal(t, 1, cues.count(CuePaddle))
}

func TestRestartClearsScore(t *testing.T) {
	s, _ := newTestSession(t)
	s.Score = Score{Player1: 3, Player2: 4}
	s.State = StatePlay
	s.Player1.Reset(400)
	oldID := s.ID

	s.Update(0, heldKeys{input.ActionRestart: true})

	assert.Equal(t, Score{}, s.Score)
	assert.Equal(t, StateStart, s.State)
	assert.Equal(t, 30.0, s.Player1.Y)
	assert.NotEqual(t, oldID, s.ID, "a new session gets a new id")
}

func TestFrameSnapshot(t *testing.T) {
	s, _ := newTestSession(t)
	s.Update(0, heldKeys{})

	f := s.Frame()

	assert.Equal(t, s.ID, f.SessionID)
	assert.Equal(t, uint64(1), f.Tick)
	assert.Equal(t, Rect{X: 30, Y: 30, W: 20, H: 200}, f.Player1)
	assert.Equal(t, Rect{X: 630, Y: 350, W: 20, H: 20}, f.Ball)
	assert.Equal(t, 1280.0, f.FieldWidth)
	assert.Equal(t, StateStart, f.State)
}

func TestWithLaunchOverridesConfig(t *testing.T) {
	s, _ := newTestSession(t, WithLaunch(launchFunc(func() (float64, float64) { return -1, -1 })))

	assert.Equal(t, -200.0, s.Ball.DX)
	assert.Equal(t, -200.0, s.Ball.DY)
}

type launchFunc func() (float64, float64)

func (f launchFunc) Direction() (float64, float64) { return f() }

// TestRandomPlayKeepsInvariants drives the session with random input and deltas,
// checking scoring exclusivity and the structural invariants every frame
func TestRandomPlayKeepsInvariants(t *testing.T) {
	cfg := config.Default()
	cfg.Launch = "random"
	cfg.Seed = 11
	s, err := NewSession(cfg, WithLogger(quietLogger()))
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(3))
	actions := []input.Action{
		input.ActionPlayer1Up, input.ActionPlayer1Down,
		input.ActionPlayer2Up, input.ActionPlayer2Down,
	}

	for i := 0; i < 20000; i++ {
		keys := heldKeys{}
		for _, a := range actions {
			keys[a] = rng.Intn(3) == 0
		}
		if s.State == StateStart && rng.Intn(20) == 0 {
			keys[input.ActionConfirm] = true
		}

		before := s.Score
		s.Update(rng.Float64()*0.05, keys)

		gained := (s.Score.Player1 - before.Player1) + (s.Score.Player2 - before.Player2)
		require.LessOrEqual(t, gained, 1, "frame %d scored twice", i)
		require.GreaterOrEqual(t, s.Score.Player1, before.Player1)
		require.GreaterOrEqual(t, s.Score.Player2, before.Player2)
		require.NoError(t, s.Verify(), "frame %d", i)
	}
}

func TestVerifyDetectsViolations(t *testing.T) {
	s, _ := newTestSession(t)
	s.Player1.Y = -1
	assert.ErrorIs(t, s.Verify(), ErrInvariant)

	s.Player1.Reset(0)
	s.Ball.DX = 250
	assert.ErrorIs(t, s.Verify(), ErrInvariant)
}

func TestStateAndSideNames(t *testing.T) {
	assert.Equal(t, "start", StateStart.String())
	assert.Equal(t, "play", StatePlay.String())
	assert.Equal(t, "player1", SidePlayer1.String())
	assert.Equal(t, "player2", SidePlayer2.String())
	assert.Equal(t, "score", CueScore.String())
}
