package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/term-pong/engine"
)

func TestKeysRisingEdgeOnly(t *testing.T) {
	clock := engine.NewMockTimeProvider(time.Unix(0, 0))
	keys := NewKeys(100*time.Millisecond, 0, clock)

	keys.Press(ActionConfirm)
	assert.True(t, keys.Held(ActionConfirm))

	assert.True(t, Consume(keys, ActionConfirm))
	assert.False(t, keys.Held(ActionConfirm), "consume clears the flag")

	// Key repeat while still down must not re-arm
	clock.Advance(30 * time.Millisecond)
	keys.Press(ActionConfirm)
	assert.False(t, keys.Held(ActionConfirm))

	// A fresh press after release arms again
	keys.Release(ActionConfirm)
	keys.Press(ActionConfirm)
	assert.True(t, keys.Held(ActionConfirm))
}

func TestKeysRefreshExpiresStaleKeys(t *testing.T) {
	clock := engine.NewMockTimeProvider(time.Unix(0, 0))
	keys := NewKeys(100*time.Millisecond, 0, clock)

	keys.Press(ActionPlayer1Up)
	clock.Advance(80 * time.Millisecond)
	keys.Refresh()
	assert.True(t, keys.Held(ActionPlayer1Up), "within timeout")

	// Repeat extends the hold
	keys.Press(ActionPlayer1Up)
	clock.Advance(80 * time.Millisecond)
	keys.Refresh()
	assert.True(t, keys.Held(ActionPlayer1Up))

	clock.Advance(50 * time.Millisecond)
	keys.Refresh()
	assert.False(t, keys.Held(ActionPlayer1Up), "released after timeout")

	// Expiry counts as release, so the next press is a rising edge
	keys.Press(ActionPlayer1Up)
	assert.True(t, keys.Held(ActionPlayer1Up))
}

// A held confirm key in a terminal: one press, silence until the OS auto-repeat
// delay, then repeats every 32ms. The game consumes confirm once per 16ms frame.
func TestKeysHeldEdgeActionFiresOnce(t *testing.T) {
	clock := engine.NewMockTimeProvider(time.Unix(0, 0))
	keys := NewKeys(180*time.Millisecond, 700*time.Millisecond, clock)

	const frame = 16 * time.Millisecond
	nextRepeat := 496 * time.Millisecond
	fired := 0

	keys.Press(ActionConfirm)
	for clock.Elapsed() < 2*time.Second {
		if clock.Elapsed() >= nextRepeat {
			keys.Press(ActionConfirm)
			nextRepeat += 32 * time.Millisecond
		}
		keys.Refresh()
		if Consume(keys, ActionConfirm) {
			fired++
		}
		clock.Advance(frame)
	}
	assert.Equal(t, 1, fired, "key repeat must not re-arm confirm")

	// Let go: after the edge timeout the next press is a new edge
	clock.Advance(800 * time.Millisecond)
	keys.Refresh()
	keys.Press(ActionConfirm)
	assert.True(t, Consume(keys, ActionConfirm))
}

func TestKeysEdgeTimeoutOnlyAppliesToEdgeActions(t *testing.T) {
	clock := engine.NewMockTimeProvider(time.Unix(0, 0))
	keys := NewKeys(180*time.Millisecond, 700*time.Millisecond, clock)

	keys.Press(ActionPlayer1Up)
	keys.Press(ActionMute)
	clock.Advance(300 * time.Millisecond)
	keys.Refresh()

	assert.False(t, keys.Held(ActionPlayer1Up), "movement keys use the short timeout")
	assert.True(t, keys.Held(ActionMute))

	// An edge timeout below the hold timeout is raised to it
	short := NewKeys(180*time.Millisecond, 50*time.Millisecond, clock)
	short.Press(ActionQuit)
	clock.Advance(100 * time.Millisecond)
	short.Refresh()
	assert.True(t, short.Held(ActionQuit))
}

func TestActionEdge(t *testing.T) {
	for _, a := range []Action{ActionConfirm, ActionRestart, ActionMute, ActionQuit} {
		assert.True(t, a.Edge(), a.String())
	}
	for _, a := range []Action{ActionNone, ActionPlayer1Up, ActionPlayer2Down} {
		assert.False(t, a.Edge(), a.String())
	}
}

func TestKeysNoExpiryWhenDisabled(t *testing.T) {
	clock := engine.NewMockTimeProvider(time.Unix(0, 0))
	keys := NewKeys(0, 0, clock)

	keys.Press(ActionPlayer2Down)
	clock.Advance(time.Hour)
	keys.Refresh()
	assert.True(t, keys.Held(ActionPlayer2Down))
}

func TestKeysIgnoresOutOfRange(t *testing.T) {
	keys := NewKeys(0, 0, nil)
	keys.Press(ActionNone)
	keys.Press(actionCount + 1)
	assert.False(t, keys.Held(ActionNone))
	assert.False(t, keys.Held(actionCount+1))
}

func TestActionNames(t *testing.T) {
	for a := ActionNone; a < actionCount; a++ {
		parsed, ok := ParseAction(a.String())
		require.True(t, ok, a.String())
		assert.Equal(t, a, parsed)
	}
	_, ok := ParseAction("jump")
	assert.False(t, ok)
	assert.Equal(t, "unknown", Action(200).String())
}

func TestDefaultKeyTableLookup(t *testing.T) {
	kt := DefaultKeyTable()

	tests := []struct {
		name string
		ev   *tcell.EventKey
		want Action
	}{
		{"w", tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), ActionPlayer1Up},
		{"shift S", tcell.NewEventKey(tcell.KeyRune, 'S', tcell.ModShift), ActionPlayer1Down},
		{"up arrow", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), ActionPlayer2Up},
		{"down arrow", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), ActionPlayer2Down},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), ActionConfirm},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), ActionConfirm},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), ActionQuit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := kt.Lookup(tt.ev)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	_, ok := kt.Lookup(tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone))
	assert.False(t, ok)
}

func TestApplyOverrides(t *testing.T) {
	kt := DefaultKeyTable()

	require.NoError(t, kt.ApplyOverrides("p1_up=I, p1_down=k, confirm=space"))
	assert.Equal(t, ActionPlayer1Up, kt.Runes['i'])
	assert.Equal(t, ActionPlayer1Down, kt.Runes['k'])
	assert.Equal(t, ActionConfirm, kt.Runes[' '])
	_, stillBound := kt.Runes['w']
	assert.False(t, stillBound, "old binding moves to the new key")

	assert.Error(t, kt.ApplyOverrides("fly=x"))
	assert.Error(t, kt.ApplyOverrides("p1_up"))
	assert.Error(t, kt.ApplyOverrides("p1_up=xy"))
	assert.NoError(t, kt.ApplyOverrides(""))
}
