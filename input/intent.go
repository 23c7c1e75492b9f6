package input

// Action is a logical input the game understands, independent of device keys
type Action uint8

const (
	ActionNone Action = iota

	// Player controls
	ActionPlayer1Up
	ActionPlayer1Down
	ActionPlayer2Up
	ActionPlayer2Down

	// Edge-triggered actions, cleared by the consumer after reading
	ActionConfirm // Launch from start, or return to start during play
	ActionRestart // New session, scores reset
	ActionMute    // Toggle audio cues
	ActionQuit

	actionCount
)

var actionName = [actionCount]string{
	ActionNone:        "none",
	ActionPlayer1Up:   "p1_up",
	ActionPlayer1Down: "p1_down",
	ActionPlayer2Up:   "p2_up",
	ActionPlayer2Down: "p2_down",
	ActionConfirm:     "confirm",
	ActionRestart:     "restart",
	ActionMute:        "mute",
	ActionQuit:        "quit",
}

func (a Action) String() string {
	if a >= actionCount {
		return "unknown"
	}
	return actionName[a]
}

// Edge reports whether the action fires once per press rather than while held
func (a Action) Edge() bool {
	return a >= ActionConfirm && a < actionCount
}

// ParseAction resolves a canonical action name
func ParseAction(name string) (Action, bool) {
	for a, n := range actionName {
		if n == name {
			return Action(a), true
		}
	}
	return ActionNone, false
}
