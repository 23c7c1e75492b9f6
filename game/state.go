package game

// State is the session phase
type State int

const (
	// StateStart is idle: ball parked at centre, waiting for confirm
	StateStart State = iota
	// StatePlay is ball in motion with physics active
	StatePlay
)

var stateName = map[State]string{
	StateStart: "start",
	StatePlay:  "play",
}

func (s State) String() string {
	return stateName[s]
}

// Side identifies a player
type Side int

const (
	SideNone Side = iota
	SidePlayer1
	SidePlayer2
)

var sideName = map[Side]string{
	SideNone:    "none",
	SidePlayer1: "player1",
	SidePlayer2: "player2",
}

func (s Side) String() string {
	return sideName[s]
}

// Score holds both players' points, never decreasing within a session
type Score struct {
	Player1 int
	Player2 int
}

// Add returns the score with one point credited to side
func (s Score) Add(side Side) Score {
	switch side {
	case SidePlayer1:
		s.Player1++
	case SidePlayer2:
		s.Player2++
	}
	return s
}
