package game

// Cue is an audible event raised by the session
type Cue uint8

const (
	CuePaddle Cue = iota // Ball reflected off a paddle
	CueWall              // Ball reflected off the top or bottom wall
	CueScore             // A point was scored
	CueCount
)

var cueName = [CueCount]string{
	CuePaddle: "paddle",
	CueWall:   "wall",
	CueScore:  "score",
}

func (c Cue) String() string {
	if c >= CueCount {
		return "unknown"
	}
	return cueName[c]
}

// CueSink receives fire-and-forget cues; playback failure is never reported back
type CueSink interface {
	Cue(c Cue)
}

// NopCues discards every cue
type NopCues struct{}

func (NopCues) Cue(Cue) {}
