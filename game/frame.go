package game

import "github.com/google/uuid"

// Frame is an immutable snapshot of everything a renderer draws
type Frame struct {
	SessionID uuid.UUID
	Tick      uint64

	FieldWidth  float64
	FieldHeight float64

	Player1 Rect
	Player2 Rect
	Ball    Rect

	Score Score
	State State
}
