// Package game implements the pong core: paddle and ball motion, axis-aligned
// collision, and the Start/Play session state machine that applies input,
// advances physics and scores points.
//
// The package has no notion of screens, keys or sound devices. A host feeds
// Session.Update a delta time in seconds and an input.Source once per frame,
// and reads Session.Frame to draw.
package game
