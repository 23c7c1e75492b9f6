package input

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// KeyTable maps terminal keys to actions
type KeyTable struct {
	// Special keys (arrows, Enter, Esc, Ctrl+*)
	SpecialKeys map[tcell.Key]Action

	// Printable rune bindings, matched case-insensitively
	Runes map[rune]Action
}

// DefaultKeyTable returns the default bindings: W/S for the left paddle,
// arrows for the right paddle, Space/Enter to launch
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Action{
			tcell.KeyUp:     ActionPlayer2Up,
			tcell.KeyDown:   ActionPlayer2Down,
			tcell.KeyEnter:  ActionConfirm,
			tcell.KeyEscape: ActionQuit,
			tcell.KeyCtrlC:  ActionQuit,
			tcell.KeyCtrlQ:  ActionQuit,
		},
		Runes: map[rune]Action{
			'w': ActionPlayer1Up,
			's': ActionPlayer1Down,
			' ': ActionConfirm,
			'r': ActionRestart,
			'm': ActionMute,
			'q': ActionQuit,
		},
	}
}

// Lookup resolves a tcell key event
func (kt *KeyTable) Lookup(ev *tcell.EventKey) (Action, bool) {
	if ev.Key() == tcell.KeyRune {
		a, ok := kt.Runes[toLower(ev.Rune())]
		return a, ok
	}
	a, ok := kt.SpecialKeys[ev.Key()]
	return a, ok
}

// runeAliases names runes that are awkward in an env value
var runeAliases = map[string]rune{
	"space": ' ',
	"comma": ',',
}

// ApplyOverrides rebinds runes from a "action=key,action=key" list
// An existing binding of the same rune is replaced
func (kt *KeyTable) ApplyOverrides(bindings string) error {
	bindings = strings.TrimSpace(bindings)
	if bindings == "" {
		return nil
	}

	for _, pair := range strings.Split(bindings, ",") {
		name, key, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok {
			return fmt.Errorf("binding %q: expected action=key", pair)
		}

		action, ok := ParseAction(strings.TrimSpace(name))
		if !ok || action == ActionNone {
			return fmt.Errorf("binding %q: unknown action %q", pair, name)
		}

		key = strings.TrimSpace(key)
		r, ok := runeAliases[key]
		if !ok {
			if utf8.RuneCountInString(key) != 1 {
				return fmt.Errorf("binding %q: key must be a single character", pair)
			}
			r, _ = utf8.DecodeRuneInString(key)
		}
		r = toLower(r)

		// Drop the action's previous rune binding so it moves rather than duplicates
		for existing, bound := range kt.Runes {
			if bound == action {
				delete(kt.Runes, existing)
			}
		}
		kt.Runes[r] = action
	}
	return nil
}

func toLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}
