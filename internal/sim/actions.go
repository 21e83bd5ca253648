package sim

import "unicode"

// Action is a user command shared by the interactive presenters.
type Action uint8

const (
	ActionNone Action = iota
	ActionRestart
	ActionPause
	ActionSkip
	ActionHue
	ActionStep
	ActionPanel
	ActionQuit
)

var actionKeys = map[rune]Action{
	'r': ActionRestart,
	' ': ActionPause,
	's': ActionSkip,
	'e': ActionHue,
	'n': ActionStep,
	'h': ActionPanel,
	'q': ActionQuit,
}

// ActionForKey maps a typed character to its action, case-insensitively.
func ActionForKey(r rune) Action {
	return actionKeys[unicode.ToLower(r)]
}

// Apply performs the board side of an action. Panel and quit belong to the
// presenter and are ignored here.
func (b *Board) Apply(a Action) error {
	switch a {
	case ActionRestart:
		return b.Generate()
	case ActionPause:
		b.TogglePause()
	case ActionSkip:
		b.SkipCarve()
	case ActionHue:
		b.ToggleHueMode()
	case ActionStep:
		b.Advance()
	}
	return nil
}
