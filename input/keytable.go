package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, Esc)
	SpecialKeys map[tcell.Key]IntentType

	// Rune bindings
	Runes map[rune]IntentType

	// Rune bindings with Ctrl held, for terminals reporting Ctrl+letter as a modified rune
	CtrlRunes map[rune]IntentType
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]IntentType{
			tcell.KeyEscape: IntentQuit,
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyCtrlQ:  IntentQuit,
		},
		Runes: map[rune]IntentType{
			' ': IntentPrimary,
			's': IntentToggleStarfield,
			'S': IntentToggleStarfield,
			'q': IntentQuit,
			'Q': IntentQuit,
			'm': IntentToggleMute,
			'M': IntentToggleMute,
		},
		CtrlRunes: map[rune]IntentType{
			'c': IntentQuit,
			'q': IntentQuit,
		},
	}
}

// Lookup resolves a key event to an intent
func (kt *KeyTable) Lookup(ev *tcell.EventKey) IntentType {
	if ev.Key() == tcell.KeyRune {
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			return kt.CtrlRunes[ev.Rune()]
		}
		return kt.Runes[ev.Rune()]
	}
	return kt.SpecialKeys[ev.Key()]
}
