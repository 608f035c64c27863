package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // Esc, Ctrl+C, q
	IntentResize     // Terminal resize event
	IntentToggleMute // m

	// Game intents
	IntentPrimary         // Space: ascend, confirm at menus
	IntentToggleStarfield // s, S
)

var intentNames = [...]string{
	IntentNone:            "None",
	IntentQuit:            "Quit",
	IntentResize:          "Resize",
	IntentToggleMute:      "ToggleMute",
	IntentPrimary:         "Primary",
	IntentToggleStarfield: "ToggleStarfield",
}

func (i IntentType) String() string {
	if int(i) >= len(intentNames) {
		return "Unknown"
	}
	return intentNames[i]
}
