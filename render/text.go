package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// drawText writes s starting at x and returns the column after the last rune
// Wide runes advance by their display width; text past maxX is clipped
func drawText(screen tcell.Screen, x, y, maxX int, s string, style tcell.Style) int {
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > maxX {
			break
		}
		screen.SetContent(x, y, r, nil, style)
		x += w
	}
	return x
}

// drawCentered writes s centred on the span [left, left+width)
func drawCentered(screen tcell.Screen, left, width, y int, s string, style tcell.Style) {
	sw := runewidth.StringWidth(s)
	if sw > width {
		s = runewidth.Truncate(s, width, "…")
		sw = runewidth.StringWidth(s)
	}
	drawText(screen, left+(width-sw)/2, y, left+width, s, style)
}

// drawRight writes s ending at right (exclusive)
func drawRight(screen tcell.Screen, right, y int, s string, style tcell.Style) {
	sw := runewidth.StringWidth(s)
	drawText(screen, max(right-sw, 0), y, right, s, style)
}

func textWidth(s string) int {
	return runewidth.StringWidth(s)
}
