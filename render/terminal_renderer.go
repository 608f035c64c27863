package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/star-dodger/constants"
	"github.com/lixenwraith/star-dodger/engine"
	"github.com/lixenwraith/star-dodger/starfield"
)

// Box drawing glyphs
const (
	glyphHorizontal  = '─'
	glyphVertical    = '│'
	glyphTopLeft     = '┌'
	glyphTopRight    = '┐'
	glyphBottomLeft  = '└'
	glyphBottomRight = '┘'
)

// trailSmoothSteps is the number of samples per smoothed trail segment
const trailSmoothSteps = 3

// TerminalRenderer draws the starfield, field, HUD and screens onto a tcell screen
type TerminalRenderer struct {
	screen tcell.Screen
	geo    engine.Geometry
	vp     Viewport

	fade        *FadeBuffer
	backgrounds *Backgrounds

	// Per-cell background color composed each frame
	bg []tcell.Color
}

// NewTerminalRenderer creates a renderer sized to the current screen
// backgrounds may be nil
func NewTerminalRenderer(screen tcell.Screen, geo engine.Geometry, backgrounds *Backgrounds) *TerminalRenderer {
	if backgrounds == nil {
		backgrounds = NewBackgrounds(nil)
	}
	r := &TerminalRenderer{
		screen:      screen,
		geo:         geo,
		fade:        NewFadeBuffer(0, 0),
		backgrounds: backgrounds,
	}
	cols, rows := screen.Size()
	r.Resize(cols, rows)
	return r
}

// Resize recomputes the viewport for a cols×rows screen
func (r *TerminalRenderer) Resize(cols, rows int) {
	r.vp = NewViewport(cols, rows, r.geo)
	r.fade.Resize(cols, rows)
	if len(r.bg) != cols*rows {
		r.bg = make([]tcell.Color, cols*rows)
	}
}

// Viewport returns the active cell mapping
func (r *TerminalRenderer) Viewport() Viewport {
	return r.vp
}

// RenderFrame draws one complete frame
func (r *TerminalRenderer) RenderFrame(g *engine.Game, sf *starfield.Field) {
	r.screen.Clear()

	if r.vp.TooSmall() {
		r.drawTooSmall()
		r.screen.Show()
		return
	}

	r.accumulateStars(sf)
	r.composeBackground(g)
	r.drawStarLayer()

	switch g.State() {
	case engine.StateTitle:
		r.drawTitle(g.HighScore())
	case engine.StatePlaying:
		r.drawField(g)
		r.drawHUD(g)
	case engine.StateGameOver:
		r.drawGameOver(g.Score())
	}

	r.screen.Show()
}

// accumulateStars decays the fade buffer and plots the current star positions
func (r *TerminalRenderer) accumulateStars(sf *starfield.Field) {
	r.fade.Decay(constants.StarFadeAlpha)
	if sf == nil {
		return
	}
	for _, d := range sf.Points() {
		x, y, ok := r.vp.StarCell(d.X, d.Y)
		if !ok {
			continue
		}
		r.fade.Plot(x, y, 0.35+d.Size/constants.StarPerspectiveMaxSize)
	}
}

// composeBackground fills the per-cell background: black, then the level
// image at reduced opacity and the collision flash inside the field
func (r *TerminalRenderer) composeBackground(g *engine.Game) {
	for i := range r.bg {
		r.bg[i] = RgbBackground
	}
	if g.State() != engine.StatePlaying {
		return
	}

	vp := r.vp
	if img := r.backgrounds.Scaled(g.Level(), vp.FieldW, vp.FieldH); img != nil {
		for y := 0; y < vp.FieldH; y++ {
			for x := 0; x < vp.FieldW; x++ {
				c := FromImageColor(img.At(x, y))
				r.setBg(vp.FieldX+x, vp.FieldY+y, Blend(RgbBackground, c, constants.BackgroundOpacity))
			}
		}
	}

	if ct, ok := g.Transition().(*engine.CollisionTransition); ok {
		alpha := ct.Alpha()
		for y := vp.FieldY; y < vp.FieldY+vp.FieldH; y++ {
			for x := vp.FieldX; x < vp.FieldX+vp.FieldW; x++ {
				c := Blend(r.bgAt(x, y), RgbFlashWhite, alpha*0.5)
				r.setBg(x, y, Blend(c, RgbFlashRed, alpha*0.3))
			}
		}
	}
}

func (r *TerminalRenderer) drawStarLayer() {
	for y := 0; y < r.vp.Rows; y++ {
		for x := 0; x < r.vp.Cols; x++ {
			bg := r.bgAt(x, y)
			if v := r.fade.At(x, y); v > 0 {
				fg := Blend(bg, RgbStar, v)
				r.screen.SetContent(x, y, StarGlyph(v), nil, tcell.StyleDefault.Foreground(fg).Background(bg))
				continue
			}
			r.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault.Background(bg))
		}
	}
}

// drawField draws border, doors, obstacles, trail and transition text
func (r *TerminalRenderer) drawField(g *engine.Game) {
	geo := r.geo

	// Field border inset by the margin
	r.drawBox(geo.Margin, geo.Margin, geo.Width-geo.Margin, geo.Height-geo.Margin, RgbBorder)

	// Doors on both edges
	r.drawBox(1, geo.DoorTop(), geo.Margin, geo.DoorBottom(), RgbDoor)
	r.drawBox(geo.Width-geo.Margin, geo.DoorTop(), geo.Width, geo.DoorBottom(), RgbDoor)

	for _, o := range g.Obstacles() {
		if x, y, ok := r.vp.ToCell(engine.Point{X: o.X, Y: o.Y}); ok {
			r.setGlyph(x, y, constants.ObstacleGlyph, RgbObstacle)
		}
	}

	trail := engine.SmoothTrail(g.Trail(), trailSmoothSteps)
	for i, p := range trail {
		if x, y, ok := r.vp.ToCell(p); ok {
			r.setGlyph(x, y, constants.TrailGlyph, GetTrailColor(float64(i+1)/float64(len(trail))))
		}
	}
	if x, y, ok := r.vp.ToCell(g.Player()); ok {
		r.setGlyph(x, y, constants.PlayerGlyph, RgbPlayer)
	}

	if vt, ok := g.Transition().(*engine.VictoryTransition); ok {
		alpha := vt.Alpha()
		r.drawFieldText(geo.Height/2-40, fmt.Sprintf("Level %d Complete!", vt.Level), alpha)
		r.drawFieldText(geo.Height/2+20, fmt.Sprintf("+%d Points!", constants.LevelCompleteBonus), alpha)
	}
}

// drawHUD draws score, lives and level in the first three quarters and the
// high score right-aligned
func (r *TerminalRenderer) drawHUD(g *engine.Game) {
	cols := r.vp.Cols
	section := cols / constants.HUDColumns
	style := tcell.StyleDefault.Foreground(RgbHUD).Background(RgbBackground)

	drawText(r.screen, 1, 0, section, fmt.Sprintf("Score: %d", g.Score()), style)
	drawText(r.screen, section+1, 0, 2*section, fmt.Sprintf("Lives: %d", g.Lives()), style)
	drawText(r.screen, 2*section+1, 0, 3*section, fmt.Sprintf("Level: %d", g.Level()), style)
	drawRight(r.screen, cols-1, 0, fmt.Sprintf("High Score: %d", g.HighScore()), style)
}

func (r *TerminalRenderer) drawTitle(highScore int) {
	h := r.geo.Height
	rows := newRowAllocator(r)

	rows.text(h/5, constants.TitleText, RgbText)
	rows.text(h/2-50, constants.TitleGoal, RgbText)
	rows.text(h/2-10, constants.TitleControls, RgbText)
	rows.text(h/2+30, constants.TitleScoring, RgbText)
	rows.text(h*6/8.5, constants.TitlePrompt, RgbText)
	rows.text(h*6/8.5+40, fmt.Sprintf("High Score: %d", highScore), RgbText)
	rows.text(h-30, constants.TitleCredits, RgbTextDim)
}

func (r *TerminalRenderer) drawGameOver(score int) {
	h := r.geo.Height
	rows := newRowAllocator(r)

	rows.text(h/3, constants.GameOverText, RgbText)
	rows.text(h/2, fmt.Sprintf("Final Score: %d", score), RgbText)
	rows.text(h*2/3, constants.GameOverPrompt, RgbText)
}

func (r *TerminalRenderer) drawTooSmall() {
	style := tcell.StyleDefault.Foreground(RgbText).Background(RgbBackground)
	drawCentered(r.screen, 0, r.vp.Cols, r.vp.Rows/2, "Terminal too small", style)
}

// drawFieldText draws centred text at world y, faded in by alpha over the cell backgrounds
func (r *TerminalRenderer) drawFieldText(worldY float64, s string, alpha float64) {
	_, y, ok := r.vp.ToCell(engine.Point{X: r.geo.Width / 2, Y: worldY})
	if !ok {
		return
	}
	// Draw per cell so each glyph blends with its own background
	start := r.vp.FieldX + (r.vp.FieldW-textWidth(s))/2
	x := start
	for _, ch := range s {
		bg := r.bgAt(x, y)
		style := tcell.StyleDefault.Foreground(Blend(bg, RgbText, alpha)).Background(bg)
		x = drawText(r.screen, x, y, r.vp.FieldX+r.vp.FieldW, string(ch), style)
	}
}

// drawBox outlines the world rectangle (x0,y0)-(x1,y1)
func (r *TerminalRenderer) drawBox(x0, y0, x1, y1 float64, c tcell.Color) {
	cx0, cy0 := r.cellX(x0), r.cellY(y0)
	cx1, cy1 := r.cellX(x1), r.cellY(y1)
	if cx1 <= cx0 || cy1 <= cy0 {
		return
	}

	for x := cx0 + 1; x < cx1; x++ {
		r.setGlyph(x, cy0, glyphHorizontal, c)
		r.setGlyph(x, cy1, glyphHorizontal, c)
	}
	for y := cy0 + 1; y < cy1; y++ {
		r.setGlyph(cx0, y, glyphVertical, c)
		r.setGlyph(cx1, y, glyphVertical, c)
	}
	r.setGlyph(cx0, cy0, glyphTopLeft, c)
	r.setGlyph(cx1, cy0, glyphTopRight, c)
	r.setGlyph(cx0, cy1, glyphBottomLeft, c)
	r.setGlyph(cx1, cy1, glyphBottomRight, c)
}

// cellX maps a world x to a field column, clamped to the field
func (r *TerminalRenderer) cellX(wx float64) int {
	c := int(wx / r.geo.Width * float64(r.vp.FieldW))
	return r.vp.FieldX + min(max(c, 0), r.vp.FieldW-1)
}

// cellY maps a world y to a field row, clamped to the field
func (r *TerminalRenderer) cellY(wy float64) int {
	c := int(wy / r.geo.Height * float64(r.vp.FieldH))
	return r.vp.FieldY + min(max(c, 0), r.vp.FieldH-1)
}

func (r *TerminalRenderer) setGlyph(x, y int, ch rune, fg tcell.Color) {
	if x < 0 || y < 0 || x >= r.vp.Cols || y >= r.vp.Rows {
		return
	}
	r.screen.SetContent(x, y, ch, nil, tcell.StyleDefault.Foreground(fg).Background(r.bgAt(x, y)))
}

func (r *TerminalRenderer) bgAt(x, y int) tcell.Color {
	if x < 0 || y < 0 || x >= r.vp.Cols || y >= r.vp.Rows {
		return RgbBackground
	}
	return r.bg[y*r.vp.Cols+x]
}

func (r *TerminalRenderer) setBg(x, y int, c tcell.Color) {
	if x < 0 || y < 0 || x >= r.vp.Cols || y >= r.vp.Rows {
		return
	}
	r.bg[y*r.vp.Cols+x] = c
}

// rowAllocator places screen text at world heights, pushing lines down
// when a small field would stack them on the same row
type rowAllocator struct {
	r    *TerminalRenderer
	last int
}

func newRowAllocator(r *TerminalRenderer) *rowAllocator {
	return &rowAllocator{r: r, last: -1}
}

func (ra *rowAllocator) text(worldY float64, s string, c tcell.Color) {
	y := max(ra.r.cellY(worldY), ra.last+1)
	if y >= ra.r.vp.Rows {
		return
	}
	ra.last = y
	style := tcell.StyleDefault.Foreground(c).Background(ra.r.bgAt(0, y))
	drawCentered(ra.r.screen, 0, ra.r.vp.Cols, y, s, style)
}
