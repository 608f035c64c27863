// Package canvas hosts the simulation in an ebiten window
// The starfield is drawn on a window-sized layer with a translucent fill for
// motion trails; the 1280×720 field is composed on its own layer and scaled on top
package canvas

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lixenwraith/star-dodger/constants"
	"github.com/lixenwraith/star-dodger/engine"
	"github.com/lixenwraith/star-dodger/render"
	"github.com/lixenwraith/star-dodger/starfield"
)

const (
	trailSmoothSteps = 8
	maxCachedTexts   = 64
)

// Options are the host hooks of a canvas game
type Options struct {
	// Backgrounds supplies level images; nil draws none
	Backgrounds *render.Backgrounds

	// OnEvents receives the game events drained after every step
	OnEvents func([]engine.Event)

	// OnToggleMute is called when the mute key is pressed
	OnToggleMute func()
}

// Game adapts engine.Game to ebiten.Game
// ebiten calls Update at the configured TPS, which is the frame scheduler of this host
type Game struct {
	game  *engine.Game
	stars *starfield.Field
	opts  Options
	gate  confirmGate

	width, height int
	starLayer     *ebiten.Image
	field         *ebiten.Image

	backgrounds map[int]*ebiten.Image
	texts       map[string]*ebiten.Image
}

// New creates the adapter; the starfield is resized on the first Layout
func New(g *engine.Game, sf *starfield.Field, opts Options) *Game {
	if opts.Backgrounds == nil {
		opts.Backgrounds = render.NewBackgrounds(nil)
	}
	geo := g.Geometry()
	return &Game{
		game:        g,
		stars:       sf,
		opts:        opts,
		field:       ebiten.NewImage(int(geo.Width), int(geo.Height)),
		backgrounds: make(map[int]*ebiten.Image),
		texts:       make(map[string]*ebiten.Image),
	}
}

// Update runs one frame: input snapshot, starfield, simulation, events
func (c *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) && c.opts.OnToggleMute != nil {
		c.opts.OnToggleMute()
	}

	in := engine.Input{
		Primary:         c.gate.filter(ebiten.IsKeyPressed(ebiten.KeySpace)),
		ToggleStarfield: inpututil.IsKeyJustPressed(ebiten.KeyS),
	}
	if in.ToggleStarfield {
		c.stars.Toggle()
	}
	c.stars.Update()
	c.game.Step(in)
	c.gate.observe(c.game.State())

	if events := c.game.ConsumeEvents(); len(events) > 0 && c.opts.OnEvents != nil {
		c.opts.OnEvents(events)
	}
	return nil
}

// Layout follows the window size so the starfield covers the whole window
func (c *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != c.width || outsideHeight != c.height {
		c.resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

func (c *Game) resize(w, h int) {
	c.width, c.height = w, h
	if c.starLayer != nil {
		c.starLayer.Deallocate()
		c.starLayer = nil
	}
	if w > 0 && h > 0 {
		c.starLayer = ebiten.NewImage(w, h)
	}
	c.stars.Resize(float64(w), float64(h))
}

// Draw composes the starfield layer and the scaled field layer
func (c *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	if c.starLayer == nil {
		return
	}

	c.drawStars()
	screen.DrawImage(c.starLayer, nil)

	c.field.Clear()
	switch c.game.State() {
	case engine.StateTitle:
		c.drawTitle()
	case engine.StatePlaying:
		c.drawPlaying()
	case engine.StateGameOver:
		c.drawGameOver()
	}

	geo := c.game.Geometry()
	scale, offX, offY := fitRect(c.width, c.height, geo.Width, geo.Height)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(offX, offY)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(c.field, op)
}

func (c *Game) drawStars() {
	w, h := float32(c.width), float32(c.height)
	vector.DrawFilledRect(c.starLayer, 0, 0, w, h, fade(colorBackground, constants.StarFadeAlpha), false)
	for _, d := range c.stars.Points() {
		r := float32(max(d.Size, 0.5))
		vector.DrawFilledCircle(c.starLayer, float32(d.X), float32(d.Y), r, colorStar, true)
	}
}

func (c *Game) drawPlaying() {
	g := c.game
	geo := g.Geometry()

	if bg := c.background(g.Level()); bg != nil {
		b := bg.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(geo.Width/float64(b.Dx()), geo.Height/float64(b.Dy()))
		op.ColorScale.ScaleAlpha(constants.BackgroundOpacity)
		op.Filter = ebiten.FilterLinear
		c.field.DrawImage(bg, op)
	}

	m := float32(geo.Margin)
	fw, fh := float32(geo.Width), float32(geo.Height)
	doorTop, doorH := float32(geo.DoorTop()), float32(geo.DoorHeight)
	vector.StrokeRect(c.field, m, m, fw-2*m, fh-2*m, 2, colorBorder, false)
	vector.StrokeRect(c.field, 1, doorTop, m-1, doorH, 2, colorDoor, false)
	vector.StrokeRect(c.field, fw-m, doorTop, m-1, doorH, 2, colorDoor, false)

	for _, o := range g.Obstacles() {
		c.strokeStar(engine.Point{X: o.X, Y: o.Y}, geo.ObstacleSize/2)
	}

	trail := engine.SmoothTrail(g.Trail(), trailSmoothSteps)
	for i := 1; i < len(trail); i++ {
		a, b := trail[i-1], trail[i]
		clr := trailColor(float64(i) / float64(len(trail)-1))
		vector.StrokeLine(c.field, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 2, clr, true)
	}
	p := g.Player()
	vector.DrawFilledCircle(c.field, float32(p.X), float32(p.Y), 3, colorPlayer, true)

	switch t := g.Transition().(type) {
	case *engine.CollisionTransition:
		alpha := t.Alpha()
		vector.DrawFilledRect(c.field, 0, 0, fw, fh, fade(color.RGBA{255, 255, 255, 255}, alpha*0.5), false)
		vector.DrawFilledRect(c.field, 0, 0, fw, fh, fade(color.RGBA{255, 0, 0, 255}, alpha*0.3), false)
	case *engine.VictoryTransition:
		alpha := t.Alpha()
		c.drawCentered(geo.Height/2-40, fmt.Sprintf("Level %d Complete!", t.Level), 4, colorStar, alpha)
		c.drawCentered(geo.Height/2+20, fmt.Sprintf("+%d Points!", constants.LevelCompleteBonus), 3, colorStar, alpha)
	}

	c.drawHUD()
}

// drawHUD lays score, lives and level over the first three quarters of the
// top margin and right-aligns the high score
func (c *Game) drawHUD() {
	g := c.game
	geo := g.Geometry()
	const scale = 1.5
	y := (geo.Margin - debugGlyphH*scale) / 2
	section := geo.Width / constants.HUDColumns

	c.drawText(geo.Margin, y, fmt.Sprintf("Score: %d", g.Score()), scale, colorStar, 1)
	c.drawText(section+geo.Margin, y, fmt.Sprintf("Lives: %d", g.Lives()), scale, colorStar, 1)
	c.drawText(2*section+geo.Margin, y, fmt.Sprintf("Level: %d", g.Level()), scale, colorStar, 1)

	hs := fmt.Sprintf("High Score: %d", g.HighScore())
	c.drawText(geo.Width-geo.Margin-textWidth(hs, scale), y, hs, scale, colorStar, 1)
}

func (c *Game) drawTitle() {
	h := c.game.Geometry().Height
	c.drawCentered(h/5, constants.TitleText, 4, colorStar, 1)
	c.drawCentered(h/2-50, constants.TitleGoal, 2, colorStar, 1)
	c.drawCentered(h/2-10, constants.TitleControls, 1.5, colorStar, 1)
	c.drawCentered(h/2+30, constants.TitleScoring, 2, colorStar, 1)
	c.drawCentered(h*6/8.5, constants.TitlePrompt, 3, colorStar, 1)
	c.drawCentered(h*6/8.5+40, fmt.Sprintf("High Score: %d", c.game.HighScore()), 2, colorStar, 1)
	c.drawCentered(h-30, constants.TitleCredits, 1, colorTextDim, 1)
}

func (c *Game) drawGameOver() {
	h := c.game.Geometry().Height
	c.drawCentered(h/3, constants.GameOverText, 5, colorStar, 1)
	c.drawCentered(h/2, fmt.Sprintf("Final Score: %d", c.game.Score()), 3, colorStar, 1)
	c.drawCentered(h*2/3, constants.GameOverPrompt, 3, colorStar, 1)
}

// strokeStar outlines a five-pointed obstacle star of radius r around p
func (c *Game) strokeStar(p engine.Point, r float64) {
	pts := starOutline(p, r, r*0.45)
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		vector.StrokeLine(c.field, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 1.5, colorObstacle, true)
	}
}

// drawCentered draws s horizontally centred on the field with its middle at y
func (c *Game) drawCentered(y float64, s string, scale float64, clr color.RGBA, alpha float64) {
	w := c.game.Geometry().Width
	c.drawText((w-textWidth(s, scale))/2, y-debugGlyphH*scale/2, s, scale, clr, alpha)
}

func (c *Game) drawText(x, y float64, s string, scale float64, clr color.RGBA, alpha float64) {
	if alpha <= 0 {
		return
	}
	img := c.textImage(s)
	if img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(float32(alpha))
	c.field.DrawImage(img, op)
}

// textImage renders s once with the debug font and caches the result
func (c *Game) textImage(s string) *ebiten.Image {
	if img, ok := c.texts[s]; ok {
		return img
	}
	w := int(textWidth(s, 1))
	if w == 0 {
		return nil
	}
	if len(c.texts) >= maxCachedTexts {
		for k, img := range c.texts {
			img.Deallocate()
			delete(c.texts, k)
		}
	}
	img := ebiten.NewImage(w, debugGlyphH)
	ebitenutil.DebugPrintAt(img, s, 0, 0)
	c.texts[s] = img
	return img
}

// background converts the level image once per rotation slot
func (c *Game) background(level int) *ebiten.Image {
	i := c.opts.Backgrounds.Index(level)
	if i < 0 {
		return nil
	}
	if img, ok := c.backgrounds[i]; ok {
		return img
	}
	src := c.opts.Backgrounds.ForLevel(level)
	if src == nil {
		c.backgrounds[i] = nil
		return nil
	}
	img := ebiten.NewImageFromImage(src)
	c.backgrounds[i] = img
	return img
}
