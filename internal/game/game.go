// Package game hosts the ripple backdrop and the page foreground in an
// ebiten window.
package game

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/ncruces/zenity"
	"golang.org/x/image/font/basicfont"

	"github.com/iburimskiy/water-ripples/internal/config"
	"github.com/iburimskiy/water-ripples/internal/page"
	"github.com/iburimskiy/water-ripples/internal/ripple"
)

// Settings are fixed for the lifetime of a Game.
type Settings struct {
	Ripple        config.Options
	ReducedMotion bool
	// HideOnUnfocus suspends the backdrop while the window is unfocused,
	// not only while it is minimized.
	HideOnUnfocus bool
	Seed          int64
	Clock         ripple.Clock
}

// Game implements ebiten.Game. Update drives the timers and input, Draw
// is the per-frame paint and Layout tracks the viewport.
type Game struct {
	settings Settings
	clock    ripple.Clock
	theme    theme

	field  *ripple.Field
	canvas *canvas
	reveal *page.Reveal
	drip   *dripPlayer
	face   text.Face

	width, height float64 // viewport, logical pixels
	dpr           float64
	originX       float64
	originY       float64
	hidden        bool

	// input edge detection
	prevKey  map[ebiten.Key]bool
	touchIDs []ebiten.TouchID

	// snapshot requested by a key press, captured in Draw, saved in Update
	shotRequested bool
	shot          *image.RGBA

	status      string
	statusUntil float64
	lastErr     error
}

// New builds the page. With reduced motion no ripple field is created:
// nothing is scheduled and the static theme is used.
func New(s Settings) *Game {
	clock := s.Clock
	if clock == nil {
		clock = ripple.NewClock()
	}
	g := &Game{
		settings: s,
		clock:    clock,
		face:     text.NewGoXFace(basicfont.Face7x13),
		dpr:      1,
		prevKey:  map[ebiten.Key]bool{},
	}
	now := clock.Now()
	g.reveal = page.NewReveal(now, !s.ReducedMotion, page.DefaultTimings())

	if s.ReducedMotion {
		g.theme = newTheme(ModeStatic)
		slog.Info("reduced motion requested, ripples disabled")
		return g
	}
	g.theme = newTheme(ModeWater)
	g.canvas = &canvas{dpr: 1}
	g.field = ripple.Start(g.canvas, s.Ripple, clock, ripple.NewRand(s.Seed))
	if s.Ripple.Sound && s.Ripple.Interactive {
		g.drip = newDripPlayer()
	}
	return g
}

// Mode returns the backdrop render mode.
func (g *Game) Mode() RenderMode {
	return g.theme.mode
}

// Field returns the ripple field, nil when motion is reduced.
func (g *Game) Field() *ripple.Field {
	return g.field
}

func (g *Game) Update() error {
	now := g.clock.Now()

	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	g.setHidden(g.windowHidden(ebiten.IsWindowMinimized(), ebiten.IsFocused()))

	if g.field != nil {
		g.field.Tick(now)
	}
	g.reveal.Tick(now)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.pointerDown(x, y)
	}
	g.touchIDs = inpututil.AppendJustPressedTouchIDs(g.touchIDs[:0])
	for _, id := range g.touchIDs {
		x, y := ebiten.TouchPosition(id)
		g.pointerDown(x, y)
	}

	if justPressed(ebiten.KeyS) {
		g.shotRequested = true
	}
	if g.shot != nil {
		shot := g.shot
		g.shot = nil
		if err := g.saveSnapshot(shot); err != nil {
			g.lastErr = err
		}
	}
	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	return nil
}

// windowHidden maps window state to page visibility.
func (g *Game) windowHidden(minimized, focused bool) bool {
	return minimized || (g.settings.HideOnUnfocus && !focused)
}

// setHidden forwards visibility changes to the field.
func (g *Game) setHidden(hidden bool) {
	if hidden == g.hidden {
		return
	}
	g.hidden = hidden
	if g.field != nil {
		g.field.SetVisible(!hidden)
	}
}

// pointerDown takes a press in screen pixels.
func (g *Game) pointerDown(x, y int) {
	if g.field == nil {
		return
	}
	lx, ly := float64(x)/g.dpr, float64(y)/g.dpr
	if g.field.PointerDown(lx, ly) && g.drip != nil {
		g.drip.play()
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	now := g.clock.Now()

	g.theme.draw(screen)
	if g.field != nil {
		g.field.Frame(now)
		g.canvas.drawTo(screen, g.originX*g.dpr, g.originY*g.dpr)
	}
	g.drawForeground(screen, now)

	if g.shotRequested {
		g.shotRequested = false
		g.shot = capture(screen)
	}

	status := ""
	if now < g.statusUntil {
		status = g.status
	}
	if g.lastErr != nil {
		status = "Error: " + g.lastErr.Error()
	}
	if status != "" {
		ebitenutil.DebugPrintAt(screen, status, config.StatusLineX, config.StatusLineY)
	}
}

func (g *Game) drawForeground(screen *ebiten.Image, now float64) {
	hero := config.HeroText
	heroScale := 4 * g.dpr
	w, h := text.Measure(hero, g.face, 0)
	op := &text.DrawOptions{}
	op.GeoM.Scale(heroScale, heroScale)
	op.GeoM.Translate((g.width*g.dpr-w*heroScale)/2, (g.height*g.dpr-h*heroScale)/2)
	op.ColorScale.ScaleWithColor(g.theme.textColor())
	op.ColorScale.ScaleAlpha(float32(g.reveal.HeroAlpha(now)))
	text.Draw(screen, hero, g.face, op)

	if !g.reveal.MarkVisible() {
		return
	}
	markScale := 2 * g.dpr
	alpha := float32(g.reveal.MarkAlpha(now))
	op = &text.DrawOptions{}
	op.GeoM.Scale(markScale, markScale)
	op.GeoM.Translate(config.SiteMarkMarginX*g.dpr, config.SiteMarkMarginY*g.dpr)
	op.ColorScale.ScaleWithColor(config.MarkColor)
	op.ColorScale.ScaleAlpha(alpha)
	text.Draw(screen, config.SiteMarkText, g.face, op)

	if g.field == nil || !g.settings.Ripple.Interactive {
		return
	}
	tw, _ := text.Measure(config.SiteMarkTagline, g.face, 0)
	op = &text.DrawOptions{}
	op.GeoM.Scale(g.dpr, g.dpr)
	op.GeoM.Translate((g.width*g.dpr-tw*g.dpr)/2, g.height*g.dpr-config.SiteMarkMarginY*g.dpr)
	op.ColorScale.ScaleWithColor(config.StatusColor)
	op.ColorScale.ScaleAlpha(alpha)
	text.Draw(screen, config.SiteMarkTagline, g.face, op)
}

// Layout is called whenever the window size may have changed. The
// backdrop follows the viewport in fullscreen mode and the configured
// canvas box otherwise.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	dpr := 1.0
	if m := ebiten.Monitor(); m != nil {
		dpr = m.DeviceScaleFactor()
	}
	if dpr < 1 {
		dpr = 1
	}
	g.resize(float64(outsideWidth), float64(outsideHeight), dpr)
	return int(float64(outsideWidth) * dpr), int(float64(outsideHeight) * dpr)
}

func (g *Game) resize(width, height, dpr float64) {
	g.width, g.height, g.dpr = width, height, dpr
	if g.field == nil {
		return
	}
	cw, ch := canvasBox(g.settings.Ripple.Fullscreen, width, height)
	g.originX, g.originY = (width-cw)/2, (height-ch)/2
	g.canvas.resize(int(cw*dpr), int(ch*dpr))
	g.field.SetOrigin(g.originX, g.originY)
	g.field.Resize(cw, ch, dpr)
}

// canvasBox returns the logical size of the ripple canvas for a viewport.
func canvasBox(fullscreen bool, viewportW, viewportH float64) (float64, float64) {
	if fullscreen {
		return viewportW, viewportH
	}
	w, h := float64(config.CanvasWidth), float64(config.CanvasHeight)
	if w <= 0 || w > viewportW {
		w = viewportW
	}
	if h <= 0 || h > viewportH {
		h = viewportH
	}
	return w, h
}

func capture(screen *ebiten.Image) *image.RGBA {
	img := image.NewRGBA(screen.Bounds())
	screen.ReadPixels(img.Pix)
	return img
}

func (g *Game) saveSnapshot(img *image.RGBA) error {
	filename, err := zenity.SelectFileSave(
		zenity.Title("Save Snapshot"),
		zenity.Filename("ripples.png"),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{
			Name:     "PNG image",
			Patterns: []string{"*.png"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", filename, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	slog.Info("snapshot saved", "path", filename)
	g.status = "Saved " + filename
	g.statusUntil = g.clock.Now() + config.StatusLineDuration
	g.lastErr = nil
	return nil
}
