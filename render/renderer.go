package render

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/moonwalk/constants"
	"github.com/lixenwraith/moonwalk/engine"
	"github.com/lixenwraith/moonwalk/panel"
	"github.com/lixenwraith/moonwalk/scene"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
)

var (
	colorSprite = colorful.Color{R: 1, G: 1, B: 1}
	colorHudBg  = colorful.Color{R: 0.06, G: 0.06, B: 0.08}
	colorHudFg  = colorful.Color{R: 0.75, G: 0.75, B: 0.8}
	colorHudHot = colorful.Color{R: 1, G: 0.78, B: 0.2}
)

// TerminalRenderer draws the scene, character sprite, HUD and mixer panel to a tcell screen
type TerminalRenderer struct {
	screen tcell.Screen
	buf    *RenderBuffer
	mode   ColorMode
	panel  *panel.Panel

	// FPS Tracking
	frameCount    int
	lastFpsUpdate time.Time
	currentFps    int
}

// NewTerminalRenderer creates a renderer; p may be nil
func NewTerminalRenderer(screen tcell.Screen, mode ColorMode, p *panel.Panel) *TerminalRenderer {
	w, h := screen.Size()
	return &TerminalRenderer{
		screen: screen,
		buf:    NewRenderBuffer(w, h),
		mode:   mode,
		panel:  p,
	}
}

// Buffer exposes the composed frame
func (r *TerminalRenderer) Buffer() *RenderBuffer {
	return r.buf
}

// Render implements engine.Renderer
func (r *TerminalRenderer) Render(ctx *engine.GameContext) {
	r.Compose(ctx)
	r.screen.Clear()
	r.buf.Flush(r.screen, r.mode)
	if r.panel != nil {
		r.panel.Draw(r.screen)
	}
	r.screen.Show()
}

// Compose draws the frame into the buffer without touching the screen
func (r *TerminalRenderer) Compose(ctx *engine.GameContext) {
	w, h := ctx.Width, ctx.Height
	if bw, bh := r.buf.Bounds(); bw != w || bh != h {
		r.buf.Resize(w, h)
	} else {
		r.buf.Clear()
	}

	viewRows := h - constants.HudRows
	if w <= 0 || viewRows <= 0 {
		return
	}

	view := NewView(ctx.Camera, w, viewRows*2)
	r.drawScene(ctx, view, viewRows)
	r.drawCharacter(ctx, view)
	r.drawHUD(ctx, h-1)
}

func (r *TerminalRenderer) drawScene(ctx *engine.GameContext, view View, rows int) {
	bodies := ctx.Scene.Bodies()
	sky := ctx.Scene.Sky
	for y := 0; y < rows; y++ {
		for x := 0; x < view.Width; x++ {
			top, dTop := r.pixel(view, x, 2*y, bodies, sky)
			bottom, dBottom := r.pixel(view, x, 2*y+1, bodies, sky)
			r.buf.SetHalfBlock(x, y, top, bottom, math.Min(dTop, dBottom))
		}
	}
}

func (r *TerminalRenderer) pixel(view View, px, py int, bodies []*scene.Body, sky *scene.Body) (colorful.Color, float64) {
	d := view.Ray(px, py)
	if h, ok := trace(view.Eye, d, bodies); ok {
		return shadeHit(h), h.t
	}
	return shadeSky(sky, d), math.Inf(1)
}

func (r *TerminalRenderer) drawCharacter(ctx *engine.GameContext, view View) {
	c := ctx.Character
	if c == nil {
		return
	}
	frame := c.Frame()
	if len(frame) == 0 {
		return
	}
	if c.FacingZ < 0 {
		frame = mirrorFrame(frame)
	}

	// Anchor the sprite's feet on the character position
	px, py, dist, ok := view.Project(c.Position)
	if !ok {
		return
	}
	cellX := int(math.Floor(px))
	cellY := int(math.Floor(py / 2))
	depth := dist - c.Size
	for i, line := range frame {
		y := cellY - (len(frame) - 1 - i)
		x := cellX - runewidth.StringWidth(line)/2
		for _, ch := range line {
			if ch != ' ' {
				r.buf.SetRune(x, y, ch, colorSprite, depth)
			}
			x += runewidth.RuneWidth(ch)
		}
	}
}

var mirrorRunes = strings.NewReplacer("/", "\\", "\\", "/", "<", ">", ">", "<", "(", ")", ")", "(")

// mirrorFrame flips sprite rows horizontally
func mirrorFrame(frame []string) []string {
	out := make([]string, len(frame))
	for i, line := range frame {
		rs := []rune(mirrorRunes.Replace(line))
		for a, b := 0, len(rs)-1; a < b; a, b = a+1, b-1 {
			rs[a], rs[b] = rs[b], rs[a]
		}
		out[i] = string(rs)
	}
	return out
}

func (r *TerminalRenderer) drawHUD(ctx *engine.GameContext, y int) {
	r.frameCount++
	now := ctx.Time.Now()
	if now.Sub(r.lastFpsUpdate) >= time.Second {
		r.currentFps = r.frameCount
		r.frameCount = 0
		r.lastFpsUpdate = now
	}

	w, _ := r.buf.Bounds()
	for x := 0; x < w; x++ {
		r.buf.SetText(x, y, ' ', colorHudFg, colorHudBg)
	}

	x := r.text(1, y, StatusLine(ctx, r.currentFps), colorHudFg, w)
	if msg := ctx.Diagnostic(); msg != "" {
		r.text(x+2, y, msg, colorHudHot, w)
	}
}

// text writes s from x, stopping at the buffer edge, and returns the next column
func (r *TerminalRenderer) text(x, y int, s string, fg colorful.Color, limit int) int {
	s = runewidth.Truncate(s, max(0, limit-x), "…")
	for _, ch := range s {
		r.buf.SetText(x, y, ch, fg, colorHudBg)
		x += runewidth.RuneWidth(ch)
	}
	return x
}

// StatusLine summarizes character, loading and audio state for the HUD
func StatusLine(ctx *engine.GameContext, fps int) string {
	var sb strings.Builder
	if c := ctx.Character; c != nil {
		fmt.Fprintf(&sb, "x=%.2f z=%.2f %s", c.Position.X, c.Position.Z, c.State)
	} else {
		sb.WriteString("loading character")
	}
	if ctx.PendingLoads > 0 {
		fmt.Fprintf(&sb, " | loading %d", ctx.PendingLoads)
	}
	if ctx.LoadFailures > 0 {
		fmt.Fprintf(&sb, " | %d placeholder", ctx.LoadFailures)
	}
	if ctx.Audio != nil {
		fmt.Fprintf(&sb, " | %s", ctx.Audio)
	}
	fmt.Fprintf(&sb, " | %d fps | arrows/hjkl move, drag orbit, g panel, q quit", fps)
	return sb.String()
}
