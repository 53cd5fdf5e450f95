package panel

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/moonwalk/constants"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
)

const labelWidth = 11

var (
	colorPanelBg  = colorful.Color{R: 0.10, G: 0.10, B: 0.12}
	colorFolderBg = colorful.Color{R: 0.0, G: 0.0, B: 0.0}
	colorText     = colorful.Color{R: 0.93, G: 0.93, B: 0.93}
	colorFocusBg  = colorful.Color{R: 0.22, G: 0.22, B: 0.28}
	colorSliderLo = colorful.Color{R: 0.18, G: 0.53, B: 0.84}
	colorSliderHi = colorful.Color{R: 0.16, G: 0.85, B: 0.85}
	colorTrack    = colorful.Color{R: 0.25, G: 0.25, B: 0.25}
	colorOption   = colorful.Color{R: 0.95, G: 0.75, B: 0.30}
)

// row is one drawn line, kept for mouse hit testing
type row struct {
	y      int
	folder *Folder
	ctrl   Controller
}

func tc(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// Draw renders the panel in the top-right corner of s
func (p *Panel) Draw(s tcell.Screen) {
	p.rows = p.rows[:0]
	if !p.Visible {
		return
	}
	sw, sh := s.Size()
	p.w = min(constants.PanelWidth, sw)
	p.x = sw - p.w

	base := tcell.StyleDefault.Background(tc(colorPanelBg)).Foreground(tc(colorText))
	header := base.Background(tc(colorFolderBg)).Bold(true)
	focused := p.Focused()

	y := 0
	for _, f := range p.Folders {
		if y >= sh {
			return
		}
		marker := "+ "
		if f.Open {
			marker = "- "
		}
		p.text(s, y, marker+f.Name, header)
		p.rows = append(p.rows, row{y: y, folder: f})
		y++
		if !f.Open {
			continue
		}
		for _, c := range f.Controllers {
			if y >= sh {
				return
			}
			style := base
			if c == focused {
				style = style.Background(tc(colorFocusBg))
			}
			p.drawController(s, y, c, style)
			p.rows = append(p.rows, row{y: y, folder: f, ctrl: c})
			y++
		}
	}
	if y < sh {
		p.text(s, y, "g: close controls", base.Dim(true))
	}
}

func (p *Panel) drawController(s tcell.Screen, y int, c Controller, style tcell.Style) {
	label := " " + runewidth.FillRight(runewidth.Truncate(c.Label(), labelWidth-1, ""), labelWidth-1)
	x := p.put(s, p.x, y, label, style)

	switch c := c.(type) {
	case *NumberController:
		filled := int(c.Fraction()*float64(constants.SliderWidth) + 0.5)
		for i := 0; i < constants.SliderWidth && x < p.x+p.w; i++ {
			cell := style.Background(tc(colorTrack))
			if i < filled {
				t := float64(i) / float64(constants.SliderWidth-1)
				cell = style.Background(tc(colorSliderLo.BlendLab(colorSliderHi, t).Clamped()))
			}
			s.SetContent(x, y, ' ', nil, cell)
			x++
		}
		x = p.put(s, x, y, " "+c.Text(), style)
	case *OptionController:
		x = p.put(s, x, y, "< "+c.Text()+" >", style.Foreground(tc(colorOption)))
	}
	p.fill(s, x, y, style)
}

// text writes str left aligned and blanks the rest of the line
func (p *Panel) text(s tcell.Screen, y int, str string, style tcell.Style) {
	p.fill(s, p.put(s, p.x, y, str, style), y, style)
}

func (p *Panel) fill(s tcell.Screen, x, y int, style tcell.Style) {
	for ; x < p.x+p.w; x++ {
		s.SetContent(x, y, ' ', nil, style)
	}
}

// put writes str from x, clipped to the panel, and returns the next column
func (p *Panel) put(s tcell.Screen, x, y int, str string, style tcell.Style) int {
	end := p.x + p.w
	for _, r := range str {
		w := runewidth.RuneWidth(r)
		if x+w > end {
			break
		}
		s.SetContent(x, y, r, nil, style)
		x += w
	}
	return x
}

// Contains reports whether screen cell x,y is inside the drawn panel
func (p *Panel) Contains(x, y int) bool {
	if !p.Visible || len(p.rows) == 0 {
		return false
	}
	last := p.rows[len(p.rows)-1].y + 1
	return x >= p.x && x < p.x+p.w && y >= 0 && y <= last
}

// Click handles a mouse press at x,y and reports whether the panel consumed it
// Headers fold, slider cells set the value proportionally, option rows cycle
func (p *Panel) Click(x, y int) bool {
	if !p.Contains(x, y) {
		return false
	}
	for _, r := range p.rows {
		if r.y != y {
			continue
		}
		if r.ctrl == nil {
			r.folder.Open = !r.folder.Open
			return true
		}
		p.focusController(r.ctrl)
		switch c := r.ctrl.(type) {
		case *NumberController:
			sx := p.x + labelWidth
			if x >= sx && x < sx+constants.SliderWidth {
				c.SetFraction(float64(x-sx) / float64(constants.SliderWidth-1))
			}
		case *OptionController:
			c.Cycle()
		}
		return true
	}
	return true
}

// Slide continues a drag that began on the panel: the focused slider follows column x,
// clamped to its range even when the pointer leaves the panel
func (p *Panel) Slide(x int) {
	c, ok := p.Focused().(*NumberController)
	if !ok {
		return
	}
	sx := p.x + labelWidth
	c.SetFraction(float64(x-sx) / float64(constants.SliderWidth-1))
}
