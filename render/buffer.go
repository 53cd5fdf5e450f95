package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// RenderBuffer is a cell grid with a per-cell depth buffer, flushed to a tcell screen once per frame
type RenderBuffer struct {
	cells  []Cell
	width  int
	height int
}

// NewRenderBuffer creates a buffer with the specified dimensions
func NewRenderBuffer(width, height int) *RenderBuffer {
	b := &RenderBuffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *RenderBuffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells to empty using exponential copy
func (b *RenderBuffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = emptyCell
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

// Bounds returns the buffer dimensions
func (b *RenderBuffer) Bounds() (int, int) {
	return b.width, b.height
}

func (b *RenderBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the cell at x,y; out of bounds yields an empty cell
func (b *RenderBuffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return emptyCell
	}
	return b.cells[y*b.width+x]
}

// SetHalfBlock writes two stacked pixels into one cell: top as foreground of '▀', bottom as background
func (b *RenderBuffer) SetHalfBlock(x, y int, top, bottom colorful.Color, depth float64) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = Cell{Rune: '▀', Fg: top, Bg: bottom, Depth: depth}
}

// SetRune depth-tests and writes a glyph over the existing background
// Returns false when something nearer already occupies the cell
func (b *RenderBuffer) SetRune(x, y int, r rune, fg colorful.Color, depth float64) bool {
	if !b.inBounds(x, y) {
		return false
	}
	dst := &b.cells[y*b.width+x]
	if depth >= dst.Depth {
		return false
	}
	if dst.Rune == '▀' {
		// Glyph replaces the half-block; keep the average of both pixels as backdrop
		dst.Bg = dst.Fg.BlendRgb(dst.Bg, 0.5)
	}
	dst.Rune = r
	dst.Fg = fg
	dst.Attrs = tcell.AttrBold
	dst.Depth = depth
	return true
}

// SetText writes an overlay glyph with explicit colors, ignoring depth
func (b *RenderBuffer) SetText(x, y int, r rune, fg, bg colorful.Color) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = Cell{Rune: r, Fg: fg, Bg: bg, Depth: 0}
}

// Flush writes every cell to screen using the given color mode
func (b *RenderBuffer) Flush(screen tcell.Screen, mode ColorMode) {
	for y := 0; y < b.height; y++ {
		row := b.cells[y*b.width : (y+1)*b.width]
		for x, c := range row {
			style := tcell.StyleDefault.
				Foreground(mode.Color(c.Fg)).
				Background(mode.Color(c.Bg)).
				Attributes(c.Attrs)
			screen.SetContent(x, y, c.Rune, nil, style)
		}
	}
}
