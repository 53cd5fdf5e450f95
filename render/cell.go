package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Cell is one terminal cell plus the depth of whatever was drawn into it
type Cell struct {
	Rune  rune
	Fg    colorful.Color
	Bg    colorful.Color
	Attrs tcell.AttrMask
	Depth float64
}

// emptyCell is the cleared state; infinite depth lets anything draw over it
var emptyCell = Cell{Rune: ' ', Depth: math.Inf(1)}
