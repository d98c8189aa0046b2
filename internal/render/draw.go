package render

import "github.com/san-kum/lifesaver/internal/life"

// Color is a fill color understood by both backends: a "#rrggbb" hex string
// or an ANSI color number.
type Color string

// DefaultFill is the color painted under live cells.
const DefaultFill Color = "#ffffff"

// Surface is a mutable display buffer addressed by (x, y) cell coordinates.
type Surface interface {
	// Reset returns the position to the surface's default blank appearance.
	Reset(x, y int)
	// SetFill sets the background color of the position.
	SetFill(x, y int, c Color)
}

// Rect is a target region in cell units.
type Rect struct {
	X, Y          int
	Width, Height int
}

func (r Rect) Left() int   { return r.X }
func (r Rect) Top() int    { return r.Y }
func (r Rect) Right() int  { return r.X + r.Width }
func (r Rect) Bottom() int { return r.Y + r.Height }

// Draw paints g onto every position of area. Each position is reset first and
// then filled when the grid cell at (row y, column x) is live. Positions that
// fall outside the grid stay blank, which covers the frames between a
// terminal growing and the grid being resized.
func Draw(g *life.Grid, area Rect, s Surface, fill Color) {
	for x := area.Left(); x < area.Right(); x++ {
		for y := area.Top(); y < area.Bottom(); y++ {
			s.Reset(x, y)
			if y >= 0 && y < g.Height() && x >= 0 && x < g.Width() && g.Alive(y, x) {
				s.SetFill(x, y, fill)
			}
		}
	}
}
