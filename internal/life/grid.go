package life

import (
	"bufio"
	"io"
)

const (
	liveGlyph = '0'
	deadGlyph = ' '
)

// Grid is a height x width table of cells in row-major order.
type Grid struct {
	height, width int
	boundary      Boundary
	rng           *RNG
	cur           [][]bool
	nxt           [][]bool
	generation    int
}

// New returns a grid with every cell drawn independently from rng.
// Negative dimensions are treated as zero. A nil rng is replaced by a
// time-seeded one.
func New(height, width int, boundary Boundary, rng *RNG) *Grid {
	if rng == nil {
		rng = NewRNG(0)
	}
	g := &Grid{boundary: boundary, rng: rng}
	g.reseed(height, width)
	return g
}

func (g *Grid) reseed(height, width int) {
	height, width = max(height, 0), max(width, 0)
	g.height, g.width = height, width
	g.cur = allocate(height, width)
	g.nxt = allocate(height, width)
	g.generation = 0
	for _, row := range g.cur {
		for c := range row {
			row[c] = g.rng.Bool()
		}
	}
}

func allocate(height, width int) [][]bool {
	cells := make([][]bool, height)
	for r := range cells {
		cells[r] = make([]bool, width)
	}
	return cells
}

func (g *Grid) Height() int          { return g.height }
func (g *Grid) Width() int           { return g.width }
func (g *Grid) Boundary() Boundary   { return g.boundary }
func (g *Grid) Generation() int      { return g.generation }
func (g *Grid) inside(r, c int) bool { return r >= 0 && r < g.height && c >= 0 && c < g.width }

// Alive reports whether the cell at (row, col) is live. Coordinates outside
// the grid are dead.
func (g *Grid) Alive(row, col int) bool {
	return g.inside(row, col) && g.cur[row][col]
}

// Set overwrites a single cell; out-of-range coordinates are ignored.
func (g *Grid) Set(row, col int, alive bool) {
	if g.inside(row, col) {
		g.cur[row][col] = alive
	}
}

// Clear kills every cell.
func (g *Grid) Clear() {
	for _, row := range g.cur {
		clear(row)
	}
}

// Population counts the live cells.
func (g *Grid) Population() int {
	n := 0
	for _, row := range g.cur {
		for _, alive := range row {
			if alive {
				n++
			}
		}
	}
	return n
}

// Neighbors counts the live cells adjacent to (row, col) under the grid's
// boundary policy. The cell itself is not counted.
func (g *Grid) Neighbors(row, col int) int {
	if !g.inside(row, col) {
		return 0
	}
	n := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			r, c, ok := g.neighbor(row+dr, col+dc)
			if ok && g.cur[r][c] {
				n++
			}
		}
	}
	return n
}

// neighbor resolves a possibly out-of-range coordinate according to the
// boundary policy.
func (g *Grid) neighbor(r, c int) (int, int, bool) {
	if g.boundary == Toroidal {
		return (r%g.height + g.height) % g.height, (c%g.width + g.width) % g.width, true
	}
	return r, c, g.inside(r, c)
}

// Update advances the grid by one generation. The next generation is built
// entirely from the current one before the buffers are swapped.
func (g *Grid) Update() {
	if g.height == 0 || g.width == 0 {
		return
	}
	for r, row := range g.cur {
		for c, alive := range row {
			n := g.Neighbors(r, c)
			g.nxt[r][c] = n == 3 || (n == 2 && alive)
		}
	}
	g.cur, g.nxt = g.nxt, g.cur
	g.generation++
}

// Resize discards the current cells and reseeds the grid at the new
// dimensions, keeping the boundary policy and random source.
func (g *Grid) Resize(height, width int) {
	g.reseed(height, width)
}

// Equal reports whether both grids have the same shape and cells.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.height != other.height || g.width != other.width {
		return false
	}
	for r, row := range g.cur {
		for c, alive := range row {
			if other.cur[r][c] != alive {
				return false
			}
		}
	}
	return true
}

// Clone returns an independent copy sharing the random source.
func (g *Grid) Clone() *Grid {
	c := &Grid{
		height:     g.height,
		width:      g.width,
		boundary:   g.boundary,
		rng:        g.rng,
		cur:        allocate(g.height, g.width),
		nxt:        allocate(g.height, g.width),
		generation: g.generation,
	}
	for r, row := range g.cur {
		copy(c.cur[r], row)
	}
	return c
}

// Print writes a crude text dump of the grid, one line per row, with '0' for
// live cells and ' ' for dead ones. It is meant for diagnostics only.
func (g *Grid) Print(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, row := range g.cur {
		for _, alive := range row {
			if alive {
				bw.WriteByte(liveGlyph)
			} else {
				bw.WriteByte(deadGlyph)
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
