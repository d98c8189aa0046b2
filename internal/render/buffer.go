package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const blank = ' '

// Buffer is an in-memory Surface that renders to a styled string. Each
// position holds only a fill color; the empty color means blank.
type Buffer struct {
	Width, Height int
	Grid          [][]Color
	styles        map[Color]lipgloss.Style
}

func NewBuffer(w, h int) *Buffer {
	b := &Buffer{styles: make(map[Color]lipgloss.Style)}
	b.Resize(w, h)
	return b
}

// Resize reallocates the buffer, dropping all fills.
func (b *Buffer) Resize(w, h int) {
	w, h = max(w, 0), max(h, 0)
	b.Width, b.Height = w, h
	b.Grid = make([][]Color, h)
	for i := range b.Grid {
		b.Grid[i] = make([]Color, w)
	}
}

func (b *Buffer) Size() (int, int) { return b.Width, b.Height }

// Bounds covers the whole buffer.
func (b *Buffer) Bounds() Rect { return Rect{Width: b.Width, Height: b.Height} }

func (b *Buffer) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.Width && y < b.Height
}

// Reset clears a position. Out-of-range positions are ignored.
func (b *Buffer) Reset(x, y int) {
	if b.inside(x, y) {
		b.Grid[y][x] = ""
	}
}

// SetFill paints a position. Out-of-range positions are ignored.
func (b *Buffer) SetFill(x, y int, c Color) {
	if b.inside(x, y) {
		b.Grid[y][x] = c
	}
}

// Fill returns the color at a position, or "" when blank or out of range.
func (b *Buffer) Fill(x, y int) Color {
	if !b.inside(x, y) {
		return ""
	}
	return b.Grid[y][x]
}

func (b *Buffer) style(c Color) lipgloss.Style {
	s, ok := b.styles[c]
	if !ok {
		s = lipgloss.NewStyle().Background(lipgloss.Color(c))
		b.styles[c] = s
	}
	return s
}

// String renders the buffer row by row. Runs of equal fill share one styled
// segment; rows are joined without a trailing newline so a full-screen frame
// does not scroll.
func (b *Buffer) String() string {
	var sb strings.Builder
	for y, row := range b.Grid {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < len(row); {
			end := x + 1
			for end < len(row) && row[end] == row[x] {
				end++
			}
			run := strings.Repeat(string(blank), end-x)
			if row[x] == "" {
				sb.WriteString(run)
			} else {
				sb.WriteString(b.style(row[x]).Render(run))
			}
			x = end
		}
	}
	return sb.String()
}
