package render

import "github.com/gdamore/tcell/v2"

// ScreenSurface adapts a tcell.Screen to the Surface interface.
type ScreenSurface struct {
	screen tcell.Screen
	colors map[Color]tcell.Color
}

func NewScreenSurface(s tcell.Screen) *ScreenSurface {
	return &ScreenSurface{screen: s, colors: make(map[Color]tcell.Color)}
}

// Bounds covers the whole screen at its current size.
func (s *ScreenSurface) Bounds() Rect {
	w, h := s.screen.Size()
	return Rect{Width: w, Height: h}
}

func (s *ScreenSurface) Reset(x, y int) {
	s.screen.SetContent(x, y, blank, nil, tcell.StyleDefault)
}

func (s *ScreenSurface) SetFill(x, y int, c Color) {
	s.screen.SetContent(x, y, blank, nil, tcell.StyleDefault.Background(s.color(c)))
}

func (s *ScreenSurface) color(c Color) tcell.Color {
	tc, ok := s.colors[c]
	if !ok {
		tc = tcell.GetColor(string(c))
		s.colors[c] = tc
	}
	return tc
}
