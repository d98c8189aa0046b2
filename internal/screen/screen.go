// Package screen runs the screensaver directly on a tcell screen.
//
// It is the alternate backend to the bubbletea program in package tui and
// drives the same grid and renderer: draw, wait for input until the next
// tick, advance one generation.
package screen

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/san-kum/lifesaver/internal/life"
	"github.com/san-kum/lifesaver/internal/render"
)

// DefaultInterval paces generations when Options leaves Interval unset.
const DefaultInterval = 500 * time.Millisecond

type Options struct {
	Boundary life.Boundary
	Interval time.Duration
	Fill     render.Color
	RNG      *life.RNG
	Logger   *log.Logger
	// OnFrame is called after every frame is shown.
	OnFrame func(g *life.Grid)
}

type Saver struct {
	screen  tcell.Screen
	surface *render.ScreenSurface
	grid    *life.Grid
	opts    Options
}

func New(s tcell.Screen, opts Options) *Saver {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Fill == "" {
		opts.Fill = render.DefaultFill
	}
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	return &Saver{screen: s, surface: render.NewScreenSurface(s), opts: opts}
}

// Grid returns the grid being animated; nil before Run.
func (sv *Saver) Grid() *life.Grid { return sv.grid }

// Run initialises the screen, animates until 'q', ctrl+c or ctx is done, and
// always finalises the screen on the way out, panics included.
func (sv *Saver) Run(ctx context.Context) error {
	if err := sv.screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer func() {
		r := recover()
		sv.screen.Fini()
		if r != nil {
			panic(r)
		}
	}()

	sv.screen.HideCursor()
	width, height := sv.screen.Size()
	sv.grid = life.New(height, width, sv.opts.Boundary, sv.opts.RNG)
	sv.opts.Logger.Info("start", "backend", "tcell", "height", height, "width", width, "boundary", sv.opts.Boundary)

	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := sv.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(sv.opts.Interval)
	defer ticker.Stop()

	for {
		sv.draw()

		select {
		case <-ctx.Done():
			sv.opts.Logger.Info("canceled", "generation", sv.grid.Generation())
			return nil
		case ev := <-events:
			if !sv.handle(ev) {
				sv.opts.Logger.Info("quit", "generation", sv.grid.Generation())
				return nil
			}
		case <-ticker.C:
			sv.grid.Update()
		}
	}
}

func (sv *Saver) draw() {
	render.Draw(sv.grid, sv.surface.Bounds(), sv.surface, sv.opts.Fill)
	sv.screen.Show()
	if sv.opts.OnFrame != nil {
		sv.opts.OnFrame(sv.grid)
	}
}

// handle reports false when the event asks to quit.
func (sv *Saver) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC || (ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}
	case *tcell.EventResize:
		w, h := ev.Size()
		sv.screen.Sync()
		if h == sv.grid.Height() && w == sv.grid.Width() {
			return true
		}
		sv.grid.Resize(h, w)
		sv.opts.Logger.Info("resize", "height", h, "width", w)
	}
	return true
}
