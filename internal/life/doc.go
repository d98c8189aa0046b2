// Package life implements the Game of Life grid that drives the screensaver.
//
// The package owns the cell state and the generation rule:
//
//   - [Grid]: rectangular table of live/dead cells with a fixed [Boundary]
//   - [Boundary]: edge policy, [Toroidal] (wraparound) or [Clamped] (truncated)
//   - [RNG]: seedable boolean source used to randomise new grids
//
// # Rule
//
// A cell is live in the next generation when exactly 3 of its neighbours are
// live, or when exactly 2 are live and the cell itself is live. Neighbours are
// counted without the centre cell. Every generation is computed from a full
// snapshot of the previous one and installed in a single swap.
//
// # Example
//
//	g := life.New(24, 80, life.Toroidal, life.NewRNG(42))
//	g.Update()
//	g.Print(os.Stderr)
//
// # Thread Safety
//
// Grid instances are NOT thread-safe. Callers sequence reads (rendering) and
// writes (Update, Resize) on a single goroutine.
package life
