package trace

import (
	"context"
	"errors"
	"fmt"

	"github.com/san-kum/lifesaver/internal/life"
)

var ErrInvalidGenerations = errors.New("trace: generations must be non-negative")

type Observer interface {
	OnGeneration(g *life.Grid)
}

type Metric interface {
	Name() string
	Observe(g *life.Grid)
	Value() float64
	Reset()
}

type Config struct {
	Generations int
	// StopAtFixedPoint ends the run as soon as a generation equals its
	// predecessor.
	StopAtFixedPoint bool
}

type Result struct {
	// Populations holds the live-cell count of the initial grid followed by
	// one entry per generation advanced.
	Populations []int
	Generations int
	FixedPoint  bool
	Metrics     map[string]float64
}

type Runner struct {
	grid      *life.Grid
	metrics   []Metric
	observers []Observer
}

func New(g *life.Grid) *Runner {
	return &Runner{
		grid:      g,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (r *Runner) AddMetric(m Metric)     { r.metrics = append(r.metrics, m) }
func (r *Runner) AddObserver(o Observer) { r.observers = append(r.observers, o) }
func (r *Runner) Grid() *life.Grid       { return r.grid }

// Run advances the grid up to cfg.Generations times. Metrics and observers
// see every generation, the initial one included. A canceled context stops
// the run between generations and returns the partial result with ctx.Err().
func (r *Runner) Run(ctx context.Context, cfg Config) (*Result, error) {
	if cfg.Generations < 0 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidGenerations, cfg.Generations)
	}

	result := &Result{
		Populations: make([]int, 0, cfg.Generations+1),
		Metrics:     make(map[string]float64),
	}

	for _, m := range r.metrics {
		m.Reset()
	}

	result.Populations = append(result.Populations, r.grid.Population())
	r.observe()

	var prev *life.Grid
	for i := 0; i < cfg.Generations; i++ {
		select {
		case <-ctx.Done():
			r.collect(result)
			return result, ctx.Err()
		default:
		}

		if cfg.StopAtFixedPoint {
			prev = r.grid.Clone()
		}

		r.grid.Update()
		result.Generations++
		result.Populations = append(result.Populations, r.grid.Population())
		r.observe()

		if cfg.StopAtFixedPoint && r.grid.Equal(prev) {
			result.FixedPoint = true
			break
		}
	}

	r.collect(result)
	return result, nil
}

func (r *Runner) observe() {
	for _, m := range r.metrics {
		m.Observe(r.grid)
	}
	for _, o := range r.observers {
		o.OnGeneration(r.grid)
	}
}

func (r *Runner) collect(result *Result) {
	for _, m := range r.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
}

// Float64s converts populations for plotting.
func (res *Result) Float64s() []float64 {
	out := make([]float64, len(res.Populations))
	for i, p := range res.Populations {
		out[i] = float64(p)
	}
	return out
}
