package metrics

import "github.com/san-kum/lifesaver/internal/life"

// Population tracks the mean and peak live-cell count.
type Population struct {
	name    string
	samples int
	total   int
	peak    int
}

func NewPopulation() *Population {
	return &Population{name: "population"}
}

func (p *Population) Name() string { return p.name }

func (p *Population) Observe(g *life.Grid) {
	n := g.Population()
	p.total += n
	p.peak = max(p.peak, n)
	p.samples++
}

func (p *Population) Value() float64 {
	if p.samples == 0 {
		return 0
	}
	return float64(p.total) / float64(p.samples)
}

func (p *Population) Peak() int { return p.peak }

func (p *Population) Reset() {
	p.samples = 0
	p.total = 0
	p.peak = 0
}
