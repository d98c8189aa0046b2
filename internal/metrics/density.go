package metrics

import "github.com/san-kum/lifesaver/internal/life"

// Density is the mean fraction of live cells.
type Density struct {
	name    string
	samples int
	sum     float64
}

func NewDensity() *Density {
	return &Density{name: "density"}
}

func (d *Density) Name() string { return d.name }

func (d *Density) Observe(g *life.Grid) {
	cells := g.Height() * g.Width()
	d.samples++
	if cells == 0 {
		return
	}
	d.sum += float64(g.Population()) / float64(cells)
}

func (d *Density) Value() float64 {
	if d.samples == 0 {
		return 0
	}
	return d.sum / float64(d.samples)
}

func (d *Density) Reset() {
	d.samples = 0
	d.sum = 0
}
