package metrics

import "github.com/san-kum/lifesaver/internal/life"

// Activity is the fraction of observed transitions in which the population
// changed. A settled board scores 0.
type Activity struct {
	name        string
	last        int
	samples     int
	transitions int
	changes     int
}

func NewActivity() *Activity {
	return &Activity{name: "activity"}
}

func (a *Activity) Name() string { return a.name }

func (a *Activity) Observe(g *life.Grid) {
	n := g.Population()
	if a.samples > 0 {
		a.transitions++
		if n != a.last {
			a.changes++
		}
	}
	a.last = n
	a.samples++
}

func (a *Activity) Value() float64 {
	if a.transitions == 0 {
		return 0
	}
	return float64(a.changes) / float64(a.transitions)
}

func (a *Activity) Reset() {
	a.last = 0
	a.samples = 0
	a.transitions = 0
	a.changes = 0
}
