package life

import (
	"fmt"
	"strings"
)

// Boundary selects how neighbour lookups treat the grid edges.
type Boundary int

const (
	// Toroidal wraps rows and columns around, so every cell has 8 neighbours.
	Toroidal Boundary = iota
	// Clamped drops lookups outside the grid: corners have 3 neighbours, edges 5.
	Clamped
)

var boundaryNames = map[Boundary]string{
	Toroidal: "toroidal",
	Clamped:  "clamped",
}

func (b Boundary) String() string {
	if name, ok := boundaryNames[b]; ok {
		return name
	}
	return fmt.Sprintf("boundary(%d)", int(b))
}

// ParseBoundary maps a policy name to its Boundary. "torus" and "wrap" are
// accepted as aliases of toroidal.
func ParseBoundary(s string) (Boundary, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "toroidal", "torus", "wrap":
		return Toroidal, nil
	case "clamped", "clamp":
		return Clamped, nil
	}
	return 0, fmt.Errorf("%w: %q (available: %s)", ErrUnknownBoundary, s, strings.Join(BoundaryNames(), ", "))
}

// BoundaryNames lists the canonical policy names.
func BoundaryNames() []string {
	return []string{Toroidal.String(), Clamped.String()}
}
