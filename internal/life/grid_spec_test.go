package life_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/lifesaver/internal/life"
)

func seeded(h, w int, b life.Boundary, cells ...[2]int) *life.Grid {
	g := life.New(h, w, b, life.NewRNG(1))
	g.Clear()
	for _, c := range cells {
		g.Set(c[0], c[1], true)
	}
	return g
}

func liveCells(g *life.Grid) [][2]int {
	var out [][2]int
	for r := 0; r < g.Height(); r++ {
		for c := 0; c < g.Width(); c++ {
			if g.Alive(r, c) {
				out = append(out, [2]int{r, c})
			}
		}
	}
	return out
}

var _ = Describe("Grid", func() {
	Context("with a toroidal boundary", func() {
		It("carries a glider across the wrap seam", func() {
			g := seeded(8, 8, life.Toroidal, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0}, [2]int{2, 1}, [2]int{2, 2})

			for i := 0; i < 4*8; i++ {
				g.Update()
			}

			Expect(liveCells(g)).To(ConsistOf([2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0}, [2]int{2, 1}, [2]int{2, 2}))
			Expect(g.Generation()).To(Equal(32))
		})

		It("moves a glider one cell diagonally every four generations", func() {
			g := seeded(8, 8, life.Toroidal, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0}, [2]int{2, 1}, [2]int{2, 2})

			for i := 0; i < 4; i++ {
				g.Update()
			}

			Expect(liveCells(g)).To(ConsistOf([2]int{1, 2}, [2]int{2, 3}, [2]int{3, 1}, [2]int{3, 2}, [2]int{3, 3}))
		})

		It("keeps a block still", func() {
			g := seeded(6, 6, life.Toroidal, [2]int{2, 2}, [2]int{2, 3}, [2]int{3, 2}, [2]int{3, 3})
			before := g.Clone()

			g.Update()

			Expect(g.Equal(before)).To(BeTrue())
		})
	})

	Context("with a clamped boundary", func() {
		It("keeps a block wedged in the corner", func() {
			g := seeded(4, 4, life.Clamped, [2]int{0, 0}, [2]int{0, 1}, [2]int{1, 0}, [2]int{1, 1})

			g.Update()

			Expect(liveCells(g)).To(ConsistOf([2]int{0, 0}, [2]int{0, 1}, [2]int{1, 0}, [2]int{1, 1}))
		})

		It("grounds a glider into a corner block instead of wrapping it", func() {
			g := seeded(6, 6, life.Clamped, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0}, [2]int{2, 1}, [2]int{2, 2})

			for i := 0; i < 40; i++ {
				g.Update()
			}

			Expect(liveCells(g)).To(ConsistOf([2]int{4, 4}, [2]int{4, 5}, [2]int{5, 4}, [2]int{5, 5}))
		})
	})

	Describe("Resize", func() {
		DescribeTable("always yields the requested shape",
			func(h, w int) {
				g := life.New(12, 12, life.Toroidal, life.NewRNG(4))
				g.Resize(h, w)

				Expect(g.Height()).To(Equal(h))
				Expect(g.Width()).To(Equal(w))
				Expect(g.Alive(h, w)).To(BeFalse())
			},
			Entry("shrink", 3, 5),
			Entry("grow", 50, 160),
			Entry("collapse", 0, 0),
			Entry("single row", 1, 9),
		)
	})
})
