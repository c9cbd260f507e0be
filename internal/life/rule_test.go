package life

import (
	"testing"

	"gridlife/internal/core"
)

func newGrid(t *testing.T, rows, cols int, alive ...[2]int) *core.Grid {
	t.Helper()
	g, err := core.NewGrid(rows, cols)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	for _, rc := range alive {
		g.Set(rc[0], rc[1], core.Alive)
	}
	return g
}

func expectAlive(t *testing.T, g *core.Grid, label string, alive ...[2]int) {
	t.Helper()
	want := make(map[[2]int]bool, len(alive))
	for _, rc := range alive {
		want[rc] = true
	}
	size := g.Size()
	for r := 0; r < size.Rows; r++ {
		for c := 0; c < size.Cols; c++ {
			got := g.Get(r, c) == core.Alive
			if got != want[[2]int{r, c}] {
				t.Fatalf("%s: cell (%d,%d) alive=%v, expected %v", label, r, c, got, want[[2]int{r, c}])
			}
		}
	}
}

func TestNextRuleTable(t *testing.T) {
	for n := 0; n <= 8; n++ {
		wantDead := core.Dead
		if n == 3 {
			wantDead = core.Alive
		}
		if got := Next(core.Dead, n); got != wantDead {
			t.Fatalf("Next(Dead, %d) = %v, want %v", n, got, wantDead)
		}

		wantAlive := core.Dead
		if n == 2 || n == 3 {
			wantAlive = core.Alive
		}
		if got := Next(core.Alive, n); got != wantAlive {
			t.Fatalf("Next(Alive, %d) = %v, want %v", n, got, wantAlive)
		}
	}
}

func TestStepEmptyStaysEmpty(t *testing.T) {
	g := newGrid(t, 6, 6)
	expectAlive(t, Step(g), "empty")
}

func TestStepIsolatedCellDies(t *testing.T) {
	g := newGrid(t, 5, 5, [2]int{2, 2})
	expectAlive(t, Step(g), "isolated")
}

func TestStepBlockIsStill(t *testing.T) {
	block := [][2]int{{2, 2}, {2, 3}, {3, 2}, {3, 3}}
	g := newGrid(t, 6, 6, block...)
	next := Step(g)
	expectAlive(t, next, "block", block...)
	if !next.Equal(g) {
		t.Fatal("block changed after one step")
	}
}

func TestStepBlinkerOscillates(t *testing.T) {
	horizontal := [][2]int{{3, 2}, {3, 3}, {3, 4}}
	vertical := [][2]int{{2, 3}, {3, 3}, {4, 3}}
	g := newGrid(t, 7, 7, horizontal...)

	g = Step(g)
	expectAlive(t, g, "first step", vertical...)

	g = Step(g)
	expectAlive(t, g, "second step", horizontal...)
}

func TestStepDoesNotMutateInput(t *testing.T) {
	g := newGrid(t, 5, 5, [2]int{2, 1}, [2]int{2, 2}, [2]int{2, 3})
	before := g.Fingerprint()
	next := Step(g)
	if g.Fingerprint() != before {
		t.Fatal("Step modified the grid it was reading")
	}
	if next == g {
		t.Fatal("Step returned the input grid")
	}
}

func TestStepBorderIsBounded(t *testing.T) {
	// A blinker along the top edge has nowhere to grow upward.
	g := newGrid(t, 5, 5, [2]int{0, 1}, [2]int{0, 2}, [2]int{0, 3})
	expectAlive(t, Step(g), "edge blinker", [2]int{0, 2}, [2]int{1, 2})
}

func TestStepGliderTranslates(t *testing.T) {
	glider := [][2]int{{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}}
	g := newGrid(t, 10, 10, glider...)
	for i := 0; i < 4; i++ {
		g = Step(g)
	}
	moved := make([][2]int, len(glider))
	for i, rc := range glider {
		moved[i] = [2]int{rc[0] + 1, rc[1] + 1}
	}
	expectAlive(t, g, "glider after 4 steps", moved...)
}
