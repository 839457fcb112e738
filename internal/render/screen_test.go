package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"lifegame/internal/life"
)

func newTestScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	screen.SetSize(cols, rows)
	t.Cleanup(screen.Fini)
	return screen
}

func TestBlitDrawsCellStyles(t *testing.T) {
	eng, err := life.NewWithRand(3, 2, life.NewRNG(1))
	if err != nil {
		t.Fatal(err)
	}
	if err := eng.SetCell(1, 0, true); err != nil {
		t.Fatal(err)
	}
	if err := eng.SetCell(2, 1, true); err != nil {
		t.Fatal(err)
	}

	screen := newTestScreen(t, 3*CellColumns, 3)
	p := NewPainter()
	p.Blit(screen, eng)
	screen.Show()

	aliveStyle := tcell.StyleDefault.Background(tcell.ColorWhite)
	deadStyle := tcell.StyleDefault.Background(tcell.ColorBlack)

	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			alive, err := eng.CellState(x, y)
			if err != nil {
				t.Fatal(err)
			}
			want := deadStyle
			if alive {
				want = aliveStyle
			}
			for i := 0; i < CellColumns; i++ {
				_, _, style, _ := screen.GetContent(x*CellColumns+i, y)
				if style != want {
					t.Fatalf("cell (%d,%d) column %d drawn with wrong style (alive=%v)", x, y, i, alive)
				}
			}
		}
	}
}

func TestStatusLine(t *testing.T) {
	eng, err := life.NewWithRand(5, 2, life.NewRNG(1))
	if err != nil {
		t.Fatal(err)
	}
	if err := eng.SetCell(0, 0, true); err != nil {
		t.Fatal(err)
	}
	eng.Evolve()

	screen := newTestScreen(t, 80, 4)
	p := NewPainter()
	p.Status(screen, eng, true, 12)
	screen.Show()

	var sb strings.Builder
	cols, _ := screen.Size()
	for i := 0; i < cols; i++ {
		r, _, _, _ := screen.GetContent(i, 2)
		sb.WriteRune(r)
	}
	line := sb.String()

	for _, want := range []string{"gen 1", "pop 0", "running @ 12 tps"} {
		if !strings.Contains(line, want) {
			t.Fatalf("status line %q missing %q", strings.TrimRight(line, " "), want)
		}
	}
}

func TestCellAt(t *testing.T) {
	cases := []struct {
		px, py int
		x, y   int
	}{
		{0, 0, 0, 0},
		{1, 0, 0, 0},
		{2, 3, 1, 3},
		{7, 2, 3, 2},
		{-1, 0, -1, 0}, // stays out of range instead of clamping to a cell
	}
	for _, c := range cases {
		x, y := CellAt(c.px, c.py)
		if x != c.x || y != c.y {
			t.Errorf("CellAt(%d, %d) = (%d, %d), want (%d, %d)", c.px, c.py, x, y, c.x, c.y)
		}
	}
}
