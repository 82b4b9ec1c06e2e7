// ascii-flyers - generate invitation flyers for hackerspace events
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package grid

import (
	"fmt"
	"math"
	"testing"

	"seehuhn.de/go/geom/vec"
)

const (
	a4Width  = 595.276
	a4Height = 841.890
	cm       = 72 / 2.54
	eps      = 1e-9
)

func TestCounts(t *testing.T) {
	for cols := 1; cols <= 5; cols++ {
		for rows := 1; rows <= 10; rows++ {
			plan, err := New(Params{Width: a4Width, Height: a4Height, Columns: cols, Rows: rows})
			if err != nil {
				t.Fatal(err)
			}
			if len(plan.Cells) != cols*rows {
				t.Errorf("%dx%d: %d cells", cols, rows, len(plan.Cells))
			}
			if len(plan.Marks) != (cols+1)*(rows+1) {
				t.Errorf("%dx%d: %d marks", cols, rows, len(plan.Marks))
			}
		}
	}
}

// TestTiling checks that the cells cover the page without gaps or
// overlaps.
func TestTiling(t *testing.T) {
	for _, size := range [][2]int{{1, 1}, {2, 9}, {3, 7}, {4, 4}} {
		t.Run(fmt.Sprintf("%dx%d", size[0], size[1]), func(t *testing.T) {
			plan, err := New(Params{
				Width: a4Width, Height: a4Height,
				Columns: size[0], Rows: size[1],
				BorderH: 0.5 * cm, BorderV: 0.5 * cm,
			})
			if err != nil {
				t.Fatal(err)
			}

			area := 0.0
			for row := 0; row < plan.Rows; row++ {
				for col := 0; col < plan.Columns; col++ {
					r := plan.CellRect(col, row)
					area += (r.URx - r.LLx) * (r.URy - r.LLy)

					if col == 0 && math.Abs(r.LLx) > eps {
						t.Errorf("cell (%d,%d) does not start at the left edge", col, row)
					}
					if col > 0 && math.Abs(plan.CellRect(col-1, row).URx-r.LLx) > eps {
						t.Errorf("gap or overlap left of cell (%d,%d)", col, row)
					}
					if col == plan.Columns-1 && math.Abs(r.URx-a4Width) > 1e-6 {
						t.Errorf("cell (%d,%d) ends at %g, not at the right edge", col, row, r.URx)
					}
					if row == 0 && math.Abs(r.LLy) > eps {
						t.Errorf("cell (%d,%d) does not start at the bottom edge", col, row)
					}
					if row > 0 && math.Abs(plan.CellRect(col, row-1).URy-r.LLy) > eps {
						t.Errorf("gap or overlap below cell (%d,%d)", col, row)
					}
					if row == plan.Rows-1 && math.Abs(r.URy-a4Height) > 1e-6 {
						t.Errorf("cell (%d,%d) ends at %g, not at the top edge", col, row, r.URy)
					}
				}
			}
			if math.Abs(area-a4Width*a4Height) > 1e-6 {
				t.Errorf("cells cover %g, page is %g", area, a4Width*a4Height)
			}
		})
	}
}

func TestCellOrigin(t *testing.T) {
	plan, err := New(Params{
		Width: 200, Height: 900, Columns: 2, Rows: 9,
		BorderH: 5, BorderV: 7,
	})
	if err != nil {
		t.Fatal(err)
	}
	got := plan.Cell(1, 3)
	want := vec.Vec2{X: 105, Y: 307}
	if got != want {
		t.Errorf("cell (1,3) at %v, want %v", got, want)
	}
}

// TestMarkFormula checks the sign flip of the padding at the far edges.
func TestMarkFormula(t *testing.T) {
	const pad = -0.1 * cm
	plan, err := New(Params{
		Width: a4Width, Height: a4Height, Columns: 2, Rows: 9,
		PaddingH: pad, PaddingV: pad,
	})
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		i, j int
		want vec.Vec2
	}{
		{0, 0, vec.Vec2{X: pad, Y: pad}},
		{2, 9, vec.Vec2{X: a4Width - pad, Y: a4Height - pad}},
		{1, 0, vec.Vec2{X: a4Width / 2, Y: pad}},
		{0, 3, vec.Vec2{X: pad, Y: 3*a4Height/9 + pad - pad*2*3/9}},
	}
	for _, c := range cases {
		got := plan.Mark(c.i, c.j)
		if math.Abs(got.X-c.want.X) > 1e-9 || math.Abs(got.Y-c.want.Y) > 1e-9 {
			t.Errorf("mark (%d,%d) at %v, want %v", c.i, c.j, got, c.want)
		}
	}
}

func TestInvalid(t *testing.T) {
	cases := []Params{
		{Width: 100, Height: 100, Columns: 0, Rows: 1},
		{Width: 100, Height: 100, Columns: 1, Rows: -1},
		{Width: 0, Height: 100, Columns: 1, Rows: 1},
		{Width: 100, Height: math.NaN(), Columns: 1, Rows: 1},
	}
	for _, p := range cases {
		_, err := New(p)
		if err == nil {
			t.Errorf("%+v: expected error", p)
		}
	}
}
