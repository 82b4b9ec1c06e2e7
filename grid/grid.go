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

// Package grid computes the positions of flyer cells on a page.
//
// A page is divided into Columns × Rows cells of equal size which tile the
// page without gaps.  Coordinates are in PDF units, with the origin in the
// bottom left corner of the page and y growing upwards.
package grid

import (
	"errors"
	"fmt"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Params describe the page and the grid.
type Params struct {
	Width, Height float64 // page size
	Columns, Rows int

	// BorderH and BorderV are added to every cell origin, to move the
	// contents away from the cell boundary.
	BorderH, BorderV float64

	// PaddingH and PaddingV offset the crop marks from the cell
	// boundaries.  At the far edges of the page the offset is reversed,
	// so that marks on the outer boundary move to the inside of the page
	// when the padding is positive.
	PaddingH, PaddingV float64
}

// Plan holds the positions of all cells and crop marks on a page.
type Plan struct {
	Columns, Rows int

	CellWidth, CellHeight float64

	// Cells holds the origins of all cells, row by row starting at the
	// bottom of the page.  The origin includes the border offset.
	Cells []vec.Vec2

	// Marks holds the crop mark positions, (Columns+1) × (Rows+1) points,
	// row by row starting at the bottom of the page.
	Marks []vec.Vec2

	border vec.Vec2
}

// New computes the plan for the given page and grid.
func New(p Params) (*Plan, error) {
	if p.Columns < 1 || p.Rows < 1 {
		return nil, fmt.Errorf("grid: invalid grid size %dx%d", p.Columns, p.Rows)
	}
	if !(p.Width > 0 && p.Height > 0) {
		return nil, errInvalidPage
	}

	cellWidth := p.Width / float64(p.Columns)
	cellHeight := p.Height / float64(p.Rows)

	plan := &Plan{
		Columns:    p.Columns,
		Rows:       p.Rows,
		CellWidth:  cellWidth,
		CellHeight: cellHeight,
		Cells:      make([]vec.Vec2, 0, p.Columns*p.Rows),
		Marks:      make([]vec.Vec2, 0, (p.Columns+1)*(p.Rows+1)),
		border:     vec.Vec2{X: p.BorderH, Y: p.BorderV},
	}

	for row := 0; row < p.Rows; row++ {
		for col := 0; col < p.Columns; col++ {
			plan.Cells = append(plan.Cells, vec.Vec2{
				X: float64(col)*cellWidth + p.BorderH,
				Y: float64(row)*cellHeight + p.BorderV,
			})
		}
	}

	// The far edge factor i/Columns is a real division: it is 0 on the
	// near edge, 1 on the far edge, and in between for inner marks.
	for j := 0; j <= p.Rows; j++ {
		for i := 0; i <= p.Columns; i++ {
			fi := float64(i)
			fj := float64(j)
			plan.Marks = append(plan.Marks, vec.Vec2{
				X: fi*cellWidth + p.PaddingH + (fi/float64(p.Columns))*p.PaddingH*-2,
				Y: fj*cellHeight + p.PaddingV + (fj/float64(p.Rows))*p.PaddingV*-2,
			})
		}
	}

	return plan, nil
}

// Cell returns the origin of the given cell, including the border offset.
func (p *Plan) Cell(col, row int) vec.Vec2 {
	return p.Cells[row*p.Columns+col]
}

// Mark returns the crop mark at grid intersection (i, j),
// for 0 ≤ i ≤ Columns and 0 ≤ j ≤ Rows.
func (p *Plan) Mark(i, j int) vec.Vec2 {
	return p.Marks[j*(p.Columns+1)+i]
}

// CellRect returns the area covered by the given cell.
// The border offset is not included.  The rectangles of all cells tile
// the page.
func (p *Plan) CellRect(col, row int) rect.Rect {
	origin := p.Cell(col, row).Sub(p.border)
	return rect.Rect{
		LLx: origin.X,
		LLy: origin.Y,
		URx: origin.X + p.CellWidth,
		URy: origin.Y + p.CellHeight,
	}
}

var errInvalidPage = errors.New("grid: page size must be positive")
