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

package flyer

// Canvas receives the drawing operations for a sequence of page sides.
//
// Coordinates are in PDF units, with the origin in the bottom left corner
// of the page.  Text is placed with its baseline starting at the given
// point.
//
// Drawing methods do not return errors.  Implementations should record the
// first error and return it from EndSide, similar to how
// seehuhn.de/go/pdf/graphics/content/builder.Builder records errors.
type Canvas interface {
	// BeginSide starts a new page side.
	BeginSide() error

	SetFillColor(c Color)
	SetStrokeColor(c Color)
	SetLineWidth(width float64)
	SetFontSize(size float64)

	// FillRect fills a rectangle with the fill color.
	FillRect(x, y, width, height float64)

	// Line strokes a line segment using the stroke color.
	Line(x0, y0, x1, y1 float64)

	// ShowText draws a single line of text using the fill color.
	ShowText(x, y float64, text string)

	// EndSide finishes the current page side.  The side cannot be
	// modified afterwards.
	EndSide() error
}
