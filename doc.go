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

// Package flyer lays out invitation flyers for hackerspace events.
//
// A page is divided into a grid of identical cells.  Sheets are printed on
// both sides: the front of each cell shows an ASCII art invitation with the
// event title, type and date, the back shows a free-form description which
// is wrapped and padded to a fixed number of lines and columns.  Optional
// crop marks at the cell boundaries help with cutting the printed sheets.
//
// [Compose] sends the drawing operations for all page sides to a [Canvas].
// The package [github.com/flipdot/ascii-flyers/pdfcanvas] provides a
// Canvas which writes a PDF file:
//
//	cfg := flyer.DefaultConfig()
//	ev := &flyer.Event{
//	    Title:       "Löten für Anfänger",
//	    Description: "Bring your own project!",
//	    DateTime:    "2024-03-01 18:30",
//	}
//	c, err := pdfcanvas.Create("flyer.pdf", cfg.PageWidth, cfg.PageHeight, ttf)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = flyer.Compose(c, cfg, ev, &flyer.Options{Sheets: 1, CropMarks: true})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = c.Close()
//	if err != nil {
//	    log.Fatal(err)
//	}
package flyer
