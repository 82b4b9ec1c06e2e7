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

// Package pdfcanvas draws flyers into a PDF file.
//
// A [Canvas] writes every page side as a separate page of a PDF document.
// Text is set in a single TrueType font.
package pdfcanvas

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"seehuhn.de/go/sfnt"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/font"
	"seehuhn.de/go/pdf/font/truetype"
	"seehuhn.de/go/pdf/graphics/color"

	flyer "github.com/flipdot/ascii-flyers"
)

// Canvas implements [flyer.Canvas] for PDF output.
type Canvas struct {
	doc  *document.MultiPage
	page *document.Page
	font font.Instance

	numPages int
	fontSize float64
}

var _ flyer.Canvas = (*Canvas)(nil)

// Create creates a new PDF file with pages of the given size.
// The font data must be a TrueType font with glyf outlines.
func Create(fileName string, width, height float64, ttf []byte) (*Canvas, error) {
	F, err := NewFont(ttf)
	if err != nil {
		return nil, err
	}
	doc, err := document.CreateMultiPage(fileName, paper(width, height), pdf.V1_7, nil)
	if err != nil {
		return nil, err
	}
	return &Canvas{doc: doc, font: F}, nil
}

// New writes a PDF document with pages of the given size to w.
// The font data must be a TrueType font with glyf outlines.
func New(w io.Writer, width, height float64, ttf []byte) (*Canvas, error) {
	F, err := NewFont(ttf)
	if err != nil {
		return nil, err
	}
	doc, err := document.WriteMultiPage(w, paper(width, height), pdf.V1_7, nil)
	if err != nil {
		return nil, err
	}
	return &Canvas{doc: doc, font: F}, nil
}

// NewFont converts TrueType font data into a font which can be used in a
// PDF file.
func NewFont(ttf []byte) (font.Instance, error) {
	info, err := sfnt.Read(bytes.NewReader(ttf))
	if err != nil {
		return nil, fmt.Errorf("pdfcanvas: %w", err)
	}
	F, err := truetype.New(info, nil)
	if err != nil {
		return nil, fmt.Errorf("pdfcanvas: font %q: %w", info.PostScriptName(), err)
	}
	return F, nil
}

func paper(width, height float64) *pdf.Rectangle {
	return &pdf.Rectangle{URx: width, URy: height}
}

// NumPages returns the number of pages written so far.
func (c *Canvas) NumPages() int {
	return c.numPages
}

// BeginSide implements [flyer.Canvas].
func (c *Canvas) BeginSide() error {
	if c.page != nil {
		return errPageOpen
	}
	if c.doc == nil {
		return errClosed
	}
	c.page = c.doc.AddPage()
	return nil
}

// EndSide implements [flyer.Canvas].
func (c *Canvas) EndSide() error {
	if c.page == nil {
		return errNoPage
	}
	err := c.page.Close()
	c.page = nil
	if err != nil {
		return err
	}
	c.numPages++
	return nil
}

// SetFillColor implements [flyer.Canvas].
func (c *Canvas) SetFillColor(col flyer.Color) {
	c.page.SetFillColor(deviceColor(col))
}

// SetStrokeColor implements [flyer.Canvas].
func (c *Canvas) SetStrokeColor(col flyer.Color) {
	c.page.SetStrokeColor(deviceColor(col))
}

// SetLineWidth implements [flyer.Canvas].
func (c *Canvas) SetLineWidth(width float64) {
	c.page.SetLineWidth(width)
}

// SetFontSize implements [flyer.Canvas].
func (c *Canvas) SetFontSize(size float64) {
	c.fontSize = size
}

// FillRect implements [flyer.Canvas].
func (c *Canvas) FillRect(x, y, width, height float64) {
	c.page.Rectangle(x, y, width, height)
	c.page.Fill()
}

// Line implements [flyer.Canvas].
func (c *Canvas) Line(x0, y0, x1, y1 float64) {
	c.page.MoveTo(x0, y0)
	c.page.LineTo(x1, y1)
	c.page.Stroke()
}

// ShowText implements [flyer.Canvas].
func (c *Canvas) ShowText(x, y float64, text string) {
	c.page.TextBegin()
	c.page.TextSetFont(c.font, c.fontSize)
	c.page.TextFirstLine(x, y)
	c.page.TextShow(text)
	c.page.TextEnd()
}

// Close writes the PDF document.
// If a file was created by [Create], the file is closed.
func (c *Canvas) Close() error {
	if c.page != nil {
		return errPageOpen
	}
	if c.doc == nil {
		return errClosed
	}
	err := c.doc.Close()
	c.doc = nil
	return err
}

func deviceColor(col flyer.Color) color.Color {
	return color.DeviceRGB(col.R, col.G, col.B)
}

var (
	errPageOpen = errors.New("pdfcanvas: page still open")
	errNoPage   = errors.New("pdfcanvas: no page open")
	errClosed   = errors.New("pdfcanvas: document already closed")
)
