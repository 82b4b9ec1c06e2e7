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

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/flipdot/ascii-flyers/grid"
	"github.com/flipdot/ascii-flyers/invite"
	"github.com/flipdot/ascii-flyers/reflow"
)

// Options control the output of [Compose].
type Options struct {
	// Sheets is the number of double-sided sheets.  Each sheet produces a
	// front page and a back page.
	Sheets int

	// CropMarks enables crop marks at all cell boundaries.
	CropMarks bool

	// Preview replaces the paper color by the accent color.
	Preview bool

	// Location is used for event dates without time zone.
	// If this is nil, time.Local is used.
	Location *time.Location

	// Logger, if not nil, receives debug output.
	Logger *zerolog.Logger
}

// Layout holds everything needed to draw the pages for one event.
// All input errors are detected when the Layout is created.
type Layout struct {
	Config *Config
	Plan   *grid.Plan

	// Front and Back hold the text lines for the two sides, top to bottom.
	Front []string
	Back  reflow.Block
}

// NewLayout checks the configuration and the event, and computes the grid
// and the text for both sides of the flyer.
//
// The returned error is a [*reflow.TooMuchTextError] if the description
// does not fit on the back of the flyer, and a [*invite.DateTimeError] if
// the event date cannot be parsed.
func NewLayout(cfg *Config, ev *Event, loc *time.Location) (*Layout, error) {
	err := cfg.Validate()
	if err != nil {
		return nil, err
	}

	tmpl, err := invite.Parse(cfg.FrontTemplate)
	if err != nil {
		return nil, err
	}
	front, err := tmpl.Render(ev.Title, ev.DateTime, ev.Type, &invite.Options{
		DateFormat: cfg.DateFormat,
		Location:   loc,
	})
	if err != nil {
		return nil, err
	}

	back, err := reflow.Reflow(ev.Description, cfg.MaxCols, cfg.MaxLines)
	if err != nil {
		return nil, err
	}

	plan, err := grid.New(cfg.gridParams())
	if err != nil {
		return nil, err
	}

	return &Layout{
		Config: cfg,
		Plan:   plan,
		Front:  front,
		Back:   back,
	}, nil
}

// Compose draws 2*opt.Sheets page sides onto c, alternating between front
// and back.
//
// All input is checked before the first side is started, so that no output
// is produced for invalid input.
func Compose(c Canvas, cfg *Config, ev *Event, opt *Options) error {
	if opt == nil {
		opt = defaultOptions()
	}
	if opt.Sheets < 1 {
		return ErrNoSheets
	}

	layout, err := NewLayout(cfg, ev, opt.Location)
	if err != nil {
		return err
	}
	return layout.Draw(c, opt)
}

// Draw draws 2*opt.Sheets page sides onto c.
// A nil opt draws one sheet with crop marks.
func (l *Layout) Draw(c Canvas, opt *Options) error {
	if opt == nil {
		opt = defaultOptions()
	}
	if opt.Sheets < 1 {
		return ErrNoSheets
	}
	log := opt.Logger
	if log == nil {
		nop := zerolog.Nop()
		log = &nop
	}

	for i := 0; i < 2*opt.Sheets; i++ {
		side := SideOf(i)
		log.Debug().Int("page", i).Stringer("side", side).Msg("drawing page")

		err := c.BeginSide()
		if err != nil {
			return fmt.Errorf("page %d: %w", i, err)
		}
		l.drawSide(c, side, opt, log)
		err = c.EndSide()
		if err != nil {
			return fmt.Errorf("page %d: %w", i, err)
		}
	}
	return nil
}

func defaultOptions() *Options {
	return &Options{Sheets: 1, CropMarks: true}
}

func (l *Layout) drawSide(c Canvas, side Side, opt *Options, log *zerolog.Logger) {
	cfg := l.Config
	bg, fg := cfg.SideColors(side, opt.Preview)

	c.SetFillColor(bg)
	c.FillRect(0, 0, cfg.PageWidth, cfg.PageHeight)

	var lines []string
	if side == Front {
		lines = reflow.Block(l.Front).BottomUp()
	} else {
		lines = l.Back.BottomUp()
	}

	c.SetFontSize(cfg.FontSize)
	c.SetFillColor(fg)
	plan := l.Plan
	for row := 0; row < plan.Rows; row++ {
		for col := 0; col < plan.Columns; col++ {
			origin := plan.Cell(col, row)
			log.Trace().Int("col", col).Int("row", row).
				Float64("x", origin.X).Float64("y", origin.Y).Msg("cell")
			for k, line := range lines {
				if line == "" {
					continue
				}
				c.ShowText(origin.X, origin.Y+float64(k)*cfg.FontSize, line)
			}
		}
	}

	if opt.CropMarks {
		half := cfg.CropMarkLength / 2
		c.SetStrokeColor(fg)
		c.SetLineWidth(cfg.CropMarkLineWidth)
		for j := 0; j <= plan.Rows; j++ {
			for i := 0; i <= plan.Columns; i++ {
				m := plan.Mark(i, j)
				c.Line(m.X-half, m.Y, m.X+half, m.Y)
				c.Line(m.X, m.Y-half, m.X, m.Y+half)
			}
		}
	}
}
