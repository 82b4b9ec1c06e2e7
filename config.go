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
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/flipdot/ascii-flyers/grid"
	"github.com/flipdot/ascii-flyers/invite"
)

// Cm is the length of one centimetre in PDF units.
const Cm = 72 / 2.54

// Config describes the physical layout of the flyers.
// All lengths are in PDF units (1/72 inch).
//
// A Config is not modified by the functions in this package,
// so that one Config can be shared by several calls.
type Config struct {
	PageWidth  float64 `yaml:"page_width"`
	PageHeight float64 `yaml:"page_height"`

	Columns int `yaml:"columns"`
	Rows    int `yaml:"rows"`

	// BorderH and BorderV move the text away from the cell corner.
	BorderH float64 `yaml:"border_h"`
	BorderV float64 `yaml:"border_v"`

	// PaddingH and PaddingV move the crop marks away from the cell
	// boundaries.  See [grid.Params].
	PaddingH float64 `yaml:"padding_h"`
	PaddingV float64 `yaml:"padding_v"`

	CropMarkLength    float64 `yaml:"crop_mark_length"`
	CropMarkLineWidth float64 `yaml:"crop_mark_line_width"`

	// FontName is the name of a monospaced font.  FontFile and FontURL
	// give the file name used in the font cache and the location from
	// where the font is downloaded.
	FontName string  `yaml:"font_name"`
	FontFile string  `yaml:"font_file"`
	FontURL  string  `yaml:"font_url"`
	FontSize float64 `yaml:"font_size"`

	// MaxCols and MaxLines give the size of the description block on the
	// back of the flyer, in characters.
	MaxCols  int `yaml:"max_cols"`
	MaxLines int `yaml:"max_lines"`

	Ink    Color `yaml:"ink"`
	Paper  Color `yaml:"paper"`
	Accent Color `yaml:"accent"` // replaces Paper in preview mode

	// DateFormat is a Go time layout used for the event date.
	DateFormat string `yaml:"date_format"`

	// FrontTemplate is a text/template for the front of the flyer.
	// See [invite.Fields] for the available fields.
	FrontTemplate string `yaml:"front_template"`
}

// DefaultConfig returns the configuration for 2×9 flipdot flyers on A4
// paper.
func DefaultConfig() *Config {
	return &Config{
		PageWidth:  21.0 * Cm,
		PageHeight: 29.7 * Cm,

		Columns: 2,
		Rows:    9,

		BorderH:  0.5 * Cm,
		BorderV:  0.5 * Cm,
		PaddingH: -0.1 * Cm,
		PaddingV: -0.1 * Cm,

		CropMarkLength:    2 * Cm,
		CropMarkLineWidth: 0.1,

		FontName: "Latin Modern Mono Prop",
		FontFile: "lmmono10regular.ttf",
		FontURL:  "https://github.com/dworktg/latin-modern-mono-10/blob/master/fonts/lmmono10regular.ttf?raw=true",
		FontSize: 11.5,

		MaxCols:  40,
		MaxLines: 6,

		Ink:    Color{0, 0, 0},
		Paper:  Color{1, 1, 1},
		Accent: Color{0.95, 0.7, 0},

		DateFormat:    invite.DefaultDateFormat,
		FrontTemplate: invite.DefaultTemplate,
	}
}

// LoadConfig reads a YAML configuration file.
// Settings which are not present in the file keep their default values.
func LoadConfig(path string) (*Config, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	cfg, err := ReadConfig(fd)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ReadConfig reads a YAML configuration from r.
// Unknown keys are an error.
func ReadConfig(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if len(bytes.TrimSpace(data)) > 0 {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(cfg)
		if err != nil {
			return nil, err
		}
	}

	err = cfg.Validate()
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// WriteConfig writes cfg to w in YAML format.
func WriteConfig(w io.Writer, cfg *Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	err := enc.Encode(cfg)
	if err != nil {
		return err
	}
	return enc.Close()
}

// Validate checks that the configuration describes a usable layout.
// All errors returned wrap [ErrInvalidConfig].
func (cfg *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(cfg.PageWidth > 0 && cfg.PageHeight > 0,
		"page size %gx%g", cfg.PageWidth, cfg.PageHeight)
	check(cfg.Columns >= 1 && cfg.Rows >= 1,
		"grid size %dx%d", cfg.Columns, cfg.Rows)
	check(cfg.CropMarkLength >= 0, "crop mark length %g", cfg.CropMarkLength)
	check(cfg.CropMarkLineWidth >= 0, "crop mark line width %g", cfg.CropMarkLineWidth)
	check(cfg.FontSize > 0, "font size %g", cfg.FontSize)
	check(cfg.MaxCols >= 1 && cfg.MaxLines >= 1,
		"text size %dx%d", cfg.MaxCols, cfg.MaxLines)
	for _, c := range []struct {
		name string
		col  Color
	}{{"ink", cfg.Ink}, {"paper", cfg.Paper}, {"accent", cfg.Accent}} {
		check(c.col.valid(), "%s color %v", c.name, c.col)
	}
	if _, err := invite.Parse(cfg.FrontTemplate); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

func (cfg *Config) gridParams() grid.Params {
	return grid.Params{
		Width:    cfg.PageWidth,
		Height:   cfg.PageHeight,
		Columns:  cfg.Columns,
		Rows:     cfg.Rows,
		BorderH:  cfg.BorderH,
		BorderV:  cfg.BorderV,
		PaddingH: cfg.PaddingH,
		PaddingV: cfg.PaddingV,
	}
}

// SideColors returns the background and foreground color for one side of
// the flyer.  The front is printed in paper color on ink, the back in ink
// on paper.  In preview mode the accent color replaces the paper color.
func (cfg *Config) SideColors(side Side, preview bool) (bg, fg Color) {
	ink, paper := cfg.Ink, cfg.Paper
	if preview {
		paper = cfg.Accent
	}
	if side == Front {
		return ink, paper
	}
	return paper, ink
}
