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

// Package invite renders the text shown on the front of a flyer.
package invite

import (
	"errors"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/araddon/dateparse"
)

// DefaultTemplate is the flipdot invitation.
//
// The template has access to the fields of [Fields].
var DefaultTemplate = strings.Join([]string{
	`  .-==-,     .-==-,     Einladung zu {{.Type}}`,
	`,"     \_  ,"     \_`,
	`|  flip  | |  dot   |     {{.Title}}`,
	"`.      ,' `.      ,'",
	"  `\"--\"'     `\"--\"'     {{.DateTime}}",
	`   ccc erfa kassel      flipdot.org`,
}, "\n")

// DefaultDateFormat formats a time as DD.MM.YYYY, HH:MM.
const DefaultDateFormat = "02.01.2006, 15:04"

// DefaultType is used when no event type is given.
const DefaultType = "Workshop"

// Fields holds the values substituted into the template.
type Fields struct {
	Type     string
	Title    string
	DateTime string
}

// Options control how the front text is rendered.
// A nil *Options is valid and selects the defaults.
type Options struct {
	// DateFormat is a Go time layout.  The default is [DefaultDateFormat].
	DateFormat string

	// Location is used for dates which do not specify a time zone.
	// The default is time.Local.
	Location *time.Location
}

// Template is a parsed front side template.
type Template struct {
	tmpl *template.Template
}

// Parse parses the text of a front side template.
func Parse(text string) (*Template, error) {
	tmpl, err := template.New("front").Option("missingkey=error").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("invite: %w", err)
	}
	return &Template{tmpl: tmpl}, nil
}

// Render fills in the template and returns the resulting lines, top to
// bottom.
//
// The event date is parsed using [ParseDateTime].  If eventType is empty,
// [DefaultType] is used.
func (t *Template) Render(title, datetime, eventType string, opt *Options) ([]string, error) {
	var loc *time.Location
	format := DefaultDateFormat
	if opt != nil {
		loc = opt.Location
		if opt.DateFormat != "" {
			format = opt.DateFormat
		}
	}

	when, err := ParseDateTime(datetime, loc)
	if err != nil {
		return nil, err
	}
	if eventType == "" {
		eventType = DefaultType
	}

	buf := &strings.Builder{}
	err = t.tmpl.Execute(buf, &Fields{
		Type:     eventType,
		Title:    title,
		DateTime: when.Format(format),
	})
	if err != nil {
		return nil, fmt.Errorf("invite: %w", err)
	}
	return strings.Split(buf.String(), "\n"), nil
}

// Front renders the default template.
func Front(title, datetime, eventType string, opt *Options) ([]string, error) {
	return defaultTemplate.Render(title, datetime, eventType, opt)
}

var defaultTemplate = func() *Template {
	t, err := Parse(DefaultTemplate)
	if err != nil {
		panic(err)
	}
	return t
}()

// dayFirst lists the German style layouts, which are tried before the
// generic parser.
var dayFirst = []string{
	"2.1.2006 15:04",
	"2.1.2006 15:04:05",
	"2.1.2006, 15:04",
	"2.1.2006",
	"2 January 2006 15:04",
	"2 January 2006",
}

// ParseDateTime parses a date and time given in one of many common formats.
// Numeric dates are read day first, so that 01.03.2024 is the first of
// March.  If loc is nil, time.Local is used.
//
// If the input cannot be parsed, a [*DateTimeError] is returned.
func ParseDateTime(raw string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, &DateTimeError{Input: raw, Err: errEmpty}
	}
	for _, layout := range dayFirst {
		t, err := time.ParseInLocation(layout, raw, loc)
		if err == nil {
			return t, nil
		}
	}
	t, err := dateparse.ParseIn(raw, loc, dateparse.PreferMonthFirst(false))
	if err != nil {
		return time.Time{}, &DateTimeError{Input: raw, Err: err}
	}
	return t, nil
}

var errEmpty = errors.New("empty input")

// DateTimeError indicates that an event date could not be understood.
type DateTimeError struct {
	Input string
	Err   error
}

func (err *DateTimeError) Error() string {
	return fmt.Sprintf("cannot parse date/time %q: %v", err.Input, err.Err)
}

func (err *DateTimeError) Unwrap() error {
	return err.Err
}
