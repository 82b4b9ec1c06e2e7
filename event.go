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
	"time"

	"github.com/flipdot/ascii-flyers/invite"
)

// DefaultType is the event type used if none is given.
const DefaultType = invite.DefaultType

// Event describes the event advertised on the flyer.
type Event struct {
	Title string

	// Description is shown on the back of the flyer.  Lines are separated
	// by newlines, or by the escape sequence \n.
	Description string

	// DateTime is the date and time of the event, in any common format.
	DateTime string

	// Type is the kind of event.  If this is empty, "Workshop" is used.
	Type string
}

// TypeOrDefault returns the event type, or the default type if none is set.
func (ev *Event) TypeOrDefault() string {
	if ev.Type == "" {
		return DefaultType
	}
	return ev.Type
}

// Start returns the parsed event date.
func (ev *Event) Start(loc *time.Location) (time.Time, error) {
	return invite.ParseDateTime(ev.DateTime, loc)
}

// Side identifies one side of a flyer sheet.
type Side int

// The two sides of a sheet.
const (
	Front Side = iota
	Back
)

// SideOf returns the side printed on page i of the output.
// Pages alternate between front and back, starting with a front page.
func SideOf(i int) Side {
	return Side(i % 2)
}

func (s Side) String() string {
	switch s {
	case Front:
		return "front"
	case Back:
		return "back"
	default:
		return "invalid side"
	}
}

// OutputName returns the file name for flyers generated on the given day,
// using the given extension (e.g. ".pdf").
func OutputName(day time.Time, ext string) string {
	return day.Format("2006-01-02") + "-flyer" + ext
}
