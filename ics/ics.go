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

// Package ics exports an event as an iCalendar file, so that people can add
// the event to their calendars.
package ics

import (
	"io"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	flyer "github.com/flipdot/ascii-flyers"
	"github.com/flipdot/ascii-flyers/reflow"
)

// ProductID identifies this program in generated calendar files.
const ProductID = "-//flipdot//ascii-flyers//EN"

// DefaultDuration is used if no event duration is given.
const DefaultDuration = 2 * time.Hour

// Options control the calendar export.
// A nil *Options is valid and selects the defaults.
type Options struct {
	// Duration is the length of the event.
	Duration time.Duration

	// Location is used for event dates without time zone.
	Location *time.Location

	// Stamp is the time at which the calendar entry was created.
	// If this is zero, the event start is used.
	Stamp time.Time
}

// UID returns the unique identifier of the calendar entry for an event.
// The identifier only depends on the title and start of the event.
func UID(title string, start time.Time) string {
	name := title + "\x00" + start.UTC().Format(time.RFC3339)
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(name)).String() + "@flipdot.org"
}

// Write writes a calendar with a single entry for ev to w.
func Write(w io.Writer, ev *flyer.Event, opt *Options) error {
	if opt == nil {
		opt = &Options{}
	}
	duration := opt.Duration
	if duration <= 0 {
		duration = DefaultDuration
	}

	start, err := ev.Start(opt.Location)
	if err != nil {
		return err
	}
	stamp := opt.Stamp
	if stamp.IsZero() {
		stamp = start
	}

	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(ProductID)

	vev := cal.AddEvent(UID(ev.Title, start))
	vev.SetDtStampTime(stamp)
	vev.SetStartAt(start)
	vev.SetEndAt(start.Add(duration))
	vev.SetSummary(ev.Title)
	vev.AddProperty(ical.ComponentPropertyCategories, ev.TypeOrDefault())
	description := strings.TrimSpace(strings.Join(reflow.Lines(ev.Description), "\n"))
	if description != "" {
		vev.SetDescription(description)
	}

	_, err = io.WriteString(w, cal.Serialize())
	return err
}
