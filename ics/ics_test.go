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

package ics

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	ical "github.com/arran4/golang-ical"

	flyer "github.com/flipdot/ascii-flyers"
	"github.com/flipdot/ascii-flyers/invite"
)

func TestWrite(t *testing.T) {
	ev := &flyer.Event{
		Title:       "Lockpicking",
		Description: `Bring your own locks\nno lockpicks needed`,
		DateTime:    "2024-03-01 18:30",
	}
	buf := &bytes.Buffer{}
	err := Write(buf, ev, &Options{Location: time.UTC})
	if err != nil {
		t.Fatal(err)
	}

	cal, err := ical.ParseCalendar(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	events := cal.Events()
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	vev := events[0]

	if p := vev.GetProperty(ical.ComponentPropertySummary); p == nil || p.Value != "Lockpicking" {
		t.Errorf("wrong summary %v", p)
	}
	if p := vev.GetProperty(ical.ComponentPropertyCategories); p == nil || p.Value != "Workshop" {
		t.Errorf("wrong categories %v", p)
	}
	start := time.Date(2024, 3, 1, 18, 30, 0, 0, time.UTC)
	if p := vev.GetProperty(ical.ComponentPropertyUniqueId); p == nil || p.Value != UID("Lockpicking", start) {
		t.Errorf("wrong UID %v", p)
	}
	if !strings.Contains(buf.String(), "DTSTART") {
		t.Error("no start time in calendar")
	}
}

func TestUIDStable(t *testing.T) {
	start := time.Date(2024, 3, 1, 18, 30, 0, 0, time.UTC)
	a := UID("Lockpicking", start)
	b := UID("Lockpicking", start.In(time.FixedZone("CET", 3600)))
	if a != b {
		t.Errorf("UID depends on time zone: %s != %s", a, b)
	}
	if c := UID("Lockpicking", start.Add(time.Hour)); c == a {
		t.Error("UID does not depend on the start time")
	}
	if d := UID("Soldering", start); d == a {
		t.Error("UID does not depend on the title")
	}
}

func TestWriteBadDate(t *testing.T) {
	ev := &flyer.Event{Title: "x", DateTime: "flipdot"}
	err := Write(&bytes.Buffer{}, ev, nil)
	var dtErr *invite.DateTimeError
	if !errors.As(err, &dtErr) {
		t.Errorf("expected DateTimeError, got %v", err)
	}
}
