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

// Ascii-flyer generates small double-sided flyers for events at the
// hackerspace.  Each PDF page holds a grid of flyers, with an ASCII art
// invitation on the front pages and the event description on the back.
//
// Usage:
//
//	ascii-flyer --title "Lötworkshop" --datetime "24.12.2026 19:00" \
//		--description "Bring your own\nsoldering iron" --pages 2
//
// The output is written to out/<YYYY-MM-DD>-flyer.pdf.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
