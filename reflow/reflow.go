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

// Package reflow fits free-form text into a fixed grid of characters.
//
// The text is broken into lines at newlines, over-long lines are cut into
// pieces of fixed width, and the result is padded with empty lines above and
// below so that it is vertically centred in a block of fixed height.
// Line breaks do not respect word boundaries.
package reflow

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// newlines maps all accepted newline spellings to a real newline.
// Text typed on a shell command line often contains the escape sequence
// instead of the character itself, sometimes with the backslash doubled.
var newlines = strings.NewReplacer(`\\n`, "\n", `\n`, "\n")

// Block is a block of text lines.
// Blocks returned by [Reflow] have exactly maxLines lines.
type Block []string

// Reflow splits the description into lines of at most maxCols characters
// and pads the result to exactly maxLines lines.
//
// If the description needs more than maxLines lines, a [*TooMuchTextError]
// is returned.
func Reflow(description string, maxCols, maxLines int) (Block, error) {
	if maxCols < 1 || maxLines < 1 {
		return nil, fmt.Errorf("reflow: invalid block size %dx%d", maxCols, maxLines)
	}

	lines := Split(description, maxCols)
	if len(lines) > maxLines {
		return nil, &TooMuchTextError{
			Lines:    len(lines),
			MaxLines: maxLines,
			MaxCols:  maxCols,
		}
	}

	return Pad(lines, maxLines), nil
}

// Split breaks the description into lines and cuts every line which is
// longer than maxCols characters into pieces of exactly maxCols characters,
// with the remainder in the last piece.  No padding is applied.
// If maxCols is less than 1, lines are not cut.
func Split(description string, maxCols int) []string {
	if maxCols < 1 {
		return Lines(description)
	}

	var lines []string
	for _, line := range Lines(description) {
		if utf8.RuneCountInString(line) <= maxCols {
			lines = append(lines, line)
			continue
		}
		rr := []rune(line)
		for len(rr) > maxCols {
			lines = append(lines, string(rr[:maxCols]))
			rr = rr[maxCols:]
		}
		if len(rr) > 0 {
			lines = append(lines, string(rr))
		}
	}
	return lines
}

// Lines splits the description at newlines, without limiting the line
// length.  All accepted newline spellings are recognised, and the text is
// converted to Unicode normalization form C.
func Lines(description string) []string {
	description = norm.NFC.String(description)
	description = newlines.Replace(description)
	return strings.Split(description, "\n")
}

// Pad adds empty lines until the block has n lines.
// An empty line is appended if the current number of lines is odd,
// and prepended otherwise.  Blocks with n or more lines are returned
// unchanged.
func Pad(lines []string, n int) Block {
	res := make(Block, 0, max(n, len(lines)))
	res = append(res, lines...)
	for len(res) < n {
		if len(res)%2 == 1 {
			res = append(res, "")
		} else {
			res = append(Block{""}, res...)
		}
	}
	return res
}

// BottomUp returns the lines of b in reverse order.
// This is the order in which lines are placed when y coordinates grow
// upwards from the baseline of the bottom line.
func (b Block) BottomUp() []string {
	res := make([]string, len(b))
	for i, line := range b {
		res[len(b)-1-i] = line
	}
	return res
}

// Trim returns b without the leading and trailing empty lines.
func (b Block) Trim() []string {
	start, end := 0, len(b)
	for start < end && b[start] == "" {
		start++
	}
	for end > start && b[end-1] == "" {
		end--
	}
	return b[start:end]
}

// String returns the lines of b, joined by newlines.
func (b Block) String() string {
	return strings.Join(b, "\n")
}

// TooMuchTextError is returned by [Reflow] if the description does not fit
// into the block.
type TooMuchTextError struct {
	Lines    int // number of lines needed
	MaxLines int
	MaxCols  int
}

func (err *TooMuchTextError) Error() string {
	return fmt.Sprintf("too much text: %d lines of %d columns needed, only %d available (%d too many)",
		err.Lines, err.MaxCols, err.MaxLines, err.Lines-err.MaxLines)
}
