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
	"strconv"

	"gopkg.in/yaml.v3"
)

// Color is an RGB color with components in the range [0, 1].
// In YAML files, colors are written as a sequence of three numbers.
type Color struct {
	R, G, B float64
}

func (c Color) valid() bool {
	for _, x := range []float64{c.R, c.G, c.B} {
		if !(x >= 0 && x <= 1) {
			return false
		}
	}
	return true
}

func (c Color) String() string {
	return fmt.Sprintf("rgb(%g, %g, %g)", c.R, c.G, c.B)
}

// UnmarshalYAML implements the [yaml.Unmarshaler] interface.
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	var rgb []float64
	err := value.Decode(&rgb)
	if err != nil {
		return err
	}
	if len(rgb) != 3 {
		return fmt.Errorf("line %d: color needs 3 components, got %d",
			value.Line, len(rgb))
	}
	*c = Color{R: rgb[0], G: rgb[1], B: rgb[2]}
	return nil
}

// MarshalYAML implements the [yaml.Marshaler] interface.
func (c Color) MarshalYAML() (any, error) {
	node := &yaml.Node{
		Kind:  yaml.SequenceNode,
		Style: yaml.FlowStyle,
	}
	for _, x := range []float64{c.R, c.G, c.B} {
		node.Content = append(node.Content, &yaml.Node{
			Kind:  yaml.ScalarNode,
			Value: strconv.FormatFloat(x, 'g', -1, 64),
		})
	}
	return node, nil
}
