// SPDX-License-Identifier: Unlicense OR MIT

/*
Package gridfile reads grid descriptions from YAML.

A grid file lists the rows of a grid, each a list of cells:

	border: 1
	defaults:
	  h: [4, 8, inf]
	  v: 1
	rows:
	  - [{id: a}, {id: b, rows: 2}]
	  - [{id: c, h: [10, 20, 40]}]
	requests:
	  columns: {0: 30}

A size is either a single number, a rigid size, or a [min, pref, max]
list where max may be "inf". The identity key sets the border
identity of a cell; cells without one are identical only to
themselves.
*/
package gridfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"gioui.org/grid/axis"
	"gioui.org/grid/layout"
	"gioui.org/grid/topology"
)

// File is a decoded grid file.
type File struct {
	Border   int      `yaml:"border"`
	Defaults Sizes    `yaml:"defaults"`
	Rows     [][]Cell `yaml:"rows"`
	Requests Requests `yaml:"requests"`
}

// Sizes holds the size triples of both axes.
type Sizes struct {
	H *Triple `yaml:"h"`
	V *Triple `yaml:"v"`
}

// Requests maps logical columns and rows to percentages of their
// axis.
type Requests struct {
	Columns map[int]int `yaml:"columns"`
	Rows    map[int]int `yaml:"rows"`
}

// Cell is a cell of a grid file. It implements topology.Cell.
type Cell struct {
	ID       string `yaml:"id"`
	Columns  *int   `yaml:"columns"`
	RowSpan  *int   `yaml:"rows"`
	Identity string `yaml:"identity"`
	Sizes    `yaml:",inline"`

	defaults *Sizes
}

// Triple is a size triple decoded from a number, "inf" or a list of
// three of them.
type Triple axis.Value

// ErrFormat is returned for malformed grid files.
var ErrFormat = errors.New("gridfile: malformed grid")

// Parse decodes a grid file.
func Parse(data []byte) (*File, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	f := new(File)
	if err := dec.Decode(f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("gridfile: %w", err)
	}
	if f.Border < 0 {
		return nil, fmt.Errorf("%w: negative border %d", ErrFormat, f.Border)
	}
	for r := range f.Rows {
		for i := range f.Rows[r] {
			f.Rows[r][i].defaults = &f.Defaults
		}
	}
	return f, nil
}

// Load reads and decodes the grid file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("gridfile: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Cells returns the rows of f as topology cells.
func (f *File) Cells() [][]topology.Cell {
	rows := make([][]topology.Cell, len(f.Rows))
	for r := range f.Rows {
		rows[r] = make([]topology.Cell, len(f.Rows[r]))
		for i := range f.Rows[r] {
			rows[r][i] = &f.Rows[r][i]
		}
	}
	return rows
}

// Apply configures g with the border width, rows and size requests
// of f.
func (f *File) Apply(g *layout.Grid) error {
	g.BorderWidth = f.Border
	if err := g.SetRows(f.Cells()); err != nil {
		return fmt.Errorf("gridfile: %w", err)
	}
	for index, pct := range f.Requests.Columns {
		g.RequestSize(axis.Horizontal, index, pct)
	}
	for index, pct := range f.Requests.Rows {
		g.RequestSize(axis.Vertical, index, pct)
	}
	return nil
}

// Span implements topology.Cell. Missing spans default to 1.
func (c *Cell) Span() (columns, rows int) {
	columns, rows = 1, 1
	if c.Columns != nil {
		columns = *c.Columns
	}
	if c.RowSpan != nil {
		rows = *c.RowSpan
	}
	return columns, rows
}

// Metrics implements topology.Cell. A missing triple falls back to
// the defaults of the file, then to zero.
func (c *Cell) Metrics(a axis.Axis) axis.Value {
	if t := c.Sizes.get(a); t != nil {
		return axis.Value(*t)
	}
	if c.defaults != nil {
		if t := c.defaults.get(a); t != nil {
			return axis.Value(*t)
		}
	}
	return axis.Value{}
}

func (s *Sizes) get(a axis.Axis) *Triple {
	if a == axis.Horizontal {
		return s.H
	}
	return s.V
}

// BorderIdentity implements topology.Identifier. Cells without an
// identity are only identical to themselves.
func (c *Cell) BorderIdentity() any {
	if c.Identity == "" {
		return c
	}
	return c.Identity
}

func (c *Cell) String() string {
	return c.ID
}

// ID returns the id of the cell of e, or "-" for a nil element.
func ID(e *topology.Element) string {
	if e == nil {
		return "-"
	}
	if c, ok := e.Cell.(*Cell); ok && c.ID != "" {
		return c.ID
	}
	return fmt.Sprintf("%d.%d", e.Row, e.Index)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (t *Triple) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.ScalarNode:
		v, err := parseSize(n)
		if err != nil {
			return err
		}
		if v == axis.Infinite {
			*t = Triple(axis.Stretch(0, 0))
		} else {
			*t = Triple(axis.Fixed(v))
		}
		return nil
	case yaml.SequenceNode:
		if len(n.Content) != 3 {
			return fmt.Errorf("%w: line %d: want [min, pref, max], got %d sizes", ErrFormat, n.Line, len(n.Content))
		}
		var vs [3]int
		for i, c := range n.Content {
			v, err := parseSize(c)
			if err != nil {
				return err
			}
			vs[i] = v
		}
		*t = Triple(axis.New(vs[0], vs[1], vs[2]))
		return nil
	default:
		return fmt.Errorf("%w: line %d: size must be a number or a list", ErrFormat, n.Line)
	}
}

func parseSize(n *yaml.Node) (int, error) {
	if n.Kind != yaml.ScalarNode {
		return 0, fmt.Errorf("%w: line %d: size must be a number", ErrFormat, n.Line)
	}
	if n.Value == "inf" {
		return axis.Infinite, nil
	}
	v, err := strconv.Atoi(n.Value)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%w: line %d: invalid size %q", ErrFormat, n.Line, n.Value)
	}
	return v, nil
}
