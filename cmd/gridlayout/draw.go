// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"image"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"gioui.org/grid/axis"
	"gioui.org/grid/gridfile"
	"gioui.org/grid/layout"
)

func newDrawCmd(a *app) *cobra.Command {
	var flags sizeFlags
	cmd := &cobra.Command{
		Use:   "draw FILE...",
		Short: "Draw grids with one character per unit.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Styles follow the terminal the command writes to.
			re := lipgloss.NewRenderer(cmd.OutOrStdout())
			return a.each(cmd.OutOrStdout(), args, func(w io.Writer, g *layout.Grid) error {
				dims := flags.apply(g)
				c := newCanvas(dims.Size)
				c.drawGrid(g)
				return c.render(w, re)
			})
		},
	}
	flags.register(cmd)
	return cmd
}

// Arms of a border character.
const (
	armUp uint8 = 1 << iota
	armDown
	armLeft
	armRight
)

// glyphs maps the arms of a character to its box drawing rune.
var glyphs = []rune(" ╵╷│╴┘┐┤╶└┌├─┴┬┼")

// canvas is a character grid. Border characters are built from the
// arms of the borders crossing them.
type canvas struct {
	size  image.Point
	arms  []uint8
	label []rune
}

func newCanvas(size image.Point) *canvas {
	n := size.X * size.Y
	return &canvas{
		size:  size,
		arms:  make([]uint8, n),
		label: make([]rune, n),
	}
}

func (c *canvas) drawGrid(g *layout.Grid) {
	s := g.Borders()
	for _, st := range s.Straight() {
		arms := armLeft | armRight
		if st.Axis == axis.Vertical {
			arms = armUp | armDown
		}
		c.fill(g.BorderBounds(st), arms)
	}
	for _, cr := range s.Corners() {
		var arms uint8
		if cr.Up != nil {
			arms |= armUp
		}
		if cr.Down != nil {
			arms |= armDown
		}
		if cr.Left != nil {
			arms |= armLeft
		}
		if cr.Right != nil {
			arms |= armRight
		}
		c.fill(g.CornerBounds(cr), arms)
	}
	for _, e := range g.Elements() {
		c.text(g.Bounds(e), gridfile.ID(e))
	}
}

func (c *canvas) fill(r image.Rectangle, arms uint8) {
	r = r.Intersect(image.Rectangle{Max: c.size})
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c.arms[y*c.size.X+x] |= arms
		}
	}
}

// text writes s on the first line of r, clipped to r.
func (c *canvas) text(r image.Rectangle, s string) {
	r = r.Intersect(image.Rectangle{Max: c.size})
	if r.Empty() {
		return
	}
	x := r.Min.X
	for _, ch := range s {
		if x >= r.Max.X {
			break
		}
		c.label[r.Min.Y*c.size.X+x] = ch
		x++
	}
}

func (c *canvas) render(w io.Writer, re *lipgloss.Renderer) error {
	borderStyle := re.NewStyle().Foreground(lipgloss.Color("#6272A4"))
	labelStyle := re.NewStyle().Bold(true)
	var b strings.Builder
	for y := 0; y < c.size.Y; y++ {
		var run strings.Builder
		runLabel := false
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if runLabel {
				b.WriteString(labelStyle.Render(run.String()))
			} else {
				b.WriteString(borderStyle.Render(run.String()))
			}
			run.Reset()
		}
		for x := 0; x < c.size.X; x++ {
			i := y*c.size.X + x
			ch, isLabel := c.label[i], c.label[i] != 0
			if !isLabel {
				ch = glyphs[c.arms[i]]
			}
			if isLabel != runLabel {
				flush()
				runLabel = isLabel
			}
			run.WriteRune(ch)
		}
		flush()
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}
