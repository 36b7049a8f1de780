// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"gioui.org/grid/axis"
	"gioui.org/grid/border"
	"gioui.org/grid/gridfile"
	"gioui.org/grid/layout"
)

func newBordersCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "borders FILE...",
		Short: "Print the collapsed borders of grids.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.each(cmd.OutOrStdout(), args, func(w io.Writer, g *layout.Grid) error {
				printBorders(w, g.Borders())
				return nil
			})
		},
	}
}

// printBorders writes the vertical borders, then the horizontal
// borders, then the collapsed size of s.
func printBorders(w io.Writer, s *border.Set) {
	list := s.Straight()
	for _, st := range list {
		if st.Axis == axis.Vertical {
			fmt.Fprintf(w, "%s/%s: c=%d, r1=%d, r2=%d\n",
				gridfile.ID(st.Before), gridfile.ID(st.After), st.Pos, st.Span.Start, st.Span.End)
		}
	}
	for _, st := range list {
		if st.Axis == axis.Horizontal {
			fmt.Fprintf(w, "%s/%s: r=%d, c=%d-%d\n",
				gridfile.ID(st.Before), gridfile.ID(st.After), st.Pos, st.Span.Start, st.Span.End)
		}
	}
	res := s.Result()
	fmt.Fprintf(w, "size %dx%d\n", res.Width, res.Height)
	if res.Dropped > 0 {
		fmt.Fprintf(w, "dropped %d\n", res.Dropped)
	}
}

func newMetricsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "metrics FILE...",
		Short: "Print the size constraints of every row and column.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.each(cmd.OutOrStdout(), args, func(w io.Writer, g *layout.Grid) error {
				for _, ax := range axis.Axes {
					m := g.Metrics(ax)
					fmt.Fprintf(w, "%s %v\n", strings.ToLower(ax.String()), m.Total())
					for _, e := range m {
						fmt.Fprintf(w, "  %d: %v\n", e.Pos, e.Value)
					}
				}
				return nil
			})
		},
	}
}

// sizeFlags are the target size of a layout. Zero selects the
// preferred size of the grid.
type sizeFlags struct {
	width, height int
}

func (f *sizeFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.width, "width", 0, "width of the grid, 0 for the preferred width")
	cmd.Flags().IntVar(&f.height, "height", 0, "height of the grid, 0 for the preferred height")
}

// apply lays out g at the target size.
func (f *sizeFlags) apply(g *layout.Grid) layout.Dimensions {
	cs := layout.Exact(g.PrefSize())
	if f.width > 0 {
		cs.Min.X, cs.Max.X = f.width, f.width
	}
	if f.height > 0 {
		cs.Min.Y, cs.Max.Y = f.height, f.height
	}
	dims, _ := g.Layout(cs)
	return dims
}

func newSizesCmd(a *app) *cobra.Command {
	var flags sizeFlags
	cmd := &cobra.Command{
		Use:   "sizes FILE...",
		Short: "Lay out grids and print the bounds of their cells.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.each(cmd.OutOrStdout(), args, func(w io.Writer, g *layout.Grid) error {
				dims := flags.apply(g)
				fmt.Fprintf(w, "size %dx%d\n", dims.Size.X, dims.Size.Y)
				for _, ax := range axis.Axes {
					fmt.Fprintf(w, "%s\n", strings.ToLower(ax.String()))
					for _, s := range g.Sizes(ax) {
						fmt.Fprintf(w, "  %d: %d+%d\n", s.Pos, s.Start, s.Size)
					}
				}
				fmt.Fprintln(w, "cells")
				for _, e := range g.Elements() {
					if !e.Placed() {
						fmt.Fprintf(w, "  %s dropped\n", gridfile.ID(e))
						continue
					}
					fmt.Fprintf(w, "  %s %v\n", gridfile.ID(e), g.Bounds(e))
				}
				return nil
			})
		},
	}
	flags.register(cmd)
	return cmd
}
