// SPDX-License-Identifier: Unlicense OR MIT

// Command gridlayout inspects grid files: the collapsed borders, the
// metrics and sizes of both axes, and a drawing of the laid out grid.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
