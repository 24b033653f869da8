// Command boing draws a faceted red and white checkered ball as an SVG.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "boing:", err)
		os.Exit(1)
	}
}
