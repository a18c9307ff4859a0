// Command geokit is a command-line interface for the geokit coordinate conversions.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newApp().Root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
