// Command almanac finds the lowest location reachable from the seeds of an almanac.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
