// Command tedcli computes, verifies, and benchmarks tree edit
// distances over bracket-notation trees from the command line.
package main

import "os"

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
