// Command fleetctl inspects and exercises the dispatch registries from the
// command line: it scans strategy sources, lists registered types and
// prices trips without running the HTTP service.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
