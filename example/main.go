// Command example demonstrates DrainTree against a handful of log
// lines, exercising AddLogLine, Lookup, and Clusters.
package main

import (
	"fmt"

	"github.com/drainmine/drain"
)

func main() {
	tree, err := drain.New()
	if err != nil {
		panic(err)
	}

	for _, line := range []string{
		"connected to 10.0.0.1",
		"connected to 10.0.0.2",
		"connected to 10.0.0.3",
		"Hex number 0xDEADBEAF",
		"Hex number 0x10000",
		"user davidoh logged in",
		"user eranr logged in",
	} {
		tree.AddLogLine(line)
	}

	for _, cluster := range tree.Clusters() {
		fmt.Println(cluster.String())
	}

	// Lookup uses strict routing keys (no numeric auto-wildcard). The
	// username sits at token position 1, which is a routing key, so a
	// username never seen during ingestion has no child to descend into
	// and this lookup prints "no match".
	if cluster, ok := tree.Lookup("user faceair logged in"); ok {
		fmt.Printf("cluster matched: %s\n", cluster.String())
	} else {
		fmt.Println("no match")
	}
}
