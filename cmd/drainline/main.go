// Command drainline reads log lines (from a file or stdin), mines
// templates with drain.DrainTree, and prints the discovered clusters.
// File/stdin reading and model serialization live here, outside the
// clustering engine itself: flag-parsed config, standard library
// logging, no cobra/pflag since nothing else in this module needs a
// command tree.
package main

import (
	"bufio"
	"flag"
	"log"
	"os"

	"github.com/drainmine/drain"
	"github.com/drainmine/drain/pkg/modeldump"
)

func main() {
	maxDepth := flag.Int("max-depth", 4, "maximum prefix-tree routing depth")
	maxChildren := flag.Int("max-children", 100, "maximum fan-out per inner node before wildcard overflow")
	minSimilarity := flag.Float64("min-similarity", 0.5, "minimum approx similarity to join an existing cluster")
	outputModel := flag.String("output-model", "", "if set, write a JSON cluster snapshot to this path")
	flag.Parse()

	tree, err := drain.New(
		drain.WithMaxDepth(*maxDepth),
		drain.WithMaxChildren(*maxChildren),
		drain.WithMinSimilarity(*minSimilarity),
	)
	if err != nil {
		log.Fatalf("drainline: invalid configuration: %v", err)
	}

	in := os.Stdin
	if args := flag.Args(); len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			log.Fatalf("drainline: opening %s: %v", args[0], err)
		}
		defer f.Close()
		in = f
	}

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		tree.AddLogLine(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("drainline: reading input: %v", err)
	}

	for _, c := range tree.Clusters() {
		os.Stdout.WriteString(c.String())
		os.Stdout.WriteString("\n")
	}

	if *outputModel != "" {
		f, err := os.Create(*outputModel)
		if err != nil {
			log.Fatalf("drainline: creating %s: %v", *outputModel, err)
		}
		defer f.Close()
		if err := modeldump.Write(f, tree); err != nil {
			log.Fatalf("drainline: writing model dump: %v", err)
		}
	}
}
