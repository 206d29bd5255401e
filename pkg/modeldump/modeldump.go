// Package modeldump renders a read-only snapshot of a DrainTree's
// discovered clusters to JSON, for reporting and downstream tooling.
//
// This is one-way: the core has no "load a tree" operation (clusters
// and routing decisions are inseparable once made), so a dump is a
// report, not a resumable checkpoint.
package modeldump

import (
	"encoding/json"
	"io"

	"github.com/drainmine/drain"
)

// Cluster is the JSON-friendly projection of a drain.LogCluster.
type Cluster struct {
	Template []string `json:"template"`
	Matches  uint64   `json:"matches"`
}

// Snapshot is the top-level dumped document.
type Snapshot struct {
	Clusters []Cluster `json:"clusters"`
}

// Build projects every live cluster in tree into a Snapshot.
func Build(tree *drain.DrainTree) Snapshot {
	clusters := tree.Clusters()
	out := Snapshot{Clusters: make([]Cluster, 0, len(clusters))}
	for _, c := range clusters {
		tokens := c.Template()
		rendered := make([]string, len(tokens))
		for i, t := range tokens {
			rendered[i] = t.String()
		}
		out.Clusters = append(out.Clusters, Cluster{
			Template: rendered,
			Matches:  c.Matches(),
		})
	}
	return out
}

// Write encodes a Snapshot of tree to w as indented JSON.
func Write(w io.Writer, tree *drain.DrainTree) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(Build(tree))
}
