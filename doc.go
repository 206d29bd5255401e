// Package drain implements the Drain online log-template mining
// algorithm: given a stream of semi-structured log lines, it
// incrementally discovers a small set of log templates (token sequences
// with wildcards in variable positions) such that every ingested line is
// assigned to exactly one template cluster.
//
// The tree is a per-length prefix trie of fixed depth. Insertion and
// lookup are both O(depth + leaf size); there is no background work, no
// re-clustering pass, and no concurrency control — callers that ingest
// from multiple goroutines must guard a DrainTree with their own lock.
package drain
