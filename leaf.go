package drain

import "math"

// LeafBucket is the unordered bag of clusters living at one leaf of the
// prefix tree. Every cluster in a bucket has the same template length;
// that invariant is enforced structurally by the tree, never checked
// here. Bucket size is unbounded unless the owning DrainTree was built
// with WithMaxClusters, in which case dead (evicted) clusters are swept
// out lazily the next time this bucket creates a new cluster.
type LeafBucket struct {
	clusters []*LogCluster
}

// bestMatch scans every live cluster and returns the index of the one
// with the highest (exact, approx) score, exact first. Ties break on
// first occurrence. NaN scores (never produced by similarity for a
// non-empty template, but guarded against defensively) are never
// considered an improvement over the current best.
func (b *LeafBucket) bestMatch(input []Token) (idx int, exact, approx float64, ok bool) {
	best := -1
	var bestExact, bestApprox float64
	for i, c := range b.clusters {
		if c.evicted {
			continue
		}
		e, a := c.similarity(input)
		if best == -1 || greaterPair(e, a, bestExact, bestApprox) {
			best, bestExact, bestApprox = i, e, a
		}
	}
	if best == -1 {
		return 0, 0, 0, false
	}
	return best, bestExact, bestApprox, true
}

// greaterPair reports whether (e, a) strictly improves on (bestE, bestA)
// under lexicographic order (exact first, approx tiebreak). A candidate
// with a NaN exact or approx score never displaces the current best.
// When the current best has a NaN exact score, a candidate displaces
// it only if its approx score is greater than the best's approx score.
func greaterPair(e, a, bestE, bestA float64) bool {
	if math.IsNaN(e) {
		return false
	}
	if e > bestE {
		return true
	}
	if e < bestE {
		return false
	}
	if math.IsNaN(a) {
		return false
	}
	return a > bestA
}

// insertOrMerge implements the insert-or-generalize decision: join the
// best-matching cluster if its approx score clears minSimilarity,
// otherwise mint a new one. newCluster is invoked only when a new
// cluster must be created; it is responsible for minting a fresh id.
// reg may be a zero-value, unbounded clusterRegistry when no cap is
// configured.
func (b *LeafBucket) insertOrMerge(input []Token, minSimilarity float64, newCluster func([]Token) *LogCluster, reg *clusterRegistry) *LogCluster {
	idx, _, approx, ok := b.bestMatch(input)
	if !ok || approx < minSimilarity {
		b.sweepDead()
		c := newCluster(input)
		b.clusters = append(b.clusters, c)
		reg.track(c)
		return c
	}
	c := b.clusters[idx]
	c.merge(input)
	reg.touch(c)
	return c
}

// sweepDead drops evicted clusters from the bucket, mirroring the
// teacher's "clean up stale clusters before adding a new one" step.
func (b *LeafBucket) sweepDead() {
	live := b.clusters[:0]
	for _, c := range b.clusters {
		if !c.evicted {
			live = append(live, c)
		}
	}
	b.clusters = live
}
