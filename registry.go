package drain

import "github.com/hashicorp/golang-lru/simplelru"

// clusterRegistry is an optional, non-core extension: a bounded
// cluster cap layered on top of the clustering engine. When the
// DrainTree is built with WithMaxClusters(n), every newly created
// cluster is tracked here; once more than n clusters are live, the
// least-recently-touched one is evicted and marked dead. Dead clusters
// are filtered out of bestMatch and lazily swept out of their
// LeafBucket the next time that bucket creates a new cluster.
//
// With no cap configured (the default), the registry degrades to a
// no-op and cluster growth is bounded only by minSimilarity.
type clusterRegistry struct {
	lru     simplelru.LRUCache
	bounded bool
}

func newClusterRegistry(maxClusters int) *clusterRegistry {
	if maxClusters <= 0 {
		return &clusterRegistry{}
	}
	r := &clusterRegistry{bounded: true}
	lru, err := simplelru.NewLRU(maxClusters, func(_ interface{}, value interface{}) {
		value.(*LogCluster).evicted = true
	})
	if err != nil {
		// maxClusters > 0 was checked above; NewLRU only fails for a
		// non-positive size, which cannot reach here.
		panic("drain: invalid cluster registry size")
	}
	r.lru = lru
	return r
}

// track registers a freshly created cluster, possibly evicting another.
func (r *clusterRegistry) track(c *LogCluster) {
	if !r.bounded {
		return
	}
	r.lru.Add(c.id, c)
}

// touch refreshes a cluster's recency after it absorbs a matching line.
func (r *clusterRegistry) touch(c *LogCluster) {
	if !r.bounded {
		return
	}
	r.lru.Get(c.id)
}
