package drain

import (
	"errors"
	"fmt"
	"math"
)

// config holds every DrainTree tunable. It is built up by Option
// functions and validated as each is applied, so New returns a
// configuration error immediately rather than letting a bad value
// surface later as a confusing runtime panic.
type config struct {
	maxDepth      int
	maxChildren   int
	minSimilarity float64
	maxClusters   int
	preprocessor  Preprocessor
}

func defaultConfig() config {
	return config{
		maxDepth:      4,
		maxChildren:   100,
		minSimilarity: 0.5,
	}
}

// Option configures a DrainTree at construction time. Options are
// applied in order by New; the first one to report an error aborts
// construction.
type Option func(*config) error

// WithMaxDepth sets the routing depth budget of each per-length
// subtree: routing keys are taken from token positions 1 through n-2 at
// most (and never from a sequence's last position), after which the
// tree forces a leaf. With n of 1 or 2, every sequence of a given
// length lands in one leaf. n must be at least 1.
func WithMaxDepth(n int) Option {
	return func(c *config) error {
		if n < 1 {
			return fmt.Errorf("drain: max depth must be >= 1, got %d", n)
		}
		c.maxDepth = n
		return nil
	}
}

// WithMaxChildren sets the fan-out cap for inner nodes: the number of
// distinct literal routing keys an inner node may hold before further
// distinct keys are redirected through the wildcard child. n must be at
// least 1.
func WithMaxChildren(n int) Option {
	return func(c *config) error {
		if n < 1 {
			return fmt.Errorf("drain: max children must be >= 1, got %d", n)
		}
		c.maxChildren = n
		return nil
	}
}

// WithMinSimilarity sets the approx-similarity threshold at which an
// incoming line joins an existing cluster rather than spawning a new
// one. x must be in [0, 1] and must not be NaN.
func WithMinSimilarity(x float64) Option {
	return func(c *config) error {
		if math.IsNaN(x) || x < 0 || x > 1 {
			return fmt.Errorf("drain: min similarity must be in [0, 1], got %v", x)
		}
		c.minSimilarity = x
		return nil
	}
}

// WithMaxClusters bounds the total number of live clusters across the
// whole tree using an LRU policy, evicting the least-recently-touched
// cluster once the cap is exceeded. Leaf growth is otherwise unbounded,
// so this option exists for callers that need a hard memory ceiling.
// n <= 0 means unbounded (the default).
func WithMaxClusters(n int) Option {
	return func(c *config) error {
		c.maxClusters = n
		return nil
	}
}

// WithPreprocessor installs the Preprocessor used by AddLogLine and
// Lookup. If never called, New installs a minimal preprocessor that
// splits on a single ASCII space only, with no field extraction and no
// token filters.
func WithPreprocessor(p Preprocessor) Option {
	return func(c *config) error {
		if p == nil {
			return errors.New("drain: preprocessor must not be nil")
		}
		c.preprocessor = p
		return nil
	}
}
