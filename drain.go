package drain

import "strings"

// Preprocessor is the narrow external contract the core consumes: turn
// a raw log line into an ordered token sequence. The core never
// inspects how a Preprocessor does this — it is an external
// collaborator the consumer wires in, not part of the clustering
// engine.
type Preprocessor interface {
	Tokenize(line string) []Token
}

// spaceSplitPreprocessor is the minimal Preprocessor installed when the
// caller does not provide one: split on a single ASCII space, no field
// extraction, no filters.
type spaceSplitPreprocessor struct{}

func (spaceSplitPreprocessor) Tokenize(line string) []Token {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	parts := strings.Split(line, " ")
	tokens := make([]Token, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		tokens = append(tokens, NewLiteral(p))
	}
	return tokens
}

// DrainTree is the public entry point: configuration, ingestion,
// lookup, and enumeration. All state is owned by the instance; there is
// no global mutable state and no internal concurrency control. Callers
// needing concurrent ingestion must provide their own exclusive lock
// around a DrainTree.
type DrainTree struct {
	cfg      config
	tree     *PrefixTree
	registry *clusterRegistry
	nextID   int
}

// New builds a DrainTree from the given options, applied in order.
// Defaults: maxDepth=4, maxChildren=100, minSimilarity=0.5, and a
// space-splitting Preprocessor with no filters.
func New(opts ...Option) (*DrainTree, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}
	if cfg.preprocessor == nil {
		cfg.preprocessor = spaceSplitPreprocessor{}
	}
	return &DrainTree{
		cfg:      cfg,
		tree:     newPrefixTree(),
		registry: newClusterRegistry(cfg.maxClusters),
	}, nil
}

// AddLogLine tokenizes line with the configured Preprocessor and
// inserts or merges it into the tree, mutating shared state in place.
// If the Preprocessor returns an empty token sequence, this is a silent
// no-op, not an error.
func (d *DrainTree) AddLogLine(line string) {
	tokens := d.cfg.preprocessor.Tokenize(line)
	if len(tokens) == 0 {
		return
	}
	d.tree.insert(tokens, d.cfg.maxDepth, d.cfg.maxChildren, d.cfg.minSimilarity, d.newCluster, d.registry)
}

func (d *DrainTree) newCluster(tokens []Token) *LogCluster {
	d.nextID++
	return newLogCluster(tokens, d.nextID)
}

// Lookup tokenizes line with the configured Preprocessor and returns
// the best-matching cluster without mutating the tree, or (nil, false)
// if none is reachable. Lookup uses strict routing: it will miss a
// line that was routed through numeric auto-wildcard or fan-out
// overflow during ingestion unless the Preprocessor produces the same
// routing keys both times. This asymmetry is intentional, not a bug.
func (d *DrainTree) Lookup(line string) (*LogCluster, bool) {
	tokens := d.cfg.preprocessor.Tokenize(line)
	if len(tokens) == 0 {
		return nil, false
	}
	c := d.tree.lookup(tokens)
	if c == nil || c.evicted {
		return nil, false
	}
	return c, true
}

// Clusters returns every live cluster in the tree, in unspecified
// order.
func (d *DrainTree) Clusters() []*LogCluster {
	return d.tree.allClusters()
}
