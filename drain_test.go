package drain

import "testing"

func mustTree(t *testing.T, opts ...Option) *DrainTree {
	t.Helper()
	tree, err := New(opts...)
	if err != nil {
		t.Fatalf("New(...) error = %v", err)
	}
	return tree
}

func templateString(t *testing.T, c *LogCluster) string {
	t.Helper()
	toks := c.Template()
	s := ""
	for i, tok := range toks {
		if i > 0 {
			s += " "
		}
		s += tok.String()
	}
	return s
}

func TestE1IdenticalLinesMergeWithoutGeneralizing(t *testing.T) {
	tree := mustTree(t)
	tree.AddLogLine("a b c d e")
	tree.AddLogLine("a b c d e")

	clusters := tree.Clusters()
	if len(clusters) != 1 {
		t.Fatalf("expected 1 cluster, got %d", len(clusters))
	}
	if got, want := templateString(t, clusters[0]), "a b c d e"; got != want {
		t.Errorf("template = %q, want %q", got, want)
	}
	if clusters[0].Matches() != 2 {
		t.Errorf("matches = %d, want 2", clusters[0].Matches())
	}
}

func TestE2LastTokenDifferenceGeneralizes(t *testing.T) {
	tree := mustTree(t)
	tree.AddLogLine("a b c d e")
	tree.AddLogLine("a b c d f")

	clusters := tree.Clusters()
	if len(clusters) != 1 {
		t.Fatalf("expected 1 cluster, got %d", len(clusters))
	}
	if got, want := templateString(t, clusters[0]), "a b c d <*>"; got != want {
		t.Errorf("template = %q, want %q", got, want)
	}
	if clusters[0].Matches() != 2 {
		t.Errorf("matches = %d, want 2", clusters[0].Matches())
	}
}

func TestE3MiddleTokenDifferenceGeneralizes(t *testing.T) {
	tree := mustTree(t, WithMinSimilarity(0.5))
	tree.AddLogLine("a b c d e")
	tree.AddLogLine("a b c x e")

	clusters := tree.Clusters()
	if len(clusters) != 1 {
		t.Fatalf("expected 1 cluster, got %d", len(clusters))
	}
	if got, want := templateString(t, clusters[0]), "a b c <*> e"; got != want {
		t.Errorf("template = %q, want %q", got, want)
	}
	if clusters[0].Matches() != 2 {
		t.Errorf("matches = %d, want 2", clusters[0].Matches())
	}
}

func TestE4DissimilarLinesCreateSeparateClusters(t *testing.T) {
	tree := mustTree(t, WithMinSimilarity(0.5))
	tree.AddLogLine("a b c d e")
	tree.AddLogLine("x y z w v")

	clusters := tree.Clusters()
	if len(clusters) != 2 {
		t.Fatalf("expected 2 clusters, got %d", len(clusters))
	}
	for _, c := range clusters {
		if c.Matches() != 1 {
			t.Errorf("matches = %d, want 1", c.Matches())
		}
	}
}

func TestE5NumericTokensAutoWildcardThenMerge(t *testing.T) {
	tree := mustTree(t)
	tree.AddLogLine("a 1 c d e")
	tree.AddLogLine("a 2 c d e")

	clusters := tree.Clusters()
	if len(clusters) != 1 {
		t.Fatalf("expected 1 cluster, got %d", len(clusters))
	}
	if got, want := templateString(t, clusters[0]), "a <*> c d e"; got != want {
		t.Errorf("template = %q, want %q", got, want)
	}
	if clusters[0].Matches() != 2 {
		t.Errorf("matches = %d, want 2", clusters[0].Matches())
	}
}

func TestE6FanOutOverflowsThroughWildcard(t *testing.T) {
	tree := mustTree(t, WithMaxChildren(2))
	tree.AddLogLine("p a x y z")
	tree.AddLogLine("p b x y z")
	tree.AddLogLine("p c x y z")

	clusters := tree.Clusters()
	if len(clusters) != 3 {
		t.Fatalf("expected 3 clusters, got %d", len(clusters))
	}
}

func TestAddLogLineIgnoresBlankLines(t *testing.T) {
	tree := mustTree(t)
	tree.AddLogLine("   ")
	if len(tree.Clusters()) != 0 {
		t.Error("a blank line must not create a cluster")
	}
}

func TestRepeatedLineKMatchesOneCluster(t *testing.T) {
	tree := mustTree(t)
	for i := 0; i < 5; i++ {
		tree.AddLogLine("steady state line here")
	}
	clusters := tree.Clusters()
	if len(clusters) != 1 {
		t.Fatalf("expected 1 cluster, got %d", len(clusters))
	}
	if clusters[0].Matches() != 5 {
		t.Errorf("matches = %d, want 5", clusters[0].Matches())
	}
}

func TestLookupRoundTripsWhenRoutingKeysMatch(t *testing.T) {
	tree := mustTree(t)
	tree.AddLogLine("connected to host")

	c, ok := tree.Lookup("connected to host")
	if !ok {
		t.Fatal("expected a lookup hit for an identical, already-ingested line")
	}
	if got, want := templateString(t, c), "connected to host"; got != want {
		t.Errorf("template = %q, want %q", got, want)
	}
}

func TestLookupMissForUnseenLength(t *testing.T) {
	tree := mustTree(t)
	tree.AddLogLine("a b c")
	if _, ok := tree.Lookup("a b c d e f g"); ok {
		t.Error("expected a lookup miss for a never-seen token count")
	}
}

func TestLookupDoesNotMutateTree(t *testing.T) {
	tree := mustTree(t)
	tree.AddLogLine("a b c d e")
	before := tree.Clusters()[0].Matches()

	tree.Lookup("a b c d e")
	tree.Lookup("a b c d x")

	after := tree.Clusters()[0].Matches()
	if before != after {
		t.Errorf("Lookup must not mutate match counts: before=%d after=%d", before, after)
	}
	if len(tree.Clusters()) != 1 {
		t.Error("Lookup must never create a new cluster")
	}
}

func TestBuilderRejectsInvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
	}{
		{"zero max depth", WithMaxDepth(0)},
		{"negative max depth", WithMaxDepth(-1)},
		{"zero max children", WithMaxChildren(0)},
		{"similarity below zero", WithMinSimilarity(-0.1)},
		{"similarity above one", WithMinSimilarity(1.1)},
		{"nil preprocessor", WithPreprocessor(nil)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.opt); err == nil {
				t.Error("expected a configuration error, got nil")
			}
		})
	}
}

func TestBuilderDefaults(t *testing.T) {
	tree := mustTree(t)
	if tree.cfg.maxDepth != 4 {
		t.Errorf("maxDepth = %d, want 4", tree.cfg.maxDepth)
	}
	if tree.cfg.maxChildren != 100 {
		t.Errorf("maxChildren = %d, want 100", tree.cfg.maxChildren)
	}
	if tree.cfg.minSimilarity != 0.5 {
		t.Errorf("minSimilarity = %v, want 0.5", tree.cfg.minSimilarity)
	}
}

func TestWithMaxClustersEvictsLeastRecentlyTouched(t *testing.T) {
	tree := mustTree(t, WithMaxClusters(2), WithMinSimilarity(0.9))

	tree.AddLogLine("alpha one two three")
	tree.AddLogLine("beta four five six")
	// A third, sufficiently dissimilar cluster should evict "alpha"'s,
	// since it is the least recently touched.
	tree.AddLogLine("gamma seven eight nine")

	if len(tree.Clusters()) > 2 {
		t.Fatalf("expected at most 2 live clusters, got %d", len(tree.Clusters()))
	}
	if _, ok := tree.Lookup("alpha one two three"); ok {
		t.Error("expected the least-recently-touched cluster to have been evicted")
	}
	if _, ok := tree.Lookup("gamma seven eight nine"); !ok {
		t.Error("expected the most recent cluster to still be live")
	}
}
