package drain

import (
	"strconv"
	"strings"
)

// LogCluster is a discovered template: a fixed-length token sequence with
// some positions generalized to Wildcard, plus the number of lines that
// have matched it. Once created, a cluster's template length never
// changes, and a Wildcard position never reverts to a literal — only
// merge may mutate a cluster, and it only ever adds wildcards.
type LogCluster struct {
	template []Token
	matches  uint64

	// id and evicted support the optional bounded-clusters mode (see
	// clusterRegistry); they are unused and zero-valued when no cap is
	// configured.
	id      int
	evicted bool
}

func newLogCluster(tokens []Token, id int) *LogCluster {
	template := make([]Token, len(tokens))
	copy(template, tokens)
	return &LogCluster{template: template, matches: 1, id: id}
}

// Template returns a copy of the cluster's token sequence. Callers must
// not rely on mutating the returned slice to affect the cluster.
func (c *LogCluster) Template() []Token {
	out := make([]Token, len(c.template))
	copy(out, c.template)
	return out
}

// Matches returns the number of lines that have selected this cluster,
// including the line that created it.
func (c *LogCluster) Matches() uint64 {
	return c.matches
}

// similarity scores input against the cluster's template position by
// position. Both template and input must have the same length; this is
// structurally guaranteed by the tree (every leaf holds clusters of one
// length) and is a programming error otherwise.
//
// exact counts positions where input and template agree (including
// wildcard-to-wildcard); approx additionally counts positions where the
// template is already a wildcard. Both are normalized by the template
// length. A cluster compared against its own template scores (1.0, 1.0).
func (c *LogCluster) similarity(input []Token) (exact, approx float64) {
	if len(input) != len(c.template) {
		panic("drain: similarity requires input and template of equal length")
	}
	if len(c.template) == 0 {
		return 1.0, 1.0
	}
	var exactN, approxN int
	for i, tok := range c.template {
		switch {
		case tok == input[i]:
			exactN++
			approxN++
		case tok.Wildcard:
			approxN++
		}
	}
	n := float64(len(c.template))
	return float64(exactN) / n, float64(approxN) / n
}

// merge generalizes the cluster's template to also accept input: every
// position where the template is still a literal and disagrees with
// input becomes Wildcard. Positions already wildcarded are left alone.
// matches is incremented by one.
func (c *LogCluster) merge(input []Token) {
	if len(input) != len(c.template) {
		panic("drain: merge requires input and template of equal length")
	}
	for i, tok := range c.template {
		if !tok.Wildcard && tok != input[i] {
			c.template[i] = WildcardToken
		}
	}
	c.matches++
}

// String renders the cluster as "T1 T2 ... Tn, count [M] ", matching the
// external text contract consumers rely on.
func (c *LogCluster) String() string {
	parts := make([]string, len(c.template))
	for i, tok := range c.template {
		parts[i] = tok.String()
	}
	var b strings.Builder
	b.WriteString(strings.Join(parts, " "))
	b.WriteString(", count [")
	b.WriteString(strconv.FormatUint(c.matches, 10))
	b.WriteString("] ")
	return b.String()
}
