package drain

// node is the tree's sum type: every node is either an inner routing
// node or a leaf bucket. Go has no enum-with-payload, so this is
// expressed as a small sealed interface with two implementations and a
// type switch at each call site — the idiomatic stand-in for a tagged
// variant, not subclassing: neither type knows about the other, and
// there is no shared behavior to inherit.
type node interface {
	isNode()
}

// innerNode routes by token at a fixed depth. children is keyed by
// Token, including WildcardToken as both a genuine routing key (for
// auto-wildcarded or already-wildcard input tokens) and the fan-out
// overflow bucket once len(children) reaches the configured cap.
//
// leaf is the bucket this node terminates into once routing reaches
// its depth budget, set the first time a sequence stops here. A node
// is either a router (leaf nil, children populated as descents occur)
// or a terminus (leaf set, children always empty) — insert never lets
// a node become both, so the two stay mutually exclusive for the
// lifetime of the tree.
type innerNode struct {
	children map[Token]*innerNode
	leaf     *leafNode
	depth    int
}

func newInnerNode(depth int) *innerNode {
	return &innerNode{children: make(map[Token]*innerNode), depth: depth}
}

func (*innerNode) isNode() {}

// leafNode wraps the bucket of clusters living at this position in the
// tree. All clusters in a bucket share the same template length, which
// is guaranteed structurally: a leaf is only ever reached by descending
// from a single length-keyed root.
type leafNode struct {
	bucket *LeafBucket
}

func newLeafNode() *leafNode {
	return &leafNode{bucket: &LeafBucket{}}
}

func (*leafNode) isNode() {}
