package codegen

import "strings"

// Trie merges accessor chains across decision-tree leaves so shared
// prefixes are computed once. Each root-to-node walk spells one
// previously inserted chain prefix; sibling nodes are never the same
// operation. A trie lives for exactly one compilation unit and only
// grows — there is no deletion or rebalancing.
type Trie struct {
	children []*trieNode
}

type trieNode struct {
	op       Accessor
	children []*trieNode
}

// NewTrie returns an empty trie.
func NewTrie() *Trie {
	return &Trie{}
}

// Insert records the chain and returns the suffix that was not already
// present: the portion the caller still has to lower into fresh
// bindings. A fully known chain yields the empty suffix; a chain with
// nothing in common with previous insertions comes back unchanged.
func (t *Trie) Insert(seq Accessors) Accessors {
	return Accessors{ops: insertOps(&t.children, seq.ops)}
}

func insertOps(children *[]*trieNode, ops []Accessor) []Accessor {
	if len(ops) == 0 {
		return nil
	}

	for _, child := range *children {
		if ops[0].SameOp(child.op) {
			return insertOps(&child.children, ops[1:])
		}
	}

	// Nothing matched: graft the whole remainder as a fresh branch and
	// hand it back for the caller to generate.
	*children = append(*children, newChain(ops))
	return ops
}

// newChain builds a single-branch subtrie from a chain, innermost node
// first, so the chain's first operation becomes the branch root.
func newChain(ops []Accessor) *trieNode {
	var prev *trieNode
	for i := len(ops) - 1; i >= 0; i-- {
		node := &trieNode{op: ops[i]}
		if prev != nil {
			node.children = []*trieNode{prev}
		}
		prev = node
	}
	return prev
}

// Dump returns an indented rendering of the trie, one operation tag per
// line, children indented under their parent.
func (t *Trie) Dump() string {
	var sb strings.Builder
	for _, child := range t.children {
		dumpNode(&sb, child, 0)
	}
	return sb.String()
}

func dumpNode(sb *strings.Builder, node *trieNode, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))
	sb.WriteString(node.op.Tag())
	sb.WriteString("\n")
	for _, child := range node.children {
		dumpNode(sb, child, depth+1)
	}
}
