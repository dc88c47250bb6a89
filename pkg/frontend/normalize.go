package frontend

import (
	"github.com/leapstack-labs/sqlfront/pkg/ast"
	"github.com/leapstack-labs/sqlfront/pkg/parser"
	"github.com/leapstack-labs/sqlfront/pkg/token"
)

// Tree normalization: three steps over the raw tree, in order.
//
//  1. Root selection strips the synthetic wrapper nodes the grammar puts
//     above the real parse root.
//  2. Boundary resolution gives every node a token span before any AST
//     node exists, since text-span queries depend on correct boundaries.
//  3. Post-order construction builds the immutable AST bottom-up, with
//     every node holding the one shared token stream reference.

// normalize converts a raw parse tree into the canonical AST.
func normalize(root *parser.RawNode, stream *token.Stream) *ast.Node {
	root = selectRoot(root)
	resolveBoundaries(root)
	return build(root, stream)
}

// selectRoot descends through token-less wrapper nodes via their first
// child until it reaches a node that carries a token or has no children.
func selectRoot(n *parser.RawNode) *parser.RawNode {
	for n.Token == nil && len(n.Children) > 0 {
		n = n.Children[0]
	}
	return n
}

// resolveBoundaries fills in unset start/stop indices depth-first: a node
// without a directly matched span takes the union of its descendants'
// spans (and its own token index, when the token is real).
func resolveBoundaries(n *parser.RawNode) {
	for _, c := range n.Children {
		resolveBoundaries(c)
	}
	if n.Start >= 0 && n.Stop >= 0 {
		return
	}

	start, stop := n.TokenIndex, n.TokenIndex
	for _, c := range n.Children {
		if c.Start >= 0 && (start < 0 || c.Start < start) {
			start = c.Start
		}
		if c.Stop > stop {
			stop = c.Stop
		}
	}
	n.Start, n.Stop = start, stop
}

// build constructs the AST bottom-up; children are built before their
// parent and each node gets the shared stream reference.
func build(n *parser.RawNode, stream *token.Stream) *ast.Node {
	var children []*ast.Node
	if len(n.Children) > 0 {
		children = make([]*ast.Node, 0, len(n.Children))
		for _, c := range n.Children {
			children = append(children, build(c, stream))
		}
	}
	return ast.New(n.Token, n.Start, n.Stop, children, stream)
}
