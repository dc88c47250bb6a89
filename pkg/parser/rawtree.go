package parser

import (
	"github.com/leapstack-labs/sqlfront/pkg/token"
)

// Tree-node kinds with no single source token of their own. Registered
// dynamically so they never collide with lexical token types.
var (
	// Subquery roots a parenthesized SELECT used as a table or expression.
	Subquery = token.Register("SUBQUERY")
	// Alias roots an implicit alias binding (no AS keyword in the source).
	Alias = token.Register("ALIAS")
	// Call roots a function call; the node token keeps the original
	// function name text.
	Call = token.Register("CALL")
)

// RawNode is a node of the raw parse tree produced by the grammar entry
// production. It is mutable, parent-owns-children, and strictly acyclic.
// Synthetic nodes may carry no token and no resolved boundaries; the tree
// normalizer resolves both before the canonical AST is built.
type RawNode struct {
	// Token is the node's token, nil for synthetic wrapper nodes.
	Token *token.Token
	// TokenIndex is the index of Token in the token stream, -1 when the
	// token is virtual or absent.
	TokenIndex int
	// Start and Stop are the token-stream indices spanned by this node,
	// inclusive. -1 means unset (synthetic nodes have no directly matched
	// span of their own).
	Start, Stop int
	// Children are the ordered, exclusively owned child nodes.
	Children []*RawNode
}

// AddChild appends a child node. Nil children are dropped so failed
// sub-productions do not leave holes in the tree.
func (n *RawNode) AddChild(c *RawNode) {
	if c != nil {
		n.Children = append(n.Children, c)
	}
}

// leafNode builds a node for a real token at the given stream index.
func leafNode(tok token.Token, idx int) *RawNode {
	t := tok
	return &RawNode{Token: &t, TokenIndex: idx, Start: idx, Stop: idx}
}

// ruleNode builds an interior node rooted at a real token (a keyword or
// operator). Its boundaries stay unset and are inferred from descendants.
func ruleNode(tok token.Token, idx int, children ...*RawNode) *RawNode {
	t := tok
	n := &RawNode{Token: &t, TokenIndex: idx, Start: -1, Stop: -1}
	for _, c := range children {
		n.AddChild(c)
	}
	return n
}

// virtualNode builds an interior node carrying a virtual token of the
// given kind. text and pos anchor diagnostics; boundaries stay unset.
func virtualNode(kind token.Type, text string, pos token.Position, children ...*RawNode) *RawNode {
	n := &RawNode{
		Token:      &token.Token{Type: kind, Literal: text, Pos: pos},
		TokenIndex: -1,
		Start:      -1,
		Stop:       -1,
	}
	for _, c := range children {
		n.AddChild(c)
	}
	return n
}
