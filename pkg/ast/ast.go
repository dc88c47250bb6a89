// Package ast defines the immutable, normalized parse tree exposed to
// callers of the SQL front end.
package ast

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/sqlfront/pkg/token"
)

// Node is one node of the normalized AST. Nodes are immutable after
// construction: every field is reachable through accessors only, each
// parent exclusively owns its children, and the only shared state is the
// read-only token stream reference used for original-text lookup.
type Node struct {
	tok      *token.Token
	start    int // first token-stream index spanned, inclusive
	stop     int // last token-stream index spanned, inclusive
	children []*Node
	stream   *token.Stream
}

// New constructs a node. The children slice is owned by the node from
// this point on. tok may be nil only for the degenerate empty-input root.
func New(tok *token.Token, start, stop int, children []*Node, stream *token.Stream) *Node {
	return &Node{
		tok:      tok,
		start:    start,
		stop:     stop,
		children: children,
		stream:   stream,
	}
}

// Type returns the node token's type, or token.EOF for a token-less root.
func (n *Node) Type() token.Type {
	if n.tok == nil {
		return token.EOF
	}
	return n.tok.Type
}

// Text returns the node token's literal text.
func (n *Node) Text() string {
	if n.tok == nil {
		return ""
	}
	return n.tok.Literal
}

// Pos returns the node token's source position.
func (n *Node) Pos() token.Position {
	if n.tok == nil {
		return token.Position{}
	}
	return n.tok.Pos
}

// StartIndex returns the first token-stream index spanned by the node,
// -1 when the node spans no tokens.
func (n *Node) StartIndex() int {
	return n.start
}

// StopIndex returns the last token-stream index spanned by the node,
// -1 when the node spans no tokens.
func (n *Node) StopIndex() int {
	return n.stop
}

// NumChildren returns the number of child nodes.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// Child returns the i-th child node.
func (n *Node) Child(i int) *Node {
	return n.children[i]
}

// Children returns the child nodes. The returned slice is shared with the
// node and must not be modified.
func (n *Node) Children() []*Node {
	return n.children
}

// Stream returns the shared token stream this node was built over.
func (n *Node) Stream() *token.Stream {
	return n.stream
}

// OriginalText returns the exact source text spanned by the node's token
// range, with original casing and whitespace.
func (n *Node) OriginalText() string {
	if n.stream == nil {
		return ""
	}
	return n.stream.Text(n.start, n.stop)
}

// Walk calls fn for n and every descendant in depth-first pre-order,
// stopping a branch when fn returns false.
func Walk(n *Node, fn func(*Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, c := range n.children {
		Walk(c, fn)
	}
}

// String renders the node as an s-expression, one form per node.
func (n *Node) String() string {
	var b strings.Builder
	n.dump(&b)
	return b.String()
}

func (n *Node) dump(b *strings.Builder) {
	if len(n.children) == 0 {
		b.WriteString(n.label())
		return
	}
	fmt.Fprintf(b, "(%s", n.label())
	for _, c := range n.children {
		b.WriteByte(' ')
		c.dump(b)
	}
	b.WriteByte(')')
}

// label names a node for dumps: the literal when it differs usefully
// from the type name, otherwise the type name alone.
func (n *Node) label() string {
	if n.tok == nil {
		return "nil"
	}
	typeName := n.Type().String()
	if n.tok.Literal == "" || n.tok.Literal == typeName {
		return typeName
	}
	if token.IsDynamic(n.Type()) {
		return fmt.Sprintf("%s:%s", typeName, n.tok.Literal)
	}
	switch n.Type() {
	case token.IDENT, token.NUMBER, token.STRING:
		return n.tok.Literal
	}
	return typeName
}
