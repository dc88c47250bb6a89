package ast_test

import (
	"testing"

	"github.com/leapstack-labs/sqlfront/pkg/ast"
	"github.com/leapstack-labs/sqlfront/pkg/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStream() *token.Stream {
	src := "SELECT Amount"
	s := token.NewStream(src)
	s.Append(token.Token{Type: token.SELECT, Literal: "SELECT",
		Pos: token.Position{Line: 1, Column: 1, Offset: 0}, End: 6})
	s.Append(token.Token{Type: token.IDENT, Literal: "Amount",
		Pos: token.Position{Line: 1, Column: 8, Offset: 7}, End: 13})
	s.Append(token.Token{Type: token.EOF,
		Pos: token.Position{Line: 1, Column: 14, Offset: 13}, End: 13})
	return s
}

func TestNodeAccessors(t *testing.T) {
	stream := testStream()

	leaf := ast.New(&token.Token{Type: token.IDENT, Literal: "Amount",
		Pos: token.Position{Line: 1, Column: 8, Offset: 7}}, 1, 1, nil, stream)
	root := ast.New(&token.Token{Type: token.SELECT, Literal: "SELECT",
		Pos: token.Position{Line: 1, Column: 1, Offset: 0}}, 0, 1, []*ast.Node{leaf}, stream)

	assert.Equal(t, token.SELECT, root.Type())
	assert.Equal(t, "SELECT", root.Text())
	assert.Equal(t, 1, root.Pos().Line)
	assert.Equal(t, 0, root.StartIndex())
	assert.Equal(t, 1, root.StopIndex())
	require.Equal(t, 1, root.NumChildren())
	assert.Same(t, leaf, root.Child(0))
	assert.Same(t, stream, root.Stream())
	assert.Same(t, stream, leaf.Stream())
}

func TestNodeOriginalText(t *testing.T) {
	stream := testStream()

	leaf := ast.New(&token.Token{Type: token.IDENT, Literal: "Amount"}, 1, 1, nil, stream)
	root := ast.New(&token.Token{Type: token.SELECT, Literal: "SELECT"}, 0, 1, []*ast.Node{leaf}, stream)

	assert.Equal(t, "SELECT Amount", root.OriginalText())
	assert.Equal(t, "Amount", leaf.OriginalText())
}

func TestWalkPreOrder(t *testing.T) {
	stream := testStream()
	leaf := ast.New(&token.Token{Type: token.IDENT, Literal: "Amount"}, 1, 1, nil, stream)
	root := ast.New(&token.Token{Type: token.SELECT, Literal: "SELECT"}, 0, 1, []*ast.Node{leaf}, stream)

	var seen []string
	ast.Walk(root, func(n *ast.Node) bool {
		seen = append(seen, n.Text())
		return true
	})
	assert.Equal(t, []string{"SELECT", "Amount"}, seen)

	seen = nil
	ast.Walk(root, func(n *ast.Node) bool {
		seen = append(seen, n.Text())
		return false
	})
	assert.Equal(t, []string{"SELECT"}, seen)
}

func TestNodeString(t *testing.T) {
	stream := testStream()
	leaf := ast.New(&token.Token{Type: token.IDENT, Literal: "Amount"}, 1, 1, nil, stream)
	root := ast.New(&token.Token{Type: token.SELECT, Literal: "SELECT"}, 0, 1, []*ast.Node{leaf}, stream)

	assert.Equal(t, "(SELECT Amount)", root.String())
	assert.Equal(t, "Amount", leaf.String())
}

func TestTokenlessRoot(t *testing.T) {
	root := ast.New(nil, -1, -1, nil, nil)

	assert.Equal(t, token.EOF, root.Type())
	assert.Equal(t, "", root.Text())
	assert.Equal(t, 0, root.NumChildren())
	assert.Equal(t, "", root.OriginalText())
	assert.Equal(t, "nil", root.String())
}
