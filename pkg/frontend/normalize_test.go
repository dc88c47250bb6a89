package frontend

import (
	"testing"

	"github.com/leapstack-labs/sqlfront/pkg/parser"
	"github.com/leapstack-labs/sqlfront/pkg/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wrapper(children ...*parser.RawNode) *parser.RawNode {
	n := &parser.RawNode{TokenIndex: -1, Start: -1, Stop: -1}
	for _, c := range children {
		n.AddChild(c)
	}
	return n
}

func tokenNode(start, stop int, children ...*parser.RawNode) *parser.RawNode {
	n := &parser.RawNode{
		Token:      &token.Token{Type: token.IDENT, Literal: "n"},
		TokenIndex: -1,
		Start:      start,
		Stop:       stop,
	}
	for _, c := range children {
		n.AddChild(c)
	}
	return n
}

func TestSelectRootDescendsWrapperChain(t *testing.T) {
	leaf := tokenNode(0, 0)

	// k wrapper levels require exactly k descents, for any k >= 0.
	for k := 0; k <= 4; k++ {
		root := leaf
		for i := 0; i < k; i++ {
			root = wrapper(root)
		}
		assert.Same(t, leaf, selectRoot(root), "k=%d", k)
	}
}

func TestSelectRootStopsAtChildlessWrapper(t *testing.T) {
	empty := wrapper()
	assert.Same(t, empty, selectRoot(empty))

	chain := wrapper(wrapper())
	assert.Same(t, chain.Children[0], selectRoot(chain))
}

func TestSelectRootIgnoresSiblings(t *testing.T) {
	first := tokenNode(0, 0)
	second := tokenNode(1, 1)
	root := wrapper(wrapper(first, second))

	assert.Same(t, first, selectRoot(root))
}

func TestResolveBoundariesUnionsChildren(t *testing.T) {
	syn := tokenNode(-1, -1, tokenNode(2, 4), tokenNode(5, 9))
	resolveBoundaries(syn)

	assert.Equal(t, 2, syn.Start)
	assert.Equal(t, 9, syn.Stop)
}

func TestResolveBoundariesDepthFirst(t *testing.T) {
	inner := tokenNode(-1, -1, tokenNode(3, 3), tokenNode(7, 8))
	outer := tokenNode(-1, -1, tokenNode(1, 1), inner)
	resolveBoundaries(outer)

	assert.Equal(t, 3, inner.Start)
	assert.Equal(t, 8, inner.Stop)
	assert.Equal(t, 1, outer.Start)
	assert.Equal(t, 8, outer.Stop)
}

func TestResolveBoundariesKeepsExplicitSpan(t *testing.T) {
	n := tokenNode(1, 6, tokenNode(2, 4))
	resolveBoundaries(n)

	assert.Equal(t, 1, n.Start)
	assert.Equal(t, 6, n.Stop)
}

func TestResolveBoundariesIncludesOwnToken(t *testing.T) {
	// A keyword-rooted node's own token extends the span beyond its
	// children.
	n := tokenNode(-1, -1, tokenNode(3, 5))
	n.TokenIndex = 2
	resolveBoundaries(n)

	assert.Equal(t, 2, n.Start)
	assert.Equal(t, 5, n.Stop)
}

func TestNormalizeBuildsPostOrderWithSharedStream(t *testing.T) {
	stream := token.NewStream("a b")
	stream.Append(token.Token{Type: token.IDENT, Literal: "a", End: 1})
	stream.Append(token.Token{Type: token.IDENT, Literal: "b",
		Pos: token.Position{Offset: 2}, End: 3})

	leafA := tokenNode(0, 0)
	leafB := tokenNode(1, 1)
	raw := wrapper(tokenNode(-1, -1, leafA, leafB))

	node := normalize(raw, stream)
	require.NotNil(t, node)

	// Wrapper stripped, boundaries inferred, stream shared everywhere.
	assert.Equal(t, 0, node.StartIndex())
	assert.Equal(t, 1, node.StopIndex())
	require.Equal(t, 2, node.NumChildren())
	assert.Same(t, stream, node.Stream())
	assert.Same(t, stream, node.Child(0).Stream())
	assert.Same(t, stream, node.Child(1).Stream())
	assert.Equal(t, "a b", node.OriginalText())
}

func TestNormalizeDegenerateEmptyRoot(t *testing.T) {
	stream := token.NewStream("")
	node := normalize(wrapper(), stream)

	require.NotNil(t, node)
	assert.Equal(t, 0, node.NumChildren())
}
