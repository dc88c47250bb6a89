package frontend_test

import (
	"strings"
	"testing"

	"github.com/leapstack-labs/sqlfront/internal/testutil"
	"github.com/leapstack-labs/sqlfront/pkg/ast"
	"github.com/leapstack-labs/sqlfront/pkg/frontend"
	"github.com/leapstack-labs/sqlfront/pkg/parser"
	"github.com/leapstack-labs/sqlfront/pkg/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFrontend(t *testing.T) frontend.Frontend {
	t.Helper()
	return frontend.New(testutil.NewTestLogger(t))
}

func TestParseSelectLiteral(t *testing.T) {
	node, err := newFrontend(t).Parse("SELECT 1", parser.Config{})

	require.NoError(t, err)
	require.NotNil(t, node)
	assert.Equal(t, token.SELECT, node.Type())
	require.Equal(t, 1, node.NumChildren())
	assert.Equal(t, token.NUMBER, node.Child(0).Type())
	assert.Equal(t, "1", node.Child(0).Text())
}

func TestParsePreservesSourceCasing(t *testing.T) {
	node, err := newFrontend(t).Parse("SeLeCt 1", parser.Config{})

	require.NoError(t, err)
	assert.Equal(t, token.SELECT, node.Type())
	assert.Equal(t, "SeLeCt", node.Text())
	assert.Equal(t, "SeLeCt 1", node.OriginalText())
}

func TestParseBoundariesCoverStatement(t *testing.T) {
	node, err := newFrontend(t).Parse("SELECT a + b FROM t WHERE a > 1", parser.Config{})

	require.NoError(t, err)
	assert.Equal(t, "SELECT a + b FROM t WHERE a > 1", node.OriginalText())

	// The + node's span is the union of its operands.
	plus := node.Child(0)
	require.Equal(t, token.PLUS, plus.Type())
	assert.Equal(t, "a + b", plus.OriginalText())
	assert.LessOrEqual(t, plus.StartIndex(), plus.StopIndex())
}

func TestParseInvariantStartLEStop(t *testing.T) {
	node, err := newFrontend(t).Parse(
		"SELECT count(*), CASE WHEN a > 1 THEN 'x' ELSE 'y' END FROM t JOIN u ON t.id = u.id",
		parser.Config{})

	require.NoError(t, err)
	ast.Walk(node, func(n *ast.Node) bool {
		assert.LessOrEqual(t, n.StartIndex(), n.StopIndex(), "node %s", n.Text())
		assert.GreaterOrEqual(t, n.StartIndex(), 0, "node %s", n.Text())
		return true
	})
}

func TestParseEmptyInput(t *testing.T) {
	node, err := newFrontend(t).Parse("", parser.Config{})

	require.NoError(t, err)
	require.NotNil(t, node)
	assert.Equal(t, 0, node.NumChildren())
}

func TestParseMisspelledKeywordRaises(t *testing.T) {
	node, err := newFrontend(t).Parse("SELEC 1", parser.Config{})

	assert.Nil(t, node)
	require.Error(t, err)

	var synErr *frontend.SyntaxError
	require.ErrorAs(t, err, &synErr)
	assert.Equal(t, 1, synErr.Line)
	assert.Equal(t, 1, synErr.Column)
	assert.Contains(t, synErr.Message, "'SELEC'")
	assert.Contains(t, synErr.Message, "expecting one of [SELECT]")
}

func TestParseCollectedErrorsRaiseAfterCompletion(t *testing.T) {
	node, err := newFrontend(t).Parse("SELECT , a FROM WHERE a = 1", parser.Config{})

	assert.Nil(t, node)
	require.Error(t, err)

	var synErr *frontend.SyntaxError
	require.ErrorAs(t, err, &synErr)

	lines := strings.Split(synErr.Message, "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "cannot recognize input near ','")
	assert.Contains(t, lines[1], "mismatched input near 'WHERE'")
}

func TestParseNoPartialASTOnError(t *testing.T) {
	node, err := newFrontend(t).Parse("SELECT a FROM", parser.Config{})

	require.Error(t, err)
	assert.Nil(t, node)
}

func TestParseCallIsolation(t *testing.T) {
	f := newFrontend(t)

	_, err := f.Parse("SELEC 1", parser.Config{})
	require.Error(t, err)

	// A later independent call never sees earlier errors.
	node, err := f.Parse("SELECT 1", parser.Config{})
	require.NoError(t, err)
	require.NotNil(t, node)

	_, err = f.Parse("SELECT FROM t", parser.Config{})
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "SELEC")
}

func TestParseErrorBudget(t *testing.T) {
	_, err := newFrontend(t).Parse("SELECT , a FROM WHERE a = 1", parser.Config{MaxErrors: 1})

	require.Error(t, err)
	var synErr *frontend.SyntaxError
	require.ErrorAs(t, err, &synErr)
	assert.Contains(t, synErr.Message, "too many syntax errors")
	// The budget-exceeded failure is primary; the reported error follows.
	assert.Contains(t, synErr.Message, "cannot recognize input near ','")
}

func TestParseLexicalErrorSurfaces(t *testing.T) {
	_, err := newFrontend(t).Parse("SELECT 'oops", parser.Config{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unterminated string literal")
	assert.Contains(t, err.Error(), "lexer error")
}

func TestParseDump(t *testing.T) {
	node, err := newFrontend(t).Parse("SELECT a, b FROM t", parser.Config{})

	require.NoError(t, err)
	assert.Equal(t, "(SELECT a b (FROM t))", node.String())
}
