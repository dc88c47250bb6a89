package token_test

import (
	"testing"

	"github.com/leapstack-labs/sqlfront/pkg/token"
	"github.com/stretchr/testify/assert"
)

func TestLookupIdent(t *testing.T) {
	tests := []struct {
		ident string
		want  token.Type
	}{
		{"SELECT", token.SELECT},
		{"FROM", token.FROM},
		{"WHERE", token.WHERE},
		{"BETWEEN", token.BETWEEN},
		{"USERS", token.IDENT},
		{"select", token.IDENT}, // lookups happen on folded text only
		{"", token.IDENT},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, token.LookupIdent(tt.ident), "LookupIdent(%q)", tt.ident)
	}
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "SELECT", token.SELECT.String())
	assert.Equal(t, "<=", token.LE.String())
	assert.Equal(t, "EOF", token.EOF.String())
	assert.Equal(t, "TOKEN(900)", token.Type(900).String())
}

func TestRegister(t *testing.T) {
	a := token.Register("NODE_A")
	b := token.Register("NODE_B")

	assert.NotEqual(t, a, b)
	assert.Equal(t, "NODE_A", a.String())
	assert.Equal(t, "NODE_B", b.String())
	assert.True(t, token.IsDynamic(a))
	assert.False(t, token.IsDynamic(token.SELECT))
}

func TestPositionIsValid(t *testing.T) {
	assert.False(t, token.Position{}.IsValid())
	assert.True(t, token.Position{Line: 1, Column: 1}.IsValid())
}
