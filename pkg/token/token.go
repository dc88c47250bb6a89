// Package token defines the lexical tokens for SQL parsing.
//
// ANSI core tokens are defined as constants (IDs 0-999) for switch
// performance. Tree-node kinds used by the raw parse tree are registered
// dynamically via Register().
package token

import "fmt"

// Type represents the type of a lexical token.
type Type int32

const (
	// Special tokens
	EOF Type = iota
	ILLEGAL

	// Literals
	IDENT  // identifier
	NUMBER // 123, 45.67, 1e10
	STRING // 'hello'

	// Operators
	PLUS     // +
	MINUS    // -
	STAR     // *
	SLASH    // /
	PERCENT  // %
	DPIPE    // ||
	EQ       // =
	NE       // != or <>
	LT       // <
	GT       // >
	LE       // <=
	GE       // >=
	DOT      // .
	COMMA    // ,
	SEMI     // ;
	LPAREN   // (
	RPAREN   // )
	LBRACKET // [
	RBRACKET // ]

	// Keywords (alphabetical)
	ALL
	AND
	AS
	ASC
	BETWEEN
	BY
	CASE
	CROSS
	DESC
	DISTINCT
	ELSE
	END
	FALSE
	FROM
	FULL
	GROUP
	HAVING
	IN
	INNER
	IS
	JOIN
	LEFT
	LIKE
	LIMIT
	NOT
	NULL
	OFFSET
	ON
	OR
	ORDER
	OUTER
	RIGHT
	SELECT
	THEN
	TRUE
	WHEN
	WHERE

	// Sentinel - dynamic tokens start after this
	maxBuiltin Type = 999
)

// Token is a single lexical token. Literal is always the exact original
// substring of the input for the token's span, regardless of input casing;
// case folding happens only on the matching path, never on capture.
type Token struct {
	Type    Type
	Literal string
	Pos     Position // position of the first character
	End     int      // byte offset just past the last character
}

// String returns a human-readable representation of the token type.
func (t Type) String() string {
	// Check dynamic tokens first
	if name, ok := getDynamicName(t); ok {
		return name
	}
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TOKEN(%d)", t)
}

// tokenNames maps builtin token types to their string representations.
var tokenNames = map[Type]string{
	EOF:     "EOF",
	ILLEGAL: "ILLEGAL",

	IDENT:  "IDENT",
	NUMBER: "NUMBER",
	STRING: "STRING",

	PLUS:     "+",
	MINUS:    "-",
	STAR:     "*",
	SLASH:    "/",
	PERCENT:  "%",
	DPIPE:    "||",
	EQ:       "=",
	NE:       "!=",
	LT:       "<",
	GT:       ">",
	LE:       "<=",
	GE:       ">=",
	DOT:      ".",
	COMMA:    ",",
	SEMI:     ";",
	LPAREN:   "(",
	RPAREN:   ")",
	LBRACKET: "[",
	RBRACKET: "]",

	ALL:      "ALL",
	AND:      "AND",
	AS:       "AS",
	ASC:      "ASC",
	BETWEEN:  "BETWEEN",
	BY:       "BY",
	CASE:     "CASE",
	CROSS:    "CROSS",
	DESC:     "DESC",
	DISTINCT: "DISTINCT",
	ELSE:     "ELSE",
	END:      "END",
	FALSE:    "FALSE",
	FROM:     "FROM",
	FULL:     "FULL",
	GROUP:    "GROUP",
	HAVING:   "HAVING",
	IN:       "IN",
	INNER:    "INNER",
	IS:       "IS",
	JOIN:     "JOIN",
	LEFT:     "LEFT",
	LIKE:     "LIKE",
	LIMIT:    "LIMIT",
	NOT:      "NOT",
	NULL:     "NULL",
	OFFSET:   "OFFSET",
	ON:       "ON",
	OR:       "OR",
	ORDER:    "ORDER",
	OUTER:    "OUTER",
	RIGHT:    "RIGHT",
	SELECT:   "SELECT",
	THEN:     "THEN",
	TRUE:     "TRUE",
	WHEN:     "WHEN",
	WHERE:    "WHERE",
}

// keywords maps UPPERCASE keyword strings to their token types. The lexer
// matches against case-folded text, so lookups are always uppercase.
var keywords = map[string]Type{
	"ALL":      ALL,
	"AND":      AND,
	"AS":       AS,
	"ASC":      ASC,
	"BETWEEN":  BETWEEN,
	"BY":       BY,
	"CASE":     CASE,
	"CROSS":    CROSS,
	"DESC":     DESC,
	"DISTINCT": DISTINCT,
	"ELSE":     ELSE,
	"END":      END,
	"FALSE":    FALSE,
	"FROM":     FROM,
	"FULL":     FULL,
	"GROUP":    GROUP,
	"HAVING":   HAVING,
	"IN":       IN,
	"INNER":    INNER,
	"IS":       IS,
	"JOIN":     JOIN,
	"LEFT":     LEFT,
	"LIKE":     LIKE,
	"LIMIT":    LIMIT,
	"NOT":      NOT,
	"NULL":     NULL,
	"OFFSET":   OFFSET,
	"ON":       ON,
	"OR":       OR,
	"ORDER":    ORDER,
	"OUTER":    OUTER,
	"RIGHT":    RIGHT,
	"SELECT":   SELECT,
	"THEN":     THEN,
	"TRUE":     TRUE,
	"WHEN":     WHEN,
	"WHERE":    WHERE,
}

// LookupIdent returns the keyword token type for an uppercase identifier,
// or IDENT if it is not a keyword.
func LookupIdent(upper string) Type {
	if t, ok := keywords[upper]; ok {
		return t
	}
	return IDENT
}
