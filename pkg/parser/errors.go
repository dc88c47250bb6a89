package parser

import (
	"fmt"

	"github.com/leapstack-labs/sqlfront/pkg/token"
)

// RecognitionKind classifies a recognition failure.
type RecognitionKind int

const (
	// MismatchedToken means a specific token was required but another found.
	MismatchedToken RecognitionKind = iota
	// NoViableAlternative means no production matched the input.
	NoViableAlternative
	// UnterminatedLiteral means a string literal ran past end of input.
	UnterminatedLiteral
	// IllegalCharacter means the lexer hit a character it cannot tokenize.
	IllegalCharacter
	// TooManyErrors means the configured error budget was exhausted.
	TooManyErrors
	// ExtraneousInput means input remained after a complete statement.
	ExtraneousInput
)

// String returns the diagnostic phrase for the failure kind.
func (k RecognitionKind) String() string {
	switch k {
	case MismatchedToken:
		return "mismatched input"
	case NoViableAlternative:
		return "cannot recognize input"
	case UnterminatedLiteral:
		return "unterminated string literal"
	case IllegalCharacter:
		return "illegal character"
	case TooManyErrors:
		return "too many syntax errors"
	case ExtraneousInput:
		return "extraneous input"
	}
	return "recognition error"
}

// RecognitionError is a single lexical or syntactic mismatch detected
// during lexing or parsing. It is either reported to an ErrorListener
// (recoverable path) or returned from the entry production (unrecovered).
type RecognitionError struct {
	Kind     RecognitionKind
	Pos      token.Position
	Near     string   // offending token text, if any
	Expected []string // token names acceptable at the failure point
}

func (e *RecognitionError) Error() string {
	if e.Near != "" {
		return fmt.Sprintf("%s near '%s'", e.Kind, e.Near)
	}
	return e.Kind.String()
}

// ErrorListener receives recognition errors reported by the lexer and
// parser while their own recovery keeps the parse going. origin names the
// reporting component ("lexer" or "parser") for diagnostic headers.
type ErrorListener interface {
	SyntaxError(origin string, rec *RecognitionError, expected []string)
}
