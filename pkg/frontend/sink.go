package frontend

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/sqlfront/pkg/parser"
)

// SyntaxError is the single structured failure a parse can raise. The
// message enumerates every collected recognition error once, one per
// line, in original encounter order; Line and Column locate the primary
// error. Zero Line/Column mean the location is unknown.
type SyntaxError struct {
	Message string
	Line    int
	Column  int
}

func (e *SyntaxError) Error() string {
	return e.Message
}

// ParseError is one recognition error captured by the sink: the
// reporting component (used for the diagnostic header), the recognition
// failure itself, and the token names acceptable at the failure point.
type ParseError struct {
	Origin   string
	Rec      *parser.RecognitionError
	Expected []string
}

// Error formats the entry as a single diagnostic line. Acceptable token
// names stay grouped with their own error rather than merged across
// entries.
func (e *ParseError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s error at line %d, column %d: %s",
		e.Origin, e.Rec.Pos.Line, e.Rec.Pos.Column, e.Rec.Error())
	if len(e.Expected) > 0 {
		fmt.Fprintf(&b, ", expecting one of [%s]", strings.Join(e.Expected, ", "))
	}
	return b.String()
}

// ErrorSink is the insertion-ordered collector of recognition errors for
// one parse attempt. The lexer and parser share one sink through the
// parser.ErrorListener interface; their own recovery resumes after each
// report, so a single attempt can accumulate any number of entries.
// A sink must not be reused across parse calls.
type ErrorSink struct {
	errors []*ParseError
}

// NewErrorSink creates an empty sink.
func NewErrorSink() *ErrorSink {
	return &ErrorSink{}
}

// SyntaxError implements parser.ErrorListener. Entries are append-only,
// never deduplicated or reordered; the first entry is the primary error.
func (s *ErrorSink) SyntaxError(origin string, rec *parser.RecognitionError, expected []string) {
	s.errors = append(s.errors, &ParseError{Origin: origin, Rec: rec, Expected: expected})
}

// Empty returns true if no error has been reported.
func (s *ErrorSink) Empty() bool {
	return len(s.errors) == 0
}

// Errors returns the collected entries in report order.
func (s *ErrorSink) Errors() []*ParseError {
	return s.errors
}

// Err returns nil when the sink is empty; otherwise one *SyntaxError
// whose location is the first entry's and whose message lists every
// entry's formatted text in report order. Used after the grammar entry
// production returns normally.
func (s *ErrorSink) Err() error {
	if len(s.errors) == 0 {
		return nil
	}
	lines := make([]string, len(s.errors))
	for i, e := range s.errors {
		lines[i] = e.Error()
	}
	first := s.errors[0].Rec.Pos
	return &SyntaxError{
		Message: strings.Join(lines, "\n"),
		Line:    first.Line,
		Column:  first.Column,
	}
}

// Raise builds the failure for a recognition error that aborted the
// entry production outright instead of being reported. The unrecovered
// error's own location becomes primary, and every previously reported
// entry follows it in the message, order preserved.
func (s *ErrorSink) Raise(rec *parser.RecognitionError) error {
	primary := &ParseError{Origin: "parser", Rec: rec, Expected: rec.Expected}
	lines := make([]string, 0, len(s.errors)+1)
	lines = append(lines, primary.Error())
	for _, e := range s.errors {
		lines = append(lines, e.Error())
	}
	return &SyntaxError{
		Message: strings.Join(lines, "\n"),
		Line:    rec.Pos.Line,
		Column:  rec.Pos.Column,
	}
}
