// Package parser provides the generated-style lexer/parser pair for the
// SQL front end: a hand-written lexer over a CharStream and a recursive
// descent parser producing a raw parse tree.
//
// # Grammar Overview
//
//	statement     → select_stmt [";"] EOF
//	select_stmt   → SELECT [DISTINCT|ALL] select_list
//	                [FROM table_refs] [WHERE expr]
//	                [GROUP BY expr_list] [HAVING expr]
//	                [ORDER BY order_list] [LIMIT expr [OFFSET expr]]
//	select_list   → select_item ("," select_item)*
//	select_item   → "*" | expr [AS identifier | identifier]
//
// Recoverable recognition errors go to the ErrorListener and the parser
// resynchronizes on clause boundaries; only an unrecognizable statement
// start or an exhausted error budget aborts the entry production.
package parser

import (
	"github.com/leapstack-labs/sqlfront/pkg/token"
)

// Parser parses SQL into a raw parse tree.
type Parser struct {
	lexer    *Lexer
	tokens   *token.Stream
	pos      int // index of the current token in the stream
	cfg      Config
	listener ErrorListener

	errCount int
	fatal    *RecognitionError
}

// New creates a parser over the given character stream, configured with
// cfg and reporting recoverable errors to listener. The whole input is
// tokenized up front so the raw tree can carry token-stream indices.
func New(src CharStream, cfg Config, listener ErrorListener) *Parser {
	p := &Parser{
		cfg:      cfg,
		listener: listener,
	}
	p.lexer = NewLexer(src, cfg, listener)
	p.tokens = token.NewStream(src.Slice(0, src.Len()))
	for {
		tok := p.lexer.NextToken()
		p.tokens.Append(tok)
		if tok.Type == token.EOF {
			break
		}
	}
	return p
}

// Tokens returns the token stream recorded for this parse. The stream is
// shared read-only with every AST node built from the raw tree.
func (p *Parser) Tokens() *token.Stream {
	return p.tokens
}

// Comments returns the comments collected during lexing.
func (p *Parser) Comments() []Comment {
	return p.lexer.Comments
}

// ParseStatement is the grammar entry production. It returns a token-less
// wrapper root owning the parsed statement, or a *RecognitionError when
// the invocation itself fails rather than recovering. Recovered errors
// are only visible through the listener.
func (p *Parser) ParseStatement() (*RawNode, error) {
	root := &RawNode{TokenIndex: -1, Start: -1, Stop: -1}

	// Degenerate empty input: a bare wrapper with no children.
	if p.check(token.EOF) {
		return root, nil
	}

	if !p.check(token.SELECT) {
		tok := p.cur()
		return nil, &RecognitionError{
			Kind:     NoViableAlternative,
			Pos:      tok.Pos,
			Near:     tok.Literal,
			Expected: []string{token.SELECT.String()},
		}
	}

	stmt := p.parseSelect()
	if p.fatal != nil {
		return nil, p.fatal
	}

	p.match(token.SEMI)
	if !p.check(token.EOF) {
		p.report(ExtraneousInput, p.cur(), []string{token.EOF.String()})
		if p.fatal != nil {
			return nil, p.fatal
		}
	}

	root.AddChild(stmt)
	return root, nil
}

// ---------- Token Helpers ----------

// cur returns the current token.
func (p *Parser) cur() token.Token {
	return p.tokens.Get(p.pos)
}

// advance moves to the next token, stopping at EOF.
func (p *Parser) advance() {
	if p.pos < p.tokens.Len()-1 {
		p.pos++
	}
}

// check returns true if the current token is of the given type.
func (p *Parser) check(t token.Type) bool {
	return p.cur().Type == t
}

// checkAny returns true if the current token matches any of the given types.
func (p *Parser) checkAny(types ...token.Type) bool {
	for _, t := range types {
		if p.check(t) {
			return true
		}
	}
	return false
}

// match consumes the current token if it matches and returns true.
func (p *Parser) match(t token.Type) bool {
	if p.check(t) {
		p.advance()
		return true
	}
	return false
}

// leafAdvance turns the current token into a leaf node and consumes it.
func (p *Parser) leafAdvance() *RawNode {
	n := leafNode(p.cur(), p.pos)
	p.advance()
	return n
}

// expect consumes the current token if it matches, otherwise reports a
// mismatch naming the acceptable token and leaves the position unchanged.
func (p *Parser) expect(t token.Type) bool {
	if p.match(t) {
		return true
	}
	p.report(MismatchedToken, p.cur(), []string{t.String()})
	return false
}

// ---------- Error Handling ----------

// report forwards a recoverable recognition error to the listener and
// tracks the error budget. Parsing continues after this call.
func (p *Parser) report(kind RecognitionKind, near token.Token, expected []string) {
	rec := &RecognitionError{
		Kind:     kind,
		Pos:      near.Pos,
		Near:     near.Literal,
		Expected: expected,
	}
	if p.listener != nil {
		p.listener.SyntaxError("parser", rec, expected)
	}
	p.errCount++
	if p.cfg.MaxErrors > 0 && p.errCount >= p.cfg.MaxErrors && p.fatal == nil {
		p.fatal = &RecognitionError{Kind: TooManyErrors, Pos: near.Pos, Near: near.Literal}
	}
}

// bail reports whether the parse has hit an unrecoverable condition.
func (p *Parser) bail() bool {
	return p.fatal != nil
}

// clauseFollow is the resynchronization set: tokens that can legitimately
// start the next clause or close the current nesting level.
var clauseFollow = []token.Type{
	token.COMMA, token.FROM, token.WHERE, token.GROUP, token.HAVING,
	token.ORDER, token.LIMIT, token.RPAREN, token.SEMI, token.EOF,
}

// resync skips tokens until one of the follow set (always including EOF)
// so that parsing can continue after a reported error.
func (p *Parser) resync(follow ...token.Type) {
	for !p.check(token.EOF) && !p.checkAny(follow...) {
		p.advance()
	}
}
