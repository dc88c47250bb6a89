package parser

import (
	"github.com/leapstack-labs/sqlfront/pkg/token"
)

// CharStream is the character source a Lexer matches against. At returns
// lookahead characters possibly transformed for matching (case folding),
// while Slice always returns the exact original text, so captured token
// literals are independent of any folding.
type CharStream interface {
	// At returns the byte at offset i, or 0 at and past end of input.
	At(i int) byte
	// Slice returns the original text in [start, stop).
	Slice(start, stop int) string
	// Len returns the total input length in bytes.
	Len() int
}

// Comment is a source comment collected during lexing.
type Comment struct {
	Text string
	Pos  token.Position
}

// Lexer tokenizes SQL input read from a CharStream.
type Lexer struct {
	src     CharStream
	pos     int  // current position in input
	readPos int  // reading position (after current char)
	ch      byte // current char under examination, case-folded
	line    int  // current line number (1-based)
	col     int  // current column number (1-based)

	cfg      Config
	listener ErrorListener

	// Comments collected during lexing when cfg.CollectComments is set
	Comments []Comment
}

// NewLexer creates a new Lexer over the given character stream. The
// listener receives lexical errors; it may be nil, in which case errors
// surface as ILLEGAL tokens only.
func NewLexer(src CharStream, cfg Config, listener ErrorListener) *Lexer {
	l := &Lexer{
		src:      src,
		cfg:      cfg,
		listener: listener,
		line:     1,
		col:      0,
	}
	l.readChar()
	return l
}

// readChar advances to the next character.
func (l *Lexer) readChar() {
	l.ch = l.src.At(l.readPos)
	l.pos = l.readPos
	l.readPos++

	if l.ch == '\n' {
		l.line++
		l.col = 0
	} else {
		l.col++
	}
}

// peekChar returns the next character without advancing.
func (l *Lexer) peekChar() byte {
	return l.src.At(l.readPos)
}

// currentPos returns the current position.
func (l *Lexer) currentPos() token.Position {
	return token.Position{
		Line:   l.line,
		Column: l.col,
		Offset: l.pos,
	}
}

// report forwards a lexical error to the listener, if any.
func (l *Lexer) report(kind RecognitionKind, pos token.Position, near string) {
	if l.listener == nil {
		return
	}
	l.listener.SyntaxError("lexer", &RecognitionError{Kind: kind, Pos: pos, Near: near}, nil)
}

// NextToken returns the next token. Token literals are sliced from the
// original input, so they preserve source casing even though matching
// sees folded characters.
func (l *Lexer) NextToken() token.Token {
	l.skipWhitespaceAndComments()

	pos := l.currentPos()

	switch l.ch {
	case 0:
		return token.Token{Type: token.EOF, Pos: pos, End: l.pos}
	case '+':
		return l.newToken(token.PLUS, pos)
	case '-':
		return l.newToken(token.MINUS, pos)
	case '*':
		return l.newToken(token.STAR, pos)
	case '/':
		return l.newToken(token.SLASH, pos)
	case '%':
		return l.newToken(token.PERCENT, pos)
	case '=':
		return l.newToken(token.EQ, pos)
	case '<':
		switch l.peekChar() {
		case '=':
			return l.newToken2(token.LE, pos)
		case '>':
			return l.newToken2(token.NE, pos)
		default:
			return l.newToken(token.LT, pos)
		}
	case '>':
		if l.peekChar() == '=' {
			return l.newToken2(token.GE, pos)
		}
		return l.newToken(token.GT, pos)
	case '!':
		if l.peekChar() == '=' {
			return l.newToken2(token.NE, pos)
		}
		return l.illegal(pos)
	case '|':
		if l.peekChar() == '|' {
			return l.newToken2(token.DPIPE, pos)
		}
		return l.illegal(pos)
	case '.':
		if isDigit(l.peekChar()) {
			return l.readNumber(pos)
		}
		return l.newToken(token.DOT, pos)
	case ',':
		return l.newToken(token.COMMA, pos)
	case ';':
		return l.newToken(token.SEMI, pos)
	case '(':
		return l.newToken(token.LPAREN, pos)
	case ')':
		return l.newToken(token.RPAREN, pos)
	case '[':
		return l.newToken(token.LBRACKET, pos)
	case ']':
		return l.newToken(token.RBRACKET, pos)
	case '\'':
		return l.readString(pos, '\'', token.STRING)
	case '"':
		if l.cfg.DoubleQuotedStrings {
			return l.readString(pos, '"', token.STRING)
		}
		return l.readQuotedIdentifier(pos)
	default:
		switch {
		case isLetter(l.ch) || l.ch == '_':
			return l.readIdentifier(pos)
		case isDigit(l.ch):
			return l.readNumber(pos)
		default:
			return l.illegal(pos)
		}
	}
}

// newToken creates a single-character token and advances past it.
func (l *Lexer) newToken(t token.Type, pos token.Position) token.Token {
	start := l.pos
	l.readChar()
	return token.Token{Type: t, Literal: l.src.Slice(start, l.pos), Pos: pos, End: l.pos}
}

// newToken2 creates a two-character token and advances past it.
func (l *Lexer) newToken2(t token.Type, pos token.Position) token.Token {
	start := l.pos
	l.readChar()
	l.readChar()
	return token.Token{Type: t, Literal: l.src.Slice(start, l.pos), Pos: pos, End: l.pos}
}

// illegal reports an unrecognizable character and emits an ILLEGAL token
// for it, so that lexing can continue with the next character.
func (l *Lexer) illegal(pos token.Position) token.Token {
	start := l.pos
	near := l.src.Slice(start, start+1)
	l.report(IllegalCharacter, pos, near)
	l.readChar()
	return token.Token{Type: token.ILLEGAL, Literal: near, Pos: pos, End: l.pos}
}

// skipWhitespaceAndComments skips whitespace and comments.
func (l *Lexer) skipWhitespaceAndComments() {
	for {
		for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
			l.readChar()
		}

		// Line comment (-- ...)
		if l.ch == '-' && l.peekChar() == '-' {
			l.collectLineComment()
			continue
		}

		// Block comment (/* ... */)
		if l.ch == '/' && l.peekChar() == '*' {
			l.collectBlockComment()
			continue
		}

		break
	}
}

// collectLineComment consumes a line comment.
func (l *Lexer) collectLineComment() {
	pos := l.currentPos()
	start := l.pos

	for l.ch != '\n' && l.ch != 0 {
		l.readChar()
	}

	if l.cfg.CollectComments {
		l.Comments = append(l.Comments, Comment{Text: l.src.Slice(start, l.pos), Pos: pos})
	}
}

// collectBlockComment consumes a block comment.
func (l *Lexer) collectBlockComment() {
	pos := l.currentPos()
	start := l.pos

	l.readChar() // skip '/'
	l.readChar() // skip '*'

	for l.ch != 0 {
		if l.ch == '*' && l.peekChar() == '/' {
			l.readChar() // skip '*'
			l.readChar() // skip '/'
			break
		}
		l.readChar()
	}

	if l.cfg.CollectComments {
		l.Comments = append(l.Comments, Comment{Text: l.src.Slice(start, l.pos), Pos: pos})
	}
}

// readString reads a quoted string literal with doubled-quote escapes.
// The literal keeps its quotes and original text verbatim.
func (l *Lexer) readString(pos token.Position, quote byte, t token.Type) token.Token {
	start := l.pos
	l.readChar() // skip opening quote

	for {
		if l.ch == 0 {
			l.report(UnterminatedLiteral, pos, "")
			break
		}
		if l.ch == quote {
			if l.peekChar() == quote {
				l.readChar() // skip first quote
				l.readChar() // skip second quote
				continue
			}
			l.readChar() // skip closing quote
			break
		}
		l.readChar()
	}

	return token.Token{Type: t, Literal: l.src.Slice(start, l.pos), Pos: pos, End: l.pos}
}

// readQuotedIdentifier reads a double-quoted identifier.
func (l *Lexer) readQuotedIdentifier(pos token.Position) token.Token {
	return l.readString(pos, '"', token.IDENT)
}

// readIdentifier reads an unquoted identifier or keyword. Keyword lookup
// uses the folded characters the matching path sees, while the emitted
// literal is the untouched source text.
func (l *Lexer) readIdentifier(pos token.Position) token.Token {
	start := l.pos
	var folded []byte
	for isLetter(l.ch) || isDigit(l.ch) || l.ch == '_' {
		folded = append(folded, l.ch)
		l.readChar()
	}
	return token.Token{
		Type:    token.LookupIdent(string(folded)),
		Literal: l.src.Slice(start, l.pos),
		Pos:     pos,
		End:     l.pos,
	}
}

// readNumber reads a numeric literal (integer, decimal, or scientific).
func (l *Lexer) readNumber(pos token.Position) token.Token {
	start := l.pos

	for isDigit(l.ch) {
		l.readChar()
	}

	if l.ch == '.' && isDigit(l.peekChar()) {
		l.readChar() // skip '.'
		for isDigit(l.ch) {
			l.readChar()
		}
	}

	// Exponent part (1e10, 1E-5). The stream folds 'e' to 'E'.
	if l.ch == 'E' && (isDigit(l.peekChar()) || ((l.peekChar() == '+' || l.peekChar() == '-') && isDigit(l.src.At(l.readPos+1)))) {
		l.readChar()
		if l.ch == '+' || l.ch == '-' {
			l.readChar()
		}
		for isDigit(l.ch) {
			l.readChar()
		}
	}

	return token.Token{Type: token.NUMBER, Literal: l.src.Slice(start, l.pos), Pos: pos, End: l.pos}
}

// isLetter reports whether ch is a letter. The stream folds lowercase
// ASCII to uppercase before matching; bytes above 0x7f are accepted so
// multibyte identifiers lex as a unit.
func isLetter(ch byte) bool {
	return ('A' <= ch && ch <= 'Z') || ('a' <= ch && ch <= 'z') || ch >= 0x80
}

// isDigit reports whether ch is a digit.
func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
