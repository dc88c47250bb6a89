package token

// Stream records every token produced for one parse, together with the
// source text it came from. Many AST nodes hold a read-only reference to
// one Stream so that the original text of any node can be recovered later
// by token-index range. The Stream never mutates once tokenization ends.
type Stream struct {
	src    string
	tokens []Token
}

// NewStream creates an empty stream over the given source text.
func NewStream(src string) *Stream {
	return &Stream{src: src}
}

// Append adds a token to the stream and returns its index.
func (s *Stream) Append(tok Token) int {
	s.tokens = append(s.tokens, tok)
	return len(s.tokens) - 1
}

// Len returns the number of recorded tokens.
func (s *Stream) Len() int {
	return len(s.tokens)
}

// Get returns the token at index i.
func (s *Stream) Get(i int) Token {
	return s.tokens[i]
}

// Source returns the full original source text.
func (s *Stream) Source() string {
	return s.src
}

// Text returns the exact original source text spanned by the token range
// [start, stop], inclusive on both ends. Returns "" for an invalid range.
func (s *Stream) Text(start, stop int) string {
	if start < 0 || stop < start || stop >= len(s.tokens) {
		return ""
	}
	from := s.tokens[start].Pos.Offset
	to := s.tokens[stop].End
	if from < 0 || to > len(s.src) || from > to {
		return ""
	}
	return s.src[from:to]
}
