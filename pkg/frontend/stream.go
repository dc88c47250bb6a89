// Package frontend coordinates one parse of raw SQL text: it feeds the
// lexer a case-folding character stream, collects every recognition
// error into one aggregated diagnostic, and normalizes the raw parse
// tree into the immutable AST handed to callers.
package frontend

// CaseFoldingStream adapts raw command text for grammar matching: every
// lookahead returns the character folded to uppercase so one grammar can
// match case-insensitively, while Slice keeps the underlying text
// untouched so emitted token literals preserve source casing verbatim.
// The NUL end-of-stream sentinel passes through unfolded.
type CaseFoldingStream struct {
	src string
}

// NewCaseFoldingStream creates a stream over the given command text.
func NewCaseFoldingStream(src string) *CaseFoldingStream {
	return &CaseFoldingStream{src: src}
}

// At returns the byte at offset i folded to uppercase, or 0 at and past
// the end of input.
func (s *CaseFoldingStream) At(i int) byte {
	if i < 0 || i >= len(s.src) {
		return 0
	}
	return foldByte(s.src[i])
}

// Slice returns the exact original text in [start, stop), unfolded.
func (s *CaseFoldingStream) Slice(start, stop int) string {
	if start < 0 {
		start = 0
	}
	if stop > len(s.src) {
		stop = len(s.src)
	}
	if start >= stop {
		return ""
	}
	return s.src[start:stop]
}

// Len returns the input length in bytes.
func (s *CaseFoldingStream) Len() int {
	return len(s.src)
}

// foldByte folds lowercase ASCII to uppercase and is the identity for
// everything else, so folding is idempotent across the whole byte range.
func foldByte(b byte) byte {
	if 'a' <= b && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}
