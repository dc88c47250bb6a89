package parser

// Config controls lexer and parser behavior for a single parse.
// The zero value is a usable default.
type Config struct {
	// MaxErrors aborts the parse once this many recognition errors have
	// been reported. 0 means no limit.
	MaxErrors int

	// DoubleQuotedStrings lexes "..." as a string literal instead of a
	// quoted identifier.
	DoubleQuotedStrings bool

	// CollectComments makes the lexer keep comments for later tooling.
	CollectComments bool
}
