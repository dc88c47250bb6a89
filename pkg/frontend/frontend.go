package frontend

import (
	"errors"
	"io"
	"log/slog"

	"github.com/leapstack-labs/sqlfront/pkg/ast"
	"github.com/leapstack-labs/sqlfront/pkg/parser"
)

// Frontend drives one parse from raw command text to a normalized AST.
// It is a stateless value: all lexer, parser, and error-sink state is
// created fresh per Parse call and discarded with it, so independent
// calls are safe from any goroutine.
type Frontend struct {
	logger *slog.Logger
}

// New creates a Frontend. A nil logger discards all log output.
func New(logger *slog.Logger) Frontend {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return Frontend{logger: logger}
}

// Parse tokenizes and parses one SQL command and returns its normalized
// AST. Exactly one of the AST or an error results: any lexical or
// syntactic problem, recovered or not, surfaces as a single *SyntaxError
// aggregating every recognition error in encounter order, and no partial
// AST is ever returned alongside it.
func (f Frontend) Parse(sql string, cfg parser.Config) (*ast.Node, error) {
	f.logger.Info("parsing command", "sql", sql)

	stream := NewCaseFoldingStream(sql)
	sink := NewErrorSink()
	p := parser.New(stream, cfg, sink)

	root, err := p.ParseStatement()
	if err != nil {
		// The entry production exited via an unrecovered recognition
		// failure; fold any previously collected errors into it.
		var rec *parser.RecognitionError
		if !errors.As(err, &rec) {
			f.logger.Info("parse failed", "error", err)
			return nil, err
		}
		raised := sink.Raise(rec)
		f.logger.Info("parse failed", "error", raised)
		return nil, raised
	}

	// The grammar returned normally, but recovered errors still fail the
	// parse as one aggregated diagnostic.
	if err := sink.Err(); err != nil {
		f.logger.Info("parse failed", "error", err)
		return nil, err
	}

	node := normalize(root, p.Tokens())
	f.logger.Info("parse completed")
	return node, nil
}
