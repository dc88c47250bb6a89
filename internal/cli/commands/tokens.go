package commands

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/leapstack-labs/sqlfront/pkg/frontend"
	"github.com/leapstack-labs/sqlfront/pkg/parser"
	"github.com/leapstack-labs/sqlfront/pkg/token"
	"github.com/spf13/cobra"
)

// TokensOptions holds options for the tokens command.
type TokensOptions struct {
	Command string
}

// NewTokensCommand creates the tokens command.
func NewTokensCommand() *cobra.Command {
	opts := &TokensOptions{}

	cmd := &cobra.Command{
		Use:   "tokens [file...]",
		Short: "Lex SQL and print the token stream",
		Long: `Lex one or more SQL files (or an inline command) and print every
token with its type, original text, and source position.

Keywords are matched case-insensitively but the printed text always
preserves the source spelling.`,
		Example: `  # Show tokens for inline SQL
  sqlfront tokens -c "select A from T"`,
		Args: func(_ *cobra.Command, args []string) error {
			if opts.Command == "" && len(args) == 0 {
				return fmt.Errorf("provide at least one file or use -c")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTokens(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Command, "command", "c", "", "Lex SQL from the command line instead of files")

	return cmd
}

func runTokens(cmd *cobra.Command, args []string, opts *TokensOptions) error {
	cfg := configFromCmd(cmd)
	pcfg := parserConfig(cfg)

	names, sources, err := readInputs(opts.Command, args)
	if err != nil {
		return err
	}

	for i, src := range sources {
		if len(sources) > 1 {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "-- %s\n", names[i])
		}
		sink := frontend.NewErrorSink()
		p := parser.New(frontend.NewCaseFoldingStream(src), pcfg, sink)
		renderTokens(cmd.OutOrStdout(), p.Tokens())
		if err := sink.Err(); err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", names[i], err)
		}
	}

	return nil
}

// renderTokens prints the token stream as a table, one row per token,
// ending at (and excluding) EOF.
func renderTokens(w io.Writer, stream *token.Stream) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Type", "Text", "Line", "Col"})

	n := 0
	for i := 0; i < stream.Len(); i++ {
		tok := stream.Get(i)
		if tok.Type == token.EOF {
			break
		}
		t.AppendRow(table.Row{i, tok.Type.String(), tok.Literal, tok.Pos.Line, tok.Pos.Column})
		n++
	}

	t.Render()
	_, _ = fmt.Fprintf(w, "(%d tokens)\n", n)
}
