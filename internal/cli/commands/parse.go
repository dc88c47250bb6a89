package commands

import (
	"fmt"

	"github.com/leapstack-labs/sqlfront/pkg/frontend"
	"github.com/spf13/cobra"
)

// ParseOptions holds options for the parse command.
type ParseOptions struct {
	Command string
}

// NewParseCommand creates the parse command.
func NewParseCommand() *cobra.Command {
	opts := &ParseOptions{}

	cmd := &cobra.Command{
		Use:   "parse [file...]",
		Short: "Parse SQL and print the syntax tree",
		Long: `Parse one or more SQL files (or an inline command) and print the
resulting syntax tree, one tree per input.

All syntax errors found in an input are reported together in a single
diagnostic, each with its line and column.`,
		Example: `  # Parse a file
  sqlfront parse query.sql

  # Parse inline SQL
  sqlfront parse -c "SELECT a, b FROM t WHERE a > 1"`,
		Args: func(_ *cobra.Command, args []string) error {
			if opts.Command == "" && len(args) == 0 {
				return fmt.Errorf("provide at least one file or use -c")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Command, "command", "c", "", "Parse SQL from the command line instead of files")

	return cmd
}

func runParse(cmd *cobra.Command, args []string, opts *ParseOptions) error {
	cfg := configFromCmd(cmd)
	fe := frontend.New(newLogger(cfg))
	pcfg := parserConfig(cfg)

	names, sources, err := readInputs(opts.Command, args)
	if err != nil {
		return err
	}

	var failed int
	for i, src := range sources {
		if len(sources) > 1 {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "-- %s\n", names[i])
		}
		node, err := fe.Parse(src, pcfg)
		if err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", names[i], err)
			failed++
			continue
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), node.String())
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d inputs failed to parse", failed, len(sources))
	}
	return nil
}
