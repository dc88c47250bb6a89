package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/leapstack-labs/sqlfront/pkg/frontend"
	"github.com/leapstack-labs/sqlfront/pkg/parser"
	"github.com/spf13/cobra"
)

const replPrompt = "sqlfront> "
const replContPrompt = "     ...> "

// NewREPLCommand creates the repl command.
func NewREPLCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Parse SQL interactively",
		Long: `Start an interactive loop that parses each statement and prints its
syntax tree. Statements may span multiple lines and end with a
semicolon. Type .help for the available dot-commands.`,
		RunE: runREPL,
	}
}

func runREPL(cmd *cobra.Command, _ []string) error {
	cfg := configFromCmd(cmd)
	fe := frontend.New(newLogger(cfg))
	pcfg := parserConfig(cfg)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          replPrompt,
		HistoryFile:     ".sqlfront_history",
		AutoComplete:    newREPLCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "sqlfront REPL")
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Type .help for commands, .quit to exit")
	_, _ = fmt.Fprintln(cmd.OutOrStdout())

	showTokens := false
	var buf strings.Builder
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			buf.Reset()
			rl.SetPrompt(replPrompt)
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		// Dot-commands only apply outside a continuation.
		if buf.Len() == 0 && strings.HasPrefix(line, ".") {
			if line == ".quit" || line == ".exit" {
				break
			}
			handleREPLCommand(cmd, line, &showTokens)
			continue
		}

		// Accumulate multi-line SQL until semicolon
		buf.WriteString(line)
		if !strings.HasSuffix(line, ";") {
			buf.WriteString(" ")
			rl.SetPrompt(replContPrompt)
			continue
		}
		rl.SetPrompt(replPrompt)

		sql := buf.String()
		buf.Reset()

		if showTokens {
			sink := frontend.NewErrorSink()
			p := parser.New(frontend.NewCaseFoldingStream(sql), pcfg, sink)
			renderTokens(cmd.OutOrStdout(), p.Tokens())
		}

		node, err := fe.Parse(sql, pcfg)
		if err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		} else {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), node.String())
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout())
	}

	return nil
}

func handleREPLCommand(cmd *cobra.Command, line string, showTokens *bool) {
	switch strings.ToLower(strings.Fields(line)[0]) {
	case ".help":
		printREPLHelp(cmd.OutOrStdout())

	case ".tokens":
		*showTokens = !*showTokens
		if *showTokens {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Token output on")
		} else {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Token output off")
		}

	case ".clear":
		fmt.Print("\033[H\033[2J")

	default:
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Unknown command: %s (type .help for commands)\n", line)
	}
}

func printREPLHelp(w io.Writer) {
	help := `
Commands:
  .help           Show this help message
  .tokens         Toggle printing the token stream before each tree
  .clear          Clear the screen
  .quit / .exit   Exit the REPL

Tips:
  - SQL statements must end with a semicolon (;)
  - Use arrow keys to navigate history
`
	_, _ = fmt.Fprintln(w, help)
}

func newREPLCompleter() *readline.PrefixCompleter {
	return readline.NewPrefixCompleter(
		readline.PcItem(".help"),
		readline.PcItem(".tokens"),
		readline.PcItem(".clear"),
		readline.PcItem(".quit"),
		readline.PcItem(".exit"),
	)
}
