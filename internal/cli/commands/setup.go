// Package commands implements the sqlfront CLI subcommands.
package commands

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/leapstack-labs/sqlfront/internal/cli/config"
	"github.com/leapstack-labs/sqlfront/pkg/parser"
	"github.com/spf13/cobra"
)

// configKey is used to store config in the command context.
type configKey struct{}

// WithConfig returns a context carrying cfg for command handlers.
func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// configFromCmd retrieves the config from the command context.
func configFromCmd(cmd *cobra.Command) *config.Config {
	if c, ok := cmd.Context().Value(configKey{}).(*config.Config); ok {
		return c
	}
	return &config.Config{}
}

// parserConfig maps the CLI configuration onto the parser configuration.
func parserConfig(cfg *config.Config) parser.Config {
	return parser.Config{
		MaxErrors:           cfg.MaxErrors,
		DoubleQuotedStrings: cfg.DoubleQuotedStrings,
		CollectComments:     cfg.Comments,
	}
}

// newLogger builds the logger handed to the frontend. Log output goes to
// stderr only when verbose is set.
func newLogger(cfg *config.Config) *slog.Logger {
	if !cfg.Verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

// readInputs resolves the SQL sources for a command: inline -c text takes
// priority, otherwise each file argument is read in order. The returned
// names parallel the sources and are used to label output and errors.
func readInputs(inline string, args []string) (names, sources []string, err error) {
	if inline != "" {
		return []string{"<command>"}, []string{inline}, nil
	}
	for _, path := range args {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, nil, err
		}
		names = append(names, path)
		sources = append(sources, string(content))
	}
	return names, sources, nil
}
