// Package cli provides the command-line interface for sqlfront.
package cli

import (
	"fmt"
	"os"

	"github.com/leapstack-labs/sqlfront/internal/cli/commands"
	"github.com/leapstack-labs/sqlfront/internal/cli/config"
	"github.com/spf13/cobra"
)

var cfgFile string

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sqlfront",
		Short: "sqlfront - SQL front end",
		Long: `sqlfront parses SQL commands into syntax trees.

It lexes with case-insensitive keyword matching while preserving the
original text, collects every syntax error of a statement into a single
diagnostic, and prints the normalized tree.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			cmd.SetContext(commands.WithConfig(cmd.Context(), cfg))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
`)

	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./sqlfront.yaml)")
	rootCmd.PersistentFlags().Int("max-errors", 0, "Abort parsing after this many syntax errors (0 = no limit)")
	rootCmd.PersistentFlags().Bool("double-quoted-strings", false, "Lex double-quoted text as string literals")
	rootCmd.PersistentFlags().Bool("comments", false, "Collect comments while lexing")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")

	// Add subcommands
	rootCmd.AddCommand(commands.NewParseCommand())
	rootCmd.AddCommand(commands.NewTokensCommand())
	rootCmd.AddCommand(commands.NewREPLCommand())
	rootCmd.AddCommand(commands.NewVersionCommand(Version))

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
