package main

import (
	"io"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/maxshaw/qsql"
	"github.com/maxshaw/qsql/internal/cli"
)

var (
	// Global state set during PersistentPreRunE
	cfg        *cli.Config
	configPath string

	// Persistent flags
	cfgFile    string
	escapeChar string
	verbose    bool
	noColor    bool
)

var rootCmd = &cobra.Command{
	Use:   "qsql",
	Short: "Render SQL statements",
	Long: `qsql - SQL statement builder

qsql renders SELECT, INSERT, UPDATE, DELETE, DDL and table maintenance
statements with escaped literal values. Statements are printed, never executed.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "version" {
			return nil
		}

		var err error
		cfg, configPath, err = cli.LoadConfig(cfgFile)
		if err != nil {
			return cli.ConfigError("loading configuration", err)
		}

		flags := cmd.Flags()
		if flags.Changed("escape-char") {
			cfg.EscapeChar = escapeChar
			if err := cfg.Validate(); err != nil {
				return cli.ConfigError("invalid --escape-char", err)
			}
		}
		if flags.Changed("verbose") {
			cfg.Verbose = verbose
		}
		if flags.Changed("no-color") {
			cfg.Color = !noColor
		}
		if !cfg.Color {
			color.NoColor = true
		}

		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: auto-discover qsql.yaml)")
	rootCmd.PersistentFlags().StringVar(&escapeChar, "escape-char", "", `character prefixed onto \ and ' in literals (default \)`)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every rendered statement to stderr")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable keyword highlighting")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(escapeCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		cli.ExitWithError(err)
	}
}

// newBuilder returns a builder configured from cfg.
func newBuilder(stderr io.Writer) *qsql.Builder {
	opts := []qsql.Option{qsql.WithEscaper(cfg.Escaper())}
	if cfg.Verbose {
		opts = append(opts, qsql.WithLogger(log.New(stderr, "", 0)))
	}
	return qsql.New(opts...)
}

func printStatement(w io.Writer, sq string) {
	_, _ = io.WriteString(w, cli.Highlight(sq, cfg.EscapeChar)+"\n")
}

// openInput opens path for reading; "" and "-" mean stdin.
func openInput(cmd *cobra.Command, path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	return os.Open(path)
}
