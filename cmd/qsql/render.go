package main

import (
	"github.com/spf13/cobra"

	"github.com/maxshaw/qsql/internal/cli"
	"github.com/maxshaw/qsql/internal/script"
)

var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Render the statements of a YAML script",
	Long: `Render every statement of a YAML script, one per line.

The script is read from the given file, or from stdin when the file is
omitted or "-".`,
	Example: `  # Render a script
  qsql render statements.yaml

  # Render from stdin with SQL-standard quote doubling
  cat statements.yaml | qsql render --escape-char "'"`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) > 0 {
			path = args[0]
		}
		return runRender(cmd, path)
	},
}

func runRender(cmd *cobra.Command, path string) error {
	in, err := openInput(cmd, path)
	if err != nil {
		return cli.GeneralError("opening script", err)
	}
	defer func() { _ = in.Close() }()

	f, err := script.Load(in)
	if err != nil {
		return cli.ScriptError("loading script", err)
	}

	statements, err := f.Render(newBuilder(cmd.ErrOrStderr()))
	for _, sq := range statements {
		printStatement(cmd.OutOrStdout(), sq)
	}
	if err != nil {
		return cli.ScriptError("rendering script", err)
	}
	return nil
}
