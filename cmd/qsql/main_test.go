package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxshaw/qsql/internal/cli"
)

// execute runs the CLI in an empty repository so no config is discovered.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0o755))
	chdir(t, dir)

	prev := color.NoColor
	t.Cleanup(func() { color.NoColor = prev })
	resetFlags(rootCmd)

	var stdout, stderr bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(append([]string{"--no-color"}, args...))

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

// resetFlags restores every flag of cmd and its subcommands to its default,
// since cobra keeps parsed values between Execute calls.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func TestQueryCommand(t *testing.T) {
	out, _, err := execute(t, "", "query", "SELECT * FROM t WHERE id = ? AND name = ?", "7", "O'Brien")
	require.NoError(t, err)
	assert.Equal(t, cli.ExitSuccess, cli.ExitCode(err))
	assert.Equal(t, "SELECT * FROM t WHERE id = '7' AND name = 'O\\'Brien'\n", out)
}

func TestRenderCommandStdin(t *testing.T) {
	doc := `
statements:
  - {table: test, where: [{field: id, value: 1}], action: delete}
  - {table: test, action: delete}
`
	out, _, err := execute(t, doc, "render")
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM test WHERE id = '1'\nTRUNCATE TABLE test\n", out)
}

func TestRenderCommandFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "script.yaml")
	require.NoError(t, os.WriteFile(file, []byte("statements: [{table: test, action: get}]\n"), 0o644))

	out, _, err := execute(t, "", "render", file)
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM test LIMIT 1\n", out)
}

func TestRenderCommandInvalid(t *testing.T) {
	out, _, err := execute(t, "statements: [{table: a}, {table: b, action: nope}]", "render", "-")
	require.Error(t, err)
	assert.Equal(t, cli.ExitScript, cli.ExitCode(err))
	assert.Contains(t, err.Error(), `unknown action "nope"`)
	assert.Equal(t, "SELECT * FROM a\n", out)
}

func TestRenderCommandMissingFile(t *testing.T) {
	_, _, err := execute(t, "", "render", "/nonexistent/script.yaml")
	require.Error(t, err)
	assert.Equal(t, cli.ExitGeneral, cli.ExitCode(err))
}

func TestEscapeCommand(t *testing.T) {
	out, _, err := execute(t, "", "escape", "it's", `C:\temp`, "NULL")
	require.NoError(t, err)
	assert.Equal(t, "'it\\'s'\n'C:\\\\temp'\n'NULL'\n", out)
}

func TestNullFlag(t *testing.T) {
	out, _, err := execute(t, "", "escape", "--null", "NULL", "x")
	require.NoError(t, err)
	assert.Equal(t, "NULL\n'x'\n", out)

	// The escape flag does not carry over into query.
	out, _, err = execute(t, "", "query", "SELECT ?", "NULL")
	require.NoError(t, err)
	assert.Equal(t, "SELECT 'NULL'\n", out)

	out, _, err = execute(t, "", "query", "--null", "SELECT ?", "NULL")
	require.NoError(t, err)
	assert.Equal(t, "SELECT NULL\n", out)

	// Nor does it stick to escape on the next run.
	out, _, err = execute(t, "", "escape", "NULL")
	require.NoError(t, err)
	assert.Equal(t, "'NULL'\n", out)
}

func TestVersionCommand(t *testing.T) {
	out, _, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "qsql "))
}
