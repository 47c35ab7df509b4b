package main

import (
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

var queryNull bool

var queryCmd = &cobra.Command{
	Use:   "query <template> [params...]",
	Short: "Render a ? template",
	Long: `Render a statement template, replacing each ? with the matching
parameter as an escaped literal.`,
	Example: `  qsql query "SELECT * FROM users WHERE id = ? AND name = ?" 7 "O'Brien"`,
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		params := lo.Map(args[1:], func(s string, _ int) any { return literal(s, queryNull) })
		sq := newBuilder(cmd.ErrOrStderr()).Query(args[0], params...)
		printStatement(cmd.OutOrStdout(), sq)
		return nil
	},
}

func init() {
	queryCmd.Flags().BoolVar(&queryNull, "null", false, "treat the argument NULL as a null value")
}
