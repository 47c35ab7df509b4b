package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var escapeNull bool

var escapeCmd = &cobra.Command{
	Use:     "escape <values...>",
	Short:   "Print values as escaped SQL literals",
	Example: `  qsql escape "it's" 'C:\temp'`,
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		esc := cfg.Escaper()
		for _, arg := range args {
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), esc.Escape(literal(arg, escapeNull))); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	escapeCmd.Flags().BoolVar(&escapeNull, "null", false, "treat the argument NULL as a null value")
}

// literal maps a command-line argument to the value it stands for. With null
// set, the argument NULL stands for a nil value.
func literal(arg string, null bool) any {
	if null && arg == "NULL" {
		return nil
	}
	return arg
}
