// Package main provides a CLI that renders SQL statements with qsql.
//
// The CLI supports:
//   - render: render every statement of a YAML script
//   - query: render a ? template with parameters
//   - escape: print values as escaped SQL literals
//   - version: print build information
//
// Nothing is ever sent to a database; statements are written to stdout.
//
// Usage:
//
//	qsql [flags] <command>
package main

func main() {
	Execute()
}
