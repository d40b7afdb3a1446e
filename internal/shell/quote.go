// Package shell builds safely quoted POSIX shell arguments.
package shell

import "strings"

// Quote wraps s in single quotes for use in a POSIX shell command.
// Embedded single quotes are handled by closing the quoted string,
// emitting an escaped quote, and reopening: ' -> '\''.
func Quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
