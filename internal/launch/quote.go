package launch

import "strings"

// quoteDouble wraps s in double quotes with embedded quotes
// backslash-escaped. Used for open(1) arguments and bash fragments.
func quoteDouble(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}

// quoteSingle wraps s in single quotes for POSIX shells, closing and
// reopening the quote around embedded single quotes. The content reaches
// the inner shell byte-for-byte, so $PWD and $SHELL survive for it to
// expand.
func quoteSingle(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// quoteWindowsPath wraps a path for cmd.exe consumption. Embedded double
// quotes pass through unescaped: cmd has no reliable escape for them inside
// a quoted string, and rejecting such a path would block launches over a
// character Windows paths essentially never contain.
func quoteWindowsPath(p string) string {
	return `"` + p + `"`
}

// quotePowerShellSingle escapes s for a PowerShell single-quoted string,
// where a quote is doubled rather than backslashed.
func quotePowerShellSingle(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
