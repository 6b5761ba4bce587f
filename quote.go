package shellwords

import "strings"

// metaBytes marks the bytes that force a string to be quoted: shell
// control operators, quoting and expansion characters, whitespace, and
// glob characters.
var metaBytes = [256]bool{
	'|': true, '&': true, ';': true, '<': true, '>': true,
	'(': true, ')': true, '$': true, '`': true, '\\': true,
	'"': true, '\'': true, ' ': true, '\t': true, '\r': true,
	'\n': true, '*': true, '?': true, '[': true, '#': true,
	'~': true, '=': true, '%': true,
}

// dquoteEscapes marks the bytes that keep special meaning inside double
// quotes and need a backslash in quoted output.
var dquoteEscapes = [256]bool{
	'$': true, '`': true, '"': true, '\\': true,
}

// Quote returns s in a form that Split, or a POSIX shell, reads back as
// the single word s. A string containing no special bytes is returned
// unchanged. Anything else is wrapped in double quotes, with the bytes
// that stay special inside double quotes backslash-escaped. The empty
// string becomes a pair of double quotes.
func Quote(s string) string {
	if s == "" {
		return `""`
	}
	if !needsQuoting(s) {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		b := s[i]
		if dquoteEscapes[b] {
			sb.WriteByte('\\')
		}
		sb.WriteByte(b)
	}
	sb.WriteByte('"')
	return sb.String()
}

func needsQuoting(s string) bool {
	for i := 0; i < len(s); i++ {
		if metaBytes[s[i]] {
			return true
		}
	}
	return false
}
