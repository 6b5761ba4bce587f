// Package shellwords splits strings into words using POSIX shell rules
// and quotes words so that a shell reads them back intact.
//
// Splitting understands space, tab, and newline as separators, '#'
// comments running to the end of the line, single- and double-quoted
// sections, and backslash escapes, removing the quoting as it goes. It
// performs no expansion of any kind: variables, globs, tildes, command
// substitutions, and operators such as '|' or '>' come back as plain
// text. Input is handled as bytes, so multi-byte characters pass
// through untouched.
//
// One rule deliberately differs from POSIX sh: inside single quotes,
// the sequences \' and \\ stand for a single quote and a backslash, so
// a quote can be written within a single-quoted section. Every other
// backslash sequence inside single quotes is kept as-is, backslash
// included.
package shellwords

import "strings"

// Split splits s into words, removing quotes and comments as it goes.
// If s ends in the middle of a construct, Split returns nil words and
// one of ErrTrailingBackslash, ErrUnclosedDoubleQuote, or
// ErrUnclosedSingleQuote.
func Split(s string) ([]string, error) {
	var words []string
	for word, err := range NewScanner(strings.NewReader(s)).Words() {
		if err != nil {
			return nil, err
		}
		words = append(words, word)
	}
	return words, nil
}

// Join quotes each word and joins them with single spaces. Split, or a
// POSIX shell, splits the result back into the original words.
func Join(words ...string) string {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = Quote(w)
	}
	return strings.Join(quoted, " ")
}
