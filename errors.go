package shellwords

import "errors"

// Parsing errors returned by Split and Scanner. Each one indicates that the
// input ended in the middle of a construct; well formed input never fails
// partway through.
var (
	// ErrTrailingBackslash is returned when the input ends immediately
	// after a backslash, leaving it nothing to escape.
	ErrTrailingBackslash = errors.New("shellwords: trailing backslash at end of input")

	// ErrUnclosedDoubleQuote is returned when the input ends inside a
	// double-quoted section.
	ErrUnclosedDoubleQuote = errors.New("shellwords: unclosed double quote")

	// ErrUnclosedSingleQuote is returned when the input ends inside a
	// single-quoted section.
	ErrUnclosedSingleQuote = errors.New("shellwords: unclosed single quote")
)
