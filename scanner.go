package shellwords

import (
	"bufio"
	"errors"
	"io"
	"iter"
)

// A Scanner splits a byte stream into words using shell quoting rules.
// Words are produced one at a time; see Next and Words.
type Scanner struct {
	r    io.ByteReader
	line int
}

// NewScanner returns a Scanner reading from r.
//
// If r implements io.ByteReader it is used directly, and the Scanner
// consumes no bytes beyond the words it has returned. Otherwise r is
// wrapped in a bufio.Reader, which may read ahead.
func NewScanner(r io.Reader) *Scanner {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Scanner{r: br, line: 1}
}

// Line returns the current line number: one plus the number of newline
// bytes consumed so far, including newlines inside quotes and comments.
func (s *Scanner) Line() int {
	return s.line
}

// Next returns the next word in the stream. It returns io.EOF once the
// input is exhausted, and ErrTrailingBackslash, ErrUnclosedDoubleQuote,
// or ErrUnclosedSingleQuote when the input ends in the middle of a
// construct. Errors from the underlying reader are returned unchanged.
func (s *Scanner) Next() (string, error) {
	for {
		b, err := s.readByte()
		if err != nil {
			return "", err
		}
		switch b {
		case ' ', '\t', '\n':
			continue
		case '#':
			// Comment: discard everything up to the next newline.
			for b != '\n' {
				b, err = s.readByte()
				if err != nil {
					return "", err
				}
			}
			continue
		}
		return s.scanWord(b)
	}
}

// Words returns a single-use iterator over the remaining words in the
// stream. Iteration stops at end of input, or after yielding the first
// error encountered.
func (s *Scanner) Words() iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for {
			word, err := s.Next()
			if errors.Is(err, io.EOF) {
				return
			}
			if !yield(word, err) || err != nil {
				return
			}
		}
	}
}

// readByte reads the next byte, keeping the line count current.
func (s *Scanner) readByte() (byte, error) {
	b, err := s.r.ReadByte()
	if err == nil && b == '\n' {
		s.line++
	}
	return b, err
}

// scanWord reads a single word starting with the byte b, which is known
// not to be a delimiter. A partial word is never returned: on error the
// bytes accumulated so far are discarded.
func (s *Scanner) scanWord(b byte) (string, error) {
	var word []byte
	for {
		var err error
		switch b {
		case ' ', '\t', '\n':
			return string(word), nil
		case '"':
			word, err = s.scanDoubleQuoted(word)
		case '\'':
			word, err = s.scanSingleQuoted(word)
		case '\\':
			word, err = s.scanEscape(word)
		default:
			word = append(word, b)
		}
		if err != nil {
			return "", err
		}

		b, err = s.readByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return string(word), nil
			}
			return "", err
		}
	}
}

// scanDoubleQuoted appends the contents of a double-quoted section to
// word. The opening quote has already been consumed. Backslash escapes
// '$', '`', '"', and '\'; a backslash-newline pair is dropped entirely;
// any other escape is kept verbatim, backslash included.
func (s *Scanner) scanDoubleQuoted(word []byte) ([]byte, error) {
	for {
		b, err := s.readByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, ErrUnclosedDoubleQuote
			}
			return nil, err
		}
		switch b {
		case '"':
			return word, nil
		case '\\':
			nb, err := s.readByte()
			if err != nil {
				if errors.Is(err, io.EOF) {
					return nil, ErrTrailingBackslash
				}
				return nil, err
			}
			switch nb {
			case '$', '`', '"', '\\':
				word = append(word, nb)
			case '\n':
				// Line continuation.
			default:
				word = append(word, '\\', nb)
			}
		default:
			word = append(word, b)
		}
	}
}

// scanSingleQuoted appends the contents of a single-quoted section to
// word. The opening quote has already been consumed. Unlike POSIX sh,
// backslash escapes '\'' and '\\'; any other escape is kept verbatim,
// backslash included.
func (s *Scanner) scanSingleQuoted(word []byte) ([]byte, error) {
	for {
		b, err := s.readByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, ErrUnclosedSingleQuote
			}
			return nil, err
		}
		switch b {
		case '\'':
			return word, nil
		case '\\':
			nb, err := s.readByte()
			if err != nil {
				if errors.Is(err, io.EOF) {
					return nil, ErrTrailingBackslash
				}
				return nil, err
			}
			switch nb {
			case '\'', '\\':
				word = append(word, nb)
			default:
				word = append(word, '\\', nb)
			}
		default:
			word = append(word, b)
		}
	}
}

// scanEscape handles a backslash outside of any quotes: the next byte is
// taken literally, except that a backslash-newline pair is dropped as a
// line continuation.
func (s *Scanner) scanEscape(word []byte) ([]byte, error) {
	b, err := s.readByte()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrTrailingBackslash
		}
		return nil, err
	}
	if b != '\n' {
		word = append(word, b)
	}
	return word, nil
}
