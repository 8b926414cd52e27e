// Package tokenize splits a raw input line into the token sequence the
// command engine consumes. Double quotes group words into one token; there
// are no escapes, pipes or other shell grammar at this layer.
package tokenize

import (
	"strings"
	"unicode"
)

// Split breaks line on whitespace, keeping double-quoted spans together. An
// unterminated quote runs to the end of the line. Quoted empty strings yield
// empty tokens.
func Split(line string) []string {
	var tokens []string
	var current strings.Builder
	inQuote := false
	started := false

	flush := func() {
		if started {
			tokens = append(tokens, current.String())
			current.Reset()
			started = false
		}
	}

	for _, r := range line {
		switch {
		case r == '"':
			inQuote = !inQuote
			started = true
		case unicode.IsSpace(r) && !inQuote:
			flush()
		default:
			current.WriteRune(r)
			started = true
		}
	}
	flush()
	return tokens
}
