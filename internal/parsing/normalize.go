// Package parsing provides text normalization and section detection for résumé text.
package parsing

import (
	"strings"
	"unicode"
)

// safePunctuation lists the non-alphanumeric characters that survive normalization.
const safePunctuation = "@.,-()/+#_"

// isSafe reports whether r is kept verbatim by Normalize.
func isSafe(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || strings.ContainsRune(safePunctuation, r)
}

// isApostrophe reports whether r is a word-internal mark that is dropped
// without leaving a gap ("Master's" becomes "Masters").
func isApostrophe(r rune) bool {
	return r == '\'' || r == '’' || r == '‘' || r == '`'
}

// Normalize cleans raw résumé text for the extractors. It converts line endings
// to \n and tabs to spaces, replaces characters outside the safelist with a
// gap, and collapses each gap of whitespace and stripped characters:
//   - a gap containing two or more line breaks becomes a paragraph break ("\n\n")
//   - a gap containing exactly one line break becomes "\n"
//   - a gap within a line holding three or more contiguous whitespace
//     characters becomes a paragraph break ("\n\n")
//   - any other gap becomes a single space
//
// Leading and trailing whitespace is removed. Normalize is total and
// idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(raw))

	var (
		inGap    bool
		spaces   int // contiguous whitespace in the current gap
		widest   int
		newlines int
		started  bool
	)

	flush := func() {
		if !inGap {
			return
		}
		if started {
			switch {
			case newlines >= 2:
				b.WriteString("\n\n")
			case newlines == 1:
				b.WriteByte('\n')
			case widest >= 3:
				b.WriteString("\n\n")
			default:
				b.WriteByte(' ')
			}
		}
		inGap, spaces, widest, newlines = false, 0, 0, 0
	}

	space := func() {
		inGap = true
		spaces++
		if spaces > widest {
			widest = spaces
		}
	}

	prevCR := false
	for _, r := range raw {
		if r == '\n' && prevCR {
			// second half of a CRLF pair, already counted
			prevCR = false
			continue
		}
		prevCR = r == '\r'

		switch {
		case r == '\r' || r == '\n':
			space()
			newlines++
		case isApostrophe(r):
			// dropped without breaking the word
		case unicode.IsSpace(r):
			space()
		case !isSafe(r):
			inGap = true
			spaces = 0
		default:
			flush()
			b.WriteRune(r)
			started = true
		}
	}

	return b.String()
}

// Lines splits normalized text into trimmed, non-empty lines.
func Lines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

// CollapseSpaces joins all whitespace runs, line breaks included, into single spaces.
func CollapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
