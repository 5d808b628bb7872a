package str

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Ellipsis is appended by [Ellipsify] to truncated text.
const Ellipsis = "..."

// Capitalize trims surrounding whitespace, upper-cases the first character
// and lower-cases the rest.
//
//	Capitalize("  hELLO wORLD ") // → "Hello world"
func Capitalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	_, size := utf8.DecodeRuneInString(s)
	return cases.Upper(language.Und).String(s[:size]) + cases.Lower(language.Und).String(s[size:])
}

// Ellipsify returns text unchanged when it has at most length characters;
// otherwise it keeps the first length characters and appends [Ellipsis].
// Returns [ErrInvalidLength] when length is negative.
//
//	Ellipsify("Hello, world", 5) // → "Hello..."
func Ellipsify(text string, length int) (string, error) {
	if length < 0 {
		return "", fmt.Errorf("%w: got %d", ErrInvalidLength, length)
	}
	if utf8.RuneCountInString(text) <= length {
		return text, nil
	}
	runes := []rune(text)
	return string(runes[:length]) + Ellipsis, nil
}

// Reverse returns s with its runes in reverse order.
func Reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// Pad centres s in a field of length characters. The fill defaults to a
// single space. When the padding cannot be split evenly the right side
// gets the extra character:
//
//	Pad("ab", 6, "*") // → "**ab**"
//	Pad("ab", 5, "*") // → "*ab**"
//
// s is returned unchanged when it is already at least length characters.
// Returns [ErrInvalidPadChar] when fill is not exactly one character.
func Pad(s string, length int, fill ...string) (string, error) {
	char := " "
	if len(fill) > 0 {
		char = fill[0]
	}
	if utf8.RuneCountInString(char) != 1 {
		return "", fmt.Errorf("%w: got %q", ErrInvalidPadChar, char)
	}
	n := utf8.RuneCountInString(s)
	if n >= length {
		return s, nil
	}
	total := length - n
	left := total / 2
	return strings.Repeat(char, left) + s + strings.Repeat(char, total-left), nil
}
