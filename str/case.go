package str

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CamelCase lower-cases s, drops every run of '-', '_' or whitespace and
// upper-cases the character that follows it. The first character is always
// lower case.
//
//	CamelCase("hello-world_test")  // → "helloWorldTest"
//	CamelCase("Foo  BAR")          // → "fooBar"
func CamelCase(s string) string {
	upper := cases.Upper(language.Und)
	lower := cases.Lower(language.Und)

	var b strings.Builder
	b.Grow(len(s))
	boundary := false
	for _, r := range lower.String(s) {
		if r == '-' || r == '_' || unicode.IsSpace(r) {
			boundary = true
			continue
		}
		if boundary {
			b.WriteString(upper.String(string(r)))
			boundary = false
			continue
		}
		b.WriteRune(r)
	}

	out := b.String()
	first, size := utf8.DecodeRuneInString(out)
	if size == 0 {
		return out
	}
	return lower.String(string(first)) + out[size:]
}

// KebabCase trims and lower-cases s, turns every run of whitespace or '_'
// into a single '-' and drops anything outside [a-z0-9-].
//
//	KebabCase("Hello World!")     // → "hello-world"
//	KebabCase("snake_case value") // → "snake-case-value"
func KebabCase(s string) string {
	s = collapse(normalize(s), func(r rune) bool { return r == '_' || unicode.IsSpace(r) })
	return keepSlugChars(s)
}

// Slugify trims and lower-cases s, turns whitespace runs into '-', drops
// anything outside [a-z0-9-] and collapses repeated '-'.
//
//	Slugify("  Foo   Bar--Baz  ") // → "foo-bar-baz"
func Slugify(s string) string {
	s = keepSlugChars(collapse(normalize(s), unicode.IsSpace))
	return collapse(s, func(r rune) bool { return r == '-' })
}

func normalize(s string) string {
	return cases.Lower(language.Und).String(strings.TrimSpace(s))
}

// collapse replaces each maximal run of runes matching sep with one '-'.
func collapse(s string, sep func(rune) bool) string {
	var b strings.Builder
	b.Grow(len(s))
	inRun := false
	for _, r := range s {
		if sep(r) {
			if !inRun {
				b.WriteByte('-')
				inRun = true
			}
			continue
		}
		inRun = false
		b.WriteRune(r)
	}
	return b.String()
}

func keepSlugChars(s string) string {
	return strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			return r
		}
		return -1
	}, s)
}
