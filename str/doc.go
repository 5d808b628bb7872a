// Package str provides small string helpers: capitalisation, truncation
// with an ellipsis, camel/kebab/slug case conversion, reversal and
// centred padding.
//
//	str.Capitalize("  hELLO ")              // → "Hello"
//	str.CamelCase("hello-world_test")       // → "helloWorldTest"
//	str.KebabCase("Hello World!")           // → "hello-world"
//	str.Slugify("  Foo   Bar--Baz  ")       // → "foo-bar-baz"
//	s, _ := str.Pad("ab", 5, "*")           // → "*ab**"
//
// Lengths and positions are counted in runes, so multi-byte characters
// count once. Grapheme clusters made of several runes are not kept
// together.
//
// Case mapping uses golang.org/x/text/cases with the undetermined
// language, so results do not depend on the process locale.
package str
