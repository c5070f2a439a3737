package textscan

import (
	"context"
	"strings"
	"unicode"
)

// Template compiles a scan pattern into a delimiter predicate for DecodeWith.
// The pattern mixes literal characters, whitespace, and `{}` placeholders:
// literal characters must appear in the input in order and are stripped as
// delimiters, a whitespace character in the pattern matches any run of input
// whitespace, and each `{}` leaves a token for the decoder. A literal
// mismatch stops stripping, so the offending characters stay inside the next
// token and the value decode fails there.
//
// The returned predicate is stateful and single-use: compile a fresh one per
// input line.
func Template(pattern string) func(rune) bool {
	chaff := []rune(strings.ReplaceAll(pattern, "{}", ""))
	i := 0
	inRun := false
	return func(c rune) bool {
		for {
			if i >= len(chaff) {
				return false
			}
			ch := chaff[i]
			if unicode.IsSpace(ch) {
				if unicode.IsSpace(c) {
					inRun = true
					return true
				}
				if inRun {
					// the whitespace run ended; move past this pattern
					// position and retry against the next literal
					inRun = false
					i++
					continue
				}
				return false
			}
			if c == ch {
				i++
				return true
			}
			return false
		}
	}
}

// Scan decodes input against a scan pattern; see Template. Useful for
// extracting fields from ad-hoc text like "#1 @ 555,891: 18x12".
func Scan[T any](ctx context.Context, s Shape[T], pattern, input string) (T, error) {
	return DecodeWith(ctx, s, Template(pattern), input)
}
