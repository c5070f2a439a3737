// Package token implements the lazy token cursor shared by every decode call.
// It splits a borrowed input string at maximal runs of delimiter runes,
// discards empty fragments, and exposes one token of lookahead. Tokens are
// substrings of the input (no copies) carrying their byte offset.
package token

import (
	"unicode"
	"unicode/utf8"
)

// Token is a non-owning view into the original input text.
type Token struct {
	Text   string
	Offset int64
}

// Whitespace is the default delimiter predicate.
func Whitespace(r rune) bool { return unicode.IsSpace(r) }

// Cursor walks the input left to right. The delimiter predicate is invoked
// exactly once per rune, in input order; scan-template predicates rely on
// that to track their position in the template. Once Next returns a token it
// is never returned again; Peek never advances past the buffered token.
type Cursor struct {
	input    string
	pos      int
	isDelim  func(rune) bool
	ahead    Token
	buffered bool
	done     bool
}

// NewCursor returns a cursor over input. A nil predicate means whitespace.
func NewCursor(input string, isDelim func(rune) bool) *Cursor {
	if isDelim == nil {
		isDelim = Whitespace
	}
	return &Cursor{input: input, isDelim: isDelim}
}

// Peek reports the next token without consuming it.
func (c *Cursor) Peek() (Token, bool) {
	if c.buffered {
		return c.ahead, true
	}
	tok, ok := c.scan()
	if !ok {
		return Token{}, false
	}
	c.ahead = tok
	c.buffered = true
	return tok, true
}

// Next consumes and returns the next token.
func (c *Cursor) Next() (Token, bool) {
	if c.buffered {
		c.buffered = false
		return c.ahead, true
	}
	return c.scan()
}

// Location reports the byte offset of the scan position: the start of the
// buffered token when one is held, the raw position otherwise.
func (c *Cursor) Location() int64 {
	if c.buffered {
		return c.ahead.Offset
	}
	return int64(c.pos)
}

// scan advances over a delimiter run, then collects the following non-empty
// fragment. It runs at most one token ahead of the caller.
func (c *Cursor) scan() (Token, bool) {
	if c.done {
		return Token{}, false
	}
	for c.pos < len(c.input) {
		start := c.pos
		// find the end of the current fragment
		end := start
		for end < len(c.input) {
			r, size := utf8.DecodeRuneInString(c.input[end:])
			if c.isDelim(r) {
				c.pos = end + size
				break
			}
			end += size
		}
		if end == len(c.input) {
			c.pos = end
			c.done = true
		}
		if end > start {
			return Token{Text: c.input[start:end], Offset: int64(start)}, true
		}
		// empty fragment between adjacent delimiters; keep going
	}
	c.done = true
	return Token{}, false
}
