package textscan

import (
	tok "github.com/reoring/textscan/internal/token"
)

// Token describes one fragment of the input text. Text is a substring of the
// original input (zero-copy); Offset records its byte position.
type Token struct {
	Text   string
	Offset int64
}

// Source is the shared cursor every shape pulls from. Peek never advances;
// Next consumes, and a consumed token is never replayed. A Source is created
// per decode call and carries no state across calls.
type Source interface {
	// Peek reports the next token without consuming it.
	Peek() (Token, bool)
	// Next consumes the next token, or fails with an end_of_input issue.
	Next() (Token, error)
	// Location reports the current byte offset in the input.
	Location() int64
}

// Text wraps a string as a whitespace-delimited Source.
func Text(s string) Source { return &cursorSource{inner: tok.NewCursor(s, nil)} }

// TextFunc wraps a string as a Source split by the given delimiter predicate.
// The predicate is called once per rune in input order, so stateful
// predicates (see Template) observe every character exactly once.
func TextFunc(isDelim func(rune) bool, s string) Source {
	return &cursorSource{inner: tok.NewCursor(s, isDelim)}
}

type cursorSource struct {
	inner *tok.Cursor
}

func (c *cursorSource) Peek() (Token, bool) {
	t, ok := c.inner.Peek()
	if !ok {
		return Token{}, false
	}
	return Token{Text: t.Text, Offset: t.Offset}, true
}

func (c *cursorSource) Next() (Token, error) {
	t, ok := c.inner.Next()
	if !ok {
		return Token{}, ErrEndOfInput(c.inner.Location())
	}
	return Token{Text: t.Text, Offset: t.Offset}, nil
}

func (c *cursorSource) Location() int64 { return c.inner.Location() }
