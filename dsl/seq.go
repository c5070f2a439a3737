package dsl

import (
	"context"

	textscan "github.com/reoring/textscan"
)

// elems drives the pull protocol for sequence-like shapes. Bounded mode stops
// at the arity limit, unbounded mode stops when the input is exhausted. The
// limit is checked before the lookahead, so a zero-arity sequence never
// touches the cursor.
type elems struct {
	src     textscan.Source
	count   int
	limit   int
	bounded bool
}

func newElems(src textscan.Source) *elems { return &elems{src: src} }

func (e *elems) withLimit(n int) *elems {
	e.limit = n
	e.bounded = true
	return e
}

// more reports whether another element should be pulled, counting it.
func (e *elems) more() bool {
	if e.bounded && e.count >= e.limit {
		return false
	}
	if _, ok := e.src.Peek(); !ok {
		return false
	}
	e.count++
	return true
}

// SliceOf decodes elements until the input is exhausted. This is how a
// trailing list terminates: by exhaustion, never by a count, so a slice
// followed by further fields will swallow them.
func SliceOf[T any](inner textscan.Shape[T]) textscan.Shape[[]T] {
	return textscan.ShapeFunc[[]T](func(ctx context.Context, src textscan.Source) ([]T, error) {
		var out []T
		for e := newElems(src); e.more(); {
			v, err := inner.Decode(ctx, src)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	})
}

// ArrayOf decodes exactly n elements. Running out of tokens before the n-th
// element fails with end_of_input; tokens beyond the n-th are left alone.
func ArrayOf[T any](n int, inner textscan.Shape[T]) textscan.Shape[[]T] {
	return textscan.ShapeFunc[[]T](func(ctx context.Context, src textscan.Source) ([]T, error) {
		out := make([]T, 0, n)
		e := newElems(src).withLimit(n)
		for e.more() {
			v, err := inner.Decode(ctx, src)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		if len(out) < n {
			return nil, textscan.ErrEndOfInput(src.Location())
		}
		return out, nil
	})
}

// Bytes decodes the remaining tokens as a list of 8-bit unsigned integers.
// The tokens are numeric text, so the result is always an owned buffer; the
// input can never be reinterpreted as a raw byte view.
func Bytes() textscan.Shape[[]byte] {
	return SliceOf(Uint8())
}
