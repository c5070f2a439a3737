package dsl

import (
	"context"

	textscan "github.com/reoring/textscan"
)

// ProjectOf decodes inner and projects the result through fn. This is the
// shape for single-field wrapper types: the wrapper is transparent on the
// wire and only the projection differs.
func ProjectOf[A, B any](inner textscan.Shape[A], fn func(A) B) textscan.Shape[B] {
	return textscan.ShapeFunc[B](func(ctx context.Context, src textscan.Source) (B, error) {
		var zero B
		v, err := inner.Decode(ctx, src)
		if err != nil {
			return zero, err
		}
		return fn(v), nil
	})
}
