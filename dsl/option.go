package dsl

import (
	"context"

	textscan "github.com/reoring/textscan"
)

// Option decodes the inner shape when a token remains and yields nil
// otherwise. Absence is keyed purely off input exhaustion: the format has no
// marker for "explicitly empty", so an option followed by further fields
// cannot be absent mid-stream.
func Option[T any](inner textscan.Shape[T]) textscan.Shape[*T] {
	return textscan.ShapeFunc[*T](func(ctx context.Context, src textscan.Source) (*T, error) {
		if _, ok := src.Peek(); !ok {
			return nil, nil
		}
		v, err := inner.Decode(ctx, src)
		if err != nil {
			return nil, err
		}
		return &v, nil
	})
}
