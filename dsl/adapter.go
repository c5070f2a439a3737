package dsl

import (
	"context"

	textscan "github.com/reoring/textscan"
)

// Adapter erases a Shape[T] to an any-typed decoder so heterogeneous shapes
// can be composed positionally (tuples, record fields, enum payloads).
type Adapter struct {
	decode func(ctx context.Context, src textscan.Source) (any, error)
}

// Of wraps a strongly typed shape as an Adapter.
func Of[T any](s textscan.Shape[T]) Adapter {
	return Adapter{decode: func(ctx context.Context, src textscan.Source) (any, error) {
		v, err := s.Decode(ctx, src)
		if err != nil {
			return nil, err
		}
		return any(v), nil
	}}
}

func (ad Adapter) run(ctx context.Context, src textscan.Source) (any, error) {
	if ad.decode == nil {
		return nil, textscan.ErrUnsupported("empty adapter")
	}
	return ad.decode(ctx, src)
}
