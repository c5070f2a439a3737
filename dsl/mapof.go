package dsl

import (
	"context"

	textscan "github.com/reoring/textscan"
)

// MapOf decodes alternating key/value pairs until the input is exhausted.
// A key with no following value fails with end_of_input. For the ad-hoc
// "decode whatever" map, use MapOf(String(), Any()).
func MapOf[K comparable, V any](key textscan.Shape[K], val textscan.Shape[V]) textscan.Shape[map[K]V] {
	return textscan.ShapeFunc[map[K]V](func(ctx context.Context, src textscan.Source) (map[K]V, error) {
		out := map[K]V{}
		for e := newElems(src); e.more(); {
			k, err := key.Decode(ctx, src)
			if err != nil {
				return nil, err
			}
			v, err := val.Decode(ctx, src)
			if err != nil {
				return nil, err
			}
			out[k] = v
		}
		return out, nil
	})
}
