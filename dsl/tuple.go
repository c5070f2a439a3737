package dsl

import (
	"context"

	textscan "github.com/reoring/textscan"
)

// TupleOf decodes one value per element shape, in order, and fails with
// end_of_input when the tokens run out early. Trailing tokens beyond the
// arity are left for the caller.
func TupleOf(elements ...Adapter) textscan.Shape[[]any] {
	return textscan.ShapeFunc[[]any](func(ctx context.Context, src textscan.Source) ([]any, error) {
		return decodeTuple(ctx, src, elements)
	})
}

func decodeTuple(ctx context.Context, src textscan.Source, elements []Adapter) ([]any, error) {
	out := make([]any, 0, len(elements))
	e := newElems(src).withLimit(len(elements))
	for e.more() {
		v, err := elements[len(out)].run(ctx, src)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if len(out) < len(elements) {
		return nil, textscan.ErrEndOfInput(src.Location())
	}
	return out, nil
}
