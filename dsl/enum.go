package dsl

import (
	"context"
	"fmt"
	"strings"

	textscan "github.com/reoring/textscan"
)

// EnumBuilder declares an enumeration decoded by consuming one discriminant
// token and dispatching on it. Variant names are matched exactly unless
// Fold() is set; no casing convention is imposed beyond what the caller
// registers.
type EnumBuilder[T any] struct {
	order    []string
	variants map[string]func(ctx context.Context, src textscan.Source) (T, error)
	fold     bool
}

// Enum creates a new enumeration builder.
func Enum[T any]() *EnumBuilder[T] {
	return &EnumBuilder[T]{variants: map[string]func(context.Context, textscan.Source) (T, error){}}
}

// Fold makes discriminant matching case-insensitive.
func (b *EnumBuilder[T]) Fold() *EnumBuilder[T] {
	b.fold = true
	return b
}

func (b *EnumBuilder[T]) register(name string, fn func(context.Context, textscan.Source) (T, error)) *EnumBuilder[T] {
	if _, seen := b.variants[name]; !seen {
		b.order = append(b.order, name)
	}
	b.variants[name] = fn
	return b
}

// Unit registers a variant that consumes no payload and yields v.
func (b *EnumBuilder[T]) Unit(name string, v T) *EnumBuilder[T] {
	return b.register(name, func(ctx context.Context, src textscan.Source) (T, error) {
		return v, nil
	})
}

// Payload registers a single-payload variant: the payload shape decodes once
// and build turns it into T.
func (b *EnumBuilder[T]) Payload(name string, ad Adapter, build func(any) (T, error)) *EnumBuilder[T] {
	return b.register(name, func(ctx context.Context, src textscan.Source) (T, error) {
		var zero T
		v, err := ad.run(ctx, src)
		if err != nil {
			return zero, err
		}
		return build(v)
	})
}

// Tuple registers a variant whose payload is a bounded sequence of the given
// element shapes.
func (b *EnumBuilder[T]) Tuple(name string, elements []Adapter, build func([]any) (T, error)) *EnumBuilder[T] {
	return b.register(name, func(ctx context.Context, src textscan.Source) (T, error) {
		var zero T
		vs, err := decodeTuple(ctx, src, elements)
		if err != nil {
			return zero, err
		}
		return build(vs)
	})
}

// Struct registers a record-shaped variant. Selecting it always fails: the
// token stream has no field labels to drive a variant-local record.
func (b *EnumBuilder[T]) Struct(name string) *EnumBuilder[T] {
	return b.register(name, func(ctx context.Context, src textscan.Source) (T, error) {
		var zero T
		return zero, textscan.ErrUnsupported("struct enum variants")
	})
}

// Build returns the enumeration shape.
func (b *EnumBuilder[T]) Build() textscan.Shape[T] {
	order := append([]string(nil), b.order...)
	variants := make(map[string]func(context.Context, textscan.Source) (T, error), len(b.variants))
	for k, v := range b.variants {
		variants[k] = v
	}
	fold := b.fold
	return textscan.ShapeFunc[T](func(ctx context.Context, src textscan.Source) (T, error) {
		var zero T
		tok, err := src.Next()
		if err != nil {
			return zero, err
		}
		fn, ok := variants[tok.Text]
		if !ok && fold {
			for _, name := range order {
				if strings.EqualFold(name, tok.Text) {
					fn, ok = variants[name], true
					break
				}
			}
		}
		if !ok {
			return zero, textscan.Issues{{
				Code:    textscan.CodeConversion,
				Message: fmt.Sprintf("unknown variant %q", tok.Text),
				Offset:  tok.Offset,
			}}
		}
		return fn(ctx, src)
	})
}
