package dsl

import (
	"context"
	"strconv"
	"unicode/utf8"

	textscan "github.com/reoring/textscan"
)

// inferred is the scalar kind chosen for an "any"-typed request.
type inferred int

const (
	inferUint inferred = iota
	inferInt
	inferFloat
	inferRune
	inferString
)

// classify picks the narrowest scalar kind for a token by trial parsing in a
// fixed priority order: "5" must classify as unsigned before signed, and
// "-5" as signed before float. A single non-digit character is a rune;
// anything longer falls through to string.
func classify(text string) inferred {
	if _, err := strconv.ParseUint(text, 10, 64); err == nil {
		return inferUint
	}
	if _, err := strconv.ParseInt(text, 10, 64); err == nil {
		return inferInt
	}
	if _, err := strconv.ParseFloat(text, 64); err == nil {
		return inferFloat
	}
	if r, size := utf8.DecodeRuneInString(text); r != utf8.RuneError && size == len(text) {
		return inferRune
	}
	return inferString
}

// Any decodes whatever the next token looks like: uint64, int64, float64,
// rune, or string, in that preference order. The format is not
// self-describing beyond this single token of inference.
func Any() textscan.Shape[any] {
	return textscan.ShapeFunc[any](func(ctx context.Context, src textscan.Source) (any, error) {
		tok, ok := src.Peek()
		if !ok {
			return nil, textscan.ErrEndOfInput(src.Location())
		}
		switch classify(tok.Text) {
		case inferUint:
			return decodeAs(ctx, src, Uint64())
		case inferInt:
			return decodeAs(ctx, src, Int64())
		case inferFloat:
			return decodeAs(ctx, src, Float64())
		case inferRune:
			return decodeAs(ctx, src, Rune())
		default:
			return decodeAs(ctx, src, String())
		}
	})
}

func decodeAs[T any](ctx context.Context, src textscan.Source, s textscan.Shape[T]) (any, error) {
	v, err := s.Decode(ctx, src)
	if err != nil {
		return nil, err
	}
	return any(v), nil
}
