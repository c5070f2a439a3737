package textscan

import (
	"bufio"
	"context"
	"io"
	"os"
	"sync"
)

// Shape decodes one value of type T by pulling tokens from the Source.
// Composite shapes re-enter the decoder per sub-value through the same
// Source; a shape never scans ahead beyond one token of lookahead.
type Shape[T any] interface {
	Decode(ctx context.Context, src Source) (T, error)
}

// ShapeFunc adapts a function to the Shape interface.
type ShapeFunc[T any] func(ctx context.Context, src Source) (T, error)

func (f ShapeFunc[T]) Decode(ctx context.Context, src Source) (T, error) { return f(ctx, src) }

// Decode is the primary entry point. It tokenizes text by whitespace and
// decodes one value of shape s. Tokens left over after the value is built are
// ignored.
func Decode[T any](ctx context.Context, s Shape[T], text string) (T, error) {
	return decodeFrom(ctx, s, Text(text))
}

// DecodeWith behaves as Decode with a caller-supplied delimiter predicate.
func DecodeWith[T any](ctx context.Context, s Shape[T], isDelim func(rune) bool, text string) (T, error) {
	return decodeFrom(ctx, s, TextFunc(isDelim, text))
}

func decodeFrom[T any](ctx context.Context, s Shape[T], src Source) (T, error) {
	var zero T
	if s == nil {
		return zero, ErrUnsupported("nil shape")
	}
	v, err := s.Decode(ctx, src)
	if err != nil {
		return zero, err
	}
	return v, nil
}

// DecodeLine reads exactly one line from r, then behaves as Decode. Read
// failures other than a clean EOF are reported as io_error issues; a final
// unterminated line decodes normally.
func DecodeLine[T any](ctx context.Context, s Shape[T], r *bufio.Reader) (T, error) {
	line, err := r.ReadString('\n')
	if err != nil && err != io.EOF {
		var zero T
		return zero, errIO(err)
	}
	return Decode(ctx, s, line)
}

var (
	stdinMu sync.Mutex
	stdinRd *bufio.Reader
)

// NextLine reads one line from standard input and decodes it. Lines are
// consumed in call order; concurrent callers are serialized.
func NextLine[T any](ctx context.Context, s Shape[T]) (T, error) {
	stdinMu.Lock()
	defer stdinMu.Unlock()
	if stdinRd == nil {
		stdinRd = bufio.NewReader(os.Stdin)
	}
	return DecodeLine(ctx, s, stdinRd)
}
