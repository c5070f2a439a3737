package dsl

import (
	"context"
	"strconv"
	"unicode/utf8"

	textscan "github.com/reoring/textscan"
)

// scalarOf consumes exactly one token and converts it. All scalar shapes
// share this core; only the parse function differs.
type scalarOf[T any] struct {
	want  string
	parse func(text string) (T, error)
}

func (s scalarOf[T]) Decode(ctx context.Context, src textscan.Source) (T, error) {
	var zero T
	tok, err := src.Next()
	if err != nil {
		return zero, err
	}
	v, perr := s.parse(tok.Text)
	if perr != nil {
		return zero, textscan.ErrConversion(tok, s.want, perr)
	}
	return v, nil
}

// Bool decodes one token as a boolean.
func Bool() textscan.Shape[bool] {
	return scalarOf[bool]{want: "bool", parse: strconv.ParseBool}
}

// String decodes one token as a string. The result is a view into the input
// text; copy it if it must outlive the input.
func String() textscan.Shape[string] {
	return scalarOf[string]{want: "string", parse: func(t string) (string, error) { return t, nil }}
}

// Rune decodes a token that is exactly one character long.
func Rune() textscan.Shape[rune] {
	return scalarOf[rune]{want: "char", parse: func(t string) (rune, error) {
		r, size := utf8.DecodeRuneInString(t)
		if r == utf8.RuneError || size != len(t) {
			return 0, strconv.ErrSyntax
		}
		return r, nil
	}}
}

// Unit consumes no tokens and always succeeds.
func Unit() textscan.Shape[struct{}] {
	return textscan.ShapeFunc[struct{}](func(ctx context.Context, src textscan.Source) (struct{}, error) {
		return struct{}{}, nil
	})
}

// ---- signed integers ----

func intN(want string, bits int) scalarOf[int64] {
	return scalarOf[int64]{want: want, parse: func(t string) (int64, error) {
		return strconv.ParseInt(t, 10, bits)
	}}
}

// Int decodes a platform-width signed integer.
func Int() textscan.Shape[int] {
	inner := intN("int", 0)
	return scalarOf[int]{want: inner.want, parse: func(t string) (int, error) {
		v, err := inner.parse(t)
		return int(v), err
	}}
}

// Int8 decodes an 8-bit signed integer.
func Int8() textscan.Shape[int8] {
	inner := intN("int8", 8)
	return scalarOf[int8]{want: inner.want, parse: func(t string) (int8, error) {
		v, err := inner.parse(t)
		return int8(v), err
	}}
}

// Int16 decodes a 16-bit signed integer.
func Int16() textscan.Shape[int16] {
	inner := intN("int16", 16)
	return scalarOf[int16]{want: inner.want, parse: func(t string) (int16, error) {
		v, err := inner.parse(t)
		return int16(v), err
	}}
}

// Int32 decodes a 32-bit signed integer.
func Int32() textscan.Shape[int32] {
	inner := intN("int32", 32)
	return scalarOf[int32]{want: inner.want, parse: func(t string) (int32, error) {
		v, err := inner.parse(t)
		return int32(v), err
	}}
}

// Int64 decodes a 64-bit signed integer.
func Int64() textscan.Shape[int64] { return intN("int64", 64) }

// ---- unsigned integers ----

func uintN(want string, bits int) scalarOf[uint64] {
	return scalarOf[uint64]{want: want, parse: func(t string) (uint64, error) {
		return strconv.ParseUint(t, 10, bits)
	}}
}

// Uint decodes a platform-width unsigned integer.
func Uint() textscan.Shape[uint] {
	inner := uintN("uint", 0)
	return scalarOf[uint]{want: inner.want, parse: func(t string) (uint, error) {
		v, err := inner.parse(t)
		return uint(v), err
	}}
}

// Uint8 decodes an 8-bit unsigned integer.
func Uint8() textscan.Shape[uint8] {
	inner := uintN("uint8", 8)
	return scalarOf[uint8]{want: inner.want, parse: func(t string) (uint8, error) {
		v, err := inner.parse(t)
		return uint8(v), err
	}}
}

// Uint16 decodes a 16-bit unsigned integer.
func Uint16() textscan.Shape[uint16] {
	inner := uintN("uint16", 16)
	return scalarOf[uint16]{want: inner.want, parse: func(t string) (uint16, error) {
		v, err := inner.parse(t)
		return uint16(v), err
	}}
}

// Uint32 decodes a 32-bit unsigned integer.
func Uint32() textscan.Shape[uint32] {
	inner := uintN("uint32", 32)
	return scalarOf[uint32]{want: inner.want, parse: func(t string) (uint32, error) {
		v, err := inner.parse(t)
		return uint32(v), err
	}}
}

// Uint64 decodes a 64-bit unsigned integer.
func Uint64() textscan.Shape[uint64] { return uintN("uint64", 64) }

// ---- floats ----

// Float32 decodes a 32-bit float.
func Float32() textscan.Shape[float32] {
	return scalarOf[float32]{want: "float32", parse: func(t string) (float32, error) {
		v, err := strconv.ParseFloat(t, 32)
		return float32(v), err
	}}
}

// Float64 decodes a 64-bit float.
func Float64() textscan.Shape[float64] {
	return scalarOf[float64]{want: "float64", parse: func(t string) (float64, error) {
		return strconv.ParseFloat(t, 64)
	}}
}
