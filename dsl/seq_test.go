package dsl_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	textscan "github.com/reoring/textscan"
	"github.com/reoring/textscan/dsl"
)

// The same three tokens decode equivalently as a bounded array, a tuple, and
// a named record.
func TestThreeWays(t *testing.T) {
	ctx := context.Background()
	input := " 1 \n\t\t2 \n\t3 "

	arr, err := textscan.Decode(ctx, dsl.ArrayOf(3, dsl.Uint32()), input)
	require.NoError(t, err)
	require.Equal(t, []uint32{1, 2, 3}, arr)

	tup, err := textscan.Decode(ctx, dsl.TupleOf(
		dsl.Of(dsl.Uint32()), dsl.Of(dsl.Uint32()), dsl.Of(dsl.Uint32()),
	), input)
	require.NoError(t, err)
	require.Equal(t, []any{uint32(1), uint32(2), uint32(3)}, tup)

	rec, err := textscan.Decode(ctx, dsl.Record().
		Field("a", dsl.Of(dsl.Uint32())).
		Field("b", dsl.Of(dsl.Uint32())).
		Field("c", dsl.Of(dsl.Uint32())).
		Build(), input)
	require.NoError(t, err)
	require.Equal(t, map[string]any{"a": uint32(1), "b": uint32(2), "c": uint32(3)}, rec)
}

func TestArrayOf_UnderflowIsEndOfInput(t *testing.T) {
	ctx := context.Background()
	_, err := textscan.Decode(ctx, dsl.ArrayOf(3, dsl.Uint32()), "1 2")
	require.True(t, textscan.IsEndOfInput(err), "err = %v", err)
}

func TestArrayOf_TrailingTokensIgnored(t *testing.T) {
	ctx := context.Background()
	got, err := textscan.Decode(ctx, dsl.ArrayOf(2, dsl.Uint32()), "3 4 99 100")
	require.NoError(t, err)
	require.Equal(t, []uint32{3, 4}, got)
}

func TestArrayOf_ZeroArityNeverTouchesInput(t *testing.T) {
	ctx := context.Background()
	src := textscan.Text("1 2 3")
	got, err := dsl.ArrayOf(0, dsl.Uint32()).Decode(ctx, src)
	require.NoError(t, err)
	require.Empty(t, got)
	tok, err := src.Next()
	require.NoError(t, err)
	require.Equal(t, "1", tok.Text)
}

func TestSliceOf_TerminatesOnExhaustion(t *testing.T) {
	ctx := context.Background()
	got, err := textscan.Decode(ctx, dsl.SliceOf(dsl.Uint()), " 1 2 3 4 6 ")
	require.NoError(t, err)
	require.Equal(t, []uint{1, 2, 3, 4, 6}, got)

	empty, err := textscan.Decode(ctx, dsl.SliceOf(dsl.Uint()), "   ")
	require.NoError(t, err)
	require.Empty(t, empty)
}

func TestBytes_DecodesAsSmallIntegers(t *testing.T) {
	ctx := context.Background()
	got, err := textscan.Decode(ctx, dsl.Bytes(), "0 1 2 255")
	require.NoError(t, err)
	require.Equal(t, []byte{0, 1, 2, 255}, got)

	_, err = textscan.Decode(ctx, dsl.Bytes(), "0 256")
	require.True(t, textscan.IsConversion(err), "err = %v", err)
}

func TestOption_AbsentOnlyOnExhaustion(t *testing.T) {
	ctx := context.Background()

	absent, err := textscan.Decode(ctx, dsl.Option(dsl.Uint32()), "   ")
	require.NoError(t, err)
	require.Nil(t, absent)

	present, err := textscan.Decode(ctx, dsl.Option(dsl.Uint32()), " 7 ")
	require.NoError(t, err)
	require.NotNil(t, present)
	require.Equal(t, uint32(7), *present)

	// a token that cannot convert still fails; the option only looks at presence
	_, err = textscan.Decode(ctx, dsl.Option(dsl.Uint32()), " x ")
	require.True(t, textscan.IsConversion(err), "err = %v", err)
}

func TestMapOf_AlternatingPairs(t *testing.T) {
	ctx := context.Background()

	got, err := textscan.Decode(ctx, dsl.MapOf(dsl.String(), dsl.Uint64()), "a 1 b 2")
	require.NoError(t, err)
	require.Equal(t, map[string]uint64{"a": 1, "b": 2}, got)

	_, err = textscan.Decode(ctx, dsl.MapOf(dsl.String(), dsl.Uint64()), "a 1 b")
	require.True(t, textscan.IsEndOfInput(err), "err = %v", err)

	inferred, err := textscan.Decode(ctx, dsl.MapOf(dsl.String(), dsl.Any()), "port 8080 host local")
	require.NoError(t, err)
	require.Equal(t, map[string]any{"port": uint64(8080), "host": "local"}, inferred)
}
