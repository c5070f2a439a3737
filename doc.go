package textscan

// Package textscan decodes whitespace- or custom-delimiter-separated text
// into a caller-declared shape: scalars, tuples, fixed arrays, records, maps,
// unbounded sequences, and enumerations. The input carries no type tags; the
// Shape passed by the caller pulls exactly as many tokens as it needs,
// recursively, left to right, from a single shared cursor.
//
// Design policy:
// - Keep only public APIs in the root package; the token cursor lives under internal/.
// - Place shape constructors under dsl/ and the CLI under cmd/textscan.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	three := dsl.ArrayOf(3, dsl.Uint())
//	v, err := textscan.Decode(ctx, three, "1 2 3")
//
//	claim, err := textscan.Scan(ctx, claimShape, "#{} @ {},{}: {}x{}", line)
//
// Decoding is single-pass: once a token is consumed it is never replayed, and
// the first failure aborts the whole call.
