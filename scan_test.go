package textscan_test

import (
	"context"
	"testing"

	textscan "github.com/reoring/textscan"
	"github.com/reoring/textscan/dsl"
)

func TestScan_StripsLiterals(t *testing.T) {
	ctx := context.Background()
	id, err := textscan.Scan(ctx, dsl.Uint32(), "Guard #{} is active.", "Guard #64 is active.")
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if id != 64 {
		t.Fatalf("id = %d, want 64", id)
	}
}

func TestScan_TemplateWhitespaceMatchesRuns(t *testing.T) {
	ctx := context.Background()
	id, err := textscan.Scan(ctx, dsl.Uint32(), "Guard #{} is active.", "Guard \t #64  is active.")
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if id != 64 {
		t.Fatalf("id = %d, want 64", id)
	}
}

func TestScan_PunctuationTemplate(t *testing.T) {
	ctx := context.Background()
	shape := dsl.TupleOf(
		dsl.Of(dsl.Uint32()),
		dsl.Of(dsl.Uint32()),
		dsl.Of(dsl.Uint32()),
		dsl.Of(dsl.Uint32()),
		dsl.Of(dsl.Uint32()),
	)
	got, err := textscan.Scan(ctx, shape, "#{} @ {},{}: {}x{}", "#1 @ 555,891: 18x12")
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	want := []uint32{1, 555, 891, 18, 12}
	for i, w := range want {
		if got[i].(uint32) != w {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestScan_TabSeparatedInput(t *testing.T) {
	ctx := context.Background()
	shape := dsl.TupleOf(dsl.Of(dsl.Uint32()), dsl.Of(dsl.String()))
	for _, tc := range []struct {
		input string
		n     uint32
		kind  string
	}{
		{"1 fire damage", 1, "fire"},
		{"2\tcold\tdamage", 2, "cold"},
	} {
		got, err := textscan.Scan(ctx, shape, "{} {} damage", tc.input)
		if err != nil {
			t.Fatalf("Scan(%q): %v", tc.input, err)
		}
		if got[0].(uint32) != tc.n || got[1].(string) != tc.kind {
			t.Fatalf("Scan(%q) = %v", tc.input, got)
		}
	}
}

func TestScan_LiteralMismatchFailsDecode(t *testing.T) {
	ctx := context.Background()
	_, err := textscan.Scan(ctx, dsl.Uint32(), "Guard #{} is active.", "Intruder #64 is active.")
	if !textscan.IsConversion(err) {
		t.Fatalf("err = %v, want conversion_failure", err)
	}
}

func TestTemplate_LeftoverInputBecomesTokens(t *testing.T) {
	ctx := context.Background()
	// tokens past the template's end are ordinary tokens, ignored at top level
	v, err := textscan.Scan(ctx, dsl.Uint32(), "#{}", "#7 extra tokens")
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if v != 7 {
		t.Fatalf("v = %d, want 7", v)
	}
}
