package nesting

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestClassifyNested(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tidy.nesting")
	defer teardown()
	//
	matches := Classify("calc(20px + tidy-span(3) + 60px)")
	want := []Match{{Text: "tidy-span(3)", Pos: 12, Nested: true, Func: Span, Arg: 3}}
	if diff := cmp.Diff(want, matches); diff != "" {
		t.Errorf("classification mismatch (-want +got):\n%s", diff)
	}
}

func TestClassifyStandalone(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tidy.nesting")
	defer teardown()
	//
	matches := Classify("0 tidy-span(3) 0 tidy-offset(9)")
	want := []Match{
		{Text: "tidy-span(3)", Pos: 2, Func: Span, Arg: 3},
		{Text: "tidy-offset(9)", Pos: 17, Func: Offset, Arg: 9},
	}
	if diff := cmp.Diff(want, matches); diff != "" {
		t.Errorf("classification mismatch (-want +got):\n%s", diff)
	}
}

func TestClassifyMixed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tidy.nesting")
	defer teardown()
	//
	tests := []struct {
		value  string
		nested []bool
	}{
		{"tidy-span(2) calc(tidy-offset(1) * -1)", []bool{false, true}},
		{"calc(1px + calc(2px + tidy-span(2)))", []bool{true}},
		{"calc(1px + tidy-span(2) + calc(3px)) tidy-span(1)", []bool{true, false}},
		{"calc(1px) tidy-span-full(2)", []bool{false}},
		{"min(tidy-span(2), 10rem)", []bool{false}},
		{"calc(min(tidy-span(2), 10rem) - 1px)", []bool{true}},
		{"var(--x, tidy-offset(0.5))", []bool{false}},
		{"-webkit-calc(tidy-span(1))", []bool{true}},
		{"-moz-calc(1px + tidy-offset(2))", []bool{true}},
		{"xcalc(tidy-span(1)) my-calc(tidy-span(1))", []bool{false, false}},
		{"CALC(tidy-span(1))", []bool{true}},
		{"tidy-span( 1.75 )", []bool{false}},
		{"1rem auto", nil},
		{"tidy-span(three)", nil},
	}
	for _, test := range tests {
		matches := Classify(test.value)
		if len(matches) != len(test.nested) {
			t.Errorf("expected %d matches in %q, have %v", len(test.nested), test.value, matches)
			continue
		}
		for i, m := range matches {
			if m.Nested != test.nested[i] {
				t.Errorf("expected match %d (%s) in %q to have nested=%v", i, m.Text, test.value, test.nested[i])
			}
		}
	}
}

func TestClassifyOrder(t *testing.T) {
	matches := Classify("tidy-offset-full(1) tidy-span(-2) calc(tidy-offset(1.5))")
	if len(matches) != 3 {
		t.Fatalf("expected 3 matches, have %d", len(matches))
	}
	if matches[0].Func != OffsetFull || matches[1].Func != Span || matches[2].Func != Offset {
		t.Errorf("expected functions in order of appearance, are %v", matches)
	}
	if matches[1].Arg != -2 || matches[2].Arg != 1.5 {
		t.Errorf("expected arguments -2 and 1.5, are %v and %v", matches[1].Arg, matches[2].Arg)
	}
}

func TestParseCall(t *testing.T) {
	f, n, err := ParseCall("tidy-span-full(4)")
	if err != nil || f != SpanFull || n != 4 {
		t.Errorf("expected tidy-span-full(4) to decode, is %v %v %v", f, n, err)
	}
	if !f.IsFull() || f.IsOffset() {
		t.Errorf("expected %s to be full and not an offset", f)
	}
	if _, _, err = ParseCall("tidy-grow(1)"); err == nil {
		t.Error("expected unknown function to fail")
	}
	if _, _, err = ParseCall("tidy-span(x)"); err == nil {
		t.Error("expected non-numeric argument to fail")
	}
}
