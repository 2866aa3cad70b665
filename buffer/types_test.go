package buffer

import "testing"

func TestSpan_Normalize(t *testing.T) {
	if got, want := (Span{Start: 5, End: 1}).Normalize(), (Span{Start: 1, End: 5}); got != want {
		t.Fatalf("normalize=%v, want %v", got, want)
	}
	if got, want := (Span{Start: 1, End: 5}).Normalize(), (Span{Start: 1, End: 5}); got != want {
		t.Fatalf("normalize=%v, want %v", got, want)
	}
	if got := (Span{Start: 5, End: 1}).Len(); got != 4 {
		t.Fatalf("len=%d, want 4", got)
	}
	if !(Span{Start: 2, End: 2}).IsEmpty() {
		t.Fatalf("expected empty span")
	}
}

func TestClampInt_UpperBoundWins(t *testing.T) {
	cases := []struct {
		v, min, max int
		want        int
	}{
		{v: 5, min: 0, max: 10, want: 5},
		{v: -1, min: 0, max: 10, want: 0},
		{v: 11, min: 0, max: 10, want: 10},
		{v: 0, min: 3, max: 1, want: 1},
	}
	for _, tc := range cases {
		if got := clampInt(tc.v, tc.min, tc.max); got != tc.want {
			t.Fatalf("clampInt(%d,%d,%d)=%d, want %d", tc.v, tc.min, tc.max, got, tc.want)
		}
	}
}

func TestTruncate_KeepsCharactersWhole(t *testing.T) {
	if got, want := truncate("aé", 2), "a"; got != want {
		t.Fatalf("truncate=%q, want %q", got, want)
	}
	if got, want := truncate("aé", 3), "aé"; got != want {
		t.Fatalf("truncate=%q, want %q", got, want)
	}
	if got := truncate("abc", 0); got != "" {
		t.Fatalf("truncate=%q, want empty", got)
	}
}

func TestAlignLeft(t *testing.T) {
	text := "aテb"
	if got := alignLeft(text, 2, 0); got != 1 {
		t.Fatalf("alignLeft=%d, want 1", got)
	}
	if got := alignLeft(text, 4, 0); got != 4 {
		t.Fatalf("alignLeft=%d, want 4", got)
	}
}
