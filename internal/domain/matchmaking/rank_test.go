package matchmaking

import "testing"

func TestTop_StableDescendingAndTruncated(t *testing.T) {
	items := []Ranked[string]{
		{Item: "a", Score: 0.5},
		{Item: "b", Score: 0.9},
		{Item: "c", Score: 0.5},
		{Item: "d", Score: 0.7},
		{Item: "e", Score: 0.5},
	}

	got := Top(items, 4)
	want := []string{"b", "d", "a", "c"}
	if len(got) != len(want) {
		t.Fatalf("unexpected length: got=%d want=%d", len(got), len(want))
	}
	for i := range want {
		if got[i].Item != want[i] {
			t.Fatalf("unexpected order at %d: got=%s want=%s", i, got[i].Item, want[i])
		}
	}
}

func TestTop_NonPositiveLimitKeepsAll(t *testing.T) {
	items := []Ranked[int]{{Item: 1, Score: 0.1}, {Item: 2, Score: 0.2}}
	if got := Top(items, 0); len(got) != 2 || got[0].Item != 2 {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestDisplayScore(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{in: 0.94, want: 94.0},
		{in: 0.6849, want: 68.5},
		{in: 0, want: 0},
		{in: 1, want: 100},
	}
	for _, tt := range tests {
		if got := DisplayScore(tt.in); got != tt.want {
			t.Fatalf("DisplayScore(%v)=%v want=%v", tt.in, got, tt.want)
		}
	}
}
