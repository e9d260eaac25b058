package grapheme

import (
	"reflect"
	"testing"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"ascii", "abc", []string{"a", "b", "c"}},
		{"combining", "e\u0301x", []string{"e\u0301", "x"}},
		{"wide", "日本", []string{"日", "本"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Split(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Split(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestEachPositions(t *testing.T) {
	var spans [][2]int
	Each("aé日", func(_ string, start, end int) bool {
		spans = append(spans, [2]int{start, end})
		return true
	})

	want := [][2]int{{0, 1}, {1, 3}, {3, 6}}
	if !reflect.DeepEqual(spans, want) {
		t.Errorf("expected %v, got %v", want, spans)
	}
}

func TestEachStopsEarly(t *testing.T) {
	n := 0
	Each("abcdef", func(string, int, int) bool {
		n++
		return n < 2
	})
	if n != 2 {
		t.Errorf("expected 2 calls, got %d", n)
	}
}

func TestRuneSteps(t *testing.T) {
	s := "aé日"

	if got := NextRune(s, 1); got != 3 {
		t.Errorf("NextRune(1) = %d, want 3", got)
	}
	if got := NextRune(s, 3); got != 6 {
		t.Errorf("NextRune(3) = %d, want 6", got)
	}
	if got := NextRune(s, 6); got != 6 {
		t.Errorf("NextRune at end = %d, want 6", got)
	}
	if got := PrevRune(s, 6); got != 3 {
		t.Errorf("PrevRune(6) = %d, want 3", got)
	}
	if got := PrevRune(s, 3); got != 1 {
		t.Errorf("PrevRune(3) = %d, want 1", got)
	}
	if got := PrevRune(s, 0); got != 0 {
		t.Errorf("PrevRune at start = %d, want 0", got)
	}
}

func TestIsRuneBoundary(t *testing.T) {
	s := "aé"
	for off, want := range map[int]bool{0: true, 1: true, 2: false, 3: true, 4: false, -1: false} {
		if got := IsRuneBoundary(s, off); got != want {
			t.Errorf("IsRuneBoundary(%d) = %v, want %v", off, got, want)
		}
	}
}

func TestCount(t *testing.T) {
	if got := Count("é日a"); got != 3 {
		t.Errorf("expected 3 clusters, got %d", got)
	}
}
