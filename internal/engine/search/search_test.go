package search

import (
	"testing"

	"github.com/dshills/aurum/internal/engine/buffer"
)

func TestSetQueryFindsAllNonOverlapping(t *testing.T) {
	buf := buffer.NewFromLines([]string{
		"abab ab",
		"none here",
		"aaaa",
		"xab",
	})

	tests := []struct {
		query string
		want  []buffer.Point
	}{
		{"ab", []buffer.Point{{Row: 0, Col: 0}, {Row: 0, Col: 2}, {Row: 0, Col: 5}, {Row: 3, Col: 1}}},
		{"aa", []buffer.Point{{Row: 2, Col: 0}, {Row: 2, Col: 2}}},
		{"zzz", nil},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			var s Search
			s.SetQuery(tt.query, buf)
			got := s.Matches()
			if len(got) != len(tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("match %d: expected %v, got %v", i, tt.want[i], got[i])
				}
			}
		})
	}
}

func TestNextCycles(t *testing.T) {
	buf := buffer.NewFromLines([]string{"foo bar foo", "", "foo"})
	var s Search
	s.SetQuery("foo", buf)

	first := make([]buffer.Point, 0, s.Len())
	for i := 0; i < s.Len(); i++ {
		p, ok := s.Next()
		if !ok {
			t.Fatal("Next returned no match")
		}
		first = append(first, p)
	}
	want := []buffer.Point{{Row: 0, Col: 0}, {Row: 0, Col: 8}, {Row: 2, Col: 0}}
	for i := range want {
		if first[i] != want[i] {
			t.Errorf("visit %d: expected %v, got %v", i, want[i], first[i])
		}
	}

	for i := 0; i < s.Len(); i++ {
		p, _ := s.Next()
		if p != first[i] {
			t.Errorf("second cycle visit %d: expected %v, got %v", i, first[i], p)
		}
	}
}

func TestNextWithoutMatches(t *testing.T) {
	var s Search
	if _, ok := s.Next(); ok {
		t.Error("expected no match on empty search")
	}
	s.SetQuery("q", buffer.NewFromString("abc"))
	if _, ok := s.Next(); ok {
		t.Error("expected no match")
	}
}

func TestSetQueryResetsIndex(t *testing.T) {
	buf := buffer.NewFromString("a a a")
	var s Search
	s.SetQuery("a", buf)
	s.Next()
	s.Next()
	s.SetQuery("a", buf)
	p, _ := s.Next()
	if p.Col != 0 {
		t.Errorf("expected iteration to restart at col 0, got %d", p.Col)
	}
}

func TestRefreshAndInRow(t *testing.T) {
	buf := buffer.NewFromLines([]string{"x x", "x"})
	var s Search
	s.SetQuery("x", buf)
	s.Next()
	s.Next()

	buf.DeleteRange(0, 1, 2)
	s.Refresh(buf)
	if s.Len() != 2 {
		t.Fatalf("expected 2 matches after edit, got %d", s.Len())
	}
	p, _ := s.Next()
	if p != (buffer.Point{Row: 0, Col: 0}) {
		t.Errorf("expected index reset to first match, got %v", p)
	}

	if cols := s.InRow(1); len(cols) != 1 || cols[0] != 0 {
		t.Errorf("InRow(1) = %v", cols)
	}
	if cols := s.InRow(5); cols != nil {
		t.Errorf("InRow(5) = %v", cols)
	}

	s.Clear()
	if s.Query() != "" || s.Len() != 0 {
		t.Error("Clear should drop query and matches")
	}
}
