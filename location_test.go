package scm

import "testing"

func TestLocationAdvance(t *testing.T) {
	tests := []struct {
		name string
		in   Location
		r    rune
		want Location
	}{
		{"ordinary rune", Location{Row: 0, Col: 3}, 'a', Location{Row: 0, Col: 4}},
		{"newline resets column", Location{Row: 2, Col: 9}, '\n', Location{Row: 3, Col: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.advance(tt.r); got != tt.want {
				t.Errorf("advance(%q) = %+v, want %+v", tt.r, got, tt.want)
			}
		})
	}
}

func TestLocationString(t *testing.T) {
	if got, want := (Location{Row: 1, Col: 2}).String(), "1:2"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestAt(t *testing.T) {
	loc := Location{Row: 0, Col: 0}
	l := At(loc, 42)
	if l.Loc != loc || l.Value != 42 {
		t.Errorf("At() = %+v", l)
	}
}
