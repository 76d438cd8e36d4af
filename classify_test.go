package scm

import "testing"

func TestIsDelimiterRune(t *testing.T) {
	tests := []struct {
		r     rune
		atEnd bool
		want  bool
	}{
		{' ', false, true},
		{'(', false, true},
		{'a', false, false},
		{0, true, true},
	}
	for _, tt := range tests {
		if got := isDelimiterRune(tt.r, tt.atEnd); got != tt.want {
			t.Errorf("isDelimiterRune(%q, %v) = %v, want %v", tt.r, tt.atEnd, got, tt.want)
		}
	}
}

func TestDigitValue(t *testing.T) {
	tests := []struct {
		r     rune
		radix int
		want  int
		ok    bool
	}{
		{'7', 8, 7, true},
		{'8', 8, 0, false},
		{'f', 16, 15, true},
		{'F', 16, 15, true},
		{'1', 2, 1, true},
		{'2', 2, 0, false},
	}
	for _, tt := range tests {
		v, ok := digitValue(tt.r, tt.radix)
		if ok != tt.ok || (ok && v != tt.want) {
			t.Errorf("digitValue(%q, %d) = (%d, %v), want (%d, %v)", tt.r, tt.radix, v, ok, tt.want, tt.ok)
		}
	}
}

func TestIdentifierClassPredicates(t *testing.T) {
	if !isIdentInitial('a') || !isIdentInitial('!') {
		t.Error("expected letters and special-initial punctuation to be ident-initial")
	}
	if isIdentInitial('1') {
		t.Error("digits must not be ident-initial")
	}
	if !isIdentSubsequent('1') {
		t.Error("digits must be ident-subsequent")
	}
	if !isSignSubsequent('@') {
		t.Error("'@' must be sign-subsequent")
	}
}
