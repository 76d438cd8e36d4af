package scm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRealReverse(t *testing.T) {
	tests := []struct {
		name string
		in   Real
		want Real
	}{
		{"integer", Integer(5), Integer(-5)},
		{"rational", Ration{Num: 3, Den: 4}, Ration{Num: -3, Den: 4}},
		{"float", Float(1.5), Float(-1.5)},
		{"pos inf", PosInf{}, NegInf{}},
		{"neg inf", NegInf{}, PosInf{}},
		{"pos nan toggles, does not round-trip", PosNaN{}, NegNaN{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Reverse())
		})
	}
}

func TestRealReverseDoubleIsIdentityExceptNaN(t *testing.T) {
	// Invariant from spec: reverse(reverse(r)) == r for all Real except
	// NaN, whose sign may toggle instead of round-tripping.
	reals := []Real{Integer(7), Ration{Num: 1, Den: 3}, Float(2.25), PosInf{}, NegInf{}}
	for _, r := range reals {
		assert.Equal(t, r, r.Reverse().Reverse())
	}
	// NaN toggles rather than round-trips, but toggling twice is back
	// where it started.
	assert.Equal(t, PosNaN{}, PosNaN{}.Reverse().Reverse())
}

func TestRealString(t *testing.T) {
	tests := []struct {
		in   Real
		want string
	}{
		{Integer(123), "123"},
		{Integer(-123), "-123"},
		{Ration{Num: -123123, Den: 23}, "-123123/23"},
		{PosInf{}, "+inf.0"},
		{NegNaN{}, "-nan.0"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.in.String())
	}
}

func TestComplexString(t *testing.T) {
	tests := []struct {
		name string
		in   Complex
		want string
	}{
		{"real only", RealComplex{Re: Integer(1)}, "1"},
		{"imaginary only", ImaginaryComplex{Im: Integer(-1)}, "-1i"},
		{"rectangular positive imaginary", RectComplex{Re: Integer(1), Im: Integer(1)}, "1+1i"},
		{"rectangular negative imaginary", RectComplex{Re: Integer(1), Im: Integer(-1)}, "1-1i"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.String())
		})
	}
}
