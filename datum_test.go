package scm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLengthOfProperList(t *testing.T) {
	ds := readAllString(t, "(a b c)")
	n, ok := Length(ds[0].Value)
	assert.True(t, ok)
	assert.Equal(t, 3, n)
}

func TestLengthRejectsDottedList(t *testing.T) {
	ds := readAllString(t, "(a . b)")
	_, ok := Length(ds[0].Value)
	assert.False(t, ok)
}

func TestLengthOfEmptyList(t *testing.T) {
	n, ok := Length(PairDatum{Value: nil})
	assert.True(t, ok)
	assert.Equal(t, 0, n)
}

func TestPairDatumStringProperList(t *testing.T) {
	ds := readAllString(t, "(a b c)")
	assert.Equal(t, "(a b c)", ds[0].Value.String())
}

func TestPairDatumStringDottedPair(t *testing.T) {
	ds := readAllString(t, "(a . b)")
	assert.Equal(t, "(a . b)", ds[0].Value.String())
}

func TestPairDatumStringEmptyList(t *testing.T) {
	assert.Equal(t, "()", PairDatum{Value: nil}.String())
}
