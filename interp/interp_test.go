package interp

import (
	"testing"

	"github.com/knakk/scm"
	"github.com/stretchr/testify/assert"
)

func TestNewProducesEmptyEnvironment(t *testing.T) {
	it := New()
	assert.NotNil(t, it.env)
	assert.Equal(t, &Environment{}, it.env)
}

func TestEvalIsANoOp(t *testing.T) {
	it := New()
	d := scm.At[scm.Datum](scm.Location{}, scm.SymbolDatum("x"))
	// Eval returns nothing and must not panic; there is no evaluator
	// behind it yet.
	it.Eval(d)
}
