// Package interp is the placeholder downstream evaluator: the package
// that would walk the datum tree the scm package reads and actually
// run a Scheme program. It stays empty on purpose.
//
// The original implementation this module was distilled from ships the
// same shape: its Interpreter.eval has an empty body, its Expression
// enum is unused by anything beyond this stub, and its Environment
// module is zero-length. Evaluation semantics are explicitly out of
// scope here too; this package exists only to give the stub a home
// and a place to grow from later.
package interp

import "github.com/knakk/scm"

// Environment is the (currently empty) variable-binding scope an
// evaluator would thread through Eval. It holds no state yet.
type Environment struct{}

// NewEnvironment returns an empty top-level environment.
func NewEnvironment() *Environment {
	return &Environment{}
}

// Interpreter is the unimplemented evaluator. It exists so callers
// have somewhere to plug in once evaluation is in scope.
type Interpreter struct {
	env *Environment
}

// New returns an Interpreter with a fresh, empty Environment.
func New() *Interpreter {
	return &Interpreter{env: NewEnvironment()}
}

// Eval does nothing: evaluating a datum is out of scope for this
// module. It is kept as a named entry point rather than omitted
// entirely so the shape of a future evaluator is visible.
func (it *Interpreter) Eval(d scm.Located[scm.Datum]) {
	_ = d
}
