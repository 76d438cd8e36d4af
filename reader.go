package scm

import "io"

// Reader consumes located tokens from a Lexer and emits a lazy,
// located datum sequence, resolving nesting, dotted-pair syntax,
// vector/bytevector forms and quote abbreviations.
//
// Grounded on knakk/rdf's ttlDecoder (ttl.go): a panic/recover error
// unwind so deeply nested list/vector reads don't have to thread an
// error return through every recursive call, mirroring
// ttlDecoder.Decode's "defer d.recover(&err)".
type Reader struct {
	lx *Lexer
}

// NewReader creates a Reader pulling tokens from lx.
func NewReader(lx *Lexer) *Reader {
	return &Reader{lx: lx}
}

// Next yields the next datum, io.EOF at end of input, or a
// *ReaderError (possibly wrapping a *LexError).
func (r *Reader) Next() (result Located[Datum], err error) {
	defer func() {
		if rec := recover(); rec != nil {
			rerr, ok := rec.(*ReaderError)
			if !ok {
				panic(rec)
			}
			result = Located[Datum]{}
			err = rerr
		}
	}()

	tok, terr := r.nextToken()
	if terr == io.EOF {
		return Located[Datum]{}, io.EOF
	}
	if terr != nil {
		return Located[Datum]{}, wrapLexErr(terr)
	}
	return r.readFromToken(tok), nil
}

// All drains the reader, returning every datum read before the first
// error (if any) together with that error (io.EOF on a clean end).
func (r *Reader) All() ([]Located[Datum], error) {
	var out []Located[Datum]
	for {
		d, err := r.Next()
		if err != nil {
			return out, err
		}
		out = append(out, d)
	}
}

// ---------------------------------------------------------------------
// Token lookahead
// ---------------------------------------------------------------------

func (r *Reader) nextToken() (Located[Token], error) {
	return r.lx.Next()
}

func wrapLexErr(err error) *ReaderError {
	le, ok := err.(*LexError)
	if !ok {
		return &ReaderError{Kind: UnexpectedEndKind}
	}
	return &ReaderError{Loc: le.Loc, Kind: LexerErrorKind, Inner: le}
}

func readerPanic(loc Location, kind ReaderErrorKind, tok Token) {
	panic(&ReaderError{Loc: loc, Kind: kind, Tok: tok})
}

// mustNextToken pulls the next token, panicking with a *ReaderError:
// an EOF becomes UnexpectedEndKind located at eofLoc (the opening
// token of whatever compound datum is being read), a lex error is
// wrapped as-is.
func (r *Reader) mustNextToken(eofLoc Location) Located[Token] {
	tok, err := r.nextToken()
	if err == io.EOF {
		panic(&ReaderError{Loc: eofLoc, Kind: UnexpectedEndKind})
	}
	if err != nil {
		panic(wrapLexErr(err))
	}
	return tok
}

func (r *Reader) readDatumOrPanic(eofLoc Location) Located[Datum] {
	return r.readFromToken(r.mustNextToken(eofLoc))
}

// ---------------------------------------------------------------------
// Per-token dispatch (spec.md §4.2 "Per-token behavior")
// ---------------------------------------------------------------------

func (r *Reader) readFromToken(tok Located[Token]) Located[Datum] {
	switch t := tok.Value.(type) {
	case PrimitiveToken:
		return At[Datum](tok.Loc, PrimitiveDatum{Value: t.Value})
	case Identifier:
		return At[Datum](tok.Loc, SymbolDatum(string(t)))
	case LeftParen:
		return r.readList(tok.Loc)
	case VecConsIntro:
		return r.readVector(tok.Loc)
	case ByteVecConsIntro:
		return r.readByteVector(tok.Loc)
	case Quote:
		return r.readAbbrev(tok.Loc, "quote")
	case Quasiquote:
		return r.readAbbrev(tok.Loc, "quasiquote")
	case Unquote:
		return r.readAbbrev(tok.Loc, "unquote")
	case UnquoteSplicing:
		return r.readAbbrev(tok.Loc, "unquote-splicing")
	case RightParen:
		readerPanic(tok.Loc, UnmatchedParentheses, t)
	case Period:
		readerPanic(tok.Loc, UnexpectedTokenKind, t)
	}
	panic("scm: unreachable token case")
}

// readAbbrev desugars a quote-family token into the proper two-element
// list (sym . (inner . ())), per spec.md §4.2 and Design Notes
// "Symbolic abbreviations". The symbol inherits the abbreviation
// token's own location; the inner datum keeps its own.
func (r *Reader) readAbbrev(loc Location, sym string) Located[Datum] {
	inner := r.readDatumOrPanic(loc)
	sym0 := At[Datum](loc, SymbolDatum(sym))
	innerCell := &Pair{Car: inner, Cdr: emptyList(inner.Loc)}
	head := &Pair{Car: sym0, Cdr: At[Datum](inner.Loc, PairDatum{Value: innerCell})}
	return At[Datum](loc, PairDatum{Value: head})
}

// readList implements the Building/Dot-seen/Closed state machine of
// spec.md §4.2 "List reader", collecting elements into a growable
// slice and folding right into Pair cells at the closing paren
// (Design Notes option (b): simpler under Go's non-owning GC model
// than maintaining an explicit mutable tail pointer).
func (r *Reader) readList(openLoc Location) Located[Datum] {
	var elems []Located[Datum]
	tail := emptyList(openLoc)

	for {
		tok := r.mustNextToken(openLoc)
		switch t := tok.Value.(type) {
		case RightParen:
			return At[Datum](openLoc, foldPairs(elems, tail).Value)
		case Period:
			if len(elems) == 0 {
				readerPanic(tok.Loc, UnexpectedTokenKind, t)
			}
			tail = r.readDatumOrPanic(openLoc)
			closeTok := r.mustNextToken(openLoc)
			if _, ok := closeTok.Value.(RightParen); !ok {
				readerPanic(closeTok.Loc, UnexpectedTokenKind, closeTok.Value)
			}
			return At[Datum](openLoc, foldPairs(elems, tail).Value)
		default:
			elems = append(elems, r.readFromToken(tok))
		}
	}
}

// foldPairs builds the right-nested Pair chain for elems terminated by
// tail (the empty list for a proper list, or the dotted cdr).
func foldPairs(elems []Located[Datum], tail Located[Datum]) Located[Datum] {
	cur := tail
	for i := len(elems) - 1; i >= 0; i-- {
		cell := &Pair{Car: elems[i], Cdr: cur}
		cur = At[Datum](elems[i].Loc, PairDatum{Value: cell})
	}
	return cur
}

// readVector reads tokens until the matching RightParen, collecting
// datums in order.
func (r *Reader) readVector(openLoc Location) Located[Datum] {
	var elems []Located[Datum]
	for {
		tok := r.mustNextToken(openLoc)
		if _, ok := tok.Value.(RightParen); ok {
			return At[Datum](openLoc, VectorDatum(elems))
		}
		elems = append(elems, r.readFromToken(tok))
	}
}

// readByteVector reads tokens until the matching RightParen; each
// element must be a Primitive(Complex(Real(Integer n))) with
// 0 <= n <= 255.
func (r *Reader) readByteVector(openLoc Location) Located[Datum] {
	var bytes []byte
	for {
		tok := r.mustNextToken(openLoc)
		if _, ok := tok.Value.(RightParen); ok {
			return At[Datum](openLoc, ByteVectorDatum(bytes))
		}
		b, ok := asByteLiteral(tok.Value)
		if !ok {
			readerPanic(tok.Loc, UnexpectedTokenKind, tok.Value)
		}
		bytes = append(bytes, b)
	}
}

func asByteLiteral(tok Token) (byte, bool) {
	pt, ok := tok.(PrimitiveToken)
	if !ok {
		return 0, false
	}
	cp, ok := pt.Value.(ComplexPrimitive)
	if !ok {
		return 0, false
	}
	rc, ok := cp.Value.(RealComplex)
	if !ok {
		return 0, false
	}
	iv, ok := rc.Re.(Integer)
	if !ok || iv < 0 || iv > 255 {
		return 0, false
	}
	return byte(iv), true
}
