package scm

import (
	"io"
	"math"
	"strconv"
	"strings"
)

// Lexer scans a rune source into a lazy, located token sequence. Call
// Next repeatedly; it returns io.EOF once the input is exhausted.
//
// The lexer keeps two cursors into the source, following spec.md
// §4.1: a committed cursor (pos/loc) that recognizers may always
// trust, and a peek cursor (peekPos/peekLoc) that slides ahead of it
// during speculative lookahead (e.g. disambiguating "+inf.0" from the
// "+" identifier). reset rewinds the peek cursor to the committed
// position; advance/advanceN commit characters and resynchronize the
// peek cursor to match. This generalizes the teacher's single-rune
// next/backup (knakk/rdf's lex.go) to the arbitrary-k lookahead the
// numeric grammar needs.
type Lexer struct {
	src []rune

	pos int
	loc Location

	peekPos int
	peekLoc Location
}

// NewLexer creates a Lexer over src.
func NewLexer(src []rune) *Lexer {
	return &Lexer{src: src}
}

// NewLexerString creates a Lexer over the runes of s.
func NewLexerString(s string) *Lexer {
	return NewLexer([]rune(s))
}

func (l *Lexer) atEnd() bool { return l.pos >= len(l.src) }

// peek returns the rune at the peek cursor and slides the peek cursor
// forward by one, without touching the committed cursor.
func (l *Lexer) peek() (rune, bool) {
	if l.peekPos >= len(l.src) {
		return 0, false
	}
	r := l.src[l.peekPos]
	l.peekPos++
	l.peekLoc = l.peekLoc.advance(r)
	return r, true
}

// peekAt returns the rune k positions past the committed cursor
// without moving either cursor.
func (l *Lexer) peekAt(k int) (rune, bool) {
	idx := l.pos + k
	if idx < 0 || idx >= len(l.src) {
		return 0, false
	}
	return l.src[idx], true
}

// cur is peekAt(0): the next uncommitted rune.
func (l *Lexer) cur() (rune, bool) { return l.peekAt(0) }

// reset rewinds the peek cursor to the committed position, discarding
// any speculative peeks.
func (l *Lexer) reset() {
	l.peekPos = l.pos
	l.peekLoc = l.loc
}

// advance commits one character and resynchronizes the peek cursor.
func (l *Lexer) advance() rune {
	r := l.src[l.pos]
	l.pos++
	l.loc = l.loc.advance(r)
	l.peekPos = l.pos
	l.peekLoc = l.loc
	return r
}

// advanceN commits k characters.
func (l *Lexer) advanceN(k int) {
	for i := 0; i < k; i++ {
		l.advance()
	}
}

// matches reports whether the upcoming input (from the committed
// cursor) equals s exactly, without committing anything.
func (l *Lexer) matches(s string) bool {
	for i, want := range s {
		got, ok := l.peekAt(i)
		if !ok || got != want {
			return false
		}
	}
	return true
}

// delimiterFollows reports whether the rune at position pos+k is a
// delimiter, or whether pos+k lies at or past the end of input.
func (l *Lexer) delimiterFollows(k int) bool {
	r, ok := l.peekAt(k)
	return isDelimiterRune(r, !ok)
}

func lexErr(loc Location, kind LexErrorKind, detail string) error {
	return &LexError{Loc: loc, Kind: kind, Detail: detail}
}

// Next yields the next token, io.EOF at end of input, or a *LexError.
func (l *Lexer) Next() (Located[Token], error) {
	for {
		l.skipWhitespace()
		if l.atEnd() {
			return Located[Token]{}, io.EOF
		}

		startLoc := l.loc
		r, _ := l.cur()

		switch {
		case r == ';':
			l.skipLineComment()
			continue
		case r == '(':
			l.advance()
			return At[Token](startLoc, LeftParen{}), nil
		case r == ')':
			l.advance()
			return At[Token](startLoc, RightParen{}), nil
		case r == '\'':
			l.advance()
			return At[Token](startLoc, Quote{}), nil
		case r == '`':
			l.advance()
			return At[Token](startLoc, Quasiquote{}), nil
		case r == ',':
			l.advance()
			if n, ok := l.cur(); ok && n == '@' {
				l.advance()
				return At[Token](startLoc, UnquoteSplicing{}), nil
			}
			return At[Token](startLoc, Unquote{}), nil
		case r == '#':
			return l.lexHash(startLoc)
		case r == '.':
			return l.lexDotOrNumberOrIdent(startLoc)
		case r == '+' || r == '-':
			return l.lexSignOrNumberOrIdent(startLoc)
		case isDecDigit(r):
			tok, err := l.scanNumberToken(10, true, startLoc)
			return tok, err
		case r == '"':
			return l.lexString(startLoc)
		case r == '|':
			return l.lexQuotedIdentifier(startLoc)
		case isIdentInitial(r):
			return l.lexNormalIdentifier(startLoc)
		default:
			l.advance()
			return Located[Token]{}, lexErr(startLoc, UnexpectedBegin, "unexpected character '"+string(r)+"'")
		}
	}
}

// ---------------------------------------------------------------------
// Whitespace & comments
// ---------------------------------------------------------------------

func (l *Lexer) skipWhitespace() {
	for {
		r, ok := l.cur()
		if !ok || !isWhitespaceRune(r) {
			return
		}
		l.advance()
	}
}

func (l *Lexer) skipLineComment() {
	l.advance() // consume ';'
	for {
		r, ok := l.cur()
		if !ok || r == '\n' || r == '\r' {
			return
		}
		l.advance()
	}
}

// skipBlockComment consumes a "#|" already-recognized block comment up
// to and including its matching "|#", tracking properly counted
// nesting depth (a strict improvement over the single-bit "saw |" flag
// spec.md flags as an open question — see DESIGN.md).
func (l *Lexer) skipBlockComment(startLoc Location) error {
	depth := 1
	for depth > 0 {
		r, ok := l.cur()
		if !ok {
			return lexErr(startLoc, UnexpectedEnd, "unterminated block comment")
		}
		if r == '#' {
			if n, ok2 := l.peekAt(1); ok2 && n == '|' {
				l.advanceN(2)
				depth++
				continue
			}
		}
		if r == '|' {
			if n, ok2 := l.peekAt(1); ok2 && n == '#' {
				l.advanceN(2)
				depth--
				continue
			}
		}
		l.advance()
	}
	return nil
}

// ---------------------------------------------------------------------
// "#" dispatch
// ---------------------------------------------------------------------

func (l *Lexer) lexHash(startLoc Location) (Located[Token], error) {
	l.advance() // consume '#'
	r, ok := l.cur()
	if !ok {
		return Located[Token]{}, lexErr(startLoc, UnexpectedEnd, "unexpected end after '#'")
	}
	switch r {
	case '|':
		l.advance()
		if err := l.skipBlockComment(startLoc); err != nil {
			return Located[Token]{}, err
		}
		return l.Next()
	case '(':
		l.advance()
		return At[Token](startLoc, VecConsIntro{}), nil
	case 't':
		l.advance()
		if l.matches("rue") && l.delimiterFollows(3) {
			l.advanceN(3)
		}
		return At[Token](startLoc, PrimitiveToken{Boolean(true)}), nil
	case 'f':
		l.advance()
		if l.matches("alse") && l.delimiterFollows(4) {
			l.advanceN(4)
		}
		return At[Token](startLoc, PrimitiveToken{Boolean(false)}), nil
	case '\\':
		l.advance()
		return l.lexCharacter(startLoc)
	case 'u':
		if l.matches("u8(") {
			l.advanceN(3)
			return At[Token](startLoc, ByteVecConsIntro{}), nil
		}
		return Located[Token]{}, lexErr(startLoc, UnrecognizedToken, "expected \"#u8(\"")
	case 'e', 'E', 'i', 'I', 'b', 'B', 'o', 'O', 'd', 'D', 'x', 'X':
		return l.lexPrefixedNumber(startLoc)
	default:
		return Located[Token]{}, lexErr(startLoc, UnrecognizedToken, "unrecognized '#' form")
	}
}

func (l *Lexer) lexCharacter(startLoc Location) (Located[Token], error) {
	r, ok := l.cur()
	if !ok {
		return Located[Token]{}, lexErr(startLoc, UnexpectedEnd, "unterminated character literal")
	}
	l.advance()
	return At[Token](startLoc, PrimitiveToken{Character(r)}), nil
}

// ---------------------------------------------------------------------
// "." / "+" / "-" dispatch: peculiar identifiers vs. numbers
// ---------------------------------------------------------------------

func (l *Lexer) lexDotOrNumberOrIdent(startLoc Location) (Located[Token], error) {
	if l.delimiterFollows(1) {
		l.advance()
		return At[Token](startLoc, Period{}), nil
	}
	if n, ok := l.peekAt(1); ok && isDecDigit(n) {
		return l.scanNumberToken(10, true, startLoc)
	}
	return l.lexPeculiarIdentifier(startLoc)
}

func (l *Lexer) lexSignOrNumberOrIdent(startLoc Location) (Located[Token], error) {
	// "+i"/"-i" followed by a delimiter: bare imaginary unit.
	if n, ok := l.peekAt(1); ok && n == 'i' && l.delimiterFollows(2) {
		return l.scanNumberToken(10, true, startLoc)
	}
	if n, ok := l.peekAt(1); ok {
		if n == '.' {
			if d, ok2 := l.peekAt(2); ok2 && isDecDigit(d) {
				return l.scanNumberToken(10, true, startLoc)
			}
		}
		if isDecDigit(n) {
			return l.scanNumberToken(10, true, startLoc)
		}
	}
	if l.matches("+inf.0") || l.matches("-inf.0") || l.matches("+nan.0") || l.matches("-nan.0") {
		return l.scanNumberToken(10, true, startLoc)
	}
	return l.lexPeculiarIdentifier(startLoc)
}

// ---------------------------------------------------------------------
// Identifiers
// ---------------------------------------------------------------------

func (l *Lexer) lexNormalIdentifier(startLoc Location) (Located[Token], error) {
	var sb strings.Builder
	r, _ := l.cur()
	sb.WriteRune(r)
	l.advance()
	if err := l.scanIdentSubsequent(&sb); err != nil {
		return Located[Token]{}, err
	}
	return At[Token](startLoc, Identifier(sb.String())), nil
}

// scanIdentSubsequent consumes identifier-subsequent characters until a
// delimiter (or end of input), per spec.md §4.1 and the original
// implementation's get_subsequent (lexer.rs): any character that is
// neither identifier-subsequent nor a delimiter is not silently
// dropped, it ends the lexeme with a *LexError.
func (l *Lexer) scanIdentSubsequent(sb *strings.Builder) error {
	for {
		r, ok := l.cur()
		if !ok || l.delimiterFollows(0) {
			return nil
		}
		if !isIdentSubsequent(r) {
			return lexErr(l.loc, UnrecognizedToken, "unexpected character '"+string(r)+"' in identifier")
		}
		sb.WriteRune(r)
		l.advance()
	}
}

// lexPeculiarIdentifier handles identifiers beginning with '+', '-' or
// '.', per spec.md §4.1 "Identifiers: Peculiar" and the original
// implementation's get_percular_identifier (lexer.rs), which raises
// UnrecognizedToken rather than truncating the lexeme when the
// character following the sign/dot is neither a delimiter nor a valid
// continuation.
func (l *Lexer) lexPeculiarIdentifier(startLoc Location) (Located[Token], error) {
	var sb strings.Builder
	first := l.advance()
	sb.WriteRune(first)

	if l.delimiterFollows(0) {
		return At[Token](startLoc, Identifier(sb.String())), nil
	}

	if first == '+' || first == '-' {
		n, _ := l.cur()
		switch {
		case isSignSubsequent(n):
			sb.WriteRune(l.advance())
		case n == '.':
			sb.WriteRune(l.advance())
			n2, ok2 := l.cur()
			if !ok2 || !(isSignSubsequent(n2) || n2 == '.') {
				return Located[Token]{}, lexErr(l.loc, UnrecognizedToken, "malformed peculiar identifier")
			}
			sb.WriteRune(l.advance())
		default:
			return Located[Token]{}, lexErr(l.loc, UnrecognizedToken, "unexpected character '"+string(n)+"' after '"+string(first)+"'")
		}
	} else {
		// first == '.'
		n, ok := l.cur()
		if !ok || !(isSignSubsequent(n) || n == '.') {
			return Located[Token]{}, lexErr(l.loc, UnrecognizedToken, "unexpected character after '.'")
		}
		sb.WriteRune(l.advance())
	}

	if err := l.scanIdentSubsequent(&sb); err != nil {
		return Located[Token]{}, err
	}
	return At[Token](startLoc, Identifier(sb.String())), nil
}

func (l *Lexer) lexQuotedIdentifier(startLoc Location) (Located[Token], error) {
	l.advance() // consume opening '|'
	var sb strings.Builder
	for {
		r, ok := l.cur()
		if !ok {
			return Located[Token]{}, lexErr(startLoc, UnexpectedEnd, "unterminated quoted identifier")
		}
		if r == '|' {
			l.advance()
			return At[Token](startLoc, Identifier(sb.String())), nil
		}
		sb.WriteRune(r)
		l.advance()
	}
}

// ---------------------------------------------------------------------
// Strings
// ---------------------------------------------------------------------

var stringEscapes = map[rune]rune{
	'a':  '\a',
	'b':  '\b',
	't':  '\t',
	'n':  '\n',
	'r':  '\r',
	'"':  '"',
	'\\': '\\',
	'|':  '|',
}

func (l *Lexer) lexString(startLoc Location) (Located[Token], error) {
	l.advance() // consume opening '"'
	var sb strings.Builder
	for {
		r, ok := l.cur()
		if !ok {
			return Located[Token]{}, lexErr(startLoc, UnexpectedEnd, "unterminated string literal")
		}
		if r == '"' {
			l.advance()
			return At[Token](startLoc, PrimitiveToken{String(sb.String())}), nil
		}
		if r == '\\' {
			l.advance()
			esc, ok := l.cur()
			if !ok {
				return Located[Token]{}, lexErr(startLoc, UnexpectedEnd, "unterminated string literal")
			}
			mapped, known := stringEscapes[esc]
			if !known {
				// \xNN; hex escapes and \<newline> line continuations
				// are not yet implemented (TODO, per spec.md §4.1).
				return Located[Token]{}, lexErr(l.loc, UnrecognizedToken, "unsupported string escape \\"+string(esc))
			}
			sb.WriteRune(mapped)
			l.advance()
			continue
		}
		sb.WriteRune(r)
		l.advance()
	}
}

// ---------------------------------------------------------------------
// Numbers
// ---------------------------------------------------------------------

// lexPrefixedNumber scans "#" exactness/radix prefixes (in either
// order, at most one of each) and then the numeric body.
func (l *Lexer) lexPrefixedNumber(startLoc Location) (Located[Token], error) {
	radix := 10
	exact := true
	haveExact := false
	haveRadix := false

	// the leading '#' of the *first* prefix has already been consumed
	// by lexHash; subsequent prefixes need their own '#'.
	first := true
	for {
		if !first {
			if r, ok := l.cur(); !ok || r != '#' {
				break
			}
			l.advance()
		}
		first = false

		r, ok := l.cur()
		if !ok {
			return Located[Token]{}, lexErr(startLoc, UnexpectedEnd, "unexpected end in number prefix")
		}
		switch r {
		case 'e', 'E':
			if haveExact {
				return Located[Token]{}, lexErr(startLoc, UnrecognizedToken, "duplicated exactness prefix")
			}
			haveExact, exact = true, true
			l.advance()
		case 'i', 'I':
			if haveExact {
				return Located[Token]{}, lexErr(startLoc, UnrecognizedToken, "duplicated exactness prefix")
			}
			haveExact, exact = true, false
			l.advance()
		case 'b', 'B':
			if haveRadix {
				return Located[Token]{}, lexErr(startLoc, UnrecognizedToken, "duplicated radix prefix")
			}
			haveRadix, radix = true, 2
			l.advance()
		case 'o', 'O':
			if haveRadix {
				return Located[Token]{}, lexErr(startLoc, UnrecognizedToken, "duplicated radix prefix")
			}
			haveRadix, radix = true, 8
			l.advance()
		case 'd', 'D':
			if haveRadix {
				return Located[Token]{}, lexErr(startLoc, UnrecognizedToken, "duplicated radix prefix")
			}
			haveRadix, radix = true, 10
			l.advance()
		case 'x', 'X':
			if haveRadix {
				return Located[Token]{}, lexErr(startLoc, UnrecognizedToken, "duplicated radix prefix")
			}
			haveRadix, radix = true, 16
			l.advance()
		default:
			return Located[Token]{}, lexErr(startLoc, UnrecognizedToken, "unrecognized number prefix")
		}

		if haveExact && haveRadix {
			break
		}
	}

	return l.scanNumberToken(radix, exact, startLoc)
}

// scanNumberToken scans a full Complex literal body (no more "#"
// prefixes to come) and wraps it as a Primitive token.
//
// exact is parsed and validated by the caller (lexPrefixedNumber
// rejects a duplicated "#e"/"#i") but otherwise unused here: the
// original implementation's get_unreal(radix, _exactness) takes the
// same parameter and never reads it either (lexer.rs), so "#e1.0"
// stays Float(1.0) and "#i5" stays Integer(5) rather than being
// coerced to match the prefix.
func (l *Lexer) scanNumberToken(radix int, exact bool, startLoc Location) (Located[Token], error) {
	_ = exact
	c, err := l.scanComplex(radix, startLoc)
	if err != nil {
		return Located[Token]{}, err
	}
	return At[Token](startLoc, PrimitiveToken{ComplexPrimitive{c}}), nil
}

// scanComplex implements the twelve syntactic shapes of spec.md §4.1
// "Number grammar", §3 cases 1-12.
func (l *Lexer) scanComplex(radix int, startLoc Location) (Complex, error) {
	// Shapes 11/12: "+i" / "-i" alone.
	if r, ok := l.cur(); ok && (r == '+' || r == '-') {
		if n, ok2 := l.peekAt(1); ok2 && n == 'i' && l.delimiterFollows(2) {
			sign := int64(1)
			if r == '-' {
				sign = -1
			}
			l.advanceN(2)
			return ImaginaryComplex{Im: Integer(sign)}, nil
		}
	}

	r1, sawSign, err := l.scanReal(radix, startLoc)
	if err != nil {
		return nil, err
	}

	if l.delimiterFollows(0) {
		return RealComplex{Re: r1}, nil
	}

	n, _ := l.cur()
	switch n {
	case '@':
		l.advance()
		r2, _, err := l.scanReal(radix, l.loc)
		if err != nil {
			return nil, err
		}
		return RectComplex{Re: r1, Im: r2}, nil

	case 'i':
		if !sawSign {
			return nil, lexErr(l.loc, UnrecognizedToken, "imaginary literal must carry an explicit sign")
		}
		l.advance()
		return ImaginaryComplex{Im: r1}, nil

	case '+', '-':
		sign := int64(1)
		if n == '-' {
			sign = -1
		}
		l.advance()
		if ni, ok := l.cur(); ok && ni == 'i' && l.delimiterFollows(1) {
			l.advance()
			return RectComplex{Re: r1, Im: Integer(sign)}, nil
		}
		r2, _, err := l.scanReal2(radix, sign, l.loc)
		if err != nil {
			return nil, err
		}
		if ci, ok := l.cur(); !ok || ci != 'i' {
			return nil, lexErr(l.loc, UnrecognizedToken, "expected 'i' to close imaginary part")
		}
		l.advance()
		return RectComplex{Re: r1, Im: r2}, nil
	}

	return nil, lexErr(l.loc, UnrecognizedToken, "malformed number literal")
}

// scanReal2 scans the unsigned magnitude of an already-signed second
// complex component (the sign character has already been consumed).
func (l *Lexer) scanReal2(radix int, sign int64, loc Location) (Real, bool, error) {
	if l.matches("inf.0") {
		l.advanceN(5)
		if sign < 0 {
			return NegInf{}, true, nil
		}
		return PosInf{}, true, nil
	}
	if l.matches("nan.0") {
		l.advanceN(5)
		if sign < 0 {
			return NegNaN{}, true, nil
		}
		return PosNaN{}, true, nil
	}
	v, err := l.scanUnsignedReal(radix, loc)
	if err != nil {
		return nil, true, err
	}
	if sign < 0 {
		return v.Reverse(), true, nil
	}
	return v, true, nil
}

// scanReal scans a (possibly signed) Real literal, per spec.md §4.1
// "Number grammar". sawSign reports whether a leading '+'/'-' was
// consumed (needed to disambiguate imaginary shapes 8-10).
func (l *Lexer) scanReal(radix int, loc Location) (Real, bool, error) {
	sign := int64(1)
	sawSign := false
	if r, ok := l.cur(); ok && (r == '+' || r == '-') {
		sawSign = true
		if r == '-' {
			sign = -1
		}
		l.advance()
	}

	if l.matches("inf.0") {
		l.advanceN(5)
		if sign < 0 {
			return NegInf{}, sawSign, nil
		}
		return PosInf{}, sawSign, nil
	}
	if l.matches("nan.0") {
		l.advanceN(5)
		if sign < 0 {
			return NegNaN{}, sawSign, nil
		}
		return PosNaN{}, sawSign, nil
	}

	v, err := l.scanUnsignedReal(radix, l.loc)
	if err != nil {
		return nil, sawSign, err
	}
	if sign < 0 {
		return v.Reverse(), sawSign, nil
	}
	return v, sawSign, nil
}

// scanUnsignedReal scans an unsigned integer, rational or float body
// under the given radix: no sign, no infnan (those are handled by the
// caller).
func (l *Lexer) scanUnsignedReal(radix int, loc Location) (Real, error) {
	intDigits := l.scanDigitRun(radix)

	if r, ok := l.cur(); ok && r == '/' {
		if intDigits == "" {
			return nil, lexErr(loc, UnrecognizedToken, "rational literal missing numerator")
		}
		l.advance()
		denDigits := l.scanDigitRun(radix)
		if denDigits == "" {
			return nil, lexErr(loc, UnrecognizedToken, "rational literal missing denominator")
		}
		num, err := strconv.ParseInt(intDigits, radix, 64)
		if err != nil {
			return nil, lexErr(loc, UnrecognizedToken, "integer literal out of range")
		}
		den, err := strconv.ParseUint(denDigits, radix, 64)
		if err != nil {
			return nil, lexErr(loc, UnrecognizedToken, "integer literal out of range")
		}
		if den == 0 {
			return nil, lexErr(loc, UnrecognizedToken, "zero denominator")
		}
		return Ration{Num: num, Den: den}, nil
	}

	isFloat := false
	fracDigits := ""
	if r, ok := l.cur(); ok && r == '.' {
		isFloat = true
		l.advance()
		fracDigits = l.scanDigitRun(radix)
	}

	expSign := int64(1)
	expDigits := ""
	haveExp := false
	if r, ok := l.cur(); ok && (r == 'e' || r == 'E') {
		if n, ok2 := l.peekAt(1); ok2 && (isDecDigit(n) || n == '+' || n == '-') {
			isFloat = true
			haveExp = true
			l.advance()
			if s, ok3 := l.cur(); ok3 && (s == '+' || s == '-') {
				if s == '-' {
					expSign = -1
				}
				l.advance()
			}
			expDigits = l.scanDigitRun(10)
			if expDigits == "" {
				return nil, lexErr(loc, UnrecognizedToken, "malformed exponent")
			}
		}
	}
	_ = haveExp

	if intDigits == "" && fracDigits == "" {
		return nil, lexErr(loc, UnrecognizedToken, "empty numeric literal")
	}

	if !isFloat {
		if intDigits == "" {
			return nil, lexErr(loc, UnrecognizedToken, "empty integer literal")
		}
		n, err := strconv.ParseInt(intDigits, radix, 64)
		if err != nil {
			return nil, lexErr(loc, UnrecognizedToken, "integer literal out of range")
		}
		return Integer(n), nil
	}

	return buildFloat(radix, intDigits, fracDigits, expSign, expDigits)
}

// buildFloat assembles a Float from the parsed significand/exponent
// pieces. For radix 10 it defers to strconv.ParseFloat, which
// guarantees the IEEE-754 round-to-nearest-even rounding spec.md's
// invariants require; non-decimal radices (an open question in
// spec.md §9) are assembled digit-by-digit.
func buildFloat(radix int, intDigits, fracDigits string, expSign int64, expDigits string) (Real, error) {
	exp := int64(0)
	if expDigits != "" {
		e, err := strconv.ParseInt(expDigits, 10, 32)
		if err != nil {
			return nil, lexErr(Location{}, UnrecognizedToken, "exponent out of range")
		}
		exp = expSign * e
	}

	if radix == 10 {
		s := intDigits + "." + fracDigits
		if exp != 0 || expDigits != "" {
			s += "e" + strconv.FormatInt(exp, 10)
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, lexErr(Location{}, UnrecognizedToken, "malformed float literal")
		}
		return Float(f), nil
	}

	var mantissa float64
	for _, r := range intDigits {
		d, _ := digitValue(r, radix)
		mantissa = mantissa*float64(radix) + float64(d)
	}
	scale := 1.0
	for _, r := range fracDigits {
		d, _ := digitValue(r, radix)
		scale /= float64(radix)
		mantissa += float64(d) * scale
	}
	mantissa *= math.Pow(10, float64(exp))
	return Float(mantissa), nil
}

func (l *Lexer) scanDigitRun(radix int) string {
	var sb strings.Builder
	for {
		r, ok := l.cur()
		if !ok {
			break
		}
		if _, valid := digitValue(r, radix); !valid {
			break
		}
		sb.WriteRune(r)
		l.advance()
	}
	return sb.String()
}
