package scm

import "fmt"

// LexErrorKind classifies a lexical error, per spec.md's error taxonomy.
type LexErrorKind int

const (
	// UnexpectedBegin: the dispatcher saw an input character that
	// cannot start any token.
	UnexpectedBegin LexErrorKind = iota
	// UnexpectedEnd: input ended mid-token (unterminated string,
	// quoted identifier, block comment, or prefix).
	UnexpectedEnd
	// UnrecognizedToken: a partial match failed (duplicated numeric
	// prefix, invalid escape, unknown "#" class, ...).
	UnrecognizedToken
)

func (k LexErrorKind) String() string {
	switch k {
	case UnexpectedBegin:
		return "unexpected begin"
	case UnexpectedEnd:
		return "unexpected end"
	case UnrecognizedToken:
		return "unrecognized token"
	default:
		return "unknown lex error"
	}
}

// LexError is a located lexical error. The lexer halts emission on the
// offending lexeme; it does not retry and does not auto-recover.
type LexError struct {
	Loc    Location
	Kind   LexErrorKind
	Detail string
}

func (e *LexError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s: %s", e.Loc, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %s", e.Loc, e.Kind, e.Detail)
}

// ReaderErrorKind classifies a reader (processor) error.
type ReaderErrorKind int

const (
	// LexerErrorKind wraps a located lexical error encountered while
	// pulling a token.
	LexerErrorKind ReaderErrorKind = iota
	// UnmatchedParentheses is a stray RightParen at top level or in
	// place of a missing closing token.
	UnmatchedParentheses
	// UnexpectedTokenKind is a token in a position where none is
	// legal (two dots in a list, a non-byte in a bytevector, ...).
	UnexpectedTokenKind
	// UnexpectedEndKind: input ran out inside a compound datum or
	// right after an abbreviation prefix.
	UnexpectedEndKind
)

// ReaderError is a located reader error.
type ReaderError struct {
	Loc   Location
	Kind  ReaderErrorKind
	Inner *LexError // set iff Kind == LexerErrorKind
	Tok   Token     // set iff Kind is UnexpectedTokenKind or UnmatchedParentheses
}

func (e *ReaderError) Error() string {
	switch e.Kind {
	case LexerErrorKind:
		return e.Inner.Error()
	case UnmatchedParentheses:
		return fmt.Sprintf("%s: unmatched parentheses", e.Loc)
	case UnexpectedTokenKind:
		return fmt.Sprintf("%s: unexpected token: %s", e.Loc, e.Tok)
	case UnexpectedEndKind:
		return fmt.Sprintf("%s: unexpected end of input", e.Loc)
	default:
		return fmt.Sprintf("%s: reader error", e.Loc)
	}
}

// Unwrap lets errors.Is/As reach the wrapped *LexError.
func (e *ReaderError) Unwrap() error {
	if e.Kind == LexerErrorKind {
		return e.Inner
	}
	return nil
}
