package ast

import (
	"emberc/report"
	"emberc/typing"
)

// NumberLit is a numeric literal. The lexer records raw digits, base, an
// optional trailing type-suffix letter, and whether a decimal point was
// present; this constructor is where that raw payload is turned into a
// type, matching num_char_to_type being applied at AST-construction time
// rather than at lex time.
type NumberLit struct {
	ExprBase
	Digits string
	Base   int
	Suffix byte
	HasDot bool
}

// NewNumberLit builds a NumberLit, computing its type from suffix and
// HasDot. A '.' paired with an integer suffix is fatal; an unsuffixed
// literal defaults to f64 if it has a decimal point, i32 otherwise.
func NewNumberLit(pos *report.Position, digits string, base int, suffix byte, hasDot bool) *NumberLit {
	return &NumberLit{
		ExprBase: ExprBase{pos: pos, typ: numberSuffixType(pos, suffix, hasDot)},
		Digits:   digits,
		Base:     base,
		Suffix:   suffix,
		HasDot:   hasDot,
	}
}

func numberSuffixType(pos *report.Position, suffix byte, hasDot bool) typing.Type {
	switch suffix {
	case 'd':
		return typing.F64
	case 'f':
		return typing.F32
	case 0:
		if hasDot {
			return typing.F64
		}
		return typing.I32
	case 'i', 'u', 'l', 'b':
		if hasDot {
			report.Fatal(pos, "type", "'.' is illegal on a literal suffixed '%c'", suffix)
		}
		switch suffix {
		case 'i':
			return typing.I32
		case 'u':
			return typing.U32
		case 'l':
			return typing.I64
		default:
			return typing.U8
		}
	default:
		report.Fatal(pos, "type", "invalid numeric literal suffix '%c'", suffix)
		return nil
	}
}

// -----------------------------------------------------------------------------

// BoolLit is a `true`/`false` literal, always typed bool.
type BoolLit struct {
	ExprBase
	Value bool
}

func NewBoolLit(pos *report.Position, v bool) *BoolLit {
	return &BoolLit{ExprBase: ExprBase{pos: pos, typ: typing.Bool}, Value: v}
}

// -----------------------------------------------------------------------------

// CharLit is a single-byte character literal, always typed u8.
type CharLit struct {
	ExprBase
	Value byte
}

func NewCharLit(pos *report.Position, v byte) *CharLit {
	return &CharLit{ExprBase: ExprBase{pos: pos, typ: typing.U8}, Value: v}
}

// -----------------------------------------------------------------------------

// StringLit is a string literal. Its type depends on its trailing kind
// suffix: 'c' decays to a null-terminated byte pointer, 'p' is a pointer to
// the backing char array, and the unsuffixed default is the fixed-length
// char array itself (the literal's bytes plus one null terminator byte).
type StringLit struct {
	ExprBase
	Value string
	Kind  byte
}

func NewStringLit(pos *report.Position, v string, kind byte) *StringLit {
	arr := typing.Array{Elem: typing.U8, Count: len(v) + 1}

	var t typing.Type
	switch kind {
	case 'c':
		t = typing.Pointer{Elem: typing.U8}
	case 'p':
		t = typing.Pointer{Elem: arr}
	case 0:
		t = arr
	default:
		report.Fatal(pos, "type", "invalid string literal kind '%c'", kind)
	}

	return &StringLit{ExprBase: ExprBase{pos: pos, typ: t}, Value: v, Kind: kind}
}

// -----------------------------------------------------------------------------

// NullLit is the `null` literal. Its default type is the bottom type Null,
// but an if/while node with no else branch synthesizes one typed to match
// its other branch instead, mirroring original_source's NullExprAST, which
// accepts an explicit type override.
type NullLit struct {
	ExprBase
}

func NewNullLit(pos *report.Position) *NullLit {
	return &NullLit{ExprBase{pos: pos, typ: typing.Null{}}}
}

// NewTypedNullLit builds a null literal pre-typed to t, used only to
// synthesize the missing branch of an if/while with no else.
func NewTypedNullLit(pos *report.Position, t typing.Type) *NullLit {
	return &NullLit{ExprBase{pos: pos, typ: t}}
}
