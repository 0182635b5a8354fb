package typing

import "testing"

func TestCastLegalNumberToNumber(t *testing.T) {
	if !CastLegal(I32, F64) {
		t.Error("expected Number -> Number to be legal")
	}
	if !CastLegal(Bool, I32) {
		t.Error("expected Number -> Number (including bool) to be legal")
	}
}

func TestCastLegalPointerRoundTrip(t *testing.T) {
	p := Pointer{Elem: I32}
	if !CastLegal(p, I64) {
		t.Error("expected Pointer -> Number to be legal")
	}
	if !CastLegal(I64, p) {
		t.Error("expected Number -> Pointer to be legal")
	}
	if !CastLegal(p, Pointer{Elem: U8}) {
		t.Error("expected Pointer -> Pointer to be legal regardless of element type")
	}
}

func TestCastLegalArrayDecay(t *testing.T) {
	arr := Array{Elem: U8, Count: 6}
	if !CastLegal(arr, Pointer{Elem: U8}) {
		t.Error("expected Array -> Pointer decay to a matching element type to be legal")
	}
	if CastLegal(arr, Pointer{Elem: I32}) {
		t.Error("expected Array -> Pointer decay to a mismatched element type to be illegal")
	}
}

func TestCastLegalTupleToArray(t *testing.T) {
	tup := Tuple{Elems: []Type{U8, U8, U8}}
	if !CastLegal(tup, Array{Elem: U8, Count: 3}) {
		t.Error("expected a uniform Tuple -> matching Array to be legal")
	}
	if CastLegal(tup, Array{Elem: U8, Count: 2}) {
		t.Error("expected a count mismatch to be illegal")
	}
	if CastLegal(Tuple{Elems: []Type{U8, I32, U8}}, Array{Elem: U8, Count: 3}) {
		t.Error("expected a non-uniform tuple to be illegal")
	}
}

func TestCastLegalNullToAny(t *testing.T) {
	if !CastLegal(Null{}, Pointer{Elem: I32}) {
		t.Error("expected Null -> Pointer to be legal")
	}
	if !CastLegal(Null{}, I32) {
		t.Error("expected Null -> Number to be legal")
	}
}

func TestCastLegalIdentity(t *testing.T) {
	if !CastLegal(I32, I32) {
		t.Error("expected T -> T to be legal")
	}
}

func TestCastIllegalStructToNumber(t *testing.T) {
	s := NewStruct("Point", []StructField{{Name: "x", Type: I32}})
	if CastLegal(s, I32) {
		t.Error("expected Struct -> Number to be illegal")
	}
}
