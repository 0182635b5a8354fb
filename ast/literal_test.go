package ast

import (
	"testing"

	"emberc/report"
	"emberc/typing"
)

func TestNumberLitSuffixTypes(t *testing.T) {
	cases := []struct {
		suffix byte
		hasDot bool
		want   typing.Type
	}{
		{'d', false, typing.F64},
		{'f', false, typing.F32},
		{'i', false, typing.I32},
		{'u', false, typing.U32},
		{'l', false, typing.I64},
		{'b', false, typing.U8},
		{0, false, typing.I32},
		{0, true, typing.F64},
	}
	for _, c := range cases {
		lit := NewNumberLit(&report.Position{}, "3", 10, c.suffix, c.hasDot)
		if !typing.Equals(lit.Type(), c.want) {
			t.Errorf("suffix=%q hasDot=%v: expected %s, got %s", c.suffix, c.hasDot, c.want, lit.Type())
		}
	}
}

func TestStringLitKindTypes(t *testing.T) {
	pos := &report.Position{}

	c := NewStringLit(pos, "hi", 'c')
	if !typing.Equals(c.Type(), typing.Pointer{Elem: typing.U8}) {
		t.Errorf("'c' kind: expected *u8, got %s", c.Type())
	}

	p := NewStringLit(pos, "hi", 'p')
	wantP := typing.Pointer{Elem: typing.Array{Elem: typing.U8, Count: 3}}
	if !typing.Equals(p.Type(), wantP) {
		t.Errorf("'p' kind: expected %s, got %s", wantP, p.Type())
	}

	def := NewStringLit(pos, "hi", 0)
	wantDef := typing.Array{Elem: typing.U8, Count: 3}
	if !typing.Equals(def.Type(), wantDef) {
		t.Errorf("default kind: expected %s, got %s", wantDef, def.Type())
	}
}

func TestBoolAndCharLitTypes(t *testing.T) {
	pos := &report.Position{}
	if !typing.Equals(NewBoolLit(pos, true).Type(), typing.Bool) {
		t.Error("bool literal must be typed bool")
	}
	if !typing.Equals(NewCharLit(pos, 'x').Type(), typing.U8) {
		t.Error("char literal must be typed u8")
	}
}

func TestNullLitDefaultAndTyped(t *testing.T) {
	pos := &report.Position{}
	if !typing.Equals(NewNullLit(pos).Type(), typing.Null{}) {
		t.Error("bare null literal must be typed Null")
	}
	typed := NewTypedNullLit(pos, typing.I32)
	if !typing.Equals(typed.Type(), typing.I32) {
		t.Error("typed null literal must carry its override type")
	}
}
