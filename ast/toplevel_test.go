package ast

import (
	"testing"

	"emberc/typing"
)

func TestPrototypeRegistersFunctionType(t *testing.T) {
	scope := NewScope()
	NewPrototype(scope, pos(), "add", []string{"a", "b"}, []typing.Type{typing.I32, typing.I32}, typing.I32, false)

	ft, ok := scope.VariableTypes["add"].(*typing.Function)
	if !ok {
		t.Fatal("expected add to resolve to a function type")
	}
	if !typing.Equals(ft.Return, typing.I32) {
		t.Errorf("expected i32 return, got %s", ft.Return)
	}
}

func TestMethodPrototypeMangledNameAndTrailingThis(t *testing.T) {
	st := typing.NewStruct("Vec", nil)
	scope := NewScope()
	proto := NewMethodPrototype(scope, pos(), typing.Pointer{Elem: st}, "push", []string{"v"}, []typing.Type{typing.I32}, typing.Bool, false)

	wantName := "(*Vec)::push"
	if proto.Name != wantName {
		t.Errorf("expected mangled name %q, got %q", wantName, proto.Name)
	}
	if len(proto.ParamNames) != 2 || proto.ParamNames[1] != "this" {
		t.Errorf("expected trailing this parameter, got %v", proto.ParamNames)
	}
}

func TestFuncDefInfersReturnType(t *testing.T) {
	scope := NewScope()
	proto := NewPrototype(scope, pos(), "id", []string{"x"}, []typing.Type{typing.I32}, nil, false)
	body := NewNumberLit(pos(), "1", 10, 'i', false)

	NewFuncDef(pos(), proto, body)
	if !typing.Equals(proto.Return, typing.I32) {
		t.Errorf("expected inferred i32 return, got %s", proto.Return)
	}
	if !typing.Equals(proto.FuncType.Return, typing.I32) {
		t.Error("FuncDef must back-fill the Prototype's underlying Function type too")
	}
}

func TestStructDefRegistersNominalType(t *testing.T) {
	scope := NewScope()
	def := NewStructDef(scope, pos(), "Point", []typing.StructField{{Name: "x", Type: typing.I32}})

	if _, ok := scope.UserTypes["Point"]; !ok {
		t.Fatal("expected Point to be registered in UserTypes")
	}
	if !typing.Equals(def.Type, scope.UserTypes["Point"]) {
		t.Error("StructDef.Type must match the registered type")
	}
}

func TestTypeAliasDefRegistersAlias(t *testing.T) {
	scope := NewScope()
	NewTypeAliasDef(scope, pos(), "Byte", typing.U8)

	if !typing.Equals(scope.UserTypes["Byte"], typing.U8) {
		t.Error("expected Byte to alias u8")
	}
}

func TestDeclareVarRegistersBinding(t *testing.T) {
	scope := NewScope()
	NewDeclareVar(scope, pos(), "errno", typing.I32)

	if !typing.Equals(scope.VariableTypes["errno"], typing.I32) {
		t.Error("expected errno to be registered as i32")
	}
}
