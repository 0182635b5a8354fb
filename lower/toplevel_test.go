package lower

import (
	"testing"

	"github.com/llir/llvm/ir"

	"emberc/ast"
	"emberc/typing"
)

func TestDeclarePrototypeRegistersCallableFunction(t *testing.T) {
	mod := ir.NewModule()
	ctx := NewContext(mod)
	scope := ast.NewScope()

	proto := ast.NewPrototype(scope, pos(), "add", []string{"a", "b"}, []typing.Type{typing.I32, typing.I32}, typing.I32, false)
	ctx.DeclarePrototype(proto)

	v := ctx.Lookup(pos(), "add")
	if !v.Addressable() {
		t.Fatal("expected a declared function to report itself addressable")
	}
}

func TestEmitFuncDefBuildsEntryBlockAndReturn(t *testing.T) {
	mod := ir.NewModule()
	ctx := NewContext(mod)
	scope := ast.NewScope()

	proto := ast.NewPrototype(scope, pos(), "id", []string{"x"}, []typing.Type{typing.I32}, typing.I32, false)
	body := ast.NewVariableExpr(scope, pos(), "x")
	fd := ast.NewFuncDef(pos(), proto, body)

	fn := ctx.DeclarePrototype(proto)
	ctx.EmitFuncDef(fd)

	if len(fn.Blocks) == 0 {
		t.Fatal("expected at least one basic block")
	}
	last := fn.Blocks[len(fn.Blocks)-1]
	if last.Term == nil {
		t.Fatal("expected the function body to end in a terminator")
	}
	if _, ok := last.Term.(*ir.TermRet); !ok {
		t.Errorf("expected a return terminator, got %T", last.Term)
	}
}

func TestDeclareAndDefineStructRoundTrip(t *testing.T) {
	mod := ir.NewModule()
	ctx := NewContext(mod)
	scope := ast.NewScope()

	sd := ast.NewStructDef(scope, pos(), "Point", []typing.StructField{
		{Name: "x", Type: typing.I32},
		{Name: "y", Type: typing.I32},
	})

	ctx.DeclareStruct(sd)
	if ctx.StructType("Point") == nil {
		t.Fatal("expected Point to be declared as an opaque struct type")
	}

	ctx.DefineStruct(sd)
	if len(ctx.StructType("Point").Fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(ctx.StructType("Point").Fields))
	}
}

func TestEmitDeclareVarBindsLoadThroughGlobal(t *testing.T) {
	mod := ir.NewModule()
	ctx := NewContext(mod)
	scope := ast.NewScope()

	decl := ast.NewDeclareVar(scope, pos(), "errno", typing.I32)
	ctx.EmitDeclare(decl)

	v := ctx.Lookup(pos(), "errno")
	if !typing.Equals(v.Type(), typing.I32) {
		t.Fatalf("expected errno bound as i32, got %s", v.Type())
	}
	if !v.Addressable() {
		t.Fatal("expected an external global binding to be addressable")
	}
}
