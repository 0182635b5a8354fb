package lower

import (
	"testing"

	"emberc/ast"
	"emberc/typing"
)

// TestGenerateStructAndFunction exercises the full pipeline end to end: a
// struct definition, a function that allocates one with `new`, reads a
// field back out, and returns it, lowered together into one module.
func TestGenerateStructAndFunction(t *testing.T) {
	scope := ast.NewScope()

	sd := ast.NewStructDef(scope, pos(), "Point", []typing.StructField{
		{Name: "x", Type: typing.I32},
		{Name: "y", Type: typing.I32},
	})

	proto := ast.NewPrototype(scope, pos(), "originX", nil, nil, typing.I32, false)

	fieldInit := ast.NewNumberLit(pos(), "7", 10, 'i', false)
	newExpr := ast.NewNewExpr(pos(), sd.Type, map[string]ast.Expr{"x": fieldInit, "y": fieldInit}, []string{"x", "y"})
	prop := ast.NewPropAccessExpr(pos(), newExpr, "x")
	fd := ast.NewFuncDef(pos(), proto, prop)

	mod := Generate([]ast.Node{sd, fd})

	if len(mod.TypeDefs) != 1 {
		t.Fatalf("expected 1 type definition, got %d", len(mod.TypeDefs))
	}
	if len(mod.Funcs) != 1 {
		t.Fatalf("expected 1 function, got %d", len(mod.Funcs))
	}

	fn := mod.Funcs[0]
	if len(fn.Blocks) == 0 || fn.Blocks[0].Term == nil {
		t.Fatal("expected the generated function to have a terminated entry block")
	}
}

// TestGenerateOrdersStructsBeforeFunctionsRegardlessOfInputOrder checks that
// a function appearing before the struct it uses still lowers correctly,
// since Generate declares every struct type before emitting any body.
func TestGenerateOrdersStructsBeforeFunctionsRegardlessOfInputOrder(t *testing.T) {
	scope := ast.NewScope()

	sd := ast.NewStructDef(scope, pos(), "Pair", []typing.StructField{
		{Name: "a", Type: typing.I32},
	})
	proto := ast.NewPrototype(scope, pos(), "makePair", nil, nil, typing.Pointer{Elem: sd.Type}, false)
	lit := ast.NewNumberLit(pos(), "1", 10, 'i', false)
	newExpr := ast.NewNewExpr(pos(), sd.Type, map[string]ast.Expr{"a": lit}, []string{"a"})
	fd := ast.NewFuncDef(pos(), proto, newExpr)

	// Function declaration appears before its struct in the top-level list.
	mod := Generate([]ast.Node{fd, sd})

	if len(mod.TypeDefs) != 1 {
		t.Fatalf("expected 1 type definition regardless of order, got %d", len(mod.TypeDefs))
	}
}
