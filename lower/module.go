package lower

import (
	"github.com/llir/llvm/ir"

	"emberc/ast"
	"emberc/report"
)

// Generate lowers a complete set of top-level declarations into a single
// LLVM module. Lowering happens in three passes, a flattened version of
// generate.Generator.Generate's def-dependency-graph pass: Ember's eager,
// non-generic type system has already resolved every name by the time
// lowering begins, so a fixed three-pass order is enough, no dependency
// graph required.
//
//  1. declare every struct type as opaque, so self- and mutually-recursive
//     pointer fields can reference any struct regardless of source order;
//  2. fill in every struct's field list, and declare every function
//     signature (FuncDef, DeclareTop) so calls resolve regardless of
//     source order;
//  3. emit every function body.
func Generate(tops []ast.Node) *ir.Module {
	mod := ir.NewModule()
	ctx := NewContext(mod)

	var structDefs []*ast.StructDef
	var funcDefs []*ast.FuncDef

	for _, top := range tops {
		if sd, ok := top.(*ast.StructDef); ok {
			ctx.DeclareStruct(sd)
			structDefs = append(structDefs, sd)
		}
	}
	for _, sd := range structDefs {
		ctx.DefineStruct(sd)
	}

	for _, top := range tops {
		switch v := top.(type) {
		case *ast.FuncDef:
			ctx.DeclarePrototype(v.Proto)
			funcDefs = append(funcDefs, v)
		case *ast.DeclareTop:
			ctx.EmitDeclare(v)
		case *ast.StructDef, *ast.TypeAliasDef:
			// Struct layout was handled above; a type alias carries no
			// runtime representation of its own.
		default:
			report.Fatal(top.Position(), "emit", "unsupported top-level declaration")
		}
	}

	for _, fd := range funcDefs {
		ctx.EmitFuncDef(fd)
	}

	return mod
}
