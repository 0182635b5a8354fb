package lower

import (
	"emberc/ast"
	"emberc/report"
	"emberc/value"
)

func (ctx *Context) emitVariableExpr(v *ast.VariableExpr) value.Value {
	return ctx.Lookup(v.Position(), v.Name)
}

// emitLetExpr binds a new name, grounded on generate.Generator.genVarDecl:
// an immutable binding is simply the initializer's emitted value, named for
// readability in the emitted IR; a mutable binding gets its own stack slot
// (an alloca in the function's entry block) so later assignments have
// somewhere to store through.
func (ctx *Context) emitLetExpr(l *ast.LetExpr) value.Value {
	if !l.Mutable && l.Init == nil {
		report.Fatal(l.Position(), "emit", "immutable binding %q has no initializer", l.Name)
	}

	if !l.Mutable {
		bound := value.NewNamed(ctx.EmitExpr(l.Init), l.Name)
		ctx.Bind(l.Name, bound)
		return bound
	}

	llType := ctx.LowerType(l.Type())
	entry := ctx.Func.Blocks[0]
	ptr := entry.NewAlloca(llType)
	ptr.SetName(l.Name)

	if l.Init != nil {
		init := value.NewCastOf(ctx.EmitExpr(l.Init), l.Type(), ctx.Cast)
		ctx.Block.NewStore(init.Emit(ctx.Block), ptr)
	}

	bound := value.NewLoadThroughPointer(l.Type(), ptr)
	ctx.Bind(l.Name, bound)
	return bound
}
