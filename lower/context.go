// Package lower converts typed AST nodes directly into LLVM IR via
// github.com/llir/llvm, grounded on the teacher's generate package (the one
// generation of the teacher's three that targets llir directly rather than
// an intermediate MIR). Dispatch over concrete ast.Expr types lives here,
// centrally, rather than as an Emit method on ast.Expr, which keeps package
// ast free of any dependency on llir or on this package.
package lower

import (
	"fmt"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/types"

	"emberc/report"
	"emberc/value"
)

// Context threads the state a single module's worth of lowering needs: the
// module and current function/block cursor, the table of named struct
// types under construction, and the stack of variable-binding scopes.
//
// It is grounded on generate.Generator's globalScope/localScopes/
// globalTypes fields and its pushScope/popScope/defineLocal/lookup methods.
type Context struct {
	Module *ir.Module
	Func   *ir.Func
	Block  *ir.Block

	structTypes map[string]*types.StructType
	funcDecls   map[string]*ir.Func
	funcDefined map[string]bool

	globals map[string]value.Value
	locals  []map[string]value.Value

	globalCounter int
}

// NewContext builds a Context around a fresh module.
func NewContext(mod *ir.Module) *Context {
	return &Context{
		Module:      mod,
		structTypes: make(map[string]*types.StructType),
		funcDecls:   make(map[string]*ir.Func),
		funcDefined: make(map[string]bool),
		globals:     make(map[string]value.Value),
	}
}

// DeclaredFunc looks up a previously declared function by its (possibly
// mangled) name.
func (ctx *Context) DeclaredFunc(name string) *ir.Func {
	fn, ok := ctx.funcDecls[name]
	if !ok {
		report.Fatal(nil, "emit", "function %q was never declared before its body was emitted", name)
	}
	return fn
}

// PushScope opens a new local variable scope, e.g. on entering a function
// body or a block with its own bindings.
func (ctx *Context) PushScope() {
	ctx.locals = append(ctx.locals, make(map[string]value.Value))
}

// PopScope closes the innermost local variable scope.
func (ctx *Context) PopScope() {
	ctx.locals = ctx.locals[:len(ctx.locals)-1]
}

// Bind introduces name into the innermost open scope, or into the global
// scope if no local scope is open.
func (ctx *Context) Bind(name string, v value.Value) {
	if len(ctx.locals) > 0 {
		ctx.locals[len(ctx.locals)-1][name] = v
	} else {
		ctx.globals[name] = v
	}
}

// Lookup resolves name against the scope stack, innermost first, falling
// back to the global scope, matching generate.Generator.lookup's shadowing
// order. It is fatal for a name to be unbound here: every name reaching
// emission has already passed the matching ast.Scope.VariableTypes check at
// AST construction time, so an unbound name at this point is an internal
// inconsistency, not a user error.
func (ctx *Context) Lookup(pos *report.Position, name string) value.Value {
	for i := len(ctx.locals) - 1; i >= 0; i-- {
		if v, ok := ctx.locals[i][name]; ok {
			return v
		}
	}
	if v, ok := ctx.globals[name]; ok {
		return v
	}
	report.Fatal(pos, "emit", "unbound identifier %q during emission", name)
	return nil
}

// NewBlock appends a fresh basic block to the current function, named
// uniquely by a running counter, matching generate.Generator.appendBlock.
func (ctx *Context) NewBlock(label string) *ir.Block {
	b := ctx.Func.NewBlock(fmt.Sprintf("%s%d", label, len(ctx.Func.Blocks)))
	return b
}

// DeclareStructType registers an opaque named struct type so that pointer
// fields referencing it (including self-reference) can be built before its
// field list is known, matching the classic forward-declared-struct
// pattern: the *types.StructType identity is stable even though its Fields
// slice is filled in later by DefineStructFields.
func (ctx *Context) DeclareStructType(name string) *types.StructType {
	st := types.NewStruct()
	ctx.Module.NewTypeDef(name, st)
	ctx.structTypes[name] = st
	return st
}

// DefineStructFields fills in the field list of a struct type previously
// declared with DeclareStructType.
func (ctx *Context) DefineStructFields(name string, fields []types.Type) {
	ctx.structTypes[name].Fields = fields
}

// StructType looks up a previously declared struct type by name.
func (ctx *Context) StructType(name string) *types.StructType {
	return ctx.structTypes[name]
}

// nextGlobalName returns a fresh, unique name for an anonymous global
// constant (e.g. a string literal's backing storage), matching
// generate.Generator.globalCounter.
func (ctx *Context) nextGlobalName(prefix string) string {
	ctx.globalCounter++
	return fmt.Sprintf("%s.%d", prefix, ctx.globalCounter)
}
