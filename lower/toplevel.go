package lower

import (
	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/enum"
	"github.com/llir/llvm/ir/types"

	"emberc/ast"
	"emberc/report"
	"emberc/typing"
	"emberc/util"
	"emberc/value"
)

// DeclarePrototype declares a function's signature without a body,
// grounded on generate.Generator.genForwardDecl, and binds it into scope so
// calls appearing before its FuncDef or DeclareTop resolve regardless of
// source order. If proto.Name was already declared (e.g. by an earlier
// DeclareTop or by this same FuncDef being visited twice while resolving
// forward references), the existing *ir.Func is rewired rather than
// redeclared, so a forward declaration and its eventual definition share
// exactly one backend symbol.
func (ctx *Context) DeclarePrototype(proto *ast.Prototype) *ir.Func {
	if fn, ok := ctx.funcDecls[proto.Name]; ok {
		ctx.Bind(proto.Name, value.NewFunction(proto.FuncType, fn))
		return fn
	}

	params := make([]*ir.Param, len(proto.ParamTypes))
	for i, pt := range proto.ParamTypes {
		params[i] = ir.NewParam(proto.ParamNames[i], ctx.LowerType(pt))
	}

	fn := ctx.Module.NewFunc(proto.Name, ctx.LowerType(proto.Return), params...)
	fn.Linkage = enum.LinkageExternal
	ctx.funcDecls[proto.Name] = fn
	ctx.Bind(proto.Name, value.NewFunction(proto.FuncType, fn))
	return fn
}

// EmitFuncDef emits a function's body against its previously declared
// signature, grounded on generate.Generator.genFunc. Emitting a second body
// for the same name is fatal, matching the "function redefinition"
// diagnostic §7 requires.
func (ctx *Context) EmitFuncDef(fd *ast.FuncDef) {
	name := fd.Proto.Name
	if ctx.funcDefined[name] {
		report.Fatal(fd.Position(), "emit", "function %q redefined", name)
	}
	ctx.funcDefined[name] = true

	fn := ctx.DeclaredFunc(name)
	ctx.Func = fn
	ctx.Block = fn.NewBlock("entry")

	ctx.PushScope()
	defer ctx.PopScope()

	for i, name := range fd.Proto.ParamNames {
		ctx.Bind(name, value.NewNamed(value.NewConst(fd.Proto.ParamTypes[i], fn.Params[i]), name))
	}

	result := ctx.EmitExpr(fd.Body)
	ctx.Block.NewRet(result.Emit(ctx.Block))
}

// DeclareStruct registers sd's name as an opaque struct type, the first of
// the two-phase struct declaration so pointer fields can reference any
// struct regardless of source order.
func (ctx *Context) DeclareStruct(sd *ast.StructDef) {
	ctx.DeclareStructType(sd.Type.Name)
}

// DefineStruct fills in the field list of a struct previously declared
// with DeclareStruct.
func (ctx *Context) DefineStruct(sd *ast.StructDef) {
	fields := util.Map(sd.Type.Fields, func(f typing.StructField) types.Type {
		return ctx.LowerType(f.Type)
	})
	ctx.DefineStructFields(sd.Type.Name, fields)
}

// EmitDeclare lowers a bodyless top-level declaration: an external
// function signature (delegated to DeclarePrototype) or an external global
// variable, grounded on generate.Generator.genGlobalVar's extern path.
func (ctx *Context) EmitDeclare(d *ast.DeclareTop) {
	switch d.Kind {
	case ast.DeclareFunc:
		ctx.DeclarePrototype(d.Proto)
	case ast.DeclareVar:
		glob := ctx.Module.NewGlobal(d.Name, ctx.LowerType(d.VarType))
		glob.Linkage = enum.LinkageExternal
		ctx.Bind(d.Name, value.NewLoadThroughPointer(d.VarType, glob))
	}
}
