package lower

import (
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/types"
	irvalue "github.com/llir/llvm/ir/value"

	"emberc/ast"
	"emberc/report"
	"emberc/typing"
	"emberc/value"
)

// emitCallExpr lowers a direct or indirect call, grounded on
// generate.Generator.genCall. Each non-variadic-tail argument is cast to its
// declared parameter type before the call; a variadic tail is passed at its
// natural type.
func (ctx *Context) emitCallExpr(c *ast.CallExpr) value.Value {
	calleeVal := ctx.EmitExpr(c.Callee)
	ft := funcTypeOf(calleeVal.Type())
	if ft == nil {
		report.Fatal(c.Position(), "emit", "callee of type %s is not callable", calleeVal.Type().String())
	}

	args := make([]irvalue.Value, len(c.Args))
	for i, a := range c.Args {
		argVal := ctx.EmitExpr(a)
		if i < len(ft.Params) {
			argVal = value.NewCastOf(argVal, ft.Params[i], ctx.Cast)
		}
		args[i] = argVal.Emit(ctx.Block)
	}
	return value.NewConst(c.Type(), ctx.Block.NewCall(calleeVal.Emit(ctx.Block), args...))
}

// funcTypeOf unwraps a function or pointer-to-function type, duplicated
// from ast's private calleeFuncType since lower must not import ast's
// unexported helpers.
func funcTypeOf(t typing.Type) *typing.Function {
	switch tt := t.(type) {
	case *typing.Function:
		return tt
	case typing.Pointer:
		if f, ok := tt.Elem.(*typing.Function); ok {
			return f
		}
	}
	return nil
}

// emitIndexExpr lowers both index forms: a dynamic GEP off a pointer
// operand (the ordinary array-decayed-to-pointer idiom), and a
// compile-time-literal GEP into an addressable tuple's storage.
func (ctx *Context) emitIndexExpr(idx *ast.IndexExpr) value.Value {
	operand := ctx.EmitExpr(idx.Operand)

	if idx.IsTuple {
		if !operand.Addressable() {
			report.Fatal(idx.Position(), "emit", "tuple index requires an addressable tuple value")
		}
		tupType := ctx.LowerType(operand.Type())
		elemPtr := ctx.Block.NewGetElementPtr(tupType, operand.Pointer(ctx.Block),
			constant.NewInt(types.I32, 0), constant.NewInt(types.I32, int64(idx.Literal)))
		return value.NewLoadThroughPointer(idx.Type(), elemPtr)
	}

	p := operand.Type().(typing.Pointer)
	elemType := ctx.LowerType(p.Elem)
	i := ctx.EmitExpr(idx.Index).Emit(ctx.Block)
	elemPtr := ctx.Block.NewGetElementPtr(elemType, operand.Emit(ctx.Block), i)
	return value.NewLoadThroughPointer(idx.Type(), elemPtr)
}

// emitPropAccessExpr lowers field access on a pointer-to-struct operand via
// a two-index GEP (the leading zero dereferences the pointer itself).
func (ctx *Context) emitPropAccessExpr(p *ast.PropAccessExpr) value.Value {
	operand := ctx.EmitExpr(p.Operand)
	ptrType := operand.Type().(typing.Pointer)
	st := ptrType.Elem.(*typing.Struct)
	structLLType := ctx.StructType(st.Name)

	fieldPtr := ctx.Block.NewGetElementPtr(structLLType, operand.Emit(ctx.Block),
		constant.NewInt(types.I32, 0), constant.NewInt(types.I32, int64(p.FieldIndex)))
	return value.NewLoadThroughPointer(p.Type(), fieldPtr)
}

// emitMethodCallExpr lowers a desugared method call: a lookup of the
// mangled function by name, called with the receiver appended as the
// trailing argument, matching the convention NewMethodPrototype sets up at
// construction. Every argument, including the trailing receiver, is cast
// to its declared parameter type before the call.
func (ctx *Context) emitMethodCallExpr(m *ast.MethodCallExpr) value.Value {
	fnVal := ctx.Lookup(m.Position(), m.MangledName)
	ft, ok := fnVal.Type().(*typing.Function)
	if !ok {
		report.Fatal(m.Position(), "emit", "%q is not a function", m.MangledName)
	}

	args := make([]irvalue.Value, len(m.Args)+1)
	for i, a := range m.Args {
		argVal := ctx.EmitExpr(a)
		if i < len(ft.Params) {
			argVal = value.NewCastOf(argVal, ft.Params[i], ctx.Cast)
		}
		args[i] = argVal.Emit(ctx.Block)
	}

	recvIdx := len(m.Args)
	recvVal := ctx.EmitExpr(m.Receiver)
	if recvIdx < len(ft.Params) {
		recvVal = value.NewCastOf(recvVal, ft.Params[recvIdx], ctx.Cast)
	}
	args[recvIdx] = recvVal.Emit(ctx.Block)

	return value.NewConst(m.Type(), ctx.Block.NewCall(fnVal.Emit(ctx.Block), args...))
}

// emitNewExpr allocates a struct on the stack and stores each initializer
// into its field slot, grounded on generate.Generator's struct-literal
// lowering.
func (ctx *Context) emitNewExpr(n *ast.NewExpr) value.Value {
	structLLType := ctx.StructType(n.StructType.Name)
	ptr := ctx.Func.Blocks[0].NewAlloca(structLLType)

	for _, name := range n.FieldOrder {
		idx, _ := n.StructType.FieldIndex(name)
		fieldPtr := ctx.Block.NewGetElementPtr(structLLType, ptr,
			constant.NewInt(types.I32, 0), constant.NewInt(types.I32, int64(idx)))
		val := ctx.EmitExpr(n.FieldInits[name])
		ctx.Block.NewStore(val.Emit(ctx.Block), fieldPtr)
	}

	return value.NewConst(n.Type(), ptr)
}
