package lower

import (
	"github.com/llir/llvm/ir/types"

	"emberc/report"
	"emberc/typing"
	"emberc/util"
)

// LowerType materializes an Ember type as a concrete llir backend type,
// grounded on generate.Generator.convType/convPrimType. Unlike the
// teacher's version, pointers here are never implicitly inserted around
// struct types: Ember's Pointer is always explicit in the source type, so
// a *typing.Struct lowers to the bare struct type and the caller wraps it
// in a types.PointerType only when the Ember type actually was a Pointer.
func (ctx *Context) LowerType(t typing.Type) types.Type {
	switch v := t.(type) {
	case typing.Number:
		return lowerNumberType(v)
	case typing.Pointer:
		return types.NewPointer(ctx.LowerType(v.Elem))
	case typing.Array:
		return types.NewArray(uint64(v.Count), ctx.LowerType(v.Elem))
	case typing.Tuple:
		elems := util.Map(v.Elems, ctx.LowerType)
		return types.NewStruct(elems...)
	case *typing.Struct:
		if st := ctx.StructType(v.Name); st != nil {
			return st
		}
		report.Fatal(nil, "emit", "struct type %q was never declared before use", v.Name)
		return nil
	case *typing.Function:
		params := util.Map(v.Params, ctx.LowerType)
		return types.NewFunc(ctx.LowerType(v.Return), params...)
	case typing.Null:
		// Null never survives to emission as a bare value type: every null
		// literal is either cast or typed against a concrete branch before
		// lowering. A generic opaque pointer is a reasonable fallback should
		// one slip through untyped.
		return types.NewPointer(types.I8)
	}

	report.Fatal(nil, "emit", "unhandled type in lowering: %s", t.String())
	return nil
}

func lowerNumberType(n typing.Number) types.Type {
	if n.Bits == 1 {
		return types.I1
	}
	if n.Floating {
		if n.Bits == 32 {
			return types.Float
		}
		return types.Double
	}
	switch n.Bits {
	case 8:
		return types.I8
	case 32:
		return types.I32
	case 64:
		return types.I64
	}
	report.Fatal(nil, "emit", "unsupported integer width: %d", n.Bits)
	return nil
}
