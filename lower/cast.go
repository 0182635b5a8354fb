package lower

import (
	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/enum"
	"github.com/llir/llvm/ir/types"
	irvalue "github.com/llir/llvm/ir/value"

	"emberc/report"
	"emberc/typing"
	"emberc/value"
)

// Cast emits the instructions implementing an Ember `as` cast of src to
// dest, grounded on generate.Generator.genCast's per-pair dispatch. It is
// wrapped in a closure and injected into value.CastOf as a value.CastFunc,
// so that package value never imports package lower.
func (ctx *Context) Cast(block *ir.Block, src value.Value, dest typing.Type) irvalue.Value {
	srcType := src.Type()
	if typing.Equals(srcType, dest) {
		return src.Emit(block)
	}

	switch s := srcType.(type) {
	case typing.Number:
		if d, ok := dest.(typing.Number); ok {
			return ctx.castNumToNum(block, src.Emit(block), s, d)
		}
		if _, ok := dest.(typing.Pointer); ok {
			return block.NewIntToPtr(src.Emit(block), ctx.LowerType(dest))
		}

	case typing.Pointer:
		switch dest.(type) {
		case typing.Pointer:
			return block.NewBitCast(src.Emit(block), ctx.LowerType(dest))
		case typing.Number:
			return block.NewPtrToInt(src.Emit(block), ctx.LowerType(dest))
		}

	case typing.Array:
		if p, ok := dest.(typing.Pointer); ok {
			return ctx.castArrayDecay(block, src, p)
		}

	case typing.Tuple:
		if _, ok := dest.(typing.Array); ok {
			return ctx.castTupleToArray(block, src, dest)
		}

	case typing.Null:
		switch dest.(type) {
		case typing.Pointer:
			return constant.NewNull(ctx.LowerType(dest).(*types.PointerType))
		case typing.Number:
			return castNullToNumber(dest.(typing.Number))
		}
	}

	report.Fatal(nil, "emit", "no cast implemented from %s to %s", srcType.String(), dest.String())
	return nil
}

// castNumToNum implements every Number->Number conversion: a 1-bit
// destination is always produced by comparing the source against zero
// (float uses an ordered not-equal, integer an integer not-equal) rather
// than truncating, since a truncating narrow would turn any even source
// value into `false`; otherwise it's float widening/narrowing, int<->float
// via signedness, and int widening (sign- or zero-extend) / narrowing
// (truncate). A same-width int<->int cast (signed<->unsigned
// reinterpretation) is a bit-pattern no-op.
func (ctx *Context) castNumToNum(block *ir.Block, v irvalue.Value, s, d typing.Number) irvalue.Value {
	if d.Bits == 1 {
		if s.Floating {
			zero := constant.NewFloat(lowerNumberType(s).(*types.FloatType), 0)
			return block.NewFCmp(enum.FPredONE, v, zero)
		}
		zero := constant.NewInt(lowerNumberType(s).(*types.IntType), 0)
		return block.NewICmp(enum.IPredNE, v, zero)
	}

	dt := lowerNumberType(d)

	switch {
	case s.Floating && d.Floating:
		if d.Bits > s.Bits {
			return block.NewFPExt(v, dt)
		}
		return block.NewFPTrunc(v, dt)
	case s.Floating && !d.Floating:
		if d.Signed {
			return block.NewFPToSI(v, dt)
		}
		return block.NewFPToUI(v, dt)
	case !s.Floating && d.Floating:
		if s.Signed {
			return block.NewSIToFP(v, dt)
		}
		return block.NewUIToFP(v, dt)
	default:
		switch {
		case d.Bits > s.Bits:
			if s.Signed {
				return block.NewSExt(v, dt)
			}
			return block.NewZExt(v, dt)
		case d.Bits < s.Bits:
			return block.NewTrunc(v, dt)
		default:
			return v
		}
	}
}

func castNullToNumber(d typing.Number) irvalue.Value {
	lt := lowerNumberType(d)
	if d.Floating {
		return constant.NewFloat(lt.(*types.FloatType), 0)
	}
	return constant.NewInt(lt.(*types.IntType), 0)
}

// castArrayDecay implements the Array->Pointer decay: a pointer to the
// array's first element, obtained via a zero/zero GEP off the array's own
// storage address. This requires the array value to be addressable.
func (ctx *Context) castArrayDecay(block *ir.Block, src value.Value, dest typing.Pointer) irvalue.Value {
	if !src.Addressable() {
		report.Fatal(nil, "emit", "array-to-pointer decay requires an addressable array value")
	}
	arrPtr := src.Pointer(block)
	arrType := ctx.LowerType(src.Type())
	zero := constant.NewInt(types.I32, 0)
	return block.NewGetElementPtr(arrType, arrPtr, zero, zero)
}

// castTupleToArray implements the Tuple->Array reinterpretation. When the
// tuple is addressable, a homogeneous tuple and an array of its element
// type share byte layout, so the cast bitcasts the tuple's storage pointer
// to an array pointer and loads through it. Otherwise there is no storage
// to reinterpret, so the array is rebuilt element by element.
func (ctx *Context) castTupleToArray(block *ir.Block, src value.Value, dest typing.Type) irvalue.Value {
	if !src.Addressable() {
		return ctx.castTupleToArrayByValue(block, src, dest)
	}
	tupPtr := src.Pointer(block)
	arrLLType := ctx.LowerType(dest)
	casted := block.NewBitCast(tupPtr, types.NewPointer(arrLLType))
	return block.NewLoad(arrLLType, casted)
}

// castTupleToArrayByValue implements the non-addressable Tuple->Array
// fallback: each tuple element is pulled out with extractvalue and written
// into a fresh array with insertvalue, matching original_source's
// gen_tuple_cast non-addressable path.
func (ctx *Context) castTupleToArrayByValue(block *ir.Block, src value.Value, dest typing.Type) irvalue.Value {
	arrLLType := ctx.LowerType(dest).(*types.ArrayType)
	tup := src.Emit(block)

	result := irvalue.Value(constant.NewUndef(arrLLType))
	for i := uint64(0); i < arrLLType.Len; i++ {
		elem := block.NewExtractValue(tup, i)
		result = block.NewInsertValue(result, elem, i)
	}
	return result
}
