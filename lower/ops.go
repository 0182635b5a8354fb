package lower

import (
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/enum"
	"github.com/llir/llvm/ir/types"
	irvalue "github.com/llir/llvm/ir/value"

	"emberc/ast"
	"emberc/report"
	"emberc/token"
	"emberc/typing"
	"emberc/value"
)

// isAssignToken and isComparisonToken duplicate ast's own classification of
// the same operator set. They cannot be shared directly: ast's versions
// classify at construction time to pick a result type, while lower's
// classify at emission time to pick an instruction, and the two packages
// are deliberately kept from depending on each other's internals.
func isAssignToken(op token.Kind) bool {
	switch op {
	case token.ASSIGN, token.PLUS_EQ, token.MINUS_EQ, token.STAR_EQ, token.SLASH_EQ,
		token.PERCENT_EQ, token.AMP_EQ, token.PIPE_EQ:
		return true
	}
	return false
}

func isComparisonToken(op token.Kind) bool {
	switch op {
	case token.LT, token.GT, token.LE, token.GE, token.EQ, token.NEQ:
		return true
	}
	return false
}

func compoundBaseOp(op token.Kind) token.Kind {
	switch op {
	case token.PLUS_EQ:
		return token.PLUS
	case token.MINUS_EQ:
		return token.MINUS
	case token.STAR_EQ:
		return token.STAR
	case token.SLASH_EQ:
		return token.SLASH
	case token.PERCENT_EQ:
		return token.PERCENT
	case token.AMP_EQ:
		return token.AMP
	case token.PIPE_EQ:
		return token.PIPE
	}
	return op
}

func widerNumber(a, b typing.Number) typing.Number {
	if a.Bits == b.Bits {
		if a.Floating != b.Floating {
			if a.Floating {
				return a
			}
			return b
		}
		return a
	}
	if a.Bits > b.Bits {
		return a
	}
	return b
}

func (ctx *Context) emitCastExpr(c *ast.CastExpr) value.Value {
	src := ctx.EmitExpr(c.Src)
	return value.NewCastOf(src, c.Type(), ctx.Cast)
}

// emitBinaryExpr dispatches every binary operator, grounded on
// generate.Generator.genBinaryOp/genAssign: plain and compound assignment
// store through the LHS's address; comparisons always produce bool;
// everything else resolves to either a Number<->Number op (gen_num_num_
// binop's float-vs-int/signed-vs-unsigned split, enforced here rather than
// at construction) or a Pointer<->Number op (pointer arithmetic via GEP).
func (ctx *Context) emitBinaryExpr(b *ast.BinaryExpr) value.Value {
	if isAssignToken(b.Op) {
		return ctx.emitAssign(b)
	}

	lhs := ctx.EmitExpr(b.Lhs)
	rhs := ctx.EmitExpr(b.Rhs)

	if isComparisonToken(b.Op) {
		return ctx.emitComparison(b.Position(), b.Op, lhs, rhs)
	}
	return ctx.emitNumOrPtrBinOp(b.Position(), b.Op, lhs, rhs, b.Type())
}

func (ctx *Context) emitAssign(b *ast.BinaryExpr) value.Value {
	lhsVal := ctx.EmitExpr(b.Lhs)
	if !lhsVal.Addressable() {
		report.Fatal(b.Position(), "emit", "left-hand side of assignment is not addressable")
	}
	ptr := lhsVal.Pointer(ctx.Block)

	rhsVal := ctx.EmitExpr(b.Rhs)
	if b.Op != token.ASSIGN {
		loaded := value.NewLoadThroughPointer(b.Lhs.Type(), ptr)
		rhsVal = ctx.emitNumOrPtrBinOp(b.Position(), compoundBaseOp(b.Op), loaded, rhsVal, b.Lhs.Type())
	}

	ctx.Block.NewStore(rhsVal.Emit(ctx.Block), ptr)
	return value.NewLoadThroughPointer(b.Lhs.Type(), ptr)
}

func (ctx *Context) emitNumOrPtrBinOp(pos *report.Position, op token.Kind, lhs, rhs value.Value, resultType typing.Type) value.Value {
	lhsN, lhsIsNum := lhs.Type().(typing.Number)
	rhsN, rhsIsNum := rhs.Type().(typing.Number)

	if lhsIsNum && rhsIsNum {
		return ctx.emitNumNumOp(pos, op, lhs, rhs, lhsN, rhsN, resultType)
	}
	if lhsIsNum {
		return ctx.emitPointerOffset(pos, op, rhs, lhs)
	}
	return ctx.emitPointerOffset(pos, op, lhs, rhs)
}

func (ctx *Context) widenTo(v value.Value, from, to typing.Number) irvalue.Value {
	if from == to {
		return v.Emit(ctx.Block)
	}
	return ctx.castNumToNum(ctx.Block, v.Emit(ctx.Block), from, to)
}

func (ctx *Context) emitNumNumOp(pos *report.Position, op token.Kind, lhs, rhs value.Value, lhsN, rhsN typing.Number, resultType typing.Type) value.Value {
	target := resultType.(typing.Number)
	if lhsN.Floating != rhsN.Floating {
		report.Fatal(pos, "emit", "cannot mix float and integer operands in a binary operator")
	}

	lv := ctx.widenTo(lhs, lhsN, target)
	rv := ctx.widenTo(rhs, rhsN, target)

	var result irvalue.Value
	if target.Floating {
		result = ctx.emitFloatOp(pos, op, lv, rv)
	} else {
		result = ctx.emitIntOp(pos, op, lv, rv, lhsN.Signed && rhsN.Signed)
	}
	return value.NewConst(target, result)
}

func (ctx *Context) emitFloatOp(pos *report.Position, op token.Kind, l, r irvalue.Value) irvalue.Value {
	switch op {
	case token.PLUS:
		return ctx.Block.NewFAdd(l, r)
	case token.MINUS:
		return ctx.Block.NewFSub(l, r)
	case token.STAR:
		return ctx.Block.NewFMul(l, r)
	case token.SLASH:
		return ctx.Block.NewFDiv(l, r)
	case token.PERCENT:
		return ctx.Block.NewFRem(l, r)
	}
	report.Fatal(pos, "emit", "operator not valid on float operands")
	return nil
}

func (ctx *Context) emitIntOp(pos *report.Position, op token.Kind, l, r irvalue.Value, signed bool) irvalue.Value {
	switch op {
	case token.PLUS:
		return ctx.Block.NewAdd(l, r)
	case token.MINUS:
		return ctx.Block.NewSub(l, r)
	case token.STAR:
		return ctx.Block.NewMul(l, r)
	case token.SLASH:
		if signed {
			return ctx.Block.NewSDiv(l, r)
		}
		return ctx.Block.NewUDiv(l, r)
	case token.PERCENT:
		if signed {
			return ctx.Block.NewSRem(l, r)
		}
		return ctx.Block.NewURem(l, r)
	case token.AMP, token.AND:
		return ctx.Block.NewAnd(l, r)
	case token.PIPE, token.OR:
		return ctx.Block.NewOr(l, r)
	case token.CARET:
		return ctx.Block.NewXor(l, r)
	case token.SHL:
		return ctx.Block.NewShl(l, r)
	case token.SHR:
		if signed {
			return ctx.Block.NewAShr(l, r)
		}
		return ctx.Block.NewLShr(l, r)
	}
	report.Fatal(pos, "emit", "operator not valid on integer operands")
	return nil
}

func (ctx *Context) emitComparison(pos *report.Position, op token.Kind, lhs, rhs value.Value) value.Value {
	lhsN, lhsOk := lhs.Type().(typing.Number)
	rhsN, rhsOk := rhs.Type().(typing.Number)

	var result irvalue.Value
	if lhsOk && rhsOk {
		if lhsN.Floating != rhsN.Floating {
			report.Fatal(pos, "emit", "cannot mix float and integer operands in a comparison")
		}
		target := widerNumber(lhsN, rhsN)
		lv := ctx.widenTo(lhs, lhsN, target)
		rv := ctx.widenTo(rhs, rhsN, target)
		if target.Floating {
			result = ctx.Block.NewFCmp(floatPred(op), lv, rv)
		} else {
			result = ctx.Block.NewICmp(intPred(op, lhsN.Signed && rhsN.Signed), lv, rv)
		}
	} else {
		// Pointer/pointer or pointer/null comparison: icmp works directly on
		// pointer operands in LLVM IR, no bitcast needed.
		result = ctx.Block.NewICmp(intPred(op, false), lhs.Emit(ctx.Block), rhs.Emit(ctx.Block))
	}
	return value.NewConst(typing.Bool, result)
}

func floatPred(op token.Kind) enum.FPred {
	switch op {
	case token.LT:
		return enum.FPredOLT
	case token.GT:
		return enum.FPredOGT
	case token.LE:
		return enum.FPredOLE
	case token.GE:
		return enum.FPredOGE
	case token.EQ:
		return enum.FPredOEQ
	case token.NEQ:
		return enum.FPredONE
	}
	return enum.FPredOEQ
}

func intPred(op token.Kind, signed bool) enum.IPred {
	switch op {
	case token.EQ:
		return enum.IPredEQ
	case token.NEQ:
		return enum.IPredNE
	case token.LT:
		if signed {
			return enum.IPredSLT
		}
		return enum.IPredULT
	case token.GT:
		if signed {
			return enum.IPredSGT
		}
		return enum.IPredUGT
	case token.LE:
		if signed {
			return enum.IPredSLE
		}
		return enum.IPredULE
	case token.GE:
		if signed {
			return enum.IPredSGE
		}
		return enum.IPredUGE
	}
	return enum.IPredEQ
}

// emitPointerOffset implements pointer + number and pointer - number via a
// single-index GetElementPtr, matching generate.Generator's pointer
// arithmetic lowering. The pointer operand may appear on either side of the
// operator; ptrVal/numVal are already sorted into that order by the caller.
func (ctx *Context) emitPointerOffset(pos *report.Position, op token.Kind, ptrVal, numVal value.Value) value.Value {
	p, ok := ptrVal.Type().(typing.Pointer)
	if !ok {
		report.Fatal(pos, "emit", "pointer arithmetic requires a pointer operand")
	}

	idx := numVal.Emit(ctx.Block)
	switch op {
	case token.PLUS:
	case token.MINUS:
		idx = ctx.Block.NewSub(constant.NewInt(idx.Type().(*types.IntType), 0), idx)
	default:
		report.Fatal(pos, "emit", "operator not valid between a pointer and a number")
	}

	elemType := ctx.LowerType(p.Elem)
	result := ctx.Block.NewGetElementPtr(elemType, ptrVal.Emit(ctx.Block), idx)
	return value.NewConst(p, result)
}

// emitUnaryExpr dispatches every prefix operator, grounded on
// generate.Generator.genUnaryOp: & takes the operand's storage address, *
// loads through a pointer operand, - negates (fneg for float, 0-x for int),
// ! complements a bool via xor with true, and ~ complements an integer's
// bits via xor with all-ones.
func (ctx *Context) emitUnaryExpr(u *ast.UnaryExpr) value.Value {
	switch u.Op {
	case token.AMP:
		operand := ctx.EmitExpr(u.Operand)
		if !operand.Addressable() {
			report.Fatal(u.Position(), "emit", "cannot take the address of a non-addressable value")
		}
		return value.NewConst(u.Type(), operand.Pointer(ctx.Block))

	case token.STAR:
		operand := ctx.EmitExpr(u.Operand)
		p := operand.Type().(typing.Pointer)
		return value.NewLoadThroughPointer(p.Elem, operand.Emit(ctx.Block))

	case token.MINUS:
		operand := ctx.EmitExpr(u.Operand)
		n := u.Type().(typing.Number)
		var result irvalue.Value
		if n.Floating {
			result = ctx.Block.NewFNeg(operand.Emit(ctx.Block))
		} else {
			zero := constant.NewInt(lowerNumberType(n).(*types.IntType), 0)
			result = ctx.Block.NewSub(zero, operand.Emit(ctx.Block))
		}
		return value.NewConst(n, result)

	case token.BANG:
		operand := ctx.EmitExpr(u.Operand)
		result := ctx.Block.NewXor(operand.Emit(ctx.Block), constant.NewBool(true))
		return value.NewConst(typing.Bool, result)

	case token.TILDE:
		operand := ctx.EmitExpr(u.Operand)
		n := u.Type().(typing.Number)
		allOnes := constant.NewInt(lowerNumberType(n).(*types.IntType), -1)
		result := ctx.Block.NewXor(operand.Emit(ctx.Block), allOnes)
		return value.NewConst(n, result)
	}

	report.Fatal(u.Position(), "emit", "unsupported unary operator")
	return nil
}
