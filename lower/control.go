package lower

import (
	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/enum"
	"github.com/llir/llvm/ir/types"
	irvalue "github.com/llir/llvm/ir/value"

	"emberc/ast"
	"emberc/typing"
	"emberc/value"
)

// emitCondition lowers a branch condition to an i1, grounded on
// generate.Generator.genCondition: a floating condition is compared
// against zero (ordered not-equal) first, since if/while conditions are
// not constrained to bool at construction time and a raw float value is
// not valid as a CondBr operand.
func (ctx *Context) emitCondition(block *ir.Block, cond value.Value) irvalue.Value {
	if n, ok := cond.Type().(typing.Number); ok && n.Floating {
		zero := constant.NewFloat(lowerNumberType(n).(*types.FloatType), 0)
		return block.NewFCmp(enum.FPredONE, cond.Emit(block), zero)
	}
	return cond.Emit(block)
}

func (ctx *Context) emitBlockExpr(b *ast.BlockExpr) value.Value {
	ctx.PushScope()
	defer ctx.PopScope()

	var result value.Value
	for _, e := range b.Exprs {
		result = ctx.EmitExpr(e)
	}
	return result
}

// emitIfExpr lowers to the classic four-block shape (cond/then/else/merge)
// with a phi joining the two branch values, grounded on
// generate.Generator.genIfExpr. Every if carries a real else (synthesized
// by ast.NewIfExpr when none was written), so the phi always has exactly
// two incoming edges.
func (ctx *Context) emitIfExpr(i *ast.IfExpr) value.Value {
	cond := ctx.emitCondition(ctx.Block, ctx.EmitExpr(i.Cond))

	thenBlock := ctx.NewBlock("if.then")
	elseBlock := ctx.NewBlock("if.else")
	mergeBlock := ctx.NewBlock("if.merge")

	ctx.Block.NewCondBr(cond, thenBlock, elseBlock)

	ctx.Block = thenBlock
	ctx.PushScope()
	thenResult := ctx.EmitExpr(i.Then).Emit(ctx.Block)
	ctx.PopScope()
	thenEnd := ctx.Block
	thenEnd.NewBr(mergeBlock)

	ctx.Block = elseBlock
	ctx.PushScope()
	elseResult := ctx.EmitExpr(i.Else).Emit(ctx.Block)
	ctx.PopScope()
	elseEnd := ctx.Block
	elseEnd.NewBr(mergeBlock)

	ctx.Block = mergeBlock
	phi := mergeBlock.NewPhi(
		ir.NewIncoming(thenResult, thenEnd),
		ir.NewIncoming(elseResult, elseEnd),
	)
	return value.NewConst(i.Type(), phi)
}

// emitWhileExpr lowers a while/else loop using loop rotation: the
// condition is tested once up front to choose between entering the loop
// body and running the else branch (the true zero-iteration case), and
// again at the end of each body iteration to choose between looping back
// and falling through to the merge with the body's last value. This keeps
// "ran zero times" and "ran at least once" as genuinely distinct
// predecessors of the merge block's phi, rather than reusing a single
// header block's false edge for both.
func (ctx *Context) emitWhileExpr(w *ast.WhileExpr) value.Value {
	preheader := ctx.Block
	bodyBlock := ctx.NewBlock("while.body")
	elseBlock := ctx.NewBlock("while.else")
	mergeBlock := ctx.NewBlock("while.merge")

	cond0 := ctx.emitCondition(preheader, ctx.EmitExpr(w.Cond))
	preheader.NewCondBr(cond0, bodyBlock, elseBlock)

	ctx.Block = elseBlock
	ctx.PushScope()
	elseResult := ctx.EmitExpr(w.Else).Emit(ctx.Block)
	ctx.PopScope()
	elseEnd := ctx.Block
	elseEnd.NewBr(mergeBlock)

	ctx.Block = bodyBlock
	ctx.PushScope()
	bodyResult := ctx.EmitExpr(w.Body).Emit(ctx.Block)
	condN := ctx.emitCondition(ctx.Block, ctx.EmitExpr(w.Cond))
	ctx.PopScope()
	bodyEnd := ctx.Block
	bodyEnd.NewCondBr(condN, bodyBlock, mergeBlock)

	ctx.Block = mergeBlock
	phi := mergeBlock.NewPhi(
		ir.NewIncoming(elseResult, elseEnd),
		ir.NewIncoming(bodyResult, bodyEnd),
	)
	return value.NewConst(w.Type(), phi)
}
