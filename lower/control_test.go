package lower

import (
	"testing"

	"github.com/llir/llvm/ir"

	"emberc/ast"
	"emberc/typing"
)

func TestEmitIfExprWithExplicitElseProducesPhi(t *testing.T) {
	ctx, _ := newTestFunc(typing.I32, nil)

	cond := ast.NewBoolLit(pos(), true)
	then := ast.NewNumberLit(pos(), "1", 10, 'i', false)
	els := ast.NewNumberLit(pos(), "2", 10, 'i', false)
	ifExpr := ast.NewIfExpr(pos(), cond, then, els)

	v := ctx.EmitExpr(ifExpr)
	if !typing.Equals(v.Type(), typing.I32) {
		t.Fatalf("expected i32 result, got %s", v.Type())
	}
	if _, ok := v.Emit(ctx.Block).(*ir.InstPhi); !ok {
		t.Errorf("expected the if's merged value to be a phi, got %T", v.Emit(ctx.Block))
	}
}

func TestEmitIfExprSynthesizedElseStillTypeChecks(t *testing.T) {
	ctx, _ := newTestFunc(typing.I32, nil)

	cond := ast.NewBoolLit(pos(), false)
	then := ast.NewNumberLit(pos(), "1", 10, 'i', false)
	ifExpr := ast.NewIfExpr(pos(), cond, then, nil)

	v := ctx.EmitExpr(ifExpr)
	if !typing.Equals(v.Type(), typing.I32) {
		t.Fatalf("expected the synthesized else to preserve i32, got %s", v.Type())
	}
}

func TestEmitWhileExprBuildsRotatedLoop(t *testing.T) {
	ctx, fn := newTestFunc(typing.I32, nil)

	cond := ast.NewBoolLit(pos(), true)
	body := ast.NewNumberLit(pos(), "1", 10, 'i', false)
	els := ast.NewNumberLit(pos(), "0", 10, 'i', false)
	whileExpr := ast.NewWhileExpr(pos(), cond, body, els)

	v := ctx.EmitExpr(whileExpr)
	if !typing.Equals(v.Type(), typing.I32) {
		t.Fatalf("expected i32 result, got %s", v.Type())
	}

	// Loop rotation produces exactly four blocks: entry, while.body,
	// while.else, while.merge.
	if len(fn.Blocks) != 4 {
		t.Fatalf("expected 4 blocks from loop rotation, got %d", len(fn.Blocks))
	}
}
