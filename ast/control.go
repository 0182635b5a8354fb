package ast

import (
	"emberc/report"
	"emberc/typing"
)

// BlockExpr is a brace-delimited sequence of expressions; its type is that
// of its final expression. A block must contain at least one expression.
type BlockExpr struct {
	ExprBase
	Exprs []Expr
}

func NewBlockExpr(pos *report.Position, exprs []Expr) *BlockExpr {
	if len(exprs) == 0 {
		report.Fatal(pos, "type", "a block cannot be empty")
	}
	last := exprs[len(exprs)-1]
	return &BlockExpr{ExprBase: ExprBase{pos: pos, typ: last.Type()}, Exprs: exprs}
}

// -----------------------------------------------------------------------------

// IfExpr is an if/else expression. When no else branch is written, one is
// synthesized as a null literal typed to match the then branch, so the
// merge check below always has two same-typed branches to compare.
type IfExpr struct {
	ExprBase
	Cond Expr
	Then Expr
	Else Expr
}

func NewIfExpr(pos *report.Position, cond, then, els Expr) *IfExpr {
	if els == nil {
		els = NewTypedNullLit(pos, then.Type())
	}
	if !typing.Equals(then.Type(), els.Type()) {
		report.Fatal(pos, "type", "if branches have mismatched types: %s vs %s", then.Type().String(), els.Type().String())
	}
	return &IfExpr{ExprBase: ExprBase{pos: pos, typ: then.Type()}, Cond: cond, Then: then, Else: els}
}

// -----------------------------------------------------------------------------

// WhileExpr is a while/else expression, mirroring IfExpr's shape: the else
// branch runs when the condition is false on the very first test, and its
// type must match the body's.
type WhileExpr struct {
	ExprBase
	Cond Expr
	Body Expr
	Else Expr
}

func NewWhileExpr(pos *report.Position, cond, body, els Expr) *WhileExpr {
	if els == nil {
		els = NewTypedNullLit(pos, body.Type())
	}
	if !typing.Equals(body.Type(), els.Type()) {
		report.Fatal(pos, "type", "while body/else have mismatched types: %s vs %s", body.Type().String(), els.Type().String())
	}
	return &WhileExpr{ExprBase: ExprBase{pos: pos, typ: body.Type()}, Cond: cond, Body: body, Else: els}
}
