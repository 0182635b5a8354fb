package lower

import (
	"emberc/ast"
	"emberc/report"
	"emberc/value"
)

// EmitExpr is the central dispatch point for lowering any ast.Expr into a
// value.Value. ast.Expr carries no Emit method of its own, by design (see
// the package doc comment), so every concrete node type is matched here.
func (ctx *Context) EmitExpr(e ast.Expr) value.Value {
	switch v := e.(type) {
	case *ast.NumberLit:
		return ctx.emitNumberLit(v)
	case *ast.BoolLit:
		return ctx.emitBoolLit(v)
	case *ast.CharLit:
		return ctx.emitCharLit(v)
	case *ast.StringLit:
		return ctx.emitStringLit(v)
	case *ast.NullLit:
		return ctx.emitNullLit(v)
	case *ast.VariableExpr:
		return ctx.emitVariableExpr(v)
	case *ast.LetExpr:
		return ctx.emitLetExpr(v)
	case *ast.CastExpr:
		return ctx.emitCastExpr(v)
	case *ast.BinaryExpr:
		return ctx.emitBinaryExpr(v)
	case *ast.UnaryExpr:
		return ctx.emitUnaryExpr(v)
	case *ast.CallExpr:
		return ctx.emitCallExpr(v)
	case *ast.IndexExpr:
		return ctx.emitIndexExpr(v)
	case *ast.PropAccessExpr:
		return ctx.emitPropAccessExpr(v)
	case *ast.MethodCallExpr:
		return ctx.emitMethodCallExpr(v)
	case *ast.NewExpr:
		return ctx.emitNewExpr(v)
	case *ast.BlockExpr:
		return ctx.emitBlockExpr(v)
	case *ast.IfExpr:
		return ctx.emitIfExpr(v)
	case *ast.WhileExpr:
		return ctx.emitWhileExpr(v)
	}

	report.Fatal(e.Position(), "emit", "unhandled expression node in lowering")
	return nil
}
