package lower

import (
	"strconv"

	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/types"

	"emberc/ast"
	"emberc/report"
	"emberc/typing"
	"emberc/value"
)

// emitNumberLit parses the literal's raw digits against its already-computed
// type, grounded on generate.Generator.genIntLit/genFloatLit. The digits
// string carries its own base prefix (0x/0b/0o) when present, so base 0 is
// passed to strconv to let it auto-detect rather than trusting NumberLit.Base.
func (ctx *Context) emitNumberLit(n *ast.NumberLit) value.Value {
	t := n.Type().(typing.Number)
	llType := lowerNumberType(t)

	if t.Floating {
		bits := 64
		if t.Bits == 32 {
			bits = 32
		}
		f, err := strconv.ParseFloat(n.Digits, bits)
		if err != nil {
			report.Fatal(n.Position(), "emit", "invalid float literal %q", n.Digits)
		}
		return value.NewConst(t, constant.NewFloat(llType.(*types.FloatType), f))
	}

	x, err := strconv.ParseUint(n.Digits, 0, t.Bits)
	if err != nil {
		report.Fatal(n.Position(), "emit", "invalid integer literal %q", n.Digits)
	}
	return value.NewConst(t, constant.NewInt(llType.(*types.IntType), int64(x)))
}

func (ctx *Context) emitBoolLit(b *ast.BoolLit) value.Value {
	return value.NewConst(typing.Bool, constant.NewBool(b.Value))
}

func (ctx *Context) emitCharLit(c *ast.CharLit) value.Value {
	return value.NewConst(typing.U8, constant.NewInt(types.I8, int64(c.Value)))
}

// emitStringLit backs a string literal with an anonymous, immutable global
// holding its bytes plus a null terminator, then returns a value shaped by
// the literal's kind suffix: 'c' decays straight to a byte pointer, 'p'
// returns the array's address, and the unsuffixed default returns the array
// value itself (addressable, backed by the same global).
func (ctx *Context) emitStringLit(s *ast.StringLit) value.Value {
	bytes := append([]byte(s.Value), 0)
	arrType := types.NewArray(uint64(len(bytes)), types.I8)

	elems := make([]constant.Constant, len(bytes))
	for i, b := range bytes {
		elems[i] = constant.NewInt(types.I8, int64(b))
	}
	init := constant.NewArray(arrType, elems...)

	glob := ctx.Module.NewGlobalDef(ctx.nextGlobalName("str"), init)
	glob.Immutable = true

	switch s.Kind {
	case 'c':
		zero := constant.NewInt(types.I32, 0)
		ptr := constant.NewGetElementPtr(arrType, glob, zero, zero)
		return value.NewConst(s.Type(), ptr)
	case 'p':
		return value.NewConst(s.Type(), glob)
	default:
		return value.NewConstWithAddress(s.Type(), init, glob)
	}
}

// emitNullLit materializes a null literal against whatever concrete type it
// was given at construction (either Null itself, or a type synthesized by an
// else-less if/while). A bare Null reaching here untyped falls back to a
// generic null pointer.
func (ctx *Context) emitNullLit(n *ast.NullLit) value.Value {
	switch t := n.Type().(type) {
	case typing.Pointer:
		return value.NewConst(t, constant.NewNull(ctx.LowerType(t).(*types.PointerType)))
	case typing.Number:
		return value.NewConst(t, castNullToNumber(t))
	default:
		return value.NewConst(t, constant.NewNull(types.NewPointer(types.I8)))
	}
}
