package value

import (
	"testing"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/types"
	irvalue "github.com/llir/llvm/ir/value"

	"emberc/typing"
)

func newTestBlock() (*ir.Module, *ir.Block) {
	m := ir.NewModule()
	f := m.NewFunc("f", types.Void)
	b := f.NewBlock("")
	return m, b
}

func TestConstNotAddressable(t *testing.T) {
	c := NewConst(typing.I32, constant.NewInt(types.I32, 4))
	if c.Addressable() {
		t.Error("Const must not be addressable")
	}
	if !typing.Equals(c.Type(), typing.I32) {
		t.Error("Const.Type() must return the type it was built with")
	}
}

func TestConstWithAddressAddressable(t *testing.T) {
	_, b := newTestBlock()
	ptr := b.NewAlloca(types.I32)
	v := NewConstWithAddress(typing.I32, constant.NewInt(types.I32, 1), ptr)

	if !v.Addressable() {
		t.Error("ConstWithAddress must be addressable")
	}
	if v.Pointer(b) != ptr {
		t.Error("Pointer must return the stored pointer")
	}
}

func TestLoadThroughPointerEmitsLoad(t *testing.T) {
	_, b := newTestBlock()
	ptr := b.NewAlloca(types.I32)
	l := NewLoadThroughPointer(typing.I32, ptr)

	if !l.Addressable() {
		t.Error("LoadThroughPointer must be addressable")
	}
	if l.Pointer(b) != ptr {
		t.Error("Pointer must return the underlying storage pointer")
	}

	loaded := l.Emit(b)
	if _, ok := loaded.(*ir.InstLoad); !ok {
		t.Errorf("expected Emit to build a load instruction, got %T", loaded)
	}
}

func TestCastOfIsLazy(t *testing.T) {
	_, b := newTestBlock()
	src := NewConst(typing.I32, constant.NewInt(types.I32, 2))

	called := false
	cast := NewCastOf(src, typing.F64, func(block *ir.Block, s Value, dest typing.Type) irvalue.Value {
		called = true
		return constant.NewFloat(types.Double, 2)
	})

	if called {
		t.Error("constructing CastOf must not invoke the cast function")
	}
	if cast.Addressable() {
		t.Error("CastOf must not be addressable")
	}

	cast.Emit(b)
	if !called {
		t.Error("Emit must invoke the injected cast function")
	}
}

func TestNamedDelegatesAddressability(t *testing.T) {
	_, b := newTestBlock()
	ptr := b.NewAlloca(types.I32)
	inner := NewConstWithAddress(typing.I32, constant.NewInt(types.I32, 1), ptr)
	named := NewNamed(inner, "x")

	if !named.Addressable() {
		t.Error("Named must delegate Addressable to its inner value")
	}
	if named.Pointer(b) != ptr {
		t.Error("Named must delegate Pointer to its inner value")
	}
}
