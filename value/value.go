// Package value implements the value abstraction that sits between typed
// AST nodes and the SSA builder: every emitted expression produces a
// Value, which knows its type and how to materialize both its SSA value
// and, when addressable, a pointer to its storage.
package value

import (
	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/types"
	irvalue "github.com/llir/llvm/ir/value"

	"emberc/report"
	"emberc/typing"
)

// Value is the parent interface of every emitted expression result.
// Every variant in this file implements it.
type Value interface {
	// Type returns the Ember type of the value.
	Type() typing.Type

	// Emit returns the SSA value usable directly as an operand. For a
	// variant backed by storage (LoadThroughPointer), this emits a fresh
	// load against the given block on every call.
	Emit(block *ir.Block) irvalue.Value

	// Addressable reports whether Pointer may be called.
	Addressable() bool

	// Pointer returns the SSA pointer to this value's storage. It is only
	// valid to call when Addressable reports true; otherwise it is fatal,
	// matching original_source's Value::gen_ptr() error path.
	Pointer(block *ir.Block) irvalue.Value
}

// CastFunc emits the SSA instructions implementing a cast of src to dest
// within block, returning the resulting SSA value. It is supplied by
// package lower and injected into CastOf rather than imported directly,
// which keeps value from depending on lower and avoids an import cycle.
type CastFunc func(block *ir.Block, src Value, dest typing.Type) irvalue.Value

// -----------------------------------------------------------------------------

// Const is a plain SSA value with no associated storage: a literal, the
// result of an arithmetic op, or anything else with no address.
type Const struct {
	T typing.Type
	V irvalue.Value
}

// NewConst builds a Const value of type t wrapping the SSA value v.
func NewConst(t typing.Type, v irvalue.Value) Const {
	return Const{T: t, V: v}
}

func (c Const) Type() typing.Type            { return c.T }
func (c Const) Emit(*ir.Block) irvalue.Value { return c.V }
func (c Const) Addressable() bool            { return false }
func (c Const) Pointer(*ir.Block) irvalue.Value {
	report.Fatal(nil, "emit", "cannot take the address of a non-addressable value")
	return nil
}

// -----------------------------------------------------------------------------

// ConstWithAddress is an SSA value that additionally carries a pointer to
// its own storage, e.g. a default-kind string literal's array value
// together with the global holding its bytes.
type ConstWithAddress struct {
	T   typing.Type
	V   irvalue.Value
	Ptr irvalue.Value
}

func NewConstWithAddress(t typing.Type, v, ptr irvalue.Value) ConstWithAddress {
	return ConstWithAddress{T: t, V: v, Ptr: ptr}
}

func (c ConstWithAddress) Type() typing.Type           { return c.T }
func (c ConstWithAddress) Emit(*ir.Block) irvalue.Value { return c.V }
func (c ConstWithAddress) Addressable() bool            { return true }
func (c ConstWithAddress) Pointer(*ir.Block) irvalue.Value {
	return c.Ptr
}

// -----------------------------------------------------------------------------

// LoadThroughPointer represents a value that lives in addressable storage
// and must be loaded to be used as an operand. The load is emitted lazily,
// on the block it is actually needed in, matching original_source's
// BasicLoadValue.
type LoadThroughPointer struct {
	T   typing.Type
	Ptr irvalue.Value
}

func NewLoadThroughPointer(t typing.Type, ptr irvalue.Value) LoadThroughPointer {
	return LoadThroughPointer{T: t, Ptr: ptr}
}

func (l LoadThroughPointer) Type() typing.Type { return l.T }

func (l LoadThroughPointer) Emit(block *ir.Block) irvalue.Value {
	elemType := l.Ptr.Type().(*types.PointerType).ElemType
	return block.NewLoad(elemType, l.Ptr)
}

func (l LoadThroughPointer) Addressable() bool { return true }

func (l LoadThroughPointer) Pointer(*ir.Block) irvalue.Value {
	return l.Ptr
}

// -----------------------------------------------------------------------------

// Function wraps an emitted function definition. It is its own pointer:
// calling Pointer on a Function returns the function value itself, which
// is how original_source's FuncValue::gen_ptr behaves.
type Function struct {
	T typing.Type
	F *ir.Func
}

func NewFunction(t typing.Type, f *ir.Func) Function {
	return Function{T: t, F: f}
}

func (fn Function) Type() typing.Type           { return fn.T }
func (fn Function) Emit(*ir.Block) irvalue.Value { return fn.F }
func (fn Function) Addressable() bool            { return true }
func (fn Function) Pointer(*ir.Block) irvalue.Value {
	return fn.F
}

// -----------------------------------------------------------------------------

// CastOf represents a pending cast, evaluated lazily: the source value is
// only actually cast when Emit is called, mirroring original_source's
// CastValue.
type CastOf struct {
	Src  Value
	Dest typing.Type
	Cast CastFunc
}

func NewCastOf(src Value, dest typing.Type, cast CastFunc) CastOf {
	return CastOf{Src: src, Dest: dest, Cast: cast}
}

func (c CastOf) Type() typing.Type { return c.Dest }

func (c CastOf) Emit(block *ir.Block) irvalue.Value {
	return c.Cast(block, c.Src, c.Dest)
}

func (c CastOf) Addressable() bool { return false }

func (c CastOf) Pointer(*ir.Block) irvalue.Value {
	report.Fatal(nil, "emit", "cannot take the address of a cast result")
	return nil
}

// -----------------------------------------------------------------------------

// Named wraps another value purely to attach a debug name to its
// underlying SSA value the first time it is materialized, mirroring
// original_source's NamedValue. It delegates everything else to Inner.
type Named struct {
	Inner Value
	Name  string
}

func NewNamed(inner Value, name string) Named {
	return Named{Inner: inner, Name: name}
}

func (n Named) Type() typing.Type { return n.Inner.Type() }

func (n Named) Emit(block *ir.Block) irvalue.Value {
	v := n.Inner.Emit(block)
	if named, ok := v.(interface{ SetName(string) }); ok {
		named.SetName(n.Name)
	}
	return v
}

func (n Named) Addressable() bool { return n.Inner.Addressable() }

func (n Named) Pointer(block *ir.Block) irvalue.Value {
	p := n.Inner.Pointer(block)
	if named, ok := p.(interface{ SetName(string) }); ok {
		named.SetName(n.Name)
	}
	return p
}
