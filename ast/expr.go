package ast

import (
	"emberc/report"
	"emberc/token"
	"emberc/typing"
)

// VariableExpr is a bare identifier reference. Its type is resolved by a
// by-name lookup against Scope.VariableTypes at construction time; the
// corresponding by-name lookup against the emission-time value bindings
// happens later, in package lower.
type VariableExpr struct {
	ExprBase
	Name string
}

func NewVariableExpr(scope *Scope, pos *report.Position, name string) *VariableExpr {
	t, ok := scope.VariableTypes[name]
	if !ok {
		report.Fatal(pos, "type", "undefined identifier %q", name)
	}
	return &VariableExpr{ExprBase: ExprBase{pos: pos, typ: t}, Name: name}
}

// -----------------------------------------------------------------------------

// LetExpr introduces a new binding, either from an explicit declared type,
// an inferred type taken from its initializer, or neither (fatal: a
// variable must have either a type annotation or an initializer). It
// registers the binding into scope as a side effect of construction.
type LetExpr struct {
	ExprBase
	Name    string
	Mutable bool
	Init    Expr // nil if the let has no initializer
}

func NewLetExpr(scope *Scope, pos *report.Position, name string, declared typing.Type, mutable bool, init Expr) *LetExpr {
	var t typing.Type
	switch {
	case declared != nil:
		t = declared
	case init != nil:
		t = init.Type()
	default:
		report.Fatal(pos, "type", "variable %q needs either a type annotation or an initializer", name)
	}

	scope.VariableTypes[name] = t
	return &LetExpr{ExprBase: ExprBase{pos: pos, typ: t}, Name: name, Mutable: mutable, Init: init}
}

// -----------------------------------------------------------------------------

// CastExpr is an explicit `as` cast. Legality is checked eagerly against
// the type algebra; addressability requirements for an Array->Pointer decay
// or Tuple->Array reinterpretation are checked later against the emitted
// value, in package lower.
type CastExpr struct {
	ExprBase
	Src Expr
}

func NewCastExpr(pos *report.Position, src Expr, dest typing.Type) *CastExpr {
	if !typing.CastLegal(src.Type(), dest) {
		report.Fatal(pos, "type", "cannot cast %s to %s", src.Type().String(), dest.String())
	}
	return &CastExpr{ExprBase: ExprBase{pos: pos, typ: dest}, Src: src}
}

// -----------------------------------------------------------------------------

// BinaryExpr is a binary operator application, including plain and
// compound assignment. Comparisons are always typed bool; assignments are
// typed to the RHS; everything else over two Number operands is typed to
// the wider operand, and over a Number and a Pointer operand is typed to
// the pointer.
//
// Mixed float/int Number operands are deliberately NOT rejected here: the
// legality of the actual operator dispatch (float ops vs. signed/unsigned
// int ops) is an emission-time concern, checked once package lower picks a
// concrete backend instruction, matching original_source's separation
// between BinaryExprAST's (lenient) type computation and gen_num_num_binop's
// (strict) dispatch.
type BinaryExpr struct {
	ExprBase
	Op  token.Kind
	Lhs Expr
	Rhs Expr
}

func NewBinaryExpr(pos *report.Position, op token.Kind, lhs, rhs Expr) *BinaryExpr {
	return &BinaryExpr{
		ExprBase: ExprBase{pos: pos, typ: binaryResultType(pos, op, lhs.Type(), rhs.Type())},
		Op:       op,
		Lhs:      lhs,
		Rhs:      rhs,
	}
}

func isComparisonOp(op token.Kind) bool {
	switch op {
	case token.LT, token.GT, token.LE, token.GE, token.EQ, token.NEQ:
		return true
	}
	return false
}

func isAssignOp(op token.Kind) bool {
	switch op {
	case token.ASSIGN, token.PLUS_EQ, token.MINUS_EQ, token.STAR_EQ, token.SLASH_EQ,
		token.PERCENT_EQ, token.AMP_EQ, token.PIPE_EQ:
		return true
	}
	return false
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

func binaryResultType(pos *report.Position, op token.Kind, lhsT, rhsT typing.Type) typing.Type {
	if isAssignOp(op) {
		return rhsT
	}
	if isComparisonOp(op) {
		return typing.Bool
	}

	lhsNum, lhsIsNum := lhsT.(typing.Number)
	rhsNum, rhsIsNum := rhsT.(typing.Number)

	switch {
	case lhsIsNum && rhsIsNum:
		return widerNumber(lhsNum, rhsNum)
	case lhsIsNum:
		if p, ok := rhsT.(typing.Pointer); ok {
			return p
		}
	case rhsIsNum:
		if p, ok := lhsT.(typing.Pointer); ok {
			return p
		}
	}

	report.Fatal(pos, "type", "incompatible operand types %s and %s", lhsT.String(), rhsT.String())
	return nil
}

// -----------------------------------------------------------------------------

// UnaryExpr is a prefix operator application: `*` dereference, `&`
// address-of, `-` negation, `!` logical not, `~` bitwise not.
//
// Addressability of the & operand is an emission-time concern (checked
// against the actual value.Value, which ast has no notion of), not a
// construction-time one.
type UnaryExpr struct {
	ExprBase
	Op      token.Kind
	Operand Expr
}

func NewUnaryExpr(pos *report.Position, op token.Kind, operand Expr) *UnaryExpr {
	var t typing.Type
	switch op {
	case token.STAR:
		p, ok := operand.Type().(typing.Pointer)
		if !ok {
			report.Fatal(pos, "type", "* requires a pointer operand, got %s", operand.Type().String())
		}
		t = p.Elem
	case token.AMP:
		t = typing.Pointer{Elem: operand.Type()}
	default:
		t = operand.Type()
	}
	return &UnaryExpr{ExprBase: ExprBase{pos: pos, typ: t}, Op: op, Operand: operand}
}

// -----------------------------------------------------------------------------

// CallExpr is a function call through a callee of function type or
// pointer-to-function type. Arity is checked eagerly against the callee's
// signature, honoring a variadic tail.
type CallExpr struct {
	ExprBase
	Callee Expr
	Args   []Expr
}

func NewCallExpr(pos *report.Position, callee Expr, args []Expr) *CallExpr {
	ft := calleeFuncType(pos, callee.Type())
	checkArity(pos, ft, len(args))
	return &CallExpr{ExprBase: ExprBase{pos: pos, typ: ft.Return}, Callee: callee, Args: args}
}

func calleeFuncType(pos *report.Position, t typing.Type) *typing.Function {
	switch tt := t.(type) {
	case *typing.Function:
		return tt
	case typing.Pointer:
		if f, ok := tt.Elem.(*typing.Function); ok {
			return f
		}
	}
	report.Fatal(pos, "type", "callee of type %s is not callable", t.String())
	return nil
}

func checkArity(pos *report.Position, ft *typing.Function, got int) {
	if got < len(ft.Params) || (!ft.Variadic && got != len(ft.Params)) {
		report.Fatal(pos, "type", "argument count mismatch: expected %d, got %d", len(ft.Params), got)
	}
}

// -----------------------------------------------------------------------------

// IndexExpr is `operand[index]`, legal on a pointer (dynamic index, the
// usual array-decay-to-pointer idiom) or on a tuple, where the index must
// be a literal integer known at construction time.
type IndexExpr struct {
	ExprBase
	Operand Expr
	Index   Expr // dynamic index; nil when IsTuple
	Literal int  // literal index; valid only when IsTuple
	IsTuple bool
}

func NewIndexExpr(pos *report.Position, operand, index Expr) *IndexExpr {
	p, ok := operand.Type().(typing.Pointer)
	if !ok {
		report.Fatal(pos, "type", "index requires a pointer operand, got %s", operand.Type().String())
	}
	return &IndexExpr{ExprBase: ExprBase{pos: pos, typ: p.Elem}, Operand: operand, Index: index}
}

// NewTupleIndexExpr builds a literal tuple index, e.g. `t.0`-style or
// `t[0]`-style indexing into a fixed Tuple type where the index must be
// known at compile time.
func NewTupleIndexExpr(pos *report.Position, operand Expr, literal int) *IndexExpr {
	tup, ok := operand.Type().(typing.Tuple)
	if !ok {
		report.Fatal(pos, "type", "tuple index requires a tuple operand, got %s", operand.Type().String())
	}
	if literal < 0 || literal >= len(tup.Elems) {
		report.Fatal(pos, "type", "tuple index %d out of range for %s", literal, tup.String())
	}
	return &IndexExpr{ExprBase: ExprBase{pos: pos, typ: tup.Elems[literal]}, Operand: operand, Literal: literal, IsTuple: true}
}

// -----------------------------------------------------------------------------

// PropAccessExpr is `operand.field`, legal only on a pointer-to-struct
// operand. The field's ordinal is resolved once at construction.
type PropAccessExpr struct {
	ExprBase
	Operand    Expr
	Field      string
	FieldIndex int
}

func NewPropAccessExpr(pos *report.Position, operand Expr, field string) *PropAccessExpr {
	p, ok := operand.Type().(typing.Pointer)
	if !ok {
		report.Fatal(pos, "type", "property access requires a pointer-to-struct operand, got %s", operand.Type().String())
	}
	st, ok := p.Elem.(*typing.Struct)
	if !ok {
		report.Fatal(pos, "type", "property access requires a pointer-to-struct operand, got %s", operand.Type().String())
	}
	idx, ok := st.FieldIndex(field)
	if !ok {
		report.Fatal(pos, "type", "struct %s has no field %q", st.Name, field)
	}
	return &PropAccessExpr{
		ExprBase:   ExprBase{pos: pos, typ: st.Fields[idx].Type},
		Operand:    operand,
		Field:      field,
		FieldIndex: idx,
	}
}

// -----------------------------------------------------------------------------

// MethodCallExpr is `receiver.name(args...)`, desugared at construction
// into a lookup of the mangled name "(ReceiverType)::name" against
// Scope.VariableTypes, with the receiver appended as the trailing `this`
// argument for arity checking, matching the trailing-this convention used
// for method prototypes.
type MethodCallExpr struct {
	ExprBase
	Receiver    Expr
	MangledName string
	Args        []Expr
}

func NewMethodCallExpr(scope *Scope, pos *report.Position, receiver Expr, name string, args []Expr) *MethodCallExpr {
	mangled := mangleMethodName(receiver.Type(), name)
	vt, ok := scope.VariableTypes[mangled]
	if !ok {
		report.Fatal(pos, "type", "no method %q on %s", name, receiver.Type().String())
	}
	ft, ok := vt.(*typing.Function)
	if !ok {
		report.Fatal(pos, "type", "%s is not callable", mangled)
	}
	checkArity(pos, ft, len(args)+1) // +1 for the trailing receiver

	return &MethodCallExpr{
		ExprBase:    ExprBase{pos: pos, typ: ft.Return},
		Receiver:    receiver,
		MangledName: mangled,
		Args:        args,
	}
}

func mangleMethodName(receiver typing.Type, name string) string {
	return "(" + receiver.String() + ")::" + name
}

// -----------------------------------------------------------------------------

// NewExpr is `new StructName{field: value, ...}`, producing a
// pointer-to-struct. Every field name is validated against the struct's
// definition at construction.
type NewExpr struct {
	ExprBase
	StructType *typing.Struct
	FieldInits map[string]Expr
	FieldOrder []string
}

func NewNewExpr(pos *report.Position, st *typing.Struct, fieldInits map[string]Expr, order []string) *NewExpr {
	for _, name := range order {
		if _, ok := st.FieldIndex(name); !ok {
			report.Fatal(pos, "type", "struct %s has no field %q", st.Name, name)
		}
	}
	return &NewExpr{
		ExprBase:   ExprBase{pos: pos, typ: typing.Pointer{Elem: st}},
		StructType: st,
		FieldInits: fieldInits,
		FieldOrder: order,
	}
}
