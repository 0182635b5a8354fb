package ast

import (
	"emberc/report"
	"emberc/typing"
)

// Prototype is a function or method signature: ordered parameter names and
// types, an optional variadic tail, and a return type that may be nil for a
// body-less declaration whose return type is inferred from its eventual
// FuncDef body.
//
// It registers its (possibly mangled) name, and each parameter name with
// its type, into Scope.VariableTypes as a side effect of construction, so
// any node constructed after it (including its own body) can resolve them.
type Prototype struct {
	pos        *report.Position
	Name       string
	ParamNames []string
	ParamTypes []typing.Type
	Return     typing.Type
	Variadic   bool
	FuncType   *typing.Function
}

func (p *Prototype) Position() *report.Position { return p.pos }

func NewPrototype(scope *Scope, pos *report.Position, name string, paramNames []string, paramTypes []typing.Type, ret typing.Type, variadic bool) *Prototype {
	ft := &typing.Function{
		Params:   append([]typing.Type{}, paramTypes...),
		Return:   ret,
		Variadic: variadic,
	}
	scope.VariableTypes[name] = ft
	for i, pn := range paramNames {
		scope.VariableTypes[pn] = paramTypes[i]
	}
	return &Prototype{
		pos:        pos,
		Name:       name,
		ParamNames: paramNames,
		ParamTypes: paramTypes,
		Return:     ret,
		Variadic:   variadic,
		FuncType:   ft,
	}
}

// NewMethodPrototype builds a Prototype for an extension method on
// thisType: the registered name is mangled to "(Type)::name" and `this` is
// appended as the trailing parameter, matching the receiver-as-trailing-arg
// convention MethodCallExpr desugars calls into.
func NewMethodPrototype(scope *Scope, pos *report.Position, thisType typing.Type, name string, paramNames []string, paramTypes []typing.Type, ret typing.Type, variadic bool) *Prototype {
	mangled := mangleMethodName(thisType, name)
	names := append(append([]string{}, paramNames...), "this")
	types := append(append([]typing.Type{}, paramTypes...), thisType)
	return NewPrototype(scope, pos, mangled, names, types, ret, variadic)
}

// -----------------------------------------------------------------------------

// FuncDef binds a body to a Prototype. If the prototype's return type was
// left nil (inferred), it is back-filled here from the body's type, both
// on the Prototype and on its underlying Function type so that calls
// resolved before this point see the same signature.
type FuncDef struct {
	pos   *report.Position
	Proto *Prototype
	Body  Expr
}

func (f *FuncDef) Position() *report.Position { return f.pos }

func NewFuncDef(pos *report.Position, proto *Prototype, body Expr) *FuncDef {
	if proto.Return == nil {
		proto.Return = body.Type()
		proto.FuncType.Return = body.Type()
	} else if !typing.Equals(proto.Return, body.Type()) {
		report.Fatal(pos, "type", "function %s declared to return %s but body is %s",
			proto.Name, proto.Return.String(), body.Type().String())
	}
	return &FuncDef{pos: pos, Proto: proto, Body: body}
}

// -----------------------------------------------------------------------------

// DeclareKind distinguishes the two forms a bodyless top-level declaration
// can take: an external function signature, or an external global variable.
type DeclareKind int

const (
	DeclareFunc DeclareKind = iota
	DeclareVar
)

// DeclareTop is a bodyless top-level declaration, for linking against
// externally-defined functions or globals.
type DeclareTop struct {
	pos     *report.Position
	Kind    DeclareKind
	Name    string
	Proto   *Prototype  // populated when Kind == DeclareFunc
	VarType typing.Type // populated when Kind == DeclareVar
}

func (d *DeclareTop) Position() *report.Position { return d.pos }

func NewDeclareFunc(pos *report.Position, proto *Prototype) *DeclareTop {
	return &DeclareTop{pos: pos, Kind: DeclareFunc, Name: proto.Name, Proto: proto}
}

func NewDeclareVar(scope *Scope, pos *report.Position, name string, t typing.Type) *DeclareTop {
	scope.VariableTypes[name] = t
	return &DeclareTop{pos: pos, Kind: DeclareVar, Name: name, VarType: t}
}

// -----------------------------------------------------------------------------

// StructDef registers a named struct type into Scope.UserTypes.
type StructDef struct {
	pos  *report.Position
	Type *typing.Struct
}

func (s *StructDef) Position() *report.Position { return s.pos }

func NewStructDef(scope *Scope, pos *report.Position, name string, fields []typing.StructField) *StructDef {
	if _, exists := scope.UserTypes[name]; exists {
		report.Fatal(pos, "type", "type %q already defined", name)
	}
	st := typing.NewStruct(name, fields)
	scope.UserTypes[name] = st
	return &StructDef{pos: pos, Type: st}
}

// -----------------------------------------------------------------------------

// TypeAliasDef registers a name as an alias for an existing type, without
// introducing a new nominal identity (unlike StructDef).
type TypeAliasDef struct {
	pos  *report.Position
	Name string
	Type typing.Type
}

func (t *TypeAliasDef) Position() *report.Position { return t.pos }

func NewTypeAliasDef(scope *Scope, pos *report.Position, name string, aliased typing.Type) *TypeAliasDef {
	if _, exists := scope.UserTypes[name]; exists {
		report.Fatal(pos, "type", "type %q already defined", name)
	}
	scope.UserTypes[name] = aliased
	return &TypeAliasDef{pos: pos, Name: name, Type: aliased}
}
