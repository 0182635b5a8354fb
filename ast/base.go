// Package ast implements typed AST nodes that compute their own type eagerly
// at construction, matching original_source's asts.cpp. There is no parser
// here: spec scope is lexer -> typed AST -> IR lowering, and the parser is
// assumed to build these nodes from already-parsed children.
//
// Nodes carry no Emit method. Central dispatch over the concrete node types
// lives in package lower, which keeps this package free of any dependency on
// the SSA builder and avoids an ast<->lower import cycle.
package ast

import (
	"emberc/report"
	"emberc/typing"
)

// Node is the parent of every AST node: an expression or a top-level
// declaration.
type Node interface {
	Position() *report.Position
}

// Expr is a node that produces a value and therefore carries a type,
// computed once at construction.
type Expr interface {
	Node
	Type() typing.Type
}

// ExprBase is embedded by every concrete Expr to supply Position and Type.
type ExprBase struct {
	pos *report.Position
	typ typing.Type
}

func (b ExprBase) Position() *report.Position { return b.pos }
func (b ExprBase) Type() typing.Type          { return b.typ }

// -----------------------------------------------------------------------------

// Scope carries the two process-scoped name->type mappings consulted both
// while AST nodes are constructed (eager type checking) and later, by
// package lower, while they are emitted. VariableTypes covers local and
// global bindings and function/method signatures addressed by their mangled
// name; UserTypes covers struct and type-alias definitions.
//
// Both maps are mutated as a side effect of constructing the nodes that
// introduce a name (Let, Prototype, StructDef, TypeAliasDef), exactly as
// original_source's compiler context accumulates bindings while walking the
// parse tree.
type Scope struct {
	VariableTypes map[string]typing.Type
	UserTypes     map[string]typing.Type
}

// NewScope builds an empty Scope.
func NewScope() *Scope {
	return &Scope{
		VariableTypes: make(map[string]typing.Type),
		UserTypes:     make(map[string]typing.Type),
	}
}
