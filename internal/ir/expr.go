// Package ir defines the lowered expression tree produced by the code
// generator and handed to the VM assembler. The tree is deliberately
// small: pattern-match lowering only ever emits variable references,
// let bindings, builtin calls and calls to synthesized helper functions.
package ir

import "github.com/funvibe/funcase/internal/typesystem"

// Expr is the interface for all lowered expressions.
type Expr interface {
	exprNode()
}

// Var references a previously bound variable.
type Var struct {
	Name string
	Tipo typesystem.Type
}

func (e *Var) exprNode() {}

// Let binds Value to Name and evaluates Body with the binding in scope.
type Let struct {
	Name  string
	Value Expr
	Body  Expr
}

func (e *Let) exprNode() {}

// Builtin applies one VM primitive to its arguments.
type Builtin struct {
	Fn   BuiltinFn
	Tipo typesystem.Type // result type
	Args []Expr
}

func (e *Builtin) exprNode() {}

// Call applies a function-valued expression (typically a reference to a
// synthesized helper) to its arguments.
type Call struct {
	Fn   Expr
	Tipo typesystem.Type // result type
	Args []Expr
}

func (e *Call) exprNode() {}

// Lambda is an anonymous function. Only helper-function definitions use
// it; lowering itself never introduces lambdas.
type Lambda struct {
	Params []string
	Body   Expr
}

func (e *Lambda) exprNode() {}
