// Package codegen lowers pattern-match decision trees into accessor
// bindings for the data VM. Each decision-tree leaf names a sub-value of
// the subject term via a structural path; the package translates paths
// into chains of VM accessor primitives, shares the chains' common
// prefixes across leaves, and emits one let binding per primitive that
// still needs computing.
package codegen

import (
	"github.com/funvibe/funcase/internal/ir"
	"github.com/funvibe/funcase/internal/typesystem"
)

// Accessor is one primitive extraction step recognized by the VM.
type Accessor interface {
	// Tag returns the fixed textual tag used for deterministic binding
	// names (head, tail, unconstrfields, fst, snd).
	Tag() string

	// Tipo returns the semantic type of the value the accessor yields.
	Tipo() typesystem.Type

	// SameOp reports whether two accessors count as the same operation
	// for prefix sharing. The comparison looks only at the operation
	// kind, never at carried result types, with one pinned exception:
	// FstPair never matches anything, itself included. Reusing a
	// fstPair binding across branches is disabled until the VM's pair
	// projection semantics are settled; see TestFstPairNeverShared.
	SameOp(other Accessor) bool

	// call lowers the accessor applied to arg into one IR node.
	call(funcs *SpecialFuncs, arg ir.Expr) ir.Expr
}

// HeadList yields the first element of a list-encoded value.
type HeadList struct {
	ElemTipo typesystem.Type
}

func (a HeadList) Tag() string { return "head" }

func (a HeadList) Tipo() typesystem.Type { return a.ElemTipo }

func (a HeadList) SameOp(other Accessor) bool {
	_, ok := other.(HeadList)
	return ok
}

func (a HeadList) call(funcs *SpecialFuncs, arg ir.Expr) ir.Expr {
	return &ir.Builtin{Fn: ir.B_HEAD_LIST, Tipo: a.ElemTipo, Args: []ir.Expr{arg}}
}

// TailList yields the remainder of a list-encoded value after dropping
// one element.
type TailList struct{}

func (a TailList) Tag() string { return "tail" }

func (a TailList) Tipo() typesystem.Type { return typesystem.ListOf(typesystem.Data()) }

func (a TailList) SameOp(other Accessor) bool {
	_, ok := other.(TailList)
	return ok
}

func (a TailList) call(funcs *SpecialFuncs, arg ir.Expr) ir.Expr {
	return &ir.Builtin{Fn: ir.B_TAIL_LIST, Tipo: a.Tipo(), Args: []ir.Expr{arg}}
}

// UnconstrFields yields the ordered field list of a constructor value.
// It lowers to a call of the shared fields-exposer helper rather than a
// bare primitive, since exposing fields takes two VM steps.
type UnconstrFields struct{}

func (a UnconstrFields) Tag() string { return "unconstrfields" }

func (a UnconstrFields) Tipo() typesystem.Type { return typesystem.ListOf(typesystem.Data()) }

func (a UnconstrFields) SameOp(other Accessor) bool {
	_, ok := other.(UnconstrFields)
	return ok
}

func (a UnconstrFields) call(funcs *SpecialFuncs, arg ir.Expr) ir.Expr {
	return &ir.Call{Fn: funcs.UseFunction(FieldsExposerName), Tipo: a.Tipo(), Args: []ir.Expr{arg}}
}

// FstPair yields the first component of a primitive pair.
type FstPair struct {
	CompTipo typesystem.Type
}

func (a FstPair) Tag() string { return "fst" }

func (a FstPair) Tipo() typesystem.Type { return a.CompTipo }

// SameOp always reports false for FstPair. See the Accessor doc.
func (a FstPair) SameOp(other Accessor) bool { return false }

func (a FstPair) call(funcs *SpecialFuncs, arg ir.Expr) ir.Expr {
	return &ir.Builtin{Fn: ir.B_FST_PAIR, Tipo: a.CompTipo, Args: []ir.Expr{arg}}
}

// SndPair yields the second component of a primitive pair.
type SndPair struct {
	CompTipo typesystem.Type
}

func (a SndPair) Tag() string { return "snd" }

func (a SndPair) Tipo() typesystem.Type { return a.CompTipo }

func (a SndPair) SameOp(other Accessor) bool {
	_, ok := other.(SndPair)
	return ok
}

func (a SndPair) call(funcs *SpecialFuncs, arg ir.Expr) ir.Expr {
	return &ir.Builtin{Fn: ir.B_SND_PAIR, Tipo: a.CompTipo, Args: []ir.Expr{arg}}
}
