package codegen

import (
	"github.com/funvibe/funcase/internal/ir"
	"github.com/funvibe/funcase/internal/typesystem"
)

// Leaf is one decision-tree leaf handed to the code generator: the
// structural path of the value the leaf scrutinizes and the continuation
// expression to evaluate once that value is bound.
type Leaf struct {
	Name string
	Path []Path
	Then ir.Expr
}

// Unit drives accessor lowering for one decision tree. Leaves are
// lowered in the order the caller visits them; the unit's trie decides
// which accessor prefix each leaf can reuse from an earlier sibling, and
// deterministic naming makes the reused bindings resolve without any
// extra bookkeeping. A Unit is single-owner state: parallel compilation
// of independent trees needs one Unit each.
type Unit struct {
	subjectName string
	subjectTipo typesystem.Type
	funcs       *SpecialFuncs
	trie        *Trie
}

// NewUnit starts a compilation unit for a subject bound to subjectName.
func NewUnit(subjectName string, subjectTipo typesystem.Type) *Unit {
	return &Unit{
		subjectName: subjectName,
		subjectTipo: subjectTipo,
		funcs:       NewSpecialFuncs(),
		trie:        NewTrie(),
	}
}

// LowerLeaf translates the leaf's path, registers the chain in the
// sharing trie, and emits bindings for the unshared suffix only. The
// shared prefix is assumed already bound by an earlier leaf under the
// same deterministic name this leaf would have chosen.
func (u *Unit) LowerLeaf(leaf Leaf) ir.Expr {
	seq := FromPath(u.subjectTipo, leaf.Path)
	return u.lowerShared(seq, leaf.Then)
}

// LowerListCase lowers a list-length discriminator leaf: depth tail
// accesses with no terminal head, shared through the trie like any other
// chain.
func (u *Unit) LowerListCase(depth int, then ir.Expr) ir.Expr {
	return u.lowerShared(FromListCase(depth), then)
}

func (u *Unit) lowerShared(seq Accessors, then ir.Expr) ir.Expr {
	suffix := u.trie.Insert(seq)

	// Re-walk the consumed prefix to recover the name and type of the
	// binding the suffix chains onto.
	name, tipo := u.subjectName, u.subjectTipo
	for _, op := range seq.ops[:seq.Len()-suffix.Len()] {
		name = name + "_" + op.Tag()
		tipo = op.Tipo()
	}

	return suffix.Lower(u.funcs, name, tipo, then)
}

// Finish binds the helper functions the unit's leaves used around the
// assembled program body.
func (u *Unit) Finish(body ir.Expr) ir.Expr {
	return u.funcs.WrapUsed(body)
}

// TrieDump exposes the sharing trie's structure for inspection.
func (u *Unit) TrieDump() string {
	return u.trie.Dump()
}
